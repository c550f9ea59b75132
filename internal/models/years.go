package models

// YearRange lists the selectable years of the two chart kinds.
type YearRange struct {
	Histogram []int `json:"histogram"`
	Scatter   []int `json:"scatter"`
	// Default is the year the dashboard opens on.
	Default int `json:"default"`
}

func NewYearRange(histogram, scatter []int) YearRange {
	yr := YearRange{Histogram: histogram, Scatter: scatter}
	if yr.Histogram == nil {
		yr.Histogram = []int{}
	}
	if yr.Scatter == nil {
		yr.Scatter = []int{}
	}
	if n := len(histogram); n > 0 {
		yr.Default = histogram[n-1]
	}
	return yr
}
