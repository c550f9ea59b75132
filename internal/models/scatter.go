package models

// ScatterPoint is one entity on the fertility and urbanization scatter.
type ScatterPoint struct {
	Entity          string  `json:"entity"`
	Year            int     `json:"year"`
	Fertility       float64 `json:"fertility"`
	UrbanPopulation float64 `json:"urbanPopulation"`
	TotalPopulation float64 `json:"totalPopulation"`
	UrbanShare      float64 `json:"urbanShare"`
	Regime          string  `json:"regime"`
	Color           string  `json:"color"`
}

type Scatter struct {
	Year   int            `json:"year"`
	Group  string         `json:"group"`
	Points []ScatterPoint `json:"points"`
}

func NewScatter(year int, group string, points []ScatterPoint) Scatter {
	if points == nil {
		points = []ScatterPoint{}
	}
	return Scatter{Year: year, Group: group, Points: points}
}

// SeriesRecord is one long-form observation.
type SeriesRecord struct {
	Entity string  `json:"entity"`
	Year   int     `json:"year"`
	Value  float64 `json:"value"`
}
