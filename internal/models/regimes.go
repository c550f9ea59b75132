package models

import "dashboard.demografia.org/internal/regime"

// RegimeInfo describes one regime label for legends.
type RegimeInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Rank  int    `json:"rank"`
}

func NewRegimeInfos(regimes []regime.Regime) []RegimeInfo {
	out := make([]RegimeInfo, len(regimes))
	for i, r := range regimes {
		out[i] = RegimeInfo{Name: r.String(), Color: r.Color(), Rank: i}
	}
	return out
}

type RegimeCount struct {
	Regime string `json:"regime"`
	Color  string `json:"color"`
	Count  int    `json:"count"`
}

// RegimeHistogram is the dense histogram of a single year.
type RegimeHistogram struct {
	Year          string        `json:"year"`
	SchemeVersion string        `json:"schemeVersion"`
	Total         int           `json:"total"`
	Counts        []RegimeCount `json:"counts"`
}

func NewRegimeHistogram(year, schemeVersion string, counts []regime.YearRegimeCount) RegimeHistogram {
	h := RegimeHistogram{Year: year, SchemeVersion: schemeVersion, Counts: make([]RegimeCount, 0, len(counts))}
	for _, c := range counts {
		h.Counts = append(h.Counts, RegimeCount{Regime: c.Regime.String(), Color: c.Regime.Color(), Count: c.Count})
		h.Total += c.Count
	}
	return h
}

// RegimeFrames carries every year's histogram for animation.
type RegimeFrames struct {
	SchemeVersion string                   `json:"schemeVersion"`
	Regimes       []RegimeInfo             `json:"regimes"`
	Years         []string                 `json:"years"`
	Frames        []regime.YearRegimeCount `json:"frames"`
}

func NewRegimeFrames(schemeVersion string, regimes []regime.Regime, frames []regime.YearRegimeCount) RegimeFrames {
	rf := RegimeFrames{
		SchemeVersion: schemeVersion,
		Regimes:       NewRegimeInfos(regimes),
		Years:         []string{},
		Frames:        frames,
	}
	if rf.Frames == nil {
		rf.Frames = []regime.YearRegimeCount{}
	}
	for _, f := range frames {
		if n := len(rf.Years); n == 0 || rf.Years[n-1] != f.Year {
			rf.Years = append(rf.Years, f.Year)
		}
	}
	return rf
}
