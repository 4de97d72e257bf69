package domain

// MarketStatistic is one citation-backed market data point. The data set is
// compiled in and identical for every request.
type MarketStatistic struct {
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	Year     int     `json:"year"`
	Label    string  `json:"label"`
	Source   string  `json:"source"`
	URL      string  `json:"url"`
	Citation string  `json:"citation"`
}
