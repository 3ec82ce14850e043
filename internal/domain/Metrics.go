package domain

// DerivedMetrics são as métricas calculadas a partir de um DailyRecord
type DerivedMetrics struct {
	Profit float64 `json:"profit"`
	CAC    float64 `json:"CAC"`
}
