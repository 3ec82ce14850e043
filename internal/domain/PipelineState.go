package domain

import "encoding/json"

// PipelineStage representa em que ponto da execução o estado se encontra
type PipelineStage int

const (
	StageReady PipelineStage = iota
	StageMetricsComputed
	StageRecommendationsComputed
)

var stageNames = map[PipelineStage]string{
	StageReady:                   "ready",
	StageMetricsComputed:         "metrics_computed",
	StageRecommendationsComputed: "recommendations_computed",
}

func (s PipelineStage) String() string {
	return stageNames[s]
}

func (s PipelineStage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// PipelineState é o registro que atravessa as etapas do pipeline.
// Result, Alerts e Recommendations ficam vazios até a etapa correspondente rodar.
type PipelineState struct {
	Data            DailyRecord      `json:"data"`
	Result          *DerivedMetrics  `json:"result,omitempty"`
	Alerts          []AlertKind      `json:"alerts"`
	Recommendations []Recommendation `json:"recommendations"`
	Stage           PipelineStage    `json:"stage"`
}

// NewPipelineState cria o estado inicial para uma execução
func NewPipelineState(record DailyRecord) PipelineState {
	return PipelineState{
		Data:  record,
		Stage: StageReady,
	}
}
