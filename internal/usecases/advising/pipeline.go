package advising

import "github.com/vfg2006/sales-advisor-api/internal/domain"

// stage é uma etapa pura do pipeline: recebe o estado e devolve uma cópia com novos campos
type stage struct {
	name string
	run  func(domain.PipelineState) domain.PipelineState
}

// stages retorna as etapas na ordem fixa de execução
func stages() []stage {
	return []stage{
		{name: domain.NodeInput, run: inputStage},
		{name: domain.NodeMetricsAlerts, run: metricsAlertsStage},
		{name: domain.NodeRecommendations, run: recommendationsStage},
	}
}

// Run executa as três etapas em sequência sobre um estado novo
func Run(record domain.DailyRecord) domain.PipelineState {
	return runStages(record, nil)
}

// runStages executa as etapas chamando observe (se informado) após cada uma
func runStages(record domain.DailyRecord, observe func(name string, state domain.PipelineState)) domain.PipelineState {
	state := domain.NewPipelineState(record)

	for _, s := range stages() {
		state = s.run(state)
		if observe != nil {
			observe(s.name, state)
		}
	}

	return state
}

func inputStage(state domain.PipelineState) domain.PipelineState {
	return state
}

func metricsAlertsStage(state domain.PipelineState) domain.PipelineState {
	metrics := CalculateMetrics(state.Data)

	state.Result = &metrics
	state.Alerts = EvaluateAlerts(state.Data, metrics)
	state.Stage = domain.StageMetricsComputed

	return state
}

func recommendationsStage(state domain.PipelineState) domain.PipelineState {
	state.Recommendations = Recommend(*state.Result, state.Alerts)
	state.Stage = domain.StageRecommendationsComputed

	return state
}
