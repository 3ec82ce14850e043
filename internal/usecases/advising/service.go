package advising

import (
	"context"

	"github.com/vfg2006/sales-advisor-api/internal/domain"
	"github.com/vfg2006/sales-advisor-api/pkg/log"
)

// Service implementa Advisor. Não guarda estado entre execuções.
type Service struct{}

// NewService cria uma nova instância do serviço de recomendações
func NewService() Advisor {
	return &Service{}
}

// Run executa o pipeline e registra as transições de etapa
func (s *Service) Run(ctx context.Context, record domain.DailyRecord) domain.PipelineState {
	logger := log.ForContext(ctx)

	logger.WithFields(log.Fields{
		"sales":        record.Sales,
		"cost":         record.Cost,
		"customers":    record.Customers,
		"has_previous": record.Previous != nil,
	}).Debug("advising: starting pipeline run")

	state := runStages(record, func(name string, state domain.PipelineState) {
		logger.WithFields(log.Fields{
			"node":  name,
			"stage": state.Stage.String(),
		}).Debug("advising: stage completed")
	})

	logger.WithFields(log.Fields{
		"profit":          state.Result.Profit,
		"cac":             state.Result.CAC,
		"alerts":          len(state.Alerts),
		"recommendations": len(state.Recommendations),
	}).Info("advising: pipeline run completed")

	return state
}

// RunRaw decodifica a entrada antes de executar o pipeline. Entradas mal formadas
// retornam o erro do decodificador sem resultado parcial.
func (s *Service) RunRaw(ctx context.Context, raw map[string]any) (domain.PipelineState, error) {
	record, err := DecodeState(raw)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("advising: rejecting malformed daily record")
		return domain.PipelineState{}, err
	}

	return s.Run(ctx, record), nil
}

func (s *Service) Topology() domain.PipelineGraph {
	return domain.PipelineTopology()
}
