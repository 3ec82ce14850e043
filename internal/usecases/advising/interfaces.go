package advising

import (
	"context"

	"github.com/vfg2006/sales-advisor-api/internal/domain"
)

// Advisor define as operações expostas pelo pipeline de recomendações
type Advisor interface {
	// Run executa o pipeline completo sobre um registro já decodificado
	Run(ctx context.Context, record domain.DailyRecord) domain.PipelineState

	// RunRaw decodifica a entrada (com ou sem o envelope "data") e executa o pipeline
	RunRaw(ctx context.Context, raw map[string]any) (domain.PipelineState, error)

	// Topology retorna a descrição estática dos nós e arestas do pipeline
	Topology() domain.PipelineGraph
}
