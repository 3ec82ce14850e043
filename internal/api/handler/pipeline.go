package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/sales-advisor-api/internal/domain"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/sales-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/sales-advisor-api/pkg/log"
	"github.com/vfg2006/sales-advisor-api/pkg/utils"
)

const maxRunBodyBytes = 1 << 20

// RunResponse é o estado final do pipeline acompanhado do ID da execução
type RunResponse struct {
	RunID           string                  `json:"run_id"`
	Data            domain.DailyRecord      `json:"data"`
	Result          *domain.DerivedMetrics  `json:"result"`
	Alerts          []domain.AlertKind      `json:"alerts"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Stage           domain.PipelineStage    `json:"stage"`
}

// GraphResponse descreve a topologia do pipeline e suas representações em texto
type GraphResponse struct {
	Nodes []string           `json:"nodes"`
	Edges []domain.GraphEdge `json:"edges"`
	DOT   string             `json:"dot"`
	ASCII string             `json:"ascii"`
}

func RunPipeline(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var raw map[string]any
		decoder := json.NewDecoder(io.LimitReader(r.Body, maxRunBodyBytes))
		err := decoder.Decode(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição vazio", nil)
				return
			}

			logger.WithError(err).Warn("pipeline: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if decoder.More() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Conteúdo adicional após o objeto JSON", nil)
			return
		}

		if raw == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O corpo deve ser um objeto JSON", nil)
			return
		}

		state, err := service.RunRaw(r.Context(), raw)
		if err != nil {
			if advising.IsMalformedRecord(err) {
				apiErrors.WriteError(w, apiErrors.ErrMalformedRecord, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("pipeline: run failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		runID, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Error("pipeline: failed to generate run id")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar ID da execução", nil)
			return
		}

		logger.WithFields(log.Fields{
			"run_id": runID,
			"alerts": len(state.Alerts),
		}).Info("pipeline: run completed")

		response := RunResponse{
			RunID:           runID,
			Data:            state.Data,
			Result:          state.Result,
			Alerts:          state.Alerts,
			Recommendations: state.Recommendations,
			Stage:           state.Stage,
		}

		if err := writeJSON(w, response); err != nil {
			logger.WithError(err).Error("pipeline: failed to encode response")
		}
	})
}

func GetPipelineGraph(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		graph := service.Topology()

		response := GraphResponse{
			Nodes: graph.Nodes,
			Edges: graph.Edges,
			DOT:   graph.DOT(),
			ASCII: graph.ASCII(),
		}

		if err := writeJSON(w, response); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("pipeline: failed to encode graph")
		}
	})
}

func GetSampleInput() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"data": domain.SampleDailyRecord(),
		}

		if err := writeJSON(w, payload); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("pipeline: failed to encode sample input")
		}
	})
}
