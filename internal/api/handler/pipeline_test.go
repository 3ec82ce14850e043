package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-advisor-api/internal/domain"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/advising/mocks"
	"github.com/vfg2006/sales-advisor-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type runResponseBody struct {
	RunID  string `json:"run_id"`
	Result struct {
		Profit float64 `json:"profit"`
		CAC    float64 `json:"CAC"`
	} `json:"result"`
	Alerts          []string `json:"alerts"`
	Recommendations []string `json:"recommendations"`
	Stage           string   `json:"stage"`
}

func TestRunPipeline(t *testing.T) {
	handler := RunPipeline(advising.NewService())

	body := `{"data":{"sales":12000,"cost":4000,"customers":100,"yesterday":{"sales":10000,"cost":3500,"CAC":35.0}}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got runResponseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Len(t, got.RunID, 10)
	assert.Equal(t, 8000.0, got.Result.Profit)
	assert.Equal(t, 40.0, got.Result.CAC)
	assert.Equal(t, []string{
		"CAC has increased compared to the previous period.",
		"Sales have increased compared to the previous period.",
	}, got.Alerts)
	assert.Equal(t, []string{
		"You are making a profit.",
		"Consider improving your acquisition channels.",
		"You may increase the marketing budget to leverage momentum.",
	}, got.Recommendations)
	assert.Equal(t, "recommendations_computed", got.Stage)
}

func TestRunPipeline_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
		wantMsg    string
		wantField  string
	}{
		{
			name:       "corpo vazio",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "json inválido",
			body:       "{sales:",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "conteúdo após o objeto",
			body:       `{"sales":1} junk`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "dois objetos no corpo",
			body:       `{"sales":1}{"sales":2}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "clientes fracionados",
			body:       `{"sales":5000,"cost":4000,"customers":2.5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrMalformedRecord,
			wantMsg:    "malformed daily record: 'customers'",
			wantField:  "2.5",
		},
		{
			name:       "json que não é objeto",
			body:       "null",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "campo com tipo inválido",
			body:       `{"sales":"muito","cost":10,"customers":1}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrMalformedRecord,
			wantMsg:    "malformed daily record: ",
			wantField:  "sales",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RunPipeline(advising.NewService())
			req := httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if tt.wantMsg != "" {
				assert.True(t, strings.HasPrefix(apiErr.Message, tt.wantMsg), apiErr.Message)
				assert.Contains(t, apiErr.Message, tt.wantField)
			}
		})
	}
}

func TestRunPipeline_UsesAdvisor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdvisor := mocks.NewMockAdvisor(ctrl)
	mockAdvisor.EXPECT().
		RunRaw(gomock.Any(), map[string]any{"sales": 1.0}).
		DoAndReturn(func(ctx context.Context, raw map[string]any) (domain.PipelineState, error) {
			return advising.Run(domain.DailyRecord{Sales: 1, Customers: 1}), nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", strings.NewReader(`{"sales":1}`))
	rec := httptest.NewRecorder()

	RunPipeline(mockAdvisor).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got runResponseBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1.0, got.Result.Profit)
	assert.Empty(t, got.Alerts)
	assert.Equal(t, []string{"You are making a profit."}, got.Recommendations)
}

func TestGetPipelineGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdvisor := mocks.NewMockAdvisor(ctrl)
	mockAdvisor.EXPECT().Topology().Return(domain.PipelineTopology())

	rec := httptest.NewRecorder()
	GetPipelineGraph(mockAdvisor).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pipeline/graph", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got GraphResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"input", "metrics_alerts", "recommendations"}, got.Nodes)
	assert.Equal(t, []domain.GraphEdge{
		{From: "input", To: "metrics_alerts"},
		{From: "metrics_alerts", To: "recommendations"},
	}, got.Edges)
	assert.Equal(t, domain.PipelineTopology().DOT(), got.DOT)
	assert.Equal(t, domain.PipelineTopology().ASCII(), got.ASCII)
}

func TestGetSampleInput(t *testing.T) {
	rec := httptest.NewRecorder()
	GetSampleInput().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pipeline/sample", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	record, err := advising.DecodeState(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.SampleDailyRecord(), record)
}
