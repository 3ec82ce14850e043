package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-advisor-api/internal/config"
	"github.com/vfg2006/sales-advisor-api/internal/scheduler"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/sales-advisor-api/pkg/apiErrors"
)

func newCronRequest(cronType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil)
	params := httprouter.Params{{Key: "type", Value: cronType}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func newSampleRunService() *scheduler.SampleRunService {
	return scheduler.NewSampleRunService(advising.NewService(), &config.Config{
		SampleRun: config.SampleRun{CronSchedule: "*/30 * * * *", Enabled: true},
	})
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		cronType   string
		services   CronJobServices
		wantStatus int
		wantCode   string
	}{
		{
			name:       "execução de exemplo",
			cronType:   CronJobTypeSampleRun,
			services:   CronJobServices{SampleRunService: newSampleRunService()},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "serviço não configurado",
			cronType:   CronJobTypeSampleRun,
			services:   CronJobServices{},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apiErrors.ErrServiceUnavailable,
		},
		{
			name:       "tipo desconhecido",
			cronType:   "meta-sync",
			services:   CronJobServices{SampleRunService: newSampleRunService()},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RunCronJob(tt.services).ServeHTTP(rec, newCronRequest(tt.cronType))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, tt.wantCode, apiErr.Code)
			}
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	service := newSampleRunService()
	require.NotNil(t, service.RunOnce(context.Background()))

	rec := httptest.NewRecorder()
	GetCronStatus(CronJobServices{SampleRunService: service}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	status := got[CronJobTypeSampleRun]
	require.NotNil(t, status)
	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, 1.0, status["total_runs"])
	assert.Equal(t, true, status["last_run_healthy"])
	assert.Equal(t, false, status["running"])
}
