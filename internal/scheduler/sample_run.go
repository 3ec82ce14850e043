package scheduler

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-advisor-api/internal/config"
	"github.com/vfg2006/sales-advisor-api/internal/domain"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/advising"
)

// SampleRunConfig representa a configuração do agendador de execução de exemplo
type SampleRunConfig struct {
	CronSchedule string
	Enabled      bool
}

// SampleRunResult é o resultado de uma execução de verificação
type SampleRunResult struct {
	StartedAt time.Time            `json:"started_at"`
	Duration  time.Duration        `json:"duration"`
	Healthy   bool                 `json:"healthy"`
	State     domain.PipelineState `json:"state"`
}

// SampleRunService executa periodicamente o pipeline sobre o registro de exemplo
// e avisa quando a saída diverge do resultado conhecido.
type SampleRunService struct {
	scheduler *gocron.Scheduler
	config    SampleRunConfig
	advisor   advising.Advisor
	expected  domain.PipelineState

	mu         sync.Mutex
	running    bool
	lastResult *SampleRunResult
	totalRuns  int
	failedRuns int
}

// NewSampleRunService cria o serviço a partir da configuração global
func NewSampleRunService(advisor advising.Advisor, appConfig *config.Config) *SampleRunService {
	runConfig := SampleRunConfig{
		CronSchedule: appConfig.SampleRun.CronSchedule,
		Enabled:      appConfig.SampleRun.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": runConfig.CronSchedule,
		"enabled":       runConfig.Enabled,
	}).Info("Configuração do agendador de execução de exemplo carregada")

	return &SampleRunService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    runConfig,
		advisor:   advisor,
		expected:  expectedSampleState(),
	}
}

// expectedSampleState é a saída conhecida para domain.SampleDailyRecord
func expectedSampleState() domain.PipelineState {
	return domain.PipelineState{
		Data:   domain.SampleDailyRecord(),
		Result: &domain.DerivedMetrics{Profit: 8000, CAC: 40.0},
		Alerts: []domain.AlertKind{domain.AlertCACIncreased, domain.AlertSalesIncreased},
		Recommendations: []domain.Recommendation{
			domain.RecommendationProfitable,
			domain.RecommendationImproveAcquisition,
			domain.RecommendationIncreaseMarketing,
		},
		Stage: domain.StageRecommendationsComputed,
	}
}

// Start agenda a execução de exemplo; não faz nada se estiver desabilitado
func (s *SampleRunService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Execução de exemplo desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunOnce(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução de exemplo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de execução de exemplo")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa o pipeline sobre o registro de exemplo. Retorna nil se já houver
// uma execução em andamento.
func (s *SampleRunService) RunOnce(ctx context.Context) *SampleRunResult {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Execução de exemplo já em andamento, ignorando")
		return nil
	}
	s.running = true
	s.mu.Unlock()

	startedAt := time.Now()
	state := s.advisor.Run(ctx, domain.SampleDailyRecord())

	result := &SampleRunResult{
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Healthy:   reflect.DeepEqual(state, s.expected),
		State:     state,
	}

	if result.Healthy {
		logrus.WithField("duration", result.Duration.String()).Info("Execução de exemplo concluída")
	} else {
		logrus.WithFields(logrus.Fields{
			"result":          state.Result,
			"alerts":          state.Alerts,
			"recommendations": state.Recommendations,
		}).Warn("Execução de exemplo divergiu do resultado esperado")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastResult = result
	s.totalRuns++
	if !result.Healthy {
		s.failedRuns++
	}

	return result
}

// TriggerManualRun inicia uma execução em background. Retorna false se já houver uma em andamento.
func (s *SampleRunService) TriggerManualRun() bool {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if running {
		logrus.Info("Execução de exemplo já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando execução manual de exemplo")
	go s.RunOnce(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *SampleRunService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]any{
		"enabled":     s.config.Enabled,
		"cron":        s.config.CronSchedule,
		"running":     s.running,
		"total_runs":  s.totalRuns,
		"failed_runs": s.failedRuns,
	}
	if s.lastResult != nil {
		status["last_run_at"] = s.lastResult.StartedAt
		status["last_run_healthy"] = s.lastResult.Healthy
	}

	return status
}
