package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-advisor-api/internal/api"
	"github.com/vfg2006/sales-advisor-api/internal/config"
	"github.com/vfg2006/sales-advisor-api/internal/scheduler"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-advisor-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	advisor := advising.NewService()
	authenticator := authenticating.NewService(cfg)

	sampleRunService := scheduler.NewSampleRunService(advisor, cfg)
	if err := sampleRunService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de execução de exemplo")
	} else {
		logrus.Info("Agendador de execução de exemplo iniciado com sucesso")
	}

	server, err := api.New(cfg, advisor, authenticator, sampleRunService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
