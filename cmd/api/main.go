package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/loader"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/batching"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/cleaning"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/validating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A persistência de rollups é opcional; sem ela o pipeline trabalha
	// somente em memória
	var batchRepo repository.BatchRepository
	if cfg.Persistence.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		batchRepo = repository.NewBatchRepository(pgConn)
	}

	salesLoader := loader.NewCSVLoader(cfg.Loader.CSVPath, cfg.Loader.DelimiterRune())

	validator := validating.NewService()
	cleaner := cleaning.NewService(validator)
	aggregator := aggregating.NewService()
	reporter := reporting.NewService()

	pipeline := batching.NewService(
		salesLoader,
		cleaner,
		aggregator,
		reporter,
		batchRepo,
		cfg.Persistence.Enabled,
	)

	batchRefreshService := scheduler.NewBatchRefreshService(pipeline, cfg)

	// Processa o primeiro lote na subida para o Reporter já nascer populado
	if cfg.BatchSync.RunOnStartup {
		if err := batchRefreshService.RunBatch(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao processar o lote inicial")
		}
	}

	if err := batchRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reprocessamento do lote")
	} else {
		logrus.Info("Agendador de reprocessamento do lote iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		batchRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
