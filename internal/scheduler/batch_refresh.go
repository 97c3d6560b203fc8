// Package scheduler contém o serviço de agendamento do reprocessamento do lote
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/batching"
)

type BatchRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// BatchRefreshStatus é o retrato da última execução para o endpoint de status
type BatchRefreshStatus struct {
	Running         bool                `json:"running"`
	LastStartedAt   *time.Time          `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time          `json:"last_completed_at,omitempty"`
	LastResult      *domain.BatchResult `json:"last_result,omitempty"`
	LastError       string              `json:"last_error,omitempty"`
}

type BatchRefreshService struct {
	scheduler           *gocron.Scheduler
	pipeline            batching.BatchRunner
	config              BatchRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.BatchResult
	lastError           error
}

func NewBatchRefreshService(
	pipeline batching.BatchRunner,
	cfg *config.Config,
) *BatchRefreshService {
	refreshConfig := BatchRefreshConfig{
		CronSchedule: cfg.BatchSync.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.BatchSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de reprocessamento do lote carregada")

	return &BatchRefreshService{
		scheduler: scheduler,
		pipeline:  pipeline,
		config:    refreshConfig,
	}
}

func (s *BatchRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de reprocessamento do lote desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de reprocessamento do lote")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunBatch(ctx); err != nil {
			logrus.WithError(err).Error("Erro no reprocessamento agendado do lote")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o reprocessamento do lote: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de reprocessamento do lote")
		s.scheduler.Stop()
	}()

	return nil
}

// RunBatch executa o pipeline completo, garantindo uma execução por vez
func (s *BatchRefreshService) RunBatch(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Reprocessamento do lote já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando reprocessamento do lote")

	result, err := s.pipeline.Run(ctx)

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastError = err
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao processar o lote")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"batch_id":    result.BatchID,
		"records_in":  result.RecordsIn,
		"records_out": result.RecordsOut,
	}).Info("Reprocessamento do lote concluído")

	return nil
}

// TriggerManualSync dispara uma execução manual em background
func (s *BatchRefreshService) TriggerManualSync() {
	go func() {
		if err := s.RunBatch(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no reprocessamento manual do lote")
		}
	}()
}

// Status retorna o estado corrente do agendador para observabilidade
func (s *BatchRefreshService) Status() BatchRefreshStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := BatchRefreshStatus{
		Running:    s.syncRunning,
		LastResult: s.lastResult,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}

	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}
