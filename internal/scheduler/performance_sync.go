package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads"
	"github.com/dotlerai-cell/dotler-web/infrastructure/repository"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// PerformanceSyncConfig representa a configuração do agendador de snapshots de desempenho
type PerformanceSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionDays       int
	SyncEnabled         bool
}

// PerformanceSyncService gerencia o agendamento e execução da captura diária de
// métricas de campanhas do Google Ads
type PerformanceSyncService struct {
	scheduler           *gocron.Scheduler
	config              PerformanceSyncConfig
	appConfig           *config.Config
	connectionRepo      repository.UserConnectionRepository
	snapshotRepo        repository.PerformanceSnapshotRepository
	adsService          googleads.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPerformanceSyncService cria uma nova instância do serviço de snapshots de desempenho
func NewPerformanceSyncService(
	connectionRepo repository.UserConnectionRepository,
	snapshotRepo repository.PerformanceSnapshotRepository,
	adsService googleads.Integrator,
	appConfig *config.Config,
) *PerformanceSyncService {
	// Criar a configuração com base na config global
	syncConfig := PerformanceSyncConfig{
		CronSchedule:        appConfig.PerformanceSync.CronSchedule,
		RequestDelaySeconds: appConfig.PerformanceSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.PerformanceSync.MaxConcurrentJobs,
		RetentionDays:       appConfig.PerformanceSync.RetentionDays,
		SyncEnabled:         appConfig.PerformanceSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de desempenho carregada")

	return &PerformanceSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		connectionRepo: connectionRepo,
		snapshotRepo:   snapshotRepo,
		adsService:     adsService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *PerformanceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de desempenho de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de desempenho")

	// Agendar a captura de snapshots
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllPerformance()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de desempenho: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de desempenho")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllPerformance captura as métricas de campanhas de todas as conexões com credenciais
func (s *PerformanceSyncService) syncAllPerformance() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de desempenho já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de desempenho para todas as conexões com credenciais")

	// Buscar as conexões prontas para consultar a API
	connections, err := s.getSyncableConnections()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de conexões para sincronização de desempenho")
		return
	}

	if len(connections) == 0 {
		logrus.Info("Nenhuma conexão encontrada para sincronização de desempenho")
		return
	}

	// Todos os snapshots de uma rodada compartilham a mesma data
	snapshotDate := startTime.Format(time.DateOnly)

	// Processar as conexões
	s.processConnections(connections, snapshotDate)

	// Remover snapshots fora da janela de retenção
	s.applyRetentionPolicy()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":      duration.String(),
		"connections":   len(connections),
		"snapshot_date": snapshotDate,
	}).Info("Sincronização de desempenho de campanhas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getSyncableConnections busca as conexões com credenciais completas do Google Ads
func (s *PerformanceSyncService) getSyncableConnections() ([]*domain.UserConnection, error) {
	connections, err := s.connectionRepo.ListWithAdsCredentials()
	if err != nil {
		return nil, err
	}

	if len(connections) == 0 {
		logrus.Info("Nenhuma conexão com credenciais encontrada para sincronização de desempenho")
		return []*domain.UserConnection{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"connections": len(connections),
	}).Info("Conexões encontradas para sincronização de desempenho")

	return connections, nil
}

// processConnections captura os snapshots de cada conexão com workers concorrentes
func (s *PerformanceSyncService) processConnections(connections []*domain.UserConnection, snapshotDate string) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, connection := range connections {
		// Se a conexão não tiver customer_id, pular
		if connection.CustomerID == "" {
			logrus.WithField("connection_key", connection.Key).Warn("Conexão sem customer_id. Pulando.")
			continue
		}

		// Adicionar uma tarefa ao grupo de espera
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(conn *domain.UserConnection) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"connection_key": conn.Key,
				"customer_id":    conn.CustomerID,
			}).Info("Processando snapshot de desempenho para conexão")

			s.processConnectionPerformance(conn, snapshotDate)
		}(connection)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// processConnectionPerformance consulta as campanhas de uma conexão e grava um
// snapshot por campanha
func (s *PerformanceSyncService) processConnectionPerformance(conn *domain.UserConnection, snapshotDate string) {
	ctx := context.Background()

	campaigns, err := s.adsService.CampaignMetricsForRange(ctx, conn, conn.CustomerID, domain.DateRangeLast7Days)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"connection_key": conn.Key,
			"customer_id":    conn.CustomerID,
			"error":          err.Error(),
		}).Error("Erro ao obter métricas de campanhas para conexão")
		return
	}

	if len(campaigns) == 0 {
		logrus.WithFields(logrus.Fields{
			"connection_key": conn.Key,
			"customer_id":    conn.CustomerID,
		}).Warn("Nenhuma campanha encontrada para conexão")
		return
	}

	saved := 0

	for _, campaign := range campaigns {
		snapshot := &domain.PerformanceSnapshot{
			ConnectionKey: conn.Key,
			CustomerID:    conn.CustomerID,
			CampaignID:    campaign.ID,
			CampaignName:  campaign.Name,
			SnapshotDate:  snapshotDate,
			Metrics:       campaign,
		}

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithFields(logrus.Fields{
				"connection_key": conn.Key,
				"campaign_id":    campaign.ID,
				"snapshot_date":  snapshotDate,
				"error":          err.Error(),
			}).Error("Erro ao salvar snapshot de desempenho no banco de dados")
			continue
		}

		saved++
	}

	logrus.WithFields(logrus.Fields{
		"connection_key": conn.Key,
		"customer_id":    conn.CustomerID,
		"campaigns":      len(campaigns),
		"saved":          saved,
		"snapshot_date":  snapshotDate,
	}).Info("Snapshots de desempenho salvos para conexão")

	// Aguardar antes da próxima requisição para evitar sobrecarga na API
	time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
}

// applyRetentionPolicy remove snapshots mais antigos que a janela de retenção
func (s *PerformanceSyncService) applyRetentionPolicy() {
	if s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"retention_days": s.config.RetentionDays,
			"error":          err.Error(),
		}).Error("Erro ao remover snapshots fora da janela de retenção")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"retention_days": s.config.RetentionDays,
			"removed":        removed,
		}).Info("Snapshots fora da janela de retenção removidos")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de desempenho
func (s *PerformanceSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de desempenho já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de desempenho de campanhas")
	go s.syncAllPerformance()
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
