package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/dotlerai-cell/dotler-web/infrastructure/database/postgres"
	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/gemini"
	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/gemini/geminiclient"
	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads"
	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/adsclient"
	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleoauth/oauthclient"
	"github.com/dotlerai-cell/dotler-web/infrastructure/repository"
	"github.com/dotlerai-cell/dotler-web/internal/api"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/dotlerai-cell/dotler-web/internal/scheduler"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/campaigning"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/connecting"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/contacting"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/insighting"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/policying"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/setupflow"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/tracking"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	connectionRepo := repository.NewUserConnectionRepository(pgConn)
	trackingEventRepo := repository.NewTrackingEventRepository(pgConn)
	campaignDraftRepo := repository.NewCampaignDraftRepository(pgConn)
	setupSessionRepo := repository.NewSetupSessionRepository(pgConn)
	policyChunkRepo := repository.NewPolicyChunkRepository(pgConn)
	contactMessageRepo := repository.NewContactMessageRepository(pgConn)
	performanceSnapshotRepo := repository.NewPerformanceSnapshotRepository(pgConn)

	oauthClient := oauthclient.NewClient(cfg)

	// Tokens renovados pelo client são gravados de volta na conexão
	adsClient := adsclient.NewClient(cfg, oauthClient, connectionRepo.UpdateAccessToken)
	adsIntegrator := googleads.New(cfg, adsClient)

	geminiClient := geminiclient.NewClient(cfg)
	embedder, err := gemini.NewEmbedder(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Embeddings do Gemini indisponíveis, busca de políticas desabilitada")
	}
	geminiIntegrator := gemini.New(cfg, geminiClient, embedder)

	connectionService := connecting.NewService(cfg, oauthClient, connectionRepo)
	trackingService := tracking.NewService(trackingEventRepo)
	insightService := insighting.NewService(cfg, adsIntegrator, connectionRepo, performanceSnapshotRepo)
	policyService := policying.NewService(geminiIntegrator, policyChunkRepo)
	contactService := contacting.NewService(contactMessageRepo)
	setupService := setupflow.NewService(setupSessionRepo)

	campaignService := campaigning.NewService(
		cfg,
		geminiIntegrator,
		adsIntegrator,
		connectionRepo,
		campaignDraftRepo,
		policyService, // Implementa PolicyContextProvider
	)

	// Inicializa o agendador de snapshots de desempenho
	performanceSyncService := scheduler.NewPerformanceSyncService(
		connectionRepo,
		performanceSnapshotRepo,
		adsIntegrator,
		cfg,
	)

	if err := performanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de desempenho")
	} else {
		logrus.Info("Agendador de sincronização de desempenho iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		connectionService,
		trackingService,
		insightService,
		campaignService,
		setupService,
		policyService,
		contactService,
		performanceSyncService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
