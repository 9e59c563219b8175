package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dotlerai-cell/dotler-web/internal/api/handler"
	"github.com/dotlerai-cell/dotler-web/internal/api/handler/router"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/dotlerai-cell/dotler-web/internal/scheduler"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/campaigning"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/connecting"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/contacting"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/insighting"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/policying"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/setupflow"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/tracking"
	"github.com/dotlerai-cell/dotler-web/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	database handler.Pinger,
	connectionService connecting.ConnectionService,
	trackingService tracking.TrackingService,
	insightService insighting.Insighter,
	campaignService campaigning.CampaignService,
	setupService setupflow.SetupService,
	policyService policying.PolicyService,
	contactService contacting.ContactService,
	performanceSyncService *scheduler.PerformanceSyncService,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{
		PerformanceSyncService: performanceSyncService,
	}

	rt := router.New(
		router.WithNotFound(handler.NotFound()),
		router.WithMethodNotAllowed(handler.MethodNotAllowed()),
		router.WithRoutes(handler.Healthcheck(database)...),
		router.WithRoutes(handler.OAuth(connectionService)...),
		router.WithRoutes(handler.Tracking(trackingService)...),
		router.WithRoutes(handler.GoogleAds(insightService)...),
		router.WithRoutes(handler.Campaigns(campaignService)...),
		router.WithRoutes(handler.Setup(setupService)...),
		router.WithRoutes(handler.Policies(policyService)...),
		router.WithRoutes(handler.Contact(contactService)...),
		router.WithRoutes(handler.CronJobs(cronServices, config.App.AdminEmails)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.App.FrontendURL),
		middleware.AuthMiddleware(connectionService),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
