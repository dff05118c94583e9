package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	clientUsecases "ddportal/internal/application/client/usecases"
	projectUsecases "ddportal/internal/application/project/usecases"
	ticketUsecases "ddportal/internal/application/ticket/usecases"
	"ddportal/internal/domain/shared/events"
	"ddportal/internal/infrastructure/auth"
	"ddportal/internal/infrastructure/config"
	"ddportal/internal/infrastructure/email"
	"ddportal/internal/infrastructure/notification"
	"ddportal/internal/infrastructure/ratelimit"
	"ddportal/internal/infrastructure/repository"
	clienthandler "ddportal/internal/interfaces/http/handlers/client"
	projecthandler "ddportal/internal/interfaces/http/handlers/project"
	tickethandler "ddportal/internal/interfaces/http/handlers/ticket"
	"ddportal/internal/interfaces/http/middleware"
	"ddportal/internal/interfaces/http/routes"
	"ddportal/internal/shared/db"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/markdown"
)

const eventBufferSize = 256

// Router wires repositories, use cases, handlers, and middleware into a
// runnable HTTP server.
type Router struct {
	engine     *gin.Engine
	cfg        *config.Config
	log        logger.Interface
	dispatcher *events.InMemoryEventDispatcher
	redis      *redis.Client
	server     *http.Server
}

// NewRouter builds the full application graph on top of the given database
// handle. The event dispatcher is not started yet; Start takes care of that.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log.Named("http")))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Repositories
	clientRepo := repository.NewClientRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	projectRepo := repository.NewProjectRepository(database)
	templateRepo := repository.NewPhaseTemplateRepository(database)

	// Shared services
	txMgr := db.NewTransactionManager(database)
	md := markdown.NewService()

	dispatcher := events.NewInMemoryEventDispatcher(eventBufferSize)
	dispatcher.SetErrorCallback(func(event events.DomainEvent, err error) {
		log.Errorw("event handler failed", "event_type", event.GetEventType(), "error", err)
	})

	emailService := email.NewSMTPEmailService(&cfg.Email)
	notifier := notification.NewNotifier(&cfg.Notification, emailService, cfg.Email.AdminAddress, log)
	if err := notifier.Register(dispatcher); err != nil {
		return nil, fmt.Errorf("failed to register notifier: %w", err)
	}

	// Auth
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log.Named("auth"))

	// Rate limiting is backed by redis and only dialed when enabled.
	var redisClient *redis.Client
	var rateLimitMW gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		rateLimitMW = middleware.RateLimit(limiter, &cfg.RateLimit, log.Named("ratelimit"))
	}

	// Ticket use cases
	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, clientRepo, dispatcher, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, md, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	claimTicketUC := ticketUsecases.NewClaimTicketUseCase(ticketRepo, log)
	unclaimTicketUC := ticketUsecases.NewUnclaimTicketUseCase(ticketRepo, log)
	resolveTicketUC := ticketUsecases.NewResolveTicketUseCase(ticketRepo, dispatcher, log)
	setTicketStatusUC := ticketUsecases.NewSetTicketStatusUseCase(ticketRepo, log)
	addCommentUC := ticketUsecases.NewAddCommentUseCase(ticketRepo, txMgr, dispatcher, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log)
	logTimeUC := ticketUsecases.NewLogTimeUseCase(ticketRepo, clientRepo, txMgr, log)
	updateTimeEntryUC := ticketUsecases.NewUpdateTimeEntryUseCase(ticketRepo, clientRepo, txMgr, log)
	deleteTimeEntryUC := ticketUsecases.NewDeleteTimeEntryUseCase(ticketRepo, clientRepo, txMgr, log)
	listTimeEntriesUC := ticketUsecases.NewListTimeEntriesUseCase(ticketRepo, log)

	// Project use cases
	createProjectUC := projectUsecases.NewCreateProjectUseCase(projectRepo, templateRepo, clientRepo, txMgr, log)
	getProjectUC := projectUsecases.NewGetProjectUseCase(projectRepo, md, log)
	listProjectsUC := projectUsecases.NewListProjectsUseCase(projectRepo, log)
	updateProjectUC := projectUsecases.NewUpdateProjectUseCase(projectRepo, log)
	deleteProjectUC := projectUsecases.NewDeleteProjectUseCase(projectRepo, log)
	createPhaseUC := projectUsecases.NewCreatePhaseUseCase(projectRepo, log)
	setPhaseStatusUC := projectUsecases.NewSetPhaseStatusUseCase(projectRepo, txMgr, dispatcher, log)
	updatePhaseUC := projectUsecases.NewUpdatePhaseUseCase(projectRepo, log)
	deletePhaseUC := projectUsecases.NewDeletePhaseUseCase(projectRepo, txMgr, log)
	reorderPhasesUC := projectUsecases.NewReorderPhasesUseCase(projectRepo, txMgr, log)
	applyTemplateUC := projectUsecases.NewApplyPhaseTemplateUseCase(projectRepo, templateRepo, txMgr, log)
	createTemplateUC := projectUsecases.NewCreateTemplateUseCase(templateRepo, txMgr, log)
	listTemplatesUC := projectUsecases.NewListTemplatesUseCase(templateRepo, log)

	// Client use cases
	createClientUC := clientUsecases.NewCreateClientUseCase(clientRepo, log)
	getClientUC := clientUsecases.NewGetClientUseCase(clientRepo, log)
	listClientsUC := clientUsecases.NewListClientsUseCase(clientRepo, log)
	updateClientUC := clientUsecases.NewUpdateClientUseCase(clientRepo, log)
	archiveClientUC := clientUsecases.NewArchiveClientUseCase(clientRepo, log)
	resetSupportCycleUC := clientUsecases.NewResetSupportCycleUseCase(clientRepo, log)

	// Handlers
	ticketHandler := tickethandler.NewTicketHandler(
		createTicketUC,
		getTicketUC,
		listTicketsUC,
		claimTicketUC,
		unclaimTicketUC,
		resolveTicketUC,
		setTicketStatusUC,
		addCommentUC,
		deleteTicketUC,
		logTimeUC,
		updateTimeEntryUC,
		deleteTimeEntryUC,
		listTimeEntriesUC,
	)
	projectHandler := projecthandler.NewProjectHandler(
		createProjectUC,
		getProjectUC,
		listProjectsUC,
		updateProjectUC,
		deleteProjectUC,
		createPhaseUC,
		setPhaseStatusUC,
		updatePhaseUC,
		deletePhaseUC,
		reorderPhasesUC,
		applyTemplateUC,
		createTemplateUC,
		listTemplatesUC,
	)
	clientHandler := clienthandler.NewClientHandler(
		createClientUC,
		getClientUC,
		listClientsUC,
		updateClientUC,
		archiveClientUC,
		resetSupportCycleUC,
	)

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
		RateLimit:      rateLimitMW,
	})
	routes.SetupProjectRoutes(engine, &routes.ProjectRouteConfig{
		ProjectHandler: projectHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupClientRoutes(engine, &routes.ClientRouteConfig{
		ClientHandler:  clientHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{
		engine:     engine,
		cfg:        cfg,
		log:        log,
		dispatcher: dispatcher,
		redis:      redisClient,
	}, nil
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start launches the event dispatcher and the HTTP server. It blocks until
// the server stops.
func (r *Router) Start() error {
	if err := r.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}

	r.server = &http.Server{
		Addr:              r.cfg.Server.GetAddr(),
		Handler:           r.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	r.log.Infow("starting HTTP server", "addr", r.server.Addr)
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, stops the event dispatcher, and closes
// the redis connection.
func (r *Router) Shutdown(ctx context.Context) error {
	var firstErr error

	if r.server != nil {
		if err := r.server.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}

	if err := r.dispatcher.Stop(); err != nil && firstErr == nil {
		firstErr = err
	}

	if r.redis != nil {
		if err := r.redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
