package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"hotelmedia"
	"hotelmedia/config"
	"hotelmedia/internal/application/usecase"
	"hotelmedia/internal/infrastructure/broker"
	"hotelmedia/internal/infrastructure/database"
	"hotelmedia/internal/infrastructure/minio"
	"hotelmedia/internal/infrastructure/session"
	"hotelmedia/internal/presentation/handler"
	"hotelmedia/internal/presentation/middleware"
	"hotelmedia/pkg/i18n"
	"hotelmedia/pkg/metrics"
	"hotelmedia/pkg/tracing"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running hotelmedia", "version", hotelmedia.StringVersion())

	shutdownTracing, err := tracing.Init(context.Background(), cfg.Tracing, cfg.Environment, hotelmedia.StringVersion())
	if err != nil {
		ExitOnError(err)
	}

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	brokerReceiver := broker.NewReceiver(brokerClient, cfg.ReceiverConfig)
	revoker := session.NewRevoker(brokerClient.Redis(), cfg.Session)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	collectionStore := database.NewCollectionStore(db)
	roomLister := database.NewRoomLister(db)
	bookingWriter := database.NewBookingWriter(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	minIOBuckets := minio.NewBuckets(minIOClient.MinioClient, cfg.MinIOClient.Region, &cfg.MinIOLister)
	minIOLister := minio.NewLister(minIOClient.MinioClient, &cfg.MinIOLister)
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, minIOClient.URLs, &cfg.MinIOUploader)
	minIOMover := minio.NewMover(minIOClient.MinioClient, &cfg.MinIORemover)
	minIORemover := minio.NewRemover(minIOClient.MinioClient, &cfg.MinIORemover)

	ensurer := usecase.NewBucketEnsurer(minIOBuckets, minIOBuckets)
	manager := usecase.NewManager(ensurer, minIOBuckets, minIOLister, minIOUploader, minIOMover,
		minIORemover, minIOClient.URLs, brokerPublisher, cfg.MediaManager)
	collection := usecase.NewCollection(collectionStore, collectionStore, ensurer, minIOUploader,
		minIORemover, minIOClient.URLs, brokerPublisher, cfg.MediaUploader)
	catalog := usecase.NewCatalog(roomLister, bookingWriter)
	auditor := usecase.NewAuditor(brokerReceiver, cfg.Default.AuditConsumer)

	bodyLimit := cfg.Default.BodyLimit
	if bodyLimit == "" {
		bodyLimit = "200M"
	}

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{
			echo.HeaderAuthorization, echo.HeaderContentType,
			echo.HeaderContentLength, echo.HeaderAcceptEncoding, "Accept-Language",
		},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(bodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))
	e.Use(middleware.RequestMetrics())
	e.Use(middleware.Locale(i18n.Default()))

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	handler.Register(e, handler.Handlers{
		Media:      handler.NewMediaHandler(manager),
		Collection: handler.NewCollectionHandler(collection),
		Nav:        handler.NewNavHandler(usecase.NewNavigator()),
		Catalog:    handler.NewCatalogHandler(catalog),
		Auth:       handler.NewAuthHandler(revoker),
	}, middleware.AdminAuth(middleware.AdminAuthConfig{
		JWTSecret:    []byte(cfg.Auth.JWTSecret),
		AdminPubKeys: cfg.Auth.AdminPubKeys,
		Revoker:      revoker,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		handled, err := auditor.Run(ctx)
		if err != nil {
			logger.Error("media event auditor stopped", "err", err)

			return
		}

		logger.Info("media event auditor stopped", "handled", handled)
	}()

	server := &http.Server{
		Addr:              cfg.Default.Address,
		Handler:           otelhttp.NewHandler(e, "hotelmedia"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Error("couldn't disconnect from database", "err", err)
	}

	if err := brokerClient.Close(); err != nil {
		logger.Error("couldn't close broker client", "err", err)
	}

	if err := shutdownTracing(ctx); err != nil {
		logger.Error("couldn't flush traces", "err", err)
	}
}
