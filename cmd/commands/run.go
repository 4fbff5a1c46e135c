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

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"photovault"
	"photovault/config"
	"photovault/internal/application/imaging"
	"photovault/internal/application/usecase"
	"photovault/internal/application/validator"
	"photovault/internal/infrastructure/broker"
	"photovault/internal/infrastructure/database"
	"photovault/internal/infrastructure/minio"
	"photovault/internal/presentation"
	"photovault/internal/presentation/handler"
	"photovault/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("config path expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running photovault", "version", photovault.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer brokerClient.Close()

	publisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer db.Stop()

	photoWriter := database.NewPhotoWriter(db)
	photoRetriever := database.NewPhotoRetriever(db)
	photoRemover := database.NewPhotoRemover(db)
	photoLister := database.NewPhotoLister(db)
	thumbWriter := database.NewThumbnailWriter(db)
	thumbRetriever := database.NewThumbnailRetriever(db)
	thumbRemover := database.NewThumbnailRemover(db)

	minioClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	objUploader := minio.NewUploader(minioClient, &cfg.MinIOUploader)
	objGetter := minio.NewGetter(minioClient)
	objRemover := minio.NewRemover(minioClient, &cfg.MinIORemover)

	v := validator.New(cfg.Upload.MaxSizeMB)
	resizer := imaging.NewResizer(cfg.Thumbnail.Quality)

	uploader := usecase.NewUploader(v, photoWriter, photoRemover, objUploader, objRemover,
		publisher, cfg.Upload.ParallelThreshold, cfg.Upload.Workers)
	getter := usecase.NewGetter(photoRetriever, objGetter)
	deleter := usecase.NewDeleter(photoLister, photoRemover, thumbRetriever, thumbRemover, objRemover)
	lister := usecase.NewLister(photoLister, photoRetriever)
	thumbnailer := usecase.NewThumbnailer(getter, thumbRetriever, thumbWriter, objUploader,
		objGetter, resizer)

	uploadHandler := handler.NewUploadHandler(uploader)
	getHandler := handler.NewGetHandler(getter)
	thumbnailHandler := handler.NewThumbnailHandler(thumbnailer, cfg.Thumbnail.DefaultSize)
	deleteHandler := handler.NewDeleteHandler(deleter)
	listHandler := handler.NewListHandler(lister)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(fmt.Sprintf("%dM", cfg.Upload.MaxSizeMB+1)))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/photos", uploadHandler.HandleSingle)
	e.POST("/photos/batch", uploadHandler.HandleBatch)
	e.POST("/photos/exists", listHandler.HandleExists)
	e.GET(fmt.Sprintf("/photos/:%s", presentation.IDParam), getHandler.HandleGet)
	e.GET(fmt.Sprintf("/photos/:%s/thumbnail", presentation.IDParam), thumbnailHandler.HandleThumbnail)
	e.DELETE(fmt.Sprintf("/photos/:%s", presentation.IDParam), deleteHandler.HandleDelete)
	e.GET(fmt.Sprintf("/visits/:%s/photos", presentation.VisitIDParam), listHandler.HandleVisitPhotos)
	e.DELETE(fmt.Sprintf("/visits/:%s/photos", presentation.VisitIDParam), deleteHandler.HandleDeleteVisit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Thumbnail.Prewarm {
		receiver := broker.NewReceiver(brokerClient)
		prewarmer := usecase.NewPrewarmer(receiver, thumbnailer, cfg.Thumbnail.DefaultSize)

		go func() {
			hostname, _ := os.Hostname()
			if err := prewarmer.Run(ctx, fmt.Sprintf("prewarm-%s", hostname)); err != nil {
				logger.Error("prewarm consumer stopped", "err", err)
			}
		}()
	}

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
}
