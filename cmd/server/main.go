package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abhinandan-srcs/youtube-clone/internal/domain/entity"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/config"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/email"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/ffmpeg"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/httpapi"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/metrics"
	miniostorage "github.com/Abhinandan-srcs/youtube-clone/internal/infra/minio"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/postgres"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/rabbitmq"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/staging"
	"github.com/Abhinandan-srcs/youtube-clone/internal/infra/tracing"
	"github.com/Abhinandan-srcs/youtube-clone/internal/usecase"
	"github.com/Abhinandan-srcs/youtube-clone/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	log, err := logger.New(cfg.LogLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	log.Info("starting video-processing-service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolutions, err := entity.ParseResolutions(cfg.Resolutions)
	fatalOnErr(err, "parse resolution set")

	// Tracing (non-fatal if Jaeger unavailable)
	tp, err := tracing.InitTracer(ctx, cfg.JaegerEndpoint)
	if err != nil {
		log.Warn("tracing init failed, continuing without tracing", zap.Error(err))
	} else {
		defer tp.Shutdown(ctx)
	}

	// Staging directories, created once, reused across jobs
	stagingArea := staging.NewArea(cfg.RawDir, cfg.ProcessedDir, resolutions)
	fatalOnErr(stagingArea.EnsureAllDirectories(), "create staging directories")

	// Database
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	fatalOnErr(err, "connect to postgres")
	defer pool.Close()

	err = postgres.RunMigrations(cfg.DatabaseURL, "migrations")
	if err != nil {
		log.Warn("migration warning", zap.Error(err))
	}

	// MinIO
	storage, err := miniostorage.NewStorage(miniostorage.StorageConfig{
		Endpoint:        cfg.MinIOEndpoint,
		AccessKey:       cfg.MinIOAccessKey,
		SecretKey:       cfg.MinIOSecretKey,
		UseSSL:          cfg.MinIOUseSSL,
		RawBucket:       cfg.MinIORawBucket,
		ProcessedBucket: cfg.MinIOProcessedBucket,
		PublicRead:      cfg.PublicRead,
	})
	fatalOnErr(err, "create minio storage")
	fatalOnErr(storage.EnsureBuckets(ctx), "ensure minio buckets")

	// RabbitMQ status publisher
	rmqConn, err := amqp.Dial(cfg.RabbitMQURL)
	fatalOnErr(err, "connect to rabbitmq")
	defer rmqConn.Close()

	pub, err := rabbitmq.NewPublisher(rmqConn, cfg.RabbitMQExchange, cfg.RabbitMQStatusQueue)
	fatalOnErr(err, "create rabbitmq publisher")
	statusPub := rabbitmq.NewStatusPublisher(pub)

	// Infra adapters
	repo := postgres.NewJobRepository(pool)
	transcoder := ffmpeg.NewTranscoder(log)
	notifier := email.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, log)

	// Use case
	uc := usecase.NewProcessVideoUseCase(
		storage, transcoder, stagingArea,
		repo, statusPub, notifier,
		log,
		usecase.ProcessVideoConfig{
			Resolutions: resolutions,
			NotifyEmail: cfg.NotifyEmail,
		},
	)

	// Metrics server
	metricsSrv := metrics.StartServer(cfg.MetricsPort, log)

	// Trigger endpoint
	handler := httpapi.NewHandler(uc, log)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler.Router(),
	}

	go func() {
		log.Info("trigger endpoint listening", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", zap.Error(err))
			cancel()
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
	metricsSrv.Shutdown(shutdownCtx)

	log.Info("video-processing-service stopped")
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		panic(msg + ": " + err.Error())
	}
}
