package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"sgf_keeper/internal/adapters"
	"sgf_keeper/internal/bootstrap"
	recordDelivery "sgf_keeper/internal/delivery/record"
	"sgf_keeper/internal/delivery/rpc"
	ownMiddleware "sgf_keeper/internal/middleware"
	repo "sgf_keeper/internal/repository"
	recorduc "sgf_keeper/internal/usecase/record"
)

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Errorw("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore := initRecordStore(ctx, logger, *cfg)
	defer closeStore()

	recordUC := recorduc.NewRecordUseCase(store, logger, cfg.PageLimitRecords)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(rpc.LoggingInterceptor(logger)))
	rpc.RegisterFormatterServer(grpcServer, rpc.NewFormatter(logger, recordUC))

	lis, err := net.Listen("tcp", ":"+cfg.GrpcPort)
	if err != nil {
		logger.Fatalw("cant listen grpc port", zap.Error(err))
	}
	go func() {
		logger.Infof("gRPC server is running on port %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Errorw("grpc server stopped", zap.Error(err))
		}
	}()

	r := chi.NewRouter()
	if cfg.IsLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	recordDelivery.NewRecordHandler(*cfg, logger, recordUC).Routes(r)

	srv := &http.Server{Addr: ":" + cfg.ServerPort, Handler: r}
	go func() {
		logger.Infof("Server is running on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("http shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

// initRecordStore falls back to in-memory storage when MONGO_URI is empty.
func initRecordStore(ctx context.Context, log *zap.SugaredLogger, cfg bootstrap.Config) (recorduc.RecordStore, func()) {
	if cfg.MongoUri == "" {
		log.Warn("MONGO_URI is not set, records are kept in memory")
		return repo.NewMapRecordStorage(), func() {}
	}

	databaseAdapters := initDatabaseAdapters(ctx, log, cfg)
	store := repo.NewRecordRepository(cfg, log, databaseAdapters.redisAdapter.GetClient(), databaseAdapters.mongoAdapter.Database)
	return store, func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = databaseAdapters.mongoAdapter.Close(closeCtx)
		_ = databaseAdapters.redisAdapter.Close(closeCtx)
	}
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg bootstrap.Config) *dataBaseAdapters {
	mongoAdapter := adapters.NewAdapterMongo(&cfg, log)
	if err := mongoAdapter.Init(ctx); err != nil {
		log.Fatalw("failed to initialize MongoDB", zap.Error(err))
	}

	redisAdapter := adapters.NewAdapterRedis(&cfg, log)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatalw("failed to initialize Redis", zap.Error(err))
	}

	log.Info("database adapters initialized")
	return &dataBaseAdapters{
		redisAdapter: redisAdapter,
		mongoAdapter: mongoAdapter,
	}
}
