package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/atinyakov/url-registry/internal/app/server"
	"github.com/atinyakov/url-registry/internal/app/service"
	"github.com/atinyakov/url-registry/internal/config"
	"github.com/atinyakov/url-registry/internal/generator"
	"github.com/atinyakov/url-registry/internal/logger"
	"github.com/atinyakov/url-registry/internal/repository"
	"github.com/atinyakov/url-registry/internal/storage"
)

var buildVersion string
var buildDate string
var buildCommit string

const shutdownTimeout = 10 * time.Second

func main() {
	options, err := config.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	zapLogger := log.Log
	zapLogger.Info("Starting url registry",
		zap.String("version", buildVersion),
		zap.String("date", buildDate),
		zap.String("commit", buildCommit),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, options, zapLogger); err != nil {
		zapLogger.Fatal("url registry stopped", zap.Error(err))
	}
}

func run(ctx context.Context, options *config.Options, zapLogger *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	codes := generator.NewNanoID(generator.DefaultLength)

	var s service.Storage
	if options.InMemory {
		zapLogger.Info("using in memory storage")

		mem, err := storage.CreateMemoryStorage(codes)
		if err != nil {
			return err
		}
		s = mem
	} else {
		zapLogger.Info("using db")

		db, err := repository.InitDB(ctx, options.DatabaseURL, repository.DefaultPoolOptions(options.MaxConns), zapLogger)
		if err != nil {
			return err
		}
		defer closeDB(db, zapLogger)

		reg.MustRegister(collectors.NewDBStatsCollector(db, "urls"))
		s = repository.CreateURLRepository(db, codes, zapLogger)
	}

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	urlService := service.NewURL(s, zapLogger)
	r := server.Init(urlService, zapLogger, server.Options{
		RequestTimeout: options.RequestTimeout,
		Registry:       reg,
	})

	srv := &http.Server{
		Addr:              options.Address,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("Server is running", zap.String("address", options.Address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zapLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func closeDB(db *sql.DB, zapLogger *zap.Logger) {
	if err := db.Close(); err != nil {
		zapLogger.Error("close database", zap.Error(err))
	}
}
