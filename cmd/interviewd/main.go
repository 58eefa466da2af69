package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cloudfit/interviewd/internal/api"
	"github.com/cloudfit/interviewd/internal/metrics"
	"github.com/cloudfit/interviewd/internal/scheduling"
	"github.com/cloudfit/interviewd/internal/storage"
	"github.com/cloudfit/interviewd/pkg/errors"
	"github.com/cloudfit/interviewd/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	registry := scheduling.NewRegistry()

	store := storage.NewFileStore(cfg.Storage, registry, log)
	if err = store.Load(); err != nil {
		log.Panic(errors.WrapFail(err, "load snapshot"))
	}

	storeDone := make(chan struct{})
	go func() {
		store.Run(ctx)
		close(storeDone)
	}()

	promReg := prometheus.NewRegistry()
	collector := metrics.NewCollector(promReg)

	srv := api.NewServer(cfg.API, log, registry, collector, promReg)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn(err)
		}

		<-storeDone
		stopped <- struct{}{}
	})

	log.Infof("serving on %s", cfg.API.HTTP.Addr)
	if err = srv.Serve(ctx); err != nil && ctx.Err() == nil {
		log.Panic(errors.WrapFail(err, "serve http api"))
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
