package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	cache "github.com/krisalay/simple-nav"
	"github.com/krisalay/simple-nav/catalog"
	"github.com/krisalay/simple-nav/clock"
	"github.com/krisalay/simple-nav/config"
	"github.com/krisalay/simple-nav/directory"
	"github.com/krisalay/simple-nav/engine"
	"github.com/krisalay/simple-nav/expiration"
	"github.com/krisalay/simple-nav/httpapi"
	"github.com/krisalay/simple-nav/metrics"
	"github.com/krisalay/simple-nav/storage"
	"github.com/krisalay/simple-nav/storage/sqlite"
	"github.com/krisalay/simple-nav/types"
	"github.com/krisalay/simple-nav/writepolicy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := log.Default()
	m := metrics.New()

	// ---------------- Storage ----------------
	shared, closeStorage, err := openStorage(cfg, m, logger)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer closeStorage()

	// ---------------- Cache ----------------
	eng := engine.NewCacheEngine(&expiration.ExpireAfterWrite{}, m, logger, clock.SystemUTC{})
	svc := cache.New(storage.NewNamespaced(shared, cfg.Namespace), eng)

	// ---------------- Directory ----------------
	cat := catalog.Default()
	dir := directory.New(svc, cat, directory.Options{
		AllSitesTTL: cfg.AllSitesTTL,
		SearchTTL:   cfg.SearchTTL,
		Observer:    m,
	})
	board := directory.NewAnnouncementBoard(shared, cat.Announcements())

	// ---------------- HTTP ----------------
	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(httpapi.NewHandler(dir, board, m.Handler(), logger))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("simple-nav listening on %s (storage=%s namespace=%q)", cfg.Addr, cfg.Storage, cfg.Namespace)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

/*
openStorage builds the shared storage namespace.

memory: one bounded Memory store.
sqlite: a bounded Memory front over the SQLite file, kept in sync by the configured write policy.
*/
func openStorage(cfg config.Config, m *metrics.Metrics, logger types.Logger) (storage.Storage, func(), error) {
	front := storage.NewMemory(storage.MemoryOptions{
		MaxEntries: cfg.MaxEntries,
		MaxBytes:   cfg.MaxBytes,
		Eviction:   cfg.EvictionPolicy(),
		OnEvict:    func(string) { m.Eviction() },
	})

	if cfg.Storage == config.StorageMemory {
		return front, func() {}, nil
	}

	db, err := sqlite.Open(cfg.SQLitePath, cfg.SQLiteTimeout)
	if err != nil {
		return nil, nil, err
	}

	var policy writepolicy.WritePolicy
	if cfg.WriteMode == config.WriteThrough {
		policy = writepolicy.NewWriteThroughPolicy(db, logger)
	} else {
		policy = writepolicy.NewWriteBackPolicy(db, cfg.WriteBackBuffer, logger)
	}

	tiered := storage.NewTiered(front, db, policy, cfg.SQLiteTimeout)
	return tiered, func() {
		tiered.Close()
		if err := db.Close(); err != nil {
			logger.Printf("close sqlite: %v", err)
		}
	}, nil
}
