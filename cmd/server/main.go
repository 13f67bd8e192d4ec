package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	simbackend "swarmdeck/internal/adapter/backend/sim"
	httpadapter "swarmdeck/internal/adapter/http"
	metricsinmem "swarmdeck/internal/adapter/metrics/inmemory"
	gormrepo "swarmdeck/internal/adapter/repo/gorm"
	memrepo "swarmdeck/internal/adapter/repo/memory"
	"swarmdeck/internal/adapter/viewstore"
	"swarmdeck/internal/app/mediator"
	"swarmdeck/internal/app/scheduler"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	templates, audit := buildReposFromEnv()

	backend := simbackend.New(simbackend.Config{
		StepSize: floatEnv("SWARMDECK_SIM_STEP_SIZE", 0.1),
		Seed:     int64(intEnv("SWARMDECK_SIM_SEED", 0)),
	}, templates, audit)

	med := mediator.New(backend, backend)
	views := viewstore.New()
	kpiRecorder := metricsinmem.NewRecorder()

	sched := scheduler.New(med, views, scheduler.Config{
		DataInterval: time.Duration(intEnv("SWARMDECK_DATA_REFRESH_MS", 1000)) * time.Millisecond,
		StepInterval: time.Duration(intEnv("SWARMDECK_SIM_STEP_MS", 100)) * time.Millisecond,
	}, kpiRecorder)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sched.Run(ctx)

	h := httpadapter.Handler{
		Med:       med,
		Submitter: sched,
		Views:     views,
		KPI:       kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("SWARMDECK_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("swarmdeck server listening on %s", addr)
	s.Spin()
}

// buildReposFromEnv returns the template and audit stores: postgres-backed
// when SWARMDECK_DB_DSN is set, in-memory otherwise.
func buildReposFromEnv() (simbackend.TemplateStore, simbackend.CommandAudit) {
	dsn := strings.TrimSpace(os.Getenv("SWARMDECK_DB_DSN"))
	if dsn == "" {
		log.Println("SWARMDECK_DB_DSN not set, using in-memory stores")
		return memrepo.NewTemplateRepo(nil), memrepo.NewAuditRepo()
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	if err := gormrepo.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	templates := gormrepo.NewTemplateRepo(db)
	tx := gormrepo.NewTxManager(db)
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		return templates.Seed(ctx, memrepo.DefaultTemplates())
	})
	if err != nil {
		log.Fatalf("seed templates: %v", err)
	}

	return templates, gormrepo.NewAuditRepo(db)
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
