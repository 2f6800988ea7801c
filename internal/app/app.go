package app

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lbi-bank/ods-console/internal/config"
	"github.com/lbi-bank/ods-console/internal/db"
	"github.com/lbi-bank/ods-console/internal/observability"
	"github.com/lbi-bank/ods-console/internal/refcache"
	"github.com/lbi-bank/ods-console/internal/repository"
	"github.com/lbi-bank/ods-console/internal/seed"
	"github.com/lbi-bank/ods-console/internal/service"
)

// Console bundles the wired read layer behind the report command. It owns
// the pool and optional redis client.
type Console struct {
	Repo      *repository.Repository
	Parties   *service.PartyService
	Reference *service.ReferenceService
	Reports   *service.ReportService

	pool  *pgxpool.Pool
	redis *redis.Client
}

// NewConsole connects and wires the full read layer. Redis is optional:
// an empty RedisURL disables the reference cache.
func NewConsole(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Console, error) {
	observability.Init()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = newRedisClient(cfg.RedisURL)
		if err != nil {
			// The cache is an optimization; a dead redis must not keep
			// the console from reading the ODS.
			logger.Warn("reference cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	var cache *refcache.Store
	if redisClient != nil {
		cache = refcache.NewStore(redisClient, cfg.ReferenceCacheTTL)
	}

	repo := repository.NewRepository(pool).WithQueryTimeout(cfg.QueryTimeout)
	parties := service.NewPartyService(repo)
	reference := service.NewReferenceService(repo, cache)
	reports := service.NewReportService(repo, parties, reference)

	return &Console{
		Repo:      repo,
		Parties:   parties,
		Reference: reference,
		Reports:   reports,
		pool:      pool,
		redis:     redisClient,
	}, nil
}

// Close releases the pool and redis client.
func (c *Console) Close() {
	if c.redis != nil {
		c.redis.Close()
	}
	c.pool.Close()
}

// RunSeed bootstraps the provisioning run: load config, connect, seed the
// access-control catalog, exit. One shot, no server.
func RunSeed() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	observability.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store := repository.NewStore(pool).WithQueryTimeout(cfg.QueryTimeout)
	seeder := seed.NewSeeder(store, catalog, logger)
	return seeder.Run(ctx)
}

// RunReport prints a console view as JSON on stdout: a customer overview
// for -customer, a transaction drill-down for -order.
func RunReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	customerID := fs.String("customer", "", "customer id to summarize")
	orderID := fs.String("order", "", "transaction order id to drill into")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*customerID == "") == (*orderID == "") {
		return fmt.Errorf("exactly one of -customer or -order is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	console, err := NewConsole(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer console.Close()

	if *customerID != "" {
		overview, err := console.Reports.CustomerOverview(ctx, *customerID)
		if err != nil {
			return err
		}
		if overview == nil {
			return fmt.Errorf("customer %s not found", *customerID)
		}
		return printJSON(overview)
	}

	report, err := console.Reports.TransactionReport(ctx, *orderID)
	if err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("order %s not found", *orderID)
	}
	return printJSON(report)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func loadCatalog(path string) (*seed.Catalog, error) {
	if path != "" {
		return seed.LoadCatalogFile(path)
	}
	return seed.LoadCatalog()
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	switch strings.ToLower(level) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info", "":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func newRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
