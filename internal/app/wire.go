package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/inkblot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/inkblot-backend/internal/adapter/postgres/response"
	subjectrepo "github.com/heartmarshall/inkblot-backend/internal/adapter/postgres/subject"
	"github.com/heartmarshall/inkblot-backend/internal/adapter/postgres/summary"
	"github.com/heartmarshall/inkblot-backend/internal/adapter/redis/reportcache"
	"github.com/heartmarshall/inkblot-backend/internal/config"
	"github.com/heartmarshall/inkblot-backend/internal/metrics"
	"github.com/heartmarshall/inkblot-backend/internal/service/protocol"
	"github.com/heartmarshall/inkblot-backend/internal/service/subject"
	"github.com/heartmarshall/inkblot-backend/internal/transport/middleware"
	"github.com/heartmarshall/inkblot-backend/internal/transport/rest"
)

// Services bundles the application services built on one database pool.
type Services struct {
	Subjects *subject.Service
	Protocol *protocol.Service
	Metrics  *metrics.Metrics
}

// NewServices wires repositories, the report cache and the services.
// rdb may be nil, in which case reports are never cached.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) *Services {
	m := metrics.New(cfg.Metrics.Runtime)

	subjects := subjectrepo.New(pool)
	responses := response.New(pool)
	summaries := summary.New(pool)
	txm := postgres.NewTxManager(pool)

	var cache reportcache.Store = reportcache.Noop{}
	if rdb != nil {
		cache = reportcache.New(rdb, cfg.Redis.Prefix, cfg.Scoring.ReportCacheTTL)
	}

	return &Services{
		Subjects: subject.NewService(logger, subjects),
		Protocol: protocol.NewService(logger, subjects, responses, summaries, cache, m, txm, protocol.Limits{
			MaxResponses:       cfg.Scoring.MaxResponses,
			RescoreConcurrency: cfg.Scoring.RescoreConcurrency,
		}),
		Metrics: m,
	}
}

// NewRedis connects to the report cache. It returns nil when no address is
// configured.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewHandler builds the HTTP handler with the full middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, svc *Services, db, cache rest.PingFunc) http.Handler {
	var cachePinger interface {
		Ping(ctx context.Context) error
	}
	if cache != nil {
		cachePinger = cache
	}

	routes := rest.Routes{
		Subjects: rest.NewSubjectHandler(svc.Subjects, logger),
		Protocol: rest.NewProtocolHandler(svc.Protocol, logger),
		Health:   rest.NewHealthHandler(db, cachePinger, BuildVersion()),
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = svc.Metrics.Handler()
		routes.MetricsPath = cfg.Metrics.Path
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(svc.Metrics),
	)
	return chain(rest.NewRouter(routes))
}
