package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/qaboard-backend/internal/adapter/postgres"
	answerrepo "github.com/heartmarshall/qaboard-backend/internal/adapter/postgres/answer"
	auditrepo "github.com/heartmarshall/qaboard-backend/internal/adapter/postgres/audit"
	questionrepo "github.com/heartmarshall/qaboard-backend/internal/adapter/postgres/question"
	reportrepo "github.com/heartmarshall/qaboard-backend/internal/adapter/postgres/report"
	voterepo "github.com/heartmarshall/qaboard-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/qaboard-backend/internal/adapter/viewcache"
	"github.com/heartmarshall/qaboard-backend/internal/auth"
	"github.com/heartmarshall/qaboard-backend/internal/config"
	"github.com/heartmarshall/qaboard-backend/internal/service/moderation"
	"github.com/heartmarshall/qaboard-backend/internal/service/qna"
	"github.com/heartmarshall/qaboard-backend/internal/service/vote"
	"github.com/heartmarshall/qaboard-backend/internal/transport/graphql"
	"github.com/heartmarshall/qaboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/qaboard-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, serves HTTP until ctx is cancelled and then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, cleanup, err := NewHandler(cfg, logger, pool)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler wires repositories, services and transport into the HTTP
// handler. The returned cleanup stops background workers.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func(), error) {
	// Repositories.
	txm := postgres.NewTxManager(pool)
	questions := questionrepo.New(pool)
	answers := answerrepo.New(pool)
	votes := voterepo.New(pool)
	reports := reportrepo.New(pool)
	audit := auditrepo.New(pool)

	// Services.
	ledger := vote.NewLedger(logger, votes)
	views := viewcache.New(cfg.Board.ViewDedupSize, cfg.Board.ViewDedupWindow)
	qnaService := qna.NewService(logger, questions, answers, ledger, views, audit, txm, cfg.Board.Policy())
	moderationService := moderation.NewService(logger, questions, answers, reports, audit, txm)

	schema, err := postgres.NewSchema(pool)
	if err != nil {
		return nil, nil, err
	}

	// Transport.
	mux := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, schema, BuildVersion()),
		QnA:    rest.NewQnAHandler(qnaService, middleware.ClientKey, logger),
		Admin:  rest.NewAdminHandler(moderationService, logger),
	})

	if cfg.GraphQL.Enabled {
		gql, err := graphql.NewHandler(logger, qnaService, graphql.Config{ComplexityLimit: cfg.GraphQL.ComplexityLimit})
		if err != nil {
			return nil, nil, err
		}
		mux.Handle("/graphql", gql)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	cleanup := func() {}
	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		limit = limiter.Limit(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		cleanup = limiter.Stop
	}

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		limit,
	)

	return chain(mux), cleanup, nil
}
