// Command cleanup physically removes questions that were soft-deleted longer
// ago than the configured retention period, together with their answers,
// votes and reports. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/qaboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/qaboard-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/qaboard-backend/internal/app"
	"github.com/heartmarshall/qaboard-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	questions := question.New(pool)

	threshold := time.Now().AddDate(0, 0, -cfg.Board.HardDeleteRetentionDays)

	var total int64
	for {
		var deleted int64
		err := txm.RunInTx(ctx, func(txCtx context.Context) error {
			ids, err := questions.ListPurgeable(txCtx, threshold, cfg.Board.PurgeBatchSize)
			if err != nil {
				return err
			}
			deleted, err = purge(txCtx, questions, ids)
			return err
		})
		if err != nil {
			logger.Error("hard delete failed",
				slog.String("error", err.Error()),
				slog.Time("threshold", threshold),
				slog.Int64("deleted_so_far", total),
			)
			os.Exit(1)
		}

		total += deleted
		if deleted < int64(cfg.Board.PurgeBatchSize) {
			break
		}
	}

	logger.Info("hard delete completed",
		slog.Int64("deleted", total),
		slog.Time("threshold", threshold),
	)
}

func purge(ctx context.Context, questions *question.Repo, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return questions.HardDelete(ctx, ids)
}
