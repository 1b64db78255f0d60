package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/logger"
	"go.uber.org/zap"
)

// TxManager is the explicit transaction boundary used by the application
// layer. Use cases describe their atomic unit as a function; the manager owns
// begin/commit/rollback so the boundary stays an injectable, testable unit.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// PgxTxManager implements TxManager on top of a pgx connection pool.
type PgxTxManager struct {
	pool *pgxpool.Pool
}

func NewPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

// WithinTx runs fn inside a database transaction. Any error (or panic) from fn
// rolls the transaction back, so no partial effect is ever observable.
func (m *PgxTxManager) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("tx manager: failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.GetLogger().Error("TxManager: recovered from panic during transaction",
				zap.Any("panic", r),
			)
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		logger.GetLogger().Error("TxManager: failed to commit transaction",
			zap.Error(commitErr),
		)
		return fmt.Errorf("tx manager: failed to commit transaction: %w", commitErr)
	}
	return nil
}
