package recentpnr

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
	"github.com/m04kA/SMC-BookingWindow/pkg/psqlbuilder"
)

const tableRecentPNRs = "recent_pnrs"

// Repository репозиторий недавно просмотренных PNR
type Repository struct {
	db    DB
	limit int
}

// NewRepository создает новый экземпляр репозитория
// limit <= 0 заменяется на domain.RecentPNRLimit
func NewRepository(db DB, limit int) *Repository {
	if limit <= 0 {
		limit = domain.RecentPNRLimit
	}
	return &Repository{db: db, limit: limit}
}

// Add сохраняет PNR в список пользователя и обрезает список до limit самых свежих записей.
// Повторный просмотр того же PNR только обновляет viewed_at.
func (r *Repository) Add(ctx context.Context, userID int64, pnr string, viewedAt time.Time) (err error) {
	upsertQuery, upsertArgs, err := psqlbuilder.Insert(tableRecentPNRs).
		Columns("user_id", "pnr", "viewed_at").
		Values(userID, pnr, viewedAt).
		Suffix("ON CONFLICT (user_id, pnr) DO UPDATE SET viewed_at = EXCLUDED.viewed_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Add - build upsert query: %v", ErrBuildQuery, err)
	}

	trimQuery, trimArgs, err := psqlbuilder.Delete(tableRecentPNRs).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Expr(
			"pnr NOT IN (SELECT pnr FROM "+tableRecentPNRs+" WHERE user_id = ? ORDER BY viewed_at DESC LIMIT ?)",
			userID, r.limit,
		)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Add - build trim query: %v", ErrBuildQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: Add - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		return fmt.Errorf("%w: Add - execute upsert: %v", ErrExecQuery, err)
	}

	if _, err = tx.ExecContext(ctx, trimQuery, trimArgs...); err != nil {
		return fmt.Errorf("%w: Add - execute trim: %v", ErrExecQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Add - commit: %v", ErrTransaction, err)
	}

	return nil
}

// List возвращает недавние PNR пользователя, самые свежие первыми
func (r *Repository) List(ctx context.Context, userID int64) ([]domain.RecentPNR, error) {
	query, args, err := psqlbuilder.Select("pnr", "viewed_at").
		From(tableRecentPNRs).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("viewed_at DESC").
		Limit(uint64(r.limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	recent := make([]domain.RecentPNR, 0, r.limit)
	for rows.Next() {
		var item domain.RecentPNR
		if err := rows.Scan(&item.PNR, &item.ViewedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan: %v", ErrScanRow, err)
		}
		recent = append(recent, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return recent, nil
}

// Clear удаляет весь список пользователя
func (r *Repository) Clear(ctx context.Context, userID int64) error {
	query, args, err := psqlbuilder.Delete(tableRecentPNRs).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
