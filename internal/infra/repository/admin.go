package repository

import (
	"context"
	"time"

	"weekend-booking/internal/domain/admin"
	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AdminWriteQueries interface {
	CreateAdminIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAdminIfAbsentParams) (int64, error)
	UpdateAdminLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAdminLastLoginParams) error
}

type AdminRepository struct {
	queries AdminWriteQueries
}

func NewAdminRepository(queries AdminWriteQueries) *AdminRepository {
	return &AdminRepository{queries: queries}
}

// CreateIfAbsent reports false when an admin with the same email exists.
func (r *AdminRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) (bool, error) {
	n, err := r.queries.CreateAdminIfAbsent(ctx, tx, sqlc.CreateAdminIfAbsentParams{
		ID:           a.ID(),
		Name:         a.Name(),
		Email:        a.Email().Value(),
		PasswordHash: a.PasswordHash(),
		CreatedAt:    pgconv.TimeToPgtype(a.CreatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to create admin", err)
	}
	return n > 0, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.UpdateAdminLastLogin(ctx, tx, sqlc.UpdateAdminLastLoginParams{
		ID:          id,
		LastLoginAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update admin last login", err)
	}
	return nil
}
