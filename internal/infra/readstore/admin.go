package readstore

import (
	"context"

	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/pgconv"
	"weekend-booking/internal/usecase/queries"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdminReadQueries interface {
	GetAdminByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Admins, error)
	GetAdminByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Admins, error)
}

type AdminReadStore struct {
	queries AdminReadQueries
}

func NewAdminReadStore(queries AdminReadQueries) *AdminReadStore {
	return &AdminReadStore{queries: queries}
}

func (s *AdminReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.AdminView, error) {
	row, err := s.queries.GetAdminByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin by ID", err)
	}
	return &queries.AdminView{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		LastLoginAt: pgconv.TimePtrFromPgtype(row.LastLoginAt),
	}, nil
}

// FindByEmail returns the credential snapshot used by login.
func (s *AdminReadStore) FindByEmail(ctx context.Context, db sqlc.DBTX, email string) (*shared.AdminSnapshot, error) {
	row, err := s.queries.GetAdminByEmail(ctx, db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin by email", err)
	}
	return &shared.AdminSnapshot{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
	}, nil
}
