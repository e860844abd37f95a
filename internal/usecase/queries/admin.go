package queries

import (
	"context"

	"weekend-booking/internal/infra"
	sqlc "weekend-booking/internal/infra/sqlc/generated"
	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrAdminNotFound means the token outlived its admin.
var ErrAdminNotFound = errs.NewReason(errs.ErrUnauthorized, "admin_not_found", "admin account no longer exists")

type AdminReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*AdminView, error)
}

type AdminQueries interface {
	GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AdminView, error)
}

type adminQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore AdminReadStore
}

func NewAdminQueries(uow shared.UnitOfWork, readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{uow: uow, readStore: readStore}
}

func (q *adminQueriesImpl) GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*AdminView, error) {
	var view *AdminView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		view, err = q.readStore.FindByID(ctx, db, adminID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return view, nil
}
