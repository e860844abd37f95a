package commands

import (
	"context"
	"log/slog"
	"time"

	"weekend-booking/internal/domain/admin"
	"weekend-booking/internal/infra"
	"weekend-booking/internal/pkg/clock"
	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/pkg/jwt"
	"weekend-booking/internal/pkg/password"
	"weekend-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrAdminSeed       = errs.New("admin seeding failed")
)

type LoginResult struct {
	AdminID   uuid.UUID
	Name      string
	Email     string
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// EnsureAdmin creates the admin unless one with that email exists.
	// An existing admin keeps its password.
	EnsureAdmin(ctx context.Context, email, name, password string) (bool, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     *password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher *password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := admin.NewCredentials(email, pw)
	if err != nil {
		return nil, err
	}

	snap, err := a.uow.CommandReads().AdminByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Unknown email and wrong password look the same to the caller.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, admin.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, admin.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateToken(snap.ID, snap.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Admins().UpdateLastLogin(ctx, tx.DB(), snap.ID, a.clock.Now())
	})
	if err != nil {
		// Login already succeeded; only the last_login stamp is lost.
		slog.Warn("failed to update last login", "admin_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		AdminID:   snap.ID,
		Name:      snap.Name,
		Email:     snap.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, email, name, pw string) (bool, error) {
	addr, err := admin.NewEmail(email)
	if err != nil {
		return false, errs.Mark(err, ErrAdminSeed)
	}
	plain, err := admin.NewPassword(pw)
	if err != nil {
		return false, errs.Mark(err, ErrAdminSeed)
	}

	hash, err := a.hasher.Hash(plain.Value())
	if err != nil {
		return false, errs.Mark(err, ErrAdminSeed)
	}

	adm := admin.NewAdmin(addr, name, hash, a.clock.Now())

	var created bool
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.Admins().CreateIfAbsent(ctx, tx.DB(), adm)
		return err
	})
	if err != nil {
		return false, errs.Mark(err, ErrAdminSeed)
	}
	return created, nil
}
