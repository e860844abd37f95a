package infra

import (
	"errors"
	"log/slog"

	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err by its Postgres error code unless kind is given
// explicitly. Only DB failures are logged; the other kinds are expected
// outcomes the use case layer translates.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	repoErr := RepositoryError{Kind: KindDBFailure, msg: msg}
	if len(kind) > 0 {
		repoErr.Kind = kind[0]
	}

	var pgErr *pgconn.PgError
	switch {
	case len(kind) > 0:
	case pgconv.IsNoRows(err):
		repoErr.Kind = KindNotFound
	case errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation:
		repoErr.Kind = KindDuplicateKey
		repoErr.Constraint = pgErr.ConstraintName
	case errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation:
		repoErr.Kind = KindForeignKeyViolated
		repoErr.Constraint = pgErr.ConstraintName
	}

	if repoErr.Kind == KindDBFailure {
		logArgs := []any{slog.String("kind", string(repoErr.Kind))}
		if err != nil {
			logArgs = append(logArgs, slog.String("error", err.Error()))
		}
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		repoErr.err = errs.Wrap(err, msg)
	}
	return repoErr
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint recorded on err, if any.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}
