package admin

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Admin is an operator account for the back office.
type Admin struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash string
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdmin(email Email, name, passwordHash string, now time.Time) *Admin {
	return &Admin{
		id:           uuid.New(),
		email:        email,
		name:         strings.TrimSpace(name),
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}
}

func Reconstruct(id uuid.UUID, email Email, name, passwordHash string, lastLogin *time.Time, createdAt, updatedAt time.Time) *Admin {
	return &Admin{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Admin) ID() uuid.UUID         { return a.id }
func (a *Admin) Email() Email          { return a.email }
func (a *Admin) Name() string          { return a.name }
func (a *Admin) PasswordHash() string  { return a.passwordHash }
func (a *Admin) LastLogin() *time.Time { return a.lastLogin }
func (a *Admin) CreatedAt() time.Time  { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time  { return a.updatedAt }
