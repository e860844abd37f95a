package response

import (
	"time"

	"weekend-booking/internal/usecase/commands"
	"weekend-booking/internal/usecase/queries"
)

type AdminResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     AdminResponse `json:"admin"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		Admin: AdminResponse{
			ID:    r.AdminID.String(),
			Name:  r.Name,
			Email: r.Email,
		},
	}
}

func FromAdminView(v *queries.AdminView) *AdminResponse {
	return &AdminResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Email:       v.Email,
		LastLoginAt: v.LastLoginAt,
	}
}
