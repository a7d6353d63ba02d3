package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSilver Role = "SILVER"
	RoleGold   Role = "GOLD"
	RoleAdmin  Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleSilver:
		return RoleSilver, nil
	case RoleGold:
		return RoleGold, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleGold:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r carries at least the privilege of other.
func (r Role) AtLeast(other Role) bool {
	return r.rank() >= other.rank()
}

// CanAuthorRestricted reports whether r may write into GOLD-room categories.
func (r Role) CanAuthorRestricted() bool {
	return r.AtLeast(RoleGold)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type Profile struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Nickname     string    `json:"nickname" db:"nickname"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	PersonaMemo  string    `json:"persona_memo,omitempty" db:"persona_memo"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AuthorName is the display name stamped on records this profile authors:
// the nickname when set, otherwise the local part of the email.
func (p Profile) AuthorName() string {
	if strings.TrimSpace(p.Nickname) != "" {
		return p.Nickname
	}
	if at := strings.Index(p.Email, "@"); at > 0 {
		return p.Email[:at]
	}
	return "모험가"
}

type SignUpReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Nickname string `json:"nickname"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ProfileRes struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (p Profile) Public() ProfileRes {
	return ProfileRes{
		ID:        p.ID,
		Email:     p.Email,
		Nickname:  p.Nickname,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}

type TokenRes struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

type UpdateRoleReq struct {
	Role string `json:"role" binding:"required"`
}

type PersonaMemoReq struct {
	Memo string `json:"memo"`
}
