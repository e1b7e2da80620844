package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User mirrors the mst_user master table. Only the columns this service
// reads are mapped; password and authority columns stay untouched.
type User struct {
	bun.BaseModel `bun:"table:mst_user,alias:u"`

	ID       int64   `bun:"id,pk,autoincrement" json:"id"`
	Email    string  `bun:"email,notnull" json:"email"`
	UserName *string `bun:"user_name" json:"user_name,omitempty"`
}

// RefreshToken is one row of trn_refresh_tokens. The opaque token string
// is the primary key; every successful renewal inserts a fresh row.
type RefreshToken struct {
	bun.BaseModel `bun:"table:trn_refresh_tokens,alias:rt"`

	Token     string    `bun:"token,pk"`
	UserID    int64     `bun:"user_id,notnull"`
	ExpiresAt time.Time `bun:"expires_at,notnull"`
}
