package model

import "time"

// Admin is a dashboard account. There are no customer accounts; only farm
// staff authenticate.
type Admin struct {
	AdminID      int64      `json:"adminid"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
