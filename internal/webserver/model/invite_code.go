package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// InviteCode is a capability token gating account creation. Redeeming one
// unit of its quota creates exactly one account carrying the code's role.
type InviteCode struct {
	ID          uint       `gorm:"primarykey" json:"-"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"-"`
	Code        string     `gorm:"uniqueIndex; not null" json:"code"`
	Role        string     `gorm:"not null; default:user" json:"role"`
	MaxUses     int        `gorm:"not null; default:1" json:"maxUses"`
	CurrentUses int        `gorm:"not null; default:0" json:"currentUses"`
	IsActive    bool       `gorm:"not null; default:true" json:"isActive"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	CreatedBy   string     `json:"-"`
}

// Redeemable reports whether the code can still be redeemed at the given
// point in time.
func (i InviteCode) Redeemable(now time.Time) bool {
	if !i.IsActive || i.CurrentUses >= i.MaxUses {
		return false
	}
	return i.ExpiresAt == nil || i.ExpiresAt.After(now)
}

// NewCode returns a random, high-entropy invite code string.
func NewCode() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
