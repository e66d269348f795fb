package model

import "errors"

// Typed rejections surfaced by the provisioner and the invite code ledger.
// Controllers translate them to response codes; anything else reaching the
// API boundary is an unexpected failure.
var (
	ErrMissingFields = errors.New("Email, password, and invite code are required")
	ErrWeakPassword  = errors.New("Password does not meet the minimum length")
	ErrInvalidInvite = errors.New("Invalid or expired invite code")
	ErrEmailTaken    = errors.New("An account with this email already exists")
)
