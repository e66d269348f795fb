package model

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provisioner creates accounts from invite-code signups.
type Provisioner struct {
	DB                *gorm.DB
	MinPasswordLength int
}

// SignUp validates the invite code, checks email uniqueness, redeems one
// unit of the code's quota and creates the account carrying the code's role,
// all inside a single transaction. Redemption runs before the insert, so a
// signup that loses the race against a concurrent redemption rolls back
// without leaving an account behind.
func (p *Provisioner) SignUp(email, password, code string) (*User, error) {
	if email == "" || password == "" || code == "" {
		return nil, ErrMissingFields
	}

	user := &User{
		Uuid:     uuid.NewString(),
		Email:    strings.ToLower(email),
		Password: password,
		Role:     RoleUser,
	}

	if errs := user.Validate(p.MinPasswordLength); len(errs) > 0 {
		if _, ok := errs["password"]; ok {
			return nil, ErrWeakPassword
		}
		return nil, ErrMissingFields
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	err = p.DB.Transaction(func(tx *gorm.DB) error {
		users := &UserRepository{DB: tx}
		invites := &InviteCodeRepository{DB: tx}

		// Fast, informative rejection; the conditional update in Redeem is
		// what actually enforces the quota.
		redeemable, err := invites.IsRedeemable(code)
		if err != nil {
			return err
		}
		if !redeemable {
			return ErrInvalidInvite
		}

		existing, err := users.FindByEmail(user.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}

		inviteCode, err := invites.Redeem(code, user.Uuid)
		if err != nil {
			return err
		}

		user.Password = hash
		user.Role = inviteCode.Role
		return users.Create(user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
