package model

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

type InviteCodeRepository struct {
	DB *gorm.DB
}

func (i *InviteCodeRepository) Create(inviteCode *InviteCode) error {
	if result := i.DB.Create(inviteCode); result.Error != nil {
		log.Printf("error creating invite code: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (i *InviteCodeRepository) FindByCode(code string) (*InviteCode, error) {
	var inviteCode InviteCode

	result := i.DB.Where("code = ?", code).First(&inviteCode)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &inviteCode, result.Error
}

// IsRedeemable evaluates the redeemability invariant against the current
// stored state. Unknown codes report false rather than an error.
func (i *InviteCodeRepository) IsRedeemable(code string) (bool, error) {
	inviteCode, err := i.FindByCode(code)
	if err != nil {
		return false, err
	}
	if inviteCode == nil {
		return false, nil
	}
	return inviteCode.Redeemable(time.Now().UTC()), nil
}

// Redeem consumes one unit of the code's quota on behalf of userUuid. The
// increment is a single conditional update, so concurrent redemptions, even
// from independent processes, can never push current_uses past max_uses.
// Codes that lose the race come back as ErrInvalidInvite.
func (i *InviteCodeRepository) Redeem(code, userUuid string) (*InviteCode, error) {
	result := i.DB.Model(&InviteCode{}).
		Where("code = ? AND is_active = ? AND current_uses < max_uses", code, true).
		Where("expires_at IS NULL OR expires_at > ?", time.Now().UTC()).
		Update("current_uses", gorm.Expr("current_uses + 1"))
	if result.Error != nil {
		log.Printf("error redeeming invite code: %s\n", result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvalidInvite
	}

	log.Printf("invite code redeemed by user %s\n", userUuid)

	inviteCode, err := i.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if inviteCode == nil {
		return nil, ErrInvalidInvite
	}
	return inviteCode, nil
}
