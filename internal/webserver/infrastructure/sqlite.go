package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/cortheos/cortheos/internal/webserver/model"
)

func Connect(path string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, ":memory:") {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.InviteCode{}); err != nil {
		log.Fatal(err)
	}
	return db
}

// SeedOwnerInvite mints a single-use, 48-hour owner invite when the database
// holds no accounts yet and returns the generated code. It returns the empty
// string when accounts already exist.
func SeedOwnerInvite(db *gorm.DB) (string, error) {
	users := &model.UserRepository{DB: db}
	if users.Total() > 0 {
		return "", nil
	}

	code, err := model.NewCode()
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().UTC().Add(48 * time.Hour)
	invites := &model.InviteCodeRepository{DB: db}
	if err := invites.Create(&model.InviteCode{
		Code:      code,
		Role:      model.RoleOwner,
		MaxUses:   1,
		IsActive:  true,
		ExpiresAt: &expiresAt,
		CreatedBy: "bootstrap",
	}); err != nil {
		return "", err
	}
	return code, nil
}
