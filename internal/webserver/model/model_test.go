package model_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cortheos/cortheos/internal/webserver/model"
)

// connectTest opens an isolated in-memory database. The pool is capped at a
// single connection so every query sees the same memory database and
// concurrent transactions queue up instead of each getting a private one.
func connectTest(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.InviteCode{}))
	return db
}

func createInvite(t *testing.T, db *gorm.DB, invite *model.InviteCode) *model.InviteCode {
	t.Helper()

	if invite.Code == "" {
		code, err := model.NewCode()
		require.NoError(t, err)
		invite.Code = code
	}
	repository := &model.InviteCodeRepository{DB: db}
	require.NoError(t, repository.Create(invite))
	return invite
}

func createUser(t *testing.T, db *gorm.DB, email, password, role string) *model.User {
	t.Helper()

	hash, err := model.HashPassword(password)
	require.NoError(t, err)

	user := &model.User{
		Uuid:     uuid.NewString(),
		Email:    email,
		Password: hash,
		Role:     role,
	}
	repository := &model.UserRepository{DB: db}
	require.NoError(t, repository.Create(user))
	return user
}

func hoursFromNow(hours int) *time.Time {
	expiresAt := time.Now().UTC().Add(time.Duration(hours) * time.Hour)
	return &expiresAt
}
