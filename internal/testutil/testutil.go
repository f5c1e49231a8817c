// Package testutil wires handlers and repositories to a throwaway sqlite database.
package testutil

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rohits-web03/folio/internal/auth"
	"github.com/rohits-web03/folio/internal/config"
	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/repositories"
)

// SetupDB migrates a fresh sqlite file and installs it as repositories.DB for the test.
// The cache and picture store are cleared so every test starts from the database alone.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "folio.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))

	prevDB, prevCache, prevPictures := repositories.DB, repositories.Cache, repositories.Pictures
	repositories.DB = db
	repositories.Cache = nil
	repositories.Pictures = nil

	t.Cleanup(func() {
		repositories.DB, repositories.Cache, repositories.Pictures = prevDB, prevCache, prevPictures
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts a user whose password is "password123".
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Name:     username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// SessionCookie returns the cookie a browser would hold after user logged in.
func SessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	tok, _, err := auth.IssueToken(config.Envs.JWTSecret, auth.Identity{UserID: user.ID, Username: user.Username}, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: tok}
}

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
