package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rohits-web03/folio/internal/logging"
	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/testutil"
)

func TestRegisterGoogleUserCopiesPicture(t *testing.T) {
	db := testutil.SetupDB(t)
	gu := &googleUser{Email: "ada.l@example.com", Name: "Ada", Picture: "https://lh3.test/ada.png"}

	user, err := registerGoogleUser(context.Background(), gu.Email, gu)
	require.NoError(t, err)
	assert.Equal(t, "ada-l", user.Username)

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "https://lh3.test/ada.png", profile.Picture)
}

func TestRegisterGoogleUserLogsPictureFailure(t *testing.T) {
	db := testutil.SetupDB(t)
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:fail_profiles", func(tx *gorm.DB) {
		if tx.Statement.Table == "profiles" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	var buf bytes.Buffer
	ctx := logging.Into(context.Background(), logging.New(&buf, "info"))
	gu := &googleUser{Email: "grace@example.com", Name: "Grace", Picture: "https://lh3.test/grace.png"}

	user, err := registerGoogleUser(ctx, gu.Email, gu)
	require.NoError(t, err)
	assert.Equal(t, "grace", user.Username)
	assert.Contains(t, buf.String(), "Could not copy Google picture to profile")
	assert.Contains(t, buf.String(), "disk full")
}
