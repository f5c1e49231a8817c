package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/folio/internal/auth"
	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/testutil"
)

func signup(username, email string) map[string]string {
	return map[string]string{
		"username": username,
		"name":     "Ada Lovelace",
		"email":    email,
		"password": "correct-horse",
	}
}

func TestCreateUser(t *testing.T) {
	db := testutil.SetupDB(t)
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/auth/create", signup("Ada", "ADA@example.com"), nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	var user models.User
	require.NoError(t, db.Where("username = ?", "ada").First(&user).Error)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.Password)

	var profiles int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&profiles).Error)
	assert.EqualValues(t, 1, profiles)
}

func TestCreateUserRejects(t *testing.T) {
	testutil.SetupDB(t)
	a := newAPI(t)

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/auth/create", signup("ada", "ada@example.com"), nil).Code)

	tests := []struct {
		name   string
		body   map[string]string
		status int
	}{
		{"duplicate username", signup("ada", "other@example.com"), http.StatusConflict},
		{"duplicate email", signup("grace", "Ada@example.com"), http.StatusConflict},
		{"reserved username", signup("experience", "exp@example.com"), http.StatusBadRequest},
		{"bad username", signup("a!", "bad@example.com"), http.StatusBadRequest},
		{"bad email", signup("grace", "not-an-email"), http.StatusBadRequest},
		{"short password", map[string]string{"username": "grace", "email": "g@example.com", "password": "short"}, http.StatusBadRequest},
		{"password over 72 bytes", map[string]string{"username": "grace", "email": "g@example.com", "password": strings.Repeat("x", 80)}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodPost, "/api/auth/create", tt.body, nil)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.False(t, decode(t, rec, nil).Success)
		})
	}
}

func TestLoginAndSession(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "ada")
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com", "password": "password123"}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	decode(t, rec, &data)
	assert.Equal(t, user.ID, data.User.ID)
	assert.NotEmpty(t, data.Token)
	assert.NotContains(t, rec.Body.String(), user.Password)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	rec = a.do(http.MethodGet, "/api/auth/session", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var session struct {
		User models.User `json:"user"`
	}
	decode(t, rec, &session)
	assert.Equal(t, "ada", session.User.Username)

	// Username works as the login too.
	rec = a.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "ADA", "password": "password123"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testutil.SetupDB(t)
	testutil.CreateUser(t, db, "ada")
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "nobody@example.com", "password": "password123"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionWithoutCookie(t *testing.T) {
	testutil.SetupDB(t)
	rec := newAPI(t).do(http.MethodGet, "/api/auth/session", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	rec := newAPI(t).do(http.MethodPost, "/api/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestGoogleLoginNotConfigured(t *testing.T) {
	rec := newAPI(t).do(http.MethodGet, "/api/auth/google/login", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
