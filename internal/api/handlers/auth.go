package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rohits-web03/folio/internal/api/services"
	"github.com/rohits-web03/folio/internal/auth"
	"github.com/rohits-web03/folio/internal/config"
	"github.com/rohits-web03/folio/internal/logging"
	"github.com/rohits-web03/folio/internal/models"
	"github.com/rohits-web03/folio/internal/repositories"
	"github.com/rohits-web03/folio/internal/utils"
)

const (
	minPasswordLength = 8
	// bcrypt rejects passwords longer than 72 bytes.
	maxPasswordLength = 72
)

var (
	errUsernameTaken = conflictError{msg: "Username is already taken"}
	errEmailTaken    = conflictError{msg: "User already exists with this email"}
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_-]{3,32}$`)

// Path segments under /api/portfolio/ that would shadow a public portfolio.
var reservedUsernames = map[string]bool{
	"users": true, "profile": true, "experience": true, "education": true,
	"links": true, "socials": true, "projects": true, "skill": true,
	"skills": true, "api": true, "auth": true, "docs": true, "health": true,
}

func normalizeUsername(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func validateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return invalid("Username must be 3-32 characters of a-z, 0-9, _ or -")
	}
	if reservedUsernames[username] {
		return invalid("Username is reserved")
	}
	return nil
}

func normalizeEmail(s string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil || addr.Address != strings.TrimSpace(s) {
		return "", invalid("Invalid email address")
	}
	return strings.ToLower(addr.Address), nil
}

// createUser stores the account and its empty profile together.
func createUser(ctx context.Context, user *models.User) error {
	return repositories.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return errUsernameTaken
		}
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return errEmailTaken
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := models.EmptyProfile(user.ID)
		return tx.Create(&profile).Error
	})
}

// CreateUser godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload{data=models.User}
// @Failure 400 {object} utils.Payload
// @Failure 409 {object} utils.Payload
// @Router /api/auth/create [post]
func CreateUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}

	username := normalizeUsername(input.Username)
	if err := validateUsername(username); err != nil {
		writeError(w, r, err, "")
		return
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if len(input.Password) < minPasswordLength {
		utils.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
		return
	}
	if len(input.Password) > maxPasswordLength {
		utils.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Password must be at most %d bytes", maxPasswordLength))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, r, fmt.Errorf("hash password: %w", err), "")
		return
	}

	user := models.User{
		Username: username,
		Name:     firstNonEmpty(input.Name, username),
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := createUser(r.Context(), &user); err != nil {
		writeError(w, r, err, "")
		return
	}

	repositories.Cache.Invalidate(r.Context(), user.Username)
	logging.From(r.Context()).Info("user registered", slog.String("user_id", user.ID.String()))

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "User registered successfully",
		Data:    user,
	})
}

// LoginUser godoc
// @Summary Log in with email or username
// @Description Sets the HttpOnly "token" cookie and also returns the token for non-browser clients.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/auth/login [post]
func LoginUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "")
		return
	}

	login := strings.ToLower(firstNonEmpty(input.Email, input.Username))
	if login == "" || input.Password == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	err := repositories.DB.WithContext(r.Context()).
		Where("email = ? OR username = ?", login, login).
		First(&user).Error
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	default:
		writeError(w, r, err, "")
		return
	}

	// Accounts created through Google have no password.
	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := startSession(w, &user)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Login successful",
		Data: map[string]any{
			"user":  user,
			"token": token,
		},
	})
}

// startSession signs a token for user and sets it as the session cookie.
func startSession(w http.ResponseWriter, user *models.User) (string, error) {
	token, expires, err := auth.IssueToken(config.Envs.JWTSecret, auth.Identity{
		UserID:   user.ID,
		Username: user.Username,
	}, config.Envs.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	isProd := config.Envs.IsProduction()
	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Until(expires).Seconds()),
		Expires:  expires,
		Secure:   isProd,
		HttpOnly: true,
		SameSite: sameSite,
	})
	return token, nil
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/auth/logout [post]
func Logout(w http.ResponseWriter, r *http.Request) {
	isProd := config.Envs.IsProduction()
	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   isProd,
		HttpOnly: true,
		SameSite: sameSite,
	})

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Logged out successfully",
	})
}

// GetSession godoc
// @Summary Current session user
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/auth/session [get]
func GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionUser(w, r)
	if !ok {
		return
	}

	user, err := repositories.FindUserByID(r.Context(), repositories.DB, id.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// The token outlived its account.
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Session active",
		Data:    map[string]any{"user": user},
	})
}

// HandleGoogleLogin godoc
// @Summary Start Google sign-in
// @Tags Auth
// @Param redirect query string false "login (default) or register"
// @Success 307
// @Failure 503 {object} utils.Payload
// @Router /api/auth/google/login [get]
func HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !services.GoogleEnabled() {
		utils.ErrorResponse(w, http.StatusServiceUnavailable, "Google login is not configured")
		return
	}

	redirectType := r.URL.Query().Get("redirect") // "login" or "register"
	if redirectType != "register" {
		redirectType = "login"
	}

	state, err := GenerateState(map[string]string{"flow": redirectType})
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	rememberState(w, state, config.Envs.IsProduction())

	url := services.GoogleOauthConfig.AuthCodeURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

type googleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func frontendRedirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, strings.TrimRight(config.Envs.FrontendURL, "/")+path, http.StatusTemporaryRedirect)
}

// HandleGoogleCallback godoc
// @Summary Google sign-in callback
// @Tags Auth
// @Success 307
// @Router /api/auth/google/callback [get]
func HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	log := logging.From(r.Context())

	state := r.FormValue("state")
	if !verifyState(w, r, state) {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	stateData, err := DecodeState(state)
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	flowType := stateData["flow"]

	gu, err := fetchGoogleUser(r.Context(), r.FormValue("code"))
	if err != nil {
		log.Warn("google sign-in failed", slog.Any("error", err))
		frontendRedirect(w, r, "/login?error=google_failed")
		return
	}

	email, err := normalizeEmail(gu.Email)
	if err != nil {
		frontendRedirect(w, r, "/login?error=google_failed")
		return
	}

	var user models.User
	err = repositories.DB.WithContext(r.Context()).Where("email = ?", email).First(&user).Error
	switch {
	case err == nil && flowType == "register":
		frontendRedirect(w, r, "/login?error=user_already_exists")
		return
	case errors.Is(err, gorm.ErrRecordNotFound) && flowType == "login":
		frontendRedirect(w, r, "/register?error=user_not_found")
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = registerGoogleUser(r.Context(), email, gu)
		if err != nil {
			log.Error("google registration failed", slog.Any("error", err))
			frontendRedirect(w, r, "/register?error=registration_failed")
			return
		}
	case err != nil:
		writeError(w, r, err, "")
		return
	}

	if _, err := startSession(w, &user); err != nil {
		writeError(w, r, err, "")
		return
	}

	status := "success_login"
	if flowType == "register" {
		status = "success_register"
	}
	frontendRedirect(w, r, "/dashboard?status="+status)
}

func fetchGoogleUser(ctx context.Context, code string) (*googleUser, error) {
	token, err := services.GoogleOauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange: %w", err)
	}

	client := services.GoogleOauthConfig.Client(ctx, token)
	resp, err := client.Get(services.GoogleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info: status %d", resp.StatusCode)
	}

	var gu googleUser
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&gu); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return &gu, nil
}

// registerGoogleUser creates a password-less account with a username derived from the email.
func registerGoogleUser(ctx context.Context, email string, gu *googleUser) (models.User, error) {
	base := usernameFromEmail(email)
	for attempt := 0; attempt < 5; attempt++ {
		username := base
		if attempt > 0 || reservedUsernames[base] {
			suffix, err := utils.GenerateSecureToken(3)
			if err != nil {
				return models.User{}, err
			}
			username = fmt.Sprintf("%s-%s", base, strings.ToLower(suffix))
		}

		user := models.User{
			Username: username,
			Name:     firstNonEmpty(gu.Name, username),
			Email:    email,
		}
		err := createUser(ctx, &user)
		if errors.Is(err, errUsernameTaken) {
			continue
		}
		if err != nil {
			return models.User{}, err
		}

		if gu.Picture != "" {
			err := repositories.DB.WithContext(ctx).Model(&models.Profile{}).
				Where("user_id = ?", user.ID).
				Update("picture", gu.Picture).Error
			if err != nil {
				logging.From(ctx).Warn("Could not copy Google picture to profile",
					slog.String("user_id", user.ID.String()), slog.Any("error", err))
			}
		}
		return user, nil
	}
	return models.User{}, errors.New("could not find a free username")
}

var nonUsernameChars = regexp.MustCompile(`[^a-z0-9_-]+`)

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	name := strings.Trim(nonUsernameChars.ReplaceAllString(strings.ToLower(local), "-"), "-")
	if len(name) > 24 {
		name = name[:24]
	}
	for len(name) < 3 {
		name += "0"
	}
	return name
}
