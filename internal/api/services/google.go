package services

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/rohits-web03/folio/internal/config"
)

const GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var GoogleOauthConfig = NewGoogleOauthConfig(config.Envs.Google)

func NewGoogleOauthConfig(cfg config.GoogleConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleEnabled reports whether client credentials were configured.
func GoogleEnabled() bool {
	return GoogleOauthConfig.ClientID != "" && GoogleOauthConfig.ClientSecret != ""
}
