package config

import (
	"context"
	"log"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	GoogleOAuthConfig *oauth2.Config
	OIDCVerifier      *oidc.IDTokenVerifier
)

// InitGoogleOAuth enables Google sign-in for admins. Without credentials the
// Google routes answer 503 and password login keeps working.
func InitGoogleOAuth() {
	ctx := context.Background()

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")

	if clientID == "" || clientSecret == "" {
		log.Println("⚠️  GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set, Google sign-in disabled")
		return
	}

	if redirectURL == "" {
		redirectURL = defaultGoogleRedirectURL()
		log.Printf("⚠️  GOOGLE_REDIRECT_URL not set, using default: %s", redirectURL)
	}

	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			oidc.ScopeOpenID,
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		log.Printf("❌ Failed to create OIDC provider, Google sign-in disabled: %v", err)
		GoogleOAuthConfig = nil
		return
	}

	OIDCVerifier = provider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	log.Println("✅ Google OAuth initialized successfully")
}

// GoogleEnabled reports whether InitGoogleOAuth found usable credentials.
func GoogleEnabled() bool {
	return GoogleOAuthConfig != nil && OIDCVerifier != nil
}

// GetAdminFrontendURL returns where the back office is served from
func GetAdminFrontendURL() string {
	urlFromEnv := os.Getenv("ADMIN_FRONTEND_URL")
	if urlFromEnv == "" {
		defaultURL := "http://localhost:3000/admin"
		log.Printf("⚠️  ADMIN_FRONTEND_URL not set, using default: %s", defaultURL)
		return defaultURL
	}

	return urlFromEnv
}

// defaultGoogleRedirectURL points the OAuth callback at this server on
// localhost, on whatever port it listens on.
func defaultGoogleRedirectURL() string {
	return "http://localhost:" + Port() + "/api/v1/admin/auth/google/callback"
}
