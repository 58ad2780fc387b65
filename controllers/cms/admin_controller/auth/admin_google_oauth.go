package admin_auth_controller

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

const oauthStateCookie = "admin_oauth_state"

// AdminGoogleRedirect godoc
// @Summary Start Google sign-in
// @Description Stores a state token in a cookie and redirects to Google's consent page
// @Tags Admin - Auth
// @Success 307 "Redirect to Google"
// @Failure 503 {object} models.ApiResponse "Google sign-in not configured"
// @Router /admin/auth/google [get]
func AdminGoogleRedirect(c *gin.Context) {
	if !config.GoogleEnabled() {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Google sign-in is not configured"))
		return
	}

	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", config.IsProduction(), true)

	c.Redirect(http.StatusTemporaryRedirect, config.GoogleOAuthConfig.AuthCodeURL(state))
}

// AdminGoogleCallback godoc
// @Summary Google sign-in callback
// @Description Checks the state, exchanges the code, verifies the ID token, opens a session and redirects to the back office
// @Tags Admin - Auth
// @Success 307 "Redirect to the back office"
// @Router /admin/auth/google/callback [get]
func AdminGoogleCallback(c *gin.Context) {
	frontend := config.GetAdminFrontendURL()
	fail := func(reason string) {
		c.Redirect(http.StatusTemporaryRedirect, frontend+"/login?error="+url.QueryEscape(reason))
	}

	if !config.GoogleEnabled() {
		fail("Google sign-in is not configured")
		return
	}

	savedState, err := c.Cookie(oauthStateCookie)
	if err != nil || savedState == "" || c.Query("state") != savedState {
		log.Printf("[admin.google] state mismatch")
		fail("Invalid state token")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", config.IsProduction(), true)

	code := c.Query("code")
	if code == "" {
		fail("No authorization code")
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	token, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		log.Printf("[admin.google] exchange failed: %v", err)
		fail("Failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		fail("Google did not return an ID token")
		return
	}

	admin, err := adminFromIDToken(ctx, rawIDToken)
	if err != nil {
		_, message := googleLoginError(err)
		log.Printf("[admin.google] %v", err)
		fail(message)
		return
	}

	if _, err := startSession(c, ctx, admin); err != nil {
		log.Printf("[admin.google] %v", err)
		fail("Server error")
		return
	}

	log.Printf("[admin.google] success: %s", admin.Email)
	c.Redirect(http.StatusTemporaryRedirect, frontend)
}
