// Package auth verifies Google sign-ins and manages refresh sessions.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const googleIssuer = "https://accounts.google.com"

// GoogleProfile is the identity extracted from a verified Google ID token.
type GoogleProfile struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL string
}

// GoogleVerifier exchanges OAuth authorization codes with Google and verifies
// the resulting ID tokens.
type GoogleVerifier interface {
	Exchange(ctx context.Context, code string) (GoogleProfile, error)
	VerifyIDToken(ctx context.Context, rawIDToken string) (GoogleProfile, error)
}

type googleOIDC struct {
	provider    *oidc.Provider
	oauthConfig *oauth2.Config
}

// NewGoogleVerifier performs OIDC discovery against Google and returns a
// verifier bound to the given client credentials.
func NewGoogleVerifier(ctx context.Context, clientID, clientSecret, redirectURL string) (GoogleVerifier, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover google provider: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     provider.Endpoint(),
		RedirectURL:  redirectURL,
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return &googleOIDC{
		provider:    provider,
		oauthConfig: oauthConfig,
	}, nil
}

func (g *googleOIDC) Exchange(ctx context.Context, code string) (GoogleProfile, error) {
	token, err := g.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return GoogleProfile{}, errors.New("no id_token in token response")
	}

	return g.VerifyIDToken(ctx, rawIDToken)
}

func (g *googleOIDC) VerifyIDToken(ctx context.Context, rawIDToken string) (GoogleProfile, error) {
	verifier := g.provider.Verifier(&oidc.Config{ClientID: g.oauthConfig.ClientID})
	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to verify id token: %w", err)
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to parse claims: %w", err)
	}
	if claims.Subject == "" {
		return GoogleProfile{}, errors.New("id token has no subject")
	}

	return GoogleProfile{
		Subject:   claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		AvatarURL: claims.Picture,
	}, nil
}
