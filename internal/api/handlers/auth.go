package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/dkovacs/codeshare/internal/api/middleware"
	"github.com/dkovacs/codeshare/internal/auth"
	"github.com/dkovacs/codeshare/internal/crypto"
	"github.com/dkovacs/codeshare/internal/logger"
	"github.com/dkovacs/codeshare/internal/models"
	"github.com/dkovacs/codeshare/pkg/types"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	db         *sql.DB
	queries    *models.Queries
	jwtManager *crypto.JWTManager
	sessions   *auth.SessionManager
	google     auth.GoogleVerifier
	accessTTL  time.Duration
}

func NewAuthHandler(db *sql.DB, jwtManager *crypto.JWTManager, sessions *auth.SessionManager, google auth.GoogleVerifier, accessTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		db:         db,
		queries:    models.New(db),
		jwtManager: jwtManager,
		sessions:   sessions,
		google:     google,
		accessTTL:  accessTTL,
	}
}

// GoogleLoginRequest carries either an OAuth authorization code or a raw
// Google ID token (for clients using the Google Identity Services popup).
type GoogleLoginRequest struct {
	Code    string `json:"code"`
	IDToken string `json:"idToken"`
}

// LoginResponse is returned by login and refresh.
type LoginResponse struct {
	User   UserResponse    `json:"user"`
	Tokens types.TokenPair `json:"tokens"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// GoogleLogin handles POST /v1/auth/google
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.google == nil {
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "google sign-in is not configured"})
		return
	}

	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	var (
		profile auth.GoogleProfile
		err     error
	)
	switch {
	case req.Code != "":
		profile, err = h.google.Exchange(c.Request.Context(), req.Code)
	case req.IDToken != "":
		profile, err = h.google.VerifyIDToken(c.Request.Context(), req.IDToken)
	default:
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "code or idToken is required"})
		return
	}
	if err != nil {
		logger.Warnf("Google sign-in rejected: %v", err)
		c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "google sign-in failed"})
		return
	}

	user, err := h.upsertUser(c, profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to create user"})
		return
	}

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{User: toUserResponse(user), Tokens: tokens})
}

// Refresh handles POST /v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	userID, next, err := h.sessions.Rotate(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrSessionInvalid) {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "invalid refresh token"})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to refresh session"})
		return
	}

	user, err := h.queries.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to load user"})
		return
	}

	accessToken, err := h.jwtManager.CreateToken(user.ID, user.Email, user.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User: toUserResponse(user),
		Tokens: types.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: next,
			ExpiresIn:    int64(h.accessTTL.Seconds()),
		},
	})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sessions.Revoke(c.Request.Context(), req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to revoke session"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

// LogoutAll handles POST /v1/auth/logout-all
//
// Revokes every refresh session of the authenticated user, logging out all
// of their devices at once.
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.sessions.RevokeAll(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to revoke sessions"})
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

func (h *AuthHandler) upsertUser(c *gin.Context, profile auth.GoogleProfile) (models.User, error) {
	ctx := c.Request.Context()

	user, err := h.queries.GetUserByGoogleID(ctx, profile.Subject)
	if err == nil {
		if user.Name != profile.Name || user.AvatarURL != profile.AvatarURL {
			_ = h.queries.UpdateUserProfile(ctx, models.UpdateUserProfileParams{
				Name:      profile.Name,
				AvatarURL: profile.AvatarURL,
				ID:        user.ID,
			})
			user.Name = profile.Name
			user.AvatarURL = profile.AvatarURL
		}
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, err
	}

	return h.queries.CreateUser(ctx, models.CreateUserParams{
		ID:        types.NewID(),
		GoogleID:  profile.Subject,
		Email:     profile.Email,
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
	})
}

func (h *AuthHandler) issueTokens(c *gin.Context, user models.User) (types.TokenPair, error) {
	accessToken, err := h.jwtManager.CreateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return types.TokenPair{}, err
	}

	refreshToken, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		return types.TokenPair{}, err
	}

	return types.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(h.accessTTL.Seconds()),
	}, nil
}
