package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tracklab/timesheet-backend-go/internal/domain/auth"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/jwt"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

const googleProvider = "google"

type AuthServiceImpl struct {
	userRepo      user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	// OAuth-only accounts have no password hash.
	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// RefreshToken implements auth.AuthService.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotate: the old refresh token dies with the new pair.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// GoogleLoginURL implements auth.AuthService.
func (s *AuthServiceImpl) GoogleLoginURL(userAgent string) (string, string) {
	state := s.googleService.GenerateState(userAgent)
	return s.googleService.RedirectURL(state), state
}

// GoogleCallback implements auth.AuthService. Only users already
// provisioned by an admin can log in; unknown Google accounts are
// rejected rather than auto-registered.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.EmailVerified {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByOAuth(ctx, googleProvider, info.ID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, err
		}
		// First Google login for an existing account: link by email.
		u, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return auth.TokenResponse{}, err
		}
		provider := googleProvider
		u.OAuthProvider = &provider
		u.OAuthProviderID = &info.ID
		if err := s.userRepo.Update(ctx, u); err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	resp := auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Role:         string(u.Role),
	}
	if u.EmployeeID != nil {
		resp.EmployeeID = *u.EmployeeID
	}
	return resp, nil
}
