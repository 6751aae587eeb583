package auth

import "context"

// AuthService handles password and Google OAuth2 login, token refresh and
// logout.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// GoogleLoginURL returns the OAuth2 redirect URL and its state.
	GoogleLoginURL(userAgent string) (url string, state string)
	// GoogleCallback exchanges the authorization code and logs the user in.
	GoogleCallback(ctx context.Context, code string) (TokenResponse, error)
}
