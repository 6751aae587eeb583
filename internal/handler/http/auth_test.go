package http

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	authdomain "github.com/tracklab/timesheet-backend-go/internal/domain/auth"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/jwt"
)

// fakeAuthService records the refresh tokens it is handed, so the tests can
// check what the handler extracted from the request.
type fakeAuthService struct {
	issued        authdomain.TokenResponse
	refreshedWith []string
	loggedOutWith []string
}

func (f *fakeAuthService) Login(_ context.Context, _ authdomain.LoginRequest) (authdomain.TokenResponse, error) {
	return f.issued, nil
}

func (f *fakeAuthService) RefreshToken(_ context.Context, refreshToken string) (authdomain.TokenResponse, error) {
	f.refreshedWith = append(f.refreshedWith, refreshToken)
	return f.issued, nil
}

func (f *fakeAuthService) Logout(_ context.Context, refreshToken string) error {
	f.loggedOutWith = append(f.loggedOutWith, refreshToken)
	return nil
}

func (f *fakeAuthService) GoogleLoginURL(_ string) (string, string) {
	return "https://accounts.google.com/o/oauth2/auth", "state"
}

func (f *fakeAuthService) GoogleCallback(_ context.Context, _ string) (authdomain.TokenResponse, error) {
	return f.issued, nil
}

func authTestServer(t *testing.T, svc authdomain.AuthService) *httptest.Server {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	handler := NewAuthHandler(svc, jwtService)

	r := chi.NewRouter()
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/refresh", handler.RefreshToken)
		r.Post("/logout", handler.Logout)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

// The refresh cookie set at login must come back on /refresh and /logout,
// which only works when its Path matches where the router mounts auth.
func TestRefreshCookieRoundTrip(t *testing.T) {
	svc := &fakeAuthService{
		issued: authdomain.TokenResponse{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			ExpiresAt:    time.Now().Add(time.Hour).Unix(),
		},
	}
	server := authTestServer(t, svc)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	body := strings.NewReader(`{"email":"jane@example.com","password":"secret"}`)
	resp, err := client.Post(server.URL+"/api/v1/auth/login", "application/json", body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Post(server.URL+"/api/v1/auth/refresh", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []string{"refresh-1"}, svc.refreshedWith)

	resp, err = client.Post(server.URL+"/api/v1/auth/logout", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []string{"refresh-1"}, svc.loggedOutWith)
}

func TestRefreshCookiePathMatchesAuthMount(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	cookie := jwtService.RefreshTokenCookie("refresh-1", time.Now().Add(time.Hour).Unix())

	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

func TestRefreshFallsBackToJSONBody(t *testing.T) {
	svc := &fakeAuthService{
		issued: authdomain.TokenResponse{
			AccessToken:  "access-2",
			RefreshToken: "refresh-2",
			ExpiresAt:    time.Now().Add(time.Hour).Unix(),
		},
	}
	server := authTestServer(t, svc)

	// No cookie jar: the token travels in the body instead.
	body := strings.NewReader(`{"refresh_token":"refresh-from-body"}`)
	resp, err := http.Post(server.URL+"/api/v1/auth/refresh", "application/json", body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"refresh-from-body"}, svc.refreshedWith)
}

func TestRefreshWithoutTokenIsUnauthorized(t *testing.T) {
	server := authTestServer(t, &fakeAuthService{})

	resp, err := http.Post(server.URL+"/api/v1/auth/refresh", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
