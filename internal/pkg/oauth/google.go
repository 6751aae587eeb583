// Package oauth implements the Google side of the web client's OAuth2
// login flow.
package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleService interface {
	// GenerateState produces the opaque state for one login attempt,
	// bound to the requesting user agent.
	GenerateState(userAgent string) string
	// RedirectURL is the consent-screen URL carrying the state.
	RedirectURL(state string) string
	// VerifyToken exchanges the callback's authorization code.
	VerifyToken(ctx context.Context, code string) (*oauth2.Token, error)
	// VerifyUser fetches the Google profile behind the token.
	VerifyUser(ctx context.Context, token *oauth2.Token) (Profile, error)
}

// Profile is the subset of Google's userinfo payload the login flow needs.
type Profile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
}

type googleService struct {
	cfg *oauth2.Config
}

func NewGoogleService(clientID, clientSecret, redirectURL string, scopes []string) GoogleService {
	return &googleService{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleService) GenerateState(userAgent string) string {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return ""
	}
	state := base64.URLEncoding.EncodeToString(nonce) + "." + userAgent
	return base64.URLEncoding.EncodeToString([]byte(state))
}

func (g *googleService) RedirectURL(state string) string {
	return g.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *googleService) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	return g.cfg.Exchange(ctx, code)
}

func (g *googleService) VerifyUser(ctx context.Context, token *oauth2.Token) (Profile, error) {
	resp, err := g.cfg.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("decode userinfo: %w", err)
	}
	return p, nil
}
