package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklab/timesheet-backend-go/internal/domain/auth"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
	"github.com/tracklab/timesheet-backend-go/internal/handler/http/response"
)

// Claims is the decoded identity of the calling user.
type Claims struct {
	UserID     string
	Email      string
	EmployeeID string
	Role       user.Role
}

// ClaimsFromContext decodes the verified access token claims from the
// request context. Only valid below AuthRequired in the middleware chain.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, auth.ErrInvalidToken
	}

	c := Claims{}
	if v, ok := claims["user_id"].(string); ok {
		c.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		c.Email = v
	}
	if v, ok := claims["employee_id"].(string); ok {
		c.EmployeeID = v
	}
	if v, ok := claims["role"].(string); ok {
		c.Role = user.Role(v)
	}
	if c.UserID == "" {
		return Claims{}, auth.ErrInvalidToken
	}

	return c, nil
}

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
