package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/junction-http/junction"
)

// RequireAuth verifies a Bearer JWT in the Authorization header against
// key, responding 401 when the header is absent, malformed, expired, or
// signed with anything but HMAC under key.
//
// On success the token subject is stashed in the dispatch context under
// [junction.CurrentUserKey] and the request passes along.
func RequireAuth(key []byte) junction.Middleware {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))

	return func(r *junction.Request, c *junction.Context) (*junction.Response, error) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			return unauthorized(), nil
		}

		claims := new(jwt.RegisteredClaims)
		if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return key, nil
		}); err != nil {
			return unauthorized(), nil
		}

		c.Set(junction.CurrentUserKey, claims.Subject)
		return nil, nil
	}
}

// CurrentUser retrieves the subject [RequireAuth] stashed for the
// dispatch, or an error when no authenticated subject exists.
func CurrentUser(c *junction.Context) (string, error) {
	sub, ok := c.Value(junction.CurrentUserKey).(string)
	if !ok {
		return "", fmt.Errorf("%w: no authenticated subject", junction.ErrMissingData)
	}

	return sub, nil
}

func unauthorized() *junction.Response {
	return &junction.Response{
		Status: http.StatusUnauthorized,
		Header: http.Header{"Www-Authenticate": []string{"Bearer"}},
		Body:   []byte(http.StatusText(http.StatusUnauthorized)),
	}
}
