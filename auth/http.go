package auth

import (
	"errors"
	"net/http"
	"strings"
)

const bearerScheme = "bearer"

var (
	ErrNoAuthorization = errors.New("auth: no Authorization header")
	ErrNotBearer       = errors.New("auth: Authorization header is not a bearer credential")
	ErrBlankToken      = errors.New("auth: bearer token is blank")
)

// BearerToken returns the token of a "Bearer <token>" Authorization header.
// The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", ErrNoAuthorization
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrNotBearer
	}

	if token = strings.TrimSpace(token); token == "" {
		return "", ErrBlankToken
	}
	return token, nil
}
