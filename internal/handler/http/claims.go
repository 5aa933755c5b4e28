package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

func staffIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", fmt.Errorf("failed to extract claims: %w", err)
	}

	staffID, ok := claims["staff_id"].(string)
	if !ok || staffID == "" {
		return "", fmt.Errorf("staff_id claim is missing or invalid")
	}

	return staffID, nil
}
