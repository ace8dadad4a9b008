package auth

import (
	"strings"

	"usersvc/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claim names probed, in order, for the caller's subject.
var subjectClaims = []string{
	"sub",
	"nameid",
	"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier",
}

// Claim names carrying role or group membership.
var roleClaims = []string{"roles", "cognito:groups", "role"}

// PrincipalFromClaims resolves the caller from validated claims. It reports
// false when no subject claim is present.
func PrincipalFromClaims(claims jwt.MapClaims) (*entity.Principal, bool) {
	subject := firstStringClaim(claims, subjectClaims...)
	if subject == "" {
		return nil, false
	}

	var roles []string
	for _, name := range roleClaims {
		roles = append(roles, stringsClaim(claims[name])...)
	}

	return &entity.Principal{
		Subject: subject,
		Email:   strings.ToLower(firstStringClaim(claims, "email")),
		Roles:   entity.RolesFromStrings(roles),
	}, true
}

func firstStringClaim(claims jwt.MapClaims, names ...string) string {
	for _, name := range names {
		if value, ok := claims[name].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}

	return ""
}

// stringsClaim accepts a single string or a JSON array of strings.
func stringsClaim(raw any) []string {
	switch value := raw.(type) {
	case string:
		return []string{value}
	case []string:
		return value
	case []any:
		result := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}

		return result
	default:
		return nil
	}
}
