package auth

import (
	"testing"

	"usersvc/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalFromClaims_Subject(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{name: "sub", claims: jwt.MapClaims{"sub": "abc", "nameid": "other"}, want: "abc"},
		{name: "nameid fallback", claims: jwt.MapClaims{"nameid": "fallback"}, want: "fallback"},
		{name: "blank sub falls back", claims: jwt.MapClaims{"sub": "  ", "nameid": "fallback"}, want: "fallback"},
		{
			name:   "name identifier uri",
			claims: jwt.MapClaims{"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier": "uri"},
			want:   "uri",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, ok := PrincipalFromClaims(tt.claims)
			require.True(t, ok)
			assert.Equal(t, tt.want, principal.Subject)
		})
	}
}

func TestPrincipalFromClaims_NoSubject(t *testing.T) {
	principal, ok := PrincipalFromClaims(jwt.MapClaims{"email": "a@b.co"})
	assert.False(t, ok)
	assert.Nil(t, principal)

	_, ok = PrincipalFromClaims(jwt.MapClaims{"sub": 42})
	assert.False(t, ok)
}

func TestPrincipalFromClaims_RolesAndEmail(t *testing.T) {
	principal, ok := PrincipalFromClaims(jwt.MapClaims{
		"sub":            "abc",
		"email":          "Jane@Example.com",
		"roles":          []any{"admin"},
		"cognito:groups": []any{"Support", 7},
		"role":           "User",
	})
	require.True(t, ok)

	assert.Equal(t, "jane@example.com", principal.Email)
	assert.Equal(t, entity.Roles{entity.RoleAdmin, entity.Role("Support"), entity.RoleUser}, principal.Roles)
}
