package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_StateTransitions(t *testing.T) {
	email := RestoreEmail("pending@example.com")
	user := NewUser(email, "Pending User", "", false)
	assert.Equal(t, RoleUser, user.Role)

	expiry := time.Now().Add(time.Hour)
	user.ActivationToken = "token"
	user.ActivationExpiresAt = &expiry
	assert.Equal(t, StatePending, user.State())

	user.IsActive = true
	user.ActivationToken = ""
	user.ActivationExpiresAt = nil
	assert.Equal(t, StateActive, user.State())

	user.Deactivate()
	assert.Equal(t, StateDisabled, user.State())
	assert.False(t, user.IsActive)
}

func TestUser_DeactivateDropsPendingActivation(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	user := &User{ActivationToken: "token", ActivationExpiresAt: &expiry}

	user.Deactivate()

	assert.Empty(t, user.ActivationToken)
	assert.Nil(t, user.ActivationExpiresAt)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleUser, ParseRole(""))
	assert.Equal(t, RoleUser, ParseRole("user"))
	assert.Equal(t, RoleAdmin, ParseRole(" ADMIN "))
	assert.Equal(t, Role("Auditor"), ParseRole("Auditor"))
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "", "Support"})
	assert.Equal(t, Roles{RoleAdmin, Role("Support")}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
}

func TestPrincipal_HasRole(t *testing.T) {
	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.HasRole(RoleAdmin))

	p := &Principal{Subject: "abc", Roles: Roles{RoleAdmin}}
	assert.True(t, p.HasRole(RoleAdmin))
	assert.False(t, p.HasRole(RoleUser))
}

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		in       PageQuery
		page     int
		pageSize int
	}{
		{name: "defaults", in: PageQuery{}, page: 1, pageSize: 20},
		{name: "zero page size", in: PageQuery{Page: 2, PageSize: 0}, page: 2, pageSize: 20},
		{name: "negative page size", in: PageQuery{Page: 1, PageSize: -1}, page: 1, pageSize: 20},
		{name: "negative", in: PageQuery{Page: -3, PageSize: -1}, page: 1, pageSize: 20},
		{name: "zero page", in: PageQuery{Page: 0, PageSize: 50}, page: 1, pageSize: 50},
		{name: "too large", in: PageQuery{Page: 2, PageSize: 201}, page: 2, pageSize: 20},
		{name: "upper bound", in: PageQuery{Page: 4, PageSize: 200}, page: 4, pageSize: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.page, got.Page)
			assert.Equal(t, tt.pageSize, got.PageSize)
		})
	}

	assert.Equal(t, 40, PageQuery{Page: 3, PageSize: 20}.Offset())
}
