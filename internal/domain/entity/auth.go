package entity

// AuthResult is the token bundle issued by the identity provider. It is passed
// through to the caller untouched and never persisted.
type AuthResult struct {
	AccessToken  string `json:"accessToken"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int32  `json:"expiresIn"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	Subject string
	Email   string
	Roles   Roles
}

func (p *Principal) HasRole(role Role) bool {
	return p != nil && p.Roles.Contains(role)
}
