package domain

// Credentials is the access/refresh token pair issued by the backend at
// login or registration. Both tokens are set and cleared together; only the
// access token is replaced on refresh.
type Credentials struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// Present reports whether both tokens exist. A half-present pair means the
// stored session is unusable and should be treated as logged out.
func (c Credentials) Present() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}
