package model

// Identity is the authenticated caller resolved from a bearer token or
// session cookie by the authentication adapter.
type Identity struct {
	UserID   string
	Email    *string
	ImageURL string
}
