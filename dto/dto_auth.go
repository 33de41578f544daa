package dto

// TokenRequest is the identity payload signed into the session token.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token,omitempty"`
	// Success is set instead of Token when the cookie transport is active.
	Success bool `json:"success,omitempty"`
}
