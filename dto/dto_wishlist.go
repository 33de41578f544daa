package dto

type CreateWishlistRequest struct {
	PropertyID string             `json:"property_id" validate:"required"`
	UserEmail  string             `json:"user_email" validate:"required,email"`
	Title      string             `json:"title,omitempty"`
	Location   string             `json:"location,omitempty"`
	Image      string             `json:"image,omitempty"`
	Price      *PriceRangeRequest `json:"price,omitempty"`
	AgentEmail string             `json:"agent_email,omitempty"`
}

// WishlistCreateResponse mirrors the duplicate-aware create contract:
// a second insert for the same (property, user) pair answers exists=true
// instead of an error.
type WishlistCreateResponse struct {
	Exists bool `json:"exists"`
}
