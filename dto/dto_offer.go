package dto

type CreateOfferRequest struct {
	PropertyID  string  `json:"property_id" validate:"required"`
	Title       string  `json:"title,omitempty"`
	Location    string  `json:"location,omitempty"`
	BuyerEmail  string  `json:"buyer_email" validate:"required,email"`
	BuyerName   string  `json:"buyer_name,omitempty"`
	AgentEmail  string  `json:"agent_email" validate:"required,email"`
	OfferAmount float64 `json:"offer_amount,omitempty" validate:"gte=0"`
	BuyingDate  string  `json:"buying_date,omitempty"`
}

type PatchOfferStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}
