package dto

type PriceRangeRequest struct {
	Start float64 `json:"start" validate:"gte=0"`
	End   float64 `json:"end" validate:"gtefield=Start"`
}

type CreatePropertyRequest struct {
	Title       string            `json:"title" validate:"required"`
	Location    string            `json:"location" validate:"required"`
	Image       string            `json:"image,omitempty"`
	Description string            `json:"description,omitempty"`
	Price       PriceRangeRequest `json:"price" validate:"required"`
	AgentName   string            `json:"agent_name,omitempty"`
	AgentImage  string            `json:"agent_image,omitempty"`
}

// UpdatePropertyRequest replaces exactly the editable listing fields;
// verification and agent identity are not touched by the owner edit.
type UpdatePropertyRequest struct {
	Title       string            `json:"title" validate:"required"`
	Location    string            `json:"location" validate:"required"`
	Image       string            `json:"image,omitempty"`
	Description string            `json:"description,omitempty"`
	Price       PriceRangeRequest `json:"price" validate:"required"`
}

type PatchVerificationRequest struct {
	Verification string `json:"verification" validate:"required,oneof=pending verified rejected"`
}
