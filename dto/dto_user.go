package dto

type UpsertUserRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=guest agent admin"`
}

type PatchRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=guest agent admin"`
}
