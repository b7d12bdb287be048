package user

type SignupRequest struct {
	Email       string `json:"email" validate:"max=255"`
	DisplayName string `json:"display_name" validate:"max=255"`
	Role        string `json:"role" validate:"max=20"`
}
