package dto

type RegisterRequestDTO struct {
	Username     string `json:"username" validate:"required,min=3,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	ReferralCode string `json:"referral_code,omitempty"`
}

type RegisterResponseDTO struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	ReferralCode string `json:"referral_code"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	IsAdmin bool   `json:"is_admin"`
}
