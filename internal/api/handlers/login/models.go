package login

import (
	"strings"

	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate проверяет обязательные поля формы логина
func (r *LoginRequest) Validate() bool {
	return strings.TrimSpace(r.Email) != "" && r.Password != ""
}

// ToGatewayRequest конвертирует HTTP request в модель gateway
func (r *LoginRequest) ToGatewayRequest() turfapi.LoginRequest {
	return turfapi.LoginRequest{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}
