package register

import (
	"strings"

	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate проверяет обязательные поля формы регистрации
func (r *RegisterRequest) Validate() bool {
	return strings.TrimSpace(r.FullName) != "" &&
		strings.TrimSpace(r.Email) != "" &&
		r.Password != ""
}

// ToGatewayRequest конвертирует HTTP request в модель gateway
func (r *RegisterRequest) ToGatewayRequest() turfapi.RegisterRequest {
	return turfapi.RegisterRequest{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	Message string `json:"message"`
}
