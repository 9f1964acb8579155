package get_profile

import "github.com/nusrx24/Turf-2025/internal/domain"

// ProfileResponse HTTP response model
type ProfileResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phoneNumber,omitempty"`
	Role  string `json:"role,omitempty"`
}

// NewProfileResponse конвертирует доменного пользователя в response
func NewProfileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}
