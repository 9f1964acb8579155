package turfapi

import (
	"time"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/pkg/types"
)

// Envelope нормализованный ответ auth-вызовов: вызывающий код ветвится
// по статусу без разбора ошибок транспорта
type Envelope struct {
	Status int
	Data   AuthData
}

// AuthData тело ответа auth-вызовов
type AuthData struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// RegisterRequest тело запроса регистрации
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest тело запроса логина
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// errorResponse модель ошибки от backend
type errorResponse struct {
	StatusCode int    `json:"statusCode,omitempty"`
	Message    string `json:"message,omitempty"`
}

// turfPayload wire-модель площадки
type turfPayload struct {
	ID              int64    `json:"id"`
	TurfName        string   `json:"turfName"`
	TurfType        string   `json:"turfType"`
	TurfPrice       float64  `json:"turfPrice"`
	Capacity        *int     `json:"capacity,omitempty"`
	Dimensions      *string  `json:"dimensions,omitempty"`
	TurfDescription *string  `json:"turfDescription,omitempty"`
	TurfPhotoURL    *string  `json:"turfPhotoUrl,omitempty"`
	Available       bool     `json:"available"`
}

func (p *turfPayload) toDomain() *domain.Turf {
	return &domain.Turf{
		ID:           p.ID,
		Name:         p.TurfName,
		Type:         p.TurfType,
		PricePerHour: p.TurfPrice,
		Capacity:     p.Capacity,
		Dimensions:   p.Dimensions,
		Description:  p.TurfDescription,
		PhotoURL:     p.TurfPhotoURL,
		Available:    p.Available,
	}
}

// turfListResponse ответ со списком площадок
type turfListResponse struct {
	StatusCode int           `json:"statusCode,omitempty"`
	Message    string        `json:"message,omitempty"`
	TurfList   []turfPayload `json:"turfList"`
}

// turfByIDResponse ответ с одной площадкой
type turfByIDResponse struct {
	StatusCode int          `json:"statusCode,omitempty"`
	Message    string       `json:"message,omitempty"`
	Turf       *turfPayload `json:"turf,omitempty"`
}

// userProfileResponse ответ с профилем залогиненного пользователя
type userProfileResponse struct {
	StatusCode int          `json:"statusCode,omitempty"`
	Message    string       `json:"message,omitempty"`
	User       *userPayload `json:"user,omitempty"`
}

// userPayload wire-модель пользователя
type userPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
}

func (p *userPayload) toDomain() *domain.User {
	name := p.Name
	if name == "" {
		name = p.FullName
	}
	return &domain.User{
		ID:    p.ID,
		Name:  name,
		Email: p.Email,
		Phone: p.PhoneNumber,
		Role:  domain.Role(p.Role),
	}
}

// BookTurfRequest тело запроса бронирования
type BookTurfRequest struct {
	BookingDate  string `json:"bookingDate"` // "2025-10-15"
	TimeSlot     string `json:"timeSlot"`    // "06:00-08:00"
	NumOfPlayers int    `json:"numOfPlayers"`
	Duration     int    `json:"duration"` // часы
}

// BookTurfResponse ответ на бронирование
type BookTurfResponse struct {
	StatusCode              int    `json:"statusCode"`
	BookingID               int64  `json:"bookingId,omitempty"`
	BookingConfirmationCode string `json:"bookingConfirmationCode,omitempty"`
	Message                 string `json:"message,omitempty"`
}

// bookingPayload wire-модель бронирования
type bookingPayload struct {
	ID                      int64        `json:"id"`
	BookingConfirmationCode string       `json:"bookingConfirmationCode,omitempty"`
	ConfirmationCode        string       `json:"confirmationCode,omitempty"`
	UserID                  int64        `json:"userId,omitempty"`
	TurfID                  int64        `json:"turfId,omitempty"`
	BookingDate             string       `json:"bookingDate"`
	TimeSlot                string       `json:"timeSlot"`
	Duration                int          `json:"duration,omitempty"`
	NumOfPlayers            int          `json:"numOfPlayers,omitempty"`
	TotalAmount             float64      `json:"totalAmount,omitempty"`
	Status                  string       `json:"status,omitempty"`
	Turf                    *turfPayload `json:"turf,omitempty"`
	User                    *userPayload `json:"user,omitempty"`
}

func (p *bookingPayload) toDomain() *domain.Booking {
	code := p.BookingConfirmationCode
	if code == "" {
		code = p.ConfirmationCode
	}

	date, _ := time.Parse(domain.DateFormat, p.BookingDate)

	duration := p.Duration
	if duration == 0 {
		duration = domain.BookingDurationHours
	}

	booking := &domain.Booking{
		ID:               p.ID,
		ConfirmationCode: code,
		UserID:           p.UserID,
		TurfID:           p.TurfID,
		BookingDate:      date,
		TimeSlot:         types.TimeSlot(p.TimeSlot),
		DurationHours:    duration,
		NumOfPlayers:     p.NumOfPlayers,
		TotalAmount:      p.TotalAmount,
		Status:           normalizeStatus(p.Status),
	}

	if p.Turf != nil {
		booking.TurfID = p.Turf.ID
		booking.TurfName = p.Turf.TurfName
		booking.TurfType = p.Turf.TurfType
	}
	if p.User != nil {
		booking.UserID = p.User.ID
	}
	return booking
}

// normalizeStatus приводит статусы backend к клиентской паре CONFIRMED/CANCELLED.
// Исторический статус BOOKED считается подтвержденным.
func normalizeStatus(s string) domain.BookingStatus {
	switch s {
	case "CANCELLED":
		return domain.StatusCancelled
	default:
		return domain.StatusConfirmed
	}
}

// bookingListResponse ответ со списком бронирований
type bookingListResponse struct {
	StatusCode  int              `json:"statusCode,omitempty"`
	Message     string           `json:"message,omitempty"`
	BookingList []bookingPayload `json:"bookingList"`
}

// bookingByCodeResponse ответ с одним бронированием
type bookingByCodeResponse struct {
	StatusCode int             `json:"statusCode,omitempty"`
	Message    string          `json:"message,omitempty"`
	Booking    *bookingPayload `json:"booking,omitempty"`
}

// TurfForm поля формы добавления/обновления площадки (multipart)
type TurfForm struct {
	TurfName        string
	TurfType        string
	TurfPrice       float64
	Capacity        *int
	Dimensions      *string
	TurfDescription *string
	Available       bool
}
