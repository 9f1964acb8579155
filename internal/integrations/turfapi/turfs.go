package turfapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/pkg/types"
)

// GetAllTurfs получает полный список площадок
func (c *Client) GetAllTurfs(ctx context.Context) ([]*domain.Turf, error) {
	return c.fetchTurfList(ctx, "list_turfs", "/turfs/all")
}

// GetAllAvailableTurfs получает список площадок с выставленным флагом доступности
func (c *Client) GetAllAvailableTurfs(ctx context.Context) ([]*domain.Turf, error) {
	return c.fetchTurfList(ctx, "list_available_turfs", "/turfs/all-available-turfs")
}

func (c *Client) fetchTurfList(ctx context.Context, operation, path string) ([]*domain.Turf, error) {
	req, err := c.newRequest(ctx, operation, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var parsed turfListResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}

	turfs := make([]*domain.Turf, 0, len(parsed.TurfList))
	for i := range parsed.TurfList {
		turfs = append(turfs, parsed.TurfList[i].toDomain())
	}
	return turfs, nil
}

// GetTurfByID получает площадку по идентификатору
func (c *Client) GetTurfByID(ctx context.Context, turfID int64) (*domain.Turf, error) {
	path := fmt.Sprintf("/turfs/turf-by-id/%d", turfID)
	req, err := c.newRequest(ctx, "get_turf", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var parsed turfByIDResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}
	if parsed.Turf == nil {
		return nil, fmt.Errorf("%w: turf payload missing", ErrInvalidResponse)
	}
	return parsed.Turf.toDomain(), nil
}

// GetTurfTypes получает справочник типов площадок
func (c *Client) GetTurfTypes(ctx context.Context) ([]string, error) {
	req, err := c.newRequest(ctx, "get_turf_types", http.MethodGet, "/turfs/types", nil)
	if err != nil {
		return nil, err
	}

	var parsed []string
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// SearchAvailableTurfs ищет доступные площадки по дате, слоту и типу
func (c *Client) SearchAvailableTurfs(ctx context.Context, date time.Time, slot types.TimeSlot, turfType string) ([]*domain.Turf, error) {
	params := url.Values{}
	params.Set("bookingDate", date.Format(domain.DateFormat))
	params.Set("bookingTime", slot.String())
	params.Set("turfType", turfType)

	path := "/turfs/available-turfs-by-date-and-type?" + params.Encode()
	req, err := c.newRequest(ctx, "search_turfs", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var parsed turfListResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}

	turfs := make([]*domain.Turf, 0, len(parsed.TurfList))
	for i := range parsed.TurfList {
		turfs = append(turfs, parsed.TurfList[i].toDomain())
	}
	return turfs, nil
}

// AddTurf создает площадку (multipart: поля + опциональное фото)
func (c *Client) AddTurf(ctx context.Context, form TurfForm, photo io.Reader, photoName string) error {
	body, contentType, err := encodeTurfForm(form, photo, photoName)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, "add_turf", http.MethodPost, "/turfs/add", body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, nil)
}

// UpdateTurf обновляет площадку (multipart: поля + опциональное фото)
func (c *Client) UpdateTurf(ctx context.Context, turfID int64, form TurfForm, photo io.Reader, photoName string) error {
	body, contentType, err := encodeTurfForm(form, photo, photoName)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/turfs/update/%d", turfID)
	req, err := c.newRequest(ctx, "update_turf", http.MethodPut, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, nil)
}

// DeleteTurf удаляет площадку
func (c *Client) DeleteTurf(ctx context.Context, turfID int64) error {
	path := fmt.Sprintf("/turfs/delete/%d", turfID)
	req, err := c.newRequest(ctx, "delete_turf", http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// encodeTurfForm собирает multipart-тело формы площадки
func encodeTurfForm(form TurfForm, photo io.Reader, photoName string) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	fields := map[string]string{
		"turfName":  form.TurfName,
		"turfType":  form.TurfType,
		"turfPrice": strconv.FormatFloat(form.TurfPrice, 'f', -1, 64),
		"available": strconv.FormatBool(form.Available),
	}
	if form.Capacity != nil {
		fields["capacity"] = strconv.Itoa(*form.Capacity)
	}
	if form.Dimensions != nil {
		fields["dimensions"] = *form.Dimensions
	}
	if form.TurfDescription != nil {
		fields["turfDescription"] = *form.TurfDescription
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("%w: write form field %s: %v", ErrInternal, name, err)
		}
	}

	if photo != nil {
		if photoName == "" {
			photoName = "photo"
		}
		part, err := writer.CreateFormFile("photo", photoName)
		if err != nil {
			return nil, "", fmt.Errorf("%w: create photo part: %v", ErrInternal, err)
		}
		if _, err := io.Copy(part, photo); err != nil {
			return nil, "", fmt.Errorf("%w: copy photo: %v", ErrInternal, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: close multipart writer: %v", ErrInternal, err)
	}
	return buf, writer.FormDataContentType(), nil
}
