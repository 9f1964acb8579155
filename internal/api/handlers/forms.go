package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/pkg/ptr"
)

const maxTurfFormMemory = 10 << 20 // фото держим в памяти до 10 MiB

// ParseTurfForm читает multipart форму площадки (админские add/update).
// Возвращает поля формы и опциональный файл фото (nil, если не приложен).
func ParseTurfForm(r *http.Request) (turfapi.TurfForm, multipart.File, string, error) {
	if err := r.ParseMultipartForm(maxTurfFormMemory); err != nil {
		return turfapi.TurfForm{}, nil, "", fmt.Errorf("parse multipart form: %w", err)
	}

	form := turfapi.TurfForm{
		TurfName:  strings.TrimSpace(r.FormValue("turfName")),
		TurfType:  strings.TrimSpace(r.FormValue("turfType")),
		Available: r.FormValue("available") != "false",
	}

	if raw := r.FormValue("turfPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return turfapi.TurfForm{}, nil, "", fmt.Errorf("parse turf price: %w", err)
		}
		form.TurfPrice = price
	}
	if raw := r.FormValue("capacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil {
			return turfapi.TurfForm{}, nil, "", fmt.Errorf("parse capacity: %w", err)
		}
		form.Capacity = ptr.Ptr(capacity)
	}
	if raw := strings.TrimSpace(r.FormValue("dimensions")); raw != "" {
		form.Dimensions = ptr.Ptr(raw)
	}
	if raw := strings.TrimSpace(r.FormValue("description")); raw != "" {
		form.TurfDescription = ptr.Ptr(raw)
	}

	photo, header, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			return form, nil, "", nil
		}
		return turfapi.TurfForm{}, nil, "", fmt.Errorf("read photo: %w", err)
	}
	return form, photo, header.Filename, nil
}
