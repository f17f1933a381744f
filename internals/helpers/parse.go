// file: internals/helpers/parse.go
package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam membaca path param dan validasi bentuk UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" pada path tidak valid")
	}
	return id, nil
}

// NormalizeDate memotong timestamp ke tengah malam UTC.
// Attendance disimpan & dibandingkan per-hari.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDateQuery menerima "2006-01-02" atau RFC3339 dan mengembalikan
// tanggal yang sudah dinormalisasi.
func ParseDateQuery(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Date parameter is required")
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return NormalizeDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return NormalizeDate(t), nil
	}
	return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Date parameter is invalid (use YYYY-MM-DD)")
}
