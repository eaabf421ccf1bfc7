package service

import (
	"time"

	"hospital-api/internal/apperr"
)

const dateLayout = "2006-01-02"

// parseDate 收 "2006-01-02"，也兼容 RFC3339，统一归到 UTC 零点
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func badDate() *apperr.Error {
	return apperr.BadRequest("Invalid date, use YYYY-MM-DD")
}
