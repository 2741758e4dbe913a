package shift

import (
	"regexp"
	"shiftpay/bizerror"
	"strconv"
	"strings"
	"time"
)

var (
	timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateShiftForm checks a shift construction request before anything
// is written and returns the derived hours worked. Every failing branch
// carries its own message. Overnight shifts (end before start) are not
// supported.
func ValidateShiftForm(name, date, startTime, endTime string) (float64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, &bizerror.ErrInvalidShiftForm{Message: "shift name is required"}
	}
	if strings.TrimSpace(date) == "" {
		return 0, &bizerror.ErrInvalidShiftForm{Message: "date is required (YYYY-MM-DD)"}
	}
	if strings.TrimSpace(startTime) == "" {
		return 0, &bizerror.ErrInvalidShiftForm{Message: "start time is required (HH:MM)"}
	}
	if strings.TrimSpace(endTime) == "" {
		return 0, &bizerror.ErrInvalidShiftForm{Message: "end time is required (HH:MM)"}
	}

	if !timePattern.MatchString(startTime) || !timePattern.MatchString(endTime) {
		return 0, &bizerror.ErrInvalidShiftForm{Message: "times must use HH:MM format"}
	}
	if !datePattern.MatchString(date) {
		return 0, &bizerror.ErrInvalidShiftForm{Message: "date must use YYYY-MM-DD format"}
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return 0, &bizerror.ErrInvalidShiftForm{Message: "date '" + date + "' is not a valid calendar date"}
	}

	start := clockMinutes(startTime)
	end := clockMinutes(endTime)
	if end <= start {
		return 0, &bizerror.ErrInvalidShiftForm{Message: "end time must be after start time"}
	}

	return float64(end-start) / 60.0, nil
}

// clockMinutes assumes the value already matched timePattern.
func clockMinutes(value string) int {
	parts := strings.Split(value, ":")
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}
