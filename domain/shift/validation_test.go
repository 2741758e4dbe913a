package shift_test

import (
	"shiftpay/bizerror"
	"shiftpay/domain/shift"
	"testing"

	. "github.com/onsi/gomega"
)

func TestValidateShiftForm(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should compute hours for a valid form", func(t *testing.T) {
		hours, err := shift.ValidateShiftForm("Morning Shift", "2026-09-01", "09:00", "17:00")
		Expect(err).To(BeNil())
		Expect(hours).To(Equal(8.0))

		hours, err = shift.ValidateShiftForm("Half Shift", "2026-09-01", "09:30", "13:00")
		Expect(err).To(BeNil())
		Expect(hours).To(Equal(3.5))
	})

	t.Run("should accept single digit hours", func(t *testing.T) {
		hours, err := shift.ValidateShiftForm("Early Shift", "2026-09-01", "9:00", "12:00")
		Expect(err).To(BeNil())
		Expect(hours).To(Equal(3.0))
	})

	t.Run("should reject blank fields each with its own message", func(t *testing.T) {
		_, err := shift.ValidateShiftForm("  ", "2026-09-01", "09:00", "17:00")
		Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "shift name is required"}))

		_, err = shift.ValidateShiftForm("Morning Shift", "", "09:00", "17:00")
		Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "date is required (YYYY-MM-DD)"}))

		_, err = shift.ValidateShiftForm("Morning Shift", "2026-09-01", "", "17:00")
		Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "start time is required (HH:MM)"}))

		_, err = shift.ValidateShiftForm("Morning Shift", "2026-09-01", "09:00", "")
		Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "end time is required (HH:MM)"}))
	})

	t.Run("should reject malformed times", func(t *testing.T) {
		for _, value := range []string{"24:00", "25:00", "12:60", "1200", "ab:cd"} {
			_, err := shift.ValidateShiftForm("Morning Shift", "2026-09-01", value, "17:00")
			Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "times must use HH:MM format"}))

			_, err = shift.ValidateShiftForm("Morning Shift", "2026-09-01", "09:00", value)
			Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "times must use HH:MM format"}))
		}
	})

	t.Run("should reject malformed dates", func(t *testing.T) {
		_, err := shift.ValidateShiftForm("Morning Shift", "01-09-2026", "09:00", "17:00")
		Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "date must use YYYY-MM-DD format"}))

		_, err = shift.ValidateShiftForm("Morning Shift", "2026-13-01", "09:00", "17:00")
		Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "date '2026-13-01' is not a valid calendar date"}))

		_, err = shift.ValidateShiftForm("Morning Shift", "2026-02-30", "09:00", "17:00")
		Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "date '2026-02-30' is not a valid calendar date"}))
	})

	t.Run("should reject zero and negative length shifts", func(t *testing.T) {
		_, err := shift.ValidateShiftForm("Morning Shift", "2026-09-01", "09:00", "09:00")
		Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "end time must be after start time"}))

		_, err = shift.ValidateShiftForm("Night Shift", "2026-09-01", "22:00", "06:00")
		Expect(err).To(Equal(&bizerror.ErrInvalidShiftForm{Message: "end time must be after start time"}))
	})
}
