package booking

import (
	"strings"
	"time"

	"hotelhub/internal/pkg/errs"
)

var (
	ErrInvalidDate   = errs.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidStay   = errs.New("checkout date must be after checkin date")
	ErrInvalidNights = errs.New("number of nights must be at least 1")
)

const dateLayout = "2006-01-02"

// StayRange is a checkin/checkout date pair plus the night count the guest was
// charged for. The night count travels separately through checkout metadata, so
// it is validated but not rederived from the dates.
type StayRange struct {
	checkin  string
	checkout string
	nights   int
}

func NewStayRange(checkin, checkout string, nights int) (StayRange, error) {
	in, err := parseDate(checkin)
	if err != nil {
		return StayRange{}, err
	}
	out, err := parseDate(checkout)
	if err != nil {
		return StayRange{}, err
	}
	if !out.After(in) {
		return StayRange{}, ErrInvalidStay
	}
	if nights < 1 {
		return StayRange{}, ErrInvalidNights
	}
	return StayRange{checkin: DateOnly(checkin), checkout: DateOnly(checkout), nights: nights}, nil
}

func (s StayRange) Checkin() string  { return s.checkin }
func (s StayRange) Checkout() string { return s.checkout }
func (s StayRange) Nights() int      { return s.nights }

func parseDate(s string) (time.Time, error) {
	// Tolerate full timestamps from date pickers; only the date part matters.
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DateOnly strips a trailing time component from a date-picker value.
func DateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}
