package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and input format for stay dates.
const DateLayout = "2006-01-02"

// StayPeriod is a half-open date interval [CheckIn, CheckOut): the check-in
// day is part of the stay, the check-out day is not.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayPeriod creates a stay. Check-out must be after check-in. Times are
// normalized to whole days in UTC.
func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := toDate(checkIn)
	out := toDate(checkOut)
	if !out.After(in) {
		return StayPeriod{}, fmt.Errorf(
			"check-out date %s must be after check-in date %s: %w",
			out.Format(DateLayout), in.Format(DateLayout), ErrValidation)
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ParseStayPeriod creates a stay from two YYYY-MM-DD strings.
func ParseStayPeriod(checkIn, checkOut string) (StayPeriod, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return StayPeriod{}, fmt.Errorf("invalid check-in date %q: %w", checkIn, ErrValidation)
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return StayPeriod{}, fmt.Errorf("invalid check-out date %q: %w", checkOut, ErrValidation)
	}
	return NewStayPeriod(in, out)
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

// Nights is the number of whole days between check-in and check-out.
func (s StayPeriod) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps reports whether two stays share at least one night under half-open
// semantics: back-to-back stays do not overlap.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

func (s StayPeriod) String() string {
	return fmt.Sprintf("%s to %s", s.checkIn.Format(DateLayout), s.checkOut.Format(DateLayout))
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
