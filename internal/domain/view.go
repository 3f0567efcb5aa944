package domain

import (
	"errors"
	"time"
)

// ErrUnknownView возвращается при неизвестном view
var ErrUnknownView = errors.New("domain: unknown view")

// View is the upcoming/past partition of a booking list.
// It is derived from the service date at query time and never stored,
// so a booking migrates from upcoming to past without any write.
type View string

const (
	ViewUpcoming View = "upcoming"
	ViewPast     View = "past"
)

// ParseView validates a raw string and converts it to a View
func ParseView(s string) (View, error) {
	v := View(s)
	if v != ViewUpcoming && v != ViewPast {
		return "", ErrUnknownView
	}
	return v, nil
}

// ViewOf partitions a service date against the current instant.
// The boundary is strict: serviceDate >= now is upcoming, else past.
func ViewOf(serviceDate, now time.Time) View {
	if serviceDate.Before(now) {
		return ViewPast
	}
	return ViewUpcoming
}
