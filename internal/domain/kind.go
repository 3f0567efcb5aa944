package domain

import "errors"

// ErrUnknownKind возвращается при неизвестном виде бронирования
var ErrUnknownKind = errors.New("domain: unknown booking kind")

// Kind represents one of the four bookable domains
type Kind string

const (
	KindCar        Kind = "car"
	KindFlight     Kind = "flight"
	KindHotel      Kind = "hotel"
	KindRestaurant Kind = "restaurant"
)

// kindSet таблица допустимых видов бронирования
// Единая точка диспетчеризации вместо повторяющихся switch по виду
var kindSet = map[Kind]struct{}{
	KindCar:        {},
	KindFlight:     {},
	KindHotel:      {},
	KindRestaurant: {},
}

// Kinds returns all booking kinds in their canonical display order
func Kinds() []Kind {
	return []Kind{KindCar, KindFlight, KindHotel, KindRestaurant}
}

// ParseKind validates a raw string and converts it to a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindSet[k]; !ok {
		return "", ErrUnknownKind
	}
	return k, nil
}

// IsValid returns true if the kind is one of the four known domains
func (k Kind) IsValid() bool {
	_, ok := kindSet[k]
	return ok
}
