package values

import (
	"fmt"
	"time"
)

// LocalTime is a time of day without a date, e.g. the default start time of a project
type LocalTime struct {
	Hour   int
	Minute int
	Second int
}

func NewLocalTime(hour, minute, second int) LocalTime {
	return LocalTime{Hour: hour, Minute: minute, Second: second}
}

// LocalTimeOf returns the clock part of t
func LocalTimeOf(t time.Time) LocalTime {
	return LocalTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseLocalTime accepts "15:04" and "15:04:05"
func ParseLocalTime(s string) (LocalTime, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalTimeOf(t), nil
		}
	}
	return LocalTime{}, fmt.Errorf("invalid time of day %q", s)
}

func (lt LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", lt.Hour, lt.Minute, lt.Second)
}

func (lt LocalTime) MarshalText() ([]byte, error) {
	return []byte(lt.String()), nil
}

// Priority ranges from 0 (lowest) to 1000 (do not level)
type Priority int64

const (
	PriorityLowest     Priority = 100
	PriorityLow        Priority = 300
	PriorityMedium     Priority = 500
	PriorityHigh       Priority = 700
	PriorityHighest    Priority = 900
	PriorityDoNotLevel Priority = 1000
)

// Binary wraps the raw contents of a slot whose real type is only known to the caller,
// e.g. timephased data or an enterprise field without a declared type.
type Binary struct {
	Value any
}

// Bytes returns the wrapped value when it is a byte slice
func (b Binary) Bytes() ([]byte, bool) {
	buf, ok := b.Value.([]byte)
	return buf, ok
}

func (b Binary) MarshalJSON() ([]byte, error) {
	return marshalJSON(b.Value)
}

// List is an ordered sequence of raw values, e.g. a list of relations or code values
type List []any
