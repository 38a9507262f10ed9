package models

import "fmt"

// Weekday is a teaching day. The zero value means "not assigned".
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Weekdays lists the teaching days in fallback assignment order.
var Weekdays = [...]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayCodes = [...]string{"", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Valid reports whether d is one of the six teaching days.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Saturday
}

// String returns the three-letter code (MON..SAT).
func (d Weekday) String() string {
	if !d.Valid() {
		return ""
	}
	return weekdayCodes[d]
}

// ParseWeekday parses a canonical three-letter code.
func ParseWeekday(code string) (Weekday, error) {
	for _, d := range Weekdays {
		if weekdayCodes[d] == code {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday code %q", code)
}

func (d Weekday) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("weekday %d is not assigned", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
