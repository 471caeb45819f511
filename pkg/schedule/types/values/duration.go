package values

import (
	"fmt"
	"strconv"
)

type TimeUnit int

const (
	Minutes TimeUnit = iota
	Hours
	Days
	Weeks
	Months
	Percent
	Years
	ElapsedMinutes
	ElapsedHours
	ElapsedDays
	ElapsedWeeks
	ElapsedMonths
	ElapsedYears
	ElapsedPercent
)

// TimeUnits holds the time unit members along with their short codes, "m", "h", "ed" etc.
var TimeUnits = NewEnum("time_units",
	Member[TimeUnit]{Minutes, "MINUTES", []string{"m"}},
	Member[TimeUnit]{Hours, "HOURS", []string{"h"}},
	Member[TimeUnit]{Days, "DAYS", []string{"d"}},
	Member[TimeUnit]{Weeks, "WEEKS", []string{"w"}},
	Member[TimeUnit]{Months, "MONTHS", []string{"mo"}},
	Member[TimeUnit]{Percent, "PERCENT", []string{"%"}},
	Member[TimeUnit]{Years, "YEARS", []string{"y"}},
	Member[TimeUnit]{ElapsedMinutes, "ELAPSED_MINUTES", []string{"em"}},
	Member[TimeUnit]{ElapsedHours, "ELAPSED_HOURS", []string{"eh"}},
	Member[TimeUnit]{ElapsedDays, "ELAPSED_DAYS", []string{"ed"}},
	Member[TimeUnit]{ElapsedWeeks, "ELAPSED_WEEKS", []string{"ew"}},
	Member[TimeUnit]{ElapsedMonths, "ELAPSED_MONTHS", []string{"emo"}},
	Member[TimeUnit]{ElapsedYears, "ELAPSED_YEARS", []string{"ey"}},
	Member[TimeUnit]{ElapsedPercent, "ELAPSED_PERCENT", []string{"e%"}},
)

var shortCodes = [...]string{"m", "h", "d", "w", "mo", "%", "y", "em", "eh", "ed", "ew", "emo", "ey", "e%"}

func (u TimeUnit) String() string { return TimeUnits.NameOf(u) }

func (u TimeUnit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// Code returns the short unit code used in duration text, e.g. "ed" for elapsed days
func (u TimeUnit) Code() string {
	if u < 0 || int(u) >= len(shortCodes) {
		return ""
	}
	return shortCodes[u]
}

func (u TimeUnit) IsElapsed() bool {
	return u >= ElapsedMinutes
}

// Duration is a magnitude paired with the time unit it is expressed in
type Duration struct {
	Magnitude float64  `json:"duration"`
	Units     TimeUnit `json:"units"`
}

func NewDuration(magnitude float64, units TimeUnit) Duration {
	return Duration{Magnitude: magnitude, Units: units}
}

func (d Duration) String() string {
	return strconv.FormatFloat(d.Magnitude, 'f', -1, 64) + d.Units.Code()
}

// TimeUnitDefaults carries the calendar figures needed to convert between working time units
type TimeUnitDefaults struct {
	MinutesPerDay  float64
	MinutesPerWeek float64
	DaysPerMonth   float64
}

// DefaultTimeUnitDefaults matches an eight hour day, five day week and twenty day month
var DefaultTimeUnitDefaults = TimeUnitDefaults{
	MinutesPerDay:  480,
	MinutesPerWeek: 2400,
	DaysPerMonth:   20,
}

// ConvertUnits expresses d in another time unit. Percentages can not be converted.
func (d Duration) ConvertUnits(to TimeUnit, defaults TimeUnitDefaults) (Duration, error) {
	if d.Units == to {
		return d, nil
	}

	from, err := d.Units.minutes(defaults)
	if err != nil {
		return Duration{}, err
	}

	target, err := to.minutes(defaults)
	if err != nil {
		return Duration{}, err
	}

	if target == 0 {
		return Duration{Magnitude: 0, Units: to}, nil
	}

	return Duration{Magnitude: d.Magnitude * from / target, Units: to}, nil
}

func (u TimeUnit) minutes(defaults TimeUnitDefaults) (float64, error) {
	switch u {
	case Minutes, ElapsedMinutes:
		return 1, nil
	case Hours, ElapsedHours:
		return 60, nil
	case Days:
		return defaults.MinutesPerDay, nil
	case ElapsedDays:
		return 60 * 24, nil
	case Weeks:
		return defaults.MinutesPerWeek, nil
	case ElapsedWeeks:
		return 60 * 24 * 7, nil
	case Months:
		return defaults.MinutesPerDay * defaults.DaysPerMonth, nil
	case ElapsedMonths:
		return 60 * 24 * 30, nil
	case Years:
		return defaults.MinutesPerWeek * 52, nil
	case ElapsedYears:
		return 60 * 24 * 7 * 52, nil
	}
	return 0, fmt.Errorf("time unit %s can not be converted", u)
}

// Rate is an amount per time unit, e.g. a standard rate of 50 per hour
type Rate struct {
	Amount float64  `json:"amount"`
	Units  TimeUnit `json:"units"`
}

func NewRate(amount float64, units TimeUnit) Rate {
	return Rate{Amount: amount, Units: units}
}

func (r Rate) String() string {
	return strconv.FormatFloat(r.Amount, 'f', -1, 64) + "/" + r.Units.Code()
}
