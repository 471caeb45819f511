package coerce

import (
	"fmt"
	"math"
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	scherrors "github.com/diwise/project-attributes/pkg/schedule/errors"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

// Every function in this package returns (value, present, error). A nil raw value, including
// a typed nil pointer, is absent and never an error.

func isAbsent(raw any) bool {
	if raw == nil {
		return true
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func mismatch[T any](dt datatypes.DataType, raw any, reason string) (T, bool, error) {
	var zero T
	return zero, false, scherrors.NewMismatchError(dt, raw, reason)
}

func Boolean(raw any) (bool, bool, error) {
	if isAbsent(raw) {
		return false, false, nil
	}

	switch v := raw.(type) {
	case bool:
		return v, true, nil
	case *bool:
		return *v, true, nil
	}

	// binary and text formats store flags as 0 or 1
	if i, ok := asInt64(raw); ok {
		switch i {
		case 0:
			return false, true, nil
		case 1:
			return true, true, nil
		}
		return mismatch[bool](datatypes.Boolean, raw, "integer flags must be 0 or 1")
	}

	return mismatch[bool](datatypes.Boolean, raw, "")
}

// Integer rejects numbers with a fractional part instead of truncating them
func Integer(raw any) (int64, bool, error) {
	return integer(datatypes.Integer, raw)
}

// Short applies the integer policy and also requires the value to fit in 16 bits
func Short(raw any) (int64, bool, error) {
	v, ok, err := integer(datatypes.Short, raw)
	if err != nil || !ok {
		return v, ok, err
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return mismatch[int64](datatypes.Short, raw, "out of range")
	}
	return v, true, nil
}

func Priority(raw any) (values.Priority, bool, error) {
	if p, ok := raw.(values.Priority); ok {
		return p, true, nil
	}
	v, ok, err := integer(datatypes.Priority, raw)
	return values.Priority(v), ok, err
}

func integer(dt datatypes.DataType, raw any) (int64, bool, error) {
	if isAbsent(raw) {
		return 0, false, nil
	}

	if i, ok := asInt64(raw); ok {
		return i, true, nil
	}

	switch v := raw.(type) {
	case uint, uint64:
		return mismatch[int64](dt, raw, "out of range")
	case float32:
		return integralFloat(dt, raw, float64(v))
	case float64:
		return integralFloat(dt, raw, v)
	}

	return mismatch[int64](dt, raw, "")
}

func integralFloat(dt datatypes.DataType, raw any, f float64) (int64, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return mismatch[int64](dt, raw, "not a finite number")
	}
	if f != math.Trunc(f) {
		return mismatch[int64](dt, raw, "non-integral number")
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return mismatch[int64](dt, raw, "out of range")
	}
	return int64(f), true, nil
}

func asInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), true
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	}
	return 0, false
}

func Float(raw any) (float64, bool, error) {
	return float(datatypes.Numeric, raw)
}

func Units(raw any) (float64, bool, error) {
	return float(datatypes.Units, raw)
}

// Currency amounts are passed on without rounding, precision is a concern of the file format
func Currency(raw any) (float64, bool, error) {
	return float(datatypes.Currency, raw)
}

func Percentage(raw any) (float64, bool, error) {
	return float(datatypes.Percentage, raw)
}

func float(dt datatypes.DataType, raw any) (float64, bool, error) {
	if isAbsent(raw) {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case *float64:
		return *v, true, nil
	case uint:
		return float64(v), true, nil
	case uint64:
		return float64(v), true, nil
	}

	if i, ok := asInt64(raw); ok {
		return float64(i), true, nil
	}

	return mismatch[float64](dt, raw, "")
}

// Date expects an already parsed timestamp. Strings are never parsed here.
func Date(raw any) (time.Time, bool, error) {
	if isAbsent(raw) {
		return time.Time{}, false, nil
	}

	switch v := raw.(type) {
	case time.Time:
		return v, true, nil
	case *time.Time:
		return *v, true, nil
	}

	return mismatch[time.Time](datatypes.Date, raw, "expected a parsed timestamp")
}

func Time(raw any) (values.LocalTime, bool, error) {
	if isAbsent(raw) {
		return values.LocalTime{}, false, nil
	}

	switch v := raw.(type) {
	case values.LocalTime:
		return v, true, nil
	case *values.LocalTime:
		return *v, true, nil
	case time.Time:
		return values.LocalTimeOf(v), true, nil
	case *time.Time:
		return values.LocalTimeOf(*v), true, nil
	}

	return mismatch[values.LocalTime](datatypes.Time, raw, "expected a parsed time of day")
}

func Duration(raw any) (values.Duration, bool, error) {
	return duration(datatypes.Duration, raw)
}

func Work(raw any) (values.Duration, bool, error) {
	return duration(datatypes.Work, raw)
}

func Delay(raw any) (values.Duration, bool, error) {
	return duration(datatypes.Delay, raw)
}

// duration requires a structured value, units are never inferred from a bare number
func duration(dt datatypes.DataType, raw any) (values.Duration, bool, error) {
	if isAbsent(raw) {
		return values.Duration{}, false, nil
	}

	var d values.Duration
	switch v := raw.(type) {
	case values.Duration:
		d = v
	case *values.Duration:
		d = *v
	default:
		return mismatch[values.Duration](dt, raw, "expected a magnitude with a time unit")
	}

	if !values.TimeUnits.Contains(d.Units) {
		return values.Duration{}, false, scherrors.NewUnknownEnumMemberError(values.TimeUnits.Name(), int(d.Units))
	}

	return d, true, nil
}

func Rate(raw any) (values.Rate, bool, error) {
	if isAbsent(raw) {
		return values.Rate{}, false, nil
	}

	var r values.Rate
	switch v := raw.(type) {
	case values.Rate:
		r = v
	case *values.Rate:
		r = *v
	default:
		return mismatch[values.Rate](datatypes.Rate, raw, "expected an amount with a time unit")
	}

	if !values.TimeUnits.Contains(r.Units) {
		return values.Rate{}, false, scherrors.NewUnknownEnumMemberError(values.TimeUnits.Name(), int(r.Units))
	}

	return r, true, nil
}

func Char(raw any) (rune, bool, error) {
	if isAbsent(raw) {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case rune:
		return v, true, nil
	case string:
		if utf8.RuneCountInString(v) == 1 {
			r, _ := utf8.DecodeRuneInString(v)
			return r, true, nil
		}
		return mismatch[rune](datatypes.Char, raw, fmt.Sprintf("expected a single character, got %d", utf8.RuneCountInString(v)))
	}

	return mismatch[rune](datatypes.Char, raw, "")
}

// String is a pass through for string values
func String(raw any) (string, bool, error) {
	return str(datatypes.String, raw)
}

func Notes(raw any) (string, bool, error) {
	return str(datatypes.Notes, raw)
}

func str(dt datatypes.DataType, raw any) (string, bool, error) {
	if isAbsent(raw) {
		return "", false, nil
	}

	switch v := raw.(type) {
	case string:
		return v, true, nil
	case *string:
		return *v, true, nil
	}

	return mismatch[string](dt, raw, "")
}

// Binary never fails for a present value, interpretation is left to the caller
func Binary(raw any) (values.Binary, bool, error) {
	if isAbsent(raw) {
		return values.Binary{}, false, nil
	}
	return values.Binary{Value: raw}, true, nil
}

// GUID returns the canonical lower case form, e.g. 6ba7b810-9dad-11d1-80b4-00c04fd430c8
func GUID(raw any) (string, bool, error) {
	if isAbsent(raw) {
		return "", false, nil
	}

	switch v := raw.(type) {
	case uuid.UUID:
		return v.String(), true, nil
	case [16]byte:
		return uuid.UUID(v).String(), true, nil
	case []byte:
		id, err := uuid.FromBytes(v)
		if err != nil {
			return mismatch[string](datatypes.GUID, raw, err.Error())
		}
		return id.String(), true, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return mismatch[string](datatypes.GUID, raw, err.Error())
		}
		return id.String(), true, nil
	}

	return mismatch[string](datatypes.GUID, raw, "")
}

// Map keeps the order of the nested keys and leaves the nested values untouched
func Map(raw any) (*values.Map, bool, error) {
	if isAbsent(raw) {
		return nil, false, nil
	}

	switch v := raw.(type) {
	case *values.Map:
		return v, true, nil
	case values.Map:
		return &v, true, nil
	case map[string]any:
		return values.FromGoMap(v), true, nil
	}

	return mismatch[*values.Map](datatypes.Map, raw, "")
}

func List(dt datatypes.DataType, raw any) (values.List, bool, error) {
	if isAbsent(raw) {
		return nil, false, nil
	}

	switch v := raw.(type) {
	case values.List:
		return v, true, nil
	case []any:
		return values.List(v), true, nil
	}

	return mismatch[values.List](dt, raw, "expected a list")
}
