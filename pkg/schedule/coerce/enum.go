package coerce

import (
	scherrors "github.com/diwise/project-attributes/pkg/schedule/errors"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

// Enum maps a member name, alias or integer code onto a member of enum. Scalars that match
// no member produce an UnknownEnumMemberError, anything else is a mismatch.
func Enum[E ~int](dt datatypes.DataType, raw any, enum *values.Enum[E]) (E, bool, error) {
	var zero E

	if isAbsent(raw) {
		return zero, false, nil
	}

	switch v := raw.(type) {
	case E:
		if enum.Contains(v) {
			return v, true, nil
		}
		return zero, false, scherrors.NewUnknownEnumMemberError(enum.Name(), int(v))
	case string:
		if member, ok := enum.ByName(v); ok {
			return member, true, nil
		}
		return zero, false, scherrors.NewUnknownEnumMemberError(enum.Name(), v)
	case float32:
		return enumCode(dt, raw, float64(v), enum)
	case float64:
		return enumCode(dt, raw, v, enum)
	}

	if code, ok := asInt64(raw); ok {
		if member, ok := enum.ByCode(code); ok {
			return member, true, nil
		}
		return zero, false, scherrors.NewUnknownEnumMemberError(enum.Name(), code)
	}

	return mismatch[E](dt, raw, "expected a member name or code")
}

// enumCode applies the integer policy to a code that was decoded as a floating point number
func enumCode[E ~int](dt datatypes.DataType, raw any, f float64, enum *values.Enum[E]) (E, bool, error) {
	var zero E

	code, _, err := integralFloat(dt, raw, f)
	if err != nil {
		return zero, false, err
	}

	if member, ok := enum.ByCode(code); ok {
		return member, true, nil
	}

	return zero, false, scherrors.NewUnknownEnumMemberError(enum.Name(), code)
}
