package errors

import (
	"errors"
	"fmt"

	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
)

var ErrCoercionMismatch = fmt.Errorf("coercion mismatch")
var ErrUnknownEnumMember = fmt.Errorf("unknown enum member")
var ErrUnknownAttribute = fmt.Errorf("unknown attribute")

// MismatchError is returned when a raw value is present but can not represent the
// declared data type, e.g. a string where a date was expected
type MismatchError struct {
	Attribute string
	Expected  datatypes.DataType
	Actual    string
	Reason    string
}

func NewMismatchError(expected datatypes.DataType, raw any, reason string) *MismatchError {
	return &MismatchError{
		Expected: expected,
		Actual:   Shape(raw),
		Reason:   reason,
	}
}

func (m *MismatchError) Error() string {
	msg := fmt.Sprintf("cannot coerce %s value to %s", m.Actual, m.Expected)
	if m.Attribute != "" {
		msg = fmt.Sprintf("attribute %s: %s", m.Attribute, msg)
	}
	if m.Reason != "" {
		msg += " (" + m.Reason + ")"
	}
	return msg
}

func (m *MismatchError) Is(target error) bool { return target == ErrCoercionMismatch }

// UnknownEnumMemberError is returned when a scalar does not match any member of the
// target enumeration. This usually means the value comes from a newer file format.
type UnknownEnumMemberError struct {
	Attribute   string
	Enumeration string
	Value       any
}

func NewUnknownEnumMemberError(enumeration string, value any) *UnknownEnumMemberError {
	return &UnknownEnumMemberError{
		Enumeration: enumeration,
		Value:       value,
	}
}

func (u *UnknownEnumMemberError) Error() string {
	msg := fmt.Sprintf("%v is not a member of %s", u.Value, u.Enumeration)
	if u.Attribute != "" {
		msg = fmt.Sprintf("attribute %s: %s", u.Attribute, msg)
	}
	return msg
}

func (u *UnknownEnumMemberError) Is(target error) bool { return target == ErrUnknownEnumMember }

// UnknownAttributeError signals a lookup of a name that the schema of an entity kind does not
// declare. It is an integration error and is raised with panic by the registry.
type UnknownAttributeError struct {
	Kind      string
	Attribute string
}

func NewUnknownAttributeError(kind, attribute string) *UnknownAttributeError {
	return &UnknownAttributeError{Kind: kind, Attribute: attribute}
}

func (u *UnknownAttributeError) Error() string {
	return fmt.Sprintf("%s does not declare an attribute named %q", u.Kind, u.Attribute)
}

func (u *UnknownAttributeError) Is(target error) bool { return target == ErrUnknownAttribute }

// WithAttribute stamps the attribute name onto a coercion error. Other errors are returned as is.
func WithAttribute(err error, attribute string) error {
	var mismatch *MismatchError
	if errors.As(err, &mismatch) {
		stamped := *mismatch
		stamped.Attribute = attribute
		return &stamped
	}

	var unknown *UnknownEnumMemberError
	if errors.As(err, &unknown) {
		stamped := *unknown
		stamped.Attribute = attribute
		return &stamped
	}

	return err
}

// Shape describes the structure of a raw value in error messages
func Shape(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "float"
	case string:
		return "string"
	case []byte:
		return "bytes"
	case []any:
		return "list"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
