package entities

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/project-attributes/pkg/schedule/schema"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

// NewFromJSON creates an entity from the JSON form of an attribute bag
func NewFromJSON(kind schema.Kind, body []byte) (Entity, error) {
	bag, err := DecodeBag(body)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	return New(kind, FromBag(bag))
}

// DecodeBag reads a JSON object into an ordered attribute bag. Objects with an "@type" member
// and no members other than "@value" and "unitCode" are typed scalars,
// e.g. {"@type": "DateTime", "@value": "2023-01-15T08:00:00Z"}.
func DecodeBag(body []byte) (*values.Map, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("an attribute bag must be a json object")
	}

	bag, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the attribute bag")
	}

	return bag, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			obj, err := decodeObject(dec)
			if err != nil {
				return nil, err
			}
			if isTypedScalar(obj) {
				return typedScalar(obj)
			}
			return obj, nil
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %s", v)
	case json.Number:
		return number(v)
	default:
		// string, bool or nil
		return v, nil
	}
}

func decodeObject(dec *json.Decoder) (*values.Map, error) {
	obj := values.NewMap()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		obj.Set(key, v)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	list := []any{}

	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return list, nil
}

// number keeps integer literals as integers so that they can be told apart from
// numbers with a fractional part
func number(n json.Number) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
	}
	return n.Float64()
}

var typedScalarKeys = map[string]bool{"@type": true, "@value": true, "unitCode": true}

// isTypedScalar tells typed scalars from nested maps that happen to have a member named @type,
// such as a custom property
func isTypedScalar(obj *values.Map) bool {
	if _, typed := obj.Get("@type"); !typed {
		return false
	}

	for _, key := range obj.Keys() {
		if !typedScalarKeys[key] {
			return false
		}
	}

	return true
}

func typedScalar(obj *values.Map) (any, error) {
	typeName, _ := obj.Get("@type")
	value, _ := obj.Get("@value")

	switch typeName {
	case "DateTime":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("the value of a DateTime must be a string")
		}
		return parseDateTime(s)
	case "Time":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("the value of a Time must be a string")
		}
		return values.ParseLocalTime(s)
	case "Duration":
		magnitude, units, err := magnitudeWithUnits(obj, value)
		if err != nil {
			return nil, err
		}
		return values.NewDuration(magnitude, units), nil
	case "Rate":
		amount, units, err := magnitudeWithUnits(obj, value)
		if err != nil {
			return nil, err
		}
		return values.NewRate(amount, units), nil
	case "Binary":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("the value of a Binary must be a base64 string")
		}
		return base64.StdEncoding.DecodeString(s)
	}

	return nil, fmt.Errorf("unsupported value type %v", typeName)
}

var dateTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid DateTime %q", s)
}

func magnitudeWithUnits(obj *values.Map, value any) (float64, values.TimeUnit, error) {
	var magnitude float64

	switch v := value.(type) {
	case int64:
		magnitude = float64(v)
	case float64:
		magnitude = v
	default:
		return 0, 0, fmt.Errorf("expected a numeric @value, not %v", value)
	}

	code, _ := obj.Get("unitCode")
	s, ok := code.(string)
	if !ok {
		return 0, 0, fmt.Errorf("a unitCode is required")
	}

	units, ok := values.TimeUnits.ByName(s)
	if !ok {
		return 0, 0, fmt.Errorf("unknown unitCode %q", s)
	}

	return magnitude, units, nil
}
