package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

// Row is one canonical attribute value, spread over the column that fits its type
type Row struct {
	Attribute string
	ValueType string
	Text      *string
	Number    *float64
	Timestamp *time.Time
	JSON      []byte
}

// NewRow maps a canonical value, as returned by the coercion engine, to a row
func NewRow(attributeName string, dt datatypes.DataType, value any) (Row, error) {
	row := Row{
		Attribute: attributeName,
		ValueType: dt.String(),
	}

	switch v := value.(type) {
	case bool:
		// flags are stored as 0 or 1 so that they can be filtered and summed like other numbers
		if v {
			row.Number = number(1)
		} else {
			row.Number = number(0)
		}
	case int64:
		row.Number = number(float64(v))
	case float64:
		row.Number = number(v)
	case values.Priority:
		row.Number = number(float64(v))
	case time.Time:
		ts := v.UTC()
		row.Timestamp = &ts
	case string:
		row.Text = &v
	case rune:
		s := string(v)
		row.Text = &s
	case values.LocalTime:
		s := v.String()
		row.Text = &s
	case fmt.Stringer:
		if !dt.IsEnum() {
			return marshalled(row, value)
		}
		s := v.String()
		row.Text = &s
	default:
		return marshalled(row, value)
	}

	return row, nil
}

func number(f float64) *float64 {
	return &f
}

func marshalled(row Row, value any) (Row, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return Row{}, fmt.Errorf("failed to marshal %s: %w", row.Attribute, err)
	}
	row.JSON = b
	return row, nil
}
