package datatypes

import (
	"fmt"
	"strings"
)

// DataType identifies the canonical semantic type of an attribute
type DataType int

const (
	Undefined DataType = iota

	Boolean
	Integer
	Short
	Numeric
	Units
	Currency
	Percentage
	Date
	Time
	Duration
	Work
	Delay
	Rate
	Char
	String
	Notes
	Binary
	GUID
	Map
	Priority

	// list shaped values, elements are passed through untouched
	RelationList
	CodeValues
	ActivityCodeValues
	StepList
	ExpenseItemList
	DateRangeList

	// enumerations
	TimeUnits
	RateUnits
	WorkUnits
	Day
	Accrue
	DateOrder
	CurrencySymbolPosition
	TaskType
	ResourceType
	Constraint
	EarnedValueMethod
	TaskMode
	ScheduleFrom
	BookingType
	WorkContour
	WorkGroup
	RateSource
	ResourceRequestType
	PercentCompleteType
	ActivityType
	ActivityStatus
	CriticalActivityType
	TotalSlackType
	RelationshipLagCalendar
	SchedulingProgressedActivities
	ProjectDateFormat
	ProjectTimeFormat
	MPXCodePage
	MPXFileVersion

	lastDataType
)

var names = [...]string{
	Undefined:                      "undefined",
	Boolean:                        "boolean",
	Integer:                        "integer",
	Short:                          "short",
	Numeric:                        "numeric",
	Units:                          "units",
	Currency:                       "currency",
	Percentage:                     "percentage",
	Date:                           "date",
	Time:                           "time",
	Duration:                       "duration",
	Work:                           "work",
	Delay:                          "delay",
	Rate:                           "rate",
	Char:                           "char",
	String:                         "string",
	Notes:                          "notes",
	Binary:                         "binary",
	GUID:                           "guid",
	Map:                            "map",
	Priority:                       "priority",
	RelationList:                   "relation_list",
	CodeValues:                     "code_values",
	ActivityCodeValues:             "activity_code_values",
	StepList:                       "step_list",
	ExpenseItemList:                "expense_item_list",
	DateRangeList:                  "date_range_list",
	TimeUnits:                      "time_units",
	RateUnits:                      "rate_units",
	WorkUnits:                      "work_units",
	Day:                            "day",
	Accrue:                         "accrue",
	DateOrder:                      "date_order",
	CurrencySymbolPosition:         "currency_symbol_position",
	TaskType:                       "task_type",
	ResourceType:                   "resource_type",
	Constraint:                     "constraint",
	EarnedValueMethod:              "earned_value_method",
	TaskMode:                       "task_mode",
	ScheduleFrom:                   "schedule_from",
	BookingType:                    "booking_type",
	WorkContour:                    "work_contour",
	WorkGroup:                      "workgroup",
	RateSource:                     "rate_source",
	ResourceRequestType:            "resource_request_type",
	PercentCompleteType:            "percent_complete_type",
	ActivityType:                   "activity_type",
	ActivityStatus:                 "activity_status",
	CriticalActivityType:           "critical_activity_type",
	TotalSlackType:                 "total_slack_type",
	RelationshipLagCalendar:        "relationship_lag_calendar",
	SchedulingProgressedActivities: "scheduling_progressed_activities",
	ProjectDateFormat:              "project_date_format",
	ProjectTimeFormat:              "project_time_format",
	MPXCodePage:                    "mpx_code_page",
	MPXFileVersion:                 "mpx_file_version",
}

var byName = func() map[string]DataType {
	m := make(map[string]DataType, len(names))
	for dt := Boolean; dt < lastDataType; dt++ {
		m[names[dt]] = dt
	}
	return m
}()

// All returns every defined data type in declaration order
func All() []DataType {
	all := make([]DataType, 0, int(lastDataType)-1)
	for dt := Boolean; dt < lastDataType; dt++ {
		all = append(all, dt)
	}
	return all
}

// Parse returns the data type with the given name, e.g. "currency" or "time_units"
func Parse(name string) (DataType, error) {
	dt, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Undefined, fmt.Errorf("unknown data type %q", name)
	}
	return dt, nil
}

func (dt DataType) String() string {
	if dt < 0 || dt >= lastDataType {
		return fmt.Sprintf("datatype(%d)", int(dt))
	}
	return names[dt]
}

func (dt DataType) Defined() bool {
	return dt > Undefined && dt < lastDataType
}

// IsEnum reports whether values of this type are members of a closed enumeration
func (dt DataType) IsEnum() bool {
	return dt >= TimeUnits && dt < lastDataType
}

// IsList reports whether values of this type are ordered lists
func (dt DataType) IsList() bool {
	return dt >= RelationList && dt <= DateRangeList
}

func (dt DataType) MarshalText() ([]byte, error) {
	if !dt.Defined() {
		return nil, fmt.Errorf("cannot marshal %s", dt.String())
	}
	return []byte(dt.String()), nil
}

func (dt *DataType) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
