package coerce

import (
	"fmt"

	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

func box[T any](v T, ok bool, err error) (any, bool, error) {
	if err != nil || !ok {
		return nil, false, err
	}
	return v, true, nil
}

// Value coerces raw into the canonical representation of dt. Absent input gives (nil, false, nil).
// Passing an undefined data type is a programming error and panics.
func Value(raw any, dt datatypes.DataType) (any, bool, error) {
	switch dt {
	case datatypes.Boolean:
		return box(Boolean(raw))
	case datatypes.Integer:
		return box(Integer(raw))
	case datatypes.Short:
		return box(Short(raw))
	case datatypes.Priority:
		return box(Priority(raw))
	case datatypes.Numeric:
		return box(Float(raw))
	case datatypes.Units:
		return box(Units(raw))
	case datatypes.Currency:
		return box(Currency(raw))
	case datatypes.Percentage:
		return box(Percentage(raw))
	case datatypes.Date:
		return box(Date(raw))
	case datatypes.Time:
		return box(Time(raw))
	case datatypes.Duration:
		return box(Duration(raw))
	case datatypes.Work:
		return box(Work(raw))
	case datatypes.Delay:
		return box(Delay(raw))
	case datatypes.Rate:
		return box(Rate(raw))
	case datatypes.Char:
		return box(Char(raw))
	case datatypes.String:
		return box(String(raw))
	case datatypes.Notes:
		return box(Notes(raw))
	case datatypes.Binary:
		return box(Binary(raw))
	case datatypes.GUID:
		return box(GUID(raw))
	case datatypes.Map:
		return box(Map(raw))

	case datatypes.RelationList, datatypes.CodeValues, datatypes.ActivityCodeValues,
		datatypes.StepList, datatypes.ExpenseItemList, datatypes.DateRangeList:
		return box(List(dt, raw))

	case datatypes.TimeUnits, datatypes.RateUnits, datatypes.WorkUnits:
		return box(Enum(dt, raw, values.TimeUnits))
	case datatypes.Day:
		return box(Enum(dt, raw, values.Weekdays))
	case datatypes.Accrue:
		return box(Enum(dt, raw, values.AccrueTypes))
	case datatypes.DateOrder:
		return box(Enum(dt, raw, values.DateOrders))
	case datatypes.CurrencySymbolPosition:
		return box(Enum(dt, raw, values.CurrencySymbolPositions))
	case datatypes.TaskType:
		return box(Enum(dt, raw, values.TaskTypes))
	case datatypes.ResourceType:
		return box(Enum(dt, raw, values.ResourceTypes))
	case datatypes.Constraint:
		return box(Enum(dt, raw, values.ConstraintTypes))
	case datatypes.EarnedValueMethod:
		return box(Enum(dt, raw, values.EarnedValueMethods))
	case datatypes.TaskMode:
		return box(Enum(dt, raw, values.TaskModes))
	case datatypes.ScheduleFrom:
		return box(Enum(dt, raw, values.ScheduleFroms))
	case datatypes.BookingType:
		return box(Enum(dt, raw, values.BookingTypes))
	case datatypes.WorkContour:
		return box(Enum(dt, raw, values.WorkContours))
	case datatypes.WorkGroup:
		return box(Enum(dt, raw, values.WorkGroups))
	case datatypes.RateSource:
		return box(Enum(dt, raw, values.RateSources))
	case datatypes.ResourceRequestType:
		return box(Enum(dt, raw, values.ResourceRequestTypes))
	case datatypes.PercentCompleteType:
		return box(Enum(dt, raw, values.PercentCompleteTypes))
	case datatypes.ActivityType:
		return box(Enum(dt, raw, values.ActivityTypes))
	case datatypes.ActivityStatus:
		return box(Enum(dt, raw, values.ActivityStatuses))
	case datatypes.CriticalActivityType:
		return box(Enum(dt, raw, values.CriticalActivityTypes))
	case datatypes.TotalSlackType:
		return box(Enum(dt, raw, values.TotalSlackTypes))
	case datatypes.RelationshipLagCalendar:
		return box(Enum(dt, raw, values.RelationshipLagCalendars))
	case datatypes.SchedulingProgressedActivities:
		return box(Enum(dt, raw, values.SchedulingProgressedActivitiesValues))
	case datatypes.ProjectDateFormat:
		return box(Enum(dt, raw, values.ProjectDateFormats))
	case datatypes.ProjectTimeFormat:
		return box(Enum(dt, raw, values.ProjectTimeFormats))
	case datatypes.MPXCodePage:
		return box(Enum(dt, raw, values.CodePages))
	case datatypes.MPXFileVersion:
		return box(Enum(dt, raw, values.FileVersions))
	}

	panic(fmt.Sprintf("coerce: no coercion defined for data type %s", dt))
}
