package coerce

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"

	scherrors "github.com/diwise/project-attributes/pkg/schedule/errors"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

func TestThatAbsentValuesAreNeverAnErrorForAnyDataType(t *testing.T) {
	is := is.New(t)

	var nilTime *time.Time
	var nilMap map[string]any
	var nilList []any

	for _, dt := range datatypes.All() {
		for _, absent := range []any{nil, nilTime, nilMap, nilList} {
			v, ok, err := Value(absent, dt)
			is.NoErr(err)
			is.True(!ok)
			is.Equal(v, nil)
		}
	}
}

func TestThatValuePanicsForAnUndefinedDataType(t *testing.T) {
	is := is.New(t)

	defer func() {
		r := recover()
		is.True(r != nil)
	}()

	Value(1, datatypes.Undefined)
}

func TestThatCoercionIsDeterministic(t *testing.T) {
	is := is.New(t)

	for i := 0; i < 10; i++ {
		v, ok, err := Value(float64(42), datatypes.Integer)
		is.NoErr(err)
		is.True(ok)
		is.Equal(v, int64(42))
	}
}

func TestIntegerAcceptsIntegralNumbers(t *testing.T) {
	is := is.New(t)

	for _, raw := range []any{int(7), int8(7), int32(7), int64(7), uint16(7), float32(7), float64(7)} {
		v, ok, err := Integer(raw)
		is.NoErr(err)
		is.True(ok)
		is.Equal(v, int64(7))
	}
}

func TestIntegerRejectsFractionalNumbers(t *testing.T) {
	is := is.New(t)

	_, ok, err := Integer(3.7)
	is.True(!ok)
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))

	var mismatch *scherrors.MismatchError
	is.True(errors.As(err, &mismatch))
	is.Equal(mismatch.Expected, datatypes.Integer)
	is.Equal(mismatch.Actual, "float")
}

func TestIntegerRejectsStrings(t *testing.T) {
	is := is.New(t)

	_, _, err := Integer("12")
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestShortRejectsValuesOutsideSixteenBits(t *testing.T) {
	is := is.New(t)

	v, ok, err := Short(int64(32767))
	is.NoErr(err)
	is.True(ok)
	is.Equal(v, int64(32767))

	_, _, err = Short(int64(32768))
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestBooleanAcceptsFlagIntegers(t *testing.T) {
	is := is.New(t)

	v, ok, err := Boolean(1)
	is.NoErr(err)
	is.True(ok)
	is.True(v)

	v, ok, err = Boolean(false)
	is.NoErr(err)
	is.True(ok)
	is.True(!v)

	_, _, err = Boolean(2)
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))

	_, _, err = Boolean("true")
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestNumericTypesWidenIntegers(t *testing.T) {
	is := is.New(t)

	for _, dt := range []datatypes.DataType{datatypes.Numeric, datatypes.Units, datatypes.Currency, datatypes.Percentage} {
		v, ok, err := Value(int64(5), dt)
		is.NoErr(err)
		is.True(ok)
		is.Equal(v, float64(5))
	}
}

func TestCurrencyIsNotRounded(t *testing.T) {
	is := is.New(t)

	v, _, err := Currency(1234.5678)
	is.NoErr(err)
	is.Equal(v, 1234.5678)
}

func TestDateDoesNotParseStrings(t *testing.T) {
	is := is.New(t)

	_, ok, err := Date("2023-01-15")
	is.True(!ok)
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))

	ts := time.Date(2023, 1, 15, 8, 0, 0, 0, time.UTC)
	v, ok, err := Date(ts)
	is.NoErr(err)
	is.True(ok)
	is.True(v.Equal(ts))
}

func TestTimeKeepsTheClockPartOfATimestamp(t *testing.T) {
	is := is.New(t)

	v, ok, err := Time(time.Date(2023, 1, 15, 8, 30, 0, 0, time.UTC))
	is.NoErr(err)
	is.True(ok)
	is.Equal(v, values.NewLocalTime(8, 30, 0))
}

func TestDurationRequiresUnits(t *testing.T) {
	is := is.New(t)

	d, ok, err := Duration(values.NewDuration(5, values.ElapsedDays))
	is.NoErr(err)
	is.True(ok)
	is.Equal(d.String(), "5ed")

	_, _, err = Work(float64(5))
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))

	_, _, err = Delay(values.NewDuration(1, values.TimeUnit(99)))
	is.True(errors.Is(err, scherrors.ErrUnknownEnumMember))
}

func TestRate(t *testing.T) {
	is := is.New(t)

	r, ok, err := Rate(values.NewRate(50, values.Hours))
	is.NoErr(err)
	is.True(ok)
	is.Equal(r.String(), "50/h")

	_, _, err = Rate(50.0)
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestCharAcceptsASingleCharacter(t *testing.T) {
	is := is.New(t)

	v, ok, err := Char("å")
	is.NoErr(err)
	is.True(ok)
	is.Equal(v, 'å')

	_, _, err = Char("ab")
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestStringAndNotesAreNotConverted(t *testing.T) {
	is := is.New(t)

	v, ok, err := Notes("remember the milk")
	is.NoErr(err)
	is.True(ok)
	is.Equal(v, "remember the milk")

	_, _, err = String(17)
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestBinaryPassesAnythingThrough(t *testing.T) {
	is := is.New(t)

	v, ok, err := Binary([]byte{1, 2, 3})
	is.NoErr(err)
	is.True(ok)

	buf, isBytes := v.Bytes()
	is.True(isBytes)
	is.Equal(buf, []byte{1, 2, 3})

	v, ok, err = Binary(42)
	is.NoErr(err)
	is.True(ok)
	is.Equal(v.Value, 42)
}

func TestGUIDIsCanonicalized(t *testing.T) {
	is := is.New(t)

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	for _, raw := range []any{id, [16]byte(id), id[:], "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}"} {
		v, ok, err := GUID(raw)
		is.NoErr(err)
		is.True(ok)
		is.Equal(v, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	}

	_, _, err := GUID("not a guid")
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestMapKeepsInsertionOrder(t *testing.T) {
	is := is.New(t)

	m, ok, err := Map(values.NewMap(values.KV("zeta", 1), values.KV("alpha", 2)))
	is.NoErr(err)
	is.True(ok)
	is.Equal(m.Keys(), []string{"zeta", "alpha"})

	m, _, err = Map(map[string]any{"zeta": 1, "alpha": 2})
	is.NoErr(err)
	is.Equal(m.Keys(), []string{"alpha", "zeta"})

	_, _, err = Map("zeta=1")
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestListTypesPassElementsThrough(t *testing.T) {
	is := is.New(t)

	v, ok, err := Value([]any{"a", 1}, datatypes.RelationList)
	is.NoErr(err)
	is.True(ok)
	is.Equal(v, values.List{"a", 1})

	_, _, err = Value("a", datatypes.StepList)
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestEnumAcceptsNamesAliasesAndCodes(t *testing.T) {
	is := is.New(t)

	for _, raw := range []any{"ELAPSED_DAYS", "elapsed_days", "ed", int64(9), float64(9), values.ElapsedDays} {
		v, ok, err := Value(raw, datatypes.TimeUnits)
		is.NoErr(err)
		is.True(ok)
		is.Equal(v, values.ElapsedDays)
	}

	v, _, err := Value("MANUALLY_SCHEDULED", datatypes.TaskMode)
	is.NoErr(err)
	is.Equal(v, values.ManuallyScheduled)

	v, _, err = Value(3, datatypes.Accrue)
	is.NoErr(err)
	is.Equal(v, values.AccrueProrated)
}

func TestEveryEnumMemberCoercesFromItsNameAndCode(t *testing.T) {
	is := is.New(t)

	for _, dt := range datatypes.All() {
		if !dt.IsEnum() {
			continue
		}

		members, ok := enumMembers[dt]
		if !ok {
			t.Fatalf("no members listed for %s", dt)
		}
		is.True(len(members) > 0)

		for _, m := range members {
			v, ok, err := Value(m.name, dt)
			is.NoErr(err)
			is.True(ok)
			is.Equal(v, m.member)

			v, ok, err = Value(m.code, dt)
			is.NoErr(err)
			is.True(ok)
			is.Equal(v, m.member)
		}

		_, ok, err := Value(int64(-1000), dt)
		is.True(!ok)
		is.True(errors.Is(err, scherrors.ErrUnknownEnumMember)) // unknown codes are not members
	}
}

func TestEnumCodesFollowTheIntegerPolicyForFloats(t *testing.T) {
	is := is.New(t)

	v, ok, err := Value(float32(2), datatypes.Accrue)
	is.NoErr(err)
	is.True(ok)
	is.Equal(v, values.AccrueEnd)

	v, _, err = Value(float64(3), datatypes.Accrue)
	is.NoErr(err)
	is.Equal(v, values.AccrueProrated)

	for _, raw := range []any{float32(1.5), math.Inf(1), math.Inf(-1), math.NaN(), float32(math.Inf(1))} {
		_, ok, err = Value(raw, datatypes.Accrue)
		is.True(!ok)
		is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
	}

	_, _, err = Value(float32(42), datatypes.Accrue)
	is.True(errors.Is(err, scherrors.ErrUnknownEnumMember))
}

type enumMember struct {
	name   string
	code   int64
	member any
}

func membersOf[E ~int](enum *values.Enum[E]) []enumMember {
	members := []enumMember{}
	for _, m := range enum.Members() {
		members = append(members, enumMember{name: enum.NameOf(m), code: int64(m), member: m})
	}
	return members
}

var enumMembers = map[datatypes.DataType][]enumMember{
	datatypes.TimeUnits:                      membersOf(values.TimeUnits),
	datatypes.RateUnits:                      membersOf(values.TimeUnits),
	datatypes.WorkUnits:                      membersOf(values.TimeUnits),
	datatypes.Day:                            membersOf(values.Weekdays),
	datatypes.Accrue:                         membersOf(values.AccrueTypes),
	datatypes.DateOrder:                      membersOf(values.DateOrders),
	datatypes.CurrencySymbolPosition:         membersOf(values.CurrencySymbolPositions),
	datatypes.TaskType:                       membersOf(values.TaskTypes),
	datatypes.ResourceType:                   membersOf(values.ResourceTypes),
	datatypes.Constraint:                     membersOf(values.ConstraintTypes),
	datatypes.EarnedValueMethod:              membersOf(values.EarnedValueMethods),
	datatypes.TaskMode:                       membersOf(values.TaskModes),
	datatypes.ScheduleFrom:                   membersOf(values.ScheduleFroms),
	datatypes.BookingType:                    membersOf(values.BookingTypes),
	datatypes.WorkContour:                    membersOf(values.WorkContours),
	datatypes.WorkGroup:                      membersOf(values.WorkGroups),
	datatypes.RateSource:                     membersOf(values.RateSources),
	datatypes.ResourceRequestType:            membersOf(values.ResourceRequestTypes),
	datatypes.PercentCompleteType:            membersOf(values.PercentCompleteTypes),
	datatypes.ActivityType:                   membersOf(values.ActivityTypes),
	datatypes.ActivityStatus:                 membersOf(values.ActivityStatuses),
	datatypes.CriticalActivityType:           membersOf(values.CriticalActivityTypes),
	datatypes.TotalSlackType:                 membersOf(values.TotalSlackTypes),
	datatypes.RelationshipLagCalendar:        membersOf(values.RelationshipLagCalendars),
	datatypes.SchedulingProgressedActivities: membersOf(values.SchedulingProgressedActivitiesValues),
	datatypes.ProjectDateFormat:              membersOf(values.ProjectDateFormats),
	datatypes.ProjectTimeFormat:              membersOf(values.ProjectTimeFormats),
	datatypes.MPXCodePage:                    membersOf(values.CodePages),
	datatypes.MPXFileVersion:                 membersOf(values.FileVersions),
}

func TestUnknownEnumMemberIsDistinctFromMismatch(t *testing.T) {
	is := is.New(t)

	_, ok, err := Value("SOMETIMES", datatypes.TaskType)
	is.True(!ok)
	is.True(errors.Is(err, scherrors.ErrUnknownEnumMember))
	is.True(!errors.Is(err, scherrors.ErrCoercionMismatch))

	var unknown *scherrors.UnknownEnumMemberError
	is.True(errors.As(err, &unknown))
	is.Equal(unknown.Enumeration, "task_type")

	_, _, err = Value(int64(42), datatypes.WorkContour)
	is.True(errors.Is(err, scherrors.ErrUnknownEnumMember))

	_, _, err = Value(1.5, datatypes.WorkContour)
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))

	_, _, err = Value(true, datatypes.WorkContour)
	is.True(errors.Is(err, scherrors.ErrCoercionMismatch))
}

func TestWithAttributeStampsTheAttributeName(t *testing.T) {
	is := is.New(t)

	_, _, err := Value(3.7, datatypes.Integer)
	err = scherrors.WithAttribute(err, "unique_id")
	is.Equal(err.Error(), "attribute unique_id: cannot coerce float value to integer (non-integral number)")
}
