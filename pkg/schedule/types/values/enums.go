package values

// seq declares members with consecutive codes starting at first
func seq[E ~int](first E, names ...string) []Member[E] {
	members := make([]Member[E], 0, len(names))
	for i, n := range names {
		members = append(members, Member[E]{Value: first + E(i), Name: n})
	}
	return members
}

type Day int

const (
	Sunday Day = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var Weekdays = NewEnum("day", seq(Sunday, "SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY")...)

func (d Day) String() string { return Weekdays.NameOf(d) }
func (d Day) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

type AccrueType int

const (
	AccrueStart AccrueType = iota + 1
	AccrueEnd
	AccrueProrated
)

var AccrueTypes = NewEnum("accrue", seq(AccrueStart, "START", "END", "PRORATED")...)

func (a AccrueType) String() string { return AccrueTypes.NameOf(a) }
func (a AccrueType) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

type DateOrder int

const (
	DateOrderMDY DateOrder = iota
	DateOrderDMY
	DateOrderYMD
)

var DateOrders = NewEnum("date_order", seq(DateOrderMDY, "MDY", "DMY", "YMD")...)

func (o DateOrder) String() string { return DateOrders.NameOf(o) }
func (o DateOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

type CurrencySymbolPosition int

const (
	SymbolAfter CurrencySymbolPosition = iota
	SymbolBefore
	SymbolAfterWithSpace
	SymbolBeforeWithSpace
)

var CurrencySymbolPositions = NewEnum("currency_symbol_position",
	seq(SymbolAfter, "AFTER", "BEFORE", "AFTER_WITH_SPACE", "BEFORE_WITH_SPACE")...)

func (p CurrencySymbolPosition) String() string { return CurrencySymbolPositions.NameOf(p) }
func (p CurrencySymbolPosition) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

type TaskType int

const (
	FixedUnits TaskType = iota
	FixedDuration
	FixedWork
	FixedDurationAndUnits
)

var TaskTypes = NewEnum("task_type",
	seq(FixedUnits, "FIXED_UNITS", "FIXED_DURATION", "FIXED_WORK", "FIXED_DURATION_AND_UNITS")...)

func (t TaskType) String() string { return TaskTypes.NameOf(t) }
func (t TaskType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

type ResourceType int

const (
	MaterialResource ResourceType = iota
	WorkResource
	CostResource
)

var ResourceTypes = NewEnum("resource_type", seq(MaterialResource, "MATERIAL", "WORK", "COST")...)

func (t ResourceType) String() string { return ResourceTypes.NameOf(t) }
func (t ResourceType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

type ConstraintType int

const (
	AsSoonAsPossible ConstraintType = iota
	AsLateAsPossible
	MustStartOn
	MustFinishOn
	StartNoEarlierThan
	StartNoLaterThan
	FinishNoEarlierThan
	FinishNoLaterThan
	StartOn
	FinishOn
	MandatoryStart
	MandatoryFinish
)

var ConstraintTypes = NewEnum("constraint", seq(AsSoonAsPossible,
	"AS_SOON_AS_POSSIBLE", "AS_LATE_AS_POSSIBLE", "MUST_START_ON", "MUST_FINISH_ON",
	"START_NO_EARLIER_THAN", "START_NO_LATER_THAN", "FINISH_NO_EARLIER_THAN", "FINISH_NO_LATER_THAN",
	"START_ON", "FINISH_ON", "MANDATORY_START", "MANDATORY_FINISH")...)

func (c ConstraintType) String() string { return ConstraintTypes.NameOf(c) }
func (c ConstraintType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

type EarnedValueMethod int

const (
	PercentComplete EarnedValueMethod = iota
	PhysicalPercentComplete
)

var EarnedValueMethods = NewEnum("earned_value_method",
	seq(PercentComplete, "PERCENT_COMPLETE", "PHYSICAL_PERCENT_COMPLETE")...)

func (m EarnedValueMethod) String() string { return EarnedValueMethods.NameOf(m) }
func (m EarnedValueMethod) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

type TaskMode int

const (
	AutoScheduled TaskMode = iota
	ManuallyScheduled
)

var TaskModes = NewEnum("task_mode", seq(AutoScheduled, "AUTO_SCHEDULED", "MANUALLY_SCHEDULED")...)

func (m TaskMode) String() string { return TaskModes.NameOf(m) }
func (m TaskMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

type ScheduleFrom int

const (
	ScheduleFromStart ScheduleFrom = iota
	ScheduleFromFinish
)

var ScheduleFroms = NewEnum("schedule_from", seq(ScheduleFromStart, "START", "FINISH")...)

func (s ScheduleFrom) String() string { return ScheduleFroms.NameOf(s) }
func (s ScheduleFrom) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

type BookingType int

const (
	Committed BookingType = iota
	Proposed
)

var BookingTypes = NewEnum("booking_type", seq(Committed, "COMMITTED", "PROPOSED")...)

func (b BookingType) String() string { return BookingTypes.NameOf(b) }
func (b BookingType) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

type WorkContour int

const (
	Flat WorkContour = iota
	BackLoaded
	FrontLoaded
	DoublePeak
	EarlyPeak
	LatePeak
	Bell
	Turtle
	Contoured
)

var WorkContours = NewEnum("work_contour", seq(Flat,
	"FLAT", "BACK_LOADED", "FRONT_LOADED", "DOUBLE_PEAK", "EARLY_PEAK", "LATE_PEAK", "BELL", "TURTLE", "CONTOURED")...)

func (w WorkContour) String() string { return WorkContours.NameOf(w) }
func (w WorkContour) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

type WorkGroup int

const (
	WorkGroupDefault WorkGroup = iota
	WorkGroupNone
	WorkGroupEmail
	WorkGroupWeb
)

var WorkGroups = NewEnum("workgroup", seq(WorkGroupDefault, "DEFAULT", "NONE", "EMAIL", "WEB")...)

func (w WorkGroup) String() string { return WorkGroups.NameOf(w) }
func (w WorkGroup) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

type RateSource int

const (
	RateSourceResource RateSource = iota
	RateSourceOverride
	RateSourceRole
)

var RateSources = NewEnum("rate_source", seq(RateSourceResource, "RESOURCE", "OVERRIDE", "ROLE")...)

func (r RateSource) String() string { return RateSources.NameOf(r) }
func (r RateSource) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

type ResourceRequestType int

const (
	RequestNone ResourceRequestType = iota
	RequestPercentAvailable
	RequestWork
)

var ResourceRequestTypes = NewEnum("resource_request_type",
	seq(RequestNone, "NONE", "PERCENT_AVAILABLE", "WORK")...)

func (r ResourceRequestType) String() string { return ResourceRequestTypes.NameOf(r) }
func (r ResourceRequestType) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

type PercentCompleteType int

const (
	PercentCompleteDuration PercentCompleteType = iota
	PercentCompletePhysical
	PercentCompleteUnits
	PercentCompleteScope
)

var PercentCompleteTypes = NewEnum("percent_complete_type",
	seq(PercentCompleteDuration, "DURATION", "PHYSICAL", "UNITS", "SCOPE")...)

func (p PercentCompleteType) String() string { return PercentCompleteTypes.NameOf(p) }
func (p PercentCompleteType) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

type ActivityType int

const (
	TaskDependent ActivityType = iota
	ResourceDependent
	LevelOfEffort
	StartMilestone
	FinishMilestone
	WBSSummary
	StartFlag
	FinishFlag
	Hammock
)

var ActivityTypes = NewEnum("activity_type", seq(TaskDependent,
	"TASK_DEPENDENT", "RESOURCE_DEPENDENT", "LEVEL_OF_EFFORT", "START_MILESTONE", "FINISH_MILESTONE",
	"WBS_SUMMARY", "START_FLAG", "FINISH_FLAG", "HAMMOCK")...)

func (a ActivityType) String() string { return ActivityTypes.NameOf(a) }
func (a ActivityType) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

type ActivityStatus int

const (
	NotStarted ActivityStatus = iota
	InProgress
	Completed
)

var ActivityStatuses = NewEnum("activity_status", seq(NotStarted, "NOT_STARTED", "IN_PROGRESS", "COMPLETED")...)

func (a ActivityStatus) String() string { return ActivityStatuses.NameOf(a) }
func (a ActivityStatus) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

type CriticalActivityType int

const (
	CriticalTotalFloat CriticalActivityType = iota
	CriticalLongestPath
)

var CriticalActivityTypes = NewEnum("critical_activity_type",
	seq(CriticalTotalFloat, "TOTAL_FLOAT", "LONGEST_PATH")...)

func (c CriticalActivityType) String() string { return CriticalActivityTypes.NameOf(c) }
func (c CriticalActivityType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

type TotalSlackType int

const (
	StartSlack TotalSlackType = iota
	FinishSlack
	SmallestSlack
)

var TotalSlackTypes = NewEnum("total_slack_type", seq(StartSlack, "START_SLACK", "FINISH_SLACK", "SMALLEST_SLACK")...)

func (t TotalSlackType) String() string { return TotalSlackTypes.NameOf(t) }
func (t TotalSlackType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

type RelationshipLagCalendar int

const (
	LagPredecessor RelationshipLagCalendar = iota
	LagSuccessor
	LagTwentyFourHour
	LagProjectDefault
)

var RelationshipLagCalendars = NewEnum("relationship_lag_calendar",
	seq(LagPredecessor, "PREDECESSOR", "SUCCESSOR", "TWENTY_FOUR_HOUR", "PROJECT_DEFAULT")...)

func (r RelationshipLagCalendar) String() string { return RelationshipLagCalendars.NameOf(r) }
func (r RelationshipLagCalendar) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

type SchedulingProgressedActivities int

const (
	RetainedLogic SchedulingProgressedActivities = iota
	ProgressOverride
	ActualDates
)

var SchedulingProgressedActivitiesValues = NewEnum("scheduling_progressed_activities",
	seq(RetainedLogic, "RETAINED_LOGIC", "PROGRESS_OVERRIDE", "ACTUAL_DATES")...)

func (s SchedulingProgressedActivities) String() string {
	return SchedulingProgressedActivitiesValues.NameOf(s)
}
func (s SchedulingProgressedActivities) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

type ProjectDateFormat int

var ProjectDateFormats = NewEnum("project_date_format", seq(ProjectDateFormat(0),
	"DD_MM_YY_HH_MM", "DD_MM_YY", "DD_MMMMM_YYYY_HH_MM", "DD_MMMMM_YYYY", "DD_MMM_HH_MM", "DD_MMM_YY",
	"DD_MMMMM", "DD_MMM", "EEE_DD_MM_YY_HH_MM", "EEE_DD_MM_YY", "EEE_DD_MMM_YY", "EEE_HH_MM", "DD_MM",
	"DD", "HH_MM", "EEE_DD_MMM", "EEE_DD_MM", "EEE_DD", "DD_WWW", "DD_WWW_YY_HH_MM", "DD_MM_YYYY")...)

func (f ProjectDateFormat) String() string { return ProjectDateFormats.NameOf(f) }
func (f ProjectDateFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

type ProjectTimeFormat int

const (
	TwelveHour ProjectTimeFormat = iota
	TwentyFourHour
)

var ProjectTimeFormats = NewEnum("project_time_format", seq(TwelveHour, "TWELVE_HOUR", "TWENTY_FOUR_HOUR")...)

func (f ProjectTimeFormat) String() string { return ProjectTimeFormats.NameOf(f) }
func (f ProjectTimeFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

type CodePage int

const (
	CodePageANSI CodePage = iota
	CodePageMac
	CodePageLatin
	CodePageUS
	CodePageZH
	CodePageRU
)

var CodePages = NewEnum("mpx_code_page",
	Member[CodePage]{CodePageANSI, "ANSI", nil},
	Member[CodePage]{CodePageMac, "MAC", nil},
	Member[CodePage]{CodePageLatin, "LATIN", []string{"850"}},
	Member[CodePage]{CodePageUS, "US", []string{"437"}},
	Member[CodePage]{CodePageZH, "ZH", []string{"GB2312"}},
	Member[CodePage]{CodePageRU, "RU", []string{"CP1251"}},
)

func (c CodePage) String() string { return CodePages.NameOf(c) }
func (c CodePage) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

type FileVersion int

const (
	Version1 FileVersion = 1
	Version3 FileVersion = 3
	Version4 FileVersion = 4
)

var FileVersions = NewEnum("mpx_file_version",
	Member[FileVersion]{Version1, "VERSION_1_0", []string{"1.0"}},
	Member[FileVersion]{Version3, "VERSION_3_0", []string{"3.0"}},
	Member[FileVersion]{Version4, "VERSION_4_0", []string{"4.0"}},
)

func (v FileVersion) String() string { return FileVersions.NameOf(v) }
func (v FileVersion) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
