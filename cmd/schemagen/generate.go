package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/diwise/project-attributes/pkg/schedule/schema"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
)

const valuesPackage string = "github.com/diwise/project-attributes/pkg/schedule/types/values"

var goTypes = map[datatypes.DataType]string{
	datatypes.Boolean:    "bool",
	datatypes.Integer:    "int64",
	datatypes.Short:      "int64",
	datatypes.Numeric:    "float64",
	datatypes.Units:      "float64",
	datatypes.Currency:   "float64",
	datatypes.Percentage: "float64",
	datatypes.Date:       "time.Time",
	datatypes.Time:       "values.LocalTime",
	datatypes.Duration:   "values.Duration",
	datatypes.Work:       "values.Duration",
	datatypes.Delay:      "values.Duration",
	datatypes.Rate:       "values.Rate",
	datatypes.Char:       "rune",
	datatypes.String:     "string",
	datatypes.Notes:      "string",
	datatypes.Binary:     "values.Binary",
	datatypes.GUID:       "string",
	datatypes.Map:        "*values.Map",
	datatypes.Priority:   "values.Priority",

	datatypes.RelationList:       "values.List",
	datatypes.CodeValues:         "values.List",
	datatypes.ActivityCodeValues: "values.List",
	datatypes.StepList:           "values.List",
	datatypes.ExpenseItemList:    "values.List",
	datatypes.DateRangeList:      "values.List",

	datatypes.TimeUnits:                      "values.TimeUnit",
	datatypes.RateUnits:                      "values.TimeUnit",
	datatypes.WorkUnits:                      "values.TimeUnit",
	datatypes.Day:                            "values.Day",
	datatypes.Accrue:                         "values.AccrueType",
	datatypes.DateOrder:                      "values.DateOrder",
	datatypes.CurrencySymbolPosition:         "values.CurrencySymbolPosition",
	datatypes.TaskType:                       "values.TaskType",
	datatypes.ResourceType:                   "values.ResourceType",
	datatypes.Constraint:                     "values.ConstraintType",
	datatypes.EarnedValueMethod:              "values.EarnedValueMethod",
	datatypes.TaskMode:                       "values.TaskMode",
	datatypes.ScheduleFrom:                   "values.ScheduleFrom",
	datatypes.BookingType:                    "values.BookingType",
	datatypes.WorkContour:                    "values.WorkContour",
	datatypes.WorkGroup:                      "values.WorkGroup",
	datatypes.RateSource:                     "values.RateSource",
	datatypes.ResourceRequestType:            "values.ResourceRequestType",
	datatypes.PercentCompleteType:            "values.PercentCompleteType",
	datatypes.ActivityType:                   "values.ActivityType",
	datatypes.ActivityStatus:                 "values.ActivityStatus",
	datatypes.CriticalActivityType:           "values.CriticalActivityType",
	datatypes.TotalSlackType:                 "values.TotalSlackType",
	datatypes.RelationshipLagCalendar:        "values.RelationshipLagCalendar",
	datatypes.SchedulingProgressedActivities: "values.SchedulingProgressedActivities",
	datatypes.ProjectDateFormat:              "values.ProjectDateFormat",
	datatypes.ProjectTimeFormat:              "values.ProjectTimeFormat",
	datatypes.MPXCodePage:                    "values.CodePage",
	datatypes.MPXFileVersion:                 "values.FileVersion",
}

var wrappers = map[schema.Kind]struct{ typeName, receiver string }{
	schema.Project:    {"ProjectProperties", "p"},
	schema.Task:       {"Task", "t"},
	schema.Resource:   {"Resource", "r"},
	schema.Assignment: {"Assignment", "a"},
	schema.Calendar:   {"Calendar", "c"},
}

// methods of the embedded EntityImpl that a getter must not shadow
var reserved = map[string]bool{
	"EntityKind": true, "Schema": true, "Raw": true, "Value": true,
	"ForEachAttribute": true, "Undeclared": true, "MarshalJSON": true,
}

var initialisms = map[string]bool{
	"id": true, "uid": true, "guid": true, "rbs": true, "url": true, "wbs": true, "mpx": true, "mpp": true,
	"bcws": true, "bcwp": true, "acwp": true, "cv": true, "sv": true, "eac": true, "vac": true,
	"cpi": true, "spi": true, "tcpi": true, "am": true, "pm": true,
}

// MethodName turns an attribute name into an exported Go identifier, e.g. baseline1_bcws
// becomes Baseline1BCWS
func MethodName(attributeName string) string {
	var sb strings.Builder

	for _, part := range strings.Split(attributeName, "_") {
		if part == "" {
			continue
		}

		letters := strings.TrimRightFunc(part, unicode.IsDigit)
		digits := part[len(letters):]

		if initialisms[letters] {
			sb.WriteString(strings.ToUpper(letters))
			sb.WriteString(digits)
			continue
		}

		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}

	return sb.String()
}

type getter struct {
	Method    string
	GoType    string
	Attribute string
}

type accessorFile struct {
	Imports  []string
	TypeName string
	Receiver string
	Getters  []getter
}

var accessorTemplate = template.Must(template.New("accessors").Parse(`// Code generated by schemagen. DO NOT EDIT.

package entities
{{ if eq (len .Imports) 1 }}
import "{{ index .Imports 0 }}"
{{ else if .Imports }}
import (
{{- range .Imports }}
{{ if . }}	"{{ . }}"{{ end }}
{{- end }}
)
{{ end }}
{{- range .Getters }}
func ({{ $.Receiver }} *{{ $.TypeName }}) {{ .Method }}() ({{ .GoType }}, bool, error) {
	return attr[{{ .GoType }}](&{{ $.Receiver }}.EntityImpl, "{{ .Attribute }}")
}
{{ end }}`))

// Generate renders the accessor source for one entity kind
func Generate(table *schema.Table) ([]byte, error) {
	w, ok := wrappers[table.Kind()]
	if !ok {
		return nil, fmt.Errorf("no wrapper type for kind %s", table.Kind())
	}

	file := accessorFile{
		TypeName: w.typeName,
		Receiver: w.receiver,
	}

	methods := map[string]string{}
	usesTime, usesValues := false, false

	for _, name := range table.Names() {
		dt, _ := table.Lookup(name)

		goType, ok := goTypes[dt]
		if !ok {
			return nil, fmt.Errorf("attribute %s: no go type for %s", name, dt)
		}

		method := MethodName(name)
		if reserved[method] {
			return nil, fmt.Errorf("attribute %s would shadow the %s method", name, method)
		}
		if other, exists := methods[method]; exists {
			return nil, fmt.Errorf("attributes %s and %s both map to %s", other, name, method)
		}
		methods[method] = name

		usesTime = usesTime || strings.HasPrefix(goType, "time.")
		usesValues = usesValues || strings.Contains(goType, "values.")

		file.Getters = append(file.Getters, getter{Method: method, GoType: goType, Attribute: name})
	}

	if usesTime {
		file.Imports = append(file.Imports, "time")
	}
	if usesValues {
		if usesTime {
			file.Imports = append(file.Imports, "")
		}
		file.Imports = append(file.Imports, valuesPackage)
	}

	var buf bytes.Buffer
	if err := accessorTemplate.Execute(&buf, file); err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}
