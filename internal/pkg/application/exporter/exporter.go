package exporter

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/project-attributes/internal/pkg/infrastructure/database"
	"github.com/diwise/project-attributes/pkg/schedule/schema"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
	"github.com/diwise/project-attributes/pkg/schedule/types/entities"
	"github.com/diwise/project-attributes/pkg/schedule/types/values"
)

var tracer = otel.Tracer("project-attributes/exporter")

type Mode string

const (
	// Lenient collects the attributes that fail to coerce and exports the rest
	Lenient Mode = "lenient"
	// Strict fails the whole export on the first attribute that can not be coerced
	Strict Mode = "strict"
)

// ParseMode accepts lenient or strict. An empty string means lenient.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Lenient:
		return Lenient, nil
	case Strict:
		return Strict, nil
	}
	return "", fmt.Errorf("unknown export mode %q", s)
}

//go:generate moq -rm -out sink_mock.go . Sink

// Sink stores the exported values of one entity
type Sink interface {
	Write(ctx context.Context, kind schema.Kind, entityID string, rows []database.Row) error
}

type Exporter interface {
	// Project coerces a raw attribute bag without storing the result
	Project(ctx context.Context, kind schema.Kind, bag *values.Map, options ...Option) (*Result, error)
	// Export coerces a raw attribute bag and writes the result to the sink, if one is configured
	Export(ctx context.Context, kind schema.Kind, entityID string, bag *values.Map, options ...Option) (*Result, error)
}

type Option func(*exportRequest)

// WithMode overrides the default mode of the exporter for a single call
func WithMode(mode Mode) Option {
	return func(r *exportRequest) {
		r.mode = mode
	}
}

type exportRequest struct {
	kind     schema.Kind
	entityID string
	mode     Mode
}

type NotCoerced struct {
	AttributeName string `json:"attributeName"`
	Reason        string `json:"reason"`
}

type Result struct {
	Kind       schema.Kind  `json:"kind"`
	EntityID   string       `json:"entityId,omitempty"`
	Values     *values.Map  `json:"values"`
	NotCoerced []NotCoerced `json:"notCoerced"`
	Undeclared []string     `json:"undeclared,omitempty"`

	typed []typedValue
}

type typedValue struct {
	name  string
	dt    datatypes.DataType
	value any
}

type exporterImpl struct {
	mode     Mode
	profiles map[schema.Kind]map[string]bool
	sink     Sink
}

// New creates an exporter. Both profiles and sink may be nil.
func New(mode Mode, profiles *Config, sink Sink) Exporter {
	return &exporterImpl{
		mode:     mode,
		profiles: profiles.selection(),
		sink:     sink,
	}
}

func (x *exporterImpl) Project(ctx context.Context, kind schema.Kind, bag *values.Map, options ...Option) (*Result, error) {
	req := x.newRequest(kind, "", options)
	return x.project(ctx, req, bag)
}

func (x *exporterImpl) Export(ctx context.Context, kind schema.Kind, entityID string, bag *values.Map, options ...Option) (result *Result, err error) {
	ctx, span := tracer.Start(ctx, "export-entity",
		trace.WithAttributes(
			attribute.String("kind", string(kind)),
			attribute.String("entity_id", entityID),
		),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req := x.newRequest(kind, entityID, options)

	result, err = x.project(ctx, req, bag)
	if err != nil {
		return nil, err
	}

	if x.sink == nil {
		return result, nil
	}

	rows := make([]database.Row, 0, len(result.typed))
	for _, tv := range result.typed {
		row, rowErr := database.NewRow(tv.name, tv.dt, tv.value)
		if rowErr != nil {
			err = rowErr
			return nil, err
		}
		rows = append(rows, row)
	}

	err = x.sink.Write(ctx, kind, entityID, rows)
	if err != nil {
		err = fmt.Errorf("failed to write %s %s: %w", kind, entityID, err)
		return nil, err
	}

	return result, nil
}

func (x *exporterImpl) newRequest(kind schema.Kind, entityID string, options []Option) exportRequest {
	req := exportRequest{kind: kind, entityID: entityID, mode: x.mode}
	for _, opt := range options {
		opt(&req)
	}
	return req
}

func (x *exporterImpl) project(ctx context.Context, req exportRequest, bag *values.Map) (*Result, error) {
	if bag == nil {
		bag = values.NewMap()
	}

	entity, err := entities.New(req.kind, entities.FromBag(bag))
	if err != nil {
		return nil, err
	}

	log := logging.GetFromContext(ctx)
	table := entity.Schema()
	selected, filtered := x.profiles[req.kind]

	result := &Result{
		Kind:       req.kind,
		EntityID:   req.entityID,
		Values:     values.NewMap(),
		NotCoerced: []NotCoerced{},
		Undeclared: entity.Undeclared(),
	}

	for _, name := range bag.Keys() {
		dt, declared := table.Lookup(name)
		if !declared || (filtered && !selected[name]) {
			continue
		}

		v, ok, err := entity.Value(name)
		if err != nil {
			if req.mode == Strict {
				return nil, err
			}

			log.Warn("attribute could not be coerced", "attribute", name, "kind", req.kind, "entity_id", req.entityID, "err", err.Error())
			result.NotCoerced = append(result.NotCoerced, NotCoerced{AttributeName: name, Reason: err.Error()})
			continue
		}

		if !ok {
			continue
		}

		result.Values.Set(name, entities.Exportable(dt, v))
		result.typed = append(result.typed, typedValue{name: name, dt: dt, value: v})
	}

	return result, nil
}
