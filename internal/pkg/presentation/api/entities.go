package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/diwise/project-attributes/internal/pkg/application/exporter"
	problems "github.com/diwise/project-attributes/internal/pkg/presentation/api/errors"
	scherrors "github.com/diwise/project-attributes/pkg/schedule/errors"
	"github.com/diwise/project-attributes/pkg/schedule/types/entities"
)

var tracer = otel.Tracer("project-attributes/api/entities")

// NewProjectEntityHandler coerces the attribute bag in the request body and returns the
// canonical values without storing them
func NewProjectEntityHandler(app exporter.Exporter) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "project-entity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		kind := GetKindFromContext(ctx)

		mode, err := exporter.ParseMode(r.URL.Query().Get("mode"))
		if err != nil {
			problems.ReportNewInvalidRequest(w, err.Error())
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			problems.ReportNewInvalidRequest(w, fmt.Sprintf("unable to read request body: %s", err.Error()))
			return
		}

		bag, err := entities.DecodeBag(body)
		if err != nil {
			problems.ReportNewInvalidRequest(w, fmt.Sprintf("unable to decode request payload: %s", err.Error()))
			return
		}

		var result *exporter.Result
		result, err = app.Project(ctx, kind, bag, exporter.WithMode(mode))
		if err != nil {
			reportExportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// NewExportEntityHandler coerces the attribute bag in the request body and stores the
// canonical values of the entity
func NewExportEntityHandler(app exporter.Exporter) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "export-entity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		kind := GetKindFromContext(ctx)
		entityID := chi.URLParam(r, "entityId")

		ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), "entity_id", entityID)

		mode, err := exporter.ParseMode(r.URL.Query().Get("mode"))
		if err != nil {
			problems.ReportNewInvalidRequest(w, err.Error())
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			problems.ReportNewInvalidRequest(w, fmt.Sprintf("unable to read request body: %s", err.Error()))
			return
		}

		bag, err := entities.DecodeBag(body)
		if err != nil {
			problems.ReportNewInvalidRequest(w, fmt.Sprintf("unable to decode request payload: %s", err.Error()))
			return
		}

		var result *exporter.Result
		result, err = app.Export(ctx, kind, entityID, bag, exporter.WithMode(mode))
		if err != nil {
			reportExportError(w, err)
			return
		}

		logging.GetFromContext(ctx).Info("entity exported", "values", result.Values.Len(), "not_coerced", len(result.NotCoerced))

		writeJSON(w, http.StatusCreated, result)
	})
}

func reportExportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scherrors.ErrCoercionMismatch), errors.Is(err, scherrors.ErrUnknownEnumMember):
		problems.ReportNewBadRequestData(w, err.Error())
	default:
		reportInternalError(w, err)
	}
}

func reportInternalError(w http.ResponseWriter, err error) {
	problems.ReportNewInternalError(w, err.Error())
}

func reportNotFound(w http.ResponseWriter, err error) {
	problems.ReportNotFoundError(w, err.Error())
}
