package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/project-attributes/internal/pkg/application/exporter"
	"github.com/diwise/project-attributes/pkg/schedule/schema"
)

const TraceAttributeEntityKind string = "project-attributes.kind"

func RegisterHandlers(ctx context.Context, r chi.Router, app exporter.Exporter) {

	r.Route("/api/v0", func(r chi.Router) {
		r.Use(Logger(logging.GetFromContext(ctx)))

		r.Route("/schemas", func(r chi.Router) {
			r.Get("/", NewListSchemasHandler())
			r.With(EntityKind()).Get("/{kind}", NewRetrieveSchemaHandler())
		})

		r.Route("/entities/{kind}", func(r chi.Router) {
			r.Use(
				EntityKind(),
				RequiredContentTypes([]string{"application/json"}),
			)

			r.Post("/", NewProjectEntityHandler(app))
			r.Post("/{entityId}/export", NewExportEntityHandler(app))
		})
	})
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			isValidContentType := true

			if len(contentType) > 0 {
				isValidContentType = false

				for _, t := range validTypes {
					if strings.HasPrefix(contentType, t) {
						isValidContentType = true
						break
					}
				}
			}

			if isValidContentType {
				next.ServeHTTP(w, r)
			} else {
				http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
			}
		})
	}
}

type kindContextKey struct {
	name string
}

var kindCtxKey = &kindContextKey{"entity-kind"}

// EntityKind validates the kind url parameter and packs it into the context. Unknown kinds
// are rejected with a not found problem.
func EntityKind() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			kind, err := schema.ParseKind(chi.URLParam(r, "kind"))
			if err != nil {
				reportNotFound(w, err)
				return
			}

			if labeler, found := otelhttp.LabelerFromContext(r.Context()); found {
				labeler.Add(attribute.String(TraceAttributeEntityKind, string(kind)))
			}

			ctx := context.WithValue(r.Context(), kindCtxKey, kind)

			ctx = logging.NewContextWithLogger(
				ctx,
				logging.GetFromContext(r.Context()),
				"kind",
				string(kind),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetKindFromContext extracts the entity kind, if any, from the provided context
func GetKindFromContext(ctx context.Context) schema.Kind {
	kind, ok := ctx.Value(kindCtxKey).(schema.Kind)

	if !ok {
		return ""
	}

	return kind
}
