package api

import (
	"encoding/json"
	"net/http"

	"github.com/diwise/project-attributes/pkg/schedule/schema"
	"github.com/diwise/project-attributes/pkg/schedule/types/datatypes"
)

type schemaSummary struct {
	Kind       schema.Kind `json:"kind"`
	Attributes int         `json:"attributes"`
	Families   int         `json:"families"`
}

type attributeInfo struct {
	Name string             `json:"name"`
	Type datatypes.DataType `json:"type"`
}

type schemaInfo struct {
	Kind       schema.Kind     `json:"kind"`
	Attributes []attributeInfo `json:"attributes"`
	Families   []schema.Family `json:"families"`
}

// NewListSchemasHandler lists the entity kinds with the size of their schema tables
func NewListSchemasHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summaries := []schemaSummary{}

		for _, kind := range schema.Kinds() {
			table := schema.For(kind)
			summaries = append(summaries, schemaSummary{
				Kind:       kind,
				Attributes: table.Len(),
				Families:   len(table.Families()),
			})
		}

		writeJSON(w, http.StatusOK, summaries)
	})
}

// NewRetrieveSchemaHandler returns every declared attribute of a kind with its data type
func NewRetrieveSchemaHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table := schema.For(GetKindFromContext(r.Context()))

		info := schemaInfo{
			Kind:       table.Kind(),
			Attributes: make([]attributeInfo, 0, table.Len()),
			Families:   table.Families(),
		}

		for _, name := range table.Names() {
			dt, _ := table.Lookup(name)
			info.Attributes = append(info.Attributes, attributeInfo{Name: name, Type: dt})
		}

		if info.Families == nil {
			info.Families = []schema.Family{}
		}

		writeJSON(w, http.StatusOK, info)
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		reportInternalError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}
