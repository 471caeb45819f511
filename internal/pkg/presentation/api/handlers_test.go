package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/diwise/project-attributes/internal/pkg/application/exporter"
	"github.com/diwise/project-attributes/internal/pkg/infrastructure/database"
	"github.com/diwise/project-attributes/pkg/schedule/schema"
)

func TestListSchemas(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/api/v0/schemas", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	summaries := []schemaSummary{}
	is.NoErr(json.Unmarshal([]byte(body), &summaries))
	is.Equal(len(summaries), 5)
	is.Equal(summaries[1].Kind, schema.Task)
	is.Equal(summaries[1].Attributes, 989)
}

func TestRetrieveSchema(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/api/v0/schemas/calendar", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	is.True(strings.HasPrefix(body, `{"kind":"calendar","attributes":[{"name":"unique_id","type":"integer"},`))
	is.True(strings.HasSuffix(body, `"families":[]}`))
}

func TestRetrieveSchemaOfUnknownKindReturnsNotFound(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "GET", "/api/v0/schemas/milestone", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(resp.Header.Get("Content-Type"), "application/problem+json")
	is.True(strings.Contains(body, `"title": "Not Found"`))
}

func TestProjectEntity(t *testing.T) {
	is, ts, sink := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "POST", "/api/v0/entities/task", bytes.NewBufferString(taskJSON))
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(sink.WriteCalls()), 0)

	is.Equal(body, `{"kind":"task","values":{"unique_id":7,"name":"Write specification","start":"2023-01-16T08:00:00Z","duration":{"duration":3,"units":"DAYS"}},"notCoerced":[{"attributeName":"critical","reason":"`+criticalReason+`"}],"undeclared":["colour"]}`)
}

func TestProjectEntityInStrictModeReturnsBadRequestData(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "POST", "/api/v0/entities/task?mode=strict", bytes.NewBufferString(taskJSON))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.True(strings.Contains(body, `"title": "Bad Request Data"`))
}

func TestProjectEntityWithUnknownModeReturnsInvalidRequest(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "POST", "/api/v0/entities/task?mode=sloppy", bytes.NewBufferString(taskJSON))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.True(strings.Contains(body, `"title": "Invalid Request"`))
}

func TestProjectEntityWithBadDataReturnsInvalidRequest(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "POST", "/api/v0/entities/task", bytes.NewBufferString("this is not my json"))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestProjectEntityOfUnknownKindReturnsNotFound(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, "POST", "/api/v0/entities/milestone", bytes.NewBufferString(taskJSON))
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestProjectEntityWithWrongContentTypeReturnsUnsupportedMediaType(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	req, _ := http.NewRequest("POST", ts.URL+"/api/v0/entities/task", bytes.NewBufferString(taskJSON))
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusUnsupportedMediaType)
}

func TestExportEntity(t *testing.T) {
	is, ts, sink := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, "POST", "/api/v0/entities/task/task-7/export", bytes.NewBufferString(taskJSON))
	is.Equal(resp.StatusCode, http.StatusCreated)
	is.True(strings.Contains(body, `"entityId":"task-7"`))

	is.Equal(len(sink.WriteCalls()), 1)
	is.Equal(sink.WriteCalls()[0].Kind, schema.Task)
	is.Equal(sink.WriteCalls()[0].EntityID, "task-7")
	is.Equal(len(sink.WriteCalls()[0].Rows), 4)
}

func TestExportEntityCanHandleSinkErrors(t *testing.T) {
	is, ts, sink := setupTest(t)
	defer ts.Close()

	sink.WriteFunc = func(ctx context.Context, kind schema.Kind, entityID string, rows []database.Row) error {
		return io.ErrUnexpectedEOF
	}

	resp, _ := newTestRequest(is, ts, "POST", "/api/v0/entities/task/task-7/export", bytes.NewBufferString(taskJSON))
	is.Equal(resp.StatusCode, http.StatusInternalServerError)
}

func newTestRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	req.Header.Add("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *exporter.SinkMock) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	sink := &exporter.SinkMock{
		WriteFunc: func(ctx context.Context, kind schema.Kind, entityID string, rows []database.Row) error {
			return nil
		},
	}
	app := exporter.New(exporter.Lenient, nil, sink)

	RegisterHandlers(context.Background(), r, app)

	return is, ts, sink
}

const taskJSON string = `{
	"unique_id": 7,
	"name": "Write specification",
	"start": {"@type": "DateTime", "@value": "2023-01-16T08:00:00Z"},
	"colour": "blue",
	"duration": {"@type": "Duration", "@value": 3, "unitCode": "d"},
	"critical": "yes"
}`

const criticalReason string = "attribute critical: cannot coerce string value to boolean"
