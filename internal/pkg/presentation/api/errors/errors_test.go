package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestWriteResponse(t *testing.T) {
	is := is.New(t)
	w := httptest.NewRecorder()

	ReportNewBadRequestData(w, "attribute unique_id: cannot coerce string value to integer")

	is.Equal(w.Code, http.StatusBadRequest)
	is.Equal(w.Header().Get("Content-Type"), ProblemReportContentType)

	pd := struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Status int    `json:"status"`
	}{}
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &pd))

	is.Equal(pd.Type, "https://diwise.io/project-attributes/errors/BadRequestData")
	is.Equal(pd.Title, "Bad Request Data")
	is.Equal(pd.Detail, "attribute unique_id: cannot coerce string value to integer")
	is.Equal(pd.Status, http.StatusBadRequest)
}

func TestResponseCodes(t *testing.T) {
	is := is.New(t)

	is.Equal(NewNotFound("").ResponseCode(), http.StatusNotFound)
	is.Equal(NewInternalError("").ResponseCode(), http.StatusInternalServerError)
	is.Equal(NewInvalidRequest("").ResponseCode(), http.StatusBadRequest)
	is.Equal((&ProblemDetailsImpl{}).ResponseCode(), http.StatusBadRequest)
}
