package shell

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetulpatel/texttosql/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postForm(r http.Handler, question string) *httptest.ResponseRecorder {
	form := url.Values{"question": {question}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestIndexRendersForm(t *testing.T) {
	svc := newTestService(t, Config{Translator: &stubTranslator{}, Executor: seededExecutor(t)})
	r := NewRouter(svc)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Text to SQL Query Generator")
	assert.Contains(t, body, "Type your question here:")
	assert.Contains(t, body, "Submit Query")
	assert.NotContains(t, body, "Query Results:")
}

func TestSubmitRendersRows(t *testing.T) {
	tr := &stubTranslator{sql: "SELECT S.NAME FROM STUDENT S JOIN COURSE C ON S.COURSE_ID=C.COURSE_ID WHERE C.COURSE_NAME='Data Science'"}
	svc := newTestService(t, Config{Translator: tr, Executor: seededExecutor(t)})

	rr := postForm(NewRouter(svc), "Tell me all the students studying in Data Science course?")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "SQL Query Successfully Generated!")
	assert.Contains(t, body, `class="language-sql"`)
	assert.Contains(t, body, "Query Results:")

	alice := strings.Index(body, "Alice Johnson")
	robert := strings.Index(body, "Robert Smith")
	olivia := strings.Index(body, "Olivia Garcia")
	require.True(t, alice > 0 && robert > 0 && olivia > 0)
	assert.Less(t, alice, robert)
	assert.Less(t, robert, olivia)
	assert.Equal(t, 3, strings.Count(body, `<li class="row">`))
}

func TestSubmitBlankShowsWarning(t *testing.T) {
	tr := &stubTranslator{sql: "SELECT 1"}
	ex := seededExecutor(t)
	svc := newTestService(t, Config{Translator: tr, Executor: ex})

	rr := postForm(NewRouter(svc), "   ")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Please enter a valid query.")
	assert.Empty(t, tr.calls)
	assert.Empty(t, ex.calls)
}

func TestSubmitMalformedSQLShowsErrorAndKeepsServing(t *testing.T) {
	tr := &stubTranslator{sql: "SELECT FROM"}
	svc := newTestService(t, Config{Translator: tr, Executor: seededExecutor(t)})
	r := NewRouter(svc)

	rr := postForm(r, "broken")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `class="banner error"`)
	assert.Contains(t, rr.Body.String(), "An error occurred:")

	tr.sql = "SELECT COUNT(*) FROM STUDENT"
	rr = postForm(r, "How many entries of records are present?")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "(8,)")
}

func TestAPIAsk(t *testing.T) {
	tr := &stubTranslator{sql: "SELECT COUNT(*) FROM STUDENT"}
	svc := newTestService(t, Config{Translator: tr, Executor: seededExecutor(t)})
	r := NewRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question":"How many entries of records are present?"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var body askResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, models.QueryStatusSuccess, body.Status)
	assert.Equal(t, "SELECT COUNT(*) FROM STUDENT", body.SQL)
	assert.Equal(t, []string{"(8,)"}, body.Rows)
}

func TestAPIAskStatusCodes(t *testing.T) {
	tr := &stubTranslator{err: errors.New("rate limited")}
	svc := newTestService(t, Config{Translator: tr, Executor: seededExecutor(t)})
	r := NewRouter(svc)

	cases := []struct {
		body string
		want int
	}{
		{`{"question":"  "}`, http.StatusBadRequest},
		{`{"question":"anything"}`, http.StatusBadGateway},
		{`not json`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, tc.want, rr.Code, tc.body)
	}

	assert.Equal(t, http.StatusUnprocessableEntity, statusCode(Outcome{Status: models.QueryStatusError, Stage: StageExecute}))
}

func TestHealthAndMetrics(t *testing.T) {
	svc := newTestService(t, Config{Translator: &stubTranslator{sql: "SELECT 1"}, Executor: seededExecutor(t)})
	r := NewRouter(svc)
	postForm(r, "one")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "texttosql_questions_total")
}
