// Package integration provides helpers and integration tests for the redemption optimizer.
// Integration tests verify that components work together correctly, including
// middleware, HTTP handlers, use cases, the synthesizer and the feedback sink.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/rove-rewards/redemption-optimizer/internal/adapter/http"
	"github.com/rove-rewards/redemption-optimizer/internal/adapter/http/middleware"
	"github.com/rove-rewards/redemption-optimizer/internal/domain"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/logger"
	"github.com/rove-rewards/redemption-optimizer/internal/infrastructure/timeutil"
	"github.com/rove-rewards/redemption-optimizer/internal/usecase"
	"github.com/rove-rewards/redemption-optimizer/test/mock"
)

// TestClockTime is the time every feedback submission is stamped with.
const TestClockTime = "2025-06-01T12:00:00Z"

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestServer wraps an Echo instance wired like the production server.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.Handler
	Random  *mock.RandomSource
	Sink    *mock.FeedbackSink
	Logs    *syncBuffer
}

// NewTestServer creates a test server drawing from rng and recording feedback in sink.
// Nil arguments get defaults: a source yielding base value 0.02 and an accepting sink.
func NewTestServer(rng *mock.RandomSource, sink *mock.FeedbackSink) *TestServer {
	if rng == nil {
		rng = mock.NewRandomSource()
	}
	if sink == nil {
		sink = mock.NewFeedbackSink()
	}

	logs := &syncBuffer{}
	log := logger.NewWithOutput(logger.Config{Level: "debug", Format: "json"}, logs)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpAdapter.HTTPErrorHandler
	middleware.Setup(e, log.Logger)

	redemptions := usecase.NewRedemptionSearchUseCase(usecase.NewSynthesizer(rng))
	clock := timeutil.NewMockClockFromString(TestClockTime)
	feedback := usecase.NewFeedbackUseCase(sink, clock)

	handler := httpAdapter.NewHandler(redemptions, feedback, nil).WithClock(clock)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Random:  rng,
		Sink:    sink,
		Logs:    logs,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
// A string Body is sent as-is; anything else is JSON encoded.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch body := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	default:
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest submits the home page search form as JSON.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/search",
		Body:   body,
	})
}

// SearchFormRequest submits the home page search form URL-encoded.
func (ts *TestServer) SearchFormRequest(form url.Values) Response {
	return ts.Do(Request{
		Method:      http.MethodPost,
		Path:        "/api/v1/search",
		Body:        form.Encode(),
		ContentType: echo.MIMEApplicationForm,
	})
}

// FollowRedirect requests the Location of a redirect response.
func (ts *TestServer) FollowRedirect(resp Response) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   resp.Headers.Get(echo.HeaderLocation),
	})
}

// ResultsRequest opens the results view with the given query string (without "?").
func (ts *TestServer) ResultsRequest(rawQuery string) Response {
	path := domain.ResultsBasePath
	if rawQuery != "" {
		path += "?" + rawQuery
	}
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// RankRequest re-ranks a client-held option list.
func (ts *TestServer) RankRequest(criterion string, options []domain.RedemptionOption) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/redemptions/rank",
		Body:   httpAdapter.RankRequest{Criterion: criterion, Options: options},
	})
}

// FeedbackRequest submits the feedback form.
func (ts *TestServer) FeedbackRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/feedback",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseResults parses the response body as a results view.
func (r Response) ParseResults() (*httpAdapter.ResultsResponse, error) {
	resp := httpAdapter.ResultsResponse{RedemptionResponse: &domain.RedemptionResponse{}}
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseRank parses the response body as a re-ranked list.
func (r Response) ParseRank() (*httpAdapter.RankResponse, error) {
	var resp httpAdapter.RankResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseFeedbackAck parses the response body as a feedback acknowledgement.
func (r Response) ParseFeedbackAck() (*httpAdapter.FeedbackAckResponse, error) {
	var resp httpAdapter.FeedbackAckResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// Location returns the parsed Location header of a redirect.
func (r Response) Location() (*url.URL, error) {
	return url.Parse(r.Headers.Get(echo.HeaderLocation))
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
	ReturnDate  string `json:"returnDate,omitempty"`
	Miles       string `json:"miles"`
}

// DefaultSearchRequest returns a valid round-trip search request body.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:      "BOS",
		Destination: "SFO",
		DepartDate:  "2025-06-01",
		ReturnDate:  "2025-06-10",
		Miles:       "50000",
	}
}

// DefaultResultsQuery is the results view query of DefaultSearchRequest.
func DefaultResultsQuery() string {
	return "origin=BOS&destination=SFO&departDate=2025-06-01&returnDate=2025-06-10&miles=50000"
}

// LogLines returns the captured log lines containing substr.
func (ts *TestServer) LogLines(substr string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(ts.Logs.String()), "\n") {
		if strings.Contains(line, substr) {
			lines = append(lines, line)
		}
	}
	return lines
}
