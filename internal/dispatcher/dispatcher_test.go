package dispatcher

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultSettings = Settings{AppName: "airtasker", CORSOrigin: "*"}

func get(path string) Request {
	return Request{Method: http.MethodGet, Path: path, Header: http.Header{}}
}

func TestHandle_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		settings   Settings
		req        Request
		wantStatus int
		wantBody   string
	}{
		{
			name:       "root with default config",
			settings:   defaultSettings,
			req:        get("/"),
			wantStatus: http.StatusOK,
			wantBody:   "airtasker!\n",
		},
		{
			name:       "root with custom app name",
			settings:   Settings{AppName: "greeter", CORSOrigin: "*"},
			req:        get("/"),
			wantStatus: http.StatusOK,
			wantBody:   "greeter!\n",
		},
		{
			name:       "healthcheck",
			settings:   defaultSettings,
			req:        get("/healthcheck"),
			wantStatus: http.StatusOK,
			wantBody:   "OK\n",
		},
		{
			name:       "healthcheck ignores app name",
			settings:   Settings{AppName: "other", CORSOrigin: "https://example.com"},
			req:        get("/healthcheck"),
			wantStatus: http.StatusOK,
			wantBody:   "OK\n",
		},
		{
			name:       "unknown path",
			settings:   defaultSettings,
			req:        get("/nope"),
			wantStatus: http.StatusNotFound,
			wantBody:   "404 - Not Found\nPath '/nope' does not exist\nAvailable endpoints: /, /healthcheck\n",
		},
		{
			name:       "trailing slash is not normalized",
			settings:   defaultSettings,
			req:        get("/healthcheck/"),
			wantStatus: http.StatusNotFound,
			wantBody:   "404 - Not Found\nPath '/healthcheck/' does not exist\nAvailable endpoints: /, /healthcheck\n",
		},
		{
			name:       "match is case-sensitive",
			settings:   defaultSettings,
			req:        get("/HealthCheck"),
			wantStatus: http.StatusNotFound,
			wantBody:   "404 - Not Found\nPath '/HealthCheck' does not exist\nAvailable endpoints: /, /healthcheck\n",
		},
		{
			name:       "empty path",
			settings:   defaultSettings,
			req:        get(""),
			wantStatus: http.StatusNotFound,
			wantBody:   "404 - Not Found\nPath '' does not exist\nAvailable endpoints: /, /healthcheck\n",
		},
		{
			name:       "head is dispatched like get",
			settings:   defaultSettings,
			req:        Request{Method: http.MethodHead, Path: "/healthcheck"},
			wantStatus: http.StatusOK,
			wantBody:   "OK\n",
		},
		{
			name:       "post is not allowed",
			settings:   defaultSettings,
			req:        Request{Method: http.MethodPost, Path: "/"},
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   "405 - Method Not Allowed\nMethod 'POST' is not supported\n",
		},
		{
			name:       "method check precedes path match",
			settings:   defaultSettings,
			req:        Request{Method: http.MethodDelete, Path: "/nope"},
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   "405 - Method Not Allowed\nMethod 'DELETE' is not supported\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Handle(tt.req, tt.settings)

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantBody, string(resp.Body))
			assert.Equal(t, ContentTypeText, resp.Header.Get(HeaderContentType))
			assert.Equal(t, []string{tt.settings.CORSOrigin}, resp.Header.Values(HeaderAllowOrigin))
		})
	}
}

func TestHandle_MethodNotAllowedSetsAllow(t *testing.T) {
	resp := Handle(Request{Method: http.MethodPut, Path: "/"}, defaultSettings)

	assert.Equal(t, AllowedMethods, resp.Header.Get(HeaderAllow))
	assert.Equal(t, "*", resp.Header.Get(HeaderAllowOrigin))
}

func TestHandle_NotFoundEchoesPath(t *testing.T) {
	paths := []string{
		"/nope",
		"/a/b/c",
		"//",
		"/healthcheck2",
		"/index.html",
		"/ünïcödé",
		"/with space",
		"/quote'inside",
		"/" + strings.Repeat("x", 2048),
	}

	for _, p := range paths {
		resp := Handle(get(p), defaultSettings)

		assert.Equal(t, http.StatusNotFound, resp.Status, p)
		assert.Contains(t, string(resp.Body), p)
		assert.Contains(t, string(resp.Body), "Path '"+p+"' does not exist")
	}
}

func TestHandle_CORSOrigin(t *testing.T) {
	settings := Settings{AppName: "airtasker", CORSOrigin: "https://example.com"}

	for _, req := range []Request{get("/"), get("/healthcheck"), get("/missing"), {Method: http.MethodPatch, Path: "/"}} {
		resp := Handle(req, settings)
		assert.Equal(t, []string{"https://example.com"}, resp.Header.Values(HeaderAllowOrigin), req.Path)
	}
}

func TestDispatcher_Idempotent(t *testing.T) {
	d := New(defaultSettings)

	for _, path := range []string{"/", "/healthcheck", "/nope"} {
		first := d.Dispatch(get(path))
		second := d.Dispatch(get(path))

		assert.Equal(t, first, second, path)
	}
}

func TestDispatcher_ResponsesAreIndependent(t *testing.T) {
	d := New(defaultSettings)

	first := d.Dispatch(get("/"))
	first.Header.Set(HeaderAllowOrigin, "mutated")
	first.Body[0] = 'X'

	second := d.Dispatch(get("/"))
	assert.Equal(t, "*", second.Header.Get(HeaderAllowOrigin))
	assert.Equal(t, "airtasker!\n", string(second.Body))
}

func TestDispatcher_ConcurrentRequests(t *testing.T) {
	d := New(defaultSettings)

	const workers = 32
	var wg sync.WaitGroup
	results := make([]Response, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = d.Dispatch(get("/healthcheck"))
		}(i)
	}
	wg.Wait()

	for _, resp := range results {
		require.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "OK\n", string(resp.Body))
	}
}
