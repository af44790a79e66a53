package backend_test

import (
	"context"
	"courtbook/config"
	"courtbook/infras/backend"
	"courtbook/infras/otel/mocks"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type venue struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

func newClient(baseURL string) backend.Client {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.TimeoutSeconds = 2

	return backend.New(cfg, mocks.NewOtel())
}

func serve(t *testing.T, status int, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestClient_Do(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedFound bool
		expectedVenue venue
		expectedCode  int
		expectedKind  failure.Kind
		expectedMsg   string
	}{
		{
			name:          "success with data",
			status:        http.StatusOK,
			body:          `{"message":"ok","statusCode":200,"data":{"id":"v-1","name":"Sân Cầu Lông A"}}`,
			expectedFound: true,
			expectedVenue: venue{ID: "v-1", Name: "Sân Cầu Lông A"},
		},
		{
			name:   "success without data is an empty result",
			status: http.StatusOK,
			body:   `{"message":"ok","statusCode":200}`,
		},
		{
			name:   "success with null data is an empty result",
			status: http.StatusOK,
			body:   `{"message":"ok","statusCode":200,"data":null}`,
		},
		{
			name:         "non 2xx keeps backend message verbatim",
			status:       http.StatusNotFound,
			body:         `{"message":"Không tìm thấy sân","statusCode":404}`,
			expectedCode: http.StatusNotFound,
			expectedKind: failure.KindProvider,
			expectedMsg:  "Không tìm thấy sân",
		},
		{
			name:         "envelope status code wins over http 200",
			status:       http.StatusOK,
			body:         `{"message":"Số tiền không hợp lệ","statusCode":400}`,
			expectedCode: http.StatusBadRequest,
			expectedKind: failure.KindProvider,
			expectedMsg:  "Số tiền không hợp lệ",
		},
		{
			name:         "error member used when message is empty",
			status:       http.StatusConflict,
			body:         `{"statusCode":409,"error":"booking slot already taken"}`,
			expectedCode: http.StatusConflict,
			expectedKind: failure.KindProvider,
			expectedMsg:  "booking slot already taken",
		},
		{
			name:         "server error becomes bad gateway",
			status:       http.StatusInternalServerError,
			body:         `<html>oops</html>`,
			expectedCode: http.StatusBadGateway,
			expectedKind: failure.KindProvider,
			expectedMsg:  "Internal Server Error",
		},
		{
			name:         "malformed success body",
			status:       http.StatusOK,
			body:         `not json`,
			expectedCode: http.StatusBadGateway,
			expectedKind: failure.KindProvider,
			expectedMsg:  "malformed backend response",
		},
		{
			name:         "data failing validation",
			status:       http.StatusOK,
			body:         `{"message":"ok","statusCode":200,"data":{"name":"missing id"}}`,
			expectedCode: http.StatusBadGateway,
			expectedKind: failure.KindProvider,
			expectedMsg:  "unexpected backend response: id: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serve(t, tt.status, tt.body, nil)

			var out venue
			found, err := newClient(server.URL).Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/api/v1/venues/v-1"}, &out)

			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, failure.GetCode(err))
				assert.Equal(t, tt.expectedKind, failure.GetKind(err))
				assert.Equal(t, tt.expectedMsg, err.Error())
				assert.False(t, found)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedVenue, out)
		})
	}
}

func TestClient_Do_SliceValidation(t *testing.T) {
	server := serve(t, http.StatusOK, `{"message":"ok","statusCode":200,"data":[{"id":"v-1"},{"name":"no id"}]}`, nil)

	var out []venue
	_, err := newClient(server.URL).Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/api/v1/venues"}, &out)

	assert.Equal(t, failure.KindProvider, failure.GetKind(err))
}

func TestClient_Do_RequestShape(t *testing.T) {
	var captured *http.Request
	var capturedBody map[string]any

	server := serve(t, http.StatusCreated, `{"message":"created","statusCode":201,"data":{"id":"b-1"}}`, func(r *http.Request) {
		captured = r.Clone(context.Background())
		_ = json.NewDecoder(r.Body).Decode(&capturedBody)
	})

	ctx := context.WithValue(context.Background(), constant.ContextKeyAccessToken, "token-123")
	ctx = context.WithValue(ctx, constant.ContextKeyRequestID, "req-1")

	var out venue
	found, err := newClient(server.URL+"/").Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   "/api/v1/venues/search",
		Query:  url.Values{"page": []string{"2"}},
		Body:   map[string]any{"sportType": "badminton"},
	}, &out)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/v1/venues/search", captured.URL.Path)
	assert.Equal(t, "2", captured.URL.Query().Get("page"))
	assert.Equal(t, "Bearer token-123", captured.Header.Get("Authorization"))
	assert.Equal(t, "req-1", captured.Header.Get("X-Request-ID"))
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, map[string]any{"sportType": "badminton"}, capturedBody)
}

func TestClient_Do_GeneratesRequestID(t *testing.T) {
	var requestID string

	server := serve(t, http.StatusOK, `{"message":"ok","statusCode":200}`, func(r *http.Request) {
		requestID = r.Header.Get("X-Request-ID")
	})

	_, err := newClient(server.URL).Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/api/v1/venues"}, nil)

	require.NoError(t, err)
	assert.Len(t, requestID, 36)
}

func TestClient_Do_NetworkError(t *testing.T) {
	server := serve(t, http.StatusOK, `{}`, nil)
	server.Close()

	_, err := newClient(server.URL).Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/api/v1/venues"}, nil)

	require.Error(t, err)
	assert.Equal(t, failure.KindNetwork, failure.GetKind(err))
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

func TestClient_Do_MissingBaseURL(t *testing.T) {
	_, err := newClient("").Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/api/v1/venues"}, nil)

	assert.Equal(t, failure.KindConfiguration, failure.GetKind(err))
}

func TestEnvelope_HasData(t *testing.T) {
	assert.False(t, backend.Envelope{}.HasData())
	assert.False(t, backend.Envelope{Data: json.RawMessage(" null ")}.HasData())
	assert.True(t, backend.Envelope{Data: json.RawMessage(`[]`)}.HasData())
}
