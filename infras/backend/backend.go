package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"bytes"
	"context"
	"courtbook/config"
	"courtbook/infras/otel"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"courtbook/shared/validator"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	otelGlobal "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 4 << 20
)

// Envelope is the uniform shape of every backend response.
type Envelope struct {
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      json.RawMessage `json:"error,omitempty"`
}

// HasData reports whether the envelope carried a non-null data member.
func (e Envelope) HasData() bool {
	trimmed := bytes.TrimSpace(e.Data)

	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// errorText returns the most specific failure message the backend gave.
func (e Envelope) errorText() string {
	if e.Message != "" {
		return e.Message
	}

	if len(e.Error) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(e.Error, &text); err == nil {
		return text
	}

	var detail struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Error, &detail); err == nil {
		return detail.Message
	}

	return string(e.Error)
}

// Request describes one call relative to BACKEND_BASE_URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Client performs backend calls. Do decodes the envelope's data into out, which must be a pointer.
// A success envelope without data leaves out untouched and returns found=false.
type Client interface {
	Do(ctx context.Context, req Request, out any) (found bool, err error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := defaultTimeout
	if cfg.Backend.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	}

	return &clientImpl{
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		otel:       ot,
	}
}

func (c *clientImpl) Do(ctx context.Context, req Request, out any) (found bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, fmt.Sprintf("%s.backend %s %s", constant.OtelExternalScopeName, req.Method, req.Path))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if c.baseURL == "" {
		return false, failure.Configuration("backend base url is not configured") //nolint:wrapcheck
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return false, err
	}

	scope.SetAttributes(map[string]any{
		"http.method":     req.Method,
		"http.url":        httpReq.URL.String(),
		"http.request_id": httpReq.Header.Get(constant.RequestHeaderRequestID),
	})

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to reach backend")

		return false, failure.Network(err) //nolint:wrapcheck
	}
	defer resp.Body.Close()

	scope.SetAttribute("http.status_code", resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to read backend response")

		return false, failure.Network(err) //nolint:wrapcheck
	}

	var envelope Envelope
	decodeErr := json.Unmarshal(raw, &envelope)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := envelope.errorText()
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}

		log.Warn().Int("status", resp.StatusCode).Str("path", req.Path).Str("message", msg).Msg("backend rejected request")

		return false, failure.Provider(resp.StatusCode, msg) //nolint:wrapcheck
	}

	if decodeErr != nil {
		log.Error().Err(decodeErr).Str("path", req.Path).Msg("failed to decode backend envelope")

		return false, failure.Provider(http.StatusBadGateway, "malformed backend response") //nolint:wrapcheck
	}

	if envelope.StatusCode >= http.StatusBadRequest {
		msg := envelope.errorText()
		if msg == "" {
			msg = http.StatusText(envelope.StatusCode)
		}

		return false, failure.Provider(envelope.StatusCode, msg) //nolint:wrapcheck
	}

	if !envelope.HasData() || out == nil {
		return false, nil
	}

	if err = json.Unmarshal(envelope.Data, out); err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to decode backend data")

		return false, failure.Provider(http.StatusBadGateway, "malformed backend response") //nolint:wrapcheck
	}

	if err = validator.ValidateResponse(out); err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("backend data failed validation")

		return false, failure.Provider(http.StatusBadGateway, "unexpected backend response: "+err.Error()) //nolint:wrapcheck
	}

	return true, nil
}

func (c *clientImpl) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode backend request: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, failure.Network(err) //nolint:wrapcheck
		}

		return nil, failure.Configuration(fmt.Sprintf("invalid backend url: %s", err.Error())) //nolint:wrapcheck
	}

	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	if body != nil {
		httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	httpReq.Header.Set(constant.RequestHeaderRequestID, requestID)

	if token, _ := ctx.Value(constant.ContextKeyAccessToken).(string); token != "" {
		httpReq.Header.Set(constant.RequestHeaderAuthorization, constant.BearerPrefix+token)
	}

	otelGlobal.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	return httpReq, nil
}
