package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Observer receives the outcome of every outgoing call. Outcome is one of
// "ok", "not_found", "error".
type Observer interface {
	ObserveRemoteCall(service, operation, outcome string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveRemoteCall(string, string, string, time.Duration) {}

// StatusError is returned when the remote service answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
}

// Client is a traced JSON-over-HTTP client. Trace context is injected into
// every outgoing request.
type Client struct {
	Tracer     trace.Tracer
	HTTPClient *http.Client
	Observer   Observer
}

// NewClient leaves http.Client.Timeout unset; deadlines come from the
// request context.
func NewClient(tracer trace.Tracer, observer Observer) *Client {
	if tracer == nil {
		tracer = otel.Tracer("billing_service/httpclient")
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &Client{
		Tracer: tracer,
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		Observer: observer,
	}
}

// GetJSON issues GET rawURL and decodes a 2xx body into out. Non-2xx answers
// come back as *StatusError.
func (c *Client) GetJSON(ctx context.Context, service, operation, rawURL string, out any) (err error) {
	ctx, span := c.Tracer.Start(ctx, fmt.Sprintf("call-%s", service), trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.url", rawURL),
		attribute.String("http.method", http.MethodGet),
		attribute.String("peer.service", service),
		attribute.String("rpc.operation", operation),
	)

	start := time.Now()
	outcome := "error"
	defer func() {
		c.Observer.ObserveRemoteCall(service, operation, outcome, time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json, application/hal+json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if resp.StatusCode == http.StatusNotFound {
			outcome = "not_found"
		}
		return &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	outcome = "ok"
	return nil
}
