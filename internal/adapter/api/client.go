package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// APIError описывает ответ API с кодом не из диапазона 2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client выполняет JSON-запросы GET и POST относительно базового адреса.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
}

// NewClient создаёт клиент; nil httpClient означает http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		tracer:  otel.Tracer("storefront/api"),
	}
}

// Get запрашивает uri и декодирует ответ в out.
func (c *Client) Get(ctx context.Context, uri string, out any) error {
	return c.do(ctx, http.MethodGet, uri, nil, out)
}

// Post отправляет body в формате JSON и декодирует ответ в out.
func (c *Client) Post(ctx context.Context, uri string, body any, out any) error {
	return c.do(ctx, http.MethodPost, uri, body, out)
}

func (c *Client) do(ctx context.Context, method, uri string, body any, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "api."+method,
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.uri", uri),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+uri, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	return handleResponse(resp, out)
}

func handleResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var data struct {
			Error string `json:"error"`
		}
		msg := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&data); err == nil && data.Error != "" {
			msg = data.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
