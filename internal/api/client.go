package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/stockroomhq/console/pkg/config"
	pkgerrors "github.com/stockroomhq/console/pkg/errors"
	"github.com/stockroomhq/console/pkg/logger"
	"github.com/stockroomhq/console/pkg/metrics"
)

const genericFailureMessage = "API request failed"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Client is the transport layer: one generic request wrapper plus typed
// resource façades spread across the per-resource files in this package.
// Every call is a single attempt with no retry or backoff.
type Client struct {
	baseURL string
	httpc   *http.Client
	logg    *logger.Logger
	metrics *metrics.RequestMetrics
}

// New builds a client against the configured base URL.
func New(cfg config.APIConfig, logg *logger.Logger, m *metrics.RequestMetrics) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api base url is required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{},
		logg:    logg,
		metrics: m,
	}, nil
}

// do issues one request against the backend. The response body is decoded as
// JSON regardless of status: 2xx decodes into out, anything else surfaces
// the server's error field when present.
func (c *Client) do(ctx context.Context, resource, method, path string, body, out any) error {
	requestID := uuid.NewString()
	ctx = c.logg.WithRequestID(ctx, requestID)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	c.metrics.ObserveDuration(resource, method, time.Since(start))
	if err != nil {
		c.metrics.IncFailure(resource, method)
		c.logg.Error(ctx, "api request failed", err)
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, genericFailureMessage)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.IncFailure(resource, method)
		c.logg.Error(ctx, "reading api response", err)
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, genericFailureMessage)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.IncFailure(resource, method)
		var serverErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &serverErr)
		message := serverErr.Error
		if message == "" {
			message = genericFailureMessage
		}
		err := pkgerrors.New(pkgerrors.CodeForStatus(resp.StatusCode), message).WithStatus(resp.StatusCode)
		c.logg.Error(ctx, fmt.Sprintf("api responded %d", resp.StatusCode), err)
		return err
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			c.metrics.IncFailure(resource, method)
			c.logg.Error(ctx, "decoding api response", err)
			return pkgerrors.Wrap(pkgerrors.CodeDecode, err, genericFailureMessage)
		}
	}

	c.metrics.IncSuccess(resource, method)
	return nil
}

// validatePayload rejects malformed payloads before they leave the client.
func validatePayload(payload any) error {
	if err := validate.Struct(payload); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payload")
	}
	return nil
}
