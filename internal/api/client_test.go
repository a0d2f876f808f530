package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stockroomhq/console/pkg/config"
	pkgerrors "github.com/stockroomhq/console/pkg/errors"
	"github.com/stockroomhq/console/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(config.APIConfig{BaseURL: server.URL + "/api"}, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected client error: %v", err)
	}
	return client, server
}

func TestDoDecodesSuccessPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("expected json content type, got %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatal("expected request id header")
		}
		w.Write([]byte(`[{"ProductID":1,"ProductName":"Widget","QuantityInStock":2,"ReorderLevel":5}]`))
	})

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ProductName != "Widget" {
		t.Fatalf("unexpected products %+v", products)
	}
	if !products[0].LowStock() {
		t.Fatal("widget at 2/5 should be low stock")
	}
}

func TestDoSurfacesServerErrorMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"product name already exists"}`))
	})

	_, err := client.ListProducts(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %T", err)
	}
	if typed.Message() != "product name already exists" {
		t.Fatalf("expected server message to survive, got %q", typed.Message())
	}
	if typed.Status() != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", typed.Status())
	}
	if typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestDoFallsBackToGenericMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json at all`))
	})

	_, err := client.ListProducts(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Message() != genericFailureMessage {
		t.Fatalf("expected generic message, got %q", typed.Message())
	}
	if typed.Code() != pkgerrors.CodeServer {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestDoNetworkFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := New(config.APIConfig{BaseURL: server.URL + "/api"}, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected client error: %v", err)
	}
	server.Close()

	_, err = client.ListProducts(context.Background())
	if !pkgerrors.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestDoDecodeFailureIsDecodeError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	})

	_, err := client.ListProducts(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDoIssuesExactlyOneAttempt(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"backend down"}`))
	})

	if _, err := client.ListProducts(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected exactly one attempt, got %d", attempts)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(config.APIConfig{}, testLogger(), nil); err == nil {
		t.Fatal("expected error for empty base url")
	}
}
