package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"restrofi/api-gateway/internal/gateway"
	"restrofi/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_ProxiesAPIToStorefront(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		header     string
		status     int
		wantURL    string
		wantHeader string
	}{
		{
			name:    "menu with query",
			method:  http.MethodGet,
			target:  "/api/sessions/s1/menu?category=main",
			status:  http.StatusOK,
			wantURL: "http://storefront/api/sessions/s1/menu?category=main",
		},
		{
			name:       "staff route keeps authorization",
			method:     http.MethodPatch,
			target:     "/api/staff/orders/o1/status",
			header:     "Bearer abc",
			status:     http.StatusOK,
			wantURL:    "http://storefront/api/staff/orders/o1/status",
			wantHeader: "Bearer abc",
		},
		{
			name:    "upstream status passes through",
			method:  http.MethodPost,
			target:  "/api/sessions/s1/orders",
			status:  http.StatusConflict,
			wantURL: "http://storefront/api/sessions/s1/orders",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{StorefrontURL: "http://storefront"}, mockClient, nil)

			mockClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
				return r.Method == testCase.method &&
					r.URL.String() == testCase.wantURL &&
					r.Header.Get("Authorization") == testCase.wantHeader &&
					r.Header.Get("X-Request-Id") != ""
			})).Return(jsonResponse(testCase.status, `{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.target, strings.NewReader(`{}`))
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}
			rr := httptest.NewRecorder()

			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, testCase.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_ForwardsIncomingRequestID(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{StorefrontURL: "http://storefront"}, mockClient, nil)

	mockClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		return r.Header.Get("X-Request-Id") == "req-42"
	})).Return(jsonResponse(http.StatusOK, `{}`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/r1", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_AppendsCallerToForwardedFor(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{StorefrontURL: "http://storefront"}, mockClient, nil)

	mockClient.On("Do", mock.MatchedBy(func(r *http.Request) bool {
		return r.Header.Get("X-Forwarded-For") == "10.9.9.9, 192.0.2.1"
	})).Return(jsonResponse(http.StatusOK, `{}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/s1/gate/digits", strings.NewReader(`{"digit":"1"}`))
	req.Header.Set("X-Forwarded-For", "10.9.9.9")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{StorefrontURL: "http://invalid"}, mockClient, nil)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/r1", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "DEPENDENCY_ERROR")
}

func TestGateway_ClientGoneWritesNothing(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{StorefrontURL: "http://storefront"}, mockClient, nil)

	mockClient.On("Do", mock.Anything).Return(nil, context.Canceled).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/r1", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Empty(t, rr.Body.String())
}

func TestGateway_TableLandingRedirectsToFrontend(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/t/r1/t7", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/?restaurant=r1&table=t7", rr.Header().Get("Location"))
}

func TestGateway_ServesFrontendIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>menu</h1>"), 0o644))
	gw := gateway.NewGateway(gateway.Config{FrontendDir: dir}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<h1>menu</h1>")
}
