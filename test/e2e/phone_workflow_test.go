//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ammerola/resell-phones/internal/adapters/memory"
	redis_a "github.com/ammerola/resell-phones/internal/adapters/redis_adapter"
	"github.com/ammerola/resell-phones/internal/core/ports"
	"github.com/ammerola/resell-phones/internal/core/pricing"
	"github.com/ammerola/resell-phones/internal/core/services"
	"github.com/ammerola/resell-phones/internal/handlers"
	"github.com/ammerola/resell-phones/internal/pkg/metrics"
	"github.com/ammerola/resell-phones/test/helpers"
)

type PhoneE2ESuite struct {
	suite.Suite
	newStore func(t *testing.T) ports.PhoneRepository
	server   *httptest.Server
	client   *http.Client
	baseURL  string
}

func (s *PhoneE2ESuite) SetupTest() {
	logger := helpers.TestLogger()
	store := s.newStore(s.T())

	phones := services.NewPhoneService(store, pricing.NewEngine(pricing.DefaultCatalog(), logger), logger)
	s.Require().NoError(phones.Seed(context.Background(), memory.SamplePhones()))

	router := handlers.NewRouter(helpers.LoadTestConfig(), handlers.RouterDeps{
		Phones:  phones,
		Auth:    services.NewAuthService(logger),
		Store:   store,
		Metrics: metrics.New(),
	}, logger)

	s.server = httptest.NewServer(router)
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api"
}

func (s *PhoneE2ESuite) TearDownTest() {
	s.server.Close()
}

func (s *PhoneE2ESuite) TestCompletePhoneWorkflow() {
	// 1. Add a phone
	resp := s.makeRequest("POST", "/phones", map[string]any{
		"model":     "E2E Phone",
		"base_cost": 120,
		"condition": "Like New",
		"stock":     2,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]string
	s.decodeResponse(resp, &created)
	s.Equal("Phone added successfully", created["message"])
	phoneID := created["phone_id"]
	s.NotEmpty(phoneID)

	// 2. Retrieve it with its listing decision
	resp = s.makeRequest("GET", "/phones/"+phoneID, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var view map[string]any
	s.decodeResponse(resp, &view)
	s.Equal(true, view["is_listed"])
	listings := view["platform_listings"].(map[string]any)
	x := listings[pricing.PlatformX].(map[string]any)
	s.Equal(160.0, x["selling_price"])
	s.Equal("New", x["mapped_condition"])

	// 3. Sell out the stock
	resp = s.makeRequest("PUT", "/phones/"+phoneID, map[string]any{"stock": 0})
	s.Equal(http.StatusOK, resp.StatusCode)

	var updated struct {
		Message string         `json:"message"`
		Phone   map[string]any `json:"phone"`
	}
	s.decodeResponse(resp, &updated)
	s.Equal("Phone updated successfully", updated.Message)
	s.Equal(0.0, updated.Phone["stock"])

	// 4. It is now last in the unlisted group
	resp = s.makeRequest("GET", "/phones", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var all []map[string]any
	s.decodeResponse(resp, &all)
	s.Len(all, 8)

	ids := make([]string, 0, len(all))
	for _, v := range all {
		ids = append(ids, v["id"].(string))
	}
	s.Equal([]string{"phone-003", "phone-001", "phone-007", "phone-002", "phone-005", phoneID, "phone-006", "phone-004"}, ids)
}

func (s *PhoneE2ESuite) TestValidationErrors() {
	tests := []struct {
		method string
		path   string
		body   any
		status int
		error  string
	}{
		{"POST", "/phones", map[string]any{"model": "X"}, http.StatusBadRequest, "Missing required fields (model, base_cost, condition, stock)"},
		{"POST", "/phones", map[string]any{"model": "X", "base_cost": 0, "condition": "Good", "stock": 1}, http.StatusBadRequest, "Base cost must be greater than 0"},
		{"POST", "/phones", map[string]any{"model": "X", "base_cost": 10, "condition": "Good", "stock": -1}, http.StatusBadRequest, "Stock cannot be negative"},
		{"POST", "/phones", map[string]any{"model": "X", "base_cost": 10, "condition": "Mint", "stock": 1}, http.StatusBadRequest, "Invalid condition. Must be one of: Like New, Good, Fair"},
		{"PUT", "/phones/phone-001", map[string]any{"stock": -4}, http.StatusBadRequest, "Stock cannot be negative."},
		{"PUT", "/phones/phone-001", map[string]any{"sold_b2b_or_direct": "no"}, http.StatusBadRequest, "sold_b2b_or_direct must be a boolean (true/false)"},
		{"PUT", "/phones/phone-404", map[string]any{"stock": 1}, http.StatusNotFound, "Phone not found"},
		{"POST", "/login", map[string]any{"username": "admin", "password": "nope"}, http.StatusUnauthorized, "Invalid credentials"},
	}

	for _, tt := range tests {
		resp := s.makeRequest(tt.method, tt.path, tt.body)
		s.Equal(tt.status, resp.StatusCode, "%s %s", tt.method, tt.path)

		var body map[string]string
		s.decodeResponse(resp, &body)
		s.Equal(tt.error, body["error"])
	}

	// The rejected stock update left phone-001 untouched
	resp := s.makeRequest("GET", "/phones/phone-001", nil)
	var view map[string]any
	s.decodeResponse(resp, &view)
	s.Equal(5.0, view["stock"])
}

func (s *PhoneE2ESuite) TestConcurrentRequests() {
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			resp := s.makeRequest("POST", "/phones", map[string]any{
				"model":     fmt.Sprintf("Concurrent Phone %d", idx),
				"base_cost": 100 + idx*10,
				"condition": "Good",
				"stock":     1,
			})
			resp.Body.Close()
			s.Equal(http.StatusCreated, resp.StatusCode)
		}(i)
	}

	wg.Wait()

	resp := s.makeRequest("GET", "/phones", nil)
	var all []map[string]any
	s.decodeResponse(resp, &all)
	s.Len(all, 17)
}

func (s *PhoneE2ESuite) TestExportExcel() {
	resp := s.makeRequest("GET", "/phones/export/excel", nil)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	s.NoError(err)
	s.NotEmpty(body)
}

func (s *PhoneE2ESuite) TestHealthCheck() {
	resp, err := s.client.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)

	var health map[string]any
	s.decodeResponse(resp, &health)
	s.Equal("healthy", health["status"])

	services := health["services"].(map[string]any)
	s.Contains(services, "store")
}

// Helper methods

func (s *PhoneE2ESuite) makeRequest(method, path string, body any) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *PhoneE2ESuite) decodeResponse(resp *http.Response, v any) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestPhoneE2E_MemoryStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, &PhoneE2ESuite{
		newStore: func(t *testing.T) ports.PhoneRepository {
			return memory.NewPhoneRepository(helpers.TestLogger())
		},
	})
}

func TestPhoneE2E_RedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, &PhoneE2ESuite{
		newStore: func(t *testing.T) ports.PhoneRepository {
			testRedis := helpers.SetupTestRedis(t)
			return redis_a.NewPhoneRepository(testRedis.Client, "e2e", helpers.TestLogger())
		},
	})
}
