package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/harvest"
	"github.com/krishiraksha/KrishiRaksha_Go/mocks"
)

func newHarvestRouter(svc harvest.Service) http.Handler {
	h := NewHarvestHandler(svc)
	r := chi.NewRouter()
	r.Post("/harvest/calculate", h.Calculate)
	r.Get("/harvest/history", h.History)
	r.Get("/harvest/recent/{crop}", h.Recent)
	return r
}

func TestHarvestHandler_Calculate(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	planned := harvest.NewPlanner().Calculate(domain.HarvestInputs{
		CropType:           "wheat",
		CurrentMaturity:    70,
		PestInfestation:    15,
		CurrentMarketPrice: 2500,
		ExpectedYield:      50,
	}, now)

	tests := []struct {
		name           string
		url            string
		body           string
		setupMock      func(*mocks.MockHarvestService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Success",
			url:  "/harvest/calculate?user_id=farmer-1",
			body: `{"cropType":"wheat","currentMaturity":70,"pestInfestation":15,"currentMarketPrice":2500,"expectedYield":50}`,
			setupMock: func(m *mocks.MockHarvestService) {
				m.On("Calculate", mock.Anything, "farmer-1", mock.MatchedBy(func(in domain.HarvestInputs) bool {
					return in.CropType == "wheat" && in.CurrentMaturity == 70 && in.GrowthRate == nil
				})).Return(planned, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				var resp struct {
					Success        bool              `json:"success"`
					OptimalDays    int               `json:"optimalDays"`
					ExpectedProfit int               `json:"expectedProfit"`
					Scenarios      []domain.Scenario `json:"scenarios"`
					Recommendation string            `json:"recommendation"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, planned.OptimalDays, resp.OptimalDays)
				assert.Equal(t, planned.ExpectedProfit, resp.ExpectedProfit)
				assert.Len(t, resp.Scenarios, harvest.HorizonDays+1)
				assert.NotEmpty(t, resp.Recommendation)
			},
		},
		{
			name: "Zero maturity is accepted",
			url:  "/harvest/calculate",
			body: `{"cropType":"rice","currentMaturity":0,"pestInfestation":0,"currentMarketPrice":10,"expectedYield":1,"growthRate":4}`,
			setupMock: func(m *mocks.MockHarvestService) {
				m.On("Calculate", mock.Anything, "", mock.MatchedBy(func(in domain.HarvestInputs) bool {
					return in.CurrentMaturity == 0 && in.GrowthRate != nil && *in.GrowthRate == 4
				})).Return(planned, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name:           "Missing fields",
			url:            "/harvest/calculate",
			body:           `{"cropType":"wheat"}`,
			setupMock:      func(m *mocks.MockHarvestService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
				assert.Contains(t, resp.Fields, "currentMaturity")
				assert.Contains(t, resp.Fields, "expectedYield")
			},
		},
		{
			name:           "Out of range maturity",
			url:            "/harvest/calculate",
			body:           `{"cropType":"wheat","currentMaturity":120,"pestInfestation":15,"currentMarketPrice":2500,"expectedYield":50}`,
			setupMock:      func(m *mocks.MockHarvestService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"currentMaturity":"Must be at most 100"`)
			},
		},
		{
			name:           "Oversized price and yield",
			url:            "/harvest/calculate",
			body:           `{"cropType":"wheat","currentMaturity":60,"pestInfestation":15,"currentMarketPrice":1e10,"expectedYield":1e10}`,
			setupMock:      func(m *mocks.MockHarvestService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"currentMarketPrice":"Must be at most 10000000"`)
				assert.Contains(t, body, `"expectedYield":"Must be at most 10000000"`)
			},
		},
		{
			name:           "Malformed JSON",
			url:            "/harvest/calculate",
			body:           `{"cropType":`,
			setupMock:      func(m *mocks.MockHarvestService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidRequest)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockHarvestService(t)
			tt.setupMock(svc)

			req := httptest.NewRequest("POST", tt.url, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newHarvestRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
		})
	}
}

func TestHarvestHandler_History(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockHarvestService(t)
		svc.On("GetUserHistory", mock.Anything, "farmer-1", 3).
			Return([]domain.HarvestCalculation{{ID: "a"}, {ID: "b"}}, nil)

		rec := httptest.NewRecorder()
		newHarvestRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/harvest/history?user_id=farmer-1&limit=3", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":2`)
	})

	t.Run("Missing user", func(t *testing.T) {
		svc := mocks.NewMockHarvestService(t)

		rec := httptest.NewRecorder()
		newHarvestRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/harvest/history", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing user_id query parameter")
	})

	t.Run("Invalid limit", func(t *testing.T) {
		svc := mocks.NewMockHarvestService(t)

		rec := httptest.NewRecorder()
		newHarvestRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/harvest/history?user_id=x&limit=ten", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		svc := mocks.NewMockHarvestService(t)
		svc.On("GetUserHistory", mock.Anything, "farmer-1", 0).Return(nil, domain.ErrDatabaseError)

		rec := httptest.NewRecorder()
		newHarvestRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/harvest/history?user_id=farmer-1", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgGenericServerError)
	})
}

func TestHarvestHandler_Recent(t *testing.T) {
	svc := mocks.NewMockHarvestService(t)
	svc.On("GetRecentByCrop", mock.Anything, "wheat", 0).Return(nil, nil)

	rec := httptest.NewRecorder()
	newHarvestRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/harvest/recent/wheat", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
}
