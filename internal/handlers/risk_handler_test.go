// internal/handlers/risk_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"examrisk/internal/handlers"
	"examrisk/internal/model"
	"examrisk/internal/service/mocks"
)

func TestRiskHandler_PostRisk(t *testing.T) {
	principal := newAdvisorPrincipal()
	studentID := uuid.New()

	profile := &model.RiskProfile{
		ProfileID:    uuid.New(),
		StudentID:    studentID,
		OverallScore: 62.5,
		Tier:         model.TierHigh,
		Trend:        model.TrendDeclining,
		TotalErrors:  14,
	}

	t.Run("Success - Recalculate and return profile", func(t *testing.T) {
		mockService := mocks.NewMockRiskService(t)
		mockService.On("Recalculate", mock.Anything, principal, studentID).
			Return(profile, nil).Once()
		handler := handlers.NewRiskHandler(mockService, testLogger)

		router := chi.NewRouter()
		router.Use(withPrincipal(&principal))
		router.Post("/api/v1/students/{student_id}/risk", handler.PostRisk)

		url := fmt.Sprintf("/api/v1/students/%s/risk", studentID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", url, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.RiskProfile
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, profile.OverallScore, resp.OverallScore)
		assert.Equal(t, model.TierHigh, resp.Tier)
	})

	t.Run("Fail - Student not found", func(t *testing.T) {
		mockService := mocks.NewMockRiskService(t)
		mockService.On("Recalculate", mock.Anything, principal, studentID).
			Return(nil, model.ErrNotFound).Once()
		handler := handlers.NewRiskHandler(mockService, testLogger)

		router := chi.NewRouter()
		router.Use(withPrincipal(&principal))
		router.Post("/api/v1/students/{student_id}/risk", handler.PostRisk)

		url := fmt.Sprintf("/api/v1/students/%s/risk", studentID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", url, nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRiskHandler_GetRiskHistory(t *testing.T) {
	principal := newAdvisorPrincipal()
	studentID := uuid.New()

	history := []model.RiskHistory{
		{HistoryID: uuid.New(), StudentID: studentID, OverallScore: 40, Tier: model.TierMedium},
		{HistoryID: uuid.New(), StudentID: studentID, OverallScore: 35, Tier: model.TierMedium},
	}

	tests := []struct {
		name           string
		query          string
		setupMock      func(m *mocks.MockRiskService)
		expectedStatus int
		expectedCount  int
		expectedCode   string
	}{
		{
			name:  "Success - Default page",
			query: "",
			setupMock: func(m *mocks.MockRiskService) {
				m.On("GetHistory", mock.Anything, principal, studentID, 1).
					Return(history, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:  "Success - Explicit page",
			query: "?page=3",
			setupMock: func(m *mocks.MockRiskService) {
				m.On("GetHistory", mock.Anything, principal, studentID, 3).
					Return([]model.RiskHistory{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "Fail - Non-numeric page",
			query:          "?page=abc",
			setupMock:      func(m *mocks.MockRiskService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_QUERY_PARAM",
		},
		{
			name:           "Fail - Zero page",
			query:          "?page=0",
			setupMock:      func(m *mocks.MockRiskService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_QUERY_PARAM",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockRiskService(t)
			tc.setupMock(mockService)
			handler := handlers.NewRiskHandler(mockService, testLogger)

			router := chi.NewRouter()
			router.Use(withPrincipal(&principal))
			router.Get("/api/v1/students/{student_id}/risk/history", handler.GetRiskHistory)

			url := fmt.Sprintf("/api/v1/students/%s/risk/history%s", studentID, tc.query)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, "GET", url, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp []model.RiskHistory
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp, tc.expectedCount)
			} else if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}
