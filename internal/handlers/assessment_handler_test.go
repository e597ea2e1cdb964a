// internal/handlers/assessment_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"examrisk/internal/handlers"
	"examrisk/internal/model"
	"examrisk/internal/service/mocks"
)

func TestAssessmentHandler_PostAssessment(t *testing.T) {
	principal := newAdvisorPrincipal()
	studentID := uuid.New()

	accuracy := 0.68
	validReqBody := model.CreateAssessmentRequest{
		Type:     model.AssessmentQuestionBlock,
		TakenAt:  time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		Accuracy: &accuracy,
		ErrorLogs: []model.ErrorLogInput{
			{Category: model.CategoryKnowledgeDeficit, System: model.SystemCardiovascular, Topic: "心不全"},
		},
	}
	expectedAssessment := &model.Assessment{
		AssessmentID: uuid.New(),
		StudentID:    studentID,
		Type:         validReqBody.Type,
		TakenAt:      validReqBody.TakenAt,
		Accuracy:     validReqBody.Accuracy,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockAssessmentService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - Valid request",
			body: validReqBody,
			setupMock: func(m *mocks.MockAssessmentService) {
				m.On("CreateAssessment", mock.Anything, principal, studentID, &validReqBody).
					Return(expectedAssessment, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing type",
			body:           model.CreateAssessmentRequest{TakenAt: validReqBody.TakenAt},
			setupMock:      func(m *mocks.MockAssessmentService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "Fail - Student not found",
			body: validReqBody,
			setupMock: func(m *mocks.MockAssessmentService) {
				m.On("CreateAssessment", mock.Anything, principal, studentID, &validReqBody).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockAssessmentService(t)
			tc.setupMock(mockService)
			handler := handlers.NewAssessmentHandler(mockService, testLogger)

			router := chi.NewRouter()
			router.Use(withPrincipal(&principal))
			router.Post("/api/v1/students/{student_id}/assessments", handler.PostAssessment)

			url := fmt.Sprintf("/api/v1/students/%s/assessments", studentID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, "POST", url, tc.body))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.Assessment
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, expectedAssessment.AssessmentID, resp.AssessmentID)
			} else if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestAssessmentHandler_ImportAssessments(t *testing.T) {
	principal := newAdvisorPrincipal()
	studentID := uuid.New()

	t.Run("Success - Import summary is returned", func(t *testing.T) {
		mockService := mocks.NewMockAssessmentService(t)
		mockService.On("ImportCSV", mock.Anything, principal, studentID, mock.Anything).
			Return(&model.ImportResult{Imported: 3, Skipped: 1, Errors: []string{"line 4: invalid accuracy \"1.5\""}}, nil).Once()
		handler := handlers.NewAssessmentHandler(mockService, testLogger)

		router := chi.NewRouter()
		router.Use(withPrincipal(&principal))
		router.Post("/api/v1/students/{student_id}/assessments/import", handler.ImportAssessments)

		csvBody := "type,taken_at,score,accuracy,question_count,notes\npractice_exam,2026-06-01,420,0.72,200,模試\n"
		url := fmt.Sprintf("/api/v1/students/%s/assessments/import", studentID)
		req := httptest.NewRequest("POST", url, strings.NewReader(csvBody))
		req.Header.Set("Content-Type", "text/csv")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.ImportResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Imported)
		assert.Equal(t, 1, resp.Skipped)
	})

	t.Run("Fail - Invalid CSV header", func(t *testing.T) {
		mockService := mocks.NewMockAssessmentService(t)
		mockService.On("ImportCSV", mock.Anything, principal, studentID, mock.Anything).
			Return(nil, model.NewAppError("INVALID_CSV", "CSVヘッダが契約と一致しません。", "", model.ErrInvalidInput)).Once()
		handler := handlers.NewAssessmentHandler(mockService, testLogger)

		router := chi.NewRouter()
		router.Use(withPrincipal(&principal))
		router.Post("/api/v1/students/{student_id}/assessments/import", handler.ImportAssessments)

		url := fmt.Sprintf("/api/v1/students/%s/assessments/import", studentID)
		req := httptest.NewRequest("POST", url, strings.NewReader("kind,date\nx,y\n"))
		req.Header.Set("Content-Type", "text/csv")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assertErrorCode(t, rr.Body.Bytes(), "INVALID_CSV")
	})
}
