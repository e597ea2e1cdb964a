// internal/handlers/plan_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func TestPlanHandler_PostPlan(t *testing.T) {
	principal := newAdvisorPrincipal()
	studentID := uuid.New()

	reqBody := model.GeneratePlanRequest{
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		WeeklyHours: 20,
	}
	plan := &model.StudyPlan{
		PlanID:      uuid.New(),
		StudentID:   studentID,
		Status:      model.PlanDraft,
		WeeklyHours: 20,
		StartDate:   reqBody.StartDate,
		Weeks: []model.StudyPlanWeek{
			{WeekID: uuid.New(), WeekNumber: 1, AllocatedHours: 20, TargetQuestions: 200},
		},
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockPlanService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - Generate plan",
			body: reqBody,
			setupMock: func(m *mocks.MockPlanService) {
				m.On("GeneratePlan", mock.Anything, principal, studentID, &reqBody).
					Return(plan, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing start date",
			body:           model.GeneratePlanRequest{WeeklyHours: 20},
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "Fail - Risk profile not calculated yet",
			body: reqBody,
			setupMock: func(m *mocks.MockPlanService) {
				m.On("GeneratePlan", mock.Anything, principal, studentID, &reqBody).
					Return(nil, model.NewAppError("MISSING_RISK_PROFILE", "リスクプロファイルが未計算です。先にリスク計算を実行してください。", "", model.ErrMissingRiskProfile)).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "MISSING_RISK_PROFILE",
		},
		{
			name: "Fail - No upcoming exams",
			body: reqBody,
			setupMock: func(m *mocks.MockPlanService) {
				m.On("GeneratePlan", mock.Anything, principal, studentID, &reqBody).
					Return(nil, model.NewAppError("NO_UPCOMING_EXAMS", "計画の対象になる未受験の試験がありません。", "", model.ErrNoUpcomingExams)).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "NO_UPCOMING_EXAMS",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockPlanService(t)
			tc.setupMock(mockService)
			handler := handlers.NewPlanHandler(mockService, testLogger)

			router := chi.NewRouter()
			router.Use(withPrincipal(&principal))
			router.Post("/api/v1/students/{student_id}/plans", handler.PostPlan)

			url := fmt.Sprintf("/api/v1/students/%s/plans", studentID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, "POST", url, tc.body))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.StudyPlan
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, plan.PlanID, resp.PlanID)
				assert.Len(t, resp.Weeks, 1)
			} else if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestPlanHandler_PatchPlanStatus(t *testing.T) {
	principal := newAdvisorPrincipal()
	studentID := uuid.New()
	planID := uuid.New()

	t.Run("Success - Activate plan", func(t *testing.T) {
		mockService := mocks.NewMockPlanService(t)
		mockService.On("UpdateStatus", mock.Anything, principal, studentID, planID, model.PlanActive).
			Return(&model.StudyPlan{PlanID: planID, StudentID: studentID, Status: model.PlanActive}, nil).Once()
		handler := handlers.NewPlanHandler(mockService, testLogger)

		router := chi.NewRouter()
		router.Use(withPrincipal(&principal))
		router.Patch("/api/v1/students/{student_id}/plans/{plan_id}/status", handler.PatchPlanStatus)

		url := fmt.Sprintf("/api/v1/students/%s/plans/%s/status", studentID, planID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "PATCH", url, model.UpdatePlanStatusRequest{Status: model.PlanActive}))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.StudyPlan
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, model.PlanActive, resp.Status)
	})

	t.Run("Fail - Invalid transition", func(t *testing.T) {
		mockService := mocks.NewMockPlanService(t)
		mockService.On("UpdateStatus", mock.Anything, principal, studentID, planID, model.PlanCompleted).
			Return(nil, model.NewAppError("INVALID_TRANSITION", "このステータスへは変更できません。", "status", model.ErrConflict)).Once()
		handler := handlers.NewPlanHandler(mockService, testLogger)

		router := chi.NewRouter()
		router.Use(withPrincipal(&principal))
		router.Patch("/api/v1/students/{student_id}/plans/{plan_id}/status", handler.PatchPlanStatus)

		url := fmt.Sprintf("/api/v1/students/%s/plans/%s/status", studentID, planID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "PATCH", url, model.UpdatePlanStatusRequest{Status: model.PlanCompleted}))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assertErrorCode(t, rr.Body.Bytes(), "INVALID_TRANSITION")
	})
}

func TestPlanHandler_PutWeekProgress(t *testing.T) {
	principal := newAdvisorPrincipal()
	studentID := uuid.New()
	planID := uuid.New()

	hours := 18.5
	reqBody := model.UpdateWeekProgressRequest{CompletedHours: &hours}

	t.Run("Success - Update week progress", func(t *testing.T) {
		mockService := mocks.NewMockPlanService(t)
		mockService.On("UpdateWeekProgress", mock.Anything, principal, studentID, planID, 2, &reqBody).
			Return(&model.StudyPlanWeek{PlanID: planID, WeekNumber: 2, CompletedHours: hours}, nil).Once()
		handler := handlers.NewPlanHandler(mockService, testLogger)

		router := chi.NewRouter()
		router.Use(withPrincipal(&principal))
		router.Put("/api/v1/students/{student_id}/plans/{plan_id}/weeks/{week_number}/progress", handler.PutWeekProgress)

		url := fmt.Sprintf("/api/v1/students/%s/plans/%s/weeks/2/progress", studentID, planID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "PUT", url, reqBody))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.StudyPlanWeek
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, hours, resp.CompletedHours)
	})

	t.Run("Fail - Week number below 1", func(t *testing.T) {
		mockService := mocks.NewMockPlanService(t)
		handler := handlers.NewPlanHandler(mockService, testLogger)

		router := chi.NewRouter()
		router.Use(withPrincipal(&principal))
		router.Put("/api/v1/students/{student_id}/plans/{plan_id}/weeks/{week_number}/progress", handler.PutWeekProgress)

		url := fmt.Sprintf("/api/v1/students/%s/plans/%s/weeks/0/progress", studentID, planID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "PUT", url, reqBody))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assertErrorCode(t, rr.Body.Bytes(), "INVALID_URL_PARAM")
	})
}

func TestPlanHandler_PostSimulate(t *testing.T) {
	principal := newAdvisorPrincipal()
	studentID := uuid.New()

	hours := 25.0
	reqBody := model.SimulateAdjustmentRequest{HoursPerWeek: &hours}
	result := &model.SimulationResult{
		ProjectedRiskDelta: -2.5,
		Recommendations:    []string{"学習時間の増加はリスク低減に寄与します。現在の計画を前倒しで消化してください。"},
	}

	t.Run("Success - Simulate hours change", func(t *testing.T) {
		mockService := mocks.NewMockPlanService(t)
		mockService.On("Simulate", mock.Anything, principal, studentID, &reqBody).
			Return(result, nil).Once()
		handler := handlers.NewPlanHandler(mockService, testLogger)

		router := chi.NewRouter()
		router.Use(withPrincipal(&principal))
		router.Post("/api/v1/students/{student_id}/plans/simulate", handler.PostSimulate)

		url := fmt.Sprintf("/api/v1/students/%s/plans/simulate", studentID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, "POST", url, reqBody))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.SimulationResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, result.ProjectedRiskDelta, resp.ProjectedRiskDelta)
		assert.NotEmpty(t, resp.Recommendations)
	})
}
