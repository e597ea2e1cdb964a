// internal/service/plan_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"examrisk/internal/model"
	"examrisk/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlanServiceForTest(studentRepo *mocks.StudentRepository, examRepo *mocks.ExamRepository, riskRepo *mocks.RiskRepository, planRepo *mocks.PlanRepository) PlanService {
	return NewPlanService(setupTestDB(), studentRepo, examRepo, riskRepo, planRepo, testConfig())
}

// --- Test GeneratePlan ---
func Test_planService_GeneratePlan(t *testing.T) {
	ctx := context.Background()
	institutionID := uuid.New()
	advisor := advisorPrincipal(institutionID)
	studentID := uuid.New()

	startDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	exams := []model.Exam{
		{
			ExamID:        uuid.New(),
			StudentID:     studentID,
			Title:         "卒業試験",
			Type:          model.AssessmentInternalPredictor,
			ScheduledAt:   startDate.AddDate(0, 0, 28),
			ContentWeight: 1.0,
		},
	}
	profile := &model.RiskProfile{
		ProfileID:    uuid.New(),
		StudentID:    studentID,
		OverallScore: 60,
		Tier:         model.TierHigh,
		SystemCounts: model.SystemCounts{
			model.SystemCardiovascular: 5,
			model.SystemRespiratory:    3,
		},
		CategoryCounts: model.CategoryCounts{
			model.CategoryKnowledgeDeficit: 4,
			model.CategoryMisread:          2,
		},
	}

	t.Run("正常系: 週あたり時間未指定はデフォルト値で生成", func(t *testing.T) {
		studentRepo := new(mocks.StudentRepository)
		examRepo := new(mocks.ExamRepository)
		riskRepo := new(mocks.RiskRepository)
		planRepo := new(mocks.PlanRepository)

		studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), institutionID, studentID).
			Return(&model.Student{StudentID: studentID, InstitutionID: institutionID}, nil).Once()
		examRepo.On("FindPendingByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID, startDate).
			Return(exams, nil).Once()
		riskRepo.On("FindProfileByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
			Return(profile, nil).Once()
		planRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StudyPlan")).
			Run(func(args mock.Arguments) {
				plan := args.Get(2).(*model.StudyPlan)
				assert.Equal(t, studentID, plan.StudentID)
				assert.Equal(t, model.PlanDraft, plan.Status)
				assert.Equal(t, 20.0, plan.WeeklyHours)
				assert.Equal(t, 4.0, plan.DailyHourCap)
				assert.Len(t, plan.Weeks, 4)
			}).Return(nil).Once()

		svc := newPlanServiceForTest(studentRepo, examRepo, riskRepo, planRepo)

		plan, err := svc.GeneratePlan(ctx, advisor, studentID, &model.GeneratePlanRequest{StartDate: startDate})

		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.Equal(t, exams[0].ScheduledAt, plan.EndDate)
		studentRepo.AssertExpectations(t)
		examRepo.AssertExpectations(t)
		riskRepo.AssertExpectations(t)
		planRepo.AssertExpectations(t)
	})

	t.Run("異常系: リスクプロファイル未計算", func(t *testing.T) {
		studentRepo := new(mocks.StudentRepository)
		examRepo := new(mocks.ExamRepository)
		riskRepo := new(mocks.RiskRepository)
		planRepo := new(mocks.PlanRepository)

		studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), institutionID, studentID).
			Return(&model.Student{StudentID: studentID, InstitutionID: institutionID}, nil).Once()
		examRepo.On("FindPendingByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID, startDate).
			Return(exams, nil).Once()
		riskRepo.On("FindProfileByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
			Return(nil, model.ErrNotFound).Once()

		svc := newPlanServiceForTest(studentRepo, examRepo, riskRepo, planRepo)

		plan, err := svc.GeneratePlan(ctx, advisor, studentID, &model.GeneratePlanRequest{StartDate: startDate})

		assert.ErrorIs(t, err, model.ErrMissingRiskProfile)
		assert.Nil(t, plan)
		planRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: 対象の試験が無い", func(t *testing.T) {
		studentRepo := new(mocks.StudentRepository)
		examRepo := new(mocks.ExamRepository)
		riskRepo := new(mocks.RiskRepository)
		planRepo := new(mocks.PlanRepository)

		studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), institutionID, studentID).
			Return(&model.Student{StudentID: studentID, InstitutionID: institutionID}, nil).Once()
		examRepo.On("FindPendingByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID, startDate).
			Return([]model.Exam{}, nil).Once()
		riskRepo.On("FindProfileByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
			Return(profile, nil).Once()

		svc := newPlanServiceForTest(studentRepo, examRepo, riskRepo, planRepo)

		plan, err := svc.GeneratePlan(ctx, advisor, studentID, &model.GeneratePlanRequest{StartDate: startDate})

		assert.ErrorIs(t, err, model.ErrNoUpcomingExams)
		assert.Nil(t, plan)
		planRepo.AssertNotCalled(t, "Create")
	})
}

// --- Test UpdateStatus ---
func Test_planService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	institutionID := uuid.New()
	advisor := advisorPrincipal(institutionID)
	studentID := uuid.New()
	planID := uuid.New()

	tests := []struct {
		name    string
		current model.PlanStatus
		next    model.PlanStatus
		wantErr error
	}{
		{name: "正常系: draft→active", current: model.PlanDraft, next: model.PlanActive},
		{name: "正常系: active→completed", current: model.PlanActive, next: model.PlanCompleted},
		{name: "正常系: active→archived", current: model.PlanActive, next: model.PlanArchived},
		{name: "異常系: draft→completed は許可しない", current: model.PlanDraft, next: model.PlanCompleted, wantErr: model.ErrConflict},
		{name: "異常系: draft→archived は許可しない", current: model.PlanDraft, next: model.PlanArchived, wantErr: model.ErrConflict},
		{name: "異常系: completed は終端", current: model.PlanCompleted, next: model.PlanActive, wantErr: model.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planRepo := new(mocks.PlanRepository)
			planRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), studentID, planID).
				Return(&model.StudyPlan{PlanID: planID, StudentID: studentID, Status: tt.current}, nil).Once()
			if tt.wantErr == nil {
				planRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*gorm.DB"), planID, tt.next).
					Return(nil).Once()
				// 更新後の再取得
				planRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), studentID, planID).
					Return(&model.StudyPlan{PlanID: planID, StudentID: studentID, Status: tt.next}, nil).Once()
			}

			svc := newPlanServiceForTest(new(mocks.StudentRepository), new(mocks.ExamRepository), new(mocks.RiskRepository), planRepo)

			plan, err := svc.UpdateStatus(ctx, advisor, studentID, planID, tt.next)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.next, plan.Status)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, plan)
				planRepo.AssertNotCalled(t, "UpdateStatus")
			}
			planRepo.AssertExpectations(t)
		})
	}

	t.Run("異常系: 不正なステータス値", func(t *testing.T) {
		planRepo := new(mocks.PlanRepository)
		svc := newPlanServiceForTest(new(mocks.StudentRepository), new(mocks.ExamRepository), new(mocks.RiskRepository), planRepo)

		plan, err := svc.UpdateStatus(ctx, advisor, studentID, planID, "paused")

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, plan)
		planRepo.AssertNotCalled(t, "FindByID")
	})
}

// --- Test UpdateWeekProgress ---
func Test_planService_UpdateWeekProgress(t *testing.T) {
	ctx := context.Background()
	institutionID := uuid.New()
	advisor := advisorPrincipal(institutionID)
	studentID := uuid.New()
	planID := uuid.New()

	week := func() *model.StudyPlanWeek {
		return &model.StudyPlanWeek{
			WeekID:          uuid.New(),
			PlanID:          planID,
			WeekNumber:      2,
			AllocatedHours:  20,
			TargetQuestions: 200,
		}
	}

	tests := []struct {
		name          string
		req           *model.UpdateWeekProgressRequest
		wantCompleted bool
	}{
		{
			name:          "正常系: 目標達成で自動的に完了扱いになる",
			req:           &model.UpdateWeekProgressRequest{CompletedHours: floatPtrSvc(20), CompletedQuestions: intPtrSvc(210)},
			wantCompleted: true,
		},
		{
			name:          "正常系: 目標未達は未完了のまま",
			req:           &model.UpdateWeekProgressRequest{CompletedHours: floatPtrSvc(12), CompletedQuestions: intPtrSvc(210)},
			wantCompleted: false,
		},
		{
			name: "正常系: 明示指定は自動判定より優先される",
			req: &model.UpdateWeekProgressRequest{
				CompletedHours:     floatPtrSvc(20),
				CompletedQuestions: intPtrSvc(210),
				IsCompleted:        boolPtrSvc(false),
			},
			wantCompleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planRepo := new(mocks.PlanRepository)
			planRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), studentID, planID).
				Return(&model.StudyPlan{PlanID: planID, StudentID: studentID, Status: model.PlanActive}, nil).Once()
			planRepo.On("FindWeek", ctx, mock.AnythingOfType("*gorm.DB"), planID, 2).
				Return(week(), nil).Once()
			planRepo.On("UpdateWeek", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StudyPlanWeek")).
				Return(nil).Once()

			svc := newPlanServiceForTest(new(mocks.StudentRepository), new(mocks.ExamRepository), new(mocks.RiskRepository), planRepo)

			updated, err := svc.UpdateWeekProgress(ctx, advisor, studentID, planID, 2, tt.req)

			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.Equal(t, tt.wantCompleted, updated.IsCompleted)
			if tt.req.CompletedHours != nil {
				assert.Equal(t, *tt.req.CompletedHours, updated.CompletedHours)
			}
			planRepo.AssertExpectations(t)
		})
	}
}

// --- Test Simulate ---
func Test_planService_Simulate(t *testing.T) {
	ctx := context.Background()
	institutionID := uuid.New()
	advisor := advisorPrincipal(institutionID)
	studentID := uuid.New()
	examID := uuid.New()

	currentDate := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	t.Run("正常系: 試験の前倒しはリスク増", func(t *testing.T) {
		examRepo := new(mocks.ExamRepository)
		examRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), studentID, examID).
			Return(&model.Exam{ExamID: examID, StudentID: studentID, ScheduledAt: currentDate}, nil).Once()

		svc := newPlanServiceForTest(new(mocks.StudentRepository), examRepo, new(mocks.RiskRepository), new(mocks.PlanRepository))

		earlier := currentDate.AddDate(0, 0, -14)
		result, err := svc.Simulate(ctx, advisor, studentID, &model.SimulateAdjustmentRequest{
			ExamID:      &examID,
			NewExamDate: &earlier,
		})

		require.NoError(t, err)
		assert.Equal(t, 5.0, result.ProjectedRiskDelta)
		assert.NotEmpty(t, result.Recommendations)
		examRepo.AssertExpectations(t)
	})

	t.Run("正常系: 学習時間の増加はリスク減", func(t *testing.T) {
		svc := newPlanServiceForTest(new(mocks.StudentRepository), new(mocks.ExamRepository), new(mocks.RiskRepository), new(mocks.PlanRepository))

		result, err := svc.Simulate(ctx, advisor, studentID, &model.SimulateAdjustmentRequest{
			HoursPerWeek: floatPtrSvc(30),
		})

		require.NoError(t, err)
		assert.Less(t, result.ProjectedRiskDelta, 0.0)
	})

	t.Run("異常系: 学生ロールは他学生を参照できない", func(t *testing.T) {
		svc := newPlanServiceForTest(new(mocks.StudentRepository), new(mocks.ExamRepository), new(mocks.RiskRepository), new(mocks.PlanRepository))

		result, err := svc.Simulate(ctx, studentPrincipal(institutionID, uuid.New()), studentID, &model.SimulateAdjustmentRequest{})

		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, result)
	})
}
