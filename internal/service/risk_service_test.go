// internal/service/risk_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"examrisk/internal/config"
	"examrisk/internal/model"
	"examrisk/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			RiskThresholdLow:    25,
			RiskThresholdMedium: 50,
			RiskThresholdHigh:   75,
			DefaultWeeklyHours:  20,
			DefaultDailyHourCap: 4.0,
			HistoryPageSize:     20,
		},
	}
}

func floatPtrSvc(v float64) *float64 { return &v }
func intPtrSvc(v int) *int           { return &v }
func boolPtrSvc(v bool) *bool        { return &v }
func strPtrSvc(v string) *string     { return &v }

// --- Test Recalculate ---
func Test_riskService_Recalculate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	institutionID := uuid.New()
	advisor := advisorPrincipal(institutionID)
	studentID := uuid.New()

	history := []model.Assessment{
		{
			AssessmentID:  uuid.New(),
			StudentID:     studentID,
			Type:          model.AssessmentPracticeExam,
			TakenAt:       time.Now().Add(-10 * 24 * time.Hour),
			Accuracy:      floatPtrSvc(0.8),
			QuestionCount: intPtrSvc(20),
			ErrorLogs: []model.ErrorLog{
				{Category: model.CategoryKnowledgeDeficit, System: model.SystemCardiovascular},
				{Category: model.CategoryMisread, System: model.SystemCardiovascular},
			},
		},
	}

	t.Run("正常系: プロファイル上書きと履歴追記が同じ算出結果で行われる", func(t *testing.T) {
		studentRepo := new(mocks.StudentRepository)
		assessRepo := new(mocks.AssessmentRepository)
		riskRepo := new(mocks.RiskRepository)

		studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), institutionID, studentID).
			Return(&model.Student{StudentID: studentID, InstitutionID: institutionID}, nil).Once()
		assessRepo.On("FindHistoryByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
			Return(history, nil).Once()

		var savedScore float64
		var savedTier model.RiskTier
		riskRepo.On("UpsertProfile", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RiskProfile")).
			Run(func(args mock.Arguments) {
				profile := args.Get(2).(*model.RiskProfile)
				assert.Equal(t, studentID, profile.StudentID)
				assert.Equal(t, 2, profile.TotalErrors)
				assert.Equal(t, model.SystemCounts{model.SystemCardiovascular: 2}, profile.SystemCounts)
				assert.GreaterOrEqual(t, profile.OverallScore, 0.0)
				assert.LessOrEqual(t, profile.OverallScore, 100.0)
				savedScore = profile.OverallScore
				savedTier = profile.Tier
			}).Return(nil).Once()
		riskRepo.On("AppendHistory", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RiskHistory")).
			Run(func(args mock.Arguments) {
				h := args.Get(2).(*model.RiskHistory)
				assert.Equal(t, studentID, h.StudentID)
				assert.Equal(t, savedScore, h.OverallScore)
				assert.Equal(t, savedTier, h.Tier)
				assert.Equal(t, 2, h.TotalErrors)
			}).Return(nil).Once()

		svc := NewRiskService(db, studentRepo, assessRepo, riskRepo, testConfig())

		profile, err := svc.Recalculate(ctx, advisor, studentID)

		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, savedScore, profile.OverallScore)
		studentRepo.AssertExpectations(t)
		assessRepo.AssertExpectations(t)
		riskRepo.AssertExpectations(t)
	})

	t.Run("異常系: 学生が存在しない", func(t *testing.T) {
		studentRepo := new(mocks.StudentRepository)
		assessRepo := new(mocks.AssessmentRepository)
		riskRepo := new(mocks.RiskRepository)

		studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), institutionID, studentID).
			Return(nil, model.NewAppError("STUDENT_NOT_FOUND", "指定された学生が見つかりません。", "", model.ErrNotFound)).Once()

		svc := NewRiskService(db, studentRepo, assessRepo, riskRepo, testConfig())

		profile, err := svc.Recalculate(ctx, advisor, studentID)

		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, profile)
		assessRepo.AssertNotCalled(t, "FindHistoryByStudent")
		riskRepo.AssertNotCalled(t, "UpsertProfile")
	})

	t.Run("異常系: 学生ロールは他学生の再計算をできない", func(t *testing.T) {
		studentRepo := new(mocks.StudentRepository)
		svc := NewRiskService(db, studentRepo, new(mocks.AssessmentRepository), new(mocks.RiskRepository), testConfig())

		profile, err := svc.Recalculate(ctx, studentPrincipal(institutionID, uuid.New()), studentID)

		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, profile)
		studentRepo.AssertNotCalled(t, "FindByID")
	})
}

// --- Test GetHistory ---
func Test_riskService_GetHistory(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	institutionID := uuid.New()
	advisor := advisorPrincipal(institutionID)
	studentID := uuid.New()

	tests := []struct {
		name       string
		page       int
		wantLimit  int
		wantOffset int
	}{
		{name: "正常系: 1ページ目", page: 1, wantLimit: 20, wantOffset: 0},
		{name: "正常系: 3ページ目", page: 3, wantLimit: 20, wantOffset: 40},
		{name: "正常系: 0以下は1ページ目に丸める", page: 0, wantLimit: 20, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			riskRepo := new(mocks.RiskRepository)
			expected := []model.RiskHistory{{HistoryID: uuid.New(), StudentID: studentID}}
			riskRepo.On("FindHistoryByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID, tt.wantLimit, tt.wantOffset).
				Return(expected, nil).Once()

			svc := NewRiskService(db, new(mocks.StudentRepository), new(mocks.AssessmentRepository), riskRepo, testConfig())

			history, err := svc.GetHistory(ctx, advisor, studentID, tt.page)

			require.NoError(t, err)
			assert.Equal(t, expected, history)
			riskRepo.AssertExpectations(t)
		})
	}
}
