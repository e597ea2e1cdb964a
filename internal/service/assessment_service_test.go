// internal/service/assessment_service_test.go
package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"examrisk/internal/model"
	"examrisk/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 再計算まで通すテスト用に、実物のriskServiceをモックリポジトリで組み立てる
func newAssessmentServiceForTest(studentRepo *mocks.StudentRepository, assessRepo *mocks.AssessmentRepository, riskRepo *mocks.RiskRepository) AssessmentService {
	db := setupTestDB()
	riskSvc := NewRiskService(db, studentRepo, assessRepo, riskRepo, testConfig())
	return NewAssessmentService(db, studentRepo, assessRepo, riskSvc)
}

func expectRecalculation(ctx context.Context, assessRepo *mocks.AssessmentRepository, riskRepo *mocks.RiskRepository, studentID uuid.UUID, history []model.Assessment) {
	assessRepo.On("FindHistoryByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return(history, nil).Once()
	riskRepo.On("UpsertProfile", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RiskProfile")).
		Return(nil).Once()
	riskRepo.On("AppendHistory", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.RiskHistory")).
		Return(nil).Once()
}

// --- Test CreateAssessment ---
func Test_assessmentService_CreateAssessment(t *testing.T) {
	ctx := context.Background()
	institutionID := uuid.New()
	advisor := advisorPrincipal(institutionID)
	studentID := uuid.New()

	validReq := &model.CreateAssessmentRequest{
		Type:          model.AssessmentQuestionBlock,
		TakenAt:       time.Now().Add(-24 * time.Hour),
		Accuracy:      floatPtrSvc(0.65),
		QuestionCount: intPtrSvc(40),
		ErrorLogs: []model.ErrorLogInput{
			{Category: model.CategoryMisread, System: model.SystemRespiratory, Topic: "喘息"},
		},
	}

	t.Run("正常系: 登録と同一トランザクションでの再計算", func(t *testing.T) {
		studentRepo := new(mocks.StudentRepository)
		assessRepo := new(mocks.AssessmentRepository)
		riskRepo := new(mocks.RiskRepository)

		studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), institutionID, studentID).
			Return(&model.Student{StudentID: studentID, InstitutionID: institutionID}, nil).Once()
		assessRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Assessment")).
			Run(func(args mock.Arguments) {
				a := args.Get(2).(*model.Assessment)
				assert.Equal(t, studentID, a.StudentID)
				assert.NotEqual(t, uuid.Nil, a.AssessmentID)
				require.Len(t, a.ErrorLogs, 1)
				assert.Equal(t, a.AssessmentID, a.ErrorLogs[0].AssessmentID)
			}).Return(nil).Once()
		expectRecalculation(ctx, assessRepo, riskRepo, studentID, []model.Assessment{})

		svc := newAssessmentServiceForTest(studentRepo, assessRepo, riskRepo)

		created, err := svc.CreateAssessment(ctx, advisor, studentID, validReq)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, model.AssessmentQuestionBlock, created.Type)
		studentRepo.AssertExpectations(t)
		assessRepo.AssertExpectations(t)
		riskRepo.AssertExpectations(t)
	})

	t.Run("異常系: 不正な種別", func(t *testing.T) {
		assessRepo := new(mocks.AssessmentRepository)
		svc := newAssessmentServiceForTest(new(mocks.StudentRepository), assessRepo, new(mocks.RiskRepository))

		req := *validReq
		req.Type = "final_boss_exam"
		created, err := svc.CreateAssessment(ctx, advisor, studentID, &req)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, created)
		assessRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: 不正な誤答カテゴリ", func(t *testing.T) {
		assessRepo := new(mocks.AssessmentRepository)
		svc := newAssessmentServiceForTest(new(mocks.StudentRepository), assessRepo, new(mocks.RiskRepository))

		req := *validReq
		req.ErrorLogs = []model.ErrorLogInput{{Category: "laziness", System: model.SystemRespiratory}}
		created, err := svc.CreateAssessment(ctx, advisor, studentID, &req)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, created)
		assessRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: 学生ロールは他学生に登録できない", func(t *testing.T) {
		svc := newAssessmentServiceForTest(new(mocks.StudentRepository), new(mocks.AssessmentRepository), new(mocks.RiskRepository))

		created, err := svc.CreateAssessment(ctx, studentPrincipal(institutionID, uuid.New()), studentID, validReq)

		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, created)
	})
}

// --- Test ImportCSV ---
func Test_assessmentService_ImportCSV(t *testing.T) {
	ctx := context.Background()
	institutionID := uuid.New()
	advisor := advisorPrincipal(institutionID)
	studentID := uuid.New()

	t.Run("正常系: 不正行をスキップして一括登録後に1回だけ再計算", func(t *testing.T) {
		csvBody := strings.Join([]string{
			"type,taken_at,score,accuracy,question_count,notes",
			"practice_exam,2026-06-01,420,0.72,200,全国模試",
			"question_block,2026-06-10T09:00:00Z,,0.55,40,",
			"question_block,2026-06-12,,1.5,40,正答率が範囲外",
		}, "\n")

		studentRepo := new(mocks.StudentRepository)
		assessRepo := new(mocks.AssessmentRepository)
		riskRepo := new(mocks.RiskRepository)

		studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), institutionID, studentID).
			Return(&model.Student{StudentID: studentID, InstitutionID: institutionID}, nil).Once()
		var createdTypes []model.AssessmentType
		assessRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Assessment")).
			Run(func(args mock.Arguments) {
				a := args.Get(2).(*model.Assessment)
				createdTypes = append(createdTypes, a.Type)
			}).Return(nil).Twice()
		expectRecalculation(ctx, assessRepo, riskRepo, studentID, []model.Assessment{})

		svc := newAssessmentServiceForTest(studentRepo, assessRepo, riskRepo)

		result, err := svc.ImportCSV(ctx, advisor, studentID, strings.NewReader(csvBody))

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "line 4")
		assert.Equal(t, []model.AssessmentType{model.AssessmentPracticeExam, model.AssessmentQuestionBlock}, createdTypes)
		assessRepo.AssertExpectations(t)
		riskRepo.AssertExpectations(t)
	})

	t.Run("異常系: ヘッダ不一致", func(t *testing.T) {
		csvBody := "kind,date,score,accuracy,question_count,notes\npractice_exam,2026-06-01,420,0.72,200,x"
		studentRepo := new(mocks.StudentRepository)
		svc := newAssessmentServiceForTest(studentRepo, new(mocks.AssessmentRepository), new(mocks.RiskRepository))

		result, err := svc.ImportCSV(ctx, advisor, studentID, strings.NewReader(csvBody))

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, result)
		studentRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("正常系: 取り込める行が無い場合はトランザクションを開かない", func(t *testing.T) {
		csvBody := strings.Join([]string{
			"type,taken_at,score,accuracy,question_count,notes",
			"unknown_type,2026-06-01,,,,",
		}, "\n")
		studentRepo := new(mocks.StudentRepository)
		svc := newAssessmentServiceForTest(studentRepo, new(mocks.AssessmentRepository), new(mocks.RiskRepository))

		result, err := svc.ImportCSV(ctx, advisor, studentID, strings.NewReader(csvBody))

		require.NoError(t, err)
		assert.Equal(t, 0, result.Imported)
		assert.Equal(t, 1, result.Skipped)
		studentRepo.AssertNotCalled(t, "FindByID")
	})
}

// --- Test parseCSVRecord ---
func Test_parseCSVRecord(t *testing.T) {
	studentID := uuid.New()

	tests := []struct {
		name    string
		record  []string
		wantErr string
		check   func(t *testing.T, a *model.Assessment)
	}{
		{
			name:   "正常系: RFC3339の受験日時",
			record: []string{"practice_exam", "2026-06-01T09:00:00Z", "420", "0.72", "200", "全国模試"},
			check: func(t *testing.T, a *model.Assessment) {
				assert.Equal(t, model.AssessmentPracticeExam, a.Type)
				assert.Equal(t, 2026, a.TakenAt.Year())
				require.NotNil(t, a.Score)
				assert.Equal(t, 420.0, *a.Score)
				require.NotNil(t, a.QuestionCount)
				assert.Equal(t, 200, *a.QuestionCount)
				assert.Equal(t, "全国模試", a.Notes)
			},
		},
		{
			name:   "正常系: 日付のみの受験日",
			record: []string{"question_block", "2026-06-10", "", "0.55", "", ""},
			check: func(t *testing.T, a *model.Assessment) {
				assert.Equal(t, time.June, a.TakenAt.Month())
				assert.Nil(t, a.Score)
				assert.Nil(t, a.QuestionCount)
				require.NotNil(t, a.Accuracy)
				assert.Equal(t, 0.55, *a.Accuracy)
			},
		},
		{
			name:    "異常系: 未知の種別",
			record:  []string{"pop_quiz", "2026-06-10", "", "", "", ""},
			wantErr: "unknown assessment type",
		},
		{
			name:    "異常系: 受験日が読めない",
			record:  []string{"question_block", "06/10/2026", "", "", "", ""},
			wantErr: "invalid taken_at",
		},
		{
			name:    "異常系: 負の素点",
			record:  []string{"question_block", "2026-06-10", "-10", "", "", ""},
			wantErr: "invalid score",
		},
		{
			name:    "異常系: 正答率が1を超える",
			record:  []string{"question_block", "2026-06-10", "", "1.2", "", ""},
			wantErr: "invalid accuracy",
		},
		{
			name:    "異常系: 出題数が整数でない",
			record:  []string{"question_block", "2026-06-10", "", "", "40.5", ""},
			wantErr: "invalid question_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseCSVRecord(studentID, tt.record)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, studentID, a.StudentID)
			tt.check(t, a)
		})
	}
}
