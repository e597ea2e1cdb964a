//go:generate mockery --name RiskService --structname MockRiskService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"examrisk/internal/config"
	"examrisk/internal/middleware"
	"examrisk/internal/model"
	"examrisk/internal/repository"
	"examrisk/internal/scoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RiskService interface {
	// Recalculate は履歴全件からプロファイルを算出し、上書き保存 + 履歴追記まで
	// 1トランザクションで行う
	Recalculate(ctx context.Context, principal model.Principal, studentID uuid.UUID) (*model.RiskProfile, error)
	GetProfile(ctx context.Context, principal model.Principal, studentID uuid.UUID) (*model.RiskProfile, error)
	GetHistory(ctx context.Context, principal model.Principal, studentID uuid.UUID, page int) ([]model.RiskHistory, error)
	// RecalculateInTx は呼び出し側のトランザクションに参加する再計算。
	// Assessmentの登録・更新と同一トランザクションで使う (認可は呼び出し側の責務)。
	RecalculateInTx(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, now time.Time) (*model.RiskProfile, error)
}

type riskService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
	assessRepo  repository.AssessmentRepository
	riskRepo    repository.RiskRepository
	cfg         *config.Config
}

func NewRiskService(db *gorm.DB, studentRepo repository.StudentRepository, assessRepo repository.AssessmentRepository, riskRepo repository.RiskRepository, cfg *config.Config) RiskService {
	return &riskService{
		db:          db,
		studentRepo: studentRepo,
		assessRepo:  assessRepo,
		riskRepo:    riskRepo,
		cfg:         cfg,
	}
}

func (s *riskService) Recalculate(ctx context.Context, principal model.Principal, studentID uuid.UUID) (*model.RiskProfile, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	res := Resource{Type: ResourceRisk, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	var profile *model.RiskProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 学生の存在確認と機関スコープの両方を兼ねる
		if _, err := s.studentRepo.FindByID(ctx, tx, principal.InstitutionID, studentID); err != nil {
			return err
		}
		p, err := s.RecalculateInTx(ctx, tx, studentID, time.Now())
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to recalculate risk profile", "error", err)
		return nil, err
	}

	logger.Info("Risk profile recalculated",
		"score", profile.OverallScore,
		"tier", profile.Tier,
		"total_errors", profile.TotalErrors,
	)
	return profile, nil
}

// RecalculateInTx はトランザクション内での再計算本体。
// Assessment登録・更新のたびに AssessmentService からも呼ばれる。
// 同一学生のプロファイル上書きが競合しないよう、呼び出しは常にトランザクション内で行う。
func (s *riskService) RecalculateInTx(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, now time.Time) (*model.RiskProfile, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	assessments, err := s.assessRepo.FindHistoryByStudent(ctx, tx, studentID)
	if err != nil {
		logger.Error("Failed to load assessment history", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "受験履歴の取得に失敗しました。", "", err)
	}

	// しきい値はconfigロード時に検証済み (scoringは検証しない契約)
	result := scoring.ComputeRiskProfile(assessments, s.cfg.App.Thresholds(), now)

	profile := &model.RiskProfile{
		ProfileID:         uuid.New(),
		StudentID:         studentID,
		OverallScore:      result.OverallScore,
		Tier:              result.Tier,
		CategoryCounts:    result.CategoryCounts,
		SystemCounts:      result.SystemCounts,
		Trend:             result.Trend,
		RecentPerformance: result.RecentPerformance,
		TotalErrors:       result.TotalErrors,
		CalculatedAt:      result.CalculatedAt,
	}
	if err := s.riskRepo.UpsertProfile(ctx, tx, profile); err != nil {
		logger.Error("Failed to upsert risk profile", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "リスクプロファイルの保存に失敗しました。", "", err)
	}

	history := &model.RiskHistory{
		HistoryID:         uuid.New(),
		StudentID:         studentID,
		OverallScore:      result.OverallScore,
		Tier:              result.Tier,
		Trend:             result.Trend,
		RecentPerformance: result.RecentPerformance,
		TotalErrors:       result.TotalErrors,
		RecordedAt:        now,
	}
	if err := s.riskRepo.AppendHistory(ctx, tx, history); err != nil {
		logger.Error("Failed to append risk history", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "リスク履歴の保存に失敗しました。", "", err)
	}

	return profile, nil
}

func (s *riskService) GetProfile(ctx context.Context, principal model.Principal, studentID uuid.UUID) (*model.RiskProfile, error) {
	res := Resource{Type: ResourceRisk, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	if _, err := s.studentRepo.FindByID(ctx, s.db, principal.InstitutionID, studentID); err != nil {
		return nil, err
	}
	return s.riskRepo.FindProfileByStudent(ctx, s.db, studentID)
}

func (s *riskService) GetHistory(ctx context.Context, principal model.Principal, studentID uuid.UUID, page int) ([]model.RiskHistory, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	res := Resource{Type: ResourceRisk, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	if page < 1 {
		page = 1
	}
	limit := s.cfg.App.HistoryPageSize
	offset := (page - 1) * limit

	history, err := s.riskRepo.FindHistoryByStudent(ctx, s.db, studentID, limit, offset)
	if err != nil {
		logger.Error("Failed to load risk history", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "リスク履歴の取得に失敗しました。", "", err)
	}
	return history, nil
}
