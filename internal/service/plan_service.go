//go:generate mockery --name PlanService --structname MockPlanService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"examrisk/internal/config"
	"examrisk/internal/middleware"
	"examrisk/internal/model"
	"examrisk/internal/planning"
	"examrisk/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanService interface {
	// GeneratePlan は未受験の試験とリスクプロファイルから学習計画を生成して保存する。
	// プロファイル未算出なら ErrMissingRiskProfile (先に再計算が必要)。
	GeneratePlan(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.GeneratePlanRequest) (*model.StudyPlan, error)
	GetPlan(ctx context.Context, principal model.Principal, studentID, planID uuid.UUID) (*model.StudyPlan, error)
	ListPlans(ctx context.Context, principal model.Principal, studentID uuid.UUID) ([]model.StudyPlan, error)
	UpdateStatus(ctx context.Context, principal model.Principal, studentID, planID uuid.UUID, next model.PlanStatus) (*model.StudyPlan, error)
	UpdateWeekProgress(ctx context.Context, principal model.Principal, studentID, planID uuid.UUID, weekNumber int, req *model.UpdateWeekProgressRequest) (*model.StudyPlanWeek, error)
	DeletePlan(ctx context.Context, principal model.Principal, studentID, planID uuid.UUID) error
	// Simulate は試験日・学習時間の変更がリスクに与える影響を概算する (保存しない)
	Simulate(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.SimulateAdjustmentRequest) (*model.SimulationResult, error)
}

type planService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
	examRepo    repository.ExamRepository
	riskRepo    repository.RiskRepository
	planRepo    repository.PlanRepository
	cfg         *config.Config
}

func NewPlanService(db *gorm.DB, studentRepo repository.StudentRepository, examRepo repository.ExamRepository, riskRepo repository.RiskRepository, planRepo repository.PlanRepository, cfg *config.Config) PlanService {
	return &planService{
		db:          db,
		studentRepo: studentRepo,
		examRepo:    examRepo,
		riskRepo:    riskRepo,
		planRepo:    planRepo,
		cfg:         cfg,
	}
}

func (s *planService) GeneratePlan(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.GeneratePlanRequest) (*model.StudyPlan, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	res := Resource{Type: ResourcePlan, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	weeklyHours := req.WeeklyHours
	if weeklyHours == 0 {
		weeklyHours = s.cfg.App.DefaultWeeklyHours
	}
	dailyCap := req.DailyHourCap
	if dailyCap == 0 {
		dailyCap = s.cfg.App.DefaultDailyHourCap
	}

	var plan *model.StudyPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.studentRepo.FindByID(ctx, tx, principal.InstitutionID, studentID); err != nil {
			return err
		}

		exams, err := s.examRepo.FindPendingByStudent(ctx, tx, studentID, req.StartDate)
		if err != nil {
			logger.Error("Error fetching pending exams", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "試験予定の取得に失敗しました。", "", model.ErrInternalServer)
		}

		profile, err := s.riskRepo.FindProfileByStudent(ctx, tx, studentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				// プロファイルがまだ無い場合は計画を生成できない
				return model.NewAppError("MISSING_RISK_PROFILE", "リスクプロファイルが未計算です。先にリスク計算を実行してください。", "", model.ErrMissingRiskProfile)
			}
			logger.Error("Error fetching risk profile", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "リスクプロファイルの取得に失敗しました。", "", model.ErrInternalServer)
		}

		built, err := planning.BuildStudyPlan(exams, profile, planning.Options{
			StartDate:    req.StartDate,
			WeeklyHours:  weeklyHours,
			DailyHourCap: dailyCap,
		})
		if err != nil {
			if errors.Is(err, model.ErrNoUpcomingExams) {
				return model.NewAppError("NO_UPCOMING_EXAMS", "計画の対象になる未受験の試験がありません。", "", err)
			}
			if errors.Is(err, model.ErrInvalidInput) {
				return model.NewAppError("VALIDATION_ERROR", "週あたり学習時間は正の値で指定してください。", "weekly_hours", err)
			}
			return err
		}

		if err := s.planRepo.Create(ctx, tx, built); err != nil {
			logger.Error("Error creating study plan in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習計画の保存に失敗しました。", "", model.ErrInternalServer)
		}
		plan = built
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Study plan generated", "plan_id", plan.PlanID, "weeks", len(plan.Weeks))
	return plan, nil
}

func (s *planService) GetPlan(ctx context.Context, principal model.Principal, studentID, planID uuid.UUID) (*model.StudyPlan, error) {
	res := Resource{Type: ResourcePlan, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}
	if _, err := s.studentRepo.FindByID(ctx, s.db, principal.InstitutionID, studentID); err != nil {
		return nil, err
	}
	return s.planRepo.FindByID(ctx, s.db, studentID, planID)
}

func (s *planService) ListPlans(ctx context.Context, principal model.Principal, studentID uuid.UUID) ([]model.StudyPlan, error) {
	res := Resource{Type: ResourcePlan, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}
	if _, err := s.studentRepo.FindByID(ctx, s.db, principal.InstitutionID, studentID); err != nil {
		return nil, err
	}
	return s.planRepo.FindByStudent(ctx, s.db, studentID)
}

func (s *planService) UpdateStatus(ctx context.Context, principal model.Principal, studentID, planID uuid.UUID, next model.PlanStatus) (*model.StudyPlan, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "plan_id", planID)

	res := Resource{Type: ResourcePlan, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}
	if !next.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "ステータスの値が正しくありません。", "status", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := s.planRepo.FindByID(ctx, tx, studentID, planID)
		if err != nil {
			return err
		}
		if !plan.Status.CanTransitionTo(next) {
			// completed / archived からの遷移や draft→completed は許可しない
			return model.NewAppError("INVALID_TRANSITION", "このステータスへは変更できません。", "status", model.ErrConflict)
		}
		if err := s.planRepo.UpdateStatus(ctx, tx, planID, next); err != nil {
			logger.Error("Error updating plan status in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ステータスの更新に失敗しました。", "", model.ErrInternalServer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Plan status updated", "status", next)
	return s.planRepo.FindByID(ctx, s.db, studentID, planID)
}

func (s *planService) UpdateWeekProgress(ctx context.Context, principal model.Principal, studentID, planID uuid.UUID, weekNumber int, req *model.UpdateWeekProgressRequest) (*model.StudyPlanWeek, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "plan_id", planID, "week_number", weekNumber)

	res := Resource{Type: ResourcePlan, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	var updated *model.StudyPlanWeek
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.planRepo.FindByID(ctx, tx, studentID, planID); err != nil {
			return err
		}
		week, err := s.planRepo.FindWeek(ctx, tx, planID, weekNumber)
		if err != nil {
			return err
		}

		if req.CompletedHours != nil {
			week.CompletedHours = *req.CompletedHours
		}
		if req.CompletedQuestions != nil {
			week.CompletedQuestions = *req.CompletedQuestions
		}
		if req.IsCompleted != nil {
			week.IsCompleted = *req.IsCompleted
		} else if week.CompletedHours >= week.AllocatedHours && week.CompletedQuestions >= week.TargetQuestions {
			// 明示指定がなければ目標達成時に自動で完了にする
			week.IsCompleted = true
		}

		if err := s.planRepo.UpdateWeek(ctx, tx, week); err != nil {
			logger.Error("Error updating plan week in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "週進捗の更新に失敗しました。", "", model.ErrInternalServer)
		}
		updated = week
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *planService) DeletePlan(ctx context.Context, principal model.Principal, studentID, planID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "plan_id", planID)

	res := Resource{Type: ResourcePlan, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.planRepo.Delete(ctx, tx, studentID, planID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return err
			}
			logger.Error("Error deleting study plan in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習計画の削除に失敗しました。", "", model.ErrInternalServer)
		}
		return nil
	})
}

func (s *planService) Simulate(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.SimulateAdjustmentRequest) (*model.SimulationResult, error) {
	res := Resource{Type: ResourcePlan, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	adj := planning.Adjustment{
		NewExamDate:  req.NewExamDate,
		HoursPerWeek: req.HoursPerWeek,
	}

	// 試験日変更の影響を見るには現行の試験日が要る
	if req.ExamID != nil {
		exam, err := s.examRepo.FindByID(ctx, s.db, studentID, *req.ExamID)
		if err != nil {
			return nil, err
		}
		at := exam.ScheduledAt
		adj.CurrentExamDate = &at
	}

	result := planning.SimulateAdjustment(adj)
	return &result, nil
}
