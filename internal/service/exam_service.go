//go:generate mockery --name ExamService --structname MockExamService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"examrisk/internal/middleware"
	"examrisk/internal/model"
	"examrisk/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamService interface {
	CreateExam(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.CreateExamRequest) (*model.Exam, error)
	GetExam(ctx context.Context, principal model.Principal, studentID, examID uuid.UUID) (*model.Exam, error)
	ListExams(ctx context.Context, principal model.Principal, studentID uuid.UUID) ([]model.Exam, error)
	PatchExam(ctx context.Context, principal model.Principal, studentID, examID uuid.UUID, req *model.PatchExamRequest) (*model.Exam, error)
	DeleteExam(ctx context.Context, principal model.Principal, studentID, examID uuid.UUID) error
}

type examService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
	examRepo    repository.ExamRepository
}

func NewExamService(db *gorm.DB, studentRepo repository.StudentRepository, examRepo repository.ExamRepository) ExamService {
	return &examService{db: db, studentRepo: studentRepo, examRepo: examRepo}
}

func (s *examService) CreateExam(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.CreateExamRequest) (*model.Exam, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	res := Resource{Type: ResourceExam, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}
	if !req.Type.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "種別の値が正しくありません。", "type", model.ErrInvalidInput)
	}

	weight := req.ContentWeight
	if weight <= 0 {
		weight = 1.0
	}

	var created *model.Exam
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.studentRepo.FindByID(ctx, tx, principal.InstitutionID, studentID); err != nil {
			return err
		}
		exam := &model.Exam{
			ExamID:        uuid.New(),
			StudentID:     studentID,
			Title:         req.Title,
			Type:          req.Type,
			ScheduledAt:   req.ScheduledAt,
			ContentWeight: weight,
		}
		if err := s.examRepo.Create(ctx, tx, exam); err != nil {
			logger.Error("Error creating exam in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "試験予定の登録に失敗しました。", "", model.ErrInternalServer)
		}
		created = exam
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Exam created", "exam_id", created.ExamID, "scheduled_at", created.ScheduledAt)
	return created, nil
}

func (s *examService) GetExam(ctx context.Context, principal model.Principal, studentID, examID uuid.UUID) (*model.Exam, error) {
	res := Resource{Type: ResourceExam, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}
	if _, err := s.studentRepo.FindByID(ctx, s.db, principal.InstitutionID, studentID); err != nil {
		return nil, err
	}
	return s.examRepo.FindByID(ctx, s.db, studentID, examID)
}

func (s *examService) ListExams(ctx context.Context, principal model.Principal, studentID uuid.UUID) ([]model.Exam, error) {
	res := Resource{Type: ResourceExam, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}
	if _, err := s.studentRepo.FindByID(ctx, s.db, principal.InstitutionID, studentID); err != nil {
		return nil, err
	}
	return s.examRepo.FindByStudent(ctx, s.db, studentID)
}

func (s *examService) PatchExam(ctx context.Context, principal model.Principal, studentID, examID uuid.UUID, req *model.PatchExamRequest) (*model.Exam, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "exam_id", examID)

	res := Resource{Type: ResourceExam, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ScheduledAt != nil {
		updates["scheduled_at"] = *req.ScheduledAt
	}
	if req.ContentWeight != nil {
		updates["content_weight"] = *req.ContentWeight
	}
	if req.Outcome != nil {
		updates["outcome"] = *req.Outcome
	}
	if len(updates) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "更新する項目がありません。", "", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.studentRepo.FindByID(ctx, tx, principal.InstitutionID, studentID); err != nil {
			return err
		}
		if err := s.examRepo.Update(ctx, tx, studentID, examID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return err
			}
			logger.Error("Error updating exam in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "試験予定の更新に失敗しました。", "", model.ErrInternalServer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.examRepo.FindByID(ctx, s.db, studentID, examID)
}

func (s *examService) DeleteExam(ctx context.Context, principal model.Principal, studentID, examID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "exam_id", examID)

	res := Resource{Type: ResourceExam, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.studentRepo.FindByID(ctx, tx, principal.InstitutionID, studentID); err != nil {
			return err
		}
		if err := s.examRepo.Delete(ctx, tx, studentID, examID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return err
			}
			logger.Error("Error deleting exam in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "試験予定の削除に失敗しました。", "", model.ErrInternalServer)
		}
		return nil
	})
}
