//go:generate mockery --name StudentService --structname MockStudentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"examrisk/internal/middleware"
	"examrisk/internal/model"
	"examrisk/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentService interface {
	CreateStudent(ctx context.Context, principal model.Principal, req *model.CreateStudentRequest) (*model.Student, error)
	GetStudent(ctx context.Context, principal model.Principal, studentID uuid.UUID) (*model.Student, error)
	ListStudents(ctx context.Context, principal model.Principal) ([]*model.Student, error)
	PatchStudent(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.PatchStudentRequest) (*model.Student, error)
	DeleteStudent(ctx context.Context, principal model.Principal, studentID uuid.UUID) error
}

type studentService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
}

func NewStudentService(db *gorm.DB, studentRepo repository.StudentRepository) StudentService {
	return &studentService{
		db:          db,
		studentRepo: studentRepo,
	}
}

func (s *studentService) CreateStudent(ctx context.Context, principal model.Principal, req *model.CreateStudentRequest) (*model.Student, error) {
	logger := middleware.GetLogger(ctx).With("institution_id", principal.InstitutionID)

	res := Resource{Type: ResourceStudent, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	var created *model.Student
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.studentRepo.CheckEmailExists(ctx, tx, principal.InstitutionID, req.Email, nil)
		if err != nil {
			logger.Error("Error checking email existence in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学生の登録中にエラーが発生しました。", "", model.ErrInternalServer)
		}
		if exists {
			return model.NewAppError("DUPLICATE_EMAIL", "同じメールアドレスの学生が既に登録されています。", "email", model.ErrConflict)
		}

		student := &model.Student{
			StudentID:      uuid.New(),
			InstitutionID:  principal.InstitutionID,
			Name:           req.Name,
			Email:          req.Email,
			Cohort:         req.Cohort,
			GraduationYear: req.GraduationYear,
			IsActive:       true,
		}
		if err := s.studentRepo.Create(ctx, tx, student); err != nil {
			logger.Error("Error creating student in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学生の登録に失敗しました。", "", model.ErrInternalServer)
		}
		created = student
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Student created", "student_id", created.StudentID)
	return created, nil
}

func (s *studentService) GetStudent(ctx context.Context, principal model.Principal, studentID uuid.UUID) (*model.Student, error) {
	res := Resource{Type: ResourceStudent, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}
	return s.studentRepo.FindByID(ctx, s.db, principal.InstitutionID, studentID)
}

func (s *studentService) ListStudents(ctx context.Context, principal model.Principal) ([]*model.Student, error) {
	logger := middleware.GetLogger(ctx).With("institution_id", principal.InstitutionID)

	// 学生ロールには一覧を出さない (自分のレコードは GetStudent で参照できる)
	if principal.Role == model.RoleStudent {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", model.ErrForbidden)
	}
	res := Resource{Type: ResourceStudent, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	students, err := s.studentRepo.FindByInstitution(ctx, s.db, principal.InstitutionID)
	if err != nil {
		logger.Error("Failed to list students from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学生一覧の取得に失敗しました。", "", err)
	}
	return students, nil
}

func (s *studentService) PatchStudent(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.PatchStudentRequest) (*model.Student, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	res := Resource{Type: ResourceStudent, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Cohort != nil {
		updates["cohort"] = *req.Cohort
	}
	if req.GraduationYear != nil {
		updates["graduation_year"] = *req.GraduationYear
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Email != nil {
			exists, err := s.studentRepo.CheckEmailExists(ctx, tx, principal.InstitutionID, *req.Email, &studentID)
			if err != nil {
				logger.Error("Error checking email existence in transaction", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学生の更新中にエラーが発生しました。", "", model.ErrInternalServer)
			}
			if exists {
				return model.NewAppError("DUPLICATE_EMAIL", "同じメールアドレスの学生が既に登録されています。", "email", model.ErrConflict)
			}
		}
		return s.studentRepo.Update(ctx, tx, principal.InstitutionID, studentID, updates)
	})
	if err != nil {
		return nil, err
	}

	return s.studentRepo.FindByID(ctx, s.db, principal.InstitutionID, studentID)
}

func (s *studentService) DeleteStudent(ctx context.Context, principal model.Principal, studentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	res := Resource{Type: ResourceStudent, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.studentRepo.Delete(ctx, tx, principal.InstitutionID, studentID)
	})
	if err != nil {
		return err
	}
	logger.Info("Student deleted")
	return nil
}
