//go:generate mockery --name ExamRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"examrisk/internal/middleware"
	"examrisk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(ctx context.Context, tx *gorm.DB, exam *model.Exam) error
	FindByID(ctx context.Context, db *gorm.DB, studentID, examID uuid.UUID) (*model.Exam, error)
	FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]model.Exam, error)
	// FindPendingByStudent は未受験 (outcomeがnull) かつ from 以降に予定された試験を
	// 日付の昇順で返す
	FindPendingByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID, from time.Time) ([]model.Exam, error)
	Update(ctx context.Context, tx *gorm.DB, studentID, examID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, studentID, examID uuid.UUID) error
}

type gormExamRepository struct{}

func NewGormExamRepository() ExamRepository {
	return &gormExamRepository{}
}

func (r *gormExamRepository) Create(ctx context.Context, tx *gorm.DB, exam *model.Exam) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(exam)
	if result.Error != nil {
		logger.Error("Error creating exam in DB",
			"error", result.Error,
			"student_id", exam.StudentID.String(),
		)
		return fmt.Errorf("gormExamRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormExamRepository) FindByID(ctx context.Context, db *gorm.DB, studentID, examID uuid.UUID) (*model.Exam, error) {
	logger := middleware.GetLogger(ctx)
	var exam model.Exam
	result := db.WithContext(ctx).Where("student_id = ? AND exam_id = ?", studentID, examID).First(&exam)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding exam by ID in DB",
			"error", result.Error,
			"student_id", studentID.String(),
			"exam_id", examID.String(),
		)
		return nil, fmt.Errorf("gormExamRepository.FindByID: %w", result.Error)
	}
	return &exam, nil
}

func (r *gormExamRepository) FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]model.Exam, error) {
	logger := middleware.GetLogger(ctx)
	var exams []model.Exam
	result := db.WithContext(ctx).Where("student_id = ?", studentID).Order("scheduled_at ASC").Find(&exams)
	if result.Error != nil {
		logger.Error("Error finding exams by student in DB",
			"error", result.Error,
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormExamRepository.FindByStudent: %w", result.Error)
	}
	return exams, nil
}

func (r *gormExamRepository) FindPendingByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID, from time.Time) ([]model.Exam, error) {
	logger := middleware.GetLogger(ctx)
	var exams []model.Exam
	result := db.WithContext(ctx).
		Where("student_id = ? AND outcome IS NULL AND scheduled_at >= ?", studentID, from).
		Order("scheduled_at ASC").
		Find(&exams)
	if result.Error != nil {
		logger.Error("Error finding pending exams in DB",
			"error", result.Error,
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormExamRepository.FindPendingByStudent: %w", result.Error)
	}
	return exams, nil
}

func (r *gormExamRepository) Update(ctx context.Context, tx *gorm.DB, studentID, examID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Exam{}).Where("student_id = ? AND exam_id = ?", studentID, examID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating exam in DB",
			"error", result.Error,
			"student_id", studentID.String(),
			"exam_id", examID.String(),
		)
		return fmt.Errorf("gormExamRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormExamRepository) Delete(ctx context.Context, tx *gorm.DB, studentID, examID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("student_id = ? AND exam_id = ?", studentID, examID).Delete(&model.Exam{})
	if result.Error != nil {
		logger.Error("Error deleting exam in DB",
			"error", result.Error,
			"student_id", studentID.String(),
			"exam_id", examID.String(),
		)
		return fmt.Errorf("gormExamRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
