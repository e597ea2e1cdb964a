//go:generate mockery --name AssessmentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"examrisk/internal/middleware"
	"examrisk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, assessment *model.Assessment) error
	FindByID(ctx context.Context, db *gorm.DB, studentID, assessmentID uuid.UUID) (*model.Assessment, error)
	// FindHistoryByStudent は受験日の降順で全履歴を返す (ErrorLogsをPreload)
	FindHistoryByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]model.Assessment, error)
	Update(ctx context.Context, tx *gorm.DB, assessment *model.Assessment) error
	Delete(ctx context.Context, tx *gorm.DB, studentID, assessmentID uuid.UUID) error
	ReplaceErrorLogs(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, logs []model.ErrorLog) error
}

type gormAssessmentRepository struct{}

func NewGormAssessmentRepository() AssessmentRepository {
	return &gormAssessmentRepository{}
}

func (r *gormAssessmentRepository) Create(ctx context.Context, tx *gorm.DB, assessment *model.Assessment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(assessment)
	if result.Error != nil {
		logger.Error("Error creating assessment in DB",
			"error", result.Error,
			"student_id", assessment.StudentID.String(),
		)
		return fmt.Errorf("gormAssessmentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAssessmentRepository) FindByID(ctx context.Context, db *gorm.DB, studentID, assessmentID uuid.UUID) (*model.Assessment, error) {
	logger := middleware.GetLogger(ctx)
	var assessment model.Assessment
	result := db.WithContext(ctx).
		Preload("ErrorLogs").
		Where("student_id = ? AND assessment_id = ?", studentID, assessmentID).
		First(&assessment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding assessment by ID in DB",
			"error", result.Error,
			"student_id", studentID.String(),
			"assessment_id", assessmentID.String(),
		)
		return nil, fmt.Errorf("gormAssessmentRepository.FindByID: %w", result.Error)
	}
	return &assessment, nil
}

func (r *gormAssessmentRepository) FindHistoryByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]model.Assessment, error) {
	logger := middleware.GetLogger(ctx)
	var assessments []model.Assessment
	result := db.WithContext(ctx).
		Preload("ErrorLogs").
		Where("student_id = ?", studentID).
		Order("taken_at DESC").
		Find(&assessments)
	if result.Error != nil {
		logger.Error("Error finding assessment history in DB",
			"error", result.Error,
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormAssessmentRepository.FindHistoryByStudent: %w", result.Error)
	}
	return assessments, nil
}

func (r *gormAssessmentRepository) Update(ctx context.Context, tx *gorm.DB, assessment *model.Assessment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.Assessment{}).
		Where("student_id = ? AND assessment_id = ?", assessment.StudentID, assessment.AssessmentID).
		Updates(map[string]interface{}{
			"type":           assessment.Type,
			"taken_at":       assessment.TakenAt,
			"score":          assessment.Score,
			"accuracy":       assessment.Accuracy,
			"question_count": assessment.QuestionCount,
			"notes":          assessment.Notes,
		})
	if result.Error != nil {
		logger.Error("Error updating assessment in DB",
			"error", result.Error,
			"assessment_id", assessment.AssessmentID.String(),
		)
		return fmt.Errorf("gormAssessmentRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormAssessmentRepository) Delete(ctx context.Context, tx *gorm.DB, studentID, assessmentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	// ErrorLogはAssessmentにカスケードで追従する。
	// sqlite等で外部キー制約が無効な環境でも確実に消すため明示的に削除する。
	if err := tx.WithContext(ctx).Where("assessment_id = ?", assessmentID).Delete(&model.ErrorLog{}).Error; err != nil {
		logger.Error("Error deleting error logs in DB",
			"error", err,
			"assessment_id", assessmentID.String(),
		)
		return fmt.Errorf("gormAssessmentRepository.Delete: %w", err)
	}

	result := tx.WithContext(ctx).Where("student_id = ? AND assessment_id = ?", studentID, assessmentID).Delete(&model.Assessment{})
	if result.Error != nil {
		logger.Error("Error deleting assessment in DB",
			"error", result.Error,
			"student_id", studentID.String(),
			"assessment_id", assessmentID.String(),
		)
		return fmt.Errorf("gormAssessmentRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormAssessmentRepository) ReplaceErrorLogs(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, logs []model.ErrorLog) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Where("assessment_id = ?", assessmentID).Delete(&model.ErrorLog{}).Error; err != nil {
		logger.Error("Error clearing error logs in DB",
			"error", err,
			"assessment_id", assessmentID.String(),
		)
		return fmt.Errorf("gormAssessmentRepository.ReplaceErrorLogs: %w", err)
	}
	if len(logs) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(&logs).Error; err != nil {
		logger.Error("Error inserting error logs in DB",
			"error", err,
			"assessment_id", assessmentID.String(),
		)
		return fmt.Errorf("gormAssessmentRepository.ReplaceErrorLogs: %w", err)
	}
	return nil
}
