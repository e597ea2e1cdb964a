//go:generate mockery --name PlanRepository --output ./mocks --outpkg mocks --case=underscore
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

type PlanRepository interface {
	// Create は計画本体と全週をまとめて保存する
	Create(ctx context.Context, tx *gorm.DB, plan *model.StudyPlan) error
	FindByID(ctx context.Context, db *gorm.DB, studentID, planID uuid.UUID) (*model.StudyPlan, error)
	FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]model.StudyPlan, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, planID uuid.UUID, status model.PlanStatus) error
	FindWeek(ctx context.Context, db *gorm.DB, planID uuid.UUID, weekNumber int) (*model.StudyPlanWeek, error)
	UpdateWeek(ctx context.Context, tx *gorm.DB, week *model.StudyPlanWeek) error
	Delete(ctx context.Context, tx *gorm.DB, studentID, planID uuid.UUID) error
}

type gormPlanRepository struct{}

func NewGormPlanRepository() PlanRepository {
	return &gormPlanRepository{}
}

func (r *gormPlanRepository) Create(ctx context.Context, tx *gorm.DB, plan *model.StudyPlan) error {
	logger := middleware.GetLogger(ctx)
	// WeeksはGORMのアソシエーションで同時にINSERTされる
	result := tx.WithContext(ctx).Create(plan)
	if result.Error != nil {
		logger.Error("Error creating study plan in DB",
			"error", result.Error,
			"student_id", plan.StudentID.String(),
		)
		return fmt.Errorf("gormPlanRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPlanRepository) FindByID(ctx context.Context, db *gorm.DB, studentID, planID uuid.UUID) (*model.StudyPlan, error) {
	logger := middleware.GetLogger(ctx)
	var plan model.StudyPlan
	result := db.WithContext(ctx).
		Preload("Weeks", func(db *gorm.DB) *gorm.DB {
			return db.Order("study_plan_weeks.week_number ASC")
		}).
		Where("student_id = ? AND plan_id = ?", studentID, planID).
		First(&plan)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding study plan by ID in DB",
			"error", result.Error,
			"student_id", studentID.String(),
			"plan_id", planID.String(),
		)
		return nil, fmt.Errorf("gormPlanRepository.FindByID: %w", result.Error)
	}
	return &plan, nil
}

func (r *gormPlanRepository) FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]model.StudyPlan, error) {
	logger := middleware.GetLogger(ctx)
	var plans []model.StudyPlan
	result := db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&plans)
	if result.Error != nil {
		logger.Error("Error finding study plans by student in DB",
			"error", result.Error,
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormPlanRepository.FindByStudent: %w", result.Error)
	}
	return plans, nil
}

func (r *gormPlanRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, planID uuid.UUID, status model.PlanStatus) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.StudyPlan{}).Where("plan_id = ?", planID).Update("status", status)
	if result.Error != nil {
		logger.Error("Error updating study plan status in DB",
			"error", result.Error,
			"plan_id", planID.String(),
		)
		return fmt.Errorf("gormPlanRepository.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPlanRepository) FindWeek(ctx context.Context, db *gorm.DB, planID uuid.UUID, weekNumber int) (*model.StudyPlanWeek, error) {
	logger := middleware.GetLogger(ctx)
	var week model.StudyPlanWeek
	result := db.WithContext(ctx).Where("plan_id = ? AND week_number = ?", planID, weekNumber).First(&week)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding study plan week in DB",
			"error", result.Error,
			"plan_id", planID.String(),
			"week_number", weekNumber,
		)
		return nil, fmt.Errorf("gormPlanRepository.FindWeek: %w", result.Error)
	}
	return &week, nil
}

func (r *gormPlanRepository) UpdateWeek(ctx context.Context, tx *gorm.DB, week *model.StudyPlanWeek) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.StudyPlanWeek{}).
		Where("week_id = ?", week.WeekID).
		Updates(map[string]interface{}{
			"completed_hours":     week.CompletedHours,
			"completed_questions": week.CompletedQuestions,
			"is_completed":        week.IsCompleted,
		})
	if result.Error != nil {
		logger.Error("Error updating study plan week in DB",
			"error", result.Error,
			"week_id", week.WeekID.String(),
		)
		return fmt.Errorf("gormPlanRepository.UpdateWeek: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPlanRepository) Delete(ctx context.Context, tx *gorm.DB, studentID, planID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Where("plan_id = ?", planID).Delete(&model.StudyPlanWeek{}).Error; err != nil {
		logger.Error("Error deleting study plan weeks in DB",
			"error", err,
			"plan_id", planID.String(),
		)
		return fmt.Errorf("gormPlanRepository.Delete: %w", err)
	}

	result := tx.WithContext(ctx).Where("student_id = ? AND plan_id = ?", studentID, planID).Delete(&model.StudyPlan{})
	if result.Error != nil {
		logger.Error("Error deleting study plan in DB",
			"error", result.Error,
			"student_id", studentID.String(),
			"plan_id", planID.String(),
		)
		return fmt.Errorf("gormPlanRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
