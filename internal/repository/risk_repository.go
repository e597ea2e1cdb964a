//go:generate mockery --name RiskRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"examrisk/internal/middleware"
	"examrisk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RiskRepository interface {
	// UpsertProfile は学生1人につき1行のプロファイルを上書き保存する
	UpsertProfile(ctx context.Context, tx *gorm.DB, profile *model.RiskProfile) error
	FindProfileByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (*model.RiskProfile, error)
	// AppendHistory は履歴行を追記する。履歴は更新・削除しない。
	AppendHistory(ctx context.Context, tx *gorm.DB, history *model.RiskHistory) error
	FindHistoryByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID, limit, offset int) ([]model.RiskHistory, error)
}

type gormRiskRepository struct{}

func NewGormRiskRepository() RiskRepository {
	return &gormRiskRepository{}
}

func (r *gormRiskRepository) UpsertProfile(ctx context.Context, tx *gorm.DB, profile *model.RiskProfile) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"overall_score", "tier", "category_counts", "system_counts",
			"trend", "recent_performance", "total_errors", "calculated_at", "updated_at",
		}),
	}).Create(profile)
	if result.Error != nil {
		logger.Error("Error upserting risk profile in DB",
			"error", result.Error,
			"student_id", profile.StudentID.String(),
		)
		return fmt.Errorf("gormRiskRepository.UpsertProfile: %w", result.Error)
	}
	return nil
}

func (r *gormRiskRepository) FindProfileByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (*model.RiskProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.RiskProfile
	result := db.WithContext(ctx).Where("student_id = ?", studentID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding risk profile in DB",
			"error", result.Error,
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormRiskRepository.FindProfileByStudent: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormRiskRepository) AppendHistory(ctx context.Context, tx *gorm.DB, history *model.RiskHistory) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(history)
	if result.Error != nil {
		logger.Error("Error appending risk history in DB",
			"error", result.Error,
			"student_id", history.StudentID.String(),
		)
		return fmt.Errorf("gormRiskRepository.AppendHistory: %w", result.Error)
	}
	return nil
}

func (r *gormRiskRepository) FindHistoryByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID, limit, offset int) ([]model.RiskHistory, error) {
	logger := middleware.GetLogger(ctx)
	var history []model.RiskHistory
	result := db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("recorded_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&history)
	if result.Error != nil {
		logger.Error("Error finding risk history in DB",
			"error", result.Error,
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormRiskRepository.FindHistoryByStudent: %w", result.Error)
	}
	return history, nil
}
