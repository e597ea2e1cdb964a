//go:generate mockery --name StudentRepository --output ./mocks --outpkg mocks --case=underscore
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

type StudentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, student *model.Student) error
	FindByID(ctx context.Context, db *gorm.DB, institutionID, studentID uuid.UUID) (*model.Student, error)
	FindByInstitution(ctx context.Context, db *gorm.DB, institutionID uuid.UUID) ([]*model.Student, error)
	Update(ctx context.Context, tx *gorm.DB, institutionID, studentID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, institutionID, studentID uuid.UUID) error
	CheckEmailExists(ctx context.Context, db *gorm.DB, institutionID uuid.UUID, email string, excludeStudentID *uuid.UUID) (bool, error)
}

type gormStudentRepository struct{}

func NewGormStudentRepository() StudentRepository {
	return &gormStudentRepository{}
}

func (r *gormStudentRepository) Create(ctx context.Context, tx *gorm.DB, student *model.Student) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(student)
	if result.Error != nil {
		logger.Error("Error creating student in DB",
			"error", result.Error,
			"institution_id", student.InstitutionID.String(),
			"email", student.Email,
		)
		return fmt.Errorf("gormStudentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormStudentRepository) FindByID(ctx context.Context, db *gorm.DB, institutionID, studentID uuid.UUID) (*model.Student, error) {
	logger := middleware.GetLogger(ctx)
	var student model.Student
	result := db.WithContext(ctx).Where("institution_id = ? AND student_id = ?", institutionID, studentID).First(&student)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding student by ID in DB",
			"error", result.Error,
			"institution_id", institutionID.String(),
			"student_id", studentID.String(),
		)
		return nil, fmt.Errorf("gormStudentRepository.FindByID: %w", result.Error)
	}
	return &student, nil
}

func (r *gormStudentRepository) FindByInstitution(ctx context.Context, db *gorm.DB, institutionID uuid.UUID) ([]*model.Student, error) {
	logger := middleware.GetLogger(ctx)
	var students []*model.Student
	result := db.WithContext(ctx).Where("institution_id = ?", institutionID).Order("name ASC").Find(&students)
	if result.Error != nil {
		logger.Error("Error finding students by institution in DB",
			"error", result.Error,
			"institution_id", institutionID.String(),
		)
		return nil, fmt.Errorf("gormStudentRepository.FindByInstitution: %w", result.Error)
	}
	return students, nil
}

func (r *gormStudentRepository) Update(ctx context.Context, tx *gorm.DB, institutionID, studentID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Student{}).Where("institution_id = ? AND student_id = ?", institutionID, studentID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating student in DB",
			"error", result.Error,
			"institution_id", institutionID.String(),
			"student_id", studentID.String(),
		)
		return fmt.Errorf("gormStudentRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormStudentRepository) Delete(ctx context.Context, tx *gorm.DB, institutionID, studentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("institution_id = ? AND student_id = ?", institutionID, studentID).Delete(&model.Student{})
	if result.Error != nil {
		logger.Error("Error deleting student in DB",
			"error", result.Error,
			"institution_id", institutionID.String(),
			"student_id", studentID.String(),
		)
		return fmt.Errorf("gormStudentRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormStudentRepository) CheckEmailExists(ctx context.Context, db *gorm.DB, institutionID uuid.UUID, email string, excludeStudentID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Student{}).Where("institution_id = ? AND email = ?", institutionID, email)
	if excludeStudentID != nil {
		query = query.Where("student_id != ?", *excludeStudentID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking email existence in DB",
			"error", result.Error,
			"institution_id", institutionID.String(),
			"email", email,
		)
		return false, fmt.Errorf("gormStudentRepository.CheckEmailExists: %w", result.Error)
	}
	return count > 0, nil
}
