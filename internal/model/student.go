package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student は医学部の学生を表します
type Student struct {
	StudentID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"student_id"`
	InstitutionID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name           string         `gorm:"not null" json:"name"`
	Email          string         `gorm:"not null;uniqueIndex:uq_student_email" json:"email"`
	Cohort         string         `json:"cohort"`          // 例: "M3"
	GraduationYear int            `json:"graduation_year"` // 卒業予定年
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	RiskProfile *RiskProfile `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// 学生作成リクエストDTO
type CreateStudentRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Cohort         string `json:"cohort" validate:"omitempty,max=20"`
	GraduationYear int    `json:"graduation_year" validate:"omitempty,min=2000,max=2100"`
}

// 学生更新（部分）リクエストDTO
type PatchStudentRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Cohort         *string `json:"cohort,omitempty" validate:"omitempty,max=20"`
	GraduationYear *int    `json:"graduation_year,omitempty" validate:"omitempty,min=2000,max=2100"`
	IsActive       *bool   `json:"is_active,omitempty"`
}
