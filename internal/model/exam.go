package model

import (
	"time"

	"github.com/google/uuid"
)

// Exam は今後受験予定の試験を表します。
// Outcome が null の間は「未受験」で、学習計画の割り当て対象になる。
type Exam struct {
	ExamID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"exam_id"`
	StudentID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"student_id"`
	Title         string         `gorm:"not null" json:"title"`
	Type          AssessmentType `gorm:"type:varchar(30);not null" json:"type"`
	ScheduledAt   time.Time      `gorm:"not null;index" json:"scheduled_at"`
	ContentWeight float64        `gorm:"not null;default:1" json:"content_weight"` // 機関設定の重み
	Outcome       *float64       `json:"outcome,omitempty"`                        // 受験後のスコア
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (Exam) TableName() string {
	return "exams"
}

// 試験作成リクエストDTO
type CreateExamRequest struct {
	Title         string         `json:"title" validate:"required,min=1,max=200"`
	Type          AssessmentType `json:"type" validate:"required"`
	ScheduledAt   time.Time      `json:"scheduled_at" validate:"required"`
	ContentWeight float64        `json:"content_weight" validate:"omitempty,min=0"`
}

// 試験更新（部分）リクエストDTO
type PatchExamRequest struct {
	Title         *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	ContentWeight *float64   `json:"content_weight,omitempty" validate:"omitempty,min=0"`
	Outcome       *float64   `json:"outcome,omitempty" validate:"omitempty,min=0"`
}
