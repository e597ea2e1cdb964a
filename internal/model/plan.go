package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PlanStatus は学習計画のステータス。
// draft ⇔ active は行き来できるが、completed / archived からは戻れない。
type PlanStatus string

const (
	PlanDraft     PlanStatus = "draft"
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanArchived  PlanStatus = "archived"
)

func (s PlanStatus) Valid() bool {
	switch s {
	case PlanDraft, PlanActive, PlanCompleted, PlanArchived:
		return true
	}
	return false
}

// CanTransitionTo はステータス遷移の許可判定
func (s PlanStatus) CanTransitionTo(next PlanStatus) bool {
	switch s {
	case PlanDraft:
		return next == PlanActive
	case PlanActive:
		return next == PlanDraft || next == PlanCompleted || next == PlanArchived
	default:
		// completed / archived は終端
		return false
	}
}

// StudyPlan は1回の生成リクエストに対応する学習計画
type StudyPlan struct {
	PlanID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"plan_id"`
	StudentID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	Status       PlanStatus `gorm:"type:varchar(10);not null;default:draft" json:"status"`
	WeeklyHours  float64    `gorm:"not null" json:"weekly_hours"`
	DailyHourCap float64    `gorm:"not null" json:"daily_hour_cap"`
	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	EndDate      time.Time  `gorm:"not null" json:"end_date"` // 最後の対象試験の日
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// 関連 (Preload用、週番号1..Nで連続)
	Weeks []StudyPlanWeek `gorm:"foreignKey:PlanID;references:PlanID;constraint:OnDelete:CASCADE" json:"weeks"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}

// StudyPlanWeek は計画中の1週分の割り当て
type StudyPlanWeek struct {
	WeekID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"week_id"`
	PlanID             uuid.UUID       `gorm:"type:uuid;not null;index:idx_plan_week,unique" json:"-"`
	WeekNumber         int             `gorm:"not null;index:idx_plan_week,unique" json:"week_number"`
	ExamID             *uuid.UUID      `gorm:"type:uuid" json:"exam_id,omitempty"` // 対象試験 (任意)
	AllocatedHours     float64         `gorm:"not null" json:"allocated_hours"`
	TargetQuestions    int             `gorm:"not null" json:"target_questions"`
	FocusSystems       SystemList      `gorm:"type:jsonb" json:"focus_systems"`    // 最大2系統
	FocusCategories    CategoryList    `gorm:"type:jsonb" json:"focus_categories"` // 最大2カテゴリ
	Recommendation     string          `json:"recommendation"`
	CompletedHours     float64         `gorm:"not null;default:0" json:"completed_hours"`
	CompletedQuestions int             `gorm:"not null;default:0" json:"completed_questions"`
	IsCompleted        bool            `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt          time.Time       `json:"-"`
	UpdatedAt          time.Time       `json:"-"`
}

func (StudyPlanWeek) TableName() string {
	return "study_plan_weeks"
}

// SystemList はフォーカス系統のJSONカラム用リスト型
type SystemList []SubjectSystem

func (l SystemList) Value() (driver.Value, error) {
	if l == nil {
		l = SystemList{}
	}
	return json.Marshal(l)
}

func (l *SystemList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// CategoryList はフォーカスカテゴリのJSONカラム用リスト型
type CategoryList []ErrorCategory

func (l CategoryList) Value() (driver.Value, error) {
	if l == nil {
		l = CategoryList{}
	}
	return json.Marshal(l)
}

func (l *CategoryList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// 学習計画生成リクエストDTO
type GeneratePlanRequest struct {
	StartDate    time.Time `json:"start_date" validate:"required"`
	WeeklyHours  float64   `json:"weekly_hours" validate:"omitempty,gt=0"`
	DailyHourCap float64   `json:"daily_hour_cap" validate:"omitempty,gt=0"`
}

// 週進捗更新リクエストDTO
type UpdateWeekProgressRequest struct {
	CompletedHours     *float64 `json:"completed_hours,omitempty" validate:"omitempty,min=0"`
	CompletedQuestions *int     `json:"completed_questions,omitempty" validate:"omitempty,min=0"`
	IsCompleted        *bool    `json:"is_completed,omitempty"`
}

// ステータス変更リクエストDTO
type UpdatePlanStatusRequest struct {
	Status PlanStatus `json:"status" validate:"required"`
}

// what-ifシミュレーションのリクエストDTO。
// いずれかのフィールドだけ指定してもよい。
type SimulateAdjustmentRequest struct {
	ExamID       *uuid.UUID `json:"exam_id,omitempty"`
	NewExamDate  *time.Time `json:"new_exam_date,omitempty"`
	HoursPerWeek *float64   `json:"hours_per_week,omitempty" validate:"omitempty,min=0"`
}

// シミュレーション結果DTO。あくまでUIフィードバック用の概算であり、
// スコアラの再実行結果ではない。
type SimulationResult struct {
	ProjectedRiskDelta float64  `json:"projected_risk_delta"`
	Recommendations    []string `json:"recommendations"`
}
