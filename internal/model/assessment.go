package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentType は模試・問題演習の種別
type AssessmentType string

const (
	AssessmentPracticeExam      AssessmentType = "practice_exam"
	AssessmentShelfExam         AssessmentType = "shelf_exam"
	AssessmentInternalPredictor AssessmentType = "internal_predictor"
	AssessmentQuestionBlock     AssessmentType = "question_block"
	AssessmentCustom            AssessmentType = "custom"
)

func (t AssessmentType) Valid() bool {
	switch t {
	case AssessmentPracticeExam, AssessmentShelfExam, AssessmentInternalPredictor,
		AssessmentQuestionBlock, AssessmentCustom:
		return true
	}
	return false
}

// ErrorCategory は誤答の原因分類（5種固定）
type ErrorCategory string

const (
	CategoryKnowledgeDeficit ErrorCategory = "knowledge_deficit"
	CategoryMisread          ErrorCategory = "misread"
	CategoryPrematureClosure ErrorCategory = "premature_closure"
	CategoryTimeManagement   ErrorCategory = "time_management"
	CategoryStrategyError    ErrorCategory = "strategy_error"
)

// ErrorCategories は全カテゴリの一覧（スコア計算の分母にも使う）
var ErrorCategories = []ErrorCategory{
	CategoryKnowledgeDeficit,
	CategoryMisread,
	CategoryPrematureClosure,
	CategoryTimeManagement,
	CategoryStrategyError,
}

func (c ErrorCategory) Valid() bool {
	for _, v := range ErrorCategories {
		if c == v {
			return true
		}
	}
	return false
}

// SubjectSystem は出題範囲の臓器・系統分類
type SubjectSystem string

const (
	SystemCardiovascular   SubjectSystem = "cardiovascular"
	SystemRespiratory      SubjectSystem = "respiratory"
	SystemGastrointestinal SubjectSystem = "gastrointestinal"
	SystemRenalUrinary     SubjectSystem = "renal_urinary"
	SystemReproductive     SubjectSystem = "reproductive"
	SystemEndocrine        SubjectSystem = "endocrine"
	SystemMusculoskeletal  SubjectSystem = "musculoskeletal"
	SystemSkin             SubjectSystem = "skin"
	SystemNervous          SubjectSystem = "nervous_system"
	SystemBehavioral       SubjectSystem = "behavioral_health"
	SystemHematology       SubjectSystem = "hematology_oncology"
	SystemImmunology       SubjectSystem = "immunology"
	SystemMultisystem      SubjectSystem = "multisystem"
)

var SubjectSystems = []SubjectSystem{
	SystemCardiovascular, SystemRespiratory, SystemGastrointestinal,
	SystemRenalUrinary, SystemReproductive, SystemEndocrine,
	SystemMusculoskeletal, SystemSkin, SystemNervous, SystemBehavioral,
	SystemHematology, SystemImmunology, SystemMultisystem,
}

func (s SubjectSystem) Valid() bool {
	for _, v := range SubjectSystems {
		if s == v {
			return true
		}
	}
	return false
}

// Assessment は1回の模試・問題ブロックの受験記録を表します。
// 履歴はフォークせず、編集はフィールドの置き換えのみ。
type Assessment struct {
	AssessmentID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"assessment_id"`
	StudentID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"student_id"`
	Type          AssessmentType `gorm:"type:varchar(30);not null" json:"type"`
	TakenAt       time.Time      `gorm:"not null;index" json:"taken_at"`
	Score         *float64       `json:"score,omitempty"`          // 素点 (任意)
	Accuracy      *float64       `json:"accuracy,omitempty"`       // 正答率 0-1 (任意)
	QuestionCount *int           `json:"question_count,omitempty"` // 出題数 (任意)
	Notes         string         `json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// 関連 (Preload用、Assessment削除でカスケード削除)
	ErrorLogs []ErrorLog `gorm:"foreignKey:AssessmentID;references:AssessmentID;constraint:OnDelete:CASCADE" json:"error_logs"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// ErrorLog はAssessment内の1問分の誤答タグを表します
type ErrorLog struct {
	ErrorLogID   uuid.UUID     `gorm:"type:uuid;primaryKey" json:"error_log_id"`
	AssessmentID uuid.UUID     `gorm:"type:uuid;not null;index" json:"-"`
	Category     ErrorCategory `gorm:"type:varchar(30);not null" json:"category"`
	System       SubjectSystem `gorm:"type:varchar(30);not null" json:"system"`
	Topic        string        `json:"topic"`
	QuestionRef  string        `json:"question_ref"`
	Reflection   string        `json:"reflection"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (ErrorLog) TableName() string {
	return "error_logs"
}

// 誤答タグ作成DTO (Assessment作成・更新リクエストにネストされる)
type ErrorLogInput struct {
	Category    ErrorCategory `json:"category" validate:"required"`
	System      SubjectSystem `json:"system" validate:"required"`
	Topic       string        `json:"topic" validate:"omitempty,max=200"`
	QuestionRef string        `json:"question_ref" validate:"omitempty,max=100"`
	Reflection  string        `json:"reflection" validate:"omitempty,max=2000"`
}

// Assessment作成リクエストDTO
type CreateAssessmentRequest struct {
	Type          AssessmentType  `json:"type" validate:"required"`
	TakenAt       time.Time       `json:"taken_at" validate:"required"`
	Score         *float64        `json:"score,omitempty" validate:"omitempty,min=0"`
	Accuracy      *float64        `json:"accuracy,omitempty" validate:"omitempty,min=0,max=1"`
	QuestionCount *int            `json:"question_count,omitempty" validate:"omitempty,min=0"`
	Notes         string          `json:"notes" validate:"omitempty,max=4000"`
	ErrorLogs     []ErrorLogInput `json:"error_logs" validate:"omitempty,dive"`
}

// Assessment更新（全置換）リクエストDTO。
// 履歴は分岐させないため、更新は常にフィールドと誤答タグの総入れ替え。
type PutAssessmentRequest struct {
	Type          AssessmentType  `json:"type" validate:"required"`
	TakenAt       time.Time       `json:"taken_at" validate:"required"`
	Score         *float64        `json:"score,omitempty" validate:"omitempty,min=0"`
	Accuracy      *float64        `json:"accuracy,omitempty" validate:"omitempty,min=0,max=1"`
	QuestionCount *int            `json:"question_count,omitempty" validate:"omitempty,min=0"`
	Notes         string          `json:"notes" validate:"omitempty,max=4000"`
	ErrorLogs     []ErrorLogInput `json:"error_logs" validate:"omitempty,dive"`
}

// CSVインポート結果DTO
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
