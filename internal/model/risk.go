package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RiskTier はリスク区分（low < medium < high < critical）
type RiskTier string

const (
	TierLow      RiskTier = "low"
	TierMedium   RiskTier = "medium"
	TierHigh     RiskTier = "high"
	TierCritical RiskTier = "critical"
)

// TrendDirection は直近30日の成績トレンド
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
	TrendUnknown   TrendDirection = "unknown"
)

// CategoryCounts はエラーカテゴリごとの件数（JSONカラムとして保存）
type CategoryCounts map[ErrorCategory]int

func (c CategoryCounts) Value() (driver.Value, error) {
	if c == nil {
		c = CategoryCounts{}
	}
	return json.Marshal(c)
}

func (c *CategoryCounts) Scan(value interface{}) error {
	return scanJSON(value, c)
}

// SystemCounts は系統ごとの誤答件数ヒストグラム（疎、JSONカラムとして保存）
type SystemCounts map[SubjectSystem]int

func (s SystemCounts) Value() (driver.Value, error) {
	if s == nil {
		s = SystemCounts{}
	}
	return json.Marshal(s)
}

func (s *SystemCounts) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func scanJSON(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T for JSON scan", value)
	}
}

// RiskProfile は学生ごとの最新のリスク算出結果スナップショット（1:1、上書き更新）。
// score と tier は算出時点のしきい値設定と常に整合する。古いプロファイルも
// 有効なデータだが、Assessment登録のたびに再計算される。
type RiskProfile struct {
	ProfileID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"profile_id"`
	StudentID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_risk_profile_student" json:"student_id"`
	OverallScore      float64        `gorm:"not null" json:"overall_score"` // 0-100
	Tier              RiskTier       `gorm:"type:varchar(10);not null" json:"tier"`
	CategoryCounts    CategoryCounts `gorm:"type:jsonb" json:"category_counts"`
	SystemCounts      SystemCounts   `gorm:"type:jsonb" json:"system_counts"`
	Trend             TrendDirection `gorm:"type:varchar(10);not null" json:"trend"`
	RecentPerformance *float64       `json:"recent_performance,omitempty"` // 直近30日の平均正答率, データ無しはnull
	TotalErrors       int            `gorm:"not null" json:"total_errors"`
	CalculatedAt      time.Time      `gorm:"not null" json:"calculated_at"`
	CreatedAt         time.Time      `json:"-"`
	UpdatedAt         time.Time      `json:"-"`
}

func (RiskProfile) TableName() string {
	return "risk_profiles"
}

// RiskHistory は再計算ごとに追記される履歴行。更新・削除はしない。
type RiskHistory struct {
	HistoryID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"history_id"`
	StudentID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"student_id"`
	OverallScore      float64        `gorm:"not null" json:"overall_score"`
	Tier              RiskTier       `gorm:"type:varchar(10);not null" json:"tier"`
	Trend             TrendDirection `gorm:"type:varchar(10);not null" json:"trend"`
	RecentPerformance *float64       `json:"recent_performance,omitempty"`
	TotalErrors       int            `gorm:"not null" json:"total_errors"`
	RecordedAt        time.Time      `gorm:"not null;index" json:"recorded_at"`
}

func (RiskHistory) TableName() string {
	return "risk_history"
}

// RiskThresholds はリスク区分の境界設定（機関ごと、config経由で供給）。
// Low < Medium < High の3値が4区分を仕切る。
type RiskThresholds struct {
	Low    float64
	Medium float64
	High   float64
}

// Validate は境界値が [0,100] 内で狭義単調増加であることを確認します
func (t RiskThresholds) Validate() error {
	if t.Low < 0 || t.High > 100 {
		return ErrInvalidInput
	}
	if !(t.Low < t.Medium && t.Medium < t.High) {
		return ErrInvalidInput
	}
	return nil
}
