// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "ExamRiskTracker"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultHistoryPageSize = 50

	// リスク区分のしきい値 (機関設定が無い場合の既定)
	DefaultRiskThresholdLow    = 25.0
	DefaultRiskThresholdMedium = 50.0
	DefaultRiskThresholdHigh   = 75.0

	// 学習計画の既定値
	DefaultWeeklyHours  = 20.0
	DefaultDailyHourCap = 4.0
)
