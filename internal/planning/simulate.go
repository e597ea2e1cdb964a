package planning

import (
	"fmt"
	"time"

	"examrisk/internal/model"
)

// what-ifシミュレーションの固定係数。スコアラの再実行ではなく、
// UIの即時フィードバック用の概算ヒューリスティクス。
const (
	simulateBaselineWeeklyHours = 20.0
	simulateHoursImpact         = 10.0 // 週あたり学習時間が基準から全量ずれた場合のリスク変動幅
	simulateEarlierExamPenalty  = 5.0
	simulateLaterExamRelief     = 3.0
)

// Adjustment はシミュレーション入力。いずれのフィールドも任意。
type Adjustment struct {
	CurrentExamDate *time.Time
	NewExamDate     *time.Time
	HoursPerWeek    *float64
}

// SimulateAdjustment は試験日変更・学習時間変更のリスクスコアへの影響を概算します。
// 結果はあくまで参考値 (advisory) で、保証値ではない。確定的な評価が必要なら
// scoring.ComputeRiskProfile を再実行すること。
func SimulateAdjustment(adj Adjustment) model.SimulationResult {
	result := model.SimulationResult{Recommendations: []string{}}

	if adj.CurrentExamDate != nil && adj.NewExamDate != nil && !adj.NewExamDate.Equal(*adj.CurrentExamDate) {
		if adj.NewExamDate.Before(*adj.CurrentExamDate) {
			result.ProjectedRiskDelta += simulateEarlierExamPenalty
			result.Recommendations = append(result.Recommendations,
				"試験日が早まると準備期間が短くなります。週あたりの学習時間の増加を検討してください。")
		} else {
			result.ProjectedRiskDelta -= simulateLaterExamRelief
			result.Recommendations = append(result.Recommendations,
				"試験日が後ろ倒しになり準備期間に余裕ができます。計画の再生成を推奨します。")
		}
	}

	if adj.HoursPerWeek != nil {
		// 基準20時間からの差分が比例的に効く。減らせばリスク増、増やせばリスク減。
		delta := (simulateBaselineWeeklyHours - *adj.HoursPerWeek) / simulateBaselineWeeklyHours * simulateHoursImpact
		result.ProjectedRiskDelta += delta
		if delta > 0 {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("週%.1f時間では学習量が不足する見込みです。可能なら週%.0f時間以上を確保してください。",
					*adj.HoursPerWeek, simulateBaselineWeeklyHours))
		} else if delta < 0 {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("週%.1f時間確保できればリスクの低下が見込めます。", *adj.HoursPerWeek))
		}
	}

	if len(result.Recommendations) == 0 {
		result.Recommendations = append(result.Recommendations, "変更内容によるリスクへの影響はありません。")
	}

	return result
}
