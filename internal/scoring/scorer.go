// Package scoring は学生の受験履歴からリスクプロファイルを算出する純粋な計算コアです。
// I/Oや永続化は一切行わない。結果の保存と履歴追記は呼び出し側 (service.RiskService) の契約。
package scoring

import (
	"math"
	"time"

	"examrisk/internal/model"
)

// スコアの各項の上限。5項の加算後に [0,100] へクランプする。
const (
	errorRateTermMax     = 40.0
	recentPerfTermMax    = 30.0
	diversityTermMax     = 15.0
	concentrationTermMax = 15.0
	trendAdjustment      = 10.0
)

// trendWindow は「直近」とみなす期間
const trendWindow = 30 * 24 * time.Hour

// trendDelta はトレンド判定の不感帯。全期間平均との差がこれを超えたら improving / declining。
const trendDelta = 0.05

// Result は1回の算出結果のスナップショット
type Result struct {
	OverallScore      float64
	Tier              model.RiskTier
	CategoryCounts    model.CategoryCounts
	SystemCounts      model.SystemCounts
	Trend             model.TrendDirection
	RecentPerformance *float64
	TotalErrors       int
	CalculatedAt      time.Time
}

// ComputeRiskProfile は受験履歴と機関のしきい値からリスクプロファイルを算出します。
// thresholds は呼び出し側で検証済み (RiskThresholds.Validate) であることが前提。
// 履歴ゼロ件はエラーではなく、スコア0・tier low・trend unknown の有効な結果を返す。
func ComputeRiskProfile(assessments []model.Assessment, thresholds model.RiskThresholds, now time.Time) Result {
	result := Result{
		CategoryCounts: model.CategoryCounts{},
		SystemCounts:   model.SystemCounts{},
		Trend:          model.TrendUnknown,
		CalculatedAt:   now,
	}

	if len(assessments) == 0 {
		// 履歴ゼロはしきい値設定によらず最低区分に固定する
		// (low しきい値が0だと tierFor(0) は medium になってしまう)
		result.Tier = model.TierLow
		return result
	}

	// 1. 誤答タグをカテゴリ別・系統別に集計
	totalErrors := 0
	totalQuestions := 0
	for _, a := range assessments {
		for _, e := range a.ErrorLogs {
			result.CategoryCounts[e.Category]++
			result.SystemCounts[e.System]++
			totalErrors++
		}
		if a.QuestionCount != nil {
			totalQuestions += *a.QuestionCount
		}
	}
	result.TotalErrors = totalErrors

	// 2. トレンド判定
	result.Trend, result.RecentPerformance = computeTrend(assessments, now)

	// 3. スコア = 5項の加算をクランプ
	score := errorRateTerm(totalErrors, totalQuestions) +
		recentPerformanceTerm(result.RecentPerformance) +
		diversityTerm(result.CategoryCounts) +
		concentrationTerm(result.SystemCounts, totalErrors)

	switch result.Trend {
	case model.TrendImproving:
		score -= trendAdjustment
	case model.TrendDeclining:
		score += trendAdjustment
	}

	result.OverallScore = clamp(score, 0, 100)

	// 4. 区分判定
	result.Tier = tierFor(result.OverallScore, thresholds)

	return result
}

// computeTrend は直近30日の平均正答率を全期間平均と比較してトレンドを決めます。
//
// 分母は意図的に非対称:
//   - 直近平均は正答率を持つレコードのみで平均する
//   - 全期間平均は正答率欠損を0として全件数で割る
//
// 元の設計の挙動をそのまま保存している (単純化して揃えないこと)。
func computeTrend(assessments []model.Assessment, now time.Time) (model.TrendDirection, *float64) {
	cutoff := now.Add(-trendWindow)

	recentSum := 0.0
	recentWithAccuracy := 0
	recentCount := 0
	allSum := 0.0
	for _, a := range assessments {
		if a.Accuracy != nil {
			allSum += *a.Accuracy
		}
		if a.TakenAt.After(cutoff) {
			recentCount++
			if a.Accuracy != nil {
				recentSum += *a.Accuracy
				recentWithAccuracy++
			}
		}
	}

	if recentCount == 0 || recentWithAccuracy == 0 {
		return model.TrendUnknown, nil
	}

	recent := recentSum / float64(recentWithAccuracy)
	overall := allSum / float64(len(assessments))

	trend := model.TrendStable
	switch diff := recent - overall; {
	case diff > trendDelta:
		trend = model.TrendImproving
	case diff < -trendDelta:
		trend = model.TrendDeclining
	}
	return trend, &recent
}

// errorRateTerm は出題数あたりの誤答率の項 (最大40点)
func errorRateTerm(totalErrors, totalQuestions int) float64 {
	if totalQuestions == 0 {
		return 0
	}
	return math.Min(errorRateTermMax, 100*float64(totalErrors)/float64(totalQuestions))
}

// recentPerformanceTerm は直近正答率の項 (最大30点)。データが無ければ0。
func recentPerformanceTerm(recent *float64) float64 {
	if recent == nil {
		return 0
	}
	return (1 - *recent) * recentPerfTermMax
}

// diversityTerm は誤答原因の多様性の項 (最大15点)。5カテゴリ中いくつ出現したか。
func diversityTerm(counts model.CategoryCounts) float64 {
	distinct := 0
	for _, c := range model.ErrorCategories {
		if counts[c] > 0 {
			distinct++
		}
	}
	return float64(distinct) / float64(len(model.ErrorCategories)) * diversityTermMax
}

// concentrationTerm は最多系統への誤答集中度の項 (最大15点)
func concentrationTerm(counts model.SystemCounts, totalErrors int) float64 {
	if totalErrors == 0 {
		return 0
	}
	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}
	return float64(maxCount) / float64(totalErrors) * concentrationTermMax
}

// tierFor はしきい値からリスク区分を決めます。
// 3つのしきい値が4区分を仕切り、区分名はしきい値名から1段ずれる
// (highしきい値以上が critical)。機関の設定UIと対になる意図的な対応で、
// バグではないので対称なマッピングに「修正」しないこと。
func tierFor(score float64, t model.RiskThresholds) model.RiskTier {
	switch {
	case score >= t.High:
		return model.TierCritical
	case score >= t.Medium:
		return model.TierHigh
	case score >= t.Low:
		return model.TierMedium
	default:
		return model.TierLow
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
