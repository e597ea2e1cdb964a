// Package planning は学習計画の生成コアです。scoring と同じく純粋な計算のみで、
// 永続化は呼び出し側 (service.PlanService) が行う。
package planning

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"examrisk/internal/model"
)

const (
	// 1時間あたりの目標問題数 (固定)
	questionsPerHour = 10

	// フォーカス系統のローテーション幅と対象数
	focusSystemWindow = 2
	topSystemCount    = 3

	// 試験が近い週とみなす境界 (これ以下は緊急度の高い文言になる)
	urgentWeeksUntil = 2
)

// Options は計画生成の入力パラメータ
type Options struct {
	StartDate    time.Time
	WeeklyHours  float64
	DailyHourCap float64 // 保存のみ。割り当ての上限クリップには未使用 (下記参照)
}

// BuildStudyPlan は未受験の試験リストとリスクプロファイルから週次の学習計画を組み立てます。
// 返る計画は status=draft。試験ゼロ件は ErrNoUpcomingExams、プロファイル未算出は
// ErrMissingRiskProfile、weeklyHours が非正なら ErrInvalidInput。
//
// DailyHourCap は計画に保存されるが、週割り当て時間のクリップや再配分には使っていない。
// 元の設計でも適用されておらず、仕様ギャップの可能性があるため黙って「直す」ことは
// せず挙動を保存している。
func BuildStudyPlan(exams []model.Exam, profile *model.RiskProfile, opts Options) (*model.StudyPlan, error) {
	if len(exams) == 0 {
		return nil, model.ErrNoUpcomingExams
	}
	if profile == nil {
		return nil, model.ErrMissingRiskProfile
	}
	if opts.WeeklyHours <= 0 {
		return nil, model.ErrInvalidInput
	}
	if opts.DailyHourCap <= 0 {
		opts.DailyHourCap = 4.0
	}

	// 試験ごとの優先度: 近くて重い試験とリスクの高い学生ほど時間を引き寄せる。
	// ハードな容量スケジューラではなくソフトな重み付けなので、
	// 週合計 × 週数 = weeklyHours × 週数 という保存則は成立しない。
	allocations := allocateExamTime(exams, profile.OverallScore, opts)

	totalWeeks := 0
	var endDate time.Time
	for _, a := range allocations {
		if a.weeksUntil > totalWeeks {
			totalWeeks = a.weeksUntil
		}
		if a.exam.ScheduledAt.After(endDate) {
			endDate = a.exam.ScheduledAt
		}
	}

	topSystems := topSystems(profile.SystemCounts, topSystemCount)
	topCategories := topCategories(profile.CategoryCounts, focusSystemWindow)

	plan := &model.StudyPlan{
		PlanID:       uuid.New(),
		StudentID:    profile.StudentID,
		Status:       model.PlanDraft,
		WeeklyHours:  opts.WeeklyHours,
		DailyHourCap: opts.DailyHourCap,
		StartDate:    opts.StartDate,
		EndDate:      endDate,
	}

	for week := 1; week <= totalWeeks; week++ {
		target := relevantExam(allocations, week)

		hours := opts.WeeklyHours
		var examID *uuid.UUID
		var examAt *time.Time
		weeksToExam := 0
		if target != nil {
			hours = target.weeklyHours
			id := target.exam.ExamID
			examID = &id
			at := target.exam.ScheduledAt
			examAt = &at
			weeksToExam = target.weeksUntil - (week - 1)
		}

		focus := rotateFocus(topSystems, week)

		plan.Weeks = append(plan.Weeks, model.StudyPlanWeek{
			WeekID:          uuid.New(),
			PlanID:          plan.PlanID,
			WeekNumber:      week,
			ExamID:          examID,
			AllocatedHours:  hours,
			TargetQuestions: int(math.Round(hours * questionsPerHour)),
			FocusSystems:    focus,
			FocusCategories: topCategories,
			Recommendation:  buildRecommendation(examAt, weeksToExam, focus, topCategories, profile.Tier),
		})
	}

	return plan, nil
}

// examAllocation は1試験分の割り当て計算の中間結果
type examAllocation struct {
	exam        model.Exam
	weeksUntil  int
	weeklyHours float64
}

func allocateExamTime(exams []model.Exam, riskScore float64, opts Options) []examAllocation {
	allocations := make([]examAllocation, 0, len(exams))
	totalPriority := 0.0
	priorities := make([]float64, len(exams))

	for i, e := range exams {
		weeks := weeksUntil(opts.StartDate, e.ScheduledAt)
		p := 2*e.ContentWeight/float64(weeks) + riskScore/100
		priorities[i] = p
		totalPriority += p
		allocations = append(allocations, examAllocation{exam: e, weeksUntil: weeks})
	}

	// 全試験の重みが0かつリスクスコアも0だと優先度の合計が0になる。
	// その場合は均等割りにフォールバックする。
	if totalPriority == 0 {
		for i := range allocations {
			allocations[i].weeklyHours = opts.WeeklyHours / float64(len(allocations))
		}
		return allocations
	}

	for i := range allocations {
		allocations[i].weeklyHours = priorities[i] / totalPriority * opts.WeeklyHours
	}
	return allocations
}

// weeksUntil は開始日から試験日までの週数 (切り上げ、最小1)
func weeksUntil(start, examDate time.Time) int {
	days := examDate.Sub(start).Hours() / 24
	weeks := int(math.Ceil(days / 7))
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

// relevantExam はその週に紐付く試験 = まだ先にある試験のうち最も近いもの。
// 該当が無い週は nil (試験の無い消化週)。
func relevantExam(allocations []examAllocation, week int) *examAllocation {
	var best *examAllocation
	for i := range allocations {
		a := &allocations[i]
		if a.weeksUntil < week {
			continue
		}
		if best == nil || a.weeksUntil < best.weeksUntil {
			best = a
		}
	}
	return best
}

// topSystems は誤答数の多い順に最大n系統を返します。同数は系統名で安定化。
func topSystems(counts model.SystemCounts, n int) []model.SubjectSystem {
	type entry struct {
		system model.SubjectSystem
		count  int
	}
	entries := make([]entry, 0, len(counts))
	for s, c := range counts {
		if c > 0 {
			entries = append(entries, entry{s, c})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].system < entries[j].system
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	systems := make([]model.SubjectSystem, len(entries))
	for i, e := range entries {
		systems[i] = e.system
	}
	return systems
}

// topCategories は件数の多い順に最大n件のエラーカテゴリを返します。
// 計画全体で固定 (週ごとのローテーションはしない)。
func topCategories(counts model.CategoryCounts, n int) model.CategoryList {
	type entry struct {
		category model.ErrorCategory
		count    int
	}
	entries := make([]entry, 0, len(counts))
	for c, cnt := range counts {
		if cnt > 0 {
			entries = append(entries, entry{c, cnt})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].category < entries[j].category
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	categories := make(model.CategoryList, len(entries))
	for i, e := range entries {
		categories[i] = e.category
	}
	return categories
}

// rotateFocus は上位系統リストに幅2の窓を (week-1) mod len で回し、
// 毎週同じ2系統に固まらないようにします。[A,B,C] なら
// week1=[A,B], week2=[B,C], week3=[C,A], week4=[A,B] の周期3。
func rotateFocus(systems []model.SubjectSystem, week int) model.SystemList {
	if len(systems) == 0 {
		return model.SystemList{}
	}
	if len(systems) == 1 {
		return model.SystemList{systems[0]}
	}
	start := (week - 1) % len(systems)
	focus := model.SystemList{systems[start]}
	next := systems[(start+1)%len(systems)]
	if next != systems[start] {
		focus = append(focus, next)
	}
	return focus
}

// カテゴリごとの定型アドバイス文言
var categoryAdvice = map[model.ErrorCategory]string{
	model.CategoryKnowledgeDeficit: "知識不足の誤答が目立ちます。演習前に該当分野の基礎知識の確認を。",
	model.CategoryMisread:          "問題文の読み違いが多めです。設問の要求を下線でマークしてから解答を。",
	model.CategoryPrematureClosure: "早合点による誤答があります。選択肢を最後まで検討してから確定を。",
	model.CategoryTimeManagement:   "時間配分に課題があります。1問あたりの目標時間を決めて演習を。",
	model.CategoryStrategyError:    "解答戦略の誤りが見られます。消去法など解法の型を意識して。",
}

// buildRecommendation は週のアドバイス文を決定的に組み立てます。
// 試験が近い週は緊急度の高い文言、遠い週は基礎固めの文言になる。
func buildRecommendation(examAt *time.Time, weeksToExam int, focus model.SystemList, categories model.CategoryList, tier model.RiskTier) string {
	var b strings.Builder

	if examAt == nil {
		b.WriteString("対象試験の無い週です。これまでの弱点分野の総復習に充ててください。")
	} else if weeksToExam <= urgentWeeksUntil {
		fmt.Fprintf(&b, "試験まで残り%d週です。新しい範囲には手を広げず、実戦形式の演習と弱点の最終確認を優先してください。", weeksToExam)
	} else {
		fmt.Fprintf(&b, "試験まで%d週あります。基礎固めの時期なので、弱点分野を問題演習で底上げしてください。", weeksToExam)
	}

	if len(focus) > 0 {
		names := make([]string, len(focus))
		for i, s := range focus {
			names[i] = string(s)
		}
		fmt.Fprintf(&b, " 今週の重点分野: %s。", strings.Join(names, ", "))
	}

	for _, c := range categories {
		if advice, ok := categoryAdvice[c]; ok {
			b.WriteString(" " + advice)
		}
	}

	if tier == model.TierHigh || tier == model.TierCritical {
		b.WriteString(" リスク区分が高いため、アドバイザーとの週次面談の設定を推奨します。")
	}

	return b.String()
}
