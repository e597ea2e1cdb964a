// internal/service/policy.go
package service

import (
	"github.com/google/uuid"

	"examrisk/internal/model"
)

// Action はリソースに対する操作の種別
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// リソース種別
const (
	ResourceStudent    = "student"
	ResourceAssessment = "assessment"
	ResourceRisk       = "risk"
	ResourceExam       = "exam"
	ResourcePlan       = "plan"
)

// Resource は認可判定の対象。学生に紐付くリソースは StudentID を持つ。
type Resource struct {
	Type          string    // ResourceStudent など
	StudentID     uuid.UUID // 対象リソースの所有学生 (学生に紐付かない場合は uuid.Nil)
	InstitutionID uuid.UUID // 対象リソースの所属機関
}

// Authorize は (principal, resource, action) の1点で許可・拒否を決める
// ポリシー評価関数。ルートごとに散在していたロールチェックをここに集約し、
// HTTPルーティングと独立にテストする。
//
// ルール:
//   - admin は全リソースにアクセスできる
//   - advisor は自機関のリソースに読み書きできる
//   - student は自分自身のリソースのみ読み書きできる
func Authorize(p model.Principal, res Resource, action Action) error {
	switch p.Role {
	case model.RoleAdmin:
		return nil
	case model.RoleAdvisor:
		if res.InstitutionID == p.InstitutionID {
			return nil
		}
		return model.ErrForbidden
	case model.RoleStudent:
		if res.InstitutionID != p.InstitutionID || res.StudentID != p.UserID {
			return model.ErrForbidden
		}
		// 学生レコード自体の作成・削除はスタッフの操作。学生本人は参照のみ。
		// 試験予定の登録・結果記録も同様にスタッフの操作。
		if (res.Type == ResourceStudent || res.Type == ResourceExam) && action == ActionWrite {
			return model.ErrForbidden
		}
		return nil
	default:
		return model.ErrForbidden
	}
}
