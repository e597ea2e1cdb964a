package model

import "github.com/google/uuid"

// Role は認証済みユーザーの役割
type Role string

const (
	RoleStudent Role = "student"
	RoleAdvisor Role = "advisor"
	RoleAdmin   Role = "admin"
)

// Principal は認証済みユーザーを表す明示的な値。
// リクエストコンテキストからミドルウェアが一度だけ取り出し、
// 以降はグローバルではなく引数として各レイヤに渡す。
type Principal struct {
	UserID        uuid.UUID
	InstitutionID uuid.UUID
	Role          Role
}

type ContextKey string

const (
	PrincipalKey ContextKey = "principal"
)
