package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"examrisk/internal/config"
	"examrisk/internal/model"
	"examrisk/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// 認証済みユーザーを model.Principal としてコンテキストにセットするミドルウェア。
// 以降のレイヤはフレームワークのセッションやグローバルではなく、
// この明示的な値を引数で受け取って認可判定を行う。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			// jwt.Parse は署名と有効期限(exp)の両方を検証してくれる
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("JWT auth failed: Unknown claims type or invalid token")
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			principal, err := principalFromClaims(claims)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid claims", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// principalFromClaims はJWTクレームから Principal を組み立てます。
// sub / institution_id / role の3クレームが必須。
func principalFromClaims(claims jwt.MapClaims) (model.Principal, error) {
	subject, err := claims.GetSubject()
	if err != nil {
		return model.Principal{}, err
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return model.Principal{}, err
	}

	instStr, _ := claims["institution_id"].(string)
	institutionID, err := uuid.Parse(instStr)
	if err != nil {
		return model.Principal{}, errors.New("institution_id claim missing or invalid")
	}

	roleStr, _ := claims["role"].(string)
	role := model.Role(roleStr)
	switch role {
	case model.RoleStudent, model.RoleAdvisor, model.RoleAdmin:
	default:
		return model.Principal{}, errors.New("role claim missing or invalid")
	}

	return model.Principal{
		UserID:        userID,
		InstitutionID: institutionID,
		Role:          role,
	}, nil
}

// GetPrincipalFromContext はコンテキストから認証済みユーザーを取得します。
func GetPrincipalFromContext(ctx context.Context) (model.Principal, error) {
	value, ok := ctx.Value(model.PrincipalKey).(model.Principal)
	if !ok {
		// ミドルウェアが正しく適用されていない等の内部エラー
		return model.Principal{}, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからユーザー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
