// helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"examrisk/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// テスト中のハンドラログは捨てる
var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newAdvisorPrincipal() model.Principal {
	return model.Principal{
		UserID:        uuid.New(),
		InstitutionID: uuid.New(),
		Role:          model.RoleAdvisor,
	}
}

// withPrincipal はJWTミドルウェアの代わりに認証済みユーザーを
// コンテキストへ注入するテスト用ミドルウェアを返す。
// nil を渡すと何も注入しない (未認証リクエストの再現)。
func withPrincipal(p *model.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p != nil {
				ctx := context.WithValue(r.Context(), model.PrincipalKey, *p)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// createRequest はJSONボディ付きのテストリクエストを作る。
// body が string の場合はそのまま送る (壊れたJSONのテスト用)。
func createRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(method, url, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// assertErrorCode はエラーレスポンスのcodeフィールドを検証する
func assertErrorCode(t *testing.T, body []byte, wantCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	err := json.Unmarshal(body, &errResp)
	require.NoError(t, err, "Failed to unmarshal error response body")
	assert.Equal(t, wantCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
}
