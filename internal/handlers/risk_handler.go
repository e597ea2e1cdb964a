// internal/handlers/risk_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"examrisk/internal/middleware"
	"examrisk/internal/model"
	"examrisk/internal/service"
	"examrisk/internal/webutil"
)

type RiskHandler struct {
	service service.RiskService
	logger  *slog.Logger
}

func NewRiskHandler(s service.RiskService, logger *slog.Logger) *RiskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RiskHandler{
		service: s,
		logger:  logger,
	}
}

// GetRisk は学生の現在のリスクプロファイルを取得するためのハンドラ
func (h *RiskHandler) GetRisk(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRisk"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	profile, err := h.service.GetProfile(r.Context(), principal, studentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Risk profile not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting risk profile from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Risk profile retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// PostRisk は全履歴からリスクプロファイルを再計算して保存するためのハンドラ
func (h *RiskHandler) PostRisk(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostRisk"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PostRisk", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	profile, err := h.service.Recalculate(r.Context(), principal, studentID)
	if err != nil {
		logger.Error("Error recalculating risk in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Risk recalculated successfully",
		slog.Float64("score", profile.OverallScore),
		slog.String("tier", string(profile.Tier)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// GetRiskHistory はリスク履歴 (記録日時の降順、ページング付き) を取得するためのハンドラ
func (h *RiskHandler) GetRiskHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRiskHistory"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			logger.Warn("Invalid page query parameter", slog.String("page", raw))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "pageの形式が正しくありません。", "page", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		page = parsed
	}

	history, err := h.service.GetHistory(r.Context(), principal, studentID, page)
	if err != nil {
		logger.Error("Error getting risk history from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if history == nil {
		history = []model.RiskHistory{}
	}
	logger.Info("Risk history retrieved successfully", slog.Int("count", len(history)), slog.Int("page", page))
	webutil.RespondWithJSON(w, http.StatusOK, history, logger)
}
