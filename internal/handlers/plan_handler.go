// internal/handlers/plan_handler.go
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

	"github.com/go-chi/chi/v5"
)

type PlanHandler struct {
	service service.PlanService
	logger  *slog.Logger
}

func NewPlanHandler(s service.PlanService, logger *slog.Logger) *PlanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanHandler{
		service: s,
		logger:  logger,
	}
}

// PostPlan は学習計画を生成するためのハンドラ。
// 未受験の試験が無い場合は 422 を返す。
func (h *PlanHandler) PostPlan(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostPlan"))

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

	var req model.GeneratePlanRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	plan, err := h.service.GeneratePlan(r.Context(), principal, studentID, &req)
	if err != nil {
		logger.Error("Error generating plan in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Plan generated successfully", slog.String("plan_id", plan.PlanID.String()), slog.Int("weeks", len(plan.Weeks)))
	webutil.RespondWithJSON(w, http.StatusCreated, plan, logger)
}

// GetPlans は学生の学習計画一覧を取得するためのハンドラ
func (h *PlanHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPlans"))

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

	plans, err := h.service.ListPlans(r.Context(), principal, studentID)
	if err != nil {
		logger.Error("Error listing plans in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if plans == nil {
		plans = []model.StudyPlan{}
	}
	logger.Info("Plans listed successfully", slog.Int("count", len(plans)))
	webutil.RespondWithJSON(w, http.StatusOK, plans, logger)
}

// GetPlan は特定の学習計画 (週次の内訳込み) を取得するためのハンドラ
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPlan"))

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
	planID, ok := parseUUIDParam(w, r, logger, "plan_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("plan_id", planID.String()))

	plan, err := h.service.GetPlan(r.Context(), principal, studentID, planID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Plan not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting plan from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Plan retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, plan, logger)
}

// PatchPlanStatus は学習計画のステータスを変更するためのハンドラ。
// 許可されない遷移は 409 を返す。
func (h *PlanHandler) PatchPlanStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchPlanStatus"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PatchPlanStatus", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	planID, ok := parseUUIDParam(w, r, logger, "plan_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("plan_id", planID.String()))

	var req model.UpdatePlanStatusRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchPlanStatus request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	plan, err := h.service.UpdateStatus(r.Context(), principal, studentID, planID, req.Status)
	if err != nil {
		logger.Error("Error updating plan status in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Plan status updated successfully", slog.String("status", string(plan.Status)))
	webutil.RespondWithJSON(w, http.StatusOK, plan, logger)
}

// PutWeekProgress は週ごとの進捗を更新するためのハンドラ
func (h *PlanHandler) PutWeekProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutWeekProgress"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PutWeekProgress", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	planID, ok := parseUUIDParam(w, r, logger, "plan_id")
	if !ok {
		return
	}

	weekStr := chi.URLParam(r, "week_number")
	weekNumber, err := strconv.Atoi(weekStr)
	if err != nil || weekNumber < 1 {
		logger.Warn("Invalid week number in URL", slog.String("week_number", weekStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "week_numberの形式が正しくありません。", "week_number", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(
		slog.String("student_id", studentID.String()),
		slog.String("plan_id", planID.String()),
		slog.Int("week_number", weekNumber),
	)

	var req model.UpdateWeekProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PutWeekProgress request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	week, err := h.service.UpdateWeekProgress(r.Context(), principal, studentID, planID, weekNumber, &req)
	if err != nil {
		logger.Error("Error updating week progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Week progress updated successfully", slog.Bool("is_completed", week.IsCompleted))
	webutil.RespondWithJSON(w, http.StatusOK, week, logger)
}

// DeletePlan は学習計画を削除するためのハンドラ
func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeletePlan"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for DeletePlan", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	planID, ok := parseUUIDParam(w, r, logger, "plan_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("plan_id", planID.String()))

	if err := h.service.DeletePlan(r.Context(), principal, studentID, planID); err != nil {
		logger.Error("Error deleting plan in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Plan deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// PostSimulate は試験日・学習時間変更のwhat-ifシミュレーションを行うハンドラ。
// 結果は保存されない。
func (h *PlanHandler) PostSimulate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSimulate"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PostSimulate", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	var req model.SimulateAdjustmentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PostSimulate request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	result, err := h.service.Simulate(r.Context(), principal, studentID, &req)
	if err != nil {
		logger.Error("Error simulating adjustment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Simulation completed", slog.Float64("projected_risk_delta", result.ProjectedRiskDelta))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
