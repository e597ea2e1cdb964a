// internal/handlers/assessment_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"examrisk/internal/middleware"
	"examrisk/internal/model"
	"examrisk/internal/service"
	"examrisk/internal/webutil"
)

type AssessmentHandler struct {
	service service.AssessmentService
	logger  *slog.Logger
}

func NewAssessmentHandler(s service.AssessmentService, logger *slog.Logger) *AssessmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssessmentHandler{
		service: s,
		logger:  logger,
	}
}

// PostAssessment は受験記録を登録するためのハンドラ。
// 登録と同時にリスクプロファイルが再計算される。
func (h *AssessmentHandler) PostAssessment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAssessment"))

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

	var req model.CreateAssessmentRequest
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

	assessment, err := h.service.CreateAssessment(r.Context(), principal, studentID, &req)
	if err != nil {
		logger.Error("Error creating assessment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assessment created successfully", slog.String("assessment_id", assessment.AssessmentID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, assessment, logger)
}

// GetAssessments は受験履歴 (日付降順) を取得するためのハンドラ
func (h *AssessmentHandler) GetAssessments(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAssessments"))

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

	assessments, err := h.service.ListAssessments(r.Context(), principal, studentID)
	if err != nil {
		logger.Error("Error listing assessments in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if assessments == nil {
		assessments = []model.Assessment{}
	}
	logger.Info("Assessments listed successfully", slog.Int("count", len(assessments)))
	webutil.RespondWithJSON(w, http.StatusOK, assessments, logger)
}

// GetAssessment は特定の受験記録を取得するためのハンドラ
func (h *AssessmentHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAssessment"))

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
	assessmentID, ok := parseUUIDParam(w, r, logger, "assessment_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("assessment_id", assessmentID.String()))

	assessment, err := h.service.GetAssessment(r.Context(), principal, studentID, assessmentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Assessment not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting assessment from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assessment retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, assessment, logger)
}

// PutAssessment は受験記録を全置換するためのハンドラ。
// 履歴は分岐させず、フィールドと誤答タグを入れ替えて再計算する。
func (h *AssessmentHandler) PutAssessment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutAssessment"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PutAssessment", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	assessmentID, ok := parseUUIDParam(w, r, logger, "assessment_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("assessment_id", assessmentID.String()))

	var req model.PutAssessmentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PutAssessment request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	assessment, err := h.service.PutAssessment(r.Context(), principal, studentID, assessmentID, &req)
	if err != nil {
		logger.Error("Error putting assessment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assessment put successfully")
	webutil.RespondWithJSON(w, http.StatusOK, assessment, logger)
}

// DeleteAssessment は受験記録を削除するためのハンドラ
func (h *AssessmentHandler) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAssessment"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for DeleteAssessment", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	assessmentID, ok := parseUUIDParam(w, r, logger, "assessment_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("assessment_id", assessmentID.String()))

	if err := h.service.DeleteAssessment(r.Context(), principal, studentID, assessmentID); err != nil {
		logger.Error("Error deleting assessment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assessment deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// ImportAssessments はCSVボディから受験記録を一括登録するためのハンドラ。
// ヘッダは type,taken_at,score,accuracy,question_count,notes の固定契約。
func (h *AssessmentHandler) ImportAssessments(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ImportAssessments"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for ImportAssessments", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	result, err := h.service.ImportCSV(r.Context(), principal, studentID, r.Body)
	if err != nil {
		logger.Error("Error importing assessments in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assessments imported", slog.Int("imported", result.Imported), slog.Int("skipped", result.Skipped))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
