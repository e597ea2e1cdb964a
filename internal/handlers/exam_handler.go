// internal/handlers/exam_handler.go
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

type ExamHandler struct {
	service service.ExamService
	logger  *slog.Logger
}

func NewExamHandler(s service.ExamService, logger *slog.Logger) *ExamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExamHandler{
		service: s,
		logger:  logger,
	}
}

// PostExam は受験予定の試験を登録するためのハンドラ
func (h *ExamHandler) PostExam(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostExam"))

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

	var req model.CreateExamRequest
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

	exam, err := h.service.CreateExam(r.Context(), principal, studentID, &req)
	if err != nil {
		logger.Error("Error creating exam in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Exam created successfully", slog.String("exam_id", exam.ExamID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, exam, logger)
}

// GetExams は学生の試験一覧を取得するためのハンドラ
func (h *ExamHandler) GetExams(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExams"))

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

	exams, err := h.service.ListExams(r.Context(), principal, studentID)
	if err != nil {
		logger.Error("Error listing exams in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if exams == nil {
		exams = []model.Exam{}
	}
	logger.Info("Exams listed successfully", slog.Int("count", len(exams)))
	webutil.RespondWithJSON(w, http.StatusOK, exams, logger)
}

// GetExam は特定の試験を取得するためのハンドラ
func (h *ExamHandler) GetExam(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExam"))

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
	examID, ok := parseUUIDParam(w, r, logger, "exam_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("exam_id", examID.String()))

	exam, err := h.service.GetExam(r.Context(), principal, studentID, examID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Exam not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting exam from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Exam retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, exam, logger)
}

// PatchExam は試験の日程・重み・結果を部分更新するためのハンドラ
func (h *ExamHandler) PatchExam(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchExam"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PatchExam", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	examID, ok := parseUUIDParam(w, r, logger, "exam_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("exam_id", examID.String()))

	var req model.PatchExamRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchExam request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	exam, err := h.service.PatchExam(r.Context(), principal, studentID, examID, &req)
	if err != nil {
		logger.Error("Error patching exam in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Exam patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, exam, logger)
}

// DeleteExam は試験を削除するためのハンドラ
func (h *ExamHandler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteExam"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for DeleteExam", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	examID, ok := parseUUIDParam(w, r, logger, "exam_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("exam_id", examID.String()))

	if err := h.service.DeleteExam(r.Context(), principal, studentID, examID); err != nil {
		logger.Error("Error deleting exam in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Exam deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
