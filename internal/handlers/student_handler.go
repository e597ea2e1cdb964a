// internal/handlers/student_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"examrisk/internal/middleware"
	"examrisk/internal/model"
	"examrisk/internal/service"
	"examrisk/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type StudentHandler struct {
	service service.StudentService
	logger  *slog.Logger
}

func NewStudentHandler(s service.StudentService, logger *slog.Logger) *StudentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentHandler{
		service: s,
		logger:  logger,
	}
}

// PostStudent は新しい学生リソースを作成するためのハンドラ
func (h *StudentHandler) PostStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostStudent"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("institution_id", principal.InstitutionID.String()))

	var req model.CreateStudentRequest
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

	student, err := h.service.CreateStudent(r.Context(), principal, &req)
	if err != nil {
		logger.Error("Error creating student in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Student created successfully", slog.String("student_id", student.StudentID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, student, logger)
}

// GetStudents は学生リソースの一覧を取得するためのハンドラ
func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudents"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("institution_id", principal.InstitutionID.String()))

	students, err := h.service.ListStudents(r.Context(), principal)
	if err != nil {
		logger.Error("Error listing students in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if students == nil {
		students = []*model.Student{}
	}
	logger.Info("Students listed successfully", slog.Int("count", len(students)))
	webutil.RespondWithJSON(w, http.StatusOK, students, logger)
}

// GetStudent は特定の学生リソースを取得するためのハンドラ
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudent"))

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

	student, err := h.service.GetStudent(r.Context(), principal, studentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Student not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting student from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Student retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, student, logger)
}

// PatchStudent は特定の学生リソースの一部を更新するためのハンドラ
func (h *StudentHandler) PatchStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchStudent"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PatchStudent", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	var req model.PatchStudentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchStudent request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	student, err := h.service.PatchStudent(r.Context(), principal, studentID, &req)
	if err != nil {
		logger.Error("Error patching student in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Student patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, student, logger)
}

// DeleteStudent は特定の学生リソースを削除するためのハンドラ
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteStudent"))

	principal, err := middleware.GetPrincipalFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for DeleteStudent", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
		webutil.HandleError(w, logger, appErr)
		return
	}

	studentID, ok := parseUUIDParam(w, r, logger, "student_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	if err := h.service.DeleteStudent(r.Context(), principal, studentID); err != nil {
		logger.Error("Error deleting student in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Student deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// parseUUIDParam はURLパラメータをUUIDとして取り出す共通処理。
// 失敗時はエラーレスポンスまで書いて false を返す。
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", slog.String("param", name), slog.String("value", raw), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}

// handleValidationError はvalidatorのエラーを翻訳してクライアントに返す共通処理
func handleValidationError(w http.ResponseWriter, logger *slog.Logger, err error, req interface{}) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

		// 最初のエラーを代表としてクライアントに返す
		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(webutil.Trans)

		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(),
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger.Error("Unexpected error during validation", slog.Any("error", err))
	webutil.HandleError(w, logger, err)
}
