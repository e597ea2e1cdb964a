//go:generate mockery --name AssessmentService --structname MockAssessmentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"examrisk/internal/middleware"
	"examrisk/internal/model"
	"examrisk/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentService interface {
	CreateAssessment(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.CreateAssessmentRequest) (*model.Assessment, error)
	GetAssessment(ctx context.Context, principal model.Principal, studentID, assessmentID uuid.UUID) (*model.Assessment, error)
	ListAssessments(ctx context.Context, principal model.Principal, studentID uuid.UUID) ([]model.Assessment, error)
	PutAssessment(ctx context.Context, principal model.Principal, studentID, assessmentID uuid.UUID, req *model.PutAssessmentRequest) (*model.Assessment, error)
	DeleteAssessment(ctx context.Context, principal model.Principal, studentID, assessmentID uuid.UUID) error
	// ImportCSV は固定ヘッダのCSVからAssessmentを一括登録する。
	// 列マッピングの推測はスコープ外 (ヘッダ契約に従わない行はスキップして報告)。
	ImportCSV(ctx context.Context, principal model.Principal, studentID uuid.UUID, r io.Reader) (*model.ImportResult, error)
}

type assessmentService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
	assessRepo  repository.AssessmentRepository
	riskService RiskService
}

func NewAssessmentService(db *gorm.DB, studentRepo repository.StudentRepository, assessRepo repository.AssessmentRepository, riskService RiskService) AssessmentService {
	return &assessmentService{
		db:          db,
		studentRepo: studentRepo,
		assessRepo:  assessRepo,
		riskService: riskService,
	}
}

func (s *assessmentService) CreateAssessment(ctx context.Context, principal model.Principal, studentID uuid.UUID, req *model.CreateAssessmentRequest) (*model.Assessment, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	res := Resource{Type: ResourceAssessment, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	if !req.Type.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "種別の値が正しくありません。", "type", model.ErrInvalidInput)
	}
	if err := validateErrorLogInputs(req.ErrorLogs); err != nil {
		return nil, err
	}

	var created *model.Assessment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.studentRepo.FindByID(ctx, tx, principal.InstitutionID, studentID); err != nil {
			return err
		}

		assessment := &model.Assessment{
			AssessmentID:  uuid.New(),
			StudentID:     studentID,
			Type:          req.Type,
			TakenAt:       req.TakenAt,
			Score:         req.Score,
			Accuracy:      req.Accuracy,
			QuestionCount: req.QuestionCount,
			Notes:         req.Notes,
			ErrorLogs:     buildErrorLogs(uuid.Nil, req.ErrorLogs),
		}
		for i := range assessment.ErrorLogs {
			assessment.ErrorLogs[i].AssessmentID = assessment.AssessmentID
		}
		if err := s.assessRepo.Create(ctx, tx, assessment); err != nil {
			logger.Error("Error creating assessment in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "受験記録の登録に失敗しました。", "", model.ErrInternalServer)
		}

		// 新しい受験記録が入るたびにプロファイルを再計算する (同一トランザクション)
		if _, err := s.riskService.RecalculateInTx(ctx, tx, studentID, time.Now()); err != nil {
			logger.Error("Error recalculating risk in transaction", "error", err)
			return err
		}

		created = assessment
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Assessment created", "assessment_id", created.AssessmentID, "error_logs", len(created.ErrorLogs))
	return created, nil
}

func (s *assessmentService) GetAssessment(ctx context.Context, principal model.Principal, studentID, assessmentID uuid.UUID) (*model.Assessment, error) {
	res := Resource{Type: ResourceAssessment, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}
	if _, err := s.studentRepo.FindByID(ctx, s.db, principal.InstitutionID, studentID); err != nil {
		return nil, err
	}
	return s.assessRepo.FindByID(ctx, s.db, studentID, assessmentID)
}

func (s *assessmentService) ListAssessments(ctx context.Context, principal model.Principal, studentID uuid.UUID) ([]model.Assessment, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	res := Resource{Type: ResourceAssessment, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionRead); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}
	if _, err := s.studentRepo.FindByID(ctx, s.db, principal.InstitutionID, studentID); err != nil {
		return nil, err
	}

	assessments, err := s.assessRepo.FindHistoryByStudent(ctx, s.db, studentID)
	if err != nil {
		logger.Error("Failed to list assessments from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "受験履歴の取得に失敗しました。", "", err)
	}
	return assessments, nil
}

func (s *assessmentService) PutAssessment(ctx context.Context, principal model.Principal, studentID, assessmentID uuid.UUID, req *model.PutAssessmentRequest) (*model.Assessment, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "assessment_id", assessmentID)

	res := Resource{Type: ResourceAssessment, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	if !req.Type.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "種別の値が正しくありません。", "type", model.ErrInvalidInput)
	}
	if err := validateErrorLogInputs(req.ErrorLogs); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.studentRepo.FindByID(ctx, tx, principal.InstitutionID, studentID); err != nil {
			return err
		}

		// 履歴は分岐させない: フィールドと誤答タグを総入れ替えする
		assessment := &model.Assessment{
			AssessmentID:  assessmentID,
			StudentID:     studentID,
			Type:          req.Type,
			TakenAt:       req.TakenAt,
			Score:         req.Score,
			Accuracy:      req.Accuracy,
			QuestionCount: req.QuestionCount,
			Notes:         req.Notes,
		}
		if err := s.assessRepo.Update(ctx, tx, assessment); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "更新対象の受験記録が見つかりませんでした。", "", err)
			}
			logger.Error("Error updating assessment in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "受験記録の更新に失敗しました。", "", model.ErrInternalServer)
		}
		logs := buildErrorLogs(assessmentID, req.ErrorLogs)
		if err := s.assessRepo.ReplaceErrorLogs(ctx, tx, assessmentID, logs); err != nil {
			logger.Error("Error replacing error logs in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "誤答タグの更新に失敗しました。", "", model.ErrInternalServer)
		}

		if _, err := s.riskService.RecalculateInTx(ctx, tx, studentID, time.Now()); err != nil {
			logger.Error("Error recalculating risk in transaction", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.assessRepo.FindByID(ctx, s.db, studentID, assessmentID)
}

func (s *assessmentService) DeleteAssessment(ctx context.Context, principal model.Principal, studentID, assessmentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "assessment_id", assessmentID)

	res := Resource{Type: ResourceAssessment, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.studentRepo.FindByID(ctx, tx, principal.InstitutionID, studentID); err != nil {
			return err
		}
		if err := s.assessRepo.Delete(ctx, tx, studentID, assessmentID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return err
			}
			logger.Error("Error deleting assessment in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "受験記録の削除に失敗しました。", "", model.ErrInternalServer)
		}
		if _, err := s.riskService.RecalculateInTx(ctx, tx, studentID, time.Now()); err != nil {
			logger.Error("Error recalculating risk in transaction", "error", err)
			return err
		}
		return nil
	})
}

// csvHeader はインポートCSVの固定ヘッダ契約
var csvHeader = []string{"type", "taken_at", "score", "accuracy", "question_count", "notes"}

func (s *assessmentService) ImportCSV(ctx context.Context, principal model.Principal, studentID uuid.UUID, r io.Reader) (*model.ImportResult, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	res := Resource{Type: ResourceAssessment, StudentID: studentID, InstitutionID: principal.InstitutionID}
	if err := Authorize(principal, res, ActionWrite); err != nil {
		return nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", err)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, model.NewAppError("INVALID_CSV", "CSVのヘッダ行が読み取れません。", "", model.ErrInvalidInput)
	}
	for i, col := range csvHeader {
		if i >= len(header) || strings.TrimSpace(strings.ToLower(header[i])) != col {
			return nil, model.NewAppError("INVALID_CSV",
				fmt.Sprintf("CSVヘッダが契約と一致しません (期待: %s)。", strings.Join(csvHeader, ",")),
				"", model.ErrInvalidInput)
		}
	}

	resultSummary := &model.ImportResult{}
	var assessments []*model.Assessment

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			resultSummary.Skipped++
			resultSummary.Errors = append(resultSummary.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		assessment, err := parseCSVRecord(studentID, record)
		if err != nil {
			resultSummary.Skipped++
			resultSummary.Errors = append(resultSummary.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		assessments = append(assessments, assessment)
	}

	if len(assessments) == 0 {
		logger.Info("CSV import finished with no importable rows", "skipped", resultSummary.Skipped)
		return resultSummary, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.studentRepo.FindByID(ctx, tx, principal.InstitutionID, studentID); err != nil {
			return err
		}
		for _, a := range assessments {
			if err := s.assessRepo.Create(ctx, tx, a); err != nil {
				logger.Error("Error creating imported assessment in transaction", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "CSVインポートに失敗しました。", "", model.ErrInternalServer)
			}
		}
		// 一括登録後に1回だけ再計算する
		if _, err := s.riskService.RecalculateInTx(ctx, tx, studentID, time.Now()); err != nil {
			logger.Error("Error recalculating risk after import", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resultSummary.Imported = len(assessments)
	logger.Info("CSV import finished", "imported", resultSummary.Imported, "skipped", resultSummary.Skipped)
	return resultSummary, nil
}

func parseCSVRecord(studentID uuid.UUID, record []string) (*model.Assessment, error) {
	assessmentType := model.AssessmentType(strings.TrimSpace(record[0]))
	if !assessmentType.Valid() {
		return nil, fmt.Errorf("unknown assessment type %q", record[0])
	}
	takenAt, err := time.Parse(time.RFC3339, strings.TrimSpace(record[1]))
	if err != nil {
		// 日付のみの形式も受け付ける
		takenAt, err = time.Parse("2006-01-02", strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid taken_at %q", record[1])
		}
	}

	assessment := &model.Assessment{
		AssessmentID: uuid.New(),
		StudentID:    studentID,
		Type:         assessmentType,
		TakenAt:      takenAt,
		Notes:        strings.TrimSpace(record[5]),
	}

	if v := strings.TrimSpace(record[2]); v != "" {
		score, err := strconv.ParseFloat(v, 64)
		if err != nil || score < 0 {
			return nil, fmt.Errorf("invalid score %q", v)
		}
		assessment.Score = &score
	}
	if v := strings.TrimSpace(record[3]); v != "" {
		accuracy, err := strconv.ParseFloat(v, 64)
		if err != nil || accuracy < 0 || accuracy > 1 {
			return nil, fmt.Errorf("invalid accuracy %q", v)
		}
		assessment.Accuracy = &accuracy
	}
	if v := strings.TrimSpace(record[4]); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid question_count %q", v)
		}
		assessment.QuestionCount = &count
	}

	return assessment, nil
}

func validateErrorLogInputs(inputs []model.ErrorLogInput) error {
	for _, in := range inputs {
		if !in.Category.Valid() {
			return model.NewAppError("VALIDATION_ERROR", "誤答カテゴリの値が正しくありません。", "category", model.ErrInvalidInput)
		}
		if !in.System.Valid() {
			return model.NewAppError("VALIDATION_ERROR", "系統の値が正しくありません。", "system", model.ErrInvalidInput)
		}
	}
	return nil
}

func buildErrorLogs(assessmentID uuid.UUID, inputs []model.ErrorLogInput) []model.ErrorLog {
	logs := make([]model.ErrorLog, 0, len(inputs))
	for _, in := range inputs {
		logs = append(logs, model.ErrorLog{
			ErrorLogID:   uuid.New(),
			AssessmentID: assessmentID,
			Category:     in.Category,
			System:       in.System,
			Topic:        in.Topic,
			QuestionRef:  in.QuestionRef,
			Reflection:   in.Reflection,
		})
	}
	return logs
}
