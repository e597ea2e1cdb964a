// internal/service/policy_test.go
package service

import (
	"testing"

	"examrisk/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_Authorize(t *testing.T) {
	institutionA := uuid.New()
	institutionB := uuid.New()
	studentSelf := uuid.New()
	studentOther := uuid.New()

	admin := model.Principal{UserID: uuid.New(), InstitutionID: institutionA, Role: model.RoleAdmin}
	advisor := model.Principal{UserID: uuid.New(), InstitutionID: institutionA, Role: model.RoleAdvisor}
	student := model.Principal{UserID: studentSelf, InstitutionID: institutionA, Role: model.RoleStudent}

	tests := []struct {
		name      string
		principal model.Principal
		resource  Resource
		action    Action
		wantErr   error
	}{
		{
			name:      "正常系: adminは他機関のリソースも操作できる",
			principal: admin,
			resource:  Resource{Type: ResourceStudent, StudentID: studentOther, InstitutionID: institutionB},
			action:    ActionWrite,
			wantErr:   nil,
		},
		{
			name:      "正常系: advisorは自機関のリソースを書き込める",
			principal: advisor,
			resource:  Resource{Type: ResourceAssessment, StudentID: studentOther, InstitutionID: institutionA},
			action:    ActionWrite,
			wantErr:   nil,
		},
		{
			name:      "異常系: advisorは他機関のリソースを読めない",
			principal: advisor,
			resource:  Resource{Type: ResourceRisk, StudentID: studentOther, InstitutionID: institutionB},
			action:    ActionRead,
			wantErr:   model.ErrForbidden,
		},
		{
			name:      "正常系: studentは自分のリスクを読める",
			principal: student,
			resource:  Resource{Type: ResourceRisk, StudentID: studentSelf, InstitutionID: institutionA},
			action:    ActionRead,
			wantErr:   nil,
		},
		{
			name:      "正常系: studentは自分の受験記録を書き込める",
			principal: student,
			resource:  Resource{Type: ResourceAssessment, StudentID: studentSelf, InstitutionID: institutionA},
			action:    ActionWrite,
			wantErr:   nil,
		},
		{
			name:      "異常系: studentは他学生のリソースを読めない",
			principal: student,
			resource:  Resource{Type: ResourceAssessment, StudentID: studentOther, InstitutionID: institutionA},
			action:    ActionRead,
			wantErr:   model.ErrForbidden,
		},
		{
			name:      "異常系: studentは自分の学生レコードも書き換えられない",
			principal: student,
			resource:  Resource{Type: ResourceStudent, StudentID: studentSelf, InstitutionID: institutionA},
			action:    ActionWrite,
			wantErr:   model.ErrForbidden,
		},
		{
			name:      "正常系: studentは自分の学生レコードを参照できる",
			principal: student,
			resource:  Resource{Type: ResourceStudent, StudentID: studentSelf, InstitutionID: institutionA},
			action:    ActionRead,
			wantErr:   nil,
		},
		{
			name:      "異常系: studentは自分の試験予定を登録・変更できない",
			principal: student,
			resource:  Resource{Type: ResourceExam, StudentID: studentSelf, InstitutionID: institutionA},
			action:    ActionWrite,
			wantErr:   model.ErrForbidden,
		},
		{
			name:      "正常系: studentは自分の試験予定を参照できる",
			principal: student,
			resource:  Resource{Type: ResourceExam, StudentID: studentSelf, InstitutionID: institutionA},
			action:    ActionRead,
			wantErr:   nil,
		},
		{
			name:      "正常系: studentは自分の学習計画を書き込める",
			principal: student,
			resource:  Resource{Type: ResourcePlan, StudentID: studentSelf, InstitutionID: institutionA},
			action:    ActionWrite,
			wantErr:   nil,
		},
		{
			name:      "異常系: 不明なロールは拒否",
			principal: model.Principal{UserID: uuid.New(), InstitutionID: institutionA, Role: "superuser"},
			resource:  Resource{Type: ResourceStudent, StudentID: studentSelf, InstitutionID: institutionA},
			action:    ActionRead,
			wantErr:   model.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.resource, tt.action)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
