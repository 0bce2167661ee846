package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaranshGupta02/TimeTable/core"
	"github.com/SaranshGupta02/TimeTable/core/user"
)

func TestAuthorize(t *testing.T) {
	admin := user.Actor{Role: user.RoleAdmin}
	approvedCSE := user.Actor{Role: user.RoleProfessor, Department: "CSE", IsApproved: true}
	pendingCSE := user.Actor{Role: user.RoleProfessor, Department: "CSE"}

	cseSlot := Slot{ClassID: "E101", Department: "CSE"}
	eceSlot := Slot{ClassID: "E101", Department: "ECE"}
	commonSlot := Slot{ClassID: "E101", Department: DepartmentCommon}

	tests := []struct {
		name       string
		actor      user.Actor
		action     Action
		slot       Slot
		wantReason core.ForbiddenReason
	}{
		{name: "admin may assign department", actor: admin, action: ChangeDepartment, slot: commonSlot},
		{name: "admin may reassign owned slot", actor: admin, action: ChangeDepartment, slot: eceSlot},
		{name: "admin subject write permitted", actor: admin, action: ChangeSubject, slot: eceSlot},
		{name: "pending professor cannot write own department", actor: pendingCSE, action: ChangeSubject, slot: cseSlot,
			wantReason: core.ReasonPendingApproval},
		{name: "pending professor cannot assign department", actor: pendingCSE, action: ChangeDepartment, slot: cseSlot,
			wantReason: core.ReasonPendingApproval},
		{name: "approved professor may edit own department", actor: approvedCSE, action: ChangeSubject, slot: cseSlot},
		{name: "approved professor cannot edit other department", actor: approvedCSE, action: ChangeSubject, slot: eceSlot,
			wantReason: core.ReasonWrongDepartment},
		{name: "approved professor cannot edit unowned slot", actor: approvedCSE, action: ChangeSubject, slot: commonSlot,
			wantReason: core.ReasonWrongDepartment},
		{name: "approved professor cannot assign department", actor: approvedCSE, action: ChangeDepartment, slot: cseSlot,
			wantReason: core.ReasonInsufficientRole},
		{name: "unknown role denied", actor: user.Actor{Role: "student"}, action: ChangeSubject, slot: commonSlot,
			wantReason: core.ReasonInsufficientRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.action, tt.slot)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var fErr *core.ForbiddenError
			require.Error(t, err)
			require.IsType(t, fErr, err)
			assert.Equal(t, tt.wantReason, err.(*core.ForbiddenError).Reason)
		})
	}
}
