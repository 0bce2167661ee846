package timetable

import (
	"github.com/SaranshGupta02/TimeTable/core"

	"github.com/SaranshGupta02/TimeTable/core/user"
)

// Action is a slot mutation kind the policy rules on.
type Action int

const (
	ChangeDepartment Action = iota
	ChangeSubject
)

// Authorize decides whether an actor may apply the given action to the given
// slot. It is pure and re-evaluated on every mutation attempt; reads are
// never restricted. Rules, first match wins:
//
//  1. admins may do anything;
//  2. unapproved professors may not write at all;
//  3. approved professors may change the subject of slots owned by their own
//     department, and nothing else.
func Authorize(actor user.Actor, action Action, slot Slot) error {
	switch actor.Role {
	case user.RoleAdmin:
		return nil
	case user.RoleProfessor:
		if !actor.IsApproved {
			return core.NewForbiddenError(core.ReasonPendingApproval,
				"your account is pending approval, read-only access")
		}
		if action == ChangeDepartment {
			return core.NewForbiddenError(core.ReasonInsufficientRole,
				"only admins can assign departments")
		}
		if slot.Department != actor.Department {
			return core.NewForbiddenError(core.ReasonWrongDepartment,
				"only the assigned department can edit this slot")
		}
		return nil
	}
	return core.NewForbiddenError(core.ReasonInsufficientRole, "unknown role")
}
