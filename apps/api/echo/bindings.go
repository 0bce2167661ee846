package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/SaranshGupta02/TimeTable/core"
	"github.com/SaranshGupta02/TimeTable/core/timetable"
	"github.com/SaranshGupta02/TimeTable/core/user"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

type SuccessResponse struct {
	Success string `json:"success"`
}

type UserListResponse struct {
	Users []user.User `json:"users"`
}

type ApproveRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Approve *bool  `json:"approve" validate:"required"`
}

func (ar *ApproveRequest) Validate(validate *validator.Validate) error {
	ar.UserID = core.CleanString(ar.UserID)
	return validate.Struct(ar)
}

type ApproveResponse struct {
	Success    bool `json:"success"`
	IsApproved bool `json:"is_approved"`
}

type ClassListResponse struct {
	Classes []string `json:"classes"`
}

// WriteSlotRequest addresses one cell and carries the mutation payload.
type WriteSlotRequest struct {
	PeriodIndex *int `json:"period_index" validate:"required,min=0"`
	DayIndex    *int `json:"day_index" validate:"required,min=0"`
	timetable.WriteSlot
}

func (wr *WriteSlotRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(wr)
}

type WriteSlotResponse struct {
	OK   bool           `json:"ok"`
	Slot timetable.Slot `json:"slot"`
}
