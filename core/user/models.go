package user

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/SaranshGupta02/TimeTable/core"
)

// Roles
const (
	RoleAdmin     = "admin"
	RoleProfessor = "professor"
)

var Roles = []string{RoleAdmin, RoleProfessor}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	IsApproved   bool      `json:"is_approved"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
	LastLogin    time.Time `json:"last_login"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Approved reports the effective approval status; admins are implicitly approved.
func (u *User) Approved() bool {
	return u.IsAdmin() || u.IsApproved
}

// Actor is the identity snapshot authorization decisions are made against.
// It is built from the bearer token claims at request time; approval changes
// only take effect once a new token is issued.
type Actor struct {
	ID         string
	Role       string
	Department string
	IsApproved bool
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// NewUser contains information needed to register a new professor account.
type NewUser struct {
	Email           string `json:"email" validate:"required,email,inst_email"`
	Name            string `json:"name" validate:"required"`
	Department      string `json:"department" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate(validate *validator.Validate, translator ut.Translator, svc *Service) error {
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Name = core.CleanString(nu.Name)
	nu.Department = core.CleanString(nu.Department)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkUniqueness(nu.Email)
}
