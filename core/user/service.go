package user

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/SaranshGupta02/TimeTable/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
)

type (
	Repository interface {
		CheckEmailUniqueness(email string) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		// QueryProfessors returns professor accounts only, ordered by creation time.
		QueryProfessors() ([]User, error)
		GetUserByID(id string) (User, error)
		GetUserByEmail(email string) (User, error)
		SetUserApproval(id string, approved bool) (User, error)
		SetUserPassword(id string, hash []byte) (User, error)
		SetUserLastLogin(id string, t time.Time) (User, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

func (svc *Service) checkUniqueness(email string) error {
	if err := svc.repo.CheckEmailUniqueness(email); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Register creates an unapproved professor account. Approval is granted later
// by an admin via SetApproved.
func (svc *Service) Register(nu NewUser) (User, error) {
	now := time.Now().UTC()
	usr := User{
		ID:         uuid.New().String(),
		Email:      nu.Email,
		Name:       nu.Name,
		Role:       RoleProfessor,
		Department: nu.Department,
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(usr)
}

// CreateAdmin creates an admin account. Admins are never created through
// registration; only the CLI calls this.
func (svc *Service) CreateAdmin(email, name, pwd string) (User, error) {
	if err := svc.checkUniqueness(core.CleanString(email, true /* lower */)); err != nil {
		return User{}, err
	}
	now := time.Now().UTC()
	usr := User{
		ID:         uuid.New().String(),
		Email:      core.CleanString(email, true /* lower */),
		Name:       core.CleanString(name),
		Role:       RoleAdmin,
		IsApproved: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := usr.SetPassword(pwd); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

// QueryProfessors lists professor accounts with their approval status,
// for the admin approval screen.
func (svc *Service) QueryProfessors() ([]User, error) {
	return svc.repo.QueryProfessors()
}

func (svc *Service) GetByID(id string) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

// SetApproved toggles a professor's approval flag and notifies them by email
// when access is granted.
func (svc *Service) SetApproved(id string, approve bool) (User, error) {
	usr, err := svc.repo.SetUserApproval(id, approve)
	if err != nil {
		return User{}, err
	}
	if approve && svc.mailSvc != nil {
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
			Subject: "Account approved",
			TextContent: fmt.Sprintf(
				"Hi %s,\n\nYour account has been approved. You can now edit your department's timetable slots.\n", usr.Name),
		})
	}
	return usr, nil
}

// ResetPassword replaces the password of the account with the given email.
// Only the CLI calls this; there is no self-service reset flow.
func (svc *Service) ResetPassword(email, pwd string) (User, error) {
	usr, err := svc.GetByEmail(email)
	if err != nil {
		return User{}, err
	}
	if err = usr.SetPassword(pwd); err != nil {
		return User{}, err
	}
	return svc.repo.SetUserPassword(usr.ID, usr.PasswordHash)
}

func (svc *Service) SetLastLogin(usr User) (User, error) {
	return svc.repo.SetUserLastLogin(usr.ID, time.Now().UTC())
}
