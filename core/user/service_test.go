package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaranshGupta02/TimeTable/core"
	"github.com/SaranshGupta02/TimeTable/core/user"
	dummymail "github.com/SaranshGupta02/TimeTable/services/email/dummy"
	inmemdb "github.com/SaranshGupta02/TimeTable/storage/database/inmem"
)

func setup(t *testing.T) (*user.Service, *dummymail.Service) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	mailSvc := dummymail.NewService()
	return user.NewService(inmemdb.NewUserRepository(db), mailSvc), mailSvc
}

func TestService_Register(t *testing.T) {
	svc, _ := setup(t)

	usr, err := svc.Register(user.NewUser{
		Email:           "jdoe@nitkkr.ac.in",
		Name:            "John Doe",
		Department:      "CSE",
		Password:        "Secret123",
		PasswordConfirm: "Secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, usr.ID)
	assert.Equal(t, user.RoleProfessor, usr.Role)
	assert.Equal(t, "CSE", usr.Department)
	assert.False(t, usr.IsApproved)
	assert.False(t, usr.Approved())
	assert.NoError(t, usr.CheckPassword("Secret123"))
	assert.Error(t, usr.CheckPassword("wrong"))

	got, err := svc.GetByEmail("JDoe@nitkkr.ac.in")
	require.NoError(t, err)
	assert.Equal(t, usr.ID, got.ID)
}

func TestNewUser_Validate(t *testing.T) {
	svc, _ := setup(t)
	validate, translator := core.NewValidator("@nitkkr.ac.in")

	valid := user.NewUser{
		Email:           "jdoe@nitkkr.ac.in",
		Name:            "John Doe",
		Department:      "CSE",
		Password:        "Secret123",
		PasswordConfirm: "Secret123",
	}

	tests := []struct {
		name    string
		mutate  func(nu *user.NewUser)
		wantErr bool
	}{
		{name: "valid", mutate: func(nu *user.NewUser) {}},
		{name: "email normalized", mutate: func(nu *user.NewUser) { nu.Email = "  JDoe@NITKKR.ac.in " }},
		{name: "missing email", mutate: func(nu *user.NewUser) { nu.Email = "" }, wantErr: true},
		{name: "foreign domain", mutate: func(nu *user.NewUser) { nu.Email = "jdoe@gmail.com" }, wantErr: true},
		{name: "missing department", mutate: func(nu *user.NewUser) { nu.Department = "" }, wantErr: true},
		{name: "short password", mutate: func(nu *user.NewUser) { nu.Password = "short"; nu.PasswordConfirm = "short" }, wantErr: true},
		{name: "password mismatch", mutate: func(nu *user.NewUser) { nu.PasswordConfirm = "Secret124" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nu := valid
			tt.mutate(&nu)
			err := nu.Validate(validate, translator, svc)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "jdoe@nitkkr.ac.in", nu.Email)
			}
		})
	}
}

func TestNewUser_Validate_duplicateEmail(t *testing.T) {
	svc, _ := setup(t)
	validate, translator := core.NewValidator("@nitkkr.ac.in")

	nu := user.NewUser{
		Email:           "jdoe@nitkkr.ac.in",
		Name:            "John Doe",
		Department:      "CSE",
		Password:        "Secret123",
		PasswordConfirm: "Secret123",
	}
	require.NoError(t, nu.Validate(validate, translator, svc))
	_, err := svc.Register(nu)
	require.NoError(t, err)

	dup := nu
	dup.Name = "Jane Doe"
	err = dup.Validate(validate, translator, svc)
	var vErr *core.ValidationError
	require.IsType(t, vErr, err)
}

func TestService_CreateAdmin(t *testing.T) {
	svc, _ := setup(t)

	usr, err := svc.CreateAdmin("admin@nitkkr.ac.in", "Admin", "Secret123")
	require.NoError(t, err)

	assert.Equal(t, user.RoleAdmin, usr.Role)
	assert.True(t, usr.IsAdmin())
	assert.True(t, usr.Approved())

	_, err = svc.CreateAdmin("admin@nitkkr.ac.in", "Admin Again", "Secret123")
	assert.Error(t, err)
}

func TestService_SetApproved(t *testing.T) {
	svc, mailSvc := setup(t)

	usr, err := svc.Register(user.NewUser{
		Email:           "jdoe@nitkkr.ac.in",
		Name:            "John Doe",
		Department:      "CSE",
		Password:        "Secret123",
		PasswordConfirm: "Secret123",
	})
	require.NoError(t, err)

	approved, err := svc.SetApproved(usr.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	// the professor is notified on approval
	sent := mailSvc.SentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "Account approved", sent[0].Subject)
	require.Len(t, sent[0].To, 1)
	assert.Equal(t, usr.Email, sent[0].To[0].Address)

	// revocation is silent
	revoked, err := svc.SetApproved(usr.ID, false)
	require.NoError(t, err)
	assert.False(t, revoked.IsApproved)
	assert.Len(t, mailSvc.SentMessages(), 1)

	_, err = svc.SetApproved("unknown-id", true)
	assert.Equal(t, user.ErrNotFound, err)
}

func TestService_QueryProfessors(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.CreateAdmin("admin@nitkkr.ac.in", "Admin", "Secret123")
	require.NoError(t, err)
	prof, err := svc.Register(user.NewUser{
		Email:           "jdoe@nitkkr.ac.in",
		Name:            "John Doe",
		Department:      "CSE",
		Password:        "Secret123",
		PasswordConfirm: "Secret123",
	})
	require.NoError(t, err)

	profs, err := svc.QueryProfessors()
	require.NoError(t, err)
	require.Len(t, profs, 1)
	assert.Equal(t, prof.ID, profs[0].ID)

	all, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
