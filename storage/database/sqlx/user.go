package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/SaranshGupta02/TimeTable/core/user"
)

type userRow struct {
	ID           string       `db:"id"`
	Email        string       `db:"email"`
	Name         string       `db:"name"`
	Role         string       `db:"role"`
	Department   string       `db:"department"`
	IsApproved   bool         `db:"is_approved"`
	PasswordHash []byte       `db:"password_hash"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
	LastLogin    sql.NullTime `db:"last_login"`
}

func (r userRow) user() user.User {
	usr := user.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Role:         r.Role,
		Department:   r.Department,
		IsApproved:   r.IsApproved,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
	if r.LastLogin.Valid {
		usr.LastLogin = r.LastLogin.Time.UTC()
	}
	return usr
}

const userColumns = "id, email, name, role, department, is_approved, password_hash, created_at, updated_at, last_login"

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckEmailUniqueness(email string) error {
	var exists bool
	err := repo.db.Get(&exists, "SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", email)
	if err != nil {
		return errors.Wrap(err, "checking email uniqueness")
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	_, err := repo.db.Exec(
		`INSERT INTO users (id, email, name, role, department, is_approved, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		usr.ID, usr.Email, usr.Name, usr.Role, usr.Department, usr.IsApproved, usr.PasswordHash,
		usr.CreatedAt, usr.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	return repo.query("SELECT " + userColumns + " FROM users ORDER BY created_at")
}

func (repo *userRepository) QueryProfessors() ([]user.User, error) {
	return repo.query("SELECT "+userColumns+" FROM users WHERE role = $1 ORDER BY created_at", user.RoleProfessor)
}

func (repo *userRepository) query(q string, args ...interface{}) ([]user.User, error) {
	var rows []userRow
	if err := repo.db.Select(&rows, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	users := make([]user.User, len(rows))
	for i, r := range rows {
		users[i] = r.user()
	}
	return users, nil
}

func (repo *userRepository) get(q string, args ...interface{}) (user.User, error) {
	var row userRow
	if err := repo.db.Get(&row, q, args...); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user")
	}
	return row.user(), nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	return repo.get("SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	return repo.get("SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (repo *userRepository) SetUserApproval(id string, approved bool) (user.User, error) {
	return repo.get(
		"UPDATE users SET is_approved = $1, updated_at = $2 WHERE id = $3 RETURNING "+userColumns,
		approved, time.Now().UTC(), id,
	)
}

func (repo *userRepository) SetUserPassword(id string, hash []byte) (user.User, error) {
	return repo.get(
		"UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3 RETURNING "+userColumns,
		hash, time.Now().UTC(), id,
	)
}

func (repo *userRepository) SetUserLastLogin(id string, t time.Time) (user.User, error) {
	return repo.get("UPDATE users SET last_login = $1 WHERE id = $2 RETURNING "+userColumns, t, id)
}
