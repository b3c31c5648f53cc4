package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByLogin matches either email or username, the way the login form does.
func (r UserRepo) GetByLogin(login string) (models.User, error) {
	var (
		u    models.User
		role string
	)
	err := r.db().QueryRow(`
		SELECT id, name, username, email, phone, password_hash, role, status
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1
	`, login, login).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &role, &u.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, err
	}
	u.Role, err = models.ParseRole(role)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "user has unknown role", Err: err}
	}
	return u, nil
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	var (
		u    models.User
		role string
	)
	err := r.db().QueryRow(`
		SELECT id, name, username, email, phone, password_hash, role, status
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &role, &u.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, err
	}
	u.Role, err = models.ParseRole(role)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "user has unknown role", Err: err}
	}
	return u, nil
}

func (r UserRepo) Exists(email, username string) (bool, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM users WHERE email = ? OR username = ?
	`, strings.TrimSpace(email), strings.TrimSpace(username)).Scan(&n)
	return n > 0, err
}

func (r UserRepo) Create(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status)
		VALUES (?, ?, ?, ?, ?, ?, 'active')
	`, strings.TrimSpace(u.Name), strings.TrimSpace(u.Username), strings.TrimSpace(u.Email),
		strings.TrimSpace(u.Phone), u.PasswordHash, string(u.Role))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
