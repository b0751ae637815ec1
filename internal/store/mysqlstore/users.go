package mysqlstore

import (
	"context"
	"database/sql"

	"shuttlebook/internal/domain"
	"shuttlebook/internal/domain/models"
)

func (s *Store) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, email, role) VALUES (?,?,?,?)`,
		u.Username, u.PasswordHash, u.Email, u.Role)
	if err != nil {
		if isDuplicateKey(err) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "username already registered", Err: err}
		}
		return models.User{}, domain.InternalError{Msg: "insert user failed", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "insert user id", Err: err}
	}
	u.ID = id
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, email, role FROM users WHERE id=? LIMIT 1`, id)
	return scanUser(row)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, email, role FROM users WHERE username=? LIMIT 1`, username)
	return scanUser(row)
}

func scanUser(r rowScanner) (models.User, error) {
	var u models.User
	err := r.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "query user failed", Err: err}
	}
	return u, nil
}
