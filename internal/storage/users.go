package storage

import (
	"eats-backend/internal/domain"
)

func (r *PostgresRepository) CreateUser(u *domain.User) error {
	return r.DB.QueryRow(
		"INSERT INTO users (email, password, role) VALUES ($1, $2, $3) RETURNING id, created_at",
		u.Email, u.Password, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRow(
		"SELECT id, email, password, role, verified, created_at FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.Verified, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByID(id int) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRow(
		"SELECT id, email, password, role, verified, created_at FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.Verified, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) UpdateUser(u *domain.User) error {
	_, err := r.DB.Exec(
		"UPDATE users SET email=$1, password=$2, verified=$3 WHERE id=$4",
		u.Email, u.Password, u.Verified, u.ID,
	)
	return err
}

func (r *PostgresRepository) CreateVerification(v *domain.Verification) error {
	return r.DB.QueryRow(
		"INSERT INTO verifications (user_id, code) VALUES ($1, $2) RETURNING id",
		v.UserID, v.Code,
	).Scan(&v.ID)
}

func (r *PostgresRepository) GetVerificationByCode(code string) (*domain.Verification, error) {
	var v domain.Verification
	err := r.DB.QueryRow(
		"SELECT id, user_id, code FROM verifications WHERE code = $1",
		code,
	).Scan(&v.ID, &v.UserID, &v.Code)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PostgresRepository) DeleteVerification(id int) error {
	_, err := r.DB.Exec("DELETE FROM verifications WHERE id=$1", id)
	return err
}

func (r *PostgresRepository) DeleteVerificationsByUser(userID int) error {
	_, err := r.DB.Exec("DELETE FROM verifications WHERE user_id=$1", userID)
	return err
}
