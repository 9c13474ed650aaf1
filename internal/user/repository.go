package user

import (
	"context"
	"database/sql"
	"time"

	"candyshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*User, error)
	Delete(ctx context.Context, id uint) error
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
	GetByResetToken(ctx context.Context, token string) (*User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, name, email, phone, password_hash, role, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateUser"),
		zap.String("email", u.Email),
	)

	query := `
	INSERT INTO users (name, email, phone, password_hash, role)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role)
	created, err := scanUser(row)
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.Uint("user_id", created.ID))
	return created, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repository) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *repository) Update(ctx context.Context, id uint, input UpdateInput) (*User, error) {
	query := `
	UPDATE users
	SET name = COALESCE($1, name),
	    email = COALESCE($2, email),
	    phone = COALESCE($3, phone),
	    role = COALESCE($4, role),
	    updated_at = NOW()
	WHERE id = $5
	RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query, input.Name, input.Email, input.Phone, input.Role, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET reset_token = $1, reset_token_expires_at = $2
		WHERE email = $3
	`, token, expiresAt, email)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) GetByResetToken(ctx context.Context, token string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE reset_token = $1 AND reset_token_expires_at > NOW()
	`, token)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expires_at = NULL, updated_at = NOW()
		WHERE id = $2
	`, passwordHash, id)
	return err
}
