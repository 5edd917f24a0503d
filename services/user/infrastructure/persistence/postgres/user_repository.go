package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/backoffice/pkg/database"
	userdomain "github.com/ghuser/backoffice/services/user/domain"
	"github.com/ghuser/backoffice/services/user/domain/models"
)

const userColumns = "id, first_name, last_name, email, phone, created_by, updated_by, created_at, updated_at"

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Insert persists a new user and assigns its ID.
// Returns ErrEmailTaken on unique constraint violations.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	err := r.db.DB().QueryRowContext(ctx, `
		INSERT INTO users (first_name, last_name, email, phone, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		user.FirstName, user.LastName, user.Email, user.Phone,
		user.CreatedBy, user.UpdatedBy, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return userdomain.NewError(userdomain.ErrEmailTaken, "Email already exists")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user. Returns ErrUserNotFound if absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

// FindAll returns every user ordered by ID.
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	_, err := r.db.DB().ExecContext(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, phone = $5, updated_by = $6, updated_at = $7
		WHERE id = $1`,
		user.ID, user.FirstName, user.LastName, user.Email, user.Phone,
		user.UpdatedBy, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return userdomain.NewError(userdomain.ErrEmailTaken, "Email already exists")
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user by ID. Returns ErrUserNotFound when no row matched.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if n == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser maps one users row to a domain models.User.
func scanUser(row rowScanner) (*models.User, error) {
	var (
		user      models.User
		lastName  sql.NullString
		phone     sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(&user.ID, &user.FirstName, &lastName, &user.Email, &phone,
		&user.CreatedBy, &user.UpdatedBy, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.LastName = lastName.String
	user.Phone = phone.String
	user.CreatedAt = createdAt
	user.UpdatedAt = updatedAt
	return &user, nil
}
