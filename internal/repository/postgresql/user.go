package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/database"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, branch_id, email, password_hash, first_name, last_name, role,
	salary, leave_balance, active, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.BranchID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.Salary,
		&u.LeaveBalance,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, branch_id, email, password_hash, first_name, last_name, role, salary, leave_balance, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		u.ID, u.BranchID, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.Role, u.Salary, u.LeaveBalance, u.Active,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, b.name
		FROM users u
		LEFT JOIN branches b ON b.id = u.branch_id
		WHERE u.id = $1`,
		prefixColumns("u", userColumns))

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.BranchID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Role, &u.Salary, &u.LeaveBalance, &u.Active, &u.CreatedAt, &u.UpdatedAt,
		&u.BranchName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns), email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET branch_id = $1, email = $2, first_name = $3, last_name = $4,
		    role = $5, salary = $6, active = $7, updated_at = NOW()
		WHERE id = $8`

	tag, err := q.Exec(ctx, query,
		u.BranchID, u.Email, u.FirstName, u.LastName, u.Role, u.Salary, u.Active, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) ListActive(ctx context.Context) ([]*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, b.name
		FROM users u
		LEFT JOIN branches b ON b.id = u.branch_id
		WHERE u.active = TRUE
		ORDER BY u.first_name, u.last_name`,
		prefixColumns("u", userColumns))

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}
	defer rows.Close()

	var result []*user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.BranchID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
			&u.Role, &u.Salary, &u.LeaveBalance, &u.Active, &u.CreatedAt, &u.UpdatedAt,
			&u.BranchName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		result = append(result, &u)
	}

	return result, rows.Err()
}

func (r *UserRepository) ListIDsByRoles(ctx context.Context, roles []user.Role) ([]uuid.UUID, error) {
	q := GetQuerier(ctx, r.db)

	roleStrings := make([]string, len(roles))
	for i, role := range roles {
		roleStrings[i] = string(role)
	}

	rows, err := q.Query(ctx,
		`SELECT id FROM users WHERE active = TRUE AND role = ANY($1)`, roleStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// AdjustLeaveBalance applies a signed delta atomically and returns the
// resulting balance.
func (r *UserRepository) AdjustLeaveBalance(ctx context.Context, id uuid.UUID, delta float64) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var balance float64
	err := q.QueryRow(ctx, `
		UPDATE users
		SET leave_balance = leave_balance + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING leave_balance`, delta, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, user.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to adjust leave balance: %w", err)
	}

	return balance, nil
}
