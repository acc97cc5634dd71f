package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/branch"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/database"
)

type BranchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

const branchColumns = `id, name, country, code, address, timezone, weekend_days, latitude, longitude, created_at, updated_at`

func scanBranch(row pgx.Row) (*branch.Branch, error) {
	var b branch.Branch
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Country,
		&b.Code,
		&b.Address,
		&b.Timezone,
		&b.WeekendDays,
		&b.Latitude,
		&b.Longitude,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) Create(ctx context.Context, b *branch.Branch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, country, code, address, timezone, weekend_days, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		b.ID, b.Name, b.Country, b.Code, b.Address, b.Timezone, b.WeekendDays, b.Latitude, b.Longitude,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return branch.ErrBranchCodeExists
		}
		return fmt.Errorf("failed to create branch: %w", err)
	}

	return nil
}

func (r *BranchRepository) GetByID(ctx context.Context, id uuid.UUID) (*branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBranch(q.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM branches WHERE id = $1`, branchColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, branch.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	return b, nil
}

func (r *BranchRepository) List(ctx context.Context) ([]*branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM branches ORDER BY name ASC`, branchColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var result []*branch.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		result = append(result, b)
	}

	return result, rows.Err()
}

func (r *BranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE branches
		SET name = $1, country = $2, address = $3, timezone = $4, weekend_days = $5,
		    latitude = $6, longitude = $7, updated_at = NOW()
		WHERE id = $8`

	tag, err := q.Exec(ctx, query,
		b.Name, b.Country, b.Address, b.Timezone, b.WeekendDays, b.Latitude, b.Longitude, b.ID)
	if err != nil {
		return fmt.Errorf("failed to update branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

func (r *BranchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return branch.ErrBranchHasUsers
		}
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

func (r *BranchRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM branches b
		JOIN users u ON u.branch_id = b.id
		WHERE u.id = $1`,
		prefixColumns("b", branchColumns))

	b, err := scanBranch(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, branch.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch for user: %w", err)
	}

	return b, nil
}
