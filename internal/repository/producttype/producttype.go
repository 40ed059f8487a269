package producttype

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"yardbook/internal/entities"
	"yardbook/internal/repository"
	"yardbook/internal/service/producttype"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const typeColumns = "id, name, yard, daily_capacity, tolerance, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, typeModifyEntity entities.ProductTypeModify) (int64, error) {
	query := `
		INSERT INTO product_types (name, yard, daily_capacity, tolerance)
		VALUES ($1, $2, COALESCE($3, 0), COALESCE($4, 0))
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		typeModifyEntity.Name,
		typeModifyEntity.Yard,
		typeModifyEntity.DailyCapacity,
		typeModifyEntity.Tolerance,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, producttype.ErrConflict
		}
		return 0, fmt.Errorf("unexpected product type repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.ProductType, error) {
	query := `SELECT ` + typeColumns + ` FROM product_types WHERE id = $1`

	var typeDB ProductTypeDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&typeDB.ID,
		&typeDB.Name,
		&typeDB.Yard,
		&typeDB.DailyCapacity,
		&typeDB.Tolerance,
		&typeDB.CreatedAt,
		&typeDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, producttype.ErrProductTypeNotFound
		}
		return nil, fmt.Errorf("unexpected product type repository get error: %w", err)
	}

	return ToDomain(&typeDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.ProductType, error) {
	query := `SELECT ` + typeColumns + ` FROM product_types ORDER BY name`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected product type repository get all error: %w", err)
	}
	defer rows.Close()

	var types []entities.ProductType
	for rows.Next() {
		var typeDB ProductTypeDB
		err = rows.Scan(
			&typeDB.ID,
			&typeDB.Name,
			&typeDB.Yard,
			&typeDB.DailyCapacity,
			&typeDB.Tolerance,
			&typeDB.CreatedAt,
			&typeDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product type repository scan error: %w", err)
		}
		types = append(types, *ToDomain(&typeDB))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product type repository rows error: %w", err)
	}

	return types, nil
}

func (r *Repository) Update(ctx context.Context, typeModifyEntity entities.ProductTypeModify) (*entities.ProductType, error) {
	builder := qb.Update("product_types")

	// опциональные поля
	if typeModifyEntity.Name != nil {
		builder = builder.Set("name", typeModifyEntity.Name)
	}
	if typeModifyEntity.Yard != nil {
		builder = builder.Set("yard", typeModifyEntity.Yard)
	}
	if typeModifyEntity.DailyCapacity != nil {
		builder = builder.Set("daily_capacity", typeModifyEntity.DailyCapacity)
	}
	if typeModifyEntity.Tolerance != nil {
		builder = builder.Set("tolerance", typeModifyEntity.Tolerance)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": typeModifyEntity.ID}).
		Suffix("RETURNING " + typeColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product type repository update error: %w", err)
	}

	var typeDB ProductTypeDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&typeDB.ID,
		&typeDB.Name,
		&typeDB.Yard,
		&typeDB.DailyCapacity,
		&typeDB.Tolerance,
		&typeDB.CreatedAt,
		&typeDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, producttype.ErrProductTypeNotFound
		}
		return nil, fmt.Errorf("unexpected product type repository update error: %w", err)
	}

	return ToDomain(&typeDB), nil
}
