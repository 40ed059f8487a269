package supplierrule

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"yardbook/internal/entities"
	"yardbook/internal/repository"
	"yardbook/internal/service/availability"
	"yardbook/internal/service/supplierrule"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const ruleColumns = "id, supplier_name, day, allocated_capacity, tolerance, freed_capacity, delivery_email, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, ruleModify entities.SupplierRuleModify) (*entities.SupplierRule, error) {
	ruleModifyDB := FromDomainModify(&ruleModify)

	query := `
		INSERT INTO supplier_rules (supplier_name, day, allocated_capacity, tolerance, freed_capacity, delivery_email)
		VALUES ($1, $2, $3, COALESCE($4, 0), 0, COALESCE($5, ''))
		RETURNING ` + ruleColumns

	var ruleDB SupplierRuleDB
	err := r.querier.QueryRow(
		ctx,
		query,
		ruleModifyDB.SupplierName,
		ruleModifyDB.Day,
		ruleModifyDB.AllocatedCapacity,
		ruleModifyDB.Tolerance,
		ruleModifyDB.DeliveryEmail,
	).Scan(
		&ruleDB.ID,
		&ruleDB.SupplierName,
		&ruleDB.Day,
		&ruleDB.AllocatedCapacity,
		&ruleDB.Tolerance,
		&ruleDB.FreedCapacity,
		&ruleDB.DeliveryEmail,
		&ruleDB.CreatedAt,
		&ruleDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, supplierrule.ErrConflict
		}
		return nil, fmt.Errorf("unexpected supplier rule repository create error: %w", err)
	}

	return ToDomain(&ruleDB), nil
}

func (r *Repository) Update(ctx context.Context, ruleModify entities.SupplierRuleModify) (*entities.SupplierRule, error) {
	ruleModifyDB := FromDomainModify(&ruleModify)

	builder := qb.Update("supplier_rules")

	// опциональные поля
	if ruleModifyDB.SupplierName != nil {
		builder = builder.Set("supplier_name", ruleModifyDB.SupplierName)
	}
	if ruleModifyDB.Day != nil {
		builder = builder.Set("day", ruleModifyDB.Day)
	}
	if ruleModifyDB.AllocatedCapacity != nil {
		builder = builder.Set("allocated_capacity", ruleModifyDB.AllocatedCapacity)
	}
	if ruleModifyDB.Tolerance != nil {
		builder = builder.Set("tolerance", ruleModifyDB.Tolerance)
	}
	if ruleModifyDB.FreedCapacity != nil {
		builder = builder.Set("freed_capacity", ruleModifyDB.FreedCapacity)
	}
	if ruleModifyDB.DeliveryEmail != nil {
		builder = builder.Set("delivery_email", ruleModifyDB.DeliveryEmail)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": ruleModifyDB.ID}).
		Suffix("RETURNING " + ruleColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected supplier rule repository update error: %w", err)
	}

	var ruleDB SupplierRuleDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&ruleDB.ID,
		&ruleDB.SupplierName,
		&ruleDB.Day,
		&ruleDB.AllocatedCapacity,
		&ruleDB.Tolerance,
		&ruleDB.FreedCapacity,
		&ruleDB.DeliveryEmail,
		&ruleDB.CreatedAt,
		&ruleDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplierrule.ErrRuleNotFound
		}
		return nil, fmt.Errorf("unexpected supplier rule repository update error: %w", err)
	}

	return ToDomain(&ruleDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM supplier_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected supplier rule repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return supplierrule.ErrRuleNotFound
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.SupplierRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM supplier_rules WHERE id = $1`

	var ruleDB SupplierRuleDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&ruleDB.ID,
		&ruleDB.SupplierName,
		&ruleDB.Day,
		&ruleDB.AllocatedCapacity,
		&ruleDB.Tolerance,
		&ruleDB.FreedCapacity,
		&ruleDB.DeliveryEmail,
		&ruleDB.CreatedAt,
		&ruleDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplierrule.ErrRuleNotFound
		}
		return nil, fmt.Errorf("unexpected supplier rule repository get error: %w", err)
	}

	return ToDomain(&ruleDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.SupplierRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM supplier_rules ORDER BY supplier_name, day`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected supplier rule repository get all error: %w", err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// GetByNameAndDay возвращает правило поставщика на день недели.
// Отсутствие правила — штатная ветка вычисления доступности.
func (r *Repository) GetByNameAndDay(ctx context.Context, supplierName string, day entities.Weekday) (*entities.SupplierRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM supplier_rules WHERE supplier_name = $1 AND day = $2`

	var ruleDB SupplierRuleDB
	err := r.querier.QueryRow(ctx, query, supplierName, day.String()).Scan(
		&ruleDB.ID,
		&ruleDB.SupplierName,
		&ruleDB.Day,
		&ruleDB.AllocatedCapacity,
		&ruleDB.Tolerance,
		&ruleDB.FreedCapacity,
		&ruleDB.DeliveryEmail,
		&ruleDB.CreatedAt,
		&ruleDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, availability.ErrRuleNotFound
		}
		return nil, fmt.Errorf("unexpected supplier rule repository get by name error: %w", err)
	}

	return ToDomain(&ruleDB), nil
}

func (r *Repository) SumAllocatedForDayExcluding(ctx context.Context, day entities.Weekday, supplierName string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(allocated_capacity), 0)
		FROM supplier_rules
		WHERE day = $1
		  AND supplier_name != $2
	`

	var total int64
	err := r.querier.QueryRow(ctx, query, day.String(), supplierName).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected supplier rule repository sum allocated error: %w", err)
	}

	return total, nil
}

// RestoreFreedAllocations возвращает освобождённую квоту в allocated одним
// UPDATE: повторный вызов не находит подходящих строк и ничего не меняет.
func (r *Repository) RestoreFreedAllocations(ctx context.Context) (int64, error) {
	query := `
		UPDATE supplier_rules
		SET allocated_capacity = freed_capacity,
		    freed_capacity = 0,
		    updated_at = NOW()
		WHERE freed_capacity > 0
		  AND allocated_capacity = 0
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected supplier rule repository restore error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) GetNotifiableByDay(ctx context.Context, day entities.Weekday) ([]entities.SupplierRule, error) {
	query := `SELECT ` + ruleColumns + `
		FROM supplier_rules
		WHERE day = $1
		  AND allocated_capacity > 0
		  AND delivery_email != ''
	`

	rows, err := r.querier.Query(ctx, query, day.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected supplier rule repository get notifiable error: %w", err)
	}
	defer rows.Close()

	return scanRules(rows)
}

func scanRules(rows pgx.Rows) ([]entities.SupplierRule, error) {
	var rules []entities.SupplierRule
	for rows.Next() {
		var ruleDB SupplierRuleDB
		err := rows.Scan(
			&ruleDB.ID,
			&ruleDB.SupplierName,
			&ruleDB.Day,
			&ruleDB.AllocatedCapacity,
			&ruleDB.Tolerance,
			&ruleDB.FreedCapacity,
			&ruleDB.DeliveryEmail,
			&ruleDB.CreatedAt,
			&ruleDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected supplier rule repository scan error: %w", err)
		}
		rules = append(rules, *ToDomain(&ruleDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected supplier rule repository rows error: %w", err)
	}

	return rules, nil
}
