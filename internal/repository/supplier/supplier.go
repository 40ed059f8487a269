package supplier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"yardbook/internal/entities"
	"yardbook/internal/service/availability"
)

type SupplierDB struct {
	ID          int64
	CompanyName string
	Email       string
	CreatedAt   time.Time
}

// Repository справочник поставщиков. Записи заводятся миграциями или
// внешней системой, сервис их только читает.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Supplier, error) {
	query := `SELECT id, company_name, email, created_at FROM suppliers WHERE id = $1`

	var supplierDB SupplierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&supplierDB.ID,
		&supplierDB.CompanyName,
		&supplierDB.Email,
		&supplierDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, availability.ErrInvalidSupplier
		}
		return nil, fmt.Errorf("unexpected supplier repository get error: %w", err)
	}

	return &entities.Supplier{
		ID:          supplierDB.ID,
		CompanyName: supplierDB.CompanyName,
		Email:       supplierDB.Email,
		CreatedAt:   supplierDB.CreatedAt,
	}, nil
}
