//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=producttype_test
package producttype

import (
	"context"

	"yardbook/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, typeModifyEntity entities.ProductTypeModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.ProductType, error)
	GetAll(ctx context.Context) ([]entities.ProductType, error)
	Update(ctx context.Context, typeModifyEntity entities.ProductTypeModify) (*entities.ProductType, error)
}
