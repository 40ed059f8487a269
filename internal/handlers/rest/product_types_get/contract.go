//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_types_get_test
package product_types_get

import (
	"context"

	"yardbook/internal/entities"
	"yardbook/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetProductTypes(ctx context.Context) ([]entities.ProductType, error)
}
