//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_type_post_test
package product_type_post

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
	CreateProductType(ctx context.Context, typeModify entities.ProductTypeModify) (int64, error)
}
