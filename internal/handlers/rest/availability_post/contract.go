//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_post_test
package availability_post

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
	CheckAvailability(ctx context.Context, supplierID int64, requestedGoods []entities.RequestedGoods) (map[string][]entities.DayAvailability, error)
}
