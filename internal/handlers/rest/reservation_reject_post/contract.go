//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reservation_reject_post_test
package reservation_reject_post

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
	RejectReservation(ctx context.Context, token string) (*entities.SupplierRule, error)
}
