//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=supplierrule_test
package supplierrule

import (
	"context"

	"yardbook/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, ruleModifyEntity entities.SupplierRuleModify) (*entities.SupplierRule, error)
	Update(ctx context.Context, ruleModifyEntity entities.SupplierRuleModify) (*entities.SupplierRule, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entities.SupplierRule, error)
	GetAll(ctx context.Context) ([]entities.SupplierRule, error)
}

type ScheduleService interface {
	MaxFutureCapacityForDay(ctx context.Context, day entities.Weekday) (maxCapacity, daysConfigured int64, err error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
