//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_test
package availability

import (
	"context"
	"time"

	"yardbook/internal/entities"
)

type ScheduleService interface {
	ResolveDayCapacity(ctx context.Context, date time.Time) (entities.DayCapacity, error)
}

type RuleRepository interface {
	GetByNameAndDay(ctx context.Context, supplierName string, day entities.Weekday) (*entities.SupplierRule, error)
	SumAllocatedForDayExcluding(ctx context.Context, day entities.Weekday, supplierName string) (int64, error)
}

type DemandRepository interface {
	SumQuantitiesForDateBySupplier(ctx context.Context, date time.Time, typeIDs []int64, supplierID int64) (int64, error)
	SumQuantitiesForDateExcludingSupplier(ctx context.Context, date time.Time, typeIDs []int64, supplierID int64) (int64, error)
	ExistsBookingForDate(ctx context.Context, date time.Time, typeIDs []int64) (bool, error)
}

type SupplierDirectory interface {
	GetByID(ctx context.Context, id int64) (*entities.Supplier, error)
}
