//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"
	"time"

	"yardbook/internal/entities"
)

type Repository interface {
	UpsertSchedule(ctx context.Context, scheduleModifyEntity entities.DeliveryScheduleModify) (*entities.DeliverySchedule, error)
	ReplaceDays(ctx context.Context, scheduleID int64, days []entities.DeliveryRuleDayModify) ([]entities.DeliveryRuleDay, error)
	GetByWeek(ctx context.Context, week string) (*entities.DeliverySchedule, error)
	GetDayCapacityByDate(ctx context.Context, date time.Time) (*entities.DayCapacity, error)
	MaxFutureCapacityForDay(ctx context.Context, day entities.Weekday, from time.Time) (maxCapacity, daysConfigured int64, err error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
