package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yardbook/internal/entities"
)

type Schedule struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Schedule {
	return &Schedule{
		repository: repository,
		txManager:  txManager,
	}
}

// UpsertWeek создаёт или обновляет расписание недели. Набор дней заменяется
// атомарно: старые дни удаляются и новые создаются в одной транзакции с
// обновлением заголовка.
func (s *Schedule) UpsertWeek(
	ctx context.Context,
	scheduleModify entities.DeliveryScheduleModify,
	days []entities.DeliveryRuleDayModify,
) (*entities.DeliverySchedule, error) {
	if scheduleModify.Week == nil || scheduleModify.TotalCapacity == nil || scheduleModify.Tolerance == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidWeek(*scheduleModify.Week) {
		return nil, ErrInvalidWeek
	}
	if *scheduleModify.TotalCapacity < 0 || *scheduleModify.Tolerance < 0 {
		return nil, ErrInvalidCapacity
	}
	if len(days) == 0 {
		return nil, ErrEmptyDaySet
	}
	for i := range days {
		if days[i].Capacity < 0 {
			return nil, ErrInvalidCapacity
		}
		days[i].Date = normalizeDate(days[i].Date)
	}

	var result *entities.DeliverySchedule
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		scheduleEntity, err := s.repository.UpsertSchedule(ctx, scheduleModify)
		if err != nil {
			return fmt.Errorf("upsert schedule: %w", err)
		}

		dayEntities, err := s.repository.ReplaceDays(ctx, scheduleEntity.ID, days)
		if err != nil {
			return fmt.Errorf("replace schedule days: %w", err)
		}

		scheduleEntity.Days = dayEntities
		result = scheduleEntity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Schedule) GetWeek(ctx context.Context, week string) (*entities.DeliverySchedule, error) {
	if !isValidWeek(week) {
		return nil, ErrInvalidWeek
	}

	scheduleEntity, err := s.repository.GetByWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("get schedule by week: %w", err)
	}
	return scheduleEntity, nil
}

// ResolveDayCapacity возвращает базовую ёмкость и допуск на дату.
// Отсутствие настроенного дня не ошибка: такой день отдаётся как Configured=false
// и трактуется вызывающими как недоступный, а не безлимитный.
func (s *Schedule) ResolveDayCapacity(ctx context.Context, date time.Time) (entities.DayCapacity, error) {
	dayCapacity, err := s.repository.GetDayCapacityByDate(ctx, normalizeDate(date))
	if err != nil {
		if errors.Is(err, ErrRuleDayNotFound) {
			return entities.DayCapacity{}, nil
		}
		return entities.DayCapacity{}, fmt.Errorf("resolve day capacity: %w", err)
	}
	return *dayCapacity, nil
}

// MaxFutureCapacityForDay возвращает максимальную ёмкость среди будущих
// DeliveryRuleDay данного дня недели и число таких дней.
func (s *Schedule) MaxFutureCapacityForDay(ctx context.Context, day entities.Weekday) (int64, int64, error) {
	from := normalizeDate(time.Now().UTC())
	maxCapacity, daysConfigured, err := s.repository.MaxFutureCapacityForDay(ctx, day, from)
	if err != nil {
		return 0, 0, fmt.Errorf("max future capacity for %s: %w", day, err)
	}
	return maxCapacity, daysConfigured, nil
}
