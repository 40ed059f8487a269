package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"yardbook/internal/entities"
	"yardbook/internal/service/schedule"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) UpsertSchedule(ctx context.Context, scheduleModify entities.DeliveryScheduleModify) (*entities.DeliverySchedule, error) {
	query := `
		INSERT INTO delivery_schedules (week, total_capacity, tolerance)
		VALUES ($1, $2, $3)
		ON CONFLICT (week) DO UPDATE
			SET total_capacity = EXCLUDED.total_capacity,
			    tolerance = EXCLUDED.tolerance,
			    updated_at = NOW()
		RETURNING id, week, total_capacity, tolerance, created_at, updated_at
	`

	var scheduleDB ScheduleDB
	err := r.querier.QueryRow(
		ctx,
		query,
		scheduleModify.Week,
		scheduleModify.TotalCapacity,
		scheduleModify.Tolerance,
	).Scan(
		&scheduleDB.ID,
		&scheduleDB.Week,
		&scheduleDB.TotalCapacity,
		&scheduleDB.Tolerance,
		&scheduleDB.CreatedAt,
		&scheduleDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository upsert error: %w", err)
	}

	return ToDomain(&scheduleDB), nil
}

// ReplaceDays удаляет старый набор дней расписания и создаёт новый.
// Атомарность обеспечивает транзакция вызывающего.
func (r *Repository) ReplaceDays(ctx context.Context, scheduleID int64, days []entities.DeliveryRuleDayModify) ([]entities.DeliveryRuleDay, error) {
	_, err := r.querier.Exec(ctx, `DELETE FROM delivery_rule_days WHERE schedule_id = $1`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository delete days error: %w", err)
	}

	builder := qb.
		Insert("delivery_rule_days").
		Columns("schedule_id", "date", "capacity", "is_saved")
	for _, day := range days {
		builder = builder.Values(scheduleID, day.Date, day.Capacity, day.IsSaved)
	}
	builder = builder.Suffix("RETURNING id, schedule_id, date, capacity, is_saved")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository insert days error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository insert days error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.DeliveryRuleDay, 0, len(days))
	for rows.Next() {
		var dayDB RuleDayDB
		err := rows.Scan(&dayDB.ID, &dayDB.ScheduleID, &dayDB.Date, &dayDB.Capacity, &dayDB.IsSaved)
		if err != nil {
			return nil, fmt.Errorf("unexpected schedule repository scan day error: %w", err)
		}
		result = append(result, ToDayDomain(&dayDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected schedule repository insert days error: %w", err)
	}

	return result, nil
}

func (r *Repository) GetByWeek(ctx context.Context, week string) (*entities.DeliverySchedule, error) {
	query := `
		SELECT id, week, total_capacity, tolerance, created_at, updated_at
		FROM delivery_schedules
		WHERE week = $1
	`

	var scheduleDB ScheduleDB
	err := r.querier.QueryRow(ctx, query, week).Scan(
		&scheduleDB.ID,
		&scheduleDB.Week,
		&scheduleDB.TotalCapacity,
		&scheduleDB.Tolerance,
		&scheduleDB.CreatedAt,
		&scheduleDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository get by week error: %w", err)
	}

	daysQuery := `
		SELECT id, schedule_id, date, capacity, is_saved
		FROM delivery_rule_days
		WHERE schedule_id = $1
		ORDER BY date ASC
	`

	rows, err := r.querier.Query(ctx, daysQuery, scheduleDB.ID)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository get days error: %w", err)
	}
	defer rows.Close()

	scheduleDomain := ToDomain(&scheduleDB)
	for rows.Next() {
		var dayDB RuleDayDB
		err := rows.Scan(&dayDB.ID, &dayDB.ScheduleID, &dayDB.Date, &dayDB.Capacity, &dayDB.IsSaved)
		if err != nil {
			return nil, fmt.Errorf("unexpected schedule repository scan day error: %w", err)
		}
		scheduleDomain.Days = append(scheduleDomain.Days, ToDayDomain(&dayDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected schedule repository get days error: %w", err)
	}

	return scheduleDomain, nil
}

func (r *Repository) GetDayCapacityByDate(ctx context.Context, date time.Time) (*entities.DayCapacity, error) {
	query := `
		SELECT d.capacity, s.tolerance
		FROM delivery_rule_days d
		JOIN delivery_schedules s ON s.id = d.schedule_id
		WHERE d.date = $1
	`

	dayCapacity := entities.DayCapacity{Configured: true}
	err := r.querier.QueryRow(ctx, query, date).Scan(&dayCapacity.Capacity, &dayCapacity.Tolerance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrRuleDayNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository get day capacity error: %w", err)
	}

	return &dayCapacity, nil
}

func (r *Repository) MaxFutureCapacityForDay(ctx context.Context, day entities.Weekday, from time.Time) (int64, int64, error) {
	query := `
		SELECT COALESCE(MAX(capacity), 0), COUNT(*)
		FROM delivery_rule_days
		WHERE date >= $1
		  AND EXTRACT(ISODOW FROM date) = $2
	`

	var maxCapacity, daysConfigured int64
	err := r.querier.QueryRow(ctx, query, from, day.ISODow()).Scan(&maxCapacity, &daysConfigured)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected schedule repository max capacity error: %w", err)
	}

	return maxCapacity, daysConfigured, nil
}
