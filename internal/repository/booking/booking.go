package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"yardbook/internal/entities"
	"yardbook/internal/repository"
	"yardbook/internal/service/booking"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bookingColumns = "id, reference, supplier_id, yard, booking_date, status, attachment_urls, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bookingModifyEntity entities.BookingModify, goods []entities.Goods) (*entities.Booking, error) {
	bookingModifyDB := FromDomainModify(&bookingModifyEntity)

	query := `
		INSERT INTO bookings (reference, supplier_id, yard, booking_date, status, attachment_urls)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, '{}'))
		RETURNING ` + bookingColumns

	var bookingDB BookingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		bookingModifyDB.Reference,
		bookingModifyDB.SupplierID,
		bookingModifyDB.Yard,
		bookingModifyDB.BookingDate,
		bookingModifyDB.Status,
		bookingModifyDB.AttachmentURLs,
	).Scan(
		&bookingDB.ID,
		&bookingDB.Reference,
		&bookingDB.SupplierID,
		&bookingDB.Yard,
		&bookingDB.BookingDate,
		&bookingDB.Status,
		&bookingDB.AttachmentURLs,
		&bookingDB.CreatedAt,
		&bookingDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, booking.ErrDuplicateBooking
		}
		return nil, fmt.Errorf("unexpected booking repository create error: %w", err)
	}

	goodsDB, err := r.insertGoods(ctx, bookingDB.ID, goods)
	if err != nil {
		return nil, err
	}

	return ToDomain(&bookingDB, goodsDB), nil
}

func (r *Repository) insertGoods(ctx context.Context, bookingID int64, goods []entities.Goods) ([]GoodsDB, error) {
	if len(goods) == 0 {
		return nil, nil
	}

	builder := qb.Insert("goods").
		Columns("booking_id", "type_id", "quantities", "number_of_pallets")
	for _, g := range goods {
		builder = builder.Values(bookingID, g.TypeID, g.Quantities, g.NumberOfPallets)
	}
	builder = builder.Suffix("RETURNING id, booking_id, type_id, quantities, number_of_pallets")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository insert goods error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository insert goods error: %w", err)
	}
	defer rows.Close()

	return scanGoods(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var bookingDB BookingDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&bookingDB.ID,
		&bookingDB.Reference,
		&bookingDB.SupplierID,
		&bookingDB.Yard,
		&bookingDB.BookingDate,
		&bookingDB.Status,
		&bookingDB.AttachmentURLs,
		&bookingDB.CreatedAt,
		&bookingDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository get error: %w", err)
	}

	goodsDB, err := r.goodsByBooking(ctx, bookingDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&bookingDB, goodsDB), nil
}

func (r *Repository) GetBySupplier(ctx context.Context, supplierID int64) ([]entities.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE supplier_id = $1 ORDER BY booking_date DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository get by supplier error: %w", err)
	}
	defer rows.Close()

	var bookingsDB []BookingDB
	for rows.Next() {
		var bookingDB BookingDB
		err = rows.Scan(
			&bookingDB.ID,
			&bookingDB.Reference,
			&bookingDB.SupplierID,
			&bookingDB.Yard,
			&bookingDB.BookingDate,
			&bookingDB.Status,
			&bookingDB.AttachmentURLs,
			&bookingDB.CreatedAt,
			&bookingDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected booking repository scan error: %w", err)
		}
		bookingsDB = append(bookingsDB, bookingDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected booking repository rows error: %w", err)
	}

	bookings := make([]entities.Booking, 0, len(bookingsDB))
	for i := range bookingsDB {
		goodsDB, err := r.goodsByBooking(ctx, bookingsDB[i].ID)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *ToDomain(&bookingsDB[i], goodsDB))
	}

	return bookings, nil
}

func (r *Repository) Update(ctx context.Context, bookingModifyEntity entities.BookingModify) (*entities.Booking, error) {
	bookingModifyDB := FromDomainModify(&bookingModifyEntity)

	builder := qb.Update("bookings")

	// опциональные поля
	if bookingModifyDB.Yard != nil {
		builder = builder.Set("yard", bookingModifyDB.Yard)
	}
	if bookingModifyDB.BookingDate != nil {
		builder = builder.Set("booking_date", bookingModifyDB.BookingDate)
	}
	if bookingModifyDB.Status != nil {
		builder = builder.Set("status", bookingModifyDB.Status)
	}
	if bookingModifyDB.AttachmentURLs != nil {
		builder = builder.Set("attachment_urls", *bookingModifyDB.AttachmentURLs)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": bookingModifyDB.ID}).
		Suffix("RETURNING " + bookingColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}

	var bookingDB BookingDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&bookingDB.ID,
		&bookingDB.Reference,
		&bookingDB.SupplierID,
		&bookingDB.Yard,
		&bookingDB.BookingDate,
		&bookingDB.Status,
		&bookingDB.AttachmentURLs,
		&bookingDB.CreatedAt,
		&bookingDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}

	goodsDB, err := r.goodsByBooking(ctx, bookingDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&bookingDB, goodsDB), nil
}

// SumQuantitiesForDate суммарный спрос на дату по указанным типам продукции.
// Отменённые брони спроса не создают.
func (r *Repository) SumQuantitiesForDate(ctx context.Context, date time.Time, typeIDs []int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(g.quantities), 0)
		FROM goods g
		JOIN bookings b ON b.id = g.booking_id
		WHERE b.booking_date = $1
		  AND b.status != 'cancelled'
		  AND g.type_id = ANY($2)
	`

	var total int64
	err := r.querier.QueryRow(ctx, query, date, typeIDs).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository sum quantities error: %w", err)
	}

	return total, nil
}

func (r *Repository) SumQuantitiesForDateBySupplier(ctx context.Context, date time.Time, typeIDs []int64, supplierID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(g.quantities), 0)
		FROM goods g
		JOIN bookings b ON b.id = g.booking_id
		WHERE b.booking_date = $1
		  AND b.status != 'cancelled'
		  AND g.type_id = ANY($2)
		  AND b.supplier_id = $3
	`

	var total int64
	err := r.querier.QueryRow(ctx, query, date, typeIDs, supplierID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository sum quantities error: %w", err)
	}

	return total, nil
}

func (r *Repository) SumQuantitiesForDateExcludingSupplier(ctx context.Context, date time.Time, typeIDs []int64, supplierID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(g.quantities), 0)
		FROM goods g
		JOIN bookings b ON b.id = g.booking_id
		WHERE b.booking_date = $1
		  AND b.status != 'cancelled'
		  AND g.type_id = ANY($2)
		  AND b.supplier_id != $3
	`

	var total int64
	err := r.querier.QueryRow(ctx, query, date, typeIDs, supplierID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository sum quantities error: %w", err)
	}

	return total, nil
}

func (r *Repository) ExistsBookingForDate(ctx context.Context, date time.Time, typeIDs []int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM goods g
			JOIN bookings b ON b.id = g.booking_id
			WHERE b.booking_date = $1
			  AND b.status != 'cancelled'
			  AND g.type_id = ANY($2)
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, date, typeIDs).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected booking repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) goodsByBooking(ctx context.Context, bookingID int64) ([]GoodsDB, error) {
	query := `
		SELECT id, booking_id, type_id, quantities, number_of_pallets
		FROM goods
		WHERE booking_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository get goods error: %w", err)
	}
	defer rows.Close()

	return scanGoods(rows)
}

func scanGoods(rows pgx.Rows) ([]GoodsDB, error) {
	var goods []GoodsDB
	for rows.Next() {
		var g GoodsDB
		if err := rows.Scan(&g.ID, &g.BookingID, &g.TypeID, &g.Quantities, &g.NumberOfPallets); err != nil {
			return nil, fmt.Errorf("unexpected booking repository scan goods error: %w", err)
		}
		goods = append(goods, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected booking repository rows error: %w", err)
	}

	return goods, nil
}
