package booking

import "yardbook/internal/entities"

func ToDomain(bookingDB *BookingDB, goodsDB []GoodsDB) *entities.Booking {
	goods := make([]entities.Goods, 0, len(goodsDB))
	for _, g := range goodsDB {
		goods = append(goods, entities.Goods{
			ID:              g.ID,
			BookingID:       g.BookingID,
			TypeID:          g.TypeID,
			Quantities:      g.Quantities,
			NumberOfPallets: g.NumberOfPallets,
		})
	}

	return &entities.Booking{
		ID:             bookingDB.ID,
		Reference:      bookingDB.Reference,
		SupplierID:     bookingDB.SupplierID,
		Yard:           bookingDB.Yard,
		BookingDate:    bookingDB.BookingDate,
		Status:         entities.BookingStatusType(bookingDB.Status),
		Goods:          goods,
		AttachmentURLs: bookingDB.AttachmentURLs,
		CreatedAt:      bookingDB.CreatedAt,
		UpdatedAt:      bookingDB.UpdatedAt,
	}
}
