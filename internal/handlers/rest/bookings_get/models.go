package bookings_get

type Booking struct {
	ID             int64       `json:"id"`
	Reference      string      `json:"reference"`
	SupplierID     int64       `json:"supplier_id"`
	Yard           string      `json:"yard"`
	BookingDate    string      `json:"booking_date"`
	Status         string      `json:"status"`
	Goods          []GoodsLine `json:"goods"`
	AttachmentURLs []string    `json:"attachment_urls,omitempty"`
}

type GoodsLine struct {
	ProductTypeID   int64 `json:"product_type_id"`
	Quantity        int64 `json:"quantity"`
	NumberOfPallets int64 `json:"number_of_pallets"`
}
