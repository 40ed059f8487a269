package booking_put

// Request частичное обновление брони: присылаются только изменяемые поля.
type Request struct {
	ID          int64   `json:"id"`
	Status      *string `json:"status,omitempty"`
	BookingDate *string `json:"booking_date,omitempty"`
	Yard        *string `json:"yard,omitempty"`
}

type Response struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
}
