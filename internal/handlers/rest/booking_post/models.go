package booking_post

// Request запрос на создание брони. Вложения передаются внутри JSON
// в base64; поле data у encoding/json декодируется из base64 само.
type Request struct {
	SupplierID  int64        `json:"supplier_id"`
	Yard        string       `json:"yard"`
	BookingDate string       `json:"booking_date"`
	Goods       []GoodsLine  `json:"goods"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type GoodsLine struct {
	ProductTypeID   int64 `json:"product_type_id"`
	Quantity        int64 `json:"quantity"`
	NumberOfPallets int64 `json:"number_of_pallets"`
}

type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

type Response struct {
	ID             int64    `json:"id"`
	Reference      string   `json:"reference"`
	Status         string   `json:"status"`
	AttachmentURLs []string `json:"attachment_urls,omitempty"`
}

// CapacityExceededResponse структурированный ответ 409 при превышении ёмкости дня.
type CapacityExceededResponse struct {
	Message string `json:"message"`
}
