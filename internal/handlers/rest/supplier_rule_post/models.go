package supplier_rule_post

type Request struct {
	SupplierName      string `json:"supplier_name"`
	Day               string `json:"day"`
	AllocatedCapacity int64  `json:"allocated_capacity"`
	Tolerance         int64  `json:"tolerance"`
	DeliveryEmail     string `json:"delivery_email,omitempty"`
}

type Response struct {
	ID                int64  `json:"id"`
	SupplierName      string `json:"supplier_name"`
	Day               string `json:"day"`
	AllocatedCapacity int64  `json:"allocated_capacity"`
	Tolerance         int64  `json:"tolerance"`
	DeliveryEmail     string `json:"delivery_email,omitempty"`
}

// ValidationErrorResponse тело 400 с человекочитаемым сообщением валидации,
// в том числе с максимальной допустимой ёмкостью дня.
type ValidationErrorResponse struct {
	Message string `json:"message"`
}
