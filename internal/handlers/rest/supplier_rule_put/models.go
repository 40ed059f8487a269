package supplier_rule_put

// Request частичное обновление правила: присылаются только изменяемые поля.
type Request struct {
	ID                int64   `json:"id"`
	SupplierName      *string `json:"supplier_name,omitempty"`
	Day               *string `json:"day,omitempty"`
	AllocatedCapacity *int64  `json:"allocated_capacity,omitempty"`
	Tolerance         *int64  `json:"tolerance,omitempty"`
	DeliveryEmail     *string `json:"delivery_email,omitempty"`
}

type Response struct {
	ID                int64  `json:"id"`
	SupplierName      string `json:"supplier_name"`
	Day               string `json:"day"`
	AllocatedCapacity int64  `json:"allocated_capacity"`
	Tolerance         int64  `json:"tolerance"`
	DeliveryEmail     string `json:"delivery_email,omitempty"`
}

type ValidationErrorResponse struct {
	Message string `json:"message"`
}
