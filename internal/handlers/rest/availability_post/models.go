package availability_post

// Request запрос проверки доступности окна дней.
type Request struct {
	RequestingUserID int64            `json:"requesting_user_id"`
	RequestedGoods   []RequestedGoods `json:"requested_goods"`
}

type RequestedGoods struct {
	ProductTypeID int64 `json:"product_type_id"`
	Quantity      int64 `json:"quantity"`
}

// DayResult результат по одному дню окна.
type DayResult struct {
	RequestedQty    int64  `json:"requested_qty"`
	CurrentlyBooked int64  `json:"currently_booked"`
	Available       bool   `json:"available"`
	Remaining       *int64 `json:"remaining"`
	MaxCapacity     *int64 `json:"max_capacity"`
	Message         string `json:"message"`
}
