package booking_status_changed

// statusChangedEvent событие смены статуса брони в топике Kafka.
type statusChangedEvent struct {
	BookingID int64  `json:"booking_id"`
	Status    string `json:"status"`
}
