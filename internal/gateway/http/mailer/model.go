package mailer

// sendMailRequest тело запроса к почтовому сервису.
type sendMailRequest struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Template string            `json:"template"`
	Params   map[string]string `json:"params"`
}

const (
	templateReservationNotice   = "reservation_notice"
	templateBookingStatusChange = "booking_status_change"
)
