package entities

import "time"

type Booking struct {
	ID             int64
	Reference      string
	SupplierID     int64
	Yard           string
	BookingDate    time.Time
	Status         BookingStatusType
	Goods          []Goods
	AttachmentURLs []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type BookingStatusType string

const (
	BookingPending     BookingStatusType = "pending"
	BookingConfirmed   BookingStatusType = "confirmed"
	BookingRescheduled BookingStatusType = "rescheduled"
	BookingCancelled   BookingStatusType = "cancelled"
)

const DefaultBookingStatus = BookingPending

func (s BookingStatusType) String() string {
	return string(s)
}

// Goods строка брони. После создания не изменяется.
type Goods struct {
	ID              int64
	BookingID       int64
	TypeID          int64
	Quantities      int64
	NumberOfPallets int64
}

type BookingModify struct {
	ID             *int64
	Reference      *string
	SupplierID     *int64
	Yard           *string
	BookingDate    *time.Time
	Status         *BookingStatusType
	AttachmentURLs *[]string
}

// RequestedGoods позиция запроса на проверку доступности.
type RequestedGoods struct {
	TypeID   int64
	Quantity int64
}

// BookingStatusMail письмо поставщику о смене статуса его брони.
type BookingStatusMail struct {
	Email        string
	SupplierName string
	Reference    string
	BookingDate  time.Time
	Status       BookingStatusType
}

// Attachment файл, прикладываемый к брони при создании.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}
