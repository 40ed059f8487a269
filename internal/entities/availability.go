package entities

// DayAvailability результат проверки одного дня-кандидата.
// Remaining и MaxCapacity равны nil, когда базовая ёмкость дня не настроена
// (это "не запланировано", а не "ноль свободной ёмкости").
type DayAvailability struct {
	RequestedQty    int64
	CurrentlyBooked int64
	Available       bool
	Remaining       *int64
	MaxCapacity     *int64
	Message         string
}

const (
	MessageAvailable         = "Available"
	MessageNotEnoughCapacity = "Not Available - Not enough capacity"
	MessageDayNotScheduled   = "Not Available - Day not scheduled"
	MessageDayAlreadyBooked  = "Not Available - Day already booked"
)
