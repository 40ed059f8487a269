package entities

import "time"

// SupplierRule персональная квота поставщика на день недели.
// AllocatedCapacity зарезервирована эксклюзивно за поставщиком; неиспользованная
// квота переводится джобой восстановления в FreedCapacity (и обратно).
type SupplierRule struct {
	ID                int64
	SupplierName      string
	Day               Weekday
	AllocatedCapacity int64
	Tolerance         int64
	FreedCapacity     int64
	DeliveryEmail     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type SupplierRuleModify struct {
	ID                *int64
	SupplierName      *string
	Day               *Weekday
	AllocatedCapacity *int64
	Tolerance         *int64
	FreedCapacity     *int64
	DeliveryEmail     *string
}

// ReservationWindow окно ближайшей резервации: день недели, по которому
// отбираются правила для уведомления, и календарная дата резервации.
type ReservationWindow struct {
	NoticeDay       Weekday
	ReservationDate time.Time
}

// ReservationNotice письмо-уведомление поставщику о предстоящем окне резервации.
type ReservationNotice struct {
	Email             string
	SupplierName      string
	ReservationDate   time.Time
	Day               Weekday
	AllocatedCapacity int64
	RejectToken       string
}
