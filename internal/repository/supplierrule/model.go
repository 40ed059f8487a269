package supplierrule

import "time"

type SupplierRuleDB struct {
	ID                int64
	SupplierName      string
	Day               string
	AllocatedCapacity int64
	Tolerance         int64
	FreedCapacity     int64
	DeliveryEmail     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type SupplierRuleModifyDB struct {
	ID                *int64
	SupplierName      *string
	Day               *string
	AllocatedCapacity *int64
	Tolerance         *int64
	FreedCapacity     *int64
	DeliveryEmail     *string
}
