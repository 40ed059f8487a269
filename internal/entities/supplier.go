package entities

import "time"

// Supplier пользователь-поставщик. Правила SupplierRule ссылаются на него
// слабой связью по CompanyName (точное совпадение строки, без foreign key):
// переименование компании осиротит её правила, каскадного обновления нет.
type Supplier struct {
	ID          int64
	CompanyName string
	Email       string
	CreatedAt   time.Time
}
