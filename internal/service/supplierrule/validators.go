package supplierrule

import (
	"strings"

	"yardbook/internal/entities"
)

func isValidSupplierName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidDay(day entities.Weekday) bool {
	return day.ISODow() != 0
}

// Пустой email допустим: такому правилу просто не шлются уведомления.
func isValidEmail(email string) bool {
	if email == "" {
		return true
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
