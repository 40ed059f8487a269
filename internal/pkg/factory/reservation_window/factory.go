package reservation_window

import (
	"time"

	"yardbook/internal/entities"
)

const (
	noticeOffsetDays      = 4
	reservationOffsetDays = 5
)

// WindowFactory вычисляет окно ближайшей резервации: правила отбираются по
// дню недели через 4 дня, сама дата резервации наступает через 5 дней.
type WindowFactory struct{}

func New() *WindowFactory {
	return &WindowFactory{}
}

func (w *WindowFactory) Window(now time.Time) entities.ReservationWindow {
	base := now.UTC().Truncate(24 * time.Hour)

	return entities.ReservationWindow{
		NoticeDay:       entities.WeekdayOf(base.AddDate(0, 0, noticeOffsetDays)),
		ReservationDate: base.AddDate(0, 0, reservationOffsetDays),
	}
}
