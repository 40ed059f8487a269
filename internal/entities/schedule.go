package entities

import "time"

// DeliverySchedule именованный период ("неделя") с общей ёмкостью и допуском,
// владеющий набором DeliveryRuleDay. Не более одного расписания на идентификатор недели.
type DeliverySchedule struct {
	ID            int64
	Week          string
	TotalCapacity int64
	Tolerance     int64
	Days          []DeliveryRuleDay
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DeliveryRuleDay дневной потолок ёмкости, против которого проверяются все брони
// на эту дату независимо от типа продукции.
type DeliveryRuleDay struct {
	ID         int64
	ScheduleID int64
	Date       time.Time
	Capacity   int64
	IsSaved    bool
}

type DeliveryScheduleModify struct {
	ID            *int64
	Week          *string
	TotalCapacity *int64
	Tolerance     *int64
}

type DeliveryRuleDayModify struct {
	Date     time.Time
	Capacity int64
	IsSaved  bool
}

// DayCapacity результат резолва ёмкости на дату. Configured == false означает
// "день ещё не запланирован": такой день недоступен, а не безлимитен.
type DayCapacity struct {
	Capacity   int64
	Tolerance  int64
	Configured bool
}
