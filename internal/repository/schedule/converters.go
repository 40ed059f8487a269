package schedule

import "yardbook/internal/entities"

func ToDomain(s *ScheduleDB) *entities.DeliverySchedule {
	if s == nil {
		return nil
	}
	return &entities.DeliverySchedule{
		ID:            s.ID,
		Week:          s.Week,
		TotalCapacity: s.TotalCapacity,
		Tolerance:     s.Tolerance,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func ToDayDomain(d *RuleDayDB) entities.DeliveryRuleDay {
	return entities.DeliveryRuleDay{
		ID:         d.ID,
		ScheduleID: d.ScheduleID,
		Date:       d.Date.UTC(),
		Capacity:   d.Capacity,
		IsSaved:    d.IsSaved,
	}
}
