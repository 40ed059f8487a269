package supplierrule

import "yardbook/internal/entities"

func ToDomain(r *SupplierRuleDB) *entities.SupplierRule {
	if r == nil {
		return nil
	}
	return &entities.SupplierRule{
		ID:                r.ID,
		SupplierName:      r.SupplierName,
		Day:               entities.Weekday(r.Day),
		AllocatedCapacity: r.AllocatedCapacity,
		Tolerance:         r.Tolerance,
		FreedCapacity:     r.FreedCapacity,
		DeliveryEmail:     r.DeliveryEmail,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func FromDomainModify(ruleModify *entities.SupplierRuleModify) *SupplierRuleModifyDB {
	if ruleModify == nil {
		return nil
	}
	ruleModifyDB := &SupplierRuleModifyDB{}

	if ruleModify.ID != nil {
		ruleModifyDB.ID = ruleModify.ID
	}
	if ruleModify.SupplierName != nil {
		ruleModifyDB.SupplierName = ruleModify.SupplierName
	}
	if ruleModify.Day != nil {
		day := ruleModify.Day.String()
		ruleModifyDB.Day = &day
	}
	if ruleModify.AllocatedCapacity != nil {
		ruleModifyDB.AllocatedCapacity = ruleModify.AllocatedCapacity
	}
	if ruleModify.Tolerance != nil {
		ruleModifyDB.Tolerance = ruleModify.Tolerance
	}
	if ruleModify.FreedCapacity != nil {
		ruleModifyDB.FreedCapacity = ruleModify.FreedCapacity
	}
	if ruleModify.DeliveryEmail != nil {
		ruleModifyDB.DeliveryEmail = ruleModify.DeliveryEmail
	}

	return ruleModifyDB
}
