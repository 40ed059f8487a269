package supplierrule

import (
	"context"
	"fmt"

	"yardbook/internal/entities"
)

type SupplierRules struct {
	repository      Repository
	scheduleService ScheduleService
	txManager       TxManager
}

func New(repository Repository, scheduleService ScheduleService, txManager TxManager) *SupplierRules {
	return &SupplierRules{
		repository:      repository,
		scheduleService: scheduleService,
		txManager:       txManager,
	}
}

func (s *SupplierRules) CreateRule(ctx context.Context, ruleModify entities.SupplierRuleModify) (*entities.SupplierRule, error) {
	if ruleModify.SupplierName == nil ||
		ruleModify.Day == nil ||
		ruleModify.AllocatedCapacity == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidSupplierName(*ruleModify.SupplierName) {
		return nil, ErrInvalidSupplierName
	}
	if !isValidDay(*ruleModify.Day) {
		return nil, ErrInvalidDay
	}
	if *ruleModify.AllocatedCapacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if ruleModify.Tolerance != nil && *ruleModify.Tolerance < 0 {
		return nil, ErrInvalidCapacity
	}
	if ruleModify.DeliveryEmail != nil && !isValidEmail(*ruleModify.DeliveryEmail) {
		return nil, ErrInvalidEmail
	}

	if err := s.validateAllocation(ctx, *ruleModify.Day, *ruleModify.AllocatedCapacity); err != nil {
		return nil, err
	}

	rule, err := s.repository.Create(ctx, ruleModify)
	if err != nil {
		return nil, fmt.Errorf("create supplier rule: %w", err)
	}
	return rule, nil
}

func (s *SupplierRules) UpdateRule(ctx context.Context, ruleModify entities.SupplierRuleModify) (*entities.SupplierRule, error) {
	if ruleModify.ID == nil || *ruleModify.ID <= 0 {
		return nil, ErrInvalidRuleID
	}
	if ruleModify.SupplierName == nil &&
		ruleModify.Day == nil &&
		ruleModify.AllocatedCapacity == nil &&
		ruleModify.Tolerance == nil &&
		ruleModify.DeliveryEmail == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if ruleModify.SupplierName != nil && !isValidSupplierName(*ruleModify.SupplierName) {
		return nil, ErrInvalidSupplierName
	}
	if ruleModify.Day != nil && !isValidDay(*ruleModify.Day) {
		return nil, ErrInvalidDay
	}
	if ruleModify.AllocatedCapacity != nil && *ruleModify.AllocatedCapacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if ruleModify.Tolerance != nil && *ruleModify.Tolerance < 0 {
		return nil, ErrInvalidCapacity
	}
	if ruleModify.DeliveryEmail != nil && !isValidEmail(*ruleModify.DeliveryEmail) {
		return nil, ErrInvalidEmail
	}

	// Валидация квоты идёт по эффективным значениям: день и/или ёмкость могут
	// прийти из запроса частично, остальное берём из существующего правила.
	var updated *entities.SupplierRule
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, *ruleModify.ID)
		if err != nil {
			return fmt.Errorf("get supplier rule: %w", err)
		}

		effectiveDay := existing.Day
		if ruleModify.Day != nil {
			effectiveDay = *ruleModify.Day
		}
		effectiveAllocation := existing.AllocatedCapacity
		if ruleModify.AllocatedCapacity != nil {
			effectiveAllocation = *ruleModify.AllocatedCapacity
		}

		if err := s.validateAllocation(ctx, effectiveDay, effectiveAllocation); err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, ruleModify)
		if err != nil {
			return fmt.Errorf("update supplier rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SupplierRules) DeleteRule(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidRuleID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete supplier rule: %w", err)
	}
	return nil
}

func (s *SupplierRules) GetRule(ctx context.Context, id int64) (*entities.SupplierRule, error) {
	if id <= 0 {
		return nil, ErrInvalidRuleID
	}

	rule, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get supplier rule: %w", err)
	}
	return rule, nil
}

func (s *SupplierRules) GetRules(ctx context.Context) ([]entities.SupplierRule, error) {
	rules, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get supplier rules: %w", err)
	}
	return rules, nil
}

// validateAllocation отклоняет квоту, если для дня недели не настроено ни одного
// будущего DeliveryRuleDay или если квота превышает максимальную ёмкость среди них.
// Текст ошибки показывается пользователю как есть.
func (s *SupplierRules) validateAllocation(ctx context.Context, day entities.Weekday, allocatedCapacity int64) error {
	maxCapacity, daysConfigured, err := s.scheduleService.MaxFutureCapacityForDay(ctx, day)
	if err != nil {
		return fmt.Errorf("validate allocation: %w", err)
	}

	if daysConfigured == 0 {
		return fmt.Errorf("%w: %s", ErrNoCapacityConfigured, day)
	}
	if allocatedCapacity > maxCapacity {
		return fmt.Errorf("%w: maximum capacity for %s is %d", ErrAllocationExceedsDayCapacity, day, maxCapacity)
	}
	return nil
}
