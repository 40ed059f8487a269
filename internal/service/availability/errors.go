package availability

import "errors"

var (
	ErrNoRequestedGoods = errors.New("at least one goods position is required")
	ErrInvalidGoods     = errors.New("invalid goods position")
	ErrInvalidSupplier  = errors.New("invalid requesting supplier")

	// ErrRuleNotFound возвращается RuleRepository, когда у поставщика нет
	// правила на данный день недели. Для вычисления это штатная ветка.
	ErrRuleNotFound = errors.New("supplier rule not found")
)
