//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=supplier_rule_put_test
package supplier_rule_put

import (
	"context"

	"yardbook/internal/entities"
	"yardbook/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateRule(ctx context.Context, ruleModify entities.SupplierRuleModify) (*entities.SupplierRule, error)
}
