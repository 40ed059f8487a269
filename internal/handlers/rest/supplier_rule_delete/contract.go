//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=supplier_rule_delete_test
package supplier_rule_delete

import (
	"context"
)

type Service interface {
	DeleteRule(ctx context.Context, id int64) error
}
