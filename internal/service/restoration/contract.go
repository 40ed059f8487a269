//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restoration_test
package restoration

import (
	"context"
	"time"

	"yardbook/internal/entities"
)

type Repository interface {
	RestoreFreedAllocations(ctx context.Context) (int64, error)
	GetNotifiableByDay(ctx context.Context, day entities.Weekday) ([]entities.SupplierRule, error)
	GetByID(ctx context.Context, id int64) (*entities.SupplierRule, error)
	Update(ctx context.Context, ruleModifyEntity entities.SupplierRuleModify) (*entities.SupplierRule, error)
}

type Mailer interface {
	SendReservationNotice(ctx context.Context, notice entities.ReservationNotice) error
}

type TokenSealer interface {
	Seal(id int64) (string, error)
	Open(token string) (int64, error)
}

type WindowFactory interface {
	Window(now time.Time) entities.ReservationWindow
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
