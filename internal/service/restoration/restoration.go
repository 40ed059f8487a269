package restoration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yardbook/internal/entities"
	"yardbook/internal/service/supplierrule"
	"yardbook/pkg/logger"
)

type Restoration struct {
	repository    Repository
	mailer        Mailer
	sealer        TokenSealer
	windowFactory WindowFactory
	txManager     TxManager
	log           logger.Logger
}

func New(
	repository Repository,
	mailer Mailer,
	sealer TokenSealer,
	windowFactory WindowFactory,
	txManager TxManager,
	log logger.Logger,
) *Restoration {
	return &Restoration{
		repository:    repository,
		mailer:        mailer,
		sealer:        sealer,
		windowFactory: windowFactory,
		txManager:     txManager,
		log:           log,
	}
}

// Run один тик джобы восстановления ёмкости. Сначала освобождённая квота
// возвращается в allocated (идемпотентно: повторный запуск без смены дня не
// меняет состояние), затем поставщикам ближайшего окна рассылаются уведомления.
// Сбой отправки одному получателю логируется и не прерывает остальных.
func (r *Restoration) Run(ctx context.Context) (restored int64, sent int, err error) {
	restored, err = r.repository.RestoreFreedAllocations(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("restore freed allocations: %w", err)
	}

	window := r.windowFactory.Window(time.Now().UTC())

	rules, err := r.repository.GetNotifiableByDay(ctx, window.NoticeDay)
	if err != nil {
		return restored, 0, fmt.Errorf("get notifiable rules: %w", err)
	}

	for _, rule := range rules {
		token, err := r.sealer.Seal(rule.ID)
		if err != nil {
			r.log.Error("seal reservation token",
				logger.NewField("rule_id", rule.ID),
				logger.NewField("error", err),
			)
			continue
		}

		notice := entities.ReservationNotice{
			Email:             rule.DeliveryEmail,
			SupplierName:      rule.SupplierName,
			ReservationDate:   window.ReservationDate,
			Day:               window.NoticeDay,
			AllocatedCapacity: rule.AllocatedCapacity,
			RejectToken:       token,
		}

		if err := r.mailer.SendReservationNotice(ctx, notice); err != nil {
			r.log.Error("send reservation notice",
				logger.NewField("rule_id", rule.ID),
				logger.NewField("supplier", rule.SupplierName),
				logger.NewField("error", err),
			)
			continue
		}
		sent++
	}

	return restored, sent, nil
}

// RejectReservation обрабатывает отказ поставщика по ссылке из письма:
// allocated переходит в freed, зеркально шагу восстановления.
func (r *Restoration) RejectReservation(ctx context.Context, token string) (*entities.SupplierRule, error) {
	ruleID, err := r.sealer.Open(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	var rejected *entities.SupplierRule
	err = r.txManager.Do(ctx, func(ctx context.Context) error {
		rule, err := r.repository.GetByID(ctx, ruleID)
		if err != nil {
			if errors.Is(err, supplierrule.ErrRuleNotFound) {
				return ErrRuleNotFound
			}
			return fmt.Errorf("get supplier rule: %w", err)
		}

		if rule.AllocatedCapacity == 0 {
			return ErrNothingToReject
		}

		freed := rule.AllocatedCapacity
		var zero int64
		rejected, err = r.repository.Update(ctx, entities.SupplierRuleModify{
			ID:                &rule.ID,
			AllocatedCapacity: &zero,
			FreedCapacity:     &freed,
		})
		if err != nil {
			return fmt.Errorf("update supplier rule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}
