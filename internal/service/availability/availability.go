package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"yardbook/internal/entities"
)

// evalParallelism ограничивает число одновременно проверяемых дней окна.
const evalParallelism = 8

type Config struct {
	// DaysToCheck глубина скользящего окна проверки, в днях от сегодня.
	DaysToCheck int
	// SingleBookingPerDay включает жёсткое правило "одна бронь на день":
	// любая существующая бронь на дату по запрошенным типам продукции
	// перекрывает результат в "Not Available - Day already booked"
	// независимо от количественной математики.
	SingleBookingPerDay bool
}

type Availability struct {
	scheduleService ScheduleService
	rules           RuleRepository
	demand          DemandRepository
	suppliers       SupplierDirectory
	cfg             Config
}

func New(
	scheduleService ScheduleService,
	rules RuleRepository,
	demand DemandRepository,
	suppliers SupplierDirectory,
	cfg Config,
) *Availability {
	return &Availability{
		scheduleService: scheduleService,
		rules:           rules,
		demand:          demand,
		suppliers:       suppliers,
		cfg:             cfg,
	}
}

// CheckAvailability прогоняет проверку по окну дней-кандидатов начиная с сегодня
// и возвращает карту "YYYY-MM-DD" -> результаты. Дни независимы друг от друга и
// считаются параллельно; вызывающий получает карту целиком.
func (a *Availability) CheckAvailability(
	ctx context.Context,
	supplierID int64,
	requestedGoods []entities.RequestedGoods,
) (map[string][]entities.DayAvailability, error) {
	if supplierID <= 0 {
		return nil, ErrInvalidSupplier
	}
	if len(requestedGoods) == 0 {
		return nil, ErrNoRequestedGoods
	}

	var totalRequested int64
	typeIDs := make([]int64, 0, len(requestedGoods))
	for _, goods := range requestedGoods {
		if goods.TypeID <= 0 || goods.Quantity <= 0 {
			return nil, fmt.Errorf("%w: type %d quantity %d", ErrInvalidGoods, goods.TypeID, goods.Quantity)
		}
		typeIDs = append(typeIDs, goods.TypeID)
		totalRequested += goods.Quantity
	}

	supplier, err := a.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("resolve supplier: %w", err)
	}

	today := startOfDay(time.Now().UTC())
	results := make([]entities.DayAvailability, a.cfg.DaysToCheck)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(evalParallelism)

	for i := 0; i < a.cfg.DaysToCheck; i++ {
		date := today.AddDate(0, 0, i)
		group.Go(func() error {
			dayResult, err := a.evaluateDay(groupCtx, supplier, typeIDs, totalRequested, date)
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", date.Format(time.DateOnly), err)
			}
			results[i] = dayResult
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	window := make(map[string][]entities.DayAvailability, a.cfg.DaysToCheck)
	for i := 0; i < a.cfg.DaysToCheck; i++ {
		date := today.AddDate(0, 0, i)
		window[date.Format(time.DateOnly)] = []entities.DayAvailability{results[i]}
	}
	return window, nil
}

func (a *Availability) evaluateDay(
	ctx context.Context,
	supplier *entities.Supplier,
	typeIDs []int64,
	totalRequested int64,
	date time.Time,
) (entities.DayAvailability, error) {
	dayCapacity, err := a.scheduleService.ResolveDayCapacity(ctx, date)
	if err != nil {
		return entities.DayAvailability{}, err
	}

	weekday := entities.WeekdayOf(date)

	rule, err := a.rules.GetByNameAndDay(ctx, supplier.CompanyName, weekday)
	if err != nil && !errors.Is(err, ErrRuleNotFound) {
		return entities.DayAvailability{}, fmt.Errorf("get supplier rule: %w", err)
	}

	var maxCapacity, tolerance, booked int64
	if rule != nil {
		// У поставщика есть персональная квота: считаем только его собственный
		// спрос против неё.
		maxCapacity = rule.AllocatedCapacity
		tolerance = rule.Tolerance

		booked, err = a.demand.SumQuantitiesForDateBySupplier(ctx, date, typeIDs, supplier.ID)
		if err != nil {
			return entities.DayAvailability{}, fmt.Errorf("supplier-scoped demand: %w", err)
		}
	} else {
		// Общий пул: из базовой ёмкости вычитаются чужие резервы, спрос
		// считается по броням всех остальных поставщиков.
		otherSuppliersCapacity, err := a.rules.SumAllocatedForDayExcluding(ctx, weekday, supplier.CompanyName)
		if err != nil {
			return entities.DayAvailability{}, fmt.Errorf("sum reserved capacity: %w", err)
		}

		maxCapacity = dayCapacity.Capacity - otherSuppliersCapacity
		if maxCapacity < 0 {
			maxCapacity = 0
		}
		tolerance = dayCapacity.Tolerance

		booked, err = a.demand.SumQuantitiesForDateExcludingSupplier(ctx, date, typeIDs, supplier.ID)
		if err != nil {
			return entities.DayAvailability{}, fmt.Errorf("pool-scoped demand: %w", err)
		}
	}

	remaining := maxCapacity + tolerance - booked
	if remaining < 0 {
		remaining = 0
	}

	result := entities.DayAvailability{
		RequestedQty:    totalRequested,
		CurrentlyBooked: booked,
	}

	// День с ненастроенной базовой ёмкостью недоступен всегда, независимо от
	// персональных квот; remaining/maxCapacity в этом случае не отдаются.
	if dayCapacity.Capacity <= 0 {
		result.Available = false
		result.Message = entities.MessageDayNotScheduled
	} else {
		result.Remaining = &remaining
		result.MaxCapacity = &maxCapacity
		result.Available = totalRequested <= remaining
		if result.Available {
			result.Message = entities.MessageAvailable
		} else {
			result.Message = entities.MessageNotEnoughCapacity
		}
	}

	if a.cfg.SingleBookingPerDay {
		alreadyBooked, err := a.demand.ExistsBookingForDate(ctx, date, typeIDs)
		if err != nil {
			return entities.DayAvailability{}, fmt.Errorf("existing booking check: %w", err)
		}
		if alreadyBooked {
			result.Available = false
			result.Message = entities.MessageDayAlreadyBooked
		}
	}

	return result, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
