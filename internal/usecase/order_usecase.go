package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"servicevale/internal/domain/entities"
	"servicevale/internal/domain/listing"
	"servicevale/internal/domain/viewstate"
	"servicevale/internal/usecase/interfaces"
	"servicevale/internal/whatsapp"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidServiceDate = errors.New("invalid service date, want YYYY-MM-DD")
	ErrInvalidServiceTime = errors.New("invalid service time, want h:MM with AM or PM")
)

const (
	scopePendingOrders   = "orders:pending"
	scopeCompletedOrders = "orders:completed"
)

// CreateOrderInput is the admin's order form. The service time arrives the
// way it is entered, as a 12-hour clock plus period, and is stored sortable.
type CreateOrderInput struct {
	EngineerID    string
	ClientName    string
	PhoneNumber   string
	Address       string
	BillAmount    string
	ServiceType   string
	ServiceDate   string // YYYY-MM-DD
	ServiceTime   string // h:MM, 12-hour clock
	ServicePeriod string // AM or PM
}

// IOrderUseCase exposes the service-order lifecycle.
//
// Notification asymmetry is intentional and mirrors who needs to hear about
// what: creating an order notifies the assigned engineer; an engineer
// completing a job notifies the admin; an admin completing or reopening a job
// notifies nobody.

type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	ListPending(ctx context.Context, f listing.Filter) ([]entities.ServiceOrder, error)
	ListCompleted(ctx context.Context, f listing.Filter) ([]entities.ServiceOrder, error)
	PendingCounts(ctx context.Context) (map[string]int, error)
	Complete(ctx context.Context, id, actorEmail string, actorRole entities.Role) (entities.ServiceOrder, error)
	MoveToPending(ctx context.Context, id string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	WhatsAppLink(ctx context.Context, id string) (string, error)
}

type OrderUseCase struct {
	repo          interfaces.IOrderRepository
	engineers     interfaces.IEngineerRepository
	notifications interfaces.INotificationRepository
	recent        *viewstate.Store[entities.ServiceOrder]
	adminEmail    string
	log           *logrus.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	engineers interfaces.IEngineerRepository,
	notifications interfaces.INotificationRepository,
	adminEmail string,
	log *logrus.Logger,
) *OrderUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &OrderUseCase{
		repo:          repo,
		engineers:     engineers,
		notifications: notifications,
		recent:        viewstate.New[entities.ServiceOrder](time.Minute, 25),
		adminEmail:    adminEmail,
		log:           log,
	}
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.ServiceOrder, error) {
	if _, err := time.Parse("2006-01-02", in.ServiceDate); err != nil {
		return entities.ServiceOrder{}, ErrInvalidServiceDate
	}
	serviceTime, err := to24Hour(in.ServiceTime, in.ServicePeriod)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	eng, err := u.engineers.GetByID(ctx, strings.TrimSpace(in.EngineerID))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if eng.ID == "" {
		return entities.ServiceOrder{}, ErrEngineerNotFound
	}

	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:                uuid.NewString(),
		ServiceboyName:    eng.Name,
		ServiceboyEmail:   eng.Email,
		ServiceboyContact: eng.ContactNo,
		ClientName:        strings.TrimSpace(in.ClientName),
		PhoneNumber:       strings.TrimSpace(in.PhoneNumber),
		Address:           strings.TrimSpace(in.Address),
		BillAmount:        strings.TrimSpace(in.BillAmount),
		ServiceType:       strings.TrimSpace(in.ServiceType),
		Status:            entities.OrderStatusPending,
		ServiceDate:       in.ServiceDate,
		ServiceTime:       serviceTime,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	u.recent.Remember(scopePendingOrders, created.ID, created)
	u.notify(ctx, eng.Email, fmt.Sprintf("New %s service assigned: %s, %s at %s",
		created.ServiceType, created.ClientName, created.DisplayDate(), created.DisplayTime()))
	return created, nil
}

// to24Hour converts an h:MM + AM/PM pair into the sortable HH:MM form.
func to24Hour(clock, period string) (string, error) {
	period = strings.ToUpper(strings.TrimSpace(period))
	if period != "AM" && period != "PM" {
		return "", ErrInvalidServiceTime
	}
	hh, mm, ok := strings.Cut(strings.TrimSpace(clock), ":")
	if !ok {
		return "", ErrInvalidServiceTime
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return "", ErrInvalidServiceTime
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 || len(mm) != 2 {
		return "", ErrInvalidServiceTime
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	if period == "PM" && hour != 12 {
		hour += 12
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// ListPending returns pending orders, soonest service slot first, with any
// not-yet-indexed recent writes spliced ahead.
func (u *OrderUseCase) ListPending(ctx context.Context, f listing.Filter) ([]entities.ServiceOrder, error) {
	items, err := u.repo.ListByStatus(ctx, entities.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	items = listing.Apply(items, f, assigneeOf, serviceDayOf)
	sort.Slice(items, func(i, j int) bool {
		if items[i].ServiceDate != items[j].ServiceDate {
			return items[i].ServiceDate < items[j].ServiceDate
		}
		return items[i].ServiceTime < items[j].ServiceTime
	})
	return u.recent.Splice(scopePendingOrders, items, orderID, func(o entities.ServiceOrder) bool {
		return o.Status == entities.OrderStatusPending && f.Matches(o.ServiceboyName, o.ServiceDay())
	}), nil
}

// ListCompleted returns completed orders, most recently completed first.
func (u *OrderUseCase) ListCompleted(ctx context.Context, f listing.Filter) ([]entities.ServiceOrder, error) {
	items, err := u.repo.ListByStatus(ctx, entities.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	items = listing.Apply(items, f, assigneeOf, completedDayOf)
	sort.Slice(items, func(i, j int) bool {
		return items[i].CompletedAt.After(items[j].CompletedAt)
	})
	return u.recent.Splice(scopeCompletedOrders, items, orderID, func(o entities.ServiceOrder) bool {
		return o.Status == entities.OrderStatusCompleted && f.Matches(o.ServiceboyName, o.CompletedAt)
	}), nil
}

// PendingCounts aggregates pending orders per engineer name, with every
// registered engineer present and the synthetic all-engineers total.
func (u *OrderUseCase) PendingCounts(ctx context.Context) (map[string]int, error) {
	items, err := u.repo.ListByStatus(ctx, entities.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	engs, err := u.engineers.List(ctx)
	if err != nil {
		return nil, err
	}
	known := make([]string, 0, len(engs))
	for _, e := range engs {
		known = append(known, e.Name)
	}
	return listing.CountByAssignee(items, known, assigneeOf), nil
}

// Complete marks the order completed and stamps the completion time.
// Completing an already completed order is a no-op, not an error. Only an
// engineer actor raises the admin notification.
func (u *OrderUseCase) Complete(ctx context.Context, id, actorEmail string, actorRole entities.Role) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Status == entities.OrderStatusCompleted {
		return o, nil
	}

	updated, err := u.repo.MarkCompleted(ctx, o.ID, time.Now().UTC())
	if err != nil {
		// The order can vanish between the read and the update.
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.ServiceOrder{}, ErrOrderNotFound
		}
		return entities.ServiceOrder{}, err
	}

	u.recent.Forget(scopePendingOrders, updated.ID)
	u.recent.Remember(scopeCompletedOrders, updated.ID, updated)
	if actorRole == entities.RoleEngineer {
		u.notify(ctx, u.adminEmail, fmt.Sprintf("%s completed the %s service for %s",
			updated.ServiceboyName, updated.ServiceType, updated.ClientName))
	} else {
		u.log.WithField("order_id", updated.ID).WithField("actor", actorEmail).
			Debug("admin completion, no notification")
	}
	return updated, nil
}

// MoveToPending reopens a completed order. Only the status field changes; the
// old completion timestamp stays on the record until the next completion
// overwrites it.
func (u *OrderUseCase) MoveToPending(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Status == entities.OrderStatusPending {
		return o, nil
	}

	updated, err := u.repo.MarkPending(ctx, o.ID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.ServiceOrder{}, ErrOrderNotFound
		}
		return entities.ServiceOrder{}, err
	}
	u.recent.Forget(scopeCompletedOrders, updated.ID)
	u.recent.Remember(scopePendingOrders, updated.ID, updated)
	return updated, nil
}

func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, o.ID); err != nil {
		return err
	}
	u.recent.Forget(scopePendingOrders, o.ID)
	u.recent.Forget(scopeCompletedOrders, o.ID)
	return nil
}

// WhatsAppLink builds the on-my-way deep link for the order's customer.
func (u *OrderUseCase) WhatsAppLink(ctx context.Context, id string) (string, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return whatsapp.OrderLink(o), nil
}

// notify writes an in-app notification, best-effort. Failures are logged and
// never propagate to the caller.
func (u *OrderUseCase) notify(ctx context.Context, userEmail, description string) {
	n := entities.Notification{
		ID:          uuid.NewString(),
		Description: description,
		UserEmail:   userEmail,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := u.notifications.Create(ctx, n); err != nil {
		u.log.WithError(err).WithField("user_email", userEmail).Warn("notification write failed")
	}
}

func orderID(o entities.ServiceOrder) string    { return o.ID }
func assigneeOf(o entities.ServiceOrder) string { return o.ServiceboyName }

func serviceDayOf(o entities.ServiceOrder) time.Time   { return o.ServiceDay() }
func completedDayOf(o entities.ServiceOrder) time.Time { return o.CompletedAt }
