package usecase

import (
	"context"
	"sync"

	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// DashboardSummary is the home-screen aggregate. Each field loads on its own;
// a failed fetch leaves its field zero and sets Partial instead of failing
// the whole screen.
type DashboardSummary struct {
	Revenue         Revenue `json:"revenue"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	UnreadCount     int     `json:"unreadCount"`
	Partial         bool    `json:"partial,omitempty"`
}

// IDashboardUseCase aggregates the home screen in one call.

type IDashboardUseCase interface {
	Summary(ctx context.Context, email string, role entities.Role) (DashboardSummary, error)
}

type DashboardUseCase struct {
	bills         IBillUseCase
	orders        interfaces.IOrderRepository
	notifications INotificationUseCase
	log           *logrus.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(bills IBillUseCase, orders interfaces.IOrderRepository, notifications INotificationUseCase, log *logrus.Logger) *DashboardUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DashboardUseCase{bills: bills, orders: orders, notifications: notifications, log: log}
}

func (u *DashboardUseCase) Summary(ctx context.Context, email string, role entities.Role) (DashboardSummary, error) {
	var (
		sum DashboardSummary
		mu  sync.Mutex
		wg  sync.WaitGroup
	)

	fail := func(part string, err error) {
		u.log.WithError(err).WithField("part", part).Warn("dashboard fetch failed")
		mu.Lock()
		sum.Partial = true
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		rev, err := u.bills.Revenue(ctx)
		if err != nil {
			fail("revenue", err)
			return
		}
		mu.Lock()
		sum.Revenue = rev
		if rev.Partial {
			sum.Partial = true
		}
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		items, err := u.orders.ListByStatus(ctx, entities.OrderStatusPending)
		if err != nil {
			fail("pending orders", err)
			return
		}
		mu.Lock()
		sum.PendingOrders = len(items)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		items, err := u.orders.ListByStatus(ctx, entities.OrderStatusCompleted)
		if err != nil {
			fail("completed orders", err)
			return
		}
		mu.Lock()
		sum.CompletedOrders = len(items)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		count, err := u.notifications.UnreadCount(ctx, email, role)
		if err != nil {
			fail("unread count", err)
			return
		}
		mu.Lock()
		sum.UnreadCount = count
		mu.Unlock()
	}()
	wg.Wait()
	return sum, nil
}
