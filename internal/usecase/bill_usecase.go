package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"servicevale/internal/domain/entities"
	"servicevale/internal/domain/listing"
	"servicevale/internal/domain/viewstate"
	"servicevale/internal/invoice"
	"servicevale/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrBillNotFound         = errors.New("bill not found")
	ErrInvalidBillNumber    = errors.New("invalid bill number")
	ErrInvalidServiceCharge = errors.New("invalid service charge")
	ErrInvalidCashGiven     = errors.New("cash given must cover the total")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

const (
	scopeBills         = "bills"
	billNumberAttempts = 3
	billSuffixLen      = 4
	billSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// CreateBillInput is the engineer's billing form.
type CreateBillInput struct {
	CustomerName   string
	ContactNumber  string
	Address        string
	ServiceType    string
	ServiceBoyName string
	ServiceCharge  string
	PaymentMethod  entities.PaymentMethod
	CashGiven      string
	Notes          string
	Signature      string
}

// Revenue carries the two rolling revenue windows. A window that failed to
// load reports zero and sets Partial.
type Revenue struct {
	Daily        float64 `json:"daily"`
	DailyCount   int     `json:"dailyCount"`
	Monthly      float64 `json:"monthly"`
	MonthlyCount int     `json:"monthlyCount"`
	Partial      bool    `json:"partial,omitempty"`
}

// IBillUseCase exposes billing: write-once bill creation, listings, the HTML
// invoice and the revenue windows.

type IBillUseCase interface {
	Create(ctx context.Context, in CreateBillInput) (entities.Bill, error)
	GetByNumber(ctx context.Context, billNumber string) (entities.Bill, error)
	List(ctx context.Context, f listing.Filter) ([]entities.Bill, error)
	Document(ctx context.Context, billNumber string) (string, error)
	Revenue(ctx context.Context) (Revenue, error)
}

type BillUseCase struct {
	repo   interfaces.IBillRepository
	recent *viewstate.Store[entities.Bill]
	log    *logrus.Logger
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(repo interfaces.IBillRepository, log *logrus.Logger) *BillUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &BillUseCase{
		repo:   repo,
		recent: viewstate.New[entities.Bill](time.Minute, 25),
		log:    log,
	}
}

func (u *BillUseCase) Create(ctx context.Context, in CreateBillInput) (entities.Bill, error) {
	charge, err := strconv.ParseFloat(strings.TrimSpace(in.ServiceCharge), 64)
	if err != nil || charge <= 0 {
		return entities.Bill{}, ErrInvalidServiceCharge
	}
	total := charge

	b := entities.Bill{
		CustomerName:   strings.TrimSpace(in.CustomerName),
		ContactNumber:  strings.TrimSpace(in.ContactNumber),
		Address:        strings.TrimSpace(in.Address),
		ServiceType:    strings.TrimSpace(in.ServiceType),
		ServiceBoyName: strings.TrimSpace(in.ServiceBoyName),
		ServiceCharge:  strings.TrimSpace(in.ServiceCharge),
		Total:          fmt.Sprintf("%.2f", total),
		PaymentMethod:  in.PaymentMethod,
		Notes:          strings.TrimSpace(in.Notes),
		Signature:      in.Signature,
		Status:         entities.BillStatusPaid,
	}

	switch in.PaymentMethod {
	case entities.PaymentMethodCash:
		given, err := strconv.ParseFloat(strings.TrimSpace(in.CashGiven), 64)
		if err != nil || given < total {
			return entities.Bill{}, ErrInvalidCashGiven
		}
		b.CashGiven = strings.TrimSpace(in.CashGiven)
		b.Change = fmt.Sprintf("%.2f", given-total)
	case entities.PaymentMethodUPI:
		// No cash fields for UPI.
	default:
		return entities.Bill{}, ErrInvalidPaymentMethod
	}

	now := time.Now()
	b.Date = now
	b.CreatedAt = now.UTC()

	// The bill number doubles as the document id; a suffix collision on the
	// same day loses the conditional write and gets a fresh suffix.
	var created entities.Bill
	for attempt := 0; attempt < billNumberAttempts; attempt++ {
		b.BillNumber, err = newBillNumber(now)
		if err != nil {
			return entities.Bill{}, err
		}
		created, err = u.repo.Create(ctx, b)
		if err == nil {
			break
		}
		if !errors.Is(err, interfaces.ErrConflict) {
			return entities.Bill{}, err
		}
		u.log.WithField("bill_number", b.BillNumber).Warn("bill number collision, regenerating")
	}
	if err != nil {
		return entities.Bill{}, err
	}

	u.recent.Remember(scopeBills, created.BillNumber, created)
	return created, nil
}

// newBillNumber mints BILL-YYYYMMDD-XXXX with four random characters from the
// uppercase base36 alphabet.
func newBillNumber(now time.Time) (string, error) {
	suffix := make([]byte, billSuffixLen)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(billSuffixAlphabet))))
		if err != nil {
			return "", err
		}
		suffix[i] = billSuffixAlphabet[n.Int64()]
	}
	return fmt.Sprintf("BILL-%s-%s", now.Format("20060102"), suffix), nil
}

func (u *BillUseCase) GetByNumber(ctx context.Context, billNumber string) (entities.Bill, error) {
	billNumber = strings.TrimSpace(billNumber)
	if billNumber == "" {
		return entities.Bill{}, ErrInvalidBillNumber
	}
	b, err := u.repo.GetByNumber(ctx, billNumber)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.BillNumber == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	return b, nil
}

// List returns bills newest first. An assignee filter narrows to one
// engineer's bills; the synthetic all-engineers name means no filter.
func (u *BillUseCase) List(ctx context.Context, f listing.Filter) ([]entities.Bill, error) {
	var (
		items []entities.Bill
		err   error
	)
	if f.Assignee == "" || f.Assignee == listing.AllBucket {
		f.Assignee = ""
		items, err = u.repo.List(ctx)
	} else {
		items, err = u.repo.ListByServiceBoyName(ctx, f.Assignee)
	}
	if err != nil {
		return nil, err
	}

	items = listing.Apply(items, listing.Filter{Day: f.Day}, billAssignee, billDay)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return u.recent.Splice(scopeBills, items, billNumberOf, func(b entities.Bill) bool {
		return f.Matches(b.ServiceBoyName, b.Day())
	}), nil
}

// Document renders the bill's HTML invoice.
func (u *BillUseCase) Document(ctx context.Context, billNumber string) (string, error) {
	b, err := u.GetByNumber(ctx, billNumber)
	if err != nil {
		return "", err
	}
	return invoice.Render(b)
}

// Revenue sums paid bills over the local calendar day and month so far. The
// two windows load concurrently and fail independently; a failed window is
// logged and reported as zero with Partial set.
func (u *BillUseCase) Revenue(ctx context.Context) (Revenue, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	var (
		rev Revenue
		mu  sync.Mutex
		wg  sync.WaitGroup
	)

	window := func(name string, from time.Time, total *float64, count *int) {
		defer wg.Done()
		bills, err := u.repo.ListPaidBetween(ctx, from, now)
		if err != nil {
			u.log.WithError(err).WithField("window", name).Warn("revenue window failed")
			mu.Lock()
			rev.Partial = true
			mu.Unlock()
			return
		}
		sum := 0.0
		for _, b := range bills {
			v, err := strconv.ParseFloat(b.Total, 64)
			if err != nil {
				u.log.WithField("bill_number", b.BillNumber).Warn("unparseable bill total skipped")
				continue
			}
			sum += v
		}
		mu.Lock()
		*total = sum
		*count = len(bills)
		mu.Unlock()
	}

	wg.Add(2)
	go window("daily", dayStart, &rev.Daily, &rev.DailyCount)
	go window("monthly", monthStart, &rev.Monthly, &rev.MonthlyCount)
	wg.Wait()
	return rev, nil
}

func billNumberOf(b entities.Bill) string { return b.BillNumber }
func billAssignee(b entities.Bill) string { return b.ServiceBoyName }
func billDay(b entities.Bill) time.Time   { return b.Day() }
