package booking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"lipo/models"
)

var errNotFound = errors.New("not found")

// fakeRepo is an in-memory BookingRepository mirroring the mongo contract:
// List applies filters conjunctively and returns newest first. Guarded by a
// mutex so concurrent creation tests can share it.
type fakeRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	messages []models.BookingMessage
	reviews  map[string]*models.BookingReview

	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: make(map[string]*models.Booking),
		reviews:  make(map[string]*models.BookingReview),
	}
}

func (f *fakeRepo) Create(_ context.Context, bk *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *bk
	f.bookings[bk.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bk, ok := f.bookings[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *bk
	return &cp, nil
}

func (f *fakeRepo) GetByConfirmationCode(_ context.Context, code string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, bk := range f.bookings {
		if bk.ConfirmationCode == code {
			cp := *bk
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) List(_ context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, bk := range f.bookings {
		if filters.ProviderID != "" && bk.ProviderID != filters.ProviderID {
			continue
		}
		if filters.CustomerID != "" && bk.CustomerID != filters.CustomerID {
			continue
		}
		if filters.ListingID != "" && bk.ListingID != filters.ListingID {
			continue
		}
		if filters.DateFrom != "" && bk.BookingDate < filters.DateFrom {
			continue
		}
		if filters.DateTo != "" && bk.BookingDate > filters.DateTo {
			continue
		}
		if len(filters.Statuses) > 0 {
			matched := false
			for _, s := range filters.Statuses {
				if bk.Status == s {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, *bk)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BookingDate != out[j].BookingDate {
			return out[i].BookingDate > out[j].BookingDate
		}
		return out[i].StartTime > out[j].StartTime
	})
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status models.BookingStatus, notes string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	bk, ok := f.bookings[id]
	if !ok {
		return errNotFound
	}
	bk.Status = status
	bk.UpdatedAt = at
	if notes != "" {
		bk.ProviderNotes = notes
	}
	return nil
}

func (f *fakeRepo) ActiveOnDate(_ context.Context, providerID, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, bk := range f.bookings {
		if bk.ProviderID == providerID && bk.BookingDate == date && bk.Active() {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (f *fakeRepo) InRange(_ context.Context, providerID, dateFrom, dateTo string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, bk := range f.bookings {
		if bk.ProviderID == providerID && bk.BookingDate >= dateFrom && bk.BookingDate <= dateTo {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (f *fakeRepo) ExpirePending(_ context.Context, before time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, bk := range f.bookings {
		if bk.Status == models.BookingPending && bk.CreatedAt.Before(before) {
			bk.Status = models.BookingCancelled
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) AddMessage(_ context.Context, msg *models.BookingMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeRepo) ListMessages(_ context.Context, bookingID string) ([]models.BookingMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.BookingMessage
	for _, m := range f.messages {
		if m.BookingID == bookingID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) AddReview(_ context.Context, review *models.BookingReview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews[review.BookingID] = review
	return nil
}

func (f *fakeRepo) GetReview(_ context.Context, bookingID string) (*models.BookingReview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reviews[bookingID]
	if !ok {
		return nil, errNotFound
	}
	return r, nil
}

func (f *fakeRepo) EnsureIndexes() error { return nil }

// fakeAvailability answers CheckProviderAvailability from a switch; the rest
// of the interface is unused by the booking engine.
type fakeAvailability struct {
	available bool
	checkErr  error
	lastCheck [4]string // provider, date, start, end
}

func (f *fakeAvailability) GetProviderAvailability(_ context.Context, _ string) ([]models.ProviderAvailability, error) {
	return nil, nil
}

func (f *fakeAvailability) SetProviderAvailability(_ context.Context, _ string, _ []models.ProviderAvailability) error {
	return nil
}

func (f *fakeAvailability) AddOverride(_ context.Context, _ *models.AvailabilityOverride) error {
	return nil
}

func (f *fakeAvailability) RemoveOverride(_ context.Context, _, _ string) error { return nil }

func (f *fakeAvailability) GetAvailableSlots(_ context.Context, _, _ string, _ int) ([]models.AvailableSlot, error) {
	return nil, nil
}

func (f *fakeAvailability) CheckProviderAvailability(_ context.Context, providerID, date, startTime, endTime string) (bool, error) {
	f.lastCheck = [4]string{providerID, date, startTime, endTime}
	return f.available, f.checkErr
}

func (f *fakeAvailability) GetCalendarData(_ context.Context, _ string, _, _ int) (*models.CalendarMonth, error) {
	return nil, nil
}

// overlapAvailability reports a window free only while no active booking in
// the store overlaps it, like the real engine.
type overlapAvailability struct {
	fakeAvailability
	repo *fakeRepo
}

func (f *overlapAvailability) CheckProviderAvailability(ctx context.Context, providerID, date, startTime, endTime string) (bool, error) {
	existing, err := f.repo.ActiveOnDate(ctx, providerID, date)
	if err != nil {
		return false, err
	}
	for _, b := range existing {
		if startTime < b.EndTime && b.StartTime < endTime {
			return false, nil
		}
	}
	return true, nil
}

// memoryLocker serializes per key in-process, standing in for the Redis
// lease.
type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *memoryLocker) Lock(_ context.Context, providerID, date string) (func(), error) {
	key := providerID + "|" + date
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock, nil
}

// fakePublisher records fan-out without a broker.
type fakePublisher struct {
	updates  []models.BookingEvent
	messages []models.BookingEvent
}

func (f *fakePublisher) PublishBookingUpdate(_ context.Context, event models.BookingEvent) error {
	f.updates = append(f.updates, event)
	return nil
}

func (f *fakePublisher) PublishBookingMessage(_ context.Context, event models.BookingEvent) error {
	f.messages = append(f.messages, event)
	return nil
}

// fakeScheduler records reminder requests.
type fakeScheduler struct {
	scheduled []time.Time
}

func (f *fakeScheduler) ScheduleReminder(_ *models.Booking, fireAt time.Time) error {
	f.scheduled = append(f.scheduled, fireAt)
	return nil
}

// fakePayments hands back a canned intent id.
type fakePayments struct {
	intentID string
	err      error
}

func (f *fakePayments) CreatePaymentIntent(_ context.Context, _ *models.Booking) (string, error) {
	return f.intentID, f.err
}
