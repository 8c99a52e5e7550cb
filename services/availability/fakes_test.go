package availability

import (
	"context"
	"time"

	"lipo/models"
)

// fakeAvailabilityRepo is an in-memory AvailabilityRepository. Replace is
// all-or-nothing like the mongo implementation: a configured failure leaves
// the previous template untouched.
type fakeAvailabilityRepo struct {
	templates   map[string][]models.ProviderAvailability
	overrides   []models.AvailabilityOverride
	replaceErr  error
	replaceCall int
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{templates: make(map[string][]models.ProviderAvailability)}
}

func (f *fakeAvailabilityRepo) GetWeeklyTemplate(_ context.Context, providerID string) ([]models.ProviderAvailability, error) {
	return f.templates[providerID], nil
}

func (f *fakeAvailabilityRepo) ReplaceWeeklyTemplate(_ context.Context, providerID string, rows []models.ProviderAvailability) error {
	f.replaceCall++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	copied := make([]models.ProviderAvailability, len(rows))
	copy(copied, rows)
	for i := range copied {
		copied[i].ProviderID = providerID
	}
	f.templates[providerID] = copied
	return nil
}

func (f *fakeAvailabilityRepo) AddOverride(_ context.Context, override *models.AvailabilityOverride) error {
	if override.CreatedAt.IsZero() {
		override.CreatedAt = time.Now()
	}
	f.overrides = append(f.overrides, *override)
	return nil
}

func (f *fakeAvailabilityRepo) RemoveOverride(_ context.Context, providerID, overrideID string) error {
	for i, o := range f.overrides {
		if o.ID == overrideID && o.ProviderID == providerID {
			f.overrides = append(f.overrides[:i], f.overrides[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeAvailabilityRepo) ListOverrides(_ context.Context, providerID, dateFrom, dateTo string) ([]models.AvailabilityOverride, error) {
	var out []models.AvailabilityOverride
	for _, o := range f.overrides {
		if o.ProviderID == providerID && o.Date >= dateFrom && o.Date <= dateTo {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) OverridesOnDate(ctx context.Context, providerID, date string) ([]models.AvailabilityOverride, error) {
	return f.ListOverrides(ctx, providerID, date, date)
}

func (f *fakeAvailabilityRepo) EnsureIndexes() error { return nil }

// fakeBookingStore implements the slice of BookingRepository the availability
// engine touches; everything else is unused here.
type fakeBookingStore struct {
	bookings []models.Booking
}

func (f *fakeBookingStore) Create(_ context.Context, bk *models.Booking) error {
	f.bookings = append(f.bookings, *bk)
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, _ string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) GetByConfirmationCode(_ context.Context, _ string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) List(_ context.Context, _ models.BookingFilters) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, _ string, _ models.BookingStatus, _ string, _ time.Time) error {
	return nil
}

func (f *fakeBookingStore) ActiveOnDate(_ context.Context, providerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID && b.BookingDate == date && b.Active() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) InRange(_ context.Context, providerID, dateFrom, dateTo string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID && b.BookingDate >= dateFrom && b.BookingDate <= dateTo {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ExpirePending(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeBookingStore) AddMessage(_ context.Context, _ *models.BookingMessage) error { return nil }

func (f *fakeBookingStore) ListMessages(_ context.Context, _ string) ([]models.BookingMessage, error) {
	return nil, nil
}

func (f *fakeBookingStore) AddReview(_ context.Context, _ *models.BookingReview) error { return nil }

func (f *fakeBookingStore) GetReview(_ context.Context, _ string) (*models.BookingReview, error) {
	return nil, nil
}

func (f *fakeBookingStore) EnsureIndexes() error { return nil }
