package booking

import (
	"context"
	"testing"

	"lipo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMessage(t *testing.T) {
	repo := newFakeRepo()
	svc, events, _ := testService(repo, &fakeAvailability{})
	seedBooking(t, repo, models.BookingConfirmed)
	ctx := context.Background()

	msg, err := svc.PostMessage(ctx, Actor{ID: "cust-1", Role: RoleCustomer}, "bk-1", "  running ten minutes late  ")
	require.NoError(t, err)
	assert.Equal(t, "running ten minutes late", msg.Content, "content is trimmed")
	assert.Equal(t, "cust-1", msg.SenderID)
	assert.Equal(t, RoleCustomer, msg.SenderRole)

	require.Len(t, events.messages, 1)
	assert.Equal(t, "message", events.messages[0].Type)
	assert.Equal(t, msg.ID, events.messages[0].Message.ID)

	_, err = svc.PostMessage(ctx, Actor{ID: "cust-1", Role: RoleCustomer}, "bk-1", "   ")
	assert.True(t, IsValidation(err))

	_, err = svc.PostMessage(ctx, Actor{ID: "cust-9", Role: RoleCustomer}, "bk-1", "hi")
	assert.True(t, IsPermission(err))

	_, err = svc.PostMessage(ctx, Actor{ID: "cust-1", Role: RoleCustomer}, "missing", "hi")
	assert.True(t, IsNotFound(err))
}

func TestListMessages(t *testing.T) {
	repo := newFakeRepo()
	svc, _, _ := testService(repo, &fakeAvailability{})
	seedBooking(t, repo, models.BookingConfirmed)
	ctx := context.Background()

	_, err := svc.PostMessage(ctx, Actor{ID: "cust-1", Role: RoleCustomer}, "bk-1", "first")
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, Actor{ID: "prov-1", Role: RoleProvider}, "bk-1", "second")
	require.NoError(t, err)

	msgs, err := svc.ListMessages(ctx, Actor{ID: "prov-1", Role: RoleProvider}, "bk-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)

	_, err = svc.ListMessages(ctx, Actor{ID: "prov-2", Role: RoleProvider}, "bk-1")
	assert.True(t, IsPermission(err))
}

func TestAddReview(t *testing.T) {
	repo := newFakeRepo()
	svc, _, _ := testService(repo, &fakeAvailability{})
	seedBooking(t, repo, models.BookingCompleted)
	ctx := context.Background()
	customer := Actor{ID: "cust-1", Role: RoleCustomer}

	review, err := svc.AddReview(ctx, customer, "bk-1", 5, "spotless work")
	require.NoError(t, err)
	assert.Equal(t, "prov-1", review.ProviderID)
	assert.Equal(t, 5, review.Rating)

	// One review per booking.
	_, err = svc.AddReview(ctx, customer, "bk-1", 4, "second thoughts")
	assert.True(t, IsConflict(err))
}

func TestAddReviewGuards(t *testing.T) {
	repo := newFakeRepo()
	svc, _, _ := testService(repo, &fakeAvailability{})
	seedBooking(t, repo, models.BookingConfirmed)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, Actor{ID: "prov-1", Role: RoleProvider}, "bk-1", 5, "")
	assert.True(t, IsPermission(err), "providers cannot review")

	_, err = svc.AddReview(ctx, Actor{ID: "cust-1", Role: RoleCustomer}, "bk-1", 0, "")
	assert.True(t, IsValidation(err))
	_, err = svc.AddReview(ctx, Actor{ID: "cust-1", Role: RoleCustomer}, "bk-1", 6, "")
	assert.True(t, IsValidation(err))

	_, err = svc.AddReview(ctx, Actor{ID: "cust-2", Role: RoleCustomer}, "bk-1", 5, "")
	assert.True(t, IsPermission(err), "only the booking's customer")

	// Not yet completed.
	_, err = svc.AddReview(ctx, Actor{ID: "cust-1", Role: RoleCustomer}, "bk-1", 5, "")
	assert.Equal(t, CodeUnavailable, ErrorCode(err))
}
