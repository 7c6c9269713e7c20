package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/internal/dto/request"
)

func TestAdminService_Dashboard(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	token, userID := env.signUp(t, "jane@example.com")
	env.setRoomPrice(t, "r1", 100)

	env.book(t, token, userID, "2024-01-01", "2024-01-04")
	env.book(t, token, userID, "2024-02-01", "2024-02-02")

	dash, err := env.service.Admin.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, dash.TotalRooms)
	assert.Equal(t, 2, dash.TotalReservations)
	assert.EqualValues(t, 1, dash.TotalUsers)
	assert.Equal(t, 400.0, dash.RoomRevenue)
	assert.Equal(t, 440.0, dash.Collected)
	assert.Len(t, dash.Recent, 2)
}

func TestAdminService_PaymentRecords(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	janeToken, janeID := env.signUp(t, "jane@example.com")
	bobToken, bobID := env.signUp(t, "bob@example.com")

	env.book(t, janeToken, janeID, "2024-01-01", "2024-01-02")
	env.book(t, bobToken, bobID, "2024-01-01", "2024-01-02")

	all, err := env.service.Admin.GetPaymentRecords(ctx, &request.ReservationSearchRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Records, 2)
	assert.Equal(t, 2, all.Summary.Count)
	assert.Equal(t, 2, all.Summary.CompletedCount)
	assert.Equal(t, 284.0, all.Summary.TotalAmount)

	bob, err := env.service.Admin.GetPaymentRecords(ctx, &request.ReservationSearchRequest{Query: "bob"})
	require.NoError(t, err)
	require.Len(t, bob.Records, 1)
	assert.Equal(t, "bob@example.com", bob.Records[0].GuestEmail)

	byID, err := env.service.Admin.GetPaymentRecords(ctx, &request.ReservationSearchRequest{Query: bob.Records[0].ReservationID})
	require.NoError(t, err)
	require.Len(t, byID.Records, 1)
	assert.Equal(t, bob.Records[0].PaymentID, byID.Records[0].PaymentID)

	pending, err := env.service.Admin.GetPaymentRecords(ctx, &request.ReservationSearchRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, pending.Records)

	_, err = env.service.Admin.GetPaymentRecords(ctx, &request.ReservationSearchRequest{Status: "weird"})
	assert.ErrorIs(t, err, ErrValidation)
}
