package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hotel-reservation/internal/data/entity"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/dto/request"
	"hotel-reservation/pkg/storage"
	"hotel-reservation/pkg/utils"
)

type testEnv struct {
	repo    *repository.Repository
	service *Service
	durable *storage.MemoryStore
}

func testConfig() *utils.Config {
	return &utils.Config{
		Admin:   utils.AdminConfig{Email: "admin@hotel.com", Password: "admin123"},
		Booking: utils.BookingConfig{TaxRate: 0.10, BcryptCost: bcrypt.MinCost},
	}
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	durable := storage.NewMemoryStore()
	log := zap.NewNop()
	repo := repository.NewRepository(
		context.Background(),
		storage.NewAdapter(durable, "hrs_", log),
		storage.NewAdapter(storage.NewMemoryStore(), "hrs_", log),
		log,
	)

	svc := NewService(repo, testConfig(), log)
	// pin the clock so card expiry checks are stable
	svc.Reservation.(*reservationService).now = func() time.Time {
		return time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	}

	return &testEnv{repo: repo, service: svc, durable: durable}
}

// signUp registers a customer and returns the session token and user id.
func (e *testEnv) signUp(t *testing.T, email string) (string, int64) {
	t.Helper()

	resp, err := e.service.Auth.Register(context.Background(), &request.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Guest",
		Email:     email,
		Password:  "secret123",
	})
	require.NoError(t, err)
	return resp.Token, resp.User.ID
}

func (e *testEnv) setRoomPrice(t *testing.T, id string, price float64) {
	t.Helper()
	_, err := e.repo.Room.Update(context.Background(), id, entity.RoomPatch{Price: &price})
	require.NoError(t, err)
}

func cardCheckout() *request.CheckoutRequest {
	return &request.CheckoutRequest{
		PaymentMethod:  "card",
		CardNumber:     "4111 1111 1111 1111",
		CardholderName: "Jane Guest",
		ExpiryMonth:    12,
		ExpiryYear:     30,
		CVV:            "123",
	}
}

// book runs the draft and checkout steps for a stay in room r1.
func (e *testEnv) book(t *testing.T, token string, userID int64, checkIn, checkOut string) string {
	t.Helper()
	ctx := context.Background()

	_, err := e.service.Reservation.StartDraft(ctx, token, userID, &request.DraftRequest{
		RoomID: "r1", CheckIn: checkIn, CheckOut: checkOut, Guests: 2,
	})
	require.NoError(t, err)

	res, err := e.service.Reservation.Checkout(ctx, token, userID, &request.CheckoutRequest{PaymentMethod: "paypal"})
	require.NoError(t, err)
	return res.ID
}
