package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/internal/dto/request"
)

func strPtr(s string) *string { return &s }

func TestUserService_ProfileTierAndSpend(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	token, userID := env.signUp(t, "jane@example.com")

	profile, err := env.service.User.GetProfile(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Regular", profile.MemberTier)
	assert.Zero(t, profile.TotalBookings)

	env.book(t, token, userID, "2024-01-01", "2024-01-02")
	env.book(t, token, userID, "2024-02-01", "2024-02-02")

	profile, err = env.service.User.GetProfile(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Silver", profile.MemberTier)
	assert.Equal(t, 2, profile.TotalBookings)
	// 129 per night plus 13 tax, twice
	assert.Equal(t, 284.0, profile.TotalSpent)
}

func TestUserService_UpdateProfileResavesSession(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	token, userID := env.signUp(t, "jane@example.com")

	profile, err := env.service.User.UpdateProfile(ctx, token, &request.UpdateProfileRequest{
		City:  strPtr(" Porto "),
		Phone: strPtr("+351 912 345 678"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Porto", profile.City)

	stored, _ := env.repo.User.FindByID(ctx, userID)
	assert.Equal(t, "Porto", stored.City)

	current, err := env.service.Auth.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Porto", current.City, "session copy follows the edit")
	assert.Equal(t, "+351 912 345 678", current.Phone)
}

func TestUserService_UpdateProfileDuplicateEmail(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	env.signUp(t, "taken@example.com")
	token, _ := env.signUp(t, "jane@example.com")

	_, err := env.service.User.UpdateProfile(ctx, token, &request.UpdateProfileRequest{Email: strPtr("taken@example.com")})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	current, _ := env.service.Auth.CurrentUser(ctx, token)
	assert.Equal(t, "jane@example.com", current.Email)
}

func TestUserService_GetProfileUnknownToken(t *testing.T) {
	env := setupEnv(t)

	_, err := env.service.User.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_AdminUsers(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	_, janeID := env.signUp(t, "jane@example.com")
	_, bobID := env.signUp(t, "bob@example.com")
	env.signUp(t, "carl@example.com")

	page, err := env.service.User.GetAllUsers(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.EqualValues(t, 3, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	found, err := env.service.User.GetAllUsers(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10, Query: "bob"})
	require.NoError(t, err)
	require.Len(t, found.Data, 1)
	assert.Equal(t, bobID, found.Data[0].ID)

	assert.ErrorIs(t, env.service.User.DeleteUser(ctx, janeID, janeID), ErrForbidden)
	require.NoError(t, env.service.User.DeleteUser(ctx, janeID, bobID))
	assert.ErrorIs(t, env.service.User.DeleteUser(ctx, janeID, bobID), ErrUserNotFound)
}
