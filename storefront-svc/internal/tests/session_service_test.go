package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/menu"
	"restrofi/storefront-svc/internal/mocks"
	"restrofi/storefront-svc/internal/pin"
	"restrofi/storefront-svc/internal/service"
	"restrofi/storefront-svc/internal/session"
	"restrofi/storefront-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	svc         *service.SessionService
	store       *session.Store
	restaurants *mocks.RestaurantRepository
	menus       *mocks.MenuServiceInterface
	limiter     *mocks.AttemptLimiter
	tokens      *service.StaffTokens
}

func newSessionFixture(t *testing.T) *sessionFixture {
	f := &sessionFixture{
		store:       session.NewStore(),
		restaurants: mocks.NewRestaurantRepository(t),
		menus:       mocks.NewMenuServiceInterface(t),
		limiter:     mocks.NewAttemptLimiter(t),
		tokens:      service.NewStaffTokens("test-secret", time.Hour),
	}
	f.svc = service.NewSessionService(f.store, f.restaurants, f.menus, staticVerifier("1234"), f.limiter, f.tokens, nil, testLog,
		service.SessionConfig{PinResetDelay: 300 * time.Millisecond, IdleTTL: time.Hour})
	return f
}

func (f *sessionFixture) open(t *testing.T) *session.Session {
	f.restaurants.On("GetRestaurant", mock.Anything, "r1").Return(&domain.Restaurant{ID: "r1", Name: "Saffron"}, nil).Once()
	f.restaurants.On("GetTable", mock.Anything, "r1", "t7").Return(&domain.Table{ID: "t7", RestaurantID: "r1", Number: 7}, nil).Once()
	f.menus.On("Catalog", mock.Anything, "r1").Return(menu.NewCatalog("r1", sampleMenu()), nil).Once()
	sess, err := f.svc.Open(context.Background(), "r1", "t7")
	require.NoError(t, err)
	return sess
}

func TestSessionService_Open(t *testing.T) {
	f := newSessionFixture(t)

	sess := f.open(t)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 7, sess.TableNumber)
	assert.Equal(t, 3, sess.Catalog().Len())
	transcript := sess.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, domain.RoleAssistant, transcript[0].Role)
	got, err := f.svc.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestSessionService_OpenErrors(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(f *sessionFixture)
		expectedCode apperr.Code
	}{
		{
			name: "unknown_restaurant",
			prepareMocks: func(f *sessionFixture) {
				f.restaurants.On("GetRestaurant", mock.Anything, "r1").Return(nil, domain.ErrNotFound).Once()
			},
			expectedCode: apperr.CodeNotFound,
		},
		{
			name: "unknown_table",
			prepareMocks: func(f *sessionFixture) {
				f.restaurants.On("GetRestaurant", mock.Anything, "r1").Return(&domain.Restaurant{ID: "r1"}, nil).Once()
				f.restaurants.On("GetTable", mock.Anything, "r1", "t7").Return(nil, domain.ErrNotFound).Once()
			},
			expectedCode: apperr.CodeNotFound,
		},
		{
			name: "menu_unavailable",
			prepareMocks: func(f *sessionFixture) {
				f.restaurants.On("GetRestaurant", mock.Anything, "r1").Return(&domain.Restaurant{ID: "r1"}, nil).Once()
				f.restaurants.On("GetTable", mock.Anything, "r1", "t7").Return(&domain.Table{ID: "t7"}, nil).Once()
				f.menus.On("Catalog", mock.Anything, "r1").Return(nil, apperr.New(apperr.CodeDependency, "load menu failed")).Once()
			},
			expectedCode: apperr.CodeDependency,
		},
		{
			name: "database_down",
			prepareMocks: func(f *sessionFixture) {
				f.restaurants.On("GetRestaurant", mock.Anything, "r1").Return(nil, errors.New("dial tcp")).Once()
			},
			expectedCode: apperr.CodeDependency,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newSessionFixture(t)
			testCase.prepareMocks(f)

			sess, err := f.svc.Open(context.Background(), "r1", "t7")

			assert.Nil(t, sess)
			assert.Equal(t, testCase.expectedCode, apperr.CodeOf(err))
			assert.Zero(t, f.store.Len())
		})
	}
}

func TestSessionService_GetUnknown(t *testing.T) {
	f := newSessionFixture(t)
	_, err := f.svc.Get("missing")
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestSessionService_CartOperations(t *testing.T) {
	f := newSessionFixture(t)
	sess := f.open(t)

	_, err := f.svc.AddToCart(sess.ID, "nope")
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	snap, err := f.svc.AddToCart(sess.ID, "m3")
	require.NoError(t, err, "out of stock entries can still be added")
	assert.Equal(t, 1, snap.ItemCount)

	snap, changed, err := f.svc.UpdateQuantity(sess.ID, "m3", 2)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, snap.ItemCount)

	_, changed, err = f.svc.UpdateQuantity(sess.ID, "m1", 1)
	require.NoError(t, err)
	assert.False(t, changed)

	snap, changed, err = f.svc.RemoveFromCart(sess.ID, "m3")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Zero(t, snap.ItemCount)
}

func TestSessionService_SetFilterDefaultsCategory(t *testing.T) {
	f := newSessionFixture(t)
	sess := f.open(t)

	got, err := f.svc.SetFilter(sess.ID, menu.FilterState{DietaryTags: []string{"V"}})
	require.NoError(t, err)
	assert.Equal(t, menu.AllCategories, got.Category)
	assert.Len(t, sess.VisibleItems(), 2)
}

func TestSessionService_EnterPin(t *testing.T) {
	t.Run("authorized_issues_token", func(t *testing.T) {
		f := newSessionFixture(t)
		sess := f.open(t)
		f.limiter.On("Allow", mock.Anything, "pin:r1:unknown").Return(true, nil).Once()
		f.limiter.On("Allow", mock.Anything, "pin:"+sess.ID).Return(true, nil).Once()

		var result service.PinResult
		for _, d := range []string{"1", "2", "3", "4"} {
			var err error
			result, err = f.svc.EnterPin(context.Background(), sess.ID, -1, d)
			require.NoError(t, err)
		}

		assert.Equal(t, pin.StateAuthorized, result.Gate.State)
		require.NotEmpty(t, result.Token)
		claims, err := f.tokens.Parse(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "r1", claims.RestaurantID)
		assert.Equal(t, sess.ID, claims.SessionID)
	})

	t.Run("mismatch_reports_error_state", func(t *testing.T) {
		f := newSessionFixture(t)
		sess := f.open(t)
		f.limiter.On("Allow", mock.Anything, "pin:r1:unknown").Return(true, nil).Once()
		f.limiter.On("Allow", mock.Anything, "pin:"+sess.ID).Return(true, nil).Once()

		var result service.PinResult
		for _, d := range []string{"1", "2", "3", "9"} {
			var err error
			result, err = f.svc.EnterPin(context.Background(), sess.ID, -1, d)
			require.NoError(t, err)
		}

		assert.Equal(t, pin.StateError, result.Gate.State)
		assert.Empty(t, result.Token)
	})

	t.Run("rate_limited_keeps_state", func(t *testing.T) {
		f := newSessionFixture(t)
		sess := f.open(t)
		f.limiter.On("Allow", mock.Anything, "pin:r1:unknown").Return(false, nil).Once()

		for _, d := range []string{"1", "2", "3"} {
			_, err := f.svc.EnterPin(context.Background(), sess.ID, -1, d)
			require.NoError(t, err)
		}
		result, err := f.svc.EnterPin(context.Background(), sess.ID, -1, "4")

		assert.Equal(t, apperr.CodeRateLimit, apperr.CodeOf(err))
		assert.Equal(t, pin.StateCollecting, result.Gate.State)
		assert.Equal(t, []bool{true, true, true, false}, result.Gate.Filled)
	})

	t.Run("non_digit_is_validation_error", func(t *testing.T) {
		f := newSessionFixture(t)
		sess := f.open(t)

		_, err := f.svc.EnterPin(context.Background(), sess.ID, 0, "x")
		assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	})
}

func TestSessionService_Sweep(t *testing.T) {
	f := newSessionFixture(t)
	sess := f.open(t)
	sess.Touch(time.Now().Add(-2 * time.Hour))

	assert.Equal(t, 1, f.svc.Sweep())
	_, err := f.svc.Get(sess.ID)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestSessionService_PinLimitSurvivesNewSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	const limit = 3
	f := newSessionFixture(t)
	f.svc = service.NewSessionService(f.store, f.restaurants, f.menus, staticVerifier("1234"),
		storage.NewAttemptLimiter(client, limit, time.Hour), f.tokens, nil, testLog,
		service.SessionConfig{IdleTTL: time.Hour})

	guess := func(ctx context.Context, code string) (service.PinResult, error) {
		sess := f.open(t)
		var result service.PinResult
		var err error
		for _, d := range code {
			result, err = f.svc.EnterPin(ctx, sess.ID, -1, string(d))
			if err != nil {
				return result, err
			}
		}
		return result, nil
	}

	attacker := service.WithClient(context.Background(), "203.0.113.7")
	for i, code := range []string{"0000", "0001", "0002"} {
		result, err := guess(attacker, code)
		require.NoError(t, err, "guess %d", i)
		assert.Equal(t, pin.StateError, result.Gate.State)
	}

	result, err := guess(attacker, "1234")
	assert.Equal(t, apperr.CodeRateLimit, apperr.CodeOf(err))
	assert.Empty(t, result.Token)

	staff := service.WithClient(context.Background(), "198.51.100.2")
	result, err = guess(staff, "1234")
	require.NoError(t, err)
	assert.Equal(t, pin.StateAuthorized, result.Gate.State)
}
