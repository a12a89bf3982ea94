package tests

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresGetTable(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(mock sqlmock.Sqlmock)
		want    *domain.Table
		wantErr error
	}{
		{
			name: "found",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, restaurant_id, table_number FROM tables").
					WithArgs("t7", "r1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_number"}).AddRow("t7", "r1", 7))
			},
			want: &domain.Table{ID: "t7", RestaurantID: "r1", Number: 7},
		},
		{
			name: "missing maps to ErrNotFound",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, restaurant_id, table_number FROM tables").
					WithArgs("t7", "r1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			testCase.prepare(mock)

			got, err := repo.GetTable(context.Background(), "r1", "t7")

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresListMenuItems(t *testing.T) {
	repo, mock := setupRepo(t)
	cols := []string{"id", "restaurant_id", "name", "description", "price", "category", "image_url", "dietary", "is_popular", "in_stock"}
	mock.ExpectQuery("FROM menu_items").
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("m1", "r1", "Paneer Tikka", "Smoked", "850.00", "starter", "", "{V,GF}", true, true).
			AddRow("m2", "r1", "Dal", "", "700", "main", "", "{}", false, false))

	got, err := repo.ListMenuItems(context.Background(), "r1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"V", "GF"}, got[0].DietaryTags)
	assert.True(t, decimal.NewFromInt(850).Equal(got[0].Price))
	assert.True(t, got[0].Popular)
	assert.False(t, got[1].InStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateMenuItemMissing(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectExec("UPDATE menu_items").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateMenuItem(context.Background(), &domain.MenuEntry{ID: "m9", RestaurantID: "r1"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresImportMenuItems(t *testing.T) {
	entries := []domain.MenuEntry{
		{ID: "m1", Name: "Paneer Tikka", Price: decimal.NewFromInt(450), Category: "starter", DietaryTags: []string{"V"}, InStock: true},
		{ID: "m2", Name: "Masala Chai", Price: decimal.NewFromInt(120), Category: "drink", DietaryTags: []string{}, InStock: true},
	}
	insert := regexp.QuoteMeta("INSERT INTO menu_items (id, restaurant_id, name")

	tests := []struct {
		name    string
		replace bool
		prepare func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "appends in one transaction",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				stmt := mock.ExpectPrepare(insert)
				stmt.ExpectExec().
					WithArgs("m1", "r1", "Paneer Tikka", "", sqlmock.AnyArg(), "starter", "", sqlmock.AnyArg(), false, true).
					WillReturnResult(sqlmock.NewResult(0, 1))
				stmt.ExpectExec().
					WithArgs("m2", "r1", "Masala Chai", "", sqlmock.AnyArg(), "drink", "", sqlmock.AnyArg(), false, true).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:    "replace clears the menu first",
			replace: true,
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM menu_items WHERE restaurant_id = $1")).
					WithArgs("r1").
					WillReturnResult(sqlmock.NewResult(0, 7))
				stmt := mock.ExpectPrepare(insert)
				stmt.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
				stmt.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:    "failed row rolls back the batch",
			replace: true,
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM menu_items").WillReturnResult(sqlmock.NewResult(0, 7))
				stmt := mock.ExpectPrepare(insert)
				stmt.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
				stmt.ExpectExec().WillReturnError(errors.New("duplicate key"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			tt.prepare(mock)

			err := repo.ImportMenuItems(context.Background(), "r1", entries, tt.replace)

			if tt.wantErr {
				assert.ErrorContains(t, err, "Masala Chai")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresCreateOrder(t *testing.T) {
	order := &domain.Order{
		ID:           "o1",
		RestaurantID: "r1",
		TableID:      "t7",
		Status:       domain.OrderPending,
		Total:        decimal.RequireFromString("1785"),
		CreatedAt:    time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			{MenuItemID: "m1", Name: "Paneer Tikka", Quantity: 2, Price: decimal.NewFromInt(850)},
		},
	}

	t.Run("commits order and items", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WithArgs("o1", "r1", "t7", domain.OrderPending, sqlmock.AnyArg(), "", order.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_items").
			WithArgs("o1", "m1", "Paneer Tikka", 2, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.CreateOrder(context.Background(), order))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when an item fails", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_items").WillReturnError(errors.New("fk violation"))
		mock.ExpectRollback()

		assert.Error(t, repo.CreateOrder(context.Background(), order))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresListOrders(t *testing.T) {
	repo, mock := setupRepo(t)
	created := time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("r1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("FROM orders o").
		WithArgs("r1", sqlmock.AnyArg(), 2, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_id", "table_number", "status", "total_amount", "notes", "created_at"}).
			AddRow("o2", "r1", "t7", 7, "READY", "735", "", created).
			AddRow("o1", "r1", "t3", 3, "PENDING", "892.5", "no onion", created.Add(-time.Hour)))
	mock.ExpectQuery("FROM order_items").
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "menu_item_id", "name", "quantity", "price"}).
			AddRow("o1", "m1", "Paneer Tikka", 1, "850").
			AddRow("o2", "m2", "Dal", 1, "700"))

	got, total, err := repo.ListOrders(context.Background(), "r1", domain.ActiveOrderStatuses, 2, 0)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, got, 2)
	assert.Equal(t, "o2", got[0].ID)
	assert.Equal(t, 7, got[0].TableNumber)
	assert.Equal(t, domain.OrderReady, got[0].Status)
	require.Len(t, got[1].Items, 1)
	assert.Equal(t, "m1", got[1].Items[0].MenuItemID)
	assert.Equal(t, "no onion", got[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListOrdersEmptyPageSkipsItems(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM orders o").
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_id", "table_number", "status", "total_amount", "notes", "created_at"}))

	got, total, err := repo.ListOrders(context.Background(), "r1", domain.ActiveOrderStatuses, 20, 0)

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDailyStats(t *testing.T) {
	repo, mock := setupRepo(t)
	from := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery("SUM\\(total_amount\\)").
		WithArgs("r1", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow("1627.5", 2))
	mock.ExpectQuery("GROUP BY oi.menu_item_id").
		WithArgs("r1", from, to, 5).
		WillReturnRows(sqlmock.NewRows([]string{"menu_item_id", "name", "qty"}).
			AddRow("m1", "Paneer Tikka", 3.0).
			AddRow("m2", "Dal", 1.0))

	got, err := repo.DailyStats(context.Background(), "r1", from, to, 5)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1627.5").Equal(got.Revenue))
	assert.Equal(t, int64(2), got.OrderCount)
	assert.Equal(t, []domain.DishCount{
		{MenuItemID: "m1", Name: "Paneer Tikka", Quantity: 3},
		{MenuItemID: "m2", Name: "Dal", Quantity: 1},
	}, got.TopItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateOrderStatus(t *testing.T) {
	update := regexp.QuoteMeta("UPDATE orders SET status = $1 WHERE id = $2 AND restaurant_id = $3 AND status = $4")
	exists := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1 AND restaurant_id = $2)")

	tests := []struct {
		name     string
		prepare  func(mock sqlmock.Sqlmock)
		expected error
	}{
		{
			name: "applied",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(update).
					WithArgs(domain.OrderPaid, "o1", "r1", domain.OrderPreparing).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "status_moved_on",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(update).
					WithArgs(domain.OrderPaid, "o1", "r1", domain.OrderPreparing).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(exists).
					WithArgs("o1", "r1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expected: domain.ErrStatusChanged,
		},
		{
			name: "missing_order",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(update).
					WithArgs(domain.OrderPaid, "o1", "r1", domain.OrderPreparing).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(exists).
					WithArgs("o1", "r1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expected: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			testCase.prepare(mock)

			err := repo.UpdateOrderStatus(context.Background(), "r1", "o1", domain.OrderPreparing, domain.OrderPaid)

			if testCase.expected != nil {
				assert.ErrorIs(t, err, testCase.expected)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresCompleteServiceRequest(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectExec("UPDATE service_requests SET status = 'COMPLETED'").
		WithArgs("s1", "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.CompleteServiceRequest(context.Background(), "r1", "s1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListPendingServiceRequests(t *testing.T) {
	repo, mock := setupRepo(t)
	created := time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM service_requests sr").
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_id", "table_number", "type", "status", "created_at"}).
			AddRow("s1", "r1", "t7", 7, "WATER", "PENDING", created))

	got, err := repo.ListPendingServiceRequests(context.Background(), "r1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ServiceWater, got[0].Type)
	assert.Equal(t, 7, got[0].TableNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEnsureSchemaStopsOnError(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS restaurants").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS tables").WillReturnError(errors.New("permission denied"))

	err := repo.EnsureSchema(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}
