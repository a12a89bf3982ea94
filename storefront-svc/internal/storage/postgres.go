package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/service"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

var (
	_ service.RestaurantRepository     = (*PostgresRepository)(nil)
	_ service.MenuRepository           = (*PostgresRepository)(nil)
	_ service.OrderRepository          = (*PostgresRepository)(nil)
	_ service.ServiceRequestRepository = (*PostgresRepository)(nil)
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(location, ''), COALESCE(type, ''), COALESCE(phone, ''), COALESCE(email, '')
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Location, &rest.Type, &rest.Phone, &rest.Email)
	if err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

func (r *PostgresRepository) GetTable(ctx context.Context, restaurantID, tableID string) (*domain.Table, error) {
	var table domain.Table
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, restaurant_id, table_number FROM tables WHERE id = $1 AND restaurant_id = $2",
		tableID, restaurantID).
		Scan(&table.ID, &table.RestaurantID, &table.Number)
	if err != nil {
		return nil, notFound(err)
	}
	return &table, nil
}

func (r *PostgresRepository) ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, restaurant_id, table_number FROM tables WHERE restaurant_id = $1 ORDER BY table_number",
		restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.RestaurantID, &table.Number); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

const menuColumns = `id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(category, ''),
		COALESCE(image_url, ''), COALESCE(dietary, '{}'), is_popular, in_stock`

func scanMenuEntry(scan func(dest ...any) error) (domain.MenuEntry, error) {
	var e domain.MenuEntry
	var tags []string
	err := scan(&e.ID, &e.RestaurantID, &e.Name, &e.Description, &e.Price, &e.Category,
		&e.ImageURL, pq.Array(&tags), &e.Popular, &e.InStock)
	e.DietaryTags = tags
	return e, err
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuColumns+`
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY created_at`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.MenuEntry
	for rows.Next() {
		e, err := scanMenuEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, restaurantID, id string) (*domain.MenuEntry, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+menuColumns+`
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2`, id, restaurantID)
	e, err := scanMenuEntry(row.Scan)
	if err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, e *domain.MenuEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, restaurant_id, name, description, price, category, image_url, dietary, is_popular, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.RestaurantID, e.Name, e.Description, e.Price, e.Category, e.ImageURL,
		pq.Array(e.DietaryTags), e.Popular, e.InStock)
	return err
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, e *domain.MenuEntry) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, category=$4, image_url=$5, dietary=$6, is_popular=$7, in_stock=$8
		WHERE id=$9 AND restaurant_id=$10`,
		e.Name, e.Description, e.Price, e.Category, e.ImageURL, pq.Array(e.DietaryTags),
		e.Popular, e.InStock, e.ID, e.RestaurantID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, restaurantID, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id=$1 AND restaurant_id=$2", id, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ImportMenuItems inserts the batch atomically. When replace is set the
// restaurant's current items are deleted in the same transaction.
func (r *PostgresRepository) ImportMenuItems(ctx context.Context, restaurantID string, entries []domain.MenuEntry, replace bool) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM menu_items WHERE restaurant_id = $1", restaurantID); err != nil {
			return fmt.Errorf("clear menu: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO menu_items (id, restaurant_id, name, description, price, category, image_url, dietary, is_popular, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, restaurantID, e.Name, e.Description, e.Price, e.Category,
			e.ImageURL, pq.Array(e.DietaryTags), e.Popular, e.InStock); err != nil {
			return fmt.Errorf("insert menu item %q: %w", e.Name, err)
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, restaurant_id, table_id, status, total_amount, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, order.ID, order.RestaurantID, order.TableID, order.Status, order.Total, order.Notes, order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.MenuItemID, item.Name, item.Quantity, item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderSelect = `
		SELECT o.id, o.restaurant_id, o.table_id, COALESCE(t.table_number, 0), o.status, o.total_amount,
			COALESCE(o.notes, ''), o.created_at
		FROM orders o
		LEFT JOIN tables t ON t.id = o.table_id`

func scanOrder(scan func(dest ...any) error) (domain.Order, error) {
	var o domain.Order
	err := scan(&o.ID, &o.RestaurantID, &o.TableID, &o.TableNumber, &o.Status, &o.Total, &o.Notes, &o.CreatedAt)
	return o, err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, restaurantID, id string) (*domain.Order, error) {
	row := r.DB.QueryRowContext(ctx, orderSelect+`
		WHERE o.id = $1 AND o.restaurant_id = $2`, id, restaurantID)
	order, err := scanOrder(row.Scan)
	if err != nil {
		return nil, notFound(err)
	}
	items, err := r.orderItems(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return &order, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, restaurantID string, statuses []domain.OrderStatus, limit, offset int) ([]domain.Order, int, error) {
	statusArgs := make([]string, len(statuses))
	for i, s := range statuses {
		statusArgs[i] = string(s)
	}

	var total int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM orders WHERE restaurant_id = $1 AND status = ANY($2)",
		restaurantID, pq.Array(statusArgs)).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, orderSelect+`
		WHERE o.restaurant_id = $1 AND o.status = ANY($2)
		ORDER BY o.created_at DESC
		LIMIT $3 OFFSET $4`, restaurantID, pq.Array(statusArgs), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []string
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return orders, total, nil
	}

	items, err := r.orderItems(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, total, nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, menu_item_id, name, quantity, price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := rows.Scan(&orderID, &item.MenuItemID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		out[orderID] = append(out[orderID], item)
	}
	return out, rows.Err()
}

// UpdateOrderStatus moves an order from one status to another. The write only
// applies while the order still has status from.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, restaurantID, id string, from, to domain.OrderStatus) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2 AND restaurant_id = $3 AND status = $4",
		to, id, restaurantID, from)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists bool
	err = r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1 AND restaurant_id = $2)",
		id, restaurantID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrStatusChanged
	}
	return domain.ErrNotFound
}

// DailyStats aggregates orders created in [from, to), ignoring cancelled ones.
func (r *PostgresRepository) DailyStats(ctx context.Context, restaurantID string, from, to time.Time, topN int) (*domain.DailyStats, error) {
	stats := &domain.DailyStats{TopItems: []domain.DishCount{}}
	var revenue decimal.NullDecimal
	if err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM orders
		WHERE restaurant_id = $1 AND status <> 'CANCELLED' AND created_at >= $2 AND created_at < $3`,
		restaurantID, from, to).Scan(&revenue, &stats.OrderCount); err != nil {
		return nil, err
	}
	stats.Revenue = revenue.Decimal

	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.menu_item_id, oi.name, SUM(oi.quantity) AS qty
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.restaurant_id = $1 AND o.status <> 'CANCELLED' AND o.created_at >= $2 AND o.created_at < $3
		GROUP BY oi.menu_item_id, oi.name
		ORDER BY qty DESC
		LIMIT $4`, restaurantID, from, to, topN)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var d domain.DishCount
		if err := rows.Scan(&d.MenuItemID, &d.Name, &d.Quantity); err != nil {
			return nil, err
		}
		stats.TopItems = append(stats.TopItems, d)
	}
	return stats, rows.Err()
}

func (r *PostgresRepository) CreateServiceRequest(ctx context.Context, req *domain.ServiceRequest) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO service_requests (id, restaurant_id, table_id, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.RestaurantID, req.TableID, req.Type, req.Status, req.CreatedAt)
	return err
}

func (r *PostgresRepository) ListPendingServiceRequests(ctx context.Context, restaurantID string) ([]domain.ServiceRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT sr.id, sr.restaurant_id, sr.table_id, t.table_number, sr.type, sr.status, sr.created_at
		FROM service_requests sr
		JOIN tables t ON t.id = sr.table_id
		WHERE sr.restaurant_id = $1 AND sr.status <> 'COMPLETED'
		ORDER BY sr.created_at`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.ServiceRequest
	for rows.Next() {
		var req domain.ServiceRequest
		if err := rows.Scan(&req.ID, &req.RestaurantID, &req.TableID, &req.TableNumber, &req.Type, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *PostgresRepository) CompleteServiceRequest(ctx context.Context, restaurantID, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE service_requests SET status = 'COMPLETED' WHERE id = $1 AND restaurant_id = $2 AND status <> 'COMPLETED'",
		id, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT,
		type TEXT,
		phone TEXT,
		email TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tables (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		table_number INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		category TEXT,
		image_url TEXT,
		dietary TEXT[] NOT NULL DEFAULT '{}',
		is_popular BOOLEAN NOT NULL DEFAULT false,
		in_stock BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		table_id TEXT REFERENCES tables(id) ON DELETE SET NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		total_amount NUMERIC(12,3) NOT NULL,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		menu_item_id TEXT NOT NULL,
		name TEXT NOT NULL,
		quantity INT NOT NULL CHECK (quantity > 0),
		price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS service_requests (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		table_id TEXT NOT NULL REFERENCES tables(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	"CREATE INDEX IF NOT EXISTS orders_restaurant_created_idx ON orders (restaurant_id, created_at DESC)",
	"CREATE INDEX IF NOT EXISTS service_requests_restaurant_status_idx ON service_requests (restaurant_id, status)",
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
