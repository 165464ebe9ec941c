package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRemoteRepository writes orders to the Supabase Postgres tables.
// New orders are plain inserts, never upserts; order numbers carry an epoch
// suffix so collisions do not occur in practice.
type OrderRemoteRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRemoteRepository(db *pgxpool.Pool) *OrderRemoteRepository {
	return &OrderRemoteRepository{DB: db}
}

// InsertOrderRows writes the denormalized order rows, one per line item.
func (r *OrderRemoteRepository) InsertOrderRows(ctx context.Context, rows []model.OrderRow) error {
	query := `
		INSERT INTO orders (id, order_number, customer_name, customer_phone, customer_email,
			delivery_address, product, product_name, quantity, price_per_kg,
			line_weight_kg, line_total, status, order_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	for _, row := range rows {
		_, err := r.DB.Exec(ctx, query,
			row.ID, row.OrderNumber, row.CustomerName, row.CustomerPhone, row.CustomerEmail,
			row.DeliveryAddress, row.ProductKey, row.ProductName, row.Quantity, row.PricePerKg,
			row.LineWeightKg, row.LineTotal, row.Status, row.OrderDate, time.Now())
		if err != nil {
			return fmt.Errorf("insert order row %s: %w", row.ID, err)
		}
	}
	return nil
}

// InsertOrderItemRows writes the per-product detail rows for an order.
func (r *OrderRemoteRepository) InsertOrderItemRows(ctx context.Context, rows []model.OrderItemRow) error {
	query := `
		INSERT INTO order_items (id, order_number, product, product_name, category,
			quantity, price_per_kg, estimated_weight_kg, line_weight_kg, line_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for _, row := range rows {
		_, err := r.DB.Exec(ctx, query,
			row.ID, row.OrderNumber, row.ProductKey, row.ProductName, row.Category,
			row.Quantity, row.PricePerKg, row.EstimatedWeightKg, row.LineWeightKg, row.LineTotal, time.Now())
		if err != nil {
			return fmt.Errorf("insert order item row %s: %w", row.ID, err)
		}
	}
	return nil
}

// ListRecentOrders returns the newest denormalized rows for the dashboard.
func (r *OrderRemoteRepository) ListRecentOrders(ctx context.Context, limit int) ([]model.OrderRow, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, order_number, customer_name, customer_phone, customer_email,
			delivery_address, product, product_name, quantity, price_per_kg,
			line_weight_kg, line_total, status, order_date, created_at
		FROM orders
		ORDER BY order_date DESC, id
		LIMIT $1
	`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrderRows(rows)
}

// GetOrderRows returns every row belonging to one order number.
func (r *OrderRemoteRepository) GetOrderRows(ctx context.Context, orderNumber string) ([]model.OrderRow, error) {
	query := `
		SELECT id, order_number, customer_name, customer_phone, customer_email,
			delivery_address, product, product_name, quantity, price_per_kg,
			line_weight_kg, line_total, status, order_date, created_at
		FROM orders
		WHERE order_number=$1
		ORDER BY id
	`
	rows, err := r.DB.Query(ctx, query, orderNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrderRows(rows)
}

// UpdateOrderStatus moves every row of an order to the given status.
func (r *OrderRemoteRepository) UpdateOrderStatus(ctx context.Context, orderNumber string, status model.OrderStatus) error {
	tag, err := r.DB.Exec(ctx, `UPDATE orders SET status=$1 WHERE order_number=$2`, status, orderNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", orderNumber)
	}
	return nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
}

func scanOrderRows(rows pgxRows) ([]model.OrderRow, error) {
	var out []model.OrderRow
	for rows.Next() {
		var row model.OrderRow
		var email *string
		if err := rows.Scan(&row.ID, &row.OrderNumber, &row.CustomerName, &row.CustomerPhone, &email,
			&row.DeliveryAddress, &row.ProductKey, &row.ProductName, &row.Quantity, &row.PricePerKg,
			&row.LineWeightKg, &row.LineTotal, &row.Status, &row.OrderDate, &row.CreatedAt); err != nil {
			return nil, err
		}
		if email != nil {
			row.CustomerEmail = *email
		}
		out = append(out, row)
	}
	return out, nil
}
