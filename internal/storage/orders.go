package storage

import (
	"database/sql"
	"encoding/json"

	"eats-backend/internal/domain"
)

// CreateOrder persists the order and its item snapshots in one transaction
// so a failed item insert leaves no partial order behind.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(
		"INSERT INTO orders (customer_id, restaurant_id, status, total) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		order.CustomerID, order.RestaurantID, order.Status, order.Total,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		options, err := json.Marshal(item.Options)
		if err != nil {
			return err
		}
		if err := tx.QueryRow(
			"INSERT INTO order_items (order_id, dish_id, options) VALUES ($1, $2, $3) RETURNING id",
			order.ID, item.DishID, options,
		).Scan(&item.ID); err != nil {
			return err
		}
		item.OrderID = order.ID
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	var driverID sql.NullInt64
	if err := r.DB.QueryRow(
		"SELECT id, customer_id, driver_id, restaurant_id, status, total, created_at FROM orders WHERE id = $1",
		id,
	).Scan(&order.ID, &order.CustomerID, &driverID, &order.RestaurantID, &order.Status, &order.Total, &order.CreatedAt); err != nil {
		return nil, err
	}
	if driverID.Valid {
		d := int(driverID.Int64)
		order.DriverID = &d
	}

	rows, err := r.DB.Query(
		"SELECT id, order_id, dish_id, options FROM order_items WHERE order_id = $1 ORDER BY id", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		var options []byte
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &options); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(options, &item.Options); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func collectOrders(rows *sql.Rows) ([]domain.Order, error) {
	defer rows.Close()
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var driverID sql.NullInt64
		if err := rows.Scan(&order.ID, &order.CustomerID, &driverID, &order.RestaurantID, &order.Status, &order.Total, &order.CreatedAt); err != nil {
			return nil, err
		}
		if driverID.Valid {
			d := int(driverID.Int64)
			order.DriverID = &d
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) ListOrdersByCustomer(customerID int, status domain.OrderStatus) ([]domain.Order, error) {
	rows, err := r.DB.Query(
		"SELECT id, customer_id, driver_id, restaurant_id, status, total, created_at FROM orders WHERE customer_id = $1 AND ($2 = '' OR status = $2) ORDER BY created_at DESC",
		customerID, string(status))
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *PostgresRepository) ListOrdersByDriver(driverID int, status domain.OrderStatus) ([]domain.Order, error) {
	rows, err := r.DB.Query(
		"SELECT id, customer_id, driver_id, restaurant_id, status, total, created_at FROM orders WHERE driver_id = $1 AND ($2 = '' OR status = $2) ORDER BY created_at DESC",
		driverID, string(status))
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *PostgresRepository) ListOrdersByOwner(ownerID int, status domain.OrderStatus) ([]domain.Order, error) {
	rows, err := r.DB.Query(
		`SELECT o.id, o.customer_id, o.driver_id, o.restaurant_id, o.status, o.total, o.created_at
		 FROM orders o
		 JOIN restaurants r ON o.restaurant_id = r.id
		 WHERE r.owner_id = $1 AND ($2 = '' OR o.status = $2)
		 ORDER BY o.created_at DESC`,
		ownerID, string(status))
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *PostgresRepository) ListOrdersByRestaurant(restaurantID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(
		"SELECT id, customer_id, driver_id, restaurant_id, status, total, created_at FROM orders WHERE restaurant_id = $1 ORDER BY created_at DESC",
		restaurantID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *PostgresRepository) UpdateOrderStatus(id int, status domain.OrderStatus) error {
	_, err := r.DB.Exec("UPDATE orders SET status=$1 WHERE id=$2", status, id)
	return err
}

func (r *PostgresRepository) AssignDriver(orderID, driverID int) error {
	_, err := r.DB.Exec("UPDATE orders SET driver_id=$1 WHERE id=$2", driverID, orderID)
	return err
}
