package storage

import (
	"encoding/json"

	"eats-backend/internal/domain"
)

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	options, err := json.Marshal(dish.Options)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(
		"INSERT INTO dishes (restaurant_id, name, price, description, photo, options) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at",
		dish.RestaurantID, dish.Name, dish.Price, dish.Description, dish.Photo, options,
	).Scan(&dish.ID, &dish.CreatedAt)
}

func (r *PostgresRepository) GetDish(id int) (*domain.Dish, error) {
	var dish domain.Dish
	var options []byte
	err := r.DB.QueryRow(
		"SELECT id, restaurant_id, name, price, COALESCE(description, ''), COALESCE(photo, ''), options, created_at FROM dishes WHERE id = $1",
		id,
	).Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Price, &dish.Description, &dish.Photo, &options, &dish.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(options, &dish.Options); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) UpdateDish(dish *domain.Dish) error {
	options, err := json.Marshal(dish.Options)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(
		"UPDATE dishes SET name=$1, price=$2, description=$3, photo=$4, options=$5 WHERE id=$6",
		dish.Name, dish.Price, dish.Description, dish.Photo, options, dish.ID,
	)
	return err
}

func (r *PostgresRepository) DeleteDish(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListDishes(restaurantID int) ([]domain.Dish, error) {
	rows, err := r.DB.Query(
		"SELECT id, restaurant_id, name, price, COALESCE(description, ''), COALESCE(photo, ''), options, created_at FROM dishes WHERE restaurant_id = $1 ORDER BY created_at DESC",
		restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		var options []byte
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Price, &dish.Description, &dish.Photo, &options, &dish.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(options, &dish.Options); err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}
