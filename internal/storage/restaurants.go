package storage

import (
	"database/sql"

	"eats-backend/internal/domain"
)

const restaurantColumns = `id, name, COALESCE(cover_img, ''), COALESCE(address, ''), owner_id, category_id, is_promoted, promoted_until, created_at`

func scanRestaurant(row interface{ Scan(...interface{}) error }) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	var promotedUntil sql.NullTime
	err := row.Scan(&rest.ID, &rest.Name, &rest.CoverImg, &rest.Address,
		&rest.OwnerID, &rest.CategoryID, &rest.IsPromoted, &promotedUntil, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	if promotedUntil.Valid {
		t := promotedUntil.Time
		rest.PromotedAt = &t
	}
	return &rest, nil
}

func collectRestaurants(rows *sql.Rows) ([]domain.Restaurant, error) {
	defer rows.Close()
	var restaurants []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name, cover_img, address, owner_id, category_id) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		rest.Name, rest.CoverImg, rest.Address, rest.OwnerID, rest.CategoryID,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	row := r.DB.QueryRow("SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id)
	return scanRestaurant(row)
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	_, err := r.DB.Exec(
		"UPDATE restaurants SET name=$1, cover_img=$2, address=$3, category_id=$4 WHERE id=$5",
		rest.Name, rest.CoverImg, rest.Address, rest.CategoryID, rest.ID,
	)
	return err
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListRestaurantsByOwner(ownerID int) ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(
		"SELECT "+restaurantColumns+" FROM restaurants WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	return collectRestaurants(rows)
}

func (r *PostgresRepository) GetRestaurantByOwner(ownerID, id int) (*domain.Restaurant, error) {
	row := r.DB.QueryRow(
		"SELECT "+restaurantColumns+" FROM restaurants WHERE owner_id = $1 AND id = $2", ownerID, id)
	return scanRestaurant(row)
}

func (r *PostgresRepository) ListRestaurantsPage(offset, limit int) ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(
		"SELECT "+restaurantColumns+" FROM restaurants ORDER BY is_promoted DESC, id OFFSET $1 LIMIT $2",
		offset, limit)
	if err != nil {
		return nil, err
	}
	return collectRestaurants(rows)
}

func (r *PostgresRepository) CountRestaurants() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

func (r *PostgresRepository) ListRestaurantsByCategory(categoryID, offset, limit int) ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(
		"SELECT "+restaurantColumns+" FROM restaurants WHERE category_id = $1 ORDER BY is_promoted DESC, id OFFSET $2 LIMIT $3",
		categoryID, offset, limit)
	if err != nil {
		return nil, err
	}
	return collectRestaurants(rows)
}

func (r *PostgresRepository) CountRestaurantsByCategory(categoryID int) (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants WHERE category_id = $1", categoryID).Scan(&count)
	return count, err
}

func (r *PostgresRepository) SearchRestaurantsByName(query string, offset, limit int) ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(
		"SELECT "+restaurantColumns+" FROM restaurants WHERE name ILIKE '%' || $1 || '%' ORDER BY is_promoted DESC, id OFFSET $2 LIMIT $3",
		query, offset, limit)
	if err != nil {
		return nil, err
	}
	return collectRestaurants(rows)
}

func (r *PostgresRepository) CountRestaurantsByName(query string) (int, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM restaurants WHERE name ILIKE '%' || $1 || '%'", query).Scan(&count)
	return count, err
}
