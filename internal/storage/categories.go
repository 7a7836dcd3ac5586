package storage

import (
	"eats-backend/internal/domain"
)

func (r *PostgresRepository) CreateCategory(c *domain.Category) error {
	return r.DB.QueryRow(
		"INSERT INTO categories (name, slug, cover_img) VALUES ($1, $2, $3) RETURNING id, created_at",
		c.Name, c.Slug, c.CoverImg,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *PostgresRepository) GetCategoryBySlug(slug string) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRow(
		"SELECT id, name, slug, COALESCE(cover_img, ''), created_at FROM categories WHERE slug = $1",
		slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.CoverImg, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) ListCategories() ([]domain.Category, error) {
	rows, err := r.DB.Query(
		"SELECT id, name, slug, COALESCE(cover_img, ''), created_at FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CoverImg, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
