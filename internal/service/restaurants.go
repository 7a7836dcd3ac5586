package service

import (
	"context"
	"strings"

	"eats-backend/internal/domain"
)

const pageSize = 10

func pageWindow(page int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize, pageSize
}

func totalPages(totalResults int) int {
	return (totalResults + pageSize - 1) / pageSize
}

type RestaurantService struct {
	restaurants RestaurantRepository
	categories  CategoryRepository
	dishes      DishRepository
	orders      OrderRepository
	cache       PageCache
}

func NewRestaurantService(restaurants RestaurantRepository, categories CategoryRepository, dishes DishRepository, orders OrderRepository, cache PageCache) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		categories:  categories,
		dishes:      dishes,
		orders:      orders,
		cache:       cache,
	}
}

// getOrCreateCategory maps a display name onto one category record.
// Concurrent first-time creation of the same slug can still race; the
// unique slug column makes the loser fail rather than duplicate.
func (s *RestaurantService) getOrCreateCategory(name string) (*domain.Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	slug := Slugify(name)

	category, err := s.categories.GetCategoryBySlug(slug)
	if err == nil {
		return category, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	category = &domain.Category{Name: name, Slug: slug}
	if err := s.categories.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *RestaurantService) CreateRestaurant(owner domain.User, in domain.CreateRestaurantInput) domain.CreateRestaurantOutput {
	category, err := s.getOrCreateCategory(in.CategoryName)
	if err != nil {
		return domain.CreateRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not create restaurant")}
	}

	restaurant := domain.Restaurant{
		Name:       in.Name,
		CoverImg:   in.CoverImg,
		Address:    in.Address,
		OwnerID:    owner.ID,
		CategoryID: category.ID,
	}
	if err := s.restaurants.CreateRestaurant(&restaurant); err != nil {
		return domain.CreateRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not create restaurant")}
	}
	return domain.CreateRestaurantOutput{Result: domain.OK(), RestaurantID: restaurant.ID}
}

func (s *RestaurantService) EditRestaurant(owner domain.User, in domain.EditRestaurantInput) domain.EditRestaurantOutput {
	restaurant, err := s.restaurants.GetRestaurant(in.RestaurantID)
	if err != nil {
		if isNotFound(err) {
			return domain.EditRestaurantOutput{Result: domain.Fail(domain.KindNotFound, "Restaurant not found")}
		}
		return domain.EditRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not edit restaurant")}
	}
	if owner.ID != restaurant.OwnerID {
		return domain.EditRestaurantOutput{Result: domain.Fail(domain.KindForbidden, "You cannot edit a restaurant that you do not own")}
	}

	if in.Name != "" {
		restaurant.Name = in.Name
	}
	if in.CoverImg != "" {
		restaurant.CoverImg = in.CoverImg
	}
	if in.Address != "" {
		restaurant.Address = in.Address
	}
	if in.CategoryName != "" {
		category, err := s.getOrCreateCategory(in.CategoryName)
		if err != nil {
			return domain.EditRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not edit restaurant")}
		}
		restaurant.CategoryID = category.ID
	}

	if err := s.restaurants.UpdateRestaurant(restaurant); err != nil {
		return domain.EditRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not edit restaurant")}
	}
	return domain.EditRestaurantOutput{Result: domain.OK()}
}

func (s *RestaurantService) DeleteRestaurant(owner domain.User, restaurantID int) domain.DeleteRestaurantOutput {
	restaurant, err := s.restaurants.GetRestaurant(restaurantID)
	if err != nil {
		if isNotFound(err) {
			return domain.DeleteRestaurantOutput{Result: domain.Fail(domain.KindNotFound, "Restaurant not found")}
		}
		return domain.DeleteRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not delete restaurant")}
	}
	if owner.ID != restaurant.OwnerID {
		return domain.DeleteRestaurantOutput{Result: domain.Fail(domain.KindForbidden, "You cannot delete a restaurant that you do not own")}
	}

	if _, err := s.restaurants.DeleteRestaurant(restaurantID); err != nil {
		return domain.DeleteRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not delete restaurant")}
	}
	return domain.DeleteRestaurantOutput{Result: domain.OK()}
}

func (s *RestaurantService) MyRestaurants(owner domain.User) domain.MyRestaurantsOutput {
	restaurants, err := s.restaurants.ListRestaurantsByOwner(owner.ID)
	if err != nil {
		return domain.MyRestaurantsOutput{Result: domain.Fail(kindOf(err), "Could not find restaurants")}
	}
	return domain.MyRestaurantsOutput{Result: domain.OK(), Restaurants: restaurants}
}

func (s *RestaurantService) MyRestaurant(owner domain.User, id int) domain.MyRestaurantOutput {
	restaurant, err := s.restaurants.GetRestaurantByOwner(owner.ID, id)
	if err != nil {
		if isNotFound(err) {
			return domain.MyRestaurantOutput{Result: domain.Fail(domain.KindNotFound, "Restaurant not found")}
		}
		return domain.MyRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not find restaurant")}
	}

	menu, err := s.dishes.ListDishes(restaurant.ID)
	if err != nil {
		return domain.MyRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not find restaurant")}
	}
	orders, err := s.orders.ListOrdersByRestaurant(restaurant.ID)
	if err != nil {
		return domain.MyRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not find restaurant")}
	}
	restaurant.Menu = menu
	restaurant.Orders = orders
	return domain.MyRestaurantOutput{Result: domain.OK(), Restaurant: restaurant}
}

func (s *RestaurantService) AllRestaurants(ctx context.Context, page int) domain.RestaurantsOutput {
	if page < 1 {
		page = 1
	}
	var cached domain.RestaurantsOutput
	if s.cache != nil {
		if hit, err := s.cache.GetJSON(ctx, s.cache.RestaurantsPageKey(page), &cached); err == nil && hit {
			cached.OK = true
			return cached
		}
	}

	offset, limit := pageWindow(page)
	results, err := s.restaurants.ListRestaurantsPage(offset, limit)
	if err != nil {
		return domain.RestaurantsOutput{Result: domain.Fail(kindOf(err), "Could not load restaurants")}
	}
	totalResults, err := s.restaurants.CountRestaurants()
	if err != nil {
		return domain.RestaurantsOutput{Result: domain.Fail(kindOf(err), "Could not load restaurants")}
	}

	out := domain.RestaurantsOutput{
		Result:       domain.OK(),
		Results:      results,
		TotalPages:   totalPages(totalResults),
		TotalResults: totalResults,
	}
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, s.cache.RestaurantsPageKey(page), out)
	}
	return out
}

func (s *RestaurantService) FindRestaurantByID(id int) domain.RestaurantOutput {
	restaurant, err := s.restaurants.GetRestaurant(id)
	if err != nil {
		if isNotFound(err) {
			return domain.RestaurantOutput{Result: domain.Fail(domain.KindNotFound, "Restaurant not found")}
		}
		return domain.RestaurantOutput{Result: domain.Fail(kindOf(err), "Could not find restaurant")}
	}

	menu, err := s.dishes.ListDishes(restaurant.ID)
	if err != nil {
		return domain.RestaurantOutput{Result: domain.Fail(kindOf(err), "Could not find restaurant")}
	}
	restaurant.Menu = menu
	return domain.RestaurantOutput{Result: domain.OK(), Restaurant: restaurant}
}

func (s *RestaurantService) SearchRestaurantByName(ctx context.Context, query string, page int) domain.SearchRestaurantOutput {
	if page < 1 {
		page = 1
	}
	var cached domain.SearchRestaurantOutput
	if s.cache != nil {
		if hit, err := s.cache.GetJSON(ctx, s.cache.SearchKey(query, page), &cached); err == nil && hit {
			cached.OK = true
			return cached
		}
	}

	offset, limit := pageWindow(page)
	restaurants, err := s.restaurants.SearchRestaurantsByName(query, offset, limit)
	if err != nil {
		return domain.SearchRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not search for restaurants")}
	}
	totalResults, err := s.restaurants.CountRestaurantsByName(query)
	if err != nil {
		return domain.SearchRestaurantOutput{Result: domain.Fail(kindOf(err), "Could not search for restaurants")}
	}

	out := domain.SearchRestaurantOutput{
		Result:       domain.OK(),
		Restaurants:  restaurants,
		TotalPages:   totalPages(totalResults),
		TotalResults: totalResults,
	}
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, s.cache.SearchKey(query, page), out)
	}
	return out
}

func (s *RestaurantService) AllCategories() domain.AllCategoriesOutput {
	categories, err := s.categories.ListCategories()
	if err != nil {
		return domain.AllCategoriesOutput{Result: domain.Fail(kindOf(err), "Could not load categories")}
	}
	return domain.AllCategoriesOutput{Result: domain.OK(), Categories: categories}
}

func (s *RestaurantService) FindCategoryBySlug(ctx context.Context, slug string, page int) domain.CategoryOutput {
	if page < 1 {
		page = 1
	}
	var cached domain.CategoryOutput
	if s.cache != nil {
		if hit, err := s.cache.GetJSON(ctx, s.cache.CategoryPageKey(slug, page), &cached); err == nil && hit {
			cached.OK = true
			return cached
		}
	}

	category, err := s.categories.GetCategoryBySlug(slug)
	if err != nil {
		if isNotFound(err) {
			return domain.CategoryOutput{Result: domain.Fail(domain.KindNotFound, "Category not found")}
		}
		return domain.CategoryOutput{Result: domain.Fail(kindOf(err), "Could not load category")}
	}

	offset, limit := pageWindow(page)
	restaurants, err := s.restaurants.ListRestaurantsByCategory(category.ID, offset, limit)
	if err != nil {
		return domain.CategoryOutput{Result: domain.Fail(kindOf(err), "Could not load category")}
	}
	totalResults, err := s.restaurants.CountRestaurantsByCategory(category.ID)
	if err != nil {
		return domain.CategoryOutput{Result: domain.Fail(kindOf(err), "Could not load category")}
	}

	out := domain.CategoryOutput{
		Result:       domain.OK(),
		Category:     category,
		Restaurants:  restaurants,
		TotalPages:   totalPages(totalResults),
		TotalResults: totalResults,
	}
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, s.cache.CategoryPageKey(slug, page), out)
	}
	return out
}

func (s *RestaurantService) CountRestaurants(category domain.Category) (int, error) {
	return s.restaurants.CountRestaurantsByCategory(category.ID)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
