package mocks

import (
	"eats-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(u *domain.User) error {
	return m.Called(u).Error(0)
}

func (m *UserRepository) GetUserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) GetUserByID(id int) (*domain.User, error) {
	args := m.Called(id)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) UpdateUser(u *domain.User) error {
	return m.Called(u).Error(0)
}

func (m *UserRepository) CreateVerification(v *domain.Verification) error {
	return m.Called(v).Error(0)
}

func (m *UserRepository) GetVerificationByCode(code string) (*domain.Verification, error) {
	args := m.Called(code)
	var v *domain.Verification
	if args.Get(0) != nil {
		v = args.Get(0).(*domain.Verification)
	}
	return v, args.Error(1)
}

func (m *UserRepository) DeleteVerification(id int) error {
	return m.Called(id).Error(0)
}

func (m *UserRepository) DeleteVerificationsByUser(userID int) error {
	return m.Called(userID).Error(0)
}

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) CreateCategory(c *domain.Category) error {
	return m.Called(c).Error(0)
}

func (m *CategoryRepository) GetCategoryBySlug(slug string) (*domain.Category, error) {
	args := m.Called(slug)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *CategoryRepository) ListCategories() ([]domain.Category, error) {
	args := m.Called()
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

type RestaurantRepository struct {
	mock.Mock
}

func (m *RestaurantRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	args := m.Called(id)
	var rest *domain.Restaurant
	if args.Get(0) != nil {
		rest = args.Get(0).(*domain.Restaurant)
	}
	return rest, args.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) DeleteRestaurant(id int) (int64, error) {
	args := m.Called(id)
	return int64(args.Int(0)), args.Error(1)
}

func (m *RestaurantRepository) ListRestaurantsByOwner(ownerID int) ([]domain.Restaurant, error) {
	args := m.Called(ownerID)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantRepository) GetRestaurantByOwner(ownerID, id int) (*domain.Restaurant, error) {
	args := m.Called(ownerID, id)
	var rest *domain.Restaurant
	if args.Get(0) != nil {
		rest = args.Get(0).(*domain.Restaurant)
	}
	return rest, args.Error(1)
}

func (m *RestaurantRepository) ListRestaurantsPage(offset, limit int) ([]domain.Restaurant, error) {
	args := m.Called(offset, limit)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantRepository) CountRestaurants() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *RestaurantRepository) ListRestaurantsByCategory(categoryID, offset, limit int) ([]domain.Restaurant, error) {
	args := m.Called(categoryID, offset, limit)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantRepository) CountRestaurantsByCategory(categoryID int) (int, error) {
	args := m.Called(categoryID)
	return args.Int(0), args.Error(1)
}

func (m *RestaurantRepository) SearchRestaurantsByName(query string, offset, limit int) ([]domain.Restaurant, error) {
	args := m.Called(query, offset, limit)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantRepository) CountRestaurantsByName(query string) (int, error) {
	args := m.Called(query)
	return args.Int(0), args.Error(1)
}

type DishRepository struct {
	mock.Mock
}

func (m *DishRepository) CreateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *DishRepository) GetDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *DishRepository) UpdateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *DishRepository) DeleteDish(id int) (int64, error) {
	args := m.Called(id)
	return int64(args.Int(0)), args.Error(1)
}

func (m *DishRepository) ListDishes(restaurantID int) ([]domain.Dish, error) {
	args := m.Called(restaurantID)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	args := m.Called(id)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) ListOrdersByCustomer(customerID int, status domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(customerID, status)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) ListOrdersByDriver(driverID int, status domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(driverID, status)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) ListOrdersByOwner(ownerID int, status domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(ownerID, status)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) ListOrdersByRestaurant(restaurantID int) ([]domain.Order, error) {
	args := m.Called(restaurantID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(id int, status domain.OrderStatus) error {
	return m.Called(id, status).Error(0)
}

func (m *OrderRepository) AssignDriver(orderID, driverID int) error {
	return m.Called(orderID, driverID).Error(0)
}
