package service

import (
	"context"

	"eats-backend/internal/domain"
)

type UserRepository interface {
	CreateUser(u *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id int) (*domain.User, error)
	UpdateUser(u *domain.User) error
	CreateVerification(v *domain.Verification) error
	GetVerificationByCode(code string) (*domain.Verification, error)
	DeleteVerification(id int) error
	DeleteVerificationsByUser(userID int) error
}

type CategoryRepository interface {
	CreateCategory(c *domain.Category) error
	GetCategoryBySlug(slug string) (*domain.Category, error)
	ListCategories() ([]domain.Category, error)
}

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id int) (int64, error)
	ListRestaurantsByOwner(ownerID int) ([]domain.Restaurant, error)
	GetRestaurantByOwner(ownerID, id int) (*domain.Restaurant, error)
	ListRestaurantsPage(offset, limit int) ([]domain.Restaurant, error)
	CountRestaurants() (int, error)
	ListRestaurantsByCategory(categoryID, offset, limit int) ([]domain.Restaurant, error)
	CountRestaurantsByCategory(categoryID int) (int, error)
	SearchRestaurantsByName(query string, offset, limit int) ([]domain.Restaurant, error)
	CountRestaurantsByName(query string) (int, error)
}

type DishRepository interface {
	CreateDish(dish *domain.Dish) error
	GetDish(id int) (*domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	DeleteDish(id int) (int64, error)
	ListDishes(restaurantID int) ([]domain.Dish, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrdersByCustomer(customerID int, status domain.OrderStatus) ([]domain.Order, error)
	ListOrdersByDriver(driverID int, status domain.OrderStatus) ([]domain.Order, error)
	ListOrdersByOwner(ownerID int, status domain.OrderStatus) ([]domain.Order, error)
	ListOrdersByRestaurant(restaurantID int) ([]domain.Order, error)
	UpdateOrderStatus(id int, status domain.OrderStatus) error
	AssignDriver(orderID, driverID int) error
}

// TokenIssuer is the identity collaborator. Issuing and verifying
// tokens is outside this core; the service only calls through.
type TokenIssuer interface {
	Sign(userID int) (string, error)
	Verify(token string) (int, error)
}

// MailSender is the email collaborator; delivery is outside this core.
type MailSender interface {
	SendVerificationEmail(email, code string) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type PageCache interface {
	RestaurantsPageKey(page int) string
	SearchKey(query string, page int) string
	CategoryPageKey(slug string, page int) string
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
}

type AccountServiceInterface interface {
	CreateAccount(in domain.CreateAccountInput) domain.CreateAccountOutput
	Login(in domain.LoginInput) domain.LoginOutput
	UserProfile(id int) domain.UserProfileOutput
	EditProfile(user domain.User, in domain.EditProfileInput) domain.EditProfileOutput
	VerifyEmail(in domain.VerifyEmailInput) domain.VerifyEmailOutput
}

type RestaurantServiceInterface interface {
	CreateRestaurant(owner domain.User, in domain.CreateRestaurantInput) domain.CreateRestaurantOutput
	EditRestaurant(owner domain.User, in domain.EditRestaurantInput) domain.EditRestaurantOutput
	DeleteRestaurant(owner domain.User, restaurantID int) domain.DeleteRestaurantOutput
	MyRestaurants(owner domain.User) domain.MyRestaurantsOutput
	MyRestaurant(owner domain.User, id int) domain.MyRestaurantOutput
	AllRestaurants(ctx context.Context, page int) domain.RestaurantsOutput
	FindRestaurantByID(id int) domain.RestaurantOutput
	SearchRestaurantByName(ctx context.Context, query string, page int) domain.SearchRestaurantOutput
	AllCategories() domain.AllCategoriesOutput
	FindCategoryBySlug(ctx context.Context, slug string, page int) domain.CategoryOutput
	CountRestaurants(category domain.Category) (int, error)
}

type DishServiceInterface interface {
	CreateDish(owner domain.User, in domain.CreateDishInput) domain.CreateDishOutput
	EditDish(owner domain.User, in domain.EditDishInput) domain.EditDishOutput
	DeleteDish(owner domain.User, dishID int) domain.DeleteDishOutput
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, customer domain.User, in domain.CreateOrderInput) domain.CreateOrderOutput
	GetOrders(user domain.User, status domain.OrderStatus) domain.GetOrdersOutput
	GetOrder(user domain.User, id int) domain.GetOrderOutput
	EditOrder(ctx context.Context, user domain.User, in domain.EditOrderInput) domain.EditOrderOutput
	TakeOrder(ctx context.Context, driver domain.User, orderID int) domain.TakeOrderOutput
	PickupQR(orderID int) ([]byte, error)
}
