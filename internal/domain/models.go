package domain

import "time"

type UserRole string

const (
	RoleClient   UserRole = "Client"
	RoleOwner    UserRole = "Owner"
	RoleDelivery UserRole = "Delivery"
)

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// Verification holds the one-time code a new or re-edited email
// must confirm before the account counts as verified.
type Verification struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Code   string `json:"code"`
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CoverImg  string    `json:"cover_img"`
	CreatedAt time.Time `json:"created_at"`
}

type Restaurant struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	CoverImg   string     `json:"cover_img"`
	Address    string     `json:"address"`
	OwnerID    int        `json:"owner_id"`
	CategoryID int        `json:"category_id"`
	IsPromoted bool       `json:"is_promoted"`
	CreatedAt  time.Time  `json:"created_at"`
	Menu       []Dish     `json:"menu,omitempty"`
	Orders     []Order    `json:"orders,omitempty"`
	Category   *Category  `json:"category,omitempty"`
	PromotedAt *time.Time `json:"promoted_until,omitempty"`
}

// DishChoice is a selectable sub-value of a DishOption. Extra zero means
// the choice carries no surcharge.
type DishChoice struct {
	Name  string  `json:"name"`
	Extra float64 `json:"extra,omitempty"`
}

// DishOption is one customization axis of a dish. Either the option itself
// carries a flat Extra, or its Choices price individually; when both are
// set the flat Extra wins and the choices are ignored.
type DishOption struct {
	Name    string       `json:"name"`
	Extra   float64      `json:"extra,omitempty"`
	Choices []DishChoice `json:"choices,omitempty"`
}

type Dish struct {
	ID           int          `json:"id"`
	RestaurantID int          `json:"restaurant_id"`
	Name         string       `json:"name"`
	Price        float64      `json:"price"`
	Description  string       `json:"description"`
	Photo        string       `json:"photo,omitempty"`
	Options      []DishOption `json:"options,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCooking   OrderStatus = "Cooking"
	StatusCooked    OrderStatus = "Cooked"
	StatusPickedUp  OrderStatus = "PickedUp"
	StatusDelivered OrderStatus = "Delivered"
)

// OrderItemOption records an option exactly as the customer submitted it.
// It is not normalized against the dish's option schema.
type OrderItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

type OrderItem struct {
	ID      int               `json:"id"`
	OrderID int               `json:"order_id"`
	DishID  int               `json:"dish_id"`
	Options []OrderItemOption `json:"options,omitempty"`
}

type Order struct {
	ID           int         `json:"id"`
	CustomerID   int         `json:"customer_id"`
	DriverID     *int        `json:"driver_id,omitempty"`
	RestaurantID int         `json:"restaurant_id"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items,omitempty"`
}

// OrderEvent is the message published to Kafka after a successful
// order mutation.
type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	RestaurantID int         `json:"restaurant_id"`
	CustomerID   int         `json:"customer_id"`
	DriverID     *int        `json:"driver_id,omitempty"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	Timestamp    time.Time   `json:"timestamp"`
}
