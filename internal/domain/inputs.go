package domain

type CreateAccountInput struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=4"`
	Role     UserRole `json:"role" validate:"required,oneof=Client Owner Delivery"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EditProfileInput fields left empty are not changed.
type EditProfileInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

type VerifyEmailInput struct {
	Code string `json:"code" validate:"required"`
}

type CreateRestaurantInput struct {
	Name         string `json:"name" validate:"required"`
	CoverImg     string `json:"cover_img"`
	Address      string `json:"address" validate:"required"`
	CategoryName string `json:"category_name" validate:"required"`
}

// EditRestaurantInput fields left empty are not changed.
type EditRestaurantInput struct {
	RestaurantID int    `json:"restaurant_id" validate:"required"`
	Name         string `json:"name"`
	CoverImg     string `json:"cover_img"`
	Address      string `json:"address"`
	CategoryName string `json:"category_name"`
}

type CreateDishInput struct {
	RestaurantID int          `json:"restaurant_id" validate:"required"`
	Name         string       `json:"name" validate:"required"`
	Price        float64      `json:"price" validate:"gte=0"`
	Description  string       `json:"description"`
	Options      []DishOption `json:"options"`
}

type EditDishInput struct {
	DishID      int          `json:"dish_id" validate:"required"`
	Name        string       `json:"name"`
	Price       *float64     `json:"price" validate:"omitempty,gte=0"`
	Description string       `json:"description"`
	Options     []DishOption `json:"options"`
}

type CreateOrderItemInput struct {
	DishID  int               `json:"dish_id" validate:"required"`
	Options []OrderItemOption `json:"options"`
}

type CreateOrderInput struct {
	RestaurantID int                    `json:"restaurant_id" validate:"required"`
	Items        []CreateOrderItemInput `json:"items"`
}

type EditOrderInput struct {
	ID     int         `json:"id" validate:"required"`
	Status OrderStatus `json:"status" validate:"required,oneof=Pending Cooking Cooked PickedUp Delivered"`
}
