package domain

// ErrorKind is the closed set of failure categories an operation can
// report. It is not serialized; callers branch on it while the wire
// shape stays {ok, error}.
type ErrorKind string

const (
	KindNone      ErrorKind = ""
	KindNotFound  ErrorKind = "not_found"
	KindForbidden ErrorKind = "forbidden"
	KindConflict  ErrorKind = "conflict"
	KindUnknown   ErrorKind = "unknown"
)

// Result is the uniform shape every operation returns in lieu of an error.
type Result struct {
	OK    bool      `json:"ok"`
	Error string    `json:"error,omitempty"`
	Kind  ErrorKind `json:"-"`
}

func OK() Result {
	return Result{OK: true}
}

func Fail(kind ErrorKind, msg string) Result {
	return Result{OK: false, Error: msg, Kind: kind}
}

type CreateAccountOutput struct {
	Result
}

type LoginOutput struct {
	Result
	Token string `json:"token,omitempty"`
}

type UserProfileOutput struct {
	Result
	User *User `json:"user,omitempty"`
}

type EditProfileOutput struct {
	Result
}

type VerifyEmailOutput struct {
	Result
}

type CreateRestaurantOutput struct {
	Result
	RestaurantID int `json:"restaurant_id,omitempty"`
}

type EditRestaurantOutput struct {
	Result
}

type DeleteRestaurantOutput struct {
	Result
}

type MyRestaurantsOutput struct {
	Result
	Restaurants []Restaurant `json:"restaurants,omitempty"`
}

type MyRestaurantOutput struct {
	Result
	Restaurant *Restaurant `json:"restaurant,omitempty"`
}

type RestaurantsOutput struct {
	Result
	Results      []Restaurant `json:"results,omitempty"`
	TotalPages   int          `json:"total_pages,omitempty"`
	TotalResults int          `json:"total_results,omitempty"`
}

type RestaurantOutput struct {
	Result
	Restaurant *Restaurant `json:"restaurant,omitempty"`
}

type SearchRestaurantOutput struct {
	Result
	Restaurants  []Restaurant `json:"restaurants,omitempty"`
	TotalPages   int          `json:"total_pages,omitempty"`
	TotalResults int          `json:"total_results,omitempty"`
}

type AllCategoriesOutput struct {
	Result
	Categories []Category `json:"categories,omitempty"`
}

type CategoryOutput struct {
	Result
	Category     *Category    `json:"category,omitempty"`
	Restaurants  []Restaurant `json:"restaurants,omitempty"`
	TotalPages   int          `json:"total_pages,omitempty"`
	TotalResults int          `json:"total_results,omitempty"`
}

type CreateDishOutput struct {
	Result
}

type EditDishOutput struct {
	Result
}

type DeleteDishOutput struct {
	Result
}

// CreateOrderOutput deliberately carries no order id; the upstream system
// never returned one and callers must not start depending on it here.
type CreateOrderOutput struct {
	Result
}

type GetOrdersOutput struct {
	Result
	Orders []Order `json:"orders,omitempty"`
}

type GetOrderOutput struct {
	Result
	Order *Order `json:"order,omitempty"`
}

type EditOrderOutput struct {
	Result
}

type TakeOrderOutput struct {
	Result
}
