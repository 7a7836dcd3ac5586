package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"eats-backend/internal/domain"
	"eats-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type Handler struct {
	Accounts    service.AccountServiceInterface
	Restaurants service.RestaurantServiceInterface
	Dishes      service.DishServiceInterface
	Orders      service.OrderServiceInterface

	auth     *AuthMiddleware
	validate *validator.Validate
}

func NewHandler(accounts service.AccountServiceInterface, restaurants service.RestaurantServiceInterface, dishes service.DishServiceInterface, orders service.OrderServiceInterface, auth *AuthMiddleware) *Handler {
	return &Handler{
		Accounts:    accounts,
		Restaurants: restaurants,
		Dishes:      dishes,
		Orders:      orders,
		auth:        auth,
		validate:    validator.New(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/accounts", h.createAccount).Methods("POST")
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/verify-email", h.verifyEmail).Methods("POST")

	r.HandleFunc("/api/restaurants", h.restaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/search", h.searchRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.restaurant).Methods("GET")
	r.HandleFunc("/api/categories", h.allCategories).Methods("GET")
	r.HandleFunc("/api/categories/{slug}", h.category).Methods("GET")

	authed := r.NewRoute().Subrouter()
	if h.auth != nil {
		authed.Use(h.auth.Authenticate)
	}

	authed.HandleFunc("/api/me", requireRole(h.me)).Methods("GET")
	authed.HandleFunc("/api/me", requireRole(h.editProfile)).Methods("PUT")
	authed.HandleFunc("/api/users/{id:[0-9]+}", requireRole(h.userProfile)).Methods("GET")

	authed.HandleFunc("/api/restaurants", requireRole(h.createRestaurant, domain.RoleOwner)).Methods("POST")
	authed.HandleFunc("/api/restaurants/{id:[0-9]+}", requireRole(h.editRestaurant, domain.RoleOwner)).Methods("PUT")
	authed.HandleFunc("/api/restaurants/{id:[0-9]+}", requireRole(h.deleteRestaurant, domain.RoleOwner)).Methods("DELETE")
	authed.HandleFunc("/api/my/restaurants", requireRole(h.myRestaurants, domain.RoleOwner)).Methods("GET")
	authed.HandleFunc("/api/my/restaurants/{id:[0-9]+}", requireRole(h.myRestaurant, domain.RoleOwner)).Methods("GET")

	authed.HandleFunc("/api/dishes", requireRole(h.createDish, domain.RoleOwner)).Methods("POST")
	authed.HandleFunc("/api/dishes/{id:[0-9]+}", requireRole(h.editDish, domain.RoleOwner)).Methods("PUT")
	authed.HandleFunc("/api/dishes/{id:[0-9]+}", requireRole(h.deleteDish, domain.RoleOwner)).Methods("DELETE")

	authed.HandleFunc("/api/orders", requireRole(h.createOrder, domain.RoleClient)).Methods("POST")
	authed.HandleFunc("/api/orders", requireRole(h.getOrders)).Methods("GET")
	authed.HandleFunc("/api/orders/{id:[0-9]+}", requireRole(h.getOrder)).Methods("GET")
	authed.HandleFunc("/api/orders/{id:[0-9]+}/status", requireRole(h.editOrder, domain.RoleOwner, domain.RoleDelivery)).Methods("PUT")
	authed.HandleFunc("/api/orders/{id:[0-9]+}/take", requireRole(h.takeOrder, domain.RoleDelivery)).Methods("PUT")
	authed.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", requireRole(h.orderQRCode)).Methods("GET")
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNone:
		return http.StatusOK
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// decode unmarshals the request body into v and reports whether the
// handler should continue. Validation runs separately so handlers can
// fill path parameters first.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) valid(w http.ResponseWriter, v interface{}) bool {
	if err := h.validate.Struct(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func pageParam(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateAccountInput
	if !h.decode(w, r, &in) || !h.valid(w, &in) {
		return
	}
	out := h.Accounts.CreateAccount(in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in domain.LoginInput
	if !h.decode(w, r, &in) || !h.valid(w, &in) {
		return
	}
	out := h.Accounts.Login(in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var in domain.VerifyEmailInput
	if !h.decode(w, r, &in) || !h.valid(w, &in) {
		return
	}
	out := h.Accounts.VerifyEmail(in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r)
	out := h.Accounts.UserProfile(user.ID)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) userProfile(w http.ResponseWriter, r *http.Request) {
	out := h.Accounts.UserProfile(pathID(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r)
	var in domain.EditProfileInput
	if !h.decode(w, r, &in) || !h.valid(w, &in) {
		return
	}
	out := h.Accounts.EditProfile(user, in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	owner, _ := UserFromContext(r)
	var in domain.CreateRestaurantInput
	if !h.decode(w, r, &in) || !h.valid(w, &in) {
		return
	}
	out := h.Restaurants.CreateRestaurant(owner, in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) editRestaurant(w http.ResponseWriter, r *http.Request) {
	owner, _ := UserFromContext(r)
	var in domain.EditRestaurantInput
	if !h.decode(w, r, &in) {
		return
	}
	in.RestaurantID = pathID(r)
	if !h.valid(w, &in) {
		return
	}
	out := h.Restaurants.EditRestaurant(owner, in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	owner, _ := UserFromContext(r)
	out := h.Restaurants.DeleteRestaurant(owner, pathID(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) myRestaurants(w http.ResponseWriter, r *http.Request) {
	owner, _ := UserFromContext(r)
	out := h.Restaurants.MyRestaurants(owner)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) myRestaurant(w http.ResponseWriter, r *http.Request) {
	owner, _ := UserFromContext(r)
	out := h.Restaurants.MyRestaurant(owner, pathID(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) restaurants(w http.ResponseWriter, r *http.Request) {
	out := h.Restaurants.AllRestaurants(r.Context(), pageParam(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) restaurant(w http.ResponseWriter, r *http.Request) {
	out := h.Restaurants.FindRestaurantByID(pathID(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) searchRestaurant(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	out := h.Restaurants.SearchRestaurantByName(r.Context(), query, pageParam(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) allCategories(w http.ResponseWriter, r *http.Request) {
	out := h.Restaurants.AllCategories()
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) category(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	out := h.Restaurants.FindCategoryBySlug(r.Context(), slug, pageParam(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	owner, _ := UserFromContext(r)
	var in domain.CreateDishInput
	if !h.decode(w, r, &in) || !h.valid(w, &in) {
		return
	}
	out := h.Dishes.CreateDish(owner, in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) editDish(w http.ResponseWriter, r *http.Request) {
	owner, _ := UserFromContext(r)
	var in domain.EditDishInput
	if !h.decode(w, r, &in) {
		return
	}
	in.DishID = pathID(r)
	if !h.valid(w, &in) {
		return
	}
	out := h.Dishes.EditDish(owner, in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	owner, _ := UserFromContext(r)
	out := h.Dishes.DeleteDish(owner, pathID(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	customer, _ := UserFromContext(r)
	var in domain.CreateOrderInput
	if !h.decode(w, r, &in) || !h.valid(w, &in) {
		return
	}
	out := h.Orders.CreateOrder(r.Context(), customer, in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r)
	status := domain.OrderStatus(r.URL.Query().Get("status"))
	out := h.Orders.GetOrders(user, status)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r)
	out := h.Orders.GetOrder(user, pathID(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) editOrder(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r)
	var in domain.EditOrderInput
	if !h.decode(w, r, &in) {
		return
	}
	in.ID = pathID(r)
	if !h.valid(w, &in) {
		return
	}
	out := h.Orders.EditOrder(r.Context(), user, in)
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) takeOrder(w http.ResponseWriter, r *http.Request) {
	driver, _ := UserFromContext(r)
	out := h.Orders.TakeOrder(r.Context(), driver, pathID(r))
	writeJSON(w, statusFor(out.Kind), out)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.PickupQR(pathID(r))
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
