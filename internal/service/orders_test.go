package service_test

import (
	"context"
	"database/sql"
	"testing"

	"eats-backend/internal/domain"
	"eats-backend/internal/mocks"
	"eats-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderService(orders *mocks.OrderRepository, restaurants *mocks.RestaurantRepository, dishes *mocks.DishRepository) *service.OrderService {
	return service.NewOrderService(orders, restaurants, dishes, nil, nil)
}

var client = domain.User{ID: 1, Role: domain.RoleClient}

func TestCreateOrder_RestaurantNotFound(t *testing.T) {
	orders := new(mocks.OrderRepository)
	restaurants := new(mocks.RestaurantRepository)
	dishes := new(mocks.DishRepository)
	svc := newOrderService(orders, restaurants, dishes)

	restaurants.On("GetRestaurant", 99).Return(nil, sql.ErrNoRows).Once()

	out := svc.CreateOrder(context.Background(), client, domain.CreateOrderInput{
		RestaurantID: 99,
		Items:        []domain.CreateOrderItemInput{{DishID: 1}},
	})

	assert.False(t, out.OK)
	assert.Equal(t, "Restaurant not found", out.Error)
	assert.Equal(t, domain.KindNotFound, out.Kind)
	orders.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestCreateOrder_DishNotFound(t *testing.T) {
	orders := new(mocks.OrderRepository)
	restaurants := new(mocks.RestaurantRepository)
	dishes := new(mocks.DishRepository)
	svc := newOrderService(orders, restaurants, dishes)

	restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1, OwnerID: 2}, nil).Once()
	dishes.On("GetDish", 10).Return(&domain.Dish{ID: 10, Price: 5}, nil).Once()
	dishes.On("GetDish", 11).Return(nil, sql.ErrNoRows).Once()

	out := svc.CreateOrder(context.Background(), client, domain.CreateOrderInput{
		RestaurantID: 1,
		Items: []domain.CreateOrderItemInput{
			{DishID: 10},
			{DishID: 11},
		},
	})

	assert.False(t, out.OK)
	assert.Equal(t, "dish not found", out.Error)
	assert.Equal(t, domain.KindNotFound, out.Kind)
	orders.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestCreateOrder_Pricing(t *testing.T) {
	dish := &domain.Dish{
		ID:    10,
		Price: 10,
		Options: []domain.DishOption{
			{Name: "size", Extra: 2},
			{Name: "spice", Choices: []domain.DishChoice{
				{Name: "hot", Extra: 1},
				{Name: "mild"},
			}},
			{Name: "combo", Extra: 3, Choices: []domain.DishChoice{
				{Name: "deluxe", Extra: 9},
			}},
		},
	}

	tests := []struct {
		name      string
		options   []domain.OrderItemOption
		wantTotal float64
	}{
		{
			name:      "flat extra option",
			options:   []domain.OrderItemOption{{Name: "size"}},
			wantTotal: 12,
		},
		{
			name:      "priced choice",
			options:   []domain.OrderItemOption{{Name: "spice", Choice: "hot"}},
			wantTotal: 11,
		},
		{
			name:      "unmatched choice adds nothing",
			options:   []domain.OrderItemOption{{Name: "spice", Choice: "extra-mild"}},
			wantTotal: 10,
		},
		{
			name:      "free choice adds nothing",
			options:   []domain.OrderItemOption{{Name: "spice", Choice: "mild"}},
			wantTotal: 10,
		},
		{
			name:      "unknown option is ignored",
			options:   []domain.OrderItemOption{{Name: "gift-wrap"}},
			wantTotal: 10,
		},
		{
			name:      "flat extra wins over choices",
			options:   []domain.OrderItemOption{{Name: "combo", Choice: "deluxe"}},
			wantTotal: 13,
		},
		{
			name: "options accumulate",
			options: []domain.OrderItemOption{
				{Name: "size"},
				{Name: "spice", Choice: "hot"},
			},
			wantTotal: 13,
		},
		{
			name:      "no options",
			options:   nil,
			wantTotal: 10,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := new(mocks.OrderRepository)
			restaurants := new(mocks.RestaurantRepository)
			dishes := new(mocks.DishRepository)
			svc := newOrderService(orders, restaurants, dishes)

			restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1}, nil).Once()
			dishes.On("GetDish", 10).Return(dish, nil).Once()

			var created *domain.Order
			orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
				created = args.Get(0).(*domain.Order)
			}).Return(nil).Once()

			out := svc.CreateOrder(context.Background(), client, domain.CreateOrderInput{
				RestaurantID: 1,
				Items:        []domain.CreateOrderItemInput{{DishID: 10, Options: testCase.options}},
			})

			assert.True(t, out.OK)
			assert.Empty(t, out.Error)
			if assert.NotNil(t, created) {
				assert.Equal(t, testCase.wantTotal, created.Total)
			}
		})
	}
}

func TestCreateOrder_SnapshotsSubmittedOptions(t *testing.T) {
	orders := new(mocks.OrderRepository)
	restaurants := new(mocks.RestaurantRepository)
	dishes := new(mocks.DishRepository)
	svc := newOrderService(orders, restaurants, dishes)

	restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1}, nil).Once()
	dishes.On("GetDish", 10).Return(&domain.Dish{ID: 10, Price: 4}, nil).Once()

	submitted := []domain.OrderItemOption{{Name: "never-defined", Choice: "whatever"}}
	var created *domain.Order
	orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*domain.Order)
	}).Return(nil).Once()

	out := svc.CreateOrder(context.Background(), client, domain.CreateOrderInput{
		RestaurantID: 1,
		Items:        []domain.CreateOrderItemInput{{DishID: 10, Options: submitted}},
	})

	assert.True(t, out.OK)
	if assert.NotNil(t, created) && assert.Len(t, created.Items, 1) {
		assert.Equal(t, submitted, created.Items[0].Options)
		assert.Equal(t, domain.StatusPending, created.Status)
	}
}

func TestCreateOrder_PublishesEvent(t *testing.T) {
	orders := new(mocks.OrderRepository)
	restaurants := new(mocks.RestaurantRepository)
	dishes := new(mocks.DishRepository)
	publisher := new(mocks.OrderEventPublisher)
	svc := service.NewOrderService(orders, restaurants, dishes, publisher, nil)

	restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1}, nil).Once()
	dishes.On("GetDish", 10).Return(&domain.Dish{ID: 10, Price: 4}, nil).Once()
	orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
	publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == "order_created"
	})).Return(nil).Once()

	out := svc.CreateOrder(context.Background(), client, domain.CreateOrderInput{
		RestaurantID: 1,
		Items:        []domain.CreateOrderItemInput{{DishID: 10}},
	})

	assert.True(t, out.OK)
	publisher.AssertExpectations(t)
}

func TestGetOrders_RoleScoping(t *testing.T) {
	tests := []struct {
		name       string
		user       domain.User
		wantMethod string
	}{
		{name: "client sees own orders", user: domain.User{ID: 1, Role: domain.RoleClient}, wantMethod: "ListOrdersByCustomer"},
		{name: "driver sees assigned orders", user: domain.User{ID: 2, Role: domain.RoleDelivery}, wantMethod: "ListOrdersByDriver"},
		{name: "owner sees restaurant orders", user: domain.User{ID: 3, Role: domain.RoleOwner}, wantMethod: "ListOrdersByOwner"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := new(mocks.OrderRepository)
			svc := newOrderService(orders, new(mocks.RestaurantRepository), new(mocks.DishRepository))

			orders.On(testCase.wantMethod, testCase.user.ID, domain.StatusPending).
				Return([]domain.Order{{ID: 7}}, nil).Once()

			out := svc.GetOrders(testCase.user, domain.StatusPending)

			assert.True(t, out.OK)
			assert.Len(t, out.Orders, 1)
			orders.AssertExpectations(t)
		})
	}
}

func TestGetOrder_Visibility(t *testing.T) {
	driverID := 5
	order := &domain.Order{ID: 7, CustomerID: 1, DriverID: &driverID, RestaurantID: 3}

	tests := []struct {
		name      string
		user      domain.User
		ownerID   int
		wantOK    bool
		wantError string
	}{
		{name: "customer", user: domain.User{ID: 1, Role: domain.RoleClient}, wantOK: true},
		{name: "driver", user: domain.User{ID: 5, Role: domain.RoleDelivery}, wantOK: true},
		{name: "restaurant owner", user: domain.User{ID: 9, Role: domain.RoleOwner}, ownerID: 9, wantOK: true},
		{name: "stranger", user: domain.User{ID: 42, Role: domain.RoleClient}, ownerID: 9, wantOK: false, wantError: "You can't see that"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := new(mocks.OrderRepository)
			restaurants := new(mocks.RestaurantRepository)
			svc := newOrderService(orders, restaurants, new(mocks.DishRepository))

			orders.On("GetOrder", 7).Return(order, nil).Once()
			restaurants.On("GetRestaurant", 3).Return(&domain.Restaurant{ID: 3, OwnerID: testCase.ownerID}, nil).Maybe()

			out := svc.GetOrder(testCase.user, 7)

			assert.Equal(t, testCase.wantOK, out.OK)
			if !testCase.wantOK {
				assert.Equal(t, testCase.wantError, out.Error)
				assert.Equal(t, domain.KindForbidden, out.Kind)
			}
		})
	}
}

func TestEditOrder_StatusMatrix(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.UserRole
		status  domain.OrderStatus
		allowed bool
	}{
		{name: "owner starts cooking", role: domain.RoleOwner, status: domain.StatusCooking, allowed: true},
		{name: "owner finishes cooking", role: domain.RoleOwner, status: domain.StatusCooked, allowed: true},
		{name: "owner cannot deliver", role: domain.RoleOwner, status: domain.StatusDelivered, allowed: false},
		{name: "driver picks up", role: domain.RoleDelivery, status: domain.StatusPickedUp, allowed: true},
		{name: "driver delivers", role: domain.RoleDelivery, status: domain.StatusDelivered, allowed: true},
		{name: "driver cannot cook", role: domain.RoleDelivery, status: domain.StatusCooking, allowed: false},
		{name: "client cannot edit", role: domain.RoleClient, status: domain.StatusCooking, allowed: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := new(mocks.OrderRepository)
			restaurants := new(mocks.RestaurantRepository)
			svc := newOrderService(orders, restaurants, new(mocks.DishRepository))

			user := domain.User{ID: 1, Role: testCase.role}
			driverID := 1
			order := &domain.Order{ID: 7, CustomerID: 1, DriverID: &driverID, RestaurantID: 3}

			orders.On("GetOrder", 7).Return(order, nil).Once()
			restaurants.On("GetRestaurant", 3).Return(&domain.Restaurant{ID: 3, OwnerID: 1}, nil).Maybe()
			if testCase.allowed {
				orders.On("UpdateOrderStatus", 7, testCase.status).Return(nil).Once()
			}

			out := svc.EditOrder(context.Background(), user, domain.EditOrderInput{ID: 7, Status: testCase.status})

			assert.Equal(t, testCase.allowed, out.OK)
			if !testCase.allowed {
				assert.Equal(t, "You can't edit order", out.Error)
				orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestTakeOrder(t *testing.T) {
	driver := domain.User{ID: 5, Role: domain.RoleDelivery}

	t.Run("assigns free order", func(t *testing.T) {
		orders := new(mocks.OrderRepository)
		svc := newOrderService(orders, new(mocks.RestaurantRepository), new(mocks.DishRepository))

		orders.On("GetOrder", 7).Return(&domain.Order{ID: 7}, nil).Once()
		orders.On("AssignDriver", 7, 5).Return(nil).Once()

		out := svc.TakeOrder(context.Background(), driver, 7)

		assert.True(t, out.OK)
		orders.AssertExpectations(t)
	})

	t.Run("rejects order with a driver", func(t *testing.T) {
		orders := new(mocks.OrderRepository)
		svc := newOrderService(orders, new(mocks.RestaurantRepository), new(mocks.DishRepository))

		other := 6
		orders.On("GetOrder", 7).Return(&domain.Order{ID: 7, DriverID: &other}, nil).Once()

		out := svc.TakeOrder(context.Background(), driver, 7)

		assert.False(t, out.OK)
		assert.Equal(t, "This order already has a driver", out.Error)
		assert.Equal(t, domain.KindConflict, out.Kind)
		orders.AssertNotCalled(t, "AssignDriver", mock.Anything, mock.Anything)
	})
}
