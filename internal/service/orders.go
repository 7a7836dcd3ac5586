package service

import (
	"context"
	"time"

	"eats-backend/internal/domain"
)

type OrderService struct {
	orders      OrderRepository
	restaurants RestaurantRepository
	dishes      DishRepository
	publisher   OrderEventPublisher
	qrEncoder   QRGenerator
}

func NewOrderService(orders OrderRepository, restaurants RestaurantRepository, dishes DishRepository, publisher OrderEventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		orders:      orders,
		restaurants: restaurants,
		dishes:      dishes,
		publisher:   publisher,
		qrEncoder:   qr,
	}
}

// priceItem resolves one cart line against the dish's option schema.
// Submitted options are matched by name, first match wins; an option
// name the dish does not define contributes nothing and raises no
// error. An option with a flat extra prices by that extra alone, even
// if it also defines choices; otherwise the matching choice's extra
// applies, and a missing choice adds zero.
func priceItem(dish *domain.Dish, submitted []domain.OrderItemOption) float64 {
	price := dish.Price
	for _, itemOption := range submitted {
		var dishOption *domain.DishOption
		for i := range dish.Options {
			if dish.Options[i].Name == itemOption.Name {
				dishOption = &dish.Options[i]
				break
			}
		}
		if dishOption == nil {
			continue
		}
		if dishOption.Extra != 0 {
			price += dishOption.Extra
		} else {
			for _, choice := range dishOption.Choices {
				if choice.Name == itemOption.Choice {
					price += choice.Extra
					break
				}
			}
		}
	}
	return price
}

func (s *OrderService) CreateOrder(ctx context.Context, customer domain.User, in domain.CreateOrderInput) domain.CreateOrderOutput {
	restaurant, err := s.restaurants.GetRestaurant(in.RestaurantID)
	if err != nil {
		if isNotFound(err) {
			return domain.CreateOrderOutput{Result: domain.Fail(domain.KindNotFound, "Restaurant not found")}
		}
		return domain.CreateOrderOutput{Result: domain.Fail(kindOf(err), "Could not create order")}
	}

	order := domain.Order{
		CustomerID:   customer.ID,
		RestaurantID: restaurant.ID,
		Status:       domain.StatusPending,
	}
	var orderFinalPrice float64
	for _, item := range in.Items {
		dish, err := s.dishes.GetDish(item.DishID)
		if err != nil {
			// abort the whole order
			if isNotFound(err) {
				return domain.CreateOrderOutput{Result: domain.Fail(domain.KindNotFound, "dish not found")}
			}
			return domain.CreateOrderOutput{Result: domain.Fail(kindOf(err), "Could not create order")}
		}
		orderFinalPrice += priceItem(dish, item.Options)
		order.Items = append(order.Items, domain.OrderItem{
			DishID:  dish.ID,
			Options: item.Options,
		})
	}
	order.Total = orderFinalPrice

	if err := s.orders.CreateOrder(&order); err != nil {
		return domain.CreateOrderOutput{Result: domain.Fail(kindOf(err), "Could not create order")}
	}

	s.publish(ctx, "order_created", &order)
	return domain.CreateOrderOutput{Result: domain.OK()}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		CustomerID:   order.CustomerID,
		DriverID:     order.DriverID,
		Status:       order.Status,
		Total:        order.Total,
		Timestamp:    time.Now(),
	})
}

func (s *OrderService) GetOrders(user domain.User, status domain.OrderStatus) domain.GetOrdersOutput {
	var (
		orders []domain.Order
		err    error
	)
	switch user.Role {
	case domain.RoleClient:
		orders, err = s.orders.ListOrdersByCustomer(user.ID, status)
	case domain.RoleDelivery:
		orders, err = s.orders.ListOrdersByDriver(user.ID, status)
	case domain.RoleOwner:
		orders, err = s.orders.ListOrdersByOwner(user.ID, status)
	}
	if err != nil {
		return domain.GetOrdersOutput{Result: domain.Fail(kindOf(err), "Could not get orders")}
	}
	return domain.GetOrdersOutput{Result: domain.OK(), Orders: orders}
}

// canSeeOrder is true for the order's customer, its driver, and the
// owner of the restaurant it was placed with.
func (s *OrderService) canSeeOrder(user domain.User, order *domain.Order) (bool, error) {
	if order.CustomerID == user.ID {
		return true, nil
	}
	if order.DriverID != nil && *order.DriverID == user.ID {
		return true, nil
	}
	restaurant, err := s.restaurants.GetRestaurant(order.RestaurantID)
	if err != nil {
		return false, err
	}
	return restaurant.OwnerID == user.ID, nil
}

func (s *OrderService) GetOrder(user domain.User, id int) domain.GetOrderOutput {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		if isNotFound(err) {
			return domain.GetOrderOutput{Result: domain.Fail(domain.KindNotFound, "Order not found")}
		}
		return domain.GetOrderOutput{Result: domain.Fail(kindOf(err), "Could not load order")}
	}

	canSee, err := s.canSeeOrder(user, order)
	if err != nil {
		return domain.GetOrderOutput{Result: domain.Fail(kindOf(err), "Could not load order")}
	}
	if !canSee {
		return domain.GetOrderOutput{Result: domain.Fail(domain.KindForbidden, "You can't see that")}
	}
	return domain.GetOrderOutput{Result: domain.OK(), Order: order}
}

// canEditOrder encodes who may move an order into which status: the
// restaurant owner drives the kitchen states, the driver the delivery
// states, and the customer nothing.
func canEditOrder(user domain.User, status domain.OrderStatus) bool {
	switch user.Role {
	case domain.RoleOwner:
		return status == domain.StatusCooking || status == domain.StatusCooked
	case domain.RoleDelivery:
		return status == domain.StatusPickedUp || status == domain.StatusDelivered
	}
	return false
}

func (s *OrderService) EditOrder(ctx context.Context, user domain.User, in domain.EditOrderInput) domain.EditOrderOutput {
	order, err := s.orders.GetOrder(in.ID)
	if err != nil {
		if isNotFound(err) {
			return domain.EditOrderOutput{Result: domain.Fail(domain.KindNotFound, "Order not found")}
		}
		return domain.EditOrderOutput{Result: domain.Fail(kindOf(err), "Could not edit order")}
	}

	canSee, err := s.canSeeOrder(user, order)
	if err != nil {
		return domain.EditOrderOutput{Result: domain.Fail(kindOf(err), "Could not edit order")}
	}
	if !canSee {
		return domain.EditOrderOutput{Result: domain.Fail(domain.KindForbidden, "You can't see that")}
	}
	if !canEditOrder(user, in.Status) {
		return domain.EditOrderOutput{Result: domain.Fail(domain.KindForbidden, "You can't edit order")}
	}

	if err := s.orders.UpdateOrderStatus(order.ID, in.Status); err != nil {
		return domain.EditOrderOutput{Result: domain.Fail(kindOf(err), "Could not edit order")}
	}
	order.Status = in.Status
	s.publish(ctx, "order_status_changed", order)
	return domain.EditOrderOutput{Result: domain.OK()}
}

func (s *OrderService) TakeOrder(ctx context.Context, driver domain.User, orderID int) domain.TakeOrderOutput {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		if isNotFound(err) {
			return domain.TakeOrderOutput{Result: domain.Fail(domain.KindNotFound, "Order not found")}
		}
		return domain.TakeOrderOutput{Result: domain.Fail(kindOf(err), "Could not take order")}
	}
	if order.DriverID != nil {
		return domain.TakeOrderOutput{Result: domain.Fail(domain.KindConflict, "This order already has a driver")}
	}

	if err := s.orders.AssignDriver(order.ID, driver.ID); err != nil {
		return domain.TakeOrderOutput{Result: domain.Fail(kindOf(err), "Could not take order")}
	}
	order.DriverID = &driver.ID
	s.publish(ctx, "order_taken", order)
	return domain.TakeOrderOutput{Result: domain.OK()}
}

// PickupQR renders the pickup code for an existing order.
func (s *OrderService) PickupQR(orderID int) ([]byte, error) {
	if _, err := s.orders.GetOrder(orderID); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
