package service

import (
	"eats-backend/internal/domain"
)

type DishService struct {
	dishes      DishRepository
	restaurants RestaurantRepository
}

func NewDishService(dishes DishRepository, restaurants RestaurantRepository) *DishService {
	return &DishService{dishes: dishes, restaurants: restaurants}
}

func (s *DishService) CreateDish(owner domain.User, in domain.CreateDishInput) domain.CreateDishOutput {
	restaurant, err := s.restaurants.GetRestaurant(in.RestaurantID)
	if err != nil {
		if isNotFound(err) {
			return domain.CreateDishOutput{Result: domain.Fail(domain.KindNotFound, "Restaurant not found")}
		}
		return domain.CreateDishOutput{Result: domain.Fail(kindOf(err), "Could not create dish")}
	}
	if owner.ID != restaurant.OwnerID {
		return domain.CreateDishOutput{Result: domain.Fail(domain.KindForbidden, "You cannot create a dish for a restaurant that you do not own")}
	}

	dish := domain.Dish{
		RestaurantID: restaurant.ID,
		Name:         in.Name,
		Price:        in.Price,
		Description:  in.Description,
		Options:      in.Options,
	}
	if err := s.dishes.CreateDish(&dish); err != nil {
		return domain.CreateDishOutput{Result: domain.Fail(kindOf(err), "Could not create dish")}
	}
	return domain.CreateDishOutput{Result: domain.OK()}
}

// ownsDish resolves the dish's owning chain: dish -> restaurant -> owner.
func (s *DishService) ownsDish(owner domain.User, dish *domain.Dish) (bool, error) {
	restaurant, err := s.restaurants.GetRestaurant(dish.RestaurantID)
	if err != nil {
		return false, err
	}
	return restaurant.OwnerID == owner.ID, nil
}

func (s *DishService) EditDish(owner domain.User, in domain.EditDishInput) domain.EditDishOutput {
	dish, err := s.dishes.GetDish(in.DishID)
	if err != nil {
		if isNotFound(err) {
			return domain.EditDishOutput{Result: domain.Fail(domain.KindNotFound, "Dish not found")}
		}
		return domain.EditDishOutput{Result: domain.Fail(kindOf(err), "Could not edit dish")}
	}
	owns, err := s.ownsDish(owner, dish)
	if err != nil {
		return domain.EditDishOutput{Result: domain.Fail(kindOf(err), "Could not edit dish")}
	}
	if !owns {
		return domain.EditDishOutput{Result: domain.Fail(domain.KindForbidden, "You cannot edit a dish that you do not own")}
	}

	if in.Name != "" {
		dish.Name = in.Name
	}
	if in.Price != nil {
		dish.Price = *in.Price
	}
	if in.Description != "" {
		dish.Description = in.Description
	}
	if in.Options != nil {
		dish.Options = in.Options
	}

	if err := s.dishes.UpdateDish(dish); err != nil {
		return domain.EditDishOutput{Result: domain.Fail(kindOf(err), "Could not edit dish")}
	}
	return domain.EditDishOutput{Result: domain.OK()}
}

func (s *DishService) DeleteDish(owner domain.User, dishID int) domain.DeleteDishOutput {
	dish, err := s.dishes.GetDish(dishID)
	if err != nil {
		if isNotFound(err) {
			return domain.DeleteDishOutput{Result: domain.Fail(domain.KindNotFound, "Dish not found")}
		}
		return domain.DeleteDishOutput{Result: domain.Fail(kindOf(err), "Could not delete dish")}
	}
	owns, err := s.ownsDish(owner, dish)
	if err != nil {
		return domain.DeleteDishOutput{Result: domain.Fail(kindOf(err), "Could not delete dish")}
	}
	if !owns {
		return domain.DeleteDishOutput{Result: domain.Fail(domain.KindForbidden, "You cannot delete a dish that you do not own")}
	}

	if _, err := s.dishes.DeleteDish(dishID); err != nil {
		return domain.DeleteDishOutput{Result: domain.Fail(kindOf(err), "Could not delete dish")}
	}
	return domain.DeleteDishOutput{Result: domain.OK()}
}

var _ DishServiceInterface = (*DishService)(nil)
