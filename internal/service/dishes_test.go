package service_test

import (
	"database/sql"
	"testing"

	"eats-backend/internal/domain"
	"eats-backend/internal/mocks"
	"eats-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateDish(t *testing.T) {
	tests := []struct {
		name      string
		caller    domain.User
		found     *domain.Restaurant
		findErr   error
		wantOK    bool
		wantError string
	}{
		{
			name:   "owner creates dish",
			caller: domain.User{ID: 1, Role: domain.RoleOwner},
			found:  &domain.Restaurant{ID: 3, OwnerID: 1},
			wantOK: true,
		},
		{
			name:      "restaurant missing",
			caller:    domain.User{ID: 1, Role: domain.RoleOwner},
			findErr:   sql.ErrNoRows,
			wantError: "Restaurant not found",
		},
		{
			name:      "not the owner",
			caller:    domain.User{ID: 2, Role: domain.RoleOwner},
			found:     &domain.Restaurant{ID: 3, OwnerID: 1},
			wantError: "You cannot create a dish for a restaurant that you do not own",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dishes := new(mocks.DishRepository)
			restaurants := new(mocks.RestaurantRepository)
			svc := service.NewDishService(dishes, restaurants)

			restaurants.On("GetRestaurant", 3).Return(testCase.found, testCase.findErr).Once()
			if testCase.wantOK {
				dishes.On("CreateDish", mock.AnythingOfType("*domain.Dish")).Return(nil).Once()
			}

			out := svc.CreateDish(testCase.caller, domain.CreateDishInput{
				RestaurantID: 3,
				Name:         "Bibimbap",
				Price:        12,
			})

			assert.Equal(t, testCase.wantOK, out.OK)
			assert.Equal(t, testCase.wantError, out.Error)
			if !testCase.wantOK {
				dishes.AssertNotCalled(t, "CreateDish", mock.Anything)
			}
		})
	}
}

func TestEditDish_NotOwner(t *testing.T) {
	dishes := new(mocks.DishRepository)
	restaurants := new(mocks.RestaurantRepository)
	svc := service.NewDishService(dishes, restaurants)

	dishes.On("GetDish", 9).Return(&domain.Dish{ID: 9, RestaurantID: 3}, nil).Once()
	restaurants.On("GetRestaurant", 3).Return(&domain.Restaurant{ID: 3, OwnerID: 1}, nil).Once()

	out := svc.EditDish(domain.User{ID: 2, Role: domain.RoleOwner}, domain.EditDishInput{DishID: 9, Name: "New"})

	assert.False(t, out.OK)
	assert.Equal(t, "You cannot edit a dish that you do not own", out.Error)
	assert.Equal(t, domain.KindForbidden, out.Kind)
	dishes.AssertNotCalled(t, "UpdateDish", mock.Anything)
}

func TestEditDish_AppliesDeltas(t *testing.T) {
	dishes := new(mocks.DishRepository)
	restaurants := new(mocks.RestaurantRepository)
	svc := service.NewDishService(dishes, restaurants)

	dishes.On("GetDish", 9).Return(&domain.Dish{ID: 9, RestaurantID: 3, Name: "Old", Price: 5, Description: "keep"}, nil).Once()
	restaurants.On("GetRestaurant", 3).Return(&domain.Restaurant{ID: 3, OwnerID: 1}, nil).Once()

	var updated *domain.Dish
	dishes.On("UpdateDish", mock.AnythingOfType("*domain.Dish")).Run(func(args mock.Arguments) {
		updated = args.Get(0).(*domain.Dish)
	}).Return(nil).Once()

	newPrice := 8.0
	out := svc.EditDish(domain.User{ID: 1, Role: domain.RoleOwner}, domain.EditDishInput{
		DishID: 9,
		Name:   "New",
		Price:  &newPrice,
	})

	assert.True(t, out.OK)
	if assert.NotNil(t, updated) {
		assert.Equal(t, "New", updated.Name)
		assert.Equal(t, 8.0, updated.Price)
		assert.Equal(t, "keep", updated.Description)
	}
}

func TestDeleteDish(t *testing.T) {
	t.Run("missing dish", func(t *testing.T) {
		dishes := new(mocks.DishRepository)
		svc := service.NewDishService(dishes, new(mocks.RestaurantRepository))

		dishes.On("GetDish", 9).Return(nil, sql.ErrNoRows).Once()

		out := svc.DeleteDish(domain.User{ID: 1, Role: domain.RoleOwner}, 9)

		assert.False(t, out.OK)
		assert.Equal(t, "Dish not found", out.Error)
		assert.Equal(t, domain.KindNotFound, out.Kind)
	})

	t.Run("not the owner", func(t *testing.T) {
		dishes := new(mocks.DishRepository)
		restaurants := new(mocks.RestaurantRepository)
		svc := service.NewDishService(dishes, restaurants)

		dishes.On("GetDish", 9).Return(&domain.Dish{ID: 9, RestaurantID: 3}, nil).Once()
		restaurants.On("GetRestaurant", 3).Return(&domain.Restaurant{ID: 3, OwnerID: 1}, nil).Once()

		out := svc.DeleteDish(domain.User{ID: 2, Role: domain.RoleOwner}, 9)

		assert.False(t, out.OK)
		assert.Equal(t, "You cannot delete a dish that you do not own", out.Error)
		dishes.AssertNotCalled(t, "DeleteDish", mock.Anything)
	})

	t.Run("owner deletes", func(t *testing.T) {
		dishes := new(mocks.DishRepository)
		restaurants := new(mocks.RestaurantRepository)
		svc := service.NewDishService(dishes, restaurants)

		dishes.On("GetDish", 9).Return(&domain.Dish{ID: 9, RestaurantID: 3}, nil).Once()
		restaurants.On("GetRestaurant", 3).Return(&domain.Restaurant{ID: 3, OwnerID: 1}, nil).Once()
		dishes.On("DeleteDish", 9).Return(1, nil).Once()

		out := svc.DeleteDish(domain.User{ID: 1, Role: domain.RoleOwner}, 9)

		assert.True(t, out.OK)
		dishes.AssertExpectations(t)
	})
}
