package service_test

import (
	"database/sql"
	"testing"

	"eats-backend/internal/domain"
	"eats-backend/internal/mocks"
	"eats-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateAccount(t *testing.T) {
	t.Run("rejects duplicate email", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := service.NewAccountService(users, nil, nil)

		users.On("GetUserByEmail", "a@b.com").Return(&domain.User{ID: 1, Email: "a@b.com"}, nil).Once()

		out := svc.CreateAccount(domain.CreateAccountInput{Email: "a@b.com", Password: "pw", Role: domain.RoleClient})

		assert.False(t, out.OK)
		assert.Equal(t, "There is a user with that email already", out.Error)
		assert.Equal(t, domain.KindConflict, out.Kind)
		users.AssertNotCalled(t, "CreateUser", mock.Anything)
	})

	t.Run("creates user and sends verification", func(t *testing.T) {
		users := new(mocks.UserRepository)
		mailer := new(mocks.MailSender)
		svc := service.NewAccountService(users, mailer, nil)

		users.On("GetUserByEmail", "a@b.com").Return(nil, sql.ErrNoRows).Once()
		users.On("CreateUser", mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			user := args.Get(0).(*domain.User)
			user.ID = 1
			// the stored password must never be the plaintext
			assert.NotEqual(t, "pw", user.Password)
		}).Return(nil).Once()
		users.On("CreateVerification", mock.AnythingOfType("*domain.Verification")).Return(nil).Once()
		mailer.On("SendVerificationEmail", "a@b.com", mock.AnythingOfType("string")).Return(nil).Once()

		out := svc.CreateAccount(domain.CreateAccountInput{Email: "a@b.com", Password: "pw", Role: domain.RoleClient})

		assert.True(t, out.OK)
		users.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)

	t.Run("unknown user", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := service.NewAccountService(users, nil, nil)

		users.On("GetUserByEmail", "ghost@b.com").Return(nil, sql.ErrNoRows).Once()

		out := svc.Login(domain.LoginInput{Email: "ghost@b.com", Password: "x"})

		assert.False(t, out.OK)
		assert.Equal(t, "User not found", out.Error)
		assert.Equal(t, domain.KindNotFound, out.Kind)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := service.NewAccountService(users, nil, nil)

		users.On("GetUserByEmail", "a@b.com").
			Return(&domain.User{ID: 1, Email: "a@b.com", Password: string(hashed)}, nil).Once()

		out := svc.Login(domain.LoginInput{Email: "a@b.com", Password: "wrong"})

		assert.False(t, out.OK)
		assert.Equal(t, "Wrong password", out.Error)
		assert.Equal(t, domain.KindForbidden, out.Kind)
		assert.Empty(t, out.Token)
	})

	t.Run("issues token", func(t *testing.T) {
		users := new(mocks.UserRepository)
		tokens := new(mocks.TokenIssuer)
		svc := service.NewAccountService(users, nil, tokens)

		users.On("GetUserByEmail", "a@b.com").
			Return(&domain.User{ID: 1, Email: "a@b.com", Password: string(hashed)}, nil).Once()
		tokens.On("Sign", 1).Return("signed-token", nil).Once()

		out := svc.Login(domain.LoginInput{Email: "a@b.com", Password: "right"})

		assert.True(t, out.OK)
		assert.Equal(t, "signed-token", out.Token)
	})
}

func TestEditProfile_EmailChangeResetsVerification(t *testing.T) {
	users := new(mocks.UserRepository)
	mailer := new(mocks.MailSender)
	svc := service.NewAccountService(users, mailer, nil)

	users.On("GetUserByID", 1).
		Return(&domain.User{ID: 1, Email: "old@b.com", Verified: true}, nil).Once()
	users.On("DeleteVerificationsByUser", 1).Return(nil).Once()
	users.On("CreateVerification", mock.AnythingOfType("*domain.Verification")).Return(nil).Once()
	mailer.On("SendVerificationEmail", "new@b.com", mock.AnythingOfType("string")).Return(nil).Once()

	var saved *domain.User
	users.On("UpdateUser", mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*domain.User)
	}).Return(nil).Once()

	out := svc.EditProfile(domain.User{ID: 1}, domain.EditProfileInput{Email: "new@b.com"})

	assert.True(t, out.OK)
	if assert.NotNil(t, saved) {
		assert.Equal(t, "new@b.com", saved.Email)
		assert.False(t, saved.Verified)
	}
}

func TestVerifyEmail(t *testing.T) {
	t.Run("unknown code", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := service.NewAccountService(users, nil, nil)

		users.On("GetVerificationByCode", "nope").Return(nil, sql.ErrNoRows).Once()

		out := svc.VerifyEmail(domain.VerifyEmailInput{Code: "nope"})

		assert.False(t, out.OK)
		assert.Equal(t, "Verification not found", out.Error)
	})

	t.Run("marks user verified", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := service.NewAccountService(users, nil, nil)

		users.On("GetVerificationByCode", "code").
			Return(&domain.Verification{ID: 5, UserID: 1, Code: "code"}, nil).Once()
		users.On("GetUserByID", 1).Return(&domain.User{ID: 1}, nil).Once()

		var saved *domain.User
		users.On("UpdateUser", mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			saved = args.Get(0).(*domain.User)
		}).Return(nil).Once()
		users.On("DeleteVerification", 5).Return(nil).Once()

		out := svc.VerifyEmail(domain.VerifyEmailInput{Code: "code"})

		assert.True(t, out.OK)
		if assert.NotNil(t, saved) {
			assert.True(t, saved.Verified)
		}
		users.AssertExpectations(t)
	})
}
