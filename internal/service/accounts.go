package service

import (
	"crypto/rand"
	"encoding/hex"

	"eats-backend/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	users  UserRepository
	mail   MailSender
	tokens TokenIssuer
}

func NewAccountService(users UserRepository, mail MailSender, tokens TokenIssuer) *AccountService {
	return &AccountService{users: users, mail: mail, tokens: tokens}
}

func newVerificationCode() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func (s *AccountService) CreateAccount(in domain.CreateAccountInput) domain.CreateAccountOutput {
	existing, err := s.users.GetUserByEmail(in.Email)
	if err != nil && !isNotFound(err) {
		return domain.CreateAccountOutput{Result: domain.Fail(kindOf(err), "Could not create account")}
	}
	if existing != nil {
		return domain.CreateAccountOutput{Result: domain.Fail(domain.KindConflict, "There is a user with that email already")}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.CreateAccountOutput{Result: domain.Fail(domain.KindUnknown, "Could not create account")}
	}

	user := domain.User{Email: in.Email, Password: string(hashed), Role: in.Role}
	if err := s.users.CreateUser(&user); err != nil {
		return domain.CreateAccountOutput{Result: domain.Fail(kindOf(err), "Could not create account")}
	}

	verification := domain.Verification{UserID: user.ID, Code: newVerificationCode()}
	if err := s.users.CreateVerification(&verification); err != nil {
		return domain.CreateAccountOutput{Result: domain.Fail(kindOf(err), "Could not create account")}
	}
	if s.mail != nil {
		_ = s.mail.SendVerificationEmail(user.Email, verification.Code)
	}

	return domain.CreateAccountOutput{Result: domain.OK()}
}

func (s *AccountService) Login(in domain.LoginInput) domain.LoginOutput {
	user, err := s.users.GetUserByEmail(in.Email)
	if err != nil {
		if isNotFound(err) {
			return domain.LoginOutput{Result: domain.Fail(domain.KindNotFound, "User not found")}
		}
		return domain.LoginOutput{Result: domain.Fail(kindOf(err), "Could not log user in")}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return domain.LoginOutput{Result: domain.Fail(domain.KindForbidden, "Wrong password")}
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return domain.LoginOutput{Result: domain.Fail(domain.KindUnknown, "Could not log user in")}
	}
	return domain.LoginOutput{Result: domain.OK(), Token: token}
}

func (s *AccountService) UserProfile(id int) domain.UserProfileOutput {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		if isNotFound(err) {
			return domain.UserProfileOutput{Result: domain.Fail(domain.KindNotFound, "User not found")}
		}
		return domain.UserProfileOutput{Result: domain.Fail(kindOf(err), "Could not find user")}
	}
	return domain.UserProfileOutput{Result: domain.OK(), User: user}
}

func (s *AccountService) EditProfile(user domain.User, in domain.EditProfileInput) domain.EditProfileOutput {
	current, err := s.users.GetUserByID(user.ID)
	if err != nil {
		return domain.EditProfileOutput{Result: domain.Fail(kindOf(err), "Could not update profile")}
	}

	if in.Email != "" {
		current.Email = in.Email
		current.Verified = false
		if err := s.users.DeleteVerificationsByUser(current.ID); err != nil {
			return domain.EditProfileOutput{Result: domain.Fail(kindOf(err), "Could not update profile")}
		}
		verification := domain.Verification{UserID: current.ID, Code: newVerificationCode()}
		if err := s.users.CreateVerification(&verification); err != nil {
			return domain.EditProfileOutput{Result: domain.Fail(kindOf(err), "Could not update profile")}
		}
		if s.mail != nil {
			_ = s.mail.SendVerificationEmail(current.Email, verification.Code)
		}
	}
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.EditProfileOutput{Result: domain.Fail(domain.KindUnknown, "Could not update profile")}
		}
		current.Password = string(hashed)
	}

	if err := s.users.UpdateUser(current); err != nil {
		return domain.EditProfileOutput{Result: domain.Fail(kindOf(err), "Could not update profile")}
	}
	return domain.EditProfileOutput{Result: domain.OK()}
}

func (s *AccountService) VerifyEmail(in domain.VerifyEmailInput) domain.VerifyEmailOutput {
	verification, err := s.users.GetVerificationByCode(in.Code)
	if err != nil {
		if isNotFound(err) {
			return domain.VerifyEmailOutput{Result: domain.Fail(domain.KindNotFound, "Verification not found")}
		}
		return domain.VerifyEmailOutput{Result: domain.Fail(kindOf(err), "Could not verify email")}
	}

	user, err := s.users.GetUserByID(verification.UserID)
	if err != nil {
		return domain.VerifyEmailOutput{Result: domain.Fail(kindOf(err), "Could not verify email")}
	}
	user.Verified = true
	if err := s.users.UpdateUser(user); err != nil {
		return domain.VerifyEmailOutput{Result: domain.Fail(kindOf(err), "Could not verify email")}
	}
	if err := s.users.DeleteVerification(verification.ID); err != nil {
		return domain.VerifyEmailOutput{Result: domain.Fail(kindOf(err), "Could not verify email")}
	}
	return domain.VerifyEmailOutput{Result: domain.OK()}
}

var _ AccountServiceInterface = (*AccountService)(nil)
