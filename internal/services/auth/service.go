// Package auth handles registration and login. Registration provisions the
// user's account alongside the user record.
package auth

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"moneybox/internal/models"
	"moneybox/internal/repositories"
	"moneybox/internal/utils"
	"moneybox/internal/validation"
)

type Service interface {
	Register(input *models.CreateUserInput) (*models.User, error)
	Login(email, password string) (*models.User, string, error)
}

type service struct {
	users    repositories.UserRepository
	accounts repositories.AccountRepository
}

func NewService(users repositories.UserRepository, accounts repositories.AccountRepository) Service {
	if users == nil {
		panic("user repo is required")
	}
	if accounts == nil {
		panic("account repo is required")
	}

	return &service{
		users:    users,
		accounts: accounts,
	}
}

func (s *service) Register(input *models.CreateUserInput) (*models.User, error) {
	if !validation.ValidEmail(input.Email) {
		return nil, errors.New("invalid email address")
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if existing, _ := s.users.GetByEmail(input.Email); existing != nil {
		return nil, repositories.ErrDuplicateUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: string(hashedPassword),
		Status:   "active",
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	account := &models.Account{
		UserID:    user.ID,
		Balance:   decimal.Zero,
		Withdrawn: decimal.Zero,
		PaidIn:    decimal.Zero,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		log.Printf("Login failed: user not found for %s", email)
		return nil, "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for user ID %d", user.ID)
		return nil, "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(&models.UserClaims{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		log.Println("Error generating token:", err)
		return nil, "", errors.New("error generating token")
	}

	return user, token, nil
}
