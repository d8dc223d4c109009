package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"moneybox/internal/models"
	"moneybox/internal/repositories"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepo) GetByID(id uuid.UUID) (*models.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepo) GetByUserID(userID uint) (*models.Account, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepo) Update(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func TestNewService_RequiresDependencies(t *testing.T) {
	users := new(MockUserRepo)
	accounts := new(MockAccountRepo)

	assert.Panics(t, func() { NewService(nil, accounts) })
	assert.Panics(t, func() { NewService(users, nil) })
	assert.NotPanics(t, func() { NewService(users, accounts) })
}

func TestRegister(t *testing.T) {
	input := &models.CreateUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "555-0100",
		Password: "hunter2!hunter2",
	}

	t.Run("creates user with a zero balance account", func(t *testing.T) {
		users := new(MockUserRepo)
		accounts := new(MockAccountRepo)
		s := NewService(users, accounts)

		users.On("GetByEmail", input.Email).Return(nil, repositories.ErrUserNotFound)
		users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
		accounts.On("Create", mock.AnythingOfType("*models.Account")).Run(func(args mock.Arguments) {
			account := args.Get(0).(*models.Account)
			assert.True(t, account.Balance.IsZero())
			assert.True(t, account.Withdrawn.IsZero())
			assert.True(t, account.PaidIn.IsZero())
		}).Return(nil)

		user, err := s.Register(input)

		assert.NoError(t, err)
		assert.Equal(t, input.Email, user.Email)
		assert.NotEqual(t, input.Password, user.Password)
		users.AssertExpectations(t)
		accounts.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		users := new(MockUserRepo)
		accounts := new(MockAccountRepo)
		s := NewService(users, accounts)

		users.On("GetByEmail", input.Email).Return(&models.User{Email: input.Email}, nil)

		_, err := s.Register(input)

		assert.ErrorIs(t, err, repositories.ErrDuplicateUser)
		users.AssertNotCalled(t, "Create", mock.Anything)
		accounts.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		users := new(MockUserRepo)
		accounts := new(MockAccountRepo)
		s := NewService(users, accounts)

		_, err := s.Register(&models.CreateUserInput{Email: "not-an-email", Password: input.Password})

		assert.Error(t, err)
		users.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		users := new(MockUserRepo)
		accounts := new(MockAccountRepo)
		s := NewService(users, accounts)

		_, err := s.Register(&models.CreateUserInput{Email: input.Email, Password: "short"})

		assert.Error(t, err)
		users.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter2!hunter2"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &models.User{
		Email:    "alice@example.com",
		Password: string(hashed),
	}

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		users := new(MockUserRepo)
		accounts := new(MockAccountRepo)
		s := NewService(users, accounts)

		users.On("GetByEmail", stored.Email).Return(stored, nil)

		user, token, err := s.Login(stored.Email, "hunter2!hunter2")

		assert.NoError(t, err)
		assert.Equal(t, stored.Email, user.Email)
		assert.NotEmpty(t, token)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		users := new(MockUserRepo)
		accounts := new(MockAccountRepo)
		s := NewService(users, accounts)

		users.On("GetByEmail", stored.Email).Return(stored, nil)

		_, _, err := s.Login(stored.Email, "wrong-password")

		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		users := new(MockUserRepo)
		accounts := new(MockAccountRepo)
		s := NewService(users, accounts)

		users.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrUserNotFound)

		_, _, err := s.Login("nobody@example.com", "hunter2!hunter2")

		assert.EqualError(t, err, "invalid credentials")
	})
}
