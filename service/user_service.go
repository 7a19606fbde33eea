package service

import (
	"context"
	"fmt"
	"log"
	"regexp"

	"collab-api/models"

	"golang.org/x/crypto/bcrypt"
)

// Mailer sends account emails. A nil Mailer disables them.
type Mailer interface {
	Send(to, subject, body string) error
}

type UserService struct {
	users  UserStore
	mailer Mailer
	logger *log.Logger
}

func NewUserService(users UserStore, mailer Mailer, logger *log.Logger) *UserService {
	return &UserService{users: users, mailer: mailer, logger: logger}
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isPasswordValid(password string) bool {
	if len(password) < 8 {
		return false
	}

	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)

	return hasUpper && hasLower && hasNumber
}

func (s *UserService) Register(ctx context.Context, firstName, surname, telephone, email, password string) (models.User, error) {
	if firstName == "" || surname == "" || telephone == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: all fields (firstName, surname, telephone, email, password) are required", ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return models.User{}, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if !isPasswordValid(password) {
		return models.User{}, fmt.Errorf("%w: password must be at least 8 characters long and contain an uppercase letter, a lowercase letter and a number", ErrValidation)
	}

	_, exists, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, fmt.Errorf("%w: user already exists", ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.NewUser(firstName, surname, telephone, email, string(hashedPassword))
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	created, _, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if s.mailer != nil {
		subject := "Welcome"
		body := fmt.Sprintf("Hi %s, your account has been created.", firstName)
		if err := s.mailer.Send(email, subject, body); err != nil {
			s.logger.Println("Error sending welcome email:", err)
		}
	}

	return created, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, found, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if !user.IsActive {
		return models.User{}, fmt.Errorf("%w: user account is inactive", ErrForbidden)
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	user, found, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) UpdateSettings(ctx context.Context, actorID, targetID, firstName, surname, telephone string) (models.User, error) {
	if actorID != targetID {
		return models.User{}, fmt.Errorf("%w: settings can only be changed by the account owner", ErrForbidden)
	}

	user, found, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	if firstName == "" {
		firstName = user.FirstName
	}
	if surname == "" {
		surname = user.Surname
	}
	if telephone == "" {
		telephone = user.Telephone
	}

	if err := s.users.UpdateSettings(ctx, targetID, firstName, surname, telephone); err != nil {
		return models.User{}, err
	}

	return s.Get(ctx, targetID)
}
