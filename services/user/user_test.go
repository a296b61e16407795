package user

import (
	"context"
	"errors"
	"testing"

	"ticketly/config"
	"ticketly/models"
	"ticketly/services/notification"
	"ticketly/utils"

	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) { return r.users[id], nil }

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) MarkEmailVerified(email string) error {
	for _, u := range r.users {
		if u.Email == email {
			u.IsEmailVerified = true
		}
	}
	return nil
}

func (r *memUserRepo) UpdatePassword(email, hash string) error {
	for _, u := range r.users {
		if u.Email == email {
			u.PasswordHash = hash
			return nil
		}
	}
	return errors.New("user not found")
}

func (r *memUserRepo) AppendBooking(userID, bookingDocID string) error { return nil }

func verifiedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return &models.User{
		ID:              "u1",
		FirstName:       "Asha",
		LastName:        "Rao",
		Email:           "asha@example.com",
		PasswordHash:    string(hash),
		IsEmailVerified: true,
	}
}

func assertMessage(t *testing.T, err error, want string) {
	t.Helper()
	var apiErr *utils.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != want {
		t.Fatalf("expected %q, got %q", want, apiErr.Message)
	}
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name string
		req  SignupRequest
		want string
	}{
		{
			"missing fields",
			SignupRequest{FirstName: "Asha"},
			"Please provide all required fields",
		},
		{
			"short password",
			SignupRequest{FirstName: "Asha", LastName: "Rao", Email: "a@b.com", PhoneNumber: "9876543210", Password: "abc", ConfirmPassword: "abc"},
			"Password must be at least 6 characters",
		},
		{
			"password mismatch",
			SignupRequest{FirstName: "Asha", LastName: "Rao", Email: "a@b.com", PhoneNumber: "9876543210", Password: "secret1", ConfirmPassword: "secret2"},
			"Passwords do not match",
		},
		{
			"bad phone",
			SignupRequest{FirstName: "Asha", LastName: "Rao", Email: "a@b.com", PhoneNumber: "12345", Password: "secret1", ConfirmPassword: "secret1"},
			"Phone number must be 10 digits",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateSignup(tt.req); err == nil {
				t.Fatal("expected validation error")
			} else {
				assertMessage(t, err, tt.want)
			}
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.JWTExpireHours = 1

	svc := &DefaultUserService{
		Users:    newMemUserRepo(verifiedUser(t, "secret1")),
		Notifier: &notification.LogNotificationService{},
	}

	result, err := svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a session token")
	}
	if result.User == nil || result.User.ID != "u1" {
		t.Errorf("unexpected user in result: %+v", result.User)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := &DefaultUserService{
		Users:    newMemUserRepo(verifiedUser(t, "secret1")),
		Notifier: &notification.LogNotificationService{},
	}

	_, err := svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assertMessage(t, err, "Invalid email or password")
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := &DefaultUserService{
		Users:    newMemUserRepo(),
		Notifier: &notification.LogNotificationService{},
	}

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	assertMessage(t, err, "Invalid email or password")
}

func TestResetPasswordWithValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	repo := newMemUserRepo(verifiedUser(t, "oldpass"))
	svc := &DefaultUserService{Users: repo, Notifier: &notification.LogNotificationService{}}

	token, err := utils.GenerateResetToken("asha@example.com")
	if err != nil {
		t.Fatalf("reset token generation failed: %v", err)
	}

	err = svc.ResetPassword(context.Background(), ResetPasswordRequest{
		ResetToken: token, Password: "newpass1", ConfirmPassword: "newpass1",
	})
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	u, _ := repo.GetByEmail("asha@example.com")
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpass1")) != nil {
		t.Error("password was not updated")
	}
}

func TestResetPasswordRejectsBadToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	svc := &DefaultUserService{Users: newMemUserRepo(), Notifier: &notification.LogNotificationService{}}
	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		ResetToken: "garbage", Password: "newpass1", ConfirmPassword: "newpass1",
	})
	assertMessage(t, err, "Invalid or expired reset token")
}
