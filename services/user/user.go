package user

import (
	"context"
	"regexp"
	"strings"

	userRepo "ticketly/database/repository/user"
	"ticketly/models"
	"ticketly/services/notification"
	"ticketly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// SignupRequest carries the fields required to register an account.
type SignupRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest authenticates by email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyOTPRequest completes a signup or forgot-password OTP challenge.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
	Type  string `json:"type"`
}

// ResetPasswordRequest sets a new password using a reset token.
type ResetPasswordRequest struct {
	ResetToken      string `json:"resetToken"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResult is returned by flows that end in an authenticated session or in
// a follow-up token.
type AuthResult struct {
	Token      string       `json:"token,omitempty"`
	ResetToken string       `json:"resetToken,omitempty"`
	User       *models.User `json:"user,omitempty"`
}

// UserService covers registration, authentication and the OTP flows.
type UserService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthResult, error)
	ResendOTP(ctx context.Context, email, otpType string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	GetProfile(userID string) (*models.User, error)
}

// DefaultUserService implements UserService against the user repository,
// Redis-backed OTPs and the notification sender.
type DefaultUserService struct {
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
}

func validateSignup(req SignupRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.PhoneNumber == "" || req.Password == "" || req.ConfirmPassword == "" {
		return utils.NewValidationError("Please provide all required fields")
	}
	if len(req.Password) < 6 {
		return utils.NewValidationError("Password must be at least 6 characters")
	}
	if req.Password != req.ConfirmPassword {
		return utils.NewValidationError("Passwords do not match")
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return utils.NewValidationError("Phone number must be 10 digits")
	}
	return nil
}

// Signup registers a new account and emails a verification OTP. The account
// stays unverified until the OTP is confirmed.
func (s *DefaultUserService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewValidationError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Bookings:     []string{},
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	if err := s.issueOTP(ctx, email, utils.OTPTypeSignup); err != nil {
		// The account exists; the user can request a fresh OTP.
		utils.GetLogger().Error("failed to issue signup OTP", zap.String("email", email), zap.Error(err))
	}

	return user, nil
}

func (s *DefaultUserService) issueOTP(ctx context.Context, email, otpType string) error {
	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	if err := utils.StoreOTP(ctx, email, otpType, otp); err != nil {
		return err
	}
	return s.Notifier.SendOTPEmail(ctx, email, otp, otpType)
}

// Login authenticates by email and password. Unverified accounts are
// refused with a fresh OTP so the client can resume verification.
func (s *DefaultUserService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, utils.NewValidationError("Please provide all required fields")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewUnauthorizedError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.NewUnauthorizedError("Invalid email or password")
	}

	if !user.IsEmailVerified {
		if err := s.issueOTP(ctx, email, utils.OTPTypeSignup); err != nil {
			utils.GetLogger().Error("failed to reissue signup OTP", zap.String("email", email), zap.Error(err))
		}
		return nil, utils.NewForbiddenError("Email not verified. A new OTP has been sent to your email")
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// VerifyOTP consumes an OTP. For signup it verifies the email and signs the
// user in; for forgotPassword it hands back a short-lived reset token.
func (s *DefaultUserService) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthResult, error) {
	if req.Email == "" || req.OTP == "" || req.Type == "" {
		return nil, utils.NewValidationError("Please provide all required fields")
	}
	if req.Type != utils.OTPTypeSignup && req.Type != utils.OTPTypeForgotPassword {
		return nil, utils.NewValidationError("Invalid OTP type")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewNotFoundError("User not found")
	}

	if err := utils.VerifyOTP(ctx, email, req.Type, req.OTP); err != nil {
		return nil, err
	}

	switch req.Type {
	case utils.OTPTypeSignup:
		if err := s.Users.MarkEmailVerified(email); err != nil {
			return nil, err
		}
		token, err := utils.GenerateToken(user.ID)
		if err != nil {
			return nil, err
		}
		user.IsEmailVerified = true
		return &AuthResult{Token: token, User: user}, nil
	default:
		resetToken, err := utils.GenerateResetToken(email)
		if err != nil {
			return nil, err
		}
		return &AuthResult{ResetToken: resetToken}, nil
	}
}

// ResendOTP issues a fresh OTP, replacing any outstanding one.
func (s *DefaultUserService) ResendOTP(ctx context.Context, email, otpType string) error {
	if email == "" {
		return utils.NewValidationError("Please provide all required fields")
	}
	if otpType != utils.OTPTypeSignup && otpType != utils.OTPTypeForgotPassword {
		return utils.NewValidationError("Invalid OTP type")
	}
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.NewNotFoundError("User not found")
	}
	return s.issueOTP(ctx, email, otpType)
}

// ForgotPassword starts the reset flow by emailing an OTP. An unknown email
// gets the same response as a known one so addresses cannot be probed.
func (s *DefaultUserService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return utils.NewValidationError("Please provide all required fields")
	}
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	if err := s.issueOTP(ctx, email, utils.OTPTypeForgotPassword); err != nil {
		utils.GetLogger().Error("failed to issue reset OTP", zap.String("email", email), zap.Error(err))
	}
	return nil
}

// ResetPassword sets a new password using the reset token handed out by
// VerifyOTP.
func (s *DefaultUserService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if req.ResetToken == "" || req.Password == "" || req.ConfirmPassword == "" {
		return utils.NewValidationError("Please provide all required fields")
	}
	if len(req.Password) < 6 {
		return utils.NewValidationError("Password must be at least 6 characters")
	}
	if req.Password != req.ConfirmPassword {
		return utils.NewValidationError("Passwords do not match")
	}

	email, err := utils.ExtractEmailFromResetToken(req.ResetToken)
	if err != nil {
		return utils.NewUnauthorizedError("Invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(email, string(hash))
}

// GetProfile fetches the caller's account.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewNotFoundError("User not found")
	}
	return user, nil
}
