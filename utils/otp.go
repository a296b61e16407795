package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// OTP types mirror the flows that need one.
const (
	OTPTypeSignup         = "signup"
	OTPTypeForgotPassword = "forgotPassword"
)

const otpTTL = 10 * time.Minute

// GenerateOTP produces a 6-digit numeric code using crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func otpKey(email, otpType string) string {
	return fmt.Sprintf("otp:%s:%s", otpType, email)
}

// StoreOTP caches the OTP in Redis with a 10-minute TTL. Issuing a new OTP
// for the same email and type replaces the previous one.
func StoreOTP(ctx context.Context, email, otpType, otp string) error {
	client := GetOTPCacheClient()
	if err := client.Set(ctx, otpKey(email, otpType), otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to store OTP")
	}
	return nil
}

// VerifyOTP compares the provided OTP against the stored one and consumes it
// on success so a code can never be used twice.
func VerifyOTP(ctx context.Context, email, otpType, providedOTP string) error {
	client := GetOTPCacheClient()
	key := otpKey(email, otpType)

	storedOTP, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return NewValidationError("Invalid or expired OTP")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return NewValidationError("Invalid or expired OTP")
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}
