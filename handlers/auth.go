package handlers

import (
	"net/http"

	userSvc "ticketly/services/user"
	"ticketly/utils"

	"github.com/gin-gonic/gin"
)

// Signup registers a new account and triggers the verification OTP email.
func Signup(c *gin.Context) {
	var req userSvc.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	user, err := UserService.Signup(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Signup successful. Please verify your email with the OTP sent",
		"user":    user,
	})
}

// Login authenticates and returns a JWT.
func Login(c *gin.Context) {
	var req userSvc.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	result, err := UserService.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// VerifyOTP completes a signup or forgot-password OTP challenge.
func VerifyOTP(c *gin.Context) {
	var req userSvc.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	result, err := UserService.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	resp := gin.H{"success": true, "message": "OTP verified"}
	if result.Token != "" {
		resp["token"] = result.Token
		resp["user"] = result.User
	}
	if result.ResetToken != "" {
		resp["resetToken"] = result.ResetToken
	}
	c.JSON(http.StatusOK, resp)
}

// ResendOTP issues a fresh OTP for signup or password reset.
func ResendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Type  string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	if err := UserService.ResendOTP(c.Request.Context(), req.Email, req.Type); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent"})
}

// ForgotPassword starts the password reset flow.
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	if err := UserService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If the email is registered, an OTP has been sent",
	})
}

// ResetPassword sets a new password using the reset token from VerifyOTP.
func ResetPassword(c *gin.Context) {
	var req userSvc.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body"))
		return
	}

	if err := UserService.ResetPassword(c.Request.Context(), req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful"})
}

// GetProfile returns the authenticated user's account.
func GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := UserService.GetProfile(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
