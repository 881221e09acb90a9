package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rdeano/dentacare/config"
	"github.com/rdeano/dentacare/mailer"
	"github.com/rdeano/dentacare/models"
	"github.com/rdeano/dentacare/security"
)

// HealthCheck endpoint
func HealthCheck(c *gin.Context) {
	if err := config.DB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "dentacare-admin-api",
		"timestamp": time.Now().Unix(),
	})
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register creates the user and then the admin profiles row. The two inserts
// are independent statements: if the profile insert fails the user row stays
// behind and the caller only sees a generic error.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		security.SendValidationError(c, "Invalid input data", err.Error())
		return
	}

	var existingID string
	err := config.DB.QueryRow(`SELECT id FROM users WHERE email = $1`, input.Email).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	userID := uuid.NewString()
	_, err = config.DB.Exec(`
		INSERT INTO users (id, email, password_hash, email_verified)
		VALUES ($1, $2, $3, FALSE)
	`, userID, input.Email, string(passHash))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	_, err = config.DB.Exec(`
		INSERT INTO profiles (id, role) VALUES ($1, $2)
	`, userID, models.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	verifyToken := uuid.NewString()
	_, err = config.DB.Exec(`
		INSERT INTO verification_tokens (token, email) VALUES ($1, $2)
	`, verifyToken, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create verification token"})
		return
	}

	if err := mailer.SendVerification(config.App, input.Email, verifyToken); err != nil {
		// Registration still succeeds; the token can be re-sent manually.
		log.Printf("Failed to send verification email to %s: %v", input.Email, err)
		c.Header("X-Warning", "User created but verification email failed")
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id": userID,
		"message": "Account created. Check your email to verify your address before logging in.",
	})
}

// VerifyEmail activates an account from the emailed link and burns the token.
func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
		return
	}

	var email string
	err := config.DB.QueryRow(`SELECT email FROM verification_tokens WHERE token = $1`, token).Scan(&email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is no longer valid"})
		return
	}

	_, err = config.DB.Exec(`UPDATE users SET email_verified = TRUE WHERE email = $1`, email)
	if err != nil {
		security.SendDatabaseError(c, "Failed to verify account")
		return
	}

	if _, err := config.DB.Exec(`DELETE FROM verification_tokens WHERE token = $1`, token); err != nil {
		log.Printf("Failed to delete verification token: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account verified successfully"})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials, email verification, and the admin role, in that
// order, before issuing the token pair.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		security.SendValidationError(c, "Invalid input data", err.Error())
		return
	}

	var user models.User
	err := config.DB.QueryRow(`
		SELECT id, email, password_hash, email_verified
		FROM users WHERE email = $1
	`, input.Email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.EmailVerified)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials, please try again."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials, please try again."})
		return
	}

	if !user.EmailVerified {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please verify your email to complete the login process."})
		return
	}

	src := security.SQLRoleSource{DB: config.DB}
	if err := security.AuthorizeAdmin(c.Request.Context(), src, user.ID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	accessToken, err := security.SignAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	refreshToken, err := security.SignRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	_, err = config.DB.Exec(`
		INSERT INTO refresh_tokens (user_id, token, expires_at) VALUES ($1, $2, $3)
	`, user.ID, refreshToken, expiresAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"role":         models.RoleAdmin,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"tokenType":    "Bearer",
		"expiresIn":    900,
	})
}

type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh rotates the refresh token and issues a fresh pair.
func Refresh(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		security.SendValidationError(c, "Invalid input data", err.Error())
		return
	}

	userID, err := security.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	var tokenID int64
	err = config.DB.QueryRow(`
		SELECT id FROM refresh_tokens
		WHERE user_id = $1 AND token = $2 AND expires_at > CURRENT_TIMESTAMP AND revoked_at IS NULL
	`, userID, input.RefreshToken).Scan(&tokenID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	_, err = config.DB.Exec(`UPDATE refresh_tokens SET revoked_at = CURRENT_TIMESTAMP WHERE id = $1`, tokenID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke old token"})
		return
	}

	newAccessToken, err := security.SignAccessToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
		return
	}

	newRefreshToken, err := security.SignRefreshToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	_, err = config.DB.Exec(`
		INSERT INTO refresh_tokens (user_id, token, expires_at) VALUES ($1, $2, $3)
	`, userID, newRefreshToken, expiresAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           userID,
		"accessToken":  newAccessToken,
		"refreshToken": newRefreshToken,
		"tokenType":    "Bearer",
		"expiresIn":    900,
	})
}

type LogoutInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Logout revokes the refresh token, ending the session.
func Logout(c *gin.Context) {
	var input LogoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := config.DB.Exec(`
		UPDATE refresh_tokens SET revoked_at = CURRENT_TIMESTAMP WHERE token = $1 AND revoked_at IS NULL
	`, input.RefreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check logout status"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetProfile returns the authenticated user's identity and role.
func GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var email, role string
	err := config.DB.QueryRow(`
		SELECT u.email, p.role
		FROM users u
		JOIN profiles p ON p.id = u.id
		WHERE u.id = $1
	`, userID).Scan(&email, &role)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    userID,
		"email": email,
		"role":  role,
	})
}
