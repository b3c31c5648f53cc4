package handlers

import (
	"net/http"
	"strings"
	"time"

	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"
	"quicktransit/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser is the public user payload returned on login/register.
type AuthUser struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Role     models.Role `json:"role"`
	Status   string      `json:"status"`
}

func publicUser(u models.User) AuthUser {
	return AuthUser{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
		Status:   u.Status,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := repositories.UserRepo{}.GetByLogin(strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email/username or password"})
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email/username or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	dashboard := "customer-dashboard"
	if user.Role.IsStaff() {
		dashboard = "admin-dashboard"
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     tokenString,
		"user":      publicUser(user),
		"dashboard": dashboard,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
//
// Self-registration always creates a CUSTOMER; staff accounts are
// provisioned out of band.
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "username, email and password are required", nil)
		return
	}

	repo := repositories.UserRepo{}
	exists, err := repo.Exists(req.Email, req.Username)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check user", err)
		return
	}
	if exists {
		RespondError(c, http.StatusBadRequest, "email or username already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
		Status:       "active",
	}
	id, err := repo.Create(user)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}
	user.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful, please log in",
		"user":    publicUser(user),
	})
}
