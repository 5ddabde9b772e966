package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"pridehub/helper"
	"pridehub/models"
	"pridehub/services"
)

var validate = validator.New()

type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

func (a *AuthController) Signup(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if err := validate.Struct(user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if !helper.ValidateUsername(user.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid username"})
		return
	}
	if !helper.ValidatePassword(user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "password must be 8-15 characters with a digit, a lowercase and an uppercase letter"})
		return
	}

	created, err := a.users.Register(c.Request.Context(), user)
	if err != nil {
		respondErr(c, err)
		return
	}
	created.Password = ""
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "user created, verification mail sent", "data": created})
}

func (a *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	user, err := a.users.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.Hex(),
		"exp": time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", tokenString, 3600*24*30, "/", "", false, true)

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "logged in", "authToken": tokenString, "data": user})
}

func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "logged out"})
}

func (a *AuthController) VerifyEmail(c *gin.Context) {
	user, err := a.users.VerifyEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "email verified", "data": user.Email})
}
