package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pridehub/helper"
	"pridehub/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Profile returns the acting user's own document.
func (u *UserController) Profile(c *gin.Context) {
	user, err := u.users.GetByID(c.Request.Context(), actingUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "user profile fetched successfully", "data": user})
}

func (u *UserController) UpdateProfile(c *gin.Context) {
	var body struct {
		Name            *string `json:"name"`
		Username        *string `json:"username"`
		Bio             *string `json:"bio"`
		ProfileImageURL *string `json:"profileImageURL"`
		CoverImageURL   *string `json:"coverImageURL"`
		Country         *string `json:"country"`
		DOB             *string `json:"dob"`
		IsPrivate       *bool   `json:"isPrivate"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if body.Username != nil && !helper.ValidateUsername(*body.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid username"})
		return
	}

	update := services.ProfileUpdate{
		Name:            body.Name,
		Username:        body.Username,
		Bio:             body.Bio,
		ProfileImageURL: body.ProfileImageURL,
		CoverImageURL:   body.CoverImageURL,
		Country:         body.Country,
		DOB:             body.DOB,
		IsPrivate:       body.IsPrivate,
	}
	user, err := u.users.UpdateProfile(c.Request.Context(), actingUserID(c), update)
	if err != nil {
		respondErr(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "user profile updated successfully", "data": user})
}

// Search finds a user by username and reports whether the acting user
// follows them.
func (u *UserController) Search(c *gin.Context) {
	user, isFollowing, err := u.users.SearchByUsername(c.Request.Context(), actingUserID(c), c.Param("username"))
	if err != nil {
		respondErr(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "user found", "data": user, "isFollowing": isFollowing})
}

func (u *UserController) GetByID(c *gin.Context) {
	id, ok := pathObjectID(c, "user_id")
	if !ok {
		return
	}
	user, err := u.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "user found", "data": user})
}
