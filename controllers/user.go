package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kevinlim605/TechShop/apperr"
	"github.com/kevinlim605/TechShop/middleware"
	"github.com/kevinlim605/TechShop/models"
	"github.com/kevinlim605/TechShop/utils"
)

// findUserByEmail and createUser are seams so the register path can be
// tested without a live database.
var (
	findUserByEmail = models.FindUserByEmail
	createUser      = models.CreateUser
)

type authResponse struct {
	ID      primitive.ObjectID `json:"_id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	IsAdmin bool               `json:"isAdmin"`
	Token   string             `json:"token"`
}

type profileResponse struct {
	ID      primitive.ObjectID `json:"_id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	IsAdmin bool               `json:"isAdmin"`
}

func newAuthResponse(user models.User) (authResponse, error) {
	token, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		return authResponse{}, apperr.Wrap(apperr.Internal, "Failed to generate token", err)
	}
	return authResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}, nil
}

// AuthUser handles POST /api/users/login.
func AuthUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Validation, "Invalid input", err))
		return
	}

	user, err := findUserByEmail(input.Email)
	if err != nil || !user.MatchPassword(input.Password) {
		apperr.Write(c, apperr.New(apperr.Auth, "Invalid Email or Password"))
		return
	}

	body, err := newAuthResponse(user)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// RegisterUser handles POST /api/users.
func RegisterUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Validation, "Invalid input", err))
		return
	}

	// only a no-document miss clears the email for registration; any
	// other lookup failure must not fall through to a create
	_, err := findUserByEmail(input.Email)
	switch {
	case err == nil:
		apperr.Write(c, apperr.New(apperr.Validation, "User already exists"))
		return
	case !errors.Is(err, mongo.ErrNoDocuments):
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to register user", err))
		return
	}

	hashed, err := models.HashPassword(input.Password)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to register user", err))
		return
	}

	user, err := createUser(models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
	})
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to register user", err))
		return
	}

	body, err := newAuthResponse(user)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusCreated, body)
}

// GetUserProfile handles GET /api/users/profile.
func GetUserProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, profileResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
}

// UpdateUserProfile handles PUT /api/users/profile. Only fields present
// in the body are applied.
func UpdateUserProfile(c *gin.Context) {
	current, _ := middleware.CurrentUser(c)

	var patch struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&patch); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Validation, "Invalid input", err))
		return
	}

	user, err := models.FindUserByID(current.ID)
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "User Not Found"))
		return
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hashed, err := models.HashPassword(*patch.Password)
		if err != nil {
			apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to update profile", err))
			return
		}
		user.Password = hashed
	}

	updated, err := models.SaveUser(user)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to update profile", err))
		return
	}

	body, err := newAuthResponse(updated)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// GetUsers handles GET /api/users (admin).
func GetUsers(c *gin.Context) {
	users, err := models.ListUsers()
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to fetch users", err))
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID handles GET /api/users/:id (admin).
func GetUserByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "User Not Found"))
		return
	}

	user, err := models.FindUserByID(id)
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "User Not Found"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/:id (admin).
func UpdateUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "User Not Found"))
		return
	}

	var patch struct {
		Name    *string `json:"name"`
		Email   *string `json:"email"`
		IsAdmin *bool   `json:"isAdmin"`
	}
	if err := c.ShouldBindJSON(&patch); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Validation, "Invalid input", err))
		return
	}

	user, err := models.FindUserByID(id)
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "User Not Found"))
		return
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.IsAdmin != nil {
		user.IsAdmin = *patch.IsAdmin
	}

	updated, err := models.SaveUser(user)
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to update user", err))
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		ID:      updated.ID,
		Name:    updated.Name,
		Email:   updated.Email,
		IsAdmin: updated.IsAdmin,
	})
}

// DeleteUser handles DELETE /api/users/:id (admin).
func DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		apperr.Write(c, apperr.New(apperr.NotFound, "User Not Found"))
		return
	}

	count, err := models.DeleteUser(id)
	if err != nil && err != mongo.ErrNoDocuments {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to remove user", err))
		return
	}
	if count == 0 {
		apperr.Write(c, apperr.New(apperr.NotFound, "User Not Found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User Removed"})
}
