package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kevinlim605/TechShop/models"
)

func registerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/users", RegisterUser)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func responseMessage(t *testing.T, body []byte) string {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	message, _ := payload["message"].(string)
	return message
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	originalFind, originalCreate := findUserByEmail, createUser
	defer func() { findUserByEmail, createUser = originalFind, originalCreate }()

	findUserByEmail = func(email string) (models.User, error) {
		require.Equal(t, "john@example.com", email)
		return models.User{ID: primitive.NewObjectID(), Email: email}, nil
	}
	created := false
	createUser = func(user models.User) (models.User, error) {
		created = true
		return user, nil
	}

	w := postJSON(registerRouter(), "/api/users",
		`{"name":"John","email":"john@example.com","password":"123456"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", responseMessage(t, w.Body.Bytes()))
	assert.False(t, created)
}

func TestRegisterFailsWhenLookupErrors(t *testing.T) {
	originalFind, originalCreate := findUserByEmail, createUser
	defer func() { findUserByEmail, createUser = originalFind, originalCreate }()

	findUserByEmail = func(email string) (models.User, error) {
		return models.User{}, errors.New("connection reset by peer")
	}
	created := false
	createUser = func(user models.User) (models.User, error) {
		created = true
		return user, nil
	}

	w := postJSON(registerRouter(), "/api/users",
		`{"name":"John","email":"john@example.com","password":"123456"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, created)
}

func TestRegisterCreatesUserWhenEmailIsFree(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	originalFind, originalCreate := findUserByEmail, createUser
	defer func() { findUserByEmail, createUser = originalFind, originalCreate }()

	findUserByEmail = func(email string) (models.User, error) {
		return models.User{}, mongo.ErrNoDocuments
	}
	var stored models.User
	createUser = func(user models.User) (models.User, error) {
		user.ID = primitive.NewObjectID()
		stored = user
		return user, nil
	}

	w := postJSON(registerRouter(), "/api/users",
		`{"name":"John","email":"john@example.com","password":"123456"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, stored.ID.Hex(), payload["_id"])
	assert.Equal(t, "John", payload["name"])
	assert.Equal(t, "john@example.com", payload["email"])
	assert.Equal(t, false, payload["isAdmin"])
	assert.NotEmpty(t, payload["token"])

	// password reaches storage hashed, never as plaintext
	assert.NotEqual(t, "123456", stored.Password)
	assert.True(t, stored.MatchPassword("123456"))
}
