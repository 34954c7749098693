package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kevinlim605/TechShop/models"
	"github.com/kevinlim605/TechShop/utils"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Protect(), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID.Hex()})
	})
	r.GET("/admin", Protect(), Admin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	message, _ := payload["message"].(string)
	return message
}

func TestProtectWithoutToken(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not Authorized, No Token", errorMessage(t, w.Body.Bytes()))
}

func TestProtectWithBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer not.a.real.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not Authorized, Token Failed", errorMessage(t, w.Body.Bytes()))
}

func TestProtectResolvesUserFromToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	id := primitive.NewObjectID()
	original := lookupUser
	lookupUser = func(lookup primitive.ObjectID) (models.User, error) {
		require.Equal(t, id, lookup)
		return models.User{ID: lookup, Name: "John", Password: "hash"}, nil
	}
	defer func() { lookupUser = original }()

	token, err := utils.GenerateToken(id.Hex())
	require.NoError(t, err)

	r := protectedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, id.Hex(), payload["id"])
}

func TestAdminRejectsNonAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	id := primitive.NewObjectID()
	original := lookupUser
	lookupUser = func(lookup primitive.ObjectID) (models.User, error) {
		return models.User{ID: lookup, Name: "John", IsAdmin: false}, nil
	}
	defer func() { lookupUser = original }()

	token, err := utils.GenerateToken(id.Hex())
	require.NoError(t, err)

	r := protectedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not Authorized As An Admin", errorMessage(t, w.Body.Bytes()))
}

func TestAdminRejectsMissingToken(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
