package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quicktransit/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, userID int64, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return s
}

func gateRouter(allowed ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AuthRequired(testSecret), RequireRoles(allowed...), func(c *gin.Context) {
		id, _ := UserID(c)
		role, _ := UserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": role})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	r := gateRouter(models.RoleCustomer)
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
}

func TestAuthRequiredBadToken(t *testing.T) {
	r := gateRouter(models.RoleCustomer)
	assert.Equal(t, http.StatusUnauthorized, get(r, "not-a-token").Code)
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": int64(1), "role": "CUSTOMER", "exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	r := gateRouter(models.RoleCustomer)
	assert.Equal(t, http.StatusUnauthorized, get(r, s).Code)
}

func TestAuthRequiredRejectsUnknownRole(t *testing.T) {
	// Roles outside the closed set never reach a handler, even with a
	// valid signature.
	r := gateRouter(models.RoleCustomer)
	assert.Equal(t, http.StatusUnauthorized, get(r, signToken(t, 1, "MANAGER")).Code)
}

func TestRequireRolesAllowsMatch(t *testing.T) {
	r := gateRouter(models.RoleCustomer)
	w := get(r, signToken(t, 42, "CUSTOMER"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestRequireRolesForbidsOthers(t *testing.T) {
	admin := gateRouter(models.RoleAdmin, models.RoleSuperuser)
	assert.Equal(t, http.StatusForbidden, get(admin, signToken(t, 1, "CUSTOMER")).Code)

	customer := gateRouter(models.RoleCustomer)
	assert.Equal(t, http.StatusForbidden, get(customer, signToken(t, 1, "ADMIN")).Code)
	assert.Equal(t, http.StatusForbidden, get(customer, signToken(t, 1, "SUPERUSER")).Code)
}
