package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(t *testing.T, domainOK bool) *gin.Engine {
	t.Helper()

	h := NewAuthHandler(dbtest.Open(t), &config.Config{JWTSecret: "test-secret"})
	h.emailDomainOK = func(context.Context, string) bool { return domainOK }

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	r := newAuthRouter(t, true)

	rec := postJSON(r, "/register", gin.H{
		"name":     "Owner",
		"email":    " Owner@Salon.Test ",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		Staff struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"staff"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "owner@salon.test", out.Staff.Email)
	assert.NotContains(t, rec.Body.String(), "password")

	var claims middleware.StaffClaims
	_, err := jwt.ParseWithClaims(out.Token, &claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(uint64(out.Staff.ID), 10), claims.Subject)
	assert.Equal(t, "manager", claims.Role)

	rec = postJSON(r, "/register", gin.H{
		"name":     "Other",
		"email":    "owner@salon.test",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = postJSON(r, "/login", gin.H{"email": " OWNER@salon.test", "password": "secret123"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(r, "/login", gin.H{"email": "owner@salon.test", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(r, "/login", gin.H{"email": "nobody@salon.test", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_RegisterRejectsBadInput(t *testing.T) {
	r := newAuthRouter(t, false)

	rec := postJSON(r, "/register", gin.H{"name": "Owner", "email": "owner@nowhere.invalid", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_email_domain")

	rec = postJSON(r, "/register", gin.H{"name": "Owner", "email": "  not-an-email ", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_email")

	rec = postJSON(r, "/register", gin.H{"name": "Owner", "email": "owner@salon.test", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_format")
}
