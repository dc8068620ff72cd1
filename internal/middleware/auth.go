package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextStaffID   = "staffID"
	ContextStaffRole = "staffRole"
)

// StaffClaims is the JWT payload of a signed-in staff member. Subject holds
// the staff id in decimal.
type StaffClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for staffID valid for ttl from now.
func IssueToken(secret string, staffID uint, role string, now time.Time, ttl time.Duration) (string, error) {
	claims := StaffClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(staffID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func unauthorized(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": code})
}

func AuthMiddleware(secret string) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		scheme, raw, found := strings.Cut(c.GetHeader("Authorization"), " ")
		switch {
		case scheme == "":
			unauthorized(c, "missing_authorization_header")
			return
		case !found || !strings.EqualFold(scheme, "Bearer"):
			unauthorized(c, "invalid_authorization_header")
			return
		}

		var claims StaffClaims
		_, err := parser.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil {
			unauthorized(c, "invalid_token")
			return
		}

		staffID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil || staffID == 0 {
			unauthorized(c, "invalid_token_payload")
			return
		}

		c.Set(ContextStaffID, uint(staffID))
		c.Set(ContextStaffRole, claims.Role)

		c.Next()
	}
}

// StaffID returns the authenticated staff id, or nil on public routes.
func StaffID(c *gin.Context) *uint {
	id, ok := c.Value(ContextStaffID).(uint)
	if !ok {
		return nil
	}
	return &id
}
