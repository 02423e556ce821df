// auth.go - Handles login and token issuance

package handlers

import (
	"net/http"
	"time"

	"inventory-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const tokenTTL = 72 * time.Hour

type AuthHandler struct {
	store  *store.Store
	secret string
	log    *logrus.Logger
}

func NewAuthHandler(s *store.Store, secret string, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{store: s, secret: secret, log: log}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns a signed token plus the user
// record (without its hash). Unknown email and wrong password produce
// the same 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("login")
	c.JSON(http.StatusOK, gin.H{"token": signed, "user": user})
}
