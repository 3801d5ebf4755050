package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/dilbilim/internal/common"
	"github.com/dmitrijs2005/dilbilim/internal/server/models"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type languageRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// POST /register
func (s *HTTPServer) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.MessageInvalidBody})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.users.Register(ctx, req.Email, req.Password); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": common.MessageEmailTaken})
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": common.MessageRegistered})
}

// POST /login
func (s *HTTPServer) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.MessageInvalidBody})
		return
	}

	user, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": common.MessageInvalidCredentials})
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  common.MessageLoggedIn,
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
	})
}

// GET /languages
func (s *HTTPServer) GetLanguages(c *gin.Context) {
	langs, err := s.languages.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}
	if langs == nil {
		langs = []*models.Language{}
	}

	c.JSON(http.StatusOK, langs)
}

// POST /add_language
func (s *HTTPServer) AddLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.MessageInvalidBody})
		return
	}

	if _, err := s.languages.Add(c.Request.Context(), req.Name, req.Code); err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": common.MessageLanguageAdded})
}

// GET /ping
func (s *HTTPServer) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) internalError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), err.Error(), "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusInternalServerError, gin.H{"error": common.MessageInternal})
}
