package rest

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"amado/internal/domain"
)

const (
	authorizationHeader = "Authorization"
	userIDCtx           = "user_id"
	userTypeCtx         = "user_type"
	tokenCtx            = "token"
)

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		logger := h.logger.With(
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", ip),
		)

		if status >= 500 {
			logger.Error("erro do servidor")
		} else if status >= 400 {
			logger.Warn("erro do cliente")
		} else {
			logger.Info("requisição processada")
		}
	}
}

func (h *Handler) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			for _, err := range c.Errors {
				h.logger.Error("erro na requisição", zap.Error(err))
			}
		}
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "Accept", "Origin", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length", "Content-Type"},
		MaxAge:          24 * time.Hour,
	})
}

// rateLimiterStore guarda um limitador por IP de origem.
type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newRateLimiterStore(requestsPerMinute, burst int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

func (h *Handler) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !h.limiters.getLimiter(ip).Allow() {
			h.logger.Warn("limite de requisições excedido", zap.String("ip", ip))
			errorResponse(c, http.StatusTooManyRequests, "muitas requisições, tente novamente em instantes")
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader(authorizationHeader)
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			errorResponse(c, http.StatusUnauthorized, "cabeçalho de autorização ausente")
			return
		}

		token := bearerToken(c)
		if token == "" {
			errorResponse(c, http.StatusUnauthorized, "formato do cabeçalho de autorização inválido")
			return
		}

		userID, userType, err := h.services.Auth.ParseToken(token)
		if err != nil {
			errorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(userIDCtx, userID)
		c.Set(userTypeCtx, userType)
		c.Set(tokenCtx, token)

		c.Next()
	}
}

func (h *Handler) adminMiddleware() gin.HandlerFunc {
	return h.requireType(domain.UserTypeAdmin, "acesso restrito à administração")
}

func (h *Handler) attendantMiddleware() gin.HandlerFunc {
	return h.requireType(domain.UserTypeAttendant, "acesso restrito a atendentes")
}

func (h *Handler) clientMiddleware() gin.HandlerFunc {
	return h.requireType(domain.UserTypeClient, "acesso restrito a clientes")
}

func (h *Handler) requireType(want domain.UserType, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get(userTypeCtx)
		if !exists {
			unauthorizedResponse(c)
			return
		}

		got, ok := userType.(domain.UserType)
		if !ok || got != want {
			forbiddenResponse(c, message)
			return
		}

		c.Next()
	}
}

func getUserID(c *gin.Context) (int64, error) {
	userID, exists := c.Get(userIDCtx)
	if !exists {
		return 0, errors.New("usuário não autenticado")
	}

	id, ok := userID.(int64)
	if !ok {
		return 0, errors.New("identificador de usuário inválido")
	}

	return id, nil
}

func getUserType(c *gin.Context) (domain.UserType, error) {
	userType, exists := c.Get(userTypeCtx)
	if !exists {
		return "", errors.New("usuário não autenticado")
	}

	t, ok := userType.(domain.UserType)
	if !ok {
		return "", errors.New("tipo de usuário inválido")
	}

	return t, nil
}
