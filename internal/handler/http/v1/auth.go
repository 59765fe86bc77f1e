package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/auth"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const requesterContextKey = "requester"

// bearerCredential извлекает учетные данные из заголовка Authorization
func bearerCredential(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// RequireRequesterMiddleware - middleware для запросов на мутацию.
// Личность разрешается внешним коллаборатором, без нее запрос отклоняется.
func RequireRequesterMiddleware(resolver auth.Resolver, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := bearerCredential(c)
		if credential == "" {
			log.Warn("Credential missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Kind:  string(apperrors.KindUnauthenticated),
				Error: "credential required",
			})
			return
		}

		requester, err := resolver.Resolve(c.Request.Context(), credential)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindUnauthenticated) {
				log.Warn("Invalid credential provided")
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
					Kind:  string(apperrors.KindUnauthenticated),
					Error: "identity could not be resolved",
				})
				return
			}
			log.WithError(err).Error("Failed to resolve requester")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{
				Kind:  string(apperrors.KindStorageUnavailable),
				Error: "auth service unavailable",
			})
			return
		}

		c.Set(requesterContextKey, *requester)
		c.Next()
	}
}

// OptionalRequesterMiddleware - middleware для публичных маршрутов.
// Личность разрешается, если учетные данные присланы; сбой не
// прерывает запрос, выдача остается анонимной.
func OptionalRequesterMiddleware(resolver auth.Resolver, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := bearerCredential(c)
		if credential != "" {
			requester, err := resolver.Resolve(c.Request.Context(), credential)
			if err != nil {
				log.WithError(err).Debug("Optional requester resolution failed")
			} else {
				c.Set(requesterContextKey, *requester)
			}
		}
		c.Next()
	}
}

// requesterFromContext возвращает разрешенную личность запроса
func requesterFromContext(c *gin.Context) (models.Requester, bool) {
	value, exists := c.Get(requesterContextKey)
	if !exists {
		return models.Requester{}, false
	}
	requester, ok := value.(models.Requester)
	return requester, ok
}

// seekerID возвращает идентификатор искавшего для журнала статистики:
// аккаунт, если личность известна, иначе адрес клиента
func seekerID(c *gin.Context) string {
	if requester, ok := requesterFromContext(c); ok {
		return requester.AccountID.String()
	}
	return c.ClientIP()
}
