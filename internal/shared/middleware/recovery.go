package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"nirvana-admin-backend/internal/shared/response"
)

const panicErrorCode = "GATEWAY_PANIC"

// Recovery converts a panic into a 500 envelope instead of dropping the
// connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("error", err).
					Msg("panic recovered")

				response.ErrorResponse(c, http.StatusInternalServerError, panicErrorCode, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
