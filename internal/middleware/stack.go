package middleware

import (
	"net/http"

	"candyshop-be/internal/logger"
)

// Stack composes the standard middleware chain. Auth must run before the
// rate limiter so authenticated requests are bucketed per user instead of
// sharing their source IP's quota.
func Stack(next http.Handler) http.Handler {
	return logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			CORSMiddleware(
				AuthMiddleware(
					RateLimitMiddleware(next)))))
}
