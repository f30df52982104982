package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

const corsMaxAgeSeconds = 600

// CORSMiddleware allows credentialed requests from the listed origins with any
// method and header. Preflights from allowed origins are answered with 204;
// anything else continues down the chain untouched.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins = append(origins, strings.TrimRight(o, "/"))
	}

	policy := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:     []string{"*"},
		AllowCredentials:   true,
		MaxAge:             corsMaxAgeSeconds,
		OptionsPassthrough: true,
	})
	// With passthrough on, the policy only writes headers; gin owns the status.
	apply := policy.Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	return func(c *gin.Context) {
		apply.ServeHTTP(c.Writer, c.Request)

		if isPreflight(c.Request) && c.Writer.Header().Get("Access-Control-Allow-Origin") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
