package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const corsMaxAge = 12 * time.Hour

// CORS allows every origin when origins is empty or "*".
func CORS(origins []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
		conf.AllowCredentials = true
	}
	conf.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	conf.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	conf.ExposeHeaders = []string{"Authorization"}
	conf.MaxAge = corsMaxAge
	return cors.New(conf)
}
