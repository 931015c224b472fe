package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// ErrorHandler turns a panic in any handler into a 500 envelope
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(map[string]interface{}{
			"panic": fmt.Sprint(recovered),
			"path":  c.Request.URL.Path,
		}).Error("Recovered from panic")
		utils.InternalServerErrorResponse(c, "Có lỗi xảy ra, vui lòng thử lại sau", nil)
		c.Abort()
	})
}

// NoRouteHandler answers unknown paths
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Route not found", fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path))
	}
}

// NoMethodHandler answers known paths called with the wrong method
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	}
}
