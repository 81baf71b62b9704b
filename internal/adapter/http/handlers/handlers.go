package handlers

import (
	"net/http"

	"comercial_xpto/internal/adapter/http/middleware"
	"comercial_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingTenant = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing tenant identity", http.StatusUnauthorized)

// tenantID resolves the authenticated tenant placed in the context by the
// auth middleware. A missing id aborts the request.
func tenantID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextUserID)
	if id == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return "", false
	}
	return id, true
}
