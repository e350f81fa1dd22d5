package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/opensourcebim/bcf-server/internal/discovery"
)

// DiscoveryRoutes sets up the public BCF discovery endpoints
func DiscoveryRoutes(r *gin.RouterGroup, svc *discovery.Service) {
	bcf := r.Group("/bcf")
	{
		bcf.GET("/versions", getVersions(svc))
		bcf.GET("/:version/auth", getAuth(svc))
	}
}

// getVersions lists the BCF API versions supported by the server
//
//	@Summary		List supported BCF API versions
//	@Description	Returns a list of all supported BCF API versions of the server.
//	@Tags			Public Services
//	@Produce		json
//	@Success		200	{object}	types.VersionsResponse
//	@Router			/bcf/versions [get]
func getVersions(svc *discovery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Versions())
	}
}

// getAuth returns the authentication capabilities advertised by the server
//
//	@Summary		Get authentication capabilities
//	@Description	Returns which authentication mechanisms the server supports. Absent fields mean the capability is unavailable.
//	@Tags			Public Services
//	@Produce		json
//	@Param			version	path		string	true	"BCF API version"
//	@Success		200		{object}	types.AuthCapabilities
//	@Router			/bcf/{version}/auth [get]
func getAuth(svc *discovery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The version segment is matched but not used for the lookup: the
		// same capability record is advertised for every API version.
		log.Debug().Str("version", c.Param("version")).Msg("auth capabilities requested")

		c.JSON(http.StatusOK, svc.AuthCapabilities())
	}
}
