package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillsync-backend/internal/shared/server/middleware"
	"skillsync-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)
	if email == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	response := gin.H{
		"email": email,
	}
	if name := middleware.UserNameFromContext(c); name != "" {
		response["name"] = name
	}
	if role := middleware.UserRoleFromContext(c); role != "" {
		response["role"] = role
	}
	if picture := middleware.UserPictureFromContext(c); picture != "" {
		response["picture"] = picture
	}

	respond.JSON(c, http.StatusOK, response)
}
