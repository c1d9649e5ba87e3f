package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// home godoc
// @Summary Service banner
// @Tags home
// @Produce plain
// @Success 200 {string} string "contasys-backend"
// @Router / [get]
func home(c *gin.Context) {
	c.String(http.StatusOK, "contasys-backend")
}
