package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Service banner
// @Tags meta
// @Produce plain
// @Success 200 {string} string "mfg_ledger"
// @Router /example/helloworld [get]
func GetHome(c *gin.Context) {
	c.String(http.StatusOK, "mfg_ledger")
}
