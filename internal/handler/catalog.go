package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myebiez/daur-cuan-app/internal/catalog"
)

type CatalogHandler struct{}

func (h *CatalogHandler) Locations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": catalog.Locations()})
}

func (h *CatalogHandler) RedeemOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": catalog.RedeemOptions()})
}
