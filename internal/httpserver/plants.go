package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogsvc "plantstore/internal/service/catalog"
)

func listPlantsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.Query("page"))
		pageSize, _ := strconv.Atoi(c.Query("page_size"))
		result, err := svc.Browse(c.Request.Context(), catalogsvc.BrowseInput{
			Search:       c.Query("search"),
			Type:         c.Query("type"),
			PriceRange:   c.Query("price_range"),
			Availability: c.Query("availability"),
			Page:         page,
			PageSize:     pageSize,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func getPlantHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
