package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"plantstore/internal/domain"
	inventorysvc "plantstore/internal/service/inventory"
)

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func listNurseryOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListForNursery(c.Request.Context(), currentProfile(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func updateOrderStatusHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), currentProfile(c).ID, c.Param("id"), domain.OrderStatus(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func listNurseryPlantsHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.Query("page"))
		pageSize, _ := strconv.Atoi(c.Query("page_size"))
		plants, total, err := svc.List(c.Request.Context(), currentProfile(c).ID, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"plants": plants, "total": total})
	}
}

func createPlantHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inventorysvc.PlantInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		p, err := svc.Create(c.Request.Context(), currentProfile(c).ID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updatePlantHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inventorysvc.PlantInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		p, err := svc.Update(c.Request.Context(), currentProfile(c).ID, c.Param("id"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deletePlantHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), currentProfile(c).ID, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func uploadPlantImageHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
			return
		}
		src, err := file.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		defer src.Close()

		url, err := svc.SaveImage(file.Filename, src)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}
