package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"plantstore/internal/cart"
)

type cartResponse struct {
	Lines      []cartLineResponse `json:"lines"`
	TotalCents int64              `json:"totalCents"`
}

type cartLineResponse struct {
	PlantID        string `json:"plantId"`
	Name           string `json:"name"`
	PriceCents     int64  `json:"priceCents"`
	ImageURL       string `json:"imageUrl,omitempty"`
	Quantity       int    `json:"quantity"`
	LineTotalCents int64  `json:"lineTotalCents"`
}

type addCartItemRequest struct {
	PlantID string `json:"plantId" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(carts, currentProfile(c).ID))
	}
}

func addCartItemHandler(carts *cart.Store, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		p, err := catalog.Get(c.Request.Context(), req.PlantID)
		if err != nil {
			respondError(c, err)
			return
		}
		if p.Stock < 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "plant is out of stock"})
			return
		}

		profileID := currentProfile(c).ID
		// Re-adding a plant already in the cart leaves the cart unchanged.
		carts.AddLine(profileID, cart.Line{
			PlantID:    p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			ImageURL:   p.ImageURL,
			NurseryID:  p.NurseryID,
			Quantity:   1,
		})
		c.JSON(http.StatusOK, toCartResponse(carts, profileID))
	}
}

func setCartQuantityHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		profileID := currentProfile(c).ID
		carts.SetQuantity(profileID, c.Param("plantId"), req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(carts, profileID))
	}
}

func removeCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := currentProfile(c).ID
		carts.Remove(profileID, c.Param("plantId"))
		c.JSON(http.StatusOK, toCartResponse(carts, profileID))
	}
}

func clearCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Clear(currentProfile(c).ID)
		c.Status(http.StatusNoContent)
	}
}

func toCartResponse(carts *cart.Store, profileID string) cartResponse {
	lines := carts.Lines(profileID)
	resp := cartResponse{Lines: make([]cartLineResponse, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, cartLineResponse{
			PlantID:        l.PlantID,
			Name:           l.Name,
			PriceCents:     l.PriceCents,
			ImageURL:       l.ImageURL,
			Quantity:       l.Quantity,
			LineTotalCents: cart.LineTotal(l),
		})
	}
	resp.TotalCents = carts.GrandTotal(profileID)
	return resp
}
