package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type beginCheckoutRequest struct {
	AddressID string `json:"addressId"`
}

type confirmCheckoutRequest struct {
	PaymentRef string `json:"paymentRef" binding:"required"`
}

func beginCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req beginCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sess, err := svc.Begin(c.Request.Context(), currentProfile(c).ID, req.AddressID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sess)
	}
}

func getCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := svc.Get(currentProfile(c).ID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func confirmCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req confirmCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sess, err := svc.Confirm(c.Request.Context(), currentProfile(c).ID, c.Param("id"), req.PaymentRef)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}
