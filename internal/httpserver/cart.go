package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JustAsh123/shopalot/internal/domain"
	cartsvc "github.com/JustAsh123/shopalot/internal/service/cart"
)

type cartResponse struct {
	CartItems []domain.CartLine `json:"cartItems"`
	Updating  bool              `json:"updating"`
}

func toCartResponse(cart *domain.Cart, updating bool) cartResponse {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{CartItems: lines, Updating: updating}
}

func getCartHandler(ledger *cartsvc.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		cart, err := ledger.Load(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart, ledger.Updating(userID)))
	}
}

func addCartItemHandler(ledger *cartsvc.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		cart, err := ledger.AddOne(c.Request.Context(), userID, c.Param("productId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart, ledger.Updating(userID)))
	}
}

func removeCartItemHandler(ledger *cartsvc.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		cart, err := ledger.RemoveOne(c.Request.Context(), userID, c.Param("productId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart, ledger.Updating(userID)))
	}
}
