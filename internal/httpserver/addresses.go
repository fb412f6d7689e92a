package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customersvc "github.com/JustAsh123/shopalot/internal/service/customer"
)

func listAddressesHandler(svc *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		addresses, err := svc.ListAddresses(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": addresses})
	}
}

func addAddressHandler(svc *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customersvc.AddAddressInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		address, err := svc.AddAddress(c.Request.Context(), currentUserID(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

func removeAddressHandler(svc *customersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveAddress(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
