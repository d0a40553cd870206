package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":  false,
			"message": "internal server error",
		})
	}
}
