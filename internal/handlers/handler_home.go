package handlers

import "github.com/gin-gonic/gin"

func getHome(c *gin.Context) {
	c.String(200, "hey")
}
