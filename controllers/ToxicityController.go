package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pridehub/helper"
)

type ToxicityController struct {
	client *helper.ToxicityClient
}

func NewToxicityController(client *helper.ToxicityClient) *ToxicityController {
	return &ToxicityController{client: client}
}

// Check scores a piece of text before the client publishes it. The caller
// decides what to do with the score; nothing is blocked server-side.
func (tc *ToxicityController) Check(c *gin.Context) {
	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "text is required"})
		return
	}

	score, err := tc.client.Check(c.Request.Context(), body.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": "toxicity check failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "text analysed",
		"data":    gin.H{"toxicityScore": score},
	})
}
