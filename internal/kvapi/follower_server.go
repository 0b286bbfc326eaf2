package kvapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memoryscramble/internal/kv"
)

type replicateRequest struct {
	RequestID string `json:"request_id"`
	Key       string `json:"key" binding:"required"`
	Value     string `json:"value" binding:"required"`
}

// NewFollowerRouter wires a follower's replication-target surface.
// /replicate blocks for the follower's injected delay before
// responding, which is what makes the leader's quorum wait meaningful.
func NewFollowerRouter(follower *kv.Follower) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "role": "follower", "follower_id": follower.ID})
	})

	r.POST("/replicate", func(c *gin.Context) {
		var req replicateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		follower.Replicate(req.Key, req.Value)
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"key":         req.Key,
			"value":       req.Value,
			"follower_id": follower.ID,
		})
	})

	r.GET("/read", func(c *gin.Context) {
		key := c.Query("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "key parameter is required"})
			return
		}
		value, err := follower.Read(key)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
	})

	return r
}
