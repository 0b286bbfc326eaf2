package kvapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memoryscramble/internal/kv"
)

type writeRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// NewLeaderRouter wires the leader's write/read surface. Only the
// leader accepts writes; followers only ever see /replicate.
func NewLeaderRouter(leader *kv.Leader) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "role": "leader"})
	})

	r.POST("/write", func(c *gin.Context) {
		var req writeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := leader.Write(req.Key, req.Value)
		c.JSON(http.StatusOK, gin.H{
			"key":           req.Key,
			"value":         req.Value,
			"confirmations": result.Confirmations,
			"quorum_met":    result.QuorumMet,
		})
	})

	r.GET("/read", func(c *gin.Context) {
		key := c.Query("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "key parameter is required"})
			return
		}
		value, err := leader.Read(key)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
	})

	return r
}
