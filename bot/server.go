package bot

import (
	"crypto/ed25519"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP surface: the interaction webhook behind the
// signature check, plus a health probe.
func NewRouter(b *Bot, publicKey ed25519.PublicKey) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/interactions", verifySignature(publicKey), b.HandleInteraction)
	}

	return router
}

// verifySignature rejects requests whose ed25519 signature does not
// match the application's public key. Discord probes the endpoint with
// deliberately bad signatures, so a 401 here is routine.
func verifySignature(publicKey ed25519.PublicKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !discordgo.VerifyInteraction(c.Request, publicKey) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid request signature"})
			return
		}
		c.Next()
	}
}
