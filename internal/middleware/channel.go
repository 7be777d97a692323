package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/nestapt/nest_backend/internal/core/domain"
)

// GetChannelFromContext resolves the request channel from the `channel`
// query parameter. Unknown or missing values default to WEB, so only an
// explicit WHATSAPP marks bot traffic.
func GetChannelFromContext(c *gin.Context) domain.Channel {
	channel := domain.Channel(c.Query("channel"))
	if !channel.IsValid() {
		return domain.ChannelWeb
	}
	return channel
}
