package bot

import (
	"mhroulette/service"
)

// Bot handles Discord interaction webhooks. Unlike a gateway bot it
// holds no websocket session; Discord POSTs each interaction to the
// HTTP endpoint and the response body is the reply.
type Bot struct {
	profileService service.ProfileService
	drawService    service.DrawService
	statsService   service.StatsService
}

// New creates a new bot
func New(profileService service.ProfileService, drawService service.DrawService, statsService service.StatsService) *Bot {
	return &Bot{
		profileService: profileService,
		drawService:    drawService,
		statsService:   statsService,
	}
}
