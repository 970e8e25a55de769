package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"

	"mhroulette/events"
)

// subscribeEventLogging attaches the observability subscribers. Nothing
// in the request path depends on these; they run async on the bus.
func subscribeEventLogging(bus *events.Bus) {
	bus.Subscribe(events.EventTypeProfileCreated, func(ctx context.Context, event events.Event) {
		created := event.(events.ProfileCreatedEvent)
		log.WithField("userID", created.DiscordID).Info("New profile created")
	})

	bus.Subscribe(events.EventTypeWeaponsDrawn, func(ctx context.Context, event events.Event) {
		drawn := event.(events.WeaponsDrawnEvent)
		log.WithFields(log.Fields{
			"userID":        drawn.DiscordID,
			"count":         len(drawn.Weapons),
			"fromFavorites": drawn.FromFavorites,
		}).Info("Weapons drawn")
	})

	bus.Subscribe(events.EventTypeStatsReset, func(ctx context.Context, event events.Event) {
		reset := event.(events.StatsResetEvent)
		log.WithField("userID", reset.DiscordID).Info("Draw stats reset")
	})
}
