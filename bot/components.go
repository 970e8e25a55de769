package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	banSelectPrefix      = "weapon_select_ban_"
	favoriteSelectPrefix = "weapon_select_favorite_"
)

// parseSelectToken extracts the acting user id carried in a select-menu
// custom_id like weapon_select_ban_123456.
func parseSelectToken(customID, prefix string) (int64, error) {
	raw := strings.TrimPrefix(customID, prefix)
	if raw == "" || raw == customID {
		return 0, errors.New("custom_id carries no user id")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("custom_id user id is not a snowflake")
	}
	return id, nil
}

// handleComponent completes a ban or favorite selection. The acting
// user comes from the custom_id, not the envelope, so the original
// prompt owner is updated even if someone else clicks the menu.
func (b *Bot) handleComponent(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	data := i.MessageComponentData()

	var prefix string
	switch {
	case strings.HasPrefix(data.CustomID, favoriteSelectPrefix):
		prefix = favoriteSelectPrefix
	case strings.HasPrefix(data.CustomID, banSelectPrefix):
		prefix = banSelectPrefix
	default:
		log.WithField("customID", data.CustomID).Warn("Dropping component event with unknown custom_id")
		return deferredUpdate()
	}

	userID, err := parseSelectToken(data.CustomID, prefix)
	if err != nil {
		log.WithError(err).WithField("customID", data.CustomID).Warn("Dropping component event with malformed token")
		return deferredUpdate()
	}

	logger := log.WithFields(log.Fields{
		"customID": data.CustomID,
		"userID":   userID,
	})

	// The prompt may predate the profile; make sure one exists and note
	// the guild before writing the selection.
	if _, err := b.profileService.GetOrCreate(ctx, userID); err != nil {
		logger.WithError(err).Error("Failed to resolve profile for component event")
		return updateMessage("Something went wrong, try again later")
	}
	if i.GuildID != "" {
		if guildID, err := strconv.ParseInt(i.GuildID, 10, 64); err == nil {
			if err := b.profileService.RecordServerMembership(ctx, userID, guildID); err != nil {
				logger.WithError(err).Error("Failed to record server membership")
			}
		}
	}

	switch prefix {
	case banSelectPrefix:
		if _, err := b.profileService.SetBans(ctx, userID, data.Values); err != nil {
			logger.WithError(err).Error("Failed to set bans from selection")
			return updateMessage("Something went wrong, try again later")
		}
		return updateMessage("Banned weapons: " + strings.Join(data.Values, " | "))

	default:
		if _, err := b.profileService.SetFavorites(ctx, userID, data.Values); err != nil {
			logger.WithError(err).Error("Failed to set favorites from selection")
			return updateMessage("Something went wrong, try again later")
		}
		return updateMessage("Favorite weapons: " + strings.Join(data.Values, " | "))
	}
}
