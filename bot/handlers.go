package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"mhroulette/models"
)

func (b *Bot) handleDraw(ctx context.Context, profile *models.Profile) (*discordgo.InteractionResponse, error) {
	updated, weapon, err := b.drawService.DrawOne(ctx, profile)
	if err != nil {
		return nil, err
	}
	return drawResponse(updated, weapon), nil
}

func (b *Bot) handleDrawFromFavorites(ctx context.Context, profile *models.Profile) (*discordgo.InteractionResponse, error) {
	if len(profile.FavoriteWeapons) == 0 {
		return ephemeralMessage("You have no favorite weapons"), nil
	}

	updated, weapon, err := b.drawService.DrawOneFromFavorites(ctx, profile)
	if err != nil {
		return nil, err
	}
	return drawResponse(updated, weapon), nil
}

func (b *Bot) handleDrawMany(ctx context.Context, profile *models.Profile, n int, fromFavorites bool) (*discordgo.InteractionResponse, error) {
	var weapons []models.Weapon
	var err error
	if fromFavorites {
		if len(profile.FavoriteWeapons) == 0 {
			return ephemeralMessage("You have no favorite weapons"), nil
		}
		weapons, err = b.drawService.DrawManyFromFavorites(ctx, profile, n)
	} else {
		weapons, err = b.drawService.DrawMany(ctx, profile, n)
	}
	if err != nil {
		return nil, err
	}

	if len(weapons) == 0 {
		return ephemeralMessage("Nothing drawn, ask for at least one weapon"), nil
	}
	return multiDrawResponse(weapons), nil
}

// statKindForCommand maps the four stats commands onto aggregation kinds
func statKindForCommand(name string) (models.StatKind, bool) {
	switch name {
	case commandStatsDraws:
		return models.StatKindDraws, true
	case commandStatsBans:
		return models.StatKindBans, true
	case commandStatsPopularity:
		return models.StatKindPopularity, true
	case commandStatsMains:
		return models.StatKindMains, true
	}
	return "", false
}

func (b *Bot) handleServerStats(ctx context.Context, cl caller, command string) (*discordgo.InteractionResponse, error) {
	if cl.GuildID == 0 {
		return ephemeralMessage("Server stats only work inside a server"), nil
	}

	kind, ok := statKindForCommand(command)
	if !ok {
		return ephemeralMessage("Unknown stats command"), nil
	}

	stats, err := b.statsService.ServerStats(ctx, kind, cl.GuildID)
	if err != nil {
		return nil, err
	}
	return statsResponse(kind, stats), nil
}
