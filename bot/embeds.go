package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"mhroulette/models"
)

// embedColor is the blue used on every embed the bot sends
const embedColor = 0x6FA8DC

// drawResponse announces a single drawn weapon with the caller's
// running count and draw rate for it
func drawResponse(profile *models.Profile, weapon models.Weapon) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       weapon.DisplayName(),
					Color:       embedColor,
					Description: fmt.Sprintf("You got this weapon %d time(s)", profile.DrawCount(weapon)),
					Footer: &discordgo.MessageEmbedFooter{
						Text: fmt.Sprintf("Your draw rate for this weapon is %s", profile.DrawRate(weapon)),
					},
				},
			},
		},
	}
}

// multiDrawResponse lists a multi-draw result in one public line
func multiDrawResponse(weapons []models.Weapon) *discordgo.InteractionResponse {
	codes := make([]string, len(weapons))
	for i, w := range weapons {
		codes[i] = string(w)
	}
	return publicMessage("Random weapons: " + strings.Join(codes, " | "))
}

// listBansResponse lists the caller's banned weapons
func listBansResponse(profile *models.Profile) *discordgo.InteractionResponse {
	if len(profile.BannedWeapons) == 0 {
		return ephemeralMessage("No banned weapons")
	}
	return ephemeralMessage("Banned weapons: " + strings.Join(profile.BannedWeapons, " | "))
}

// recapResponse summarizes a profile: main weapon, favorites, bans, and
// the full per-weapon draw table in catalog order
func recapResponse(profile *models.Profile, displayName string) *discordgo.InteractionResponse {
	orNone := func(values []string) string {
		if len(values) == 0 {
			return "None"
		}
		return strings.Join(values, " | ")
	}

	mainWeapon := "None"
	if profile.HasMainWeapon() {
		mainWeapon = profile.MainWeapon
	}

	var table strings.Builder
	for _, w := range models.AllWeapons() {
		fmt.Fprintf(&table, "**%s**: %d • *%s*\n", w, profile.DrawCount(w), profile.DrawRate(w))
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title: fmt.Sprintf("Recap - %s", displayName),
					Color: embedColor,
					Fields: []*discordgo.MessageEmbedField{
						{Name: "Main Weapon", Value: mainWeapon, Inline: true},
						{Name: "Favorite Weapons", Value: orNone(profile.FavoriteWeapons), Inline: true},
						{Name: "Banned Weapons", Value: orNone(profile.BannedWeapons), Inline: true},
						{Name: "Weapon Stats", Value: strings.TrimRight(table.String(), "\n")},
					},
				},
			},
		},
	}
}

var statTitles = map[models.StatKind]string{
	models.StatKindDraws:      "Draw stats",
	models.StatKindBans:       "Ban stats",
	models.StatKindPopularity: "Popularity stats",
	models.StatKindMains:      "Main weapon stats",
}

// statsResponse renders a server aggregation, one line per weapon,
// already sorted by share descending
func statsResponse(kind models.StatKind, stats []models.WeaponStat) *discordgo.InteractionResponse {
	description := "No stats recorded yet."
	if len(stats) > 0 {
		lines := make([]string, len(stats))
		for i, stat := range stats {
			lines[i] = fmt.Sprintf("%s: %d (%.0f%%)", stat.Weapon, stat.Count, stat.Percentage)
		}
		description = strings.Join(lines, "\n")
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       statTitles[kind],
					Color:       embedColor,
					Description: description,
				},
			},
		},
	}
}

// weaponSelectOptions builds the 14 catalog options shared by the ban
// and favorite prompts
func weaponSelectOptions() []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, models.WeaponCount)
	for _, w := range models.AllWeapons() {
		options = append(options, discordgo.SelectMenuOption{
			Label: fmt.Sprintf("%s - %s", w, w.DisplayName()),
			Value: string(w),
		})
	}
	return options
}

func weaponSelectPrompt(content, customID, placeholder string) *discordgo.InteractionResponse {
	minValues := 1
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							MenuType:    discordgo.StringSelectMenu,
							CustomID:    customID,
							Placeholder: placeholder,
							MinValues:   &minValues,
							MaxValues:   models.WeaponCount,
							Options:     weaponSelectOptions(),
						},
					},
				},
			},
		},
	}
}

// banPromptResponse opens the multi-weapon ban select for the caller
func banPromptResponse(userID int64) *discordgo.InteractionResponse {
	return weaponSelectPrompt(
		"Select weapons to ban",
		fmt.Sprintf("%s%d", banSelectPrefix, userID),
		"Select weapons to ban",
	)
}

// favoritePromptResponse opens the favorite-weapon select for the caller
func favoritePromptResponse(userID int64) *discordgo.InteractionResponse {
	return weaponSelectPrompt(
		"Select favorite weapons",
		fmt.Sprintf("%s%d", favoriteSelectPrefix, userID),
		"Select favorite weapons",
	)
}

// helpResponse is the static command reference
func helpResponse() *discordgo.InteractionResponse {
	help := strings.Join([]string{
		"**MH Roulette** Helpdesk",
		"",
		"**Randomizer**",
		"- `/" + commandDraw + "`: Get a random weapon",
		"- `/" + commandDrawPair + "`: Get 2 random weapons, one for you and one for the Seikret",
		"- `/" + commandDrawMulti + "`: Get multiple random weapons",
		"*note: This will add all weapons drawn to your stats*",
		"- `/" + commandDrawFavorite + "`: Get a random weapon from your favorites",
		"- `/" + commandDrawMultiFavorite + "`: Get multiple random weapons from your favorites",
		"*note: This will add all weapons drawn to your stats*",
		"",
		"**Banning Weapons**",
		"- `/" + commandBan + "`: Set your banned weapons",
		"- `/" + commandList + "`: List your banned weapons",
		"- `/" + commandUnbanAll + "`: Unban all weapons",
		"",
		"**User Profile Commands**",
		"- `/" + commandUserSummary + "`: Get a summary of your stats",
		"- `/" + commandSetMain + "`: Set your main weapon",
		"- `/" + commandSetFavorites + "`: Set your favorite weapons",
		"- `/" + commandUserResetStats + "`: Reset your draw stats",
		"",
		"**Server Stats**",
		"- `/" + commandStatsDraws + "`: Weapon draw stats for the server",
		"- `/" + commandStatsBans + "`: Weapon ban stats for the server",
		"- `/" + commandStatsPopularity + "`: Weapon popularity stats (from favorites)",
		"- `/" + commandStatsMains + "`: Main weapon spread in the server",
		"",
		"**Other**",
		"- `/" + commandHelp + "`: Show this message",
	}, "\n")

	return ephemeralMessage(help)
}
