package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"mhroulette/models"
)

// Command names. The mhr_ prefix keeps them grouped in Discord's
// command picker.
const (
	commandList              = "mhr_list"
	commandBan               = "mhr_ban"
	commandUnbanAll          = "mhr_unban_all"
	commandDraw              = "mhr_rnd"
	commandDrawPair          = "mhr_r2"
	commandDrawMulti         = "mhr_rndx"
	commandDrawFavorite      = "mhr_rnd_fav"
	commandDrawMultiFavorite = "mhr_rndx_fav"
	commandSetFavorites      = "mhr_set_fav"
	commandSetMain           = "mhr_set_main"
	commandUserSummary       = "mhr_user_summary"
	commandUserResetStats    = "mhr_user_reset_stats"
	commandStatsDraws        = "mhr_stats_server_draws"
	commandStatsBans         = "mhr_stats_server_bans"
	commandStatsPopularity   = "mhr_stats_server_popularity"
	commandStatsMains        = "mhr_stats_server_mains"
	commandHelp              = "mhr_help"
)

// weaponChoices builds the main-weapon option choices, display name as
// the label and the short code as the stored value
func weaponChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, models.WeaponCount)
	for _, w := range models.AllWeapons() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  w.DisplayName(),
			Value: string(w),
		})
	}
	return choices
}

// applicationCommands returns the full command set in registration order
func applicationCommands() []*discordgo.ApplicationCommand {
	// Every command works in guilds, bot DMs, and private channels.
	integrationTypes := []discordgo.ApplicationIntegrationType{
		discordgo.ApplicationIntegrationGuildInstall,
		discordgo.ApplicationIntegrationUserInstall,
	}
	contexts := []discordgo.InteractionContextType{
		discordgo.InteractionContextGuild,
		discordgo.InteractionContextBotDM,
		discordgo.InteractionContextPrivateChannel,
	}

	numberOption := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "number",
			Description: "Number of weapons to get",
			Required:    true,
		},
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        commandList,
			Description: "List your banned weapons",
		},
		{
			Name:        commandBan,
			Description: "Ban multiple weapons",
		},
		{
			Name:        commandUnbanAll,
			Description: "Unban all weapons",
		},
		{
			Name:        commandDraw,
			Description: "Get a random weapon",
		},
		{
			Name:        commandDrawPair,
			Description: "Get 2 random weapons. One on you, and one for the Seikret !",
		},
		{
			Name:        commandDrawMulti,
			Description: "Get multiple random weapons",
			Options:     numberOption,
		},
		{
			Name:        commandDrawFavorite,
			Description: "Get a random weapon from your favorites",
		},
		{
			Name:        commandDrawMultiFavorite,
			Description: "Get multiple random weapons from your favorites",
			Options:     numberOption,
		},
		{
			Name:        commandSetFavorites,
			Description: "Set your favorite weapons",
		},
		{
			Name:        commandSetMain,
			Description: "Set your main weapon",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "weapon",
					Description: "Main weapon",
					Required:    true,
					Choices:     weaponChoices(),
				},
			},
		},
		{
			Name:        commandUserSummary,
			Description: "Get your user summary",
		},
		{
			Name:        commandUserResetStats,
			Description: "Reset your stats - THIS CANNOT BE UNDONE",
		},
		{
			Name:        commandStatsDraws,
			Description: "Get weapon draw stats for server",
		},
		{
			Name:        commandStatsBans,
			Description: "Get server weapon ban stats",
		},
		{
			Name:        commandStatsPopularity,
			Description: "Get server weapon popularity stats (from favorites)",
		},
		{
			Name:        commandStatsMains,
			Description: "Get disparity between main weapons in the server",
		},
		{
			Name:        commandHelp,
			Description: "Get help",
		},
	}

	for _, cmd := range commands {
		cmd.IntegrationTypes = &integrationTypes
		cmd.Contexts = &contexts
	}

	return commands
}

// RegisterCommands bulk-overwrites the application's global slash
// commands via the Discord REST API. The webhook server itself never
// needs a session; this runs as a standalone subcommand.
func RegisterCommands(token, appID string) error {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("error creating discord session: %w", err)
	}

	commands := applicationCommands()
	registered, err := session.ApplicationCommandBulkOverwrite(appID, "", commands)
	if err != nil {
		return fmt.Errorf("error registering commands: %w", err)
	}

	log.WithField("count", len(registered)).Info("Registered application commands")
	return nil
}
