package bot

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mhroulette/repository"
	"mhroulette/service"
)

// caller identifies the acting user of an interaction. GuildID is 0 for
// DM and group-DM contexts.
type caller struct {
	ID          int64
	DisplayName string
	GuildID     int64
}

// resolveCaller normalizes the two envelope shapes: in a guild the user
// rides inside member, in DMs it is top level.
func resolveCaller(i *discordgo.Interaction) (caller, error) {
	var user *discordgo.User
	if i.Member != nil {
		user = i.Member.User
	} else {
		user = i.User
	}
	if user == nil {
		return caller{}, errors.New("interaction has no acting user")
	}

	id, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return caller{}, errors.New("interaction user id is not a snowflake")
	}

	c := caller{ID: id, DisplayName: user.GlobalName}
	if c.DisplayName == "" {
		c.DisplayName = user.Username
	}

	if i.GuildID != "" {
		guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
		if err != nil {
			return caller{}, errors.New("interaction guild id is not a snowflake")
		}
		c.GuildID = guildID
	}

	return c, nil
}

// HandleInteraction is the webhook entry point. Every interaction
// Discord sends, ping included, arrives here.
func (b *Bot) HandleInteraction(c *gin.Context) {
	var interaction discordgo.Interaction
	if err := c.ShouldBindJSON(&interaction); err != nil {
		log.WithError(err).Warn("Failed to decode interaction payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed interaction"})
		return
	}

	switch interaction.Type {
	case discordgo.InteractionPing:
		c.JSON(http.StatusOK, discordgo.InteractionResponse{
			Type: discordgo.InteractionResponsePong,
		})

	case discordgo.InteractionMessageComponent:
		c.JSON(http.StatusOK, b.handleComponent(c.Request.Context(), &interaction))

	case discordgo.InteractionApplicationCommand:
		b.handleCommand(c, &interaction)

	default:
		log.WithField("type", interaction.Type).Error("Unknown interaction type")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown interaction type"})
	}
}

func (b *Bot) handleCommand(c *gin.Context, i *discordgo.Interaction) {
	ctx := c.Request.Context()
	data := i.ApplicationCommandData()

	cl, err := resolveCaller(i)
	if err != nil {
		log.WithError(err).WithField("command", data.Name).Warn("Dropping command with unusable caller")
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed interaction"})
		return
	}

	logger := log.WithFields(log.Fields{
		"command": data.Name,
		"userID":  cl.ID,
	})

	// These three never touch the profile store: the prompts only carry
	// the caller id forward, and help is static.
	switch data.Name {
	case commandBan:
		c.JSON(http.StatusOK, banPromptResponse(cl.ID))
		return
	case commandSetFavorites:
		c.JSON(http.StatusOK, favoritePromptResponse(cl.ID))
		return
	case commandHelp:
		c.JSON(http.StatusOK, helpResponse())
		return
	}

	profile, err := b.profileService.GetOrCreate(ctx, cl.ID)
	if err != nil {
		b.respondError(c, logger, err)
		return
	}
	if cl.GuildID != 0 && !profile.InServer(cl.GuildID) {
		if err := b.profileService.RecordServerMembership(ctx, cl.ID, cl.GuildID); err != nil {
			// Membership is bookkeeping for server stats; the command
			// itself can still be answered.
			logger.WithError(err).Error("Failed to record server membership")
		}
	}

	var resp *discordgo.InteractionResponse
	switch data.Name {
	case commandList:
		resp = listBansResponse(profile)
	case commandUnbanAll:
		resp, err = b.handleUnbanAll(ctx, cl)
	case commandSetMain:
		resp, err = b.handleSetMain(ctx, cl, data)
	case commandDraw:
		resp, err = b.handleDraw(ctx, profile)
	case commandDrawPair:
		resp, err = b.handleDrawMany(ctx, profile, 2, false)
	case commandDrawMulti:
		resp, err = b.handleDrawMany(ctx, profile, int(commandNumberOption(data)), false)
	case commandDrawFavorite:
		resp, err = b.handleDrawFromFavorites(ctx, profile)
	case commandDrawMultiFavorite:
		resp, err = b.handleDrawMany(ctx, profile, int(commandNumberOption(data)), true)
	case commandUserSummary:
		resp = recapResponse(profile, cl.DisplayName)
	case commandUserResetStats:
		resp, err = b.handleResetStats(ctx, cl)
	case commandStatsDraws, commandStatsBans, commandStatsPopularity, commandStatsMains:
		resp, err = b.handleServerStats(ctx, cl, data.Name)
	default:
		logger.Error("Unknown command")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown command"})
		return
	}

	if err != nil {
		b.respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// respondError translates a handler failure into a user-facing reply.
// Domain rejections get their own wording; anything else is reported
// and answered generically.
func (b *Bot) respondError(c *gin.Context, logger *log.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCandidateSet):
		c.JSON(http.StatusOK, ephemeralMessage("All weapons are banned, unban some and try again"))
	case errors.Is(err, service.ErrInvalidWeapon):
		c.JSON(http.StatusOK, ephemeralMessage("That weapon is not in the catalog"))
	default:
		logger.WithError(err).Error("Command handler failed")
		if errors.Is(err, repository.ErrStoreUnavailable) {
			sentry.CaptureException(err)
		}
		c.JSON(http.StatusOK, ephemeralMessage("Something went wrong, try again later"))
	}
}

// commandNumberOption returns the required integer option of the
// multi-draw commands, 0 when absent.
func commandNumberOption(data discordgo.ApplicationCommandInteractionData) int64 {
	for _, opt := range data.Options {
		if opt.Name == "number" {
			return opt.IntValue()
		}
	}
	return 0
}

func (b *Bot) handleUnbanAll(ctx context.Context, cl caller) (*discordgo.InteractionResponse, error) {
	if _, err := b.profileService.ClearBans(ctx, cl.ID); err != nil {
		return nil, err
	}
	return ephemeralMessage("Unbanned all weapons"), nil
}

func (b *Bot) handleSetMain(ctx context.Context, cl caller, data discordgo.ApplicationCommandInteractionData) (*discordgo.InteractionResponse, error) {
	var weapon string
	for _, opt := range data.Options {
		if opt.Name == "weapon" {
			weapon = opt.StringValue()
		}
	}
	if _, err := b.profileService.SetMainWeapon(ctx, cl.ID, weapon); err != nil {
		if errors.Is(err, service.ErrInvalidWeapon) {
			return ephemeralMessage("Invalid weapon: " + weapon), nil
		}
		return nil, err
	}
	return ephemeralMessage("Set main weapon to " + weapon), nil
}

func (b *Bot) handleResetStats(ctx context.Context, cl caller) (*discordgo.InteractionResponse, error) {
	if err := b.profileService.ResetStats(ctx, cl.ID); err != nil {
		return nil, err
	}
	return ephemeralMessage("Your draw stats have been reset"), nil
}
