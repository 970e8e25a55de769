package bot

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mhroulette/models"
	"mhroulette/service"
)

type testServices struct {
	profiles *service.MockProfileService
	draws    *service.MockDrawService
	stats    *service.MockStatsService
}

func newTestBot() (*Bot, *testServices) {
	svcs := &testServices{
		profiles: new(service.MockProfileService),
		draws:    new(service.MockDrawService),
		stats:    new(service.MockStatsService),
	}
	return New(svcs.profiles, svcs.draws, svcs.stats), svcs
}

// postInteraction drives the handler the way the router does, without
// the signature middleware.
func postInteraction(t *testing.T, b *Bot, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/interactions", b.HandleInteraction)

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/interactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return decoded
}

// guildCommand builds a slash-command envelope as Discord sends it from
// a server channel: the user nested in member, guild_id top level.
func guildCommand(name string, options ...map[string]any) map[string]any {
	data := map[string]any{"name": name, "type": 1}
	if len(options) > 0 {
		data["options"] = options
	}
	return map[string]any{
		"type":     2,
		"guild_id": "424242",
		"member": map[string]any{
			"user": map[string]any{"id": "123456", "username": "hunter", "global_name": "Hunter"},
		},
		"data": data,
	}
}

// dmCommand builds a slash-command envelope from a DM: user top level,
// no guild.
func dmCommand(name string) map[string]any {
	return map[string]any{
		"type": 2,
		"user": map[string]any{"id": "123456", "username": "hunter", "global_name": "Hunter"},
		"data": map[string]any{"name": name, "type": 1},
	}
}

func TestHandleInteraction_Ping(t *testing.T) {
	b, _ := newTestBot()

	recorder := postInteraction(t, b, map[string]any{"type": 1})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(1), decodeResponse(t, recorder)["type"])
}

func TestHandleInteraction_UnknownType(t *testing.T) {
	b, _ := newTestBot()

	recorder := postInteraction(t, b, map[string]any{"type": 99})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleInteraction_UnknownCommand(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456, Servers: []int64{424242}}
	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)

	recorder := postInteraction(t, b, guildCommand("mhr_dance"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleInteraction_HelpNeedsNoProfile(t *testing.T) {
	b, svcs := newTestBot()

	recorder := postInteraction(t, b, dmCommand(commandHelp))

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeResponse(t, recorder)
	data := resp["data"].(map[string]any)
	assert.Contains(t, data["content"], "Helpdesk")
	assert.Equal(t, float64(64), data["flags"])
	svcs.profiles.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestHandleInteraction_BanPrompt(t *testing.T) {
	b, svcs := newTestBot()

	recorder := postInteraction(t, b, guildCommand(commandBan))

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeResponse(t, recorder)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "Select weapons to ban", data["content"])
	assert.Equal(t, float64(64), data["flags"])

	row := data["components"].([]any)[0].(map[string]any)
	menu := row["components"].([]any)[0].(map[string]any)
	assert.Equal(t, "weapon_select_ban_123456", menu["custom_id"])
	assert.Equal(t, float64(1), menu["min_values"])
	assert.Equal(t, float64(models.WeaponCount), menu["max_values"])
	assert.Len(t, menu["options"], models.WeaponCount)

	// The prompt only carries the caller id forward; the profile is
	// resolved when the selection comes back.
	svcs.profiles.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestHandleInteraction_DrawInGuildRecordsMembership(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456}
	updated := &models.Profile{
		DiscordID:  123456,
		DrawCounts: map[models.Weapon]int64{models.WeaponHammer: 3},
	}

	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.profiles.On("RecordServerMembership", mock.Anything, int64(123456), int64(424242)).Return(nil)
	svcs.draws.On("DrawOne", mock.Anything, profile).Return(updated, models.WeaponHammer, nil)

	recorder := postInteraction(t, b, guildCommand(commandDraw))

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeResponse(t, recorder)
	embed := resp["data"].(map[string]any)["embeds"].([]any)[0].(map[string]any)
	assert.Equal(t, "Hammer", embed["title"])
	assert.Equal(t, "You got this weapon 3 time(s)", embed["description"])
	svcs.profiles.AssertExpectations(t)
	svcs.draws.AssertExpectations(t)
}

func TestHandleInteraction_DrawInDMSkipsMembership(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456}
	updated := &models.Profile{
		DiscordID:  123456,
		DrawCounts: map[models.Weapon]int64{models.WeaponBow: 1},
	}

	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.draws.On("DrawOne", mock.Anything, profile).Return(updated, models.WeaponBow, nil)

	recorder := postInteraction(t, b, dmCommand(commandDraw))

	assert.Equal(t, http.StatusOK, recorder.Code)
	svcs.profiles.AssertNotCalled(t, "RecordServerMembership", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleInteraction_KnownGuildSkipsMembershipWrite(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456, Servers: []int64{424242}}
	updated := &models.Profile{
		DiscordID:  123456,
		DrawCounts: map[models.Weapon]int64{models.WeaponBow: 1},
	}

	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.draws.On("DrawOne", mock.Anything, profile).Return(updated, models.WeaponBow, nil)

	postInteraction(t, b, guildCommand(commandDraw))

	svcs.profiles.AssertNotCalled(t, "RecordServerMembership", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleInteraction_DrawAllBanned(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456, Servers: []int64{424242}}
	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.draws.On("DrawOne", mock.Anything, profile).Return(nil, models.Weapon(""), service.ErrEmptyCandidateSet)

	recorder := postInteraction(t, b, guildCommand(commandDraw))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeResponse(t, recorder)["data"].(map[string]any)
	assert.Contains(t, data["content"], "banned")
	assert.Equal(t, float64(64), data["flags"])
}

func TestHandleInteraction_MultiDraw(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456, Servers: []int64{424242}}
	drawn := []models.Weapon{models.WeaponGreatSword, models.WeaponBow, models.WeaponGreatSword}

	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.draws.On("DrawMany", mock.Anything, profile, 3).Return(drawn, nil)

	recorder := postInteraction(t, b, guildCommand(commandDrawMulti,
		map[string]any{"name": "number", "type": 4, "value": 3}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeResponse(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "Random weapons: GS | Bow | GS", data["content"])
	// Draws are public.
	assert.NotContains(t, data, "flags")
	svcs.draws.AssertExpectations(t)
}

func TestHandleInteraction_PairDraw(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456, Servers: []int64{424242}}
	drawn := []models.Weapon{models.WeaponLance, models.WeaponHuntingHorn}

	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.draws.On("DrawMany", mock.Anything, profile, 2).Return(drawn, nil)

	recorder := postInteraction(t, b, guildCommand(commandDrawPair))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeResponse(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "Random weapons: Lance | HH", data["content"])
	svcs.draws.AssertExpectations(t)
}

func TestHandleInteraction_FavoriteDrawWithoutFavorites(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456, Servers: []int64{424242}}
	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)

	recorder := postInteraction(t, b, guildCommand(commandDrawFavorite))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeResponse(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "You have no favorite weapons", data["content"])
	assert.Equal(t, float64(64), data["flags"])
	svcs.draws.AssertNotCalled(t, "DrawOneFromFavorites", mock.Anything, mock.Anything)
}

func TestHandleInteraction_SetMainWeapon(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456, Servers: []int64{424242}}
	updated := &models.Profile{DiscordID: 123456, MainWeapon: "CB"}

	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.profiles.On("SetMainWeapon", mock.Anything, int64(123456), "CB").Return(updated, nil)

	recorder := postInteraction(t, b, guildCommand(commandSetMain,
		map[string]any{"name": "weapon", "type": 3, "value": "CB"}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeResponse(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "Set main weapon to CB", data["content"])
	svcs.profiles.AssertExpectations(t)
}

func TestHandleInteraction_SetMainWeapon_Invalid(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456, Servers: []int64{424242}}
	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.profiles.On("SetMainWeapon", mock.Anything, int64(123456), "Whip").Return(nil, service.ErrInvalidWeapon)

	recorder := postInteraction(t, b, guildCommand(commandSetMain,
		map[string]any{"name": "weapon", "type": 3, "value": "Whip"}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeResponse(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "Invalid weapon: Whip", data["content"])
	assert.Equal(t, float64(64), data["flags"])
}

func TestHandleInteraction_ServerStatsInDM(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456}
	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)

	recorder := postInteraction(t, b, dmCommand(commandStatsDraws))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeResponse(t, recorder)["data"].(map[string]any)
	assert.Equal(t, "Server stats only work inside a server", data["content"])
	svcs.stats.AssertNotCalled(t, "ServerStats", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleInteraction_ServerStats(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456, Servers: []int64{424242}}
	stats := []models.WeaponStat{
		{Weapon: models.WeaponGreatSword, Count: 3, Percentage: 75},
		{Weapon: models.WeaponBow, Count: 1, Percentage: 25},
	}

	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.stats.On("ServerStats", mock.Anything, models.StatKindBans, int64(424242)).Return(stats, nil)

	recorder := postInteraction(t, b, guildCommand(commandStatsBans))

	assert.Equal(t, http.StatusOK, recorder.Code)
	embed := decodeResponse(t, recorder)["data"].(map[string]any)["embeds"].([]any)[0].(map[string]any)
	assert.Equal(t, "Ban stats", embed["title"])
	assert.Equal(t, "GS: 3 (75%)\nBow: 1 (25%)", embed["description"])
	svcs.stats.AssertExpectations(t)
}

func TestHandleInteraction_UserSummary(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{
		DiscordID:       123456,
		Servers:         []int64{424242},
		MainWeapon:      "GS",
		FavoriteWeapons: []string{"GS", "Bow"},
		DrawCounts:      map[models.Weapon]int64{models.WeaponGreatSword: 2},
	}
	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)

	recorder := postInteraction(t, b, guildCommand(commandUserSummary))

	assert.Equal(t, http.StatusOK, recorder.Code)
	embed := decodeResponse(t, recorder)["data"].(map[string]any)["embeds"].([]any)[0].(map[string]any)
	assert.Equal(t, "Recap - Hunter", embed["title"])

	fields := embed["fields"].([]any)
	require.Len(t, fields, 4)
	assert.Equal(t, "GS", fields[0].(map[string]any)["value"])
	assert.Equal(t, "GS | Bow", fields[1].(map[string]any)["value"])
	assert.Equal(t, "None", fields[2].(map[string]any)["value"])
	assert.Contains(t, fields[3].(map[string]any)["value"], "**GS**: 2")
}
