package bot

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mhroulette/models"
)

// componentEvent builds a select-menu submission envelope
func componentEvent(customID string, values []string) map[string]any {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return map[string]any{
		"type":     3,
		"guild_id": "424242",
		"member": map[string]any{
			"user": map[string]any{"id": "999999", "username": "clicker"},
		},
		"data": map[string]any{
			"component_type": 3,
			"custom_id":      customID,
			"values":         vals,
		},
	}
}

func TestHandleComponent_BanSelection(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456}
	updated := &models.Profile{DiscordID: 123456, BannedWeapons: []string{"GS", "Bow"}}

	// The profile updated is the one named in the custom_id, not the
	// clicking user from the envelope.
	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.profiles.On("RecordServerMembership", mock.Anything, int64(123456), int64(424242)).Return(nil)
	svcs.profiles.On("SetBans", mock.Anything, int64(123456), []string{"GS", "Bow"}).Return(updated, nil)

	recorder := postInteraction(t, b, componentEvent("weapon_select_ban_123456", []string{"GS", "Bow"}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeResponse(t, recorder)
	// UPDATE_MESSAGE, with the select menu stripped
	assert.Equal(t, float64(7), resp["type"])
	data := resp["data"].(map[string]any)
	assert.Equal(t, "Banned weapons: GS | Bow", data["content"])
	assert.Empty(t, data["components"])
	svcs.profiles.AssertExpectations(t)
}

func TestHandleComponent_FavoriteSelection(t *testing.T) {
	b, svcs := newTestBot()

	profile := &models.Profile{DiscordID: 123456}
	updated := &models.Profile{DiscordID: 123456, FavoriteWeapons: []string{"HH"}}

	svcs.profiles.On("GetOrCreate", mock.Anything, int64(123456)).Return(profile, nil)
	svcs.profiles.On("RecordServerMembership", mock.Anything, int64(123456), int64(424242)).Return(nil)
	svcs.profiles.On("SetFavorites", mock.Anything, int64(123456), []string{"HH"}).Return(updated, nil)

	recorder := postInteraction(t, b, componentEvent("weapon_select_favorite_123456", []string{"HH"}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeResponse(t, recorder)
	assert.Equal(t, float64(7), resp["type"])
	assert.Equal(t, "Favorite weapons: HH", resp["data"].(map[string]any)["content"])
	svcs.profiles.AssertExpectations(t)
}

func TestHandleComponent_MalformedToken(t *testing.T) {
	b, svcs := newTestBot()

	for _, customID := range []string{
		"weapon_select_ban_",
		"weapon_select_ban_notanumber",
		"weapon_select_favorite_",
	} {
		recorder := postInteraction(t, b, componentEvent(customID, []string{"GS"}))

		assert.Equal(t, http.StatusOK, recorder.Code)
		// Deferred update: acknowledged, nothing changed.
		assert.Equal(t, float64(6), decodeResponse(t, recorder)["type"])
	}
	svcs.profiles.AssertNotCalled(t, "SetBans", mock.Anything, mock.Anything, mock.Anything)
	svcs.profiles.AssertNotCalled(t, "SetFavorites", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleComponent_UnknownCustomID(t *testing.T) {
	b, svcs := newTestBot()

	recorder := postInteraction(t, b, componentEvent("color_picker_123456", []string{"blue"}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(6), decodeResponse(t, recorder)["type"])
	svcs.profiles.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestParseSelectToken(t *testing.T) {
	id, err := parseSelectToken("weapon_select_ban_123456", banSelectPrefix)
	assert.NoError(t, err)
	assert.Equal(t, int64(123456), id)

	_, err = parseSelectToken("weapon_select_ban_", banSelectPrefix)
	assert.Error(t, err)

	_, err = parseSelectToken("weapon_select_ban_12x", banSelectPrefix)
	assert.Error(t, err)
}
