package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneDetachesCollections(t *testing.T) {
	original := DefaultContent()
	clone := original.Clone()

	clone.SiteName = "changed"
	clone.Districts[0].Name = "changed"
	clone.ActiveSections[0].Type = SectionWeather
	clone.SoilIssues[0].Title.Amharic = "changed"

	assert.Equal(t, "Soil Health Ethiopia", original.SiteName)
	assert.Equal(t, "Diredawa", original.Districts[0].Name)
	assert.Equal(t, SectionHero, original.ActiveSections[0].Type)
	assert.Equal(t, "ጨዋማነት", original.SoilIssues[0].Title.Amharic)
}

func TestCloneNil(t *testing.T) {
	var content *SiteContent
	assert.Nil(t, content.Clone())
}

func TestPublicViewStripsCredentials(t *testing.T) {
	content := DefaultContent()
	view := content.PublicView()

	assert.Empty(t, view.AdminPassword)
	assert.Empty(t, view.AdminEmail)
	assert.Equal(t, content.SiteName, view.SiteName)
	assert.Len(t, view.Districts, len(content.Districts))

	// The source aggregate keeps its credentials.
	assert.Equal(t, "1234", content.AdminPassword)
	assert.Equal(t, "ayumam100@gmail.com", content.AdminEmail)
}

func TestDefaultContentShape(t *testing.T) {
	content := DefaultContent()

	require.Len(t, content.Districts, 3)
	require.Len(t, content.ActiveSections, 6)
	require.Len(t, content.SoilIssues, 1)
	assert.NotNil(t, content.Documents)
	assert.NotNil(t, content.Media)
	assert.NotNil(t, content.CustomModules)
	assert.NotNil(t, content.Farmers)

	for _, d := range content.Districts {
		assert.NotEmpty(t, d.DisplayName.Amharic, "district %s", d.ID)
		assert.NotEmpty(t, d.DisplayName.AfaanOromoo, "district %s", d.ID)
	}
}

func TestDefaultContentJSONRoundTrip(t *testing.T) {
	content := DefaultContent()

	raw, err := json.Marshal(content)
	require.NoError(t, err)

	var decoded SiteContent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *content, decoded)
}

func TestDistrictByName(t *testing.T) {
	content := DefaultContent()

	district, ok := content.DistrictByName("Haramaya")
	require.True(t, ok)
	assert.Equal(t, "haramaya", district.ID)

	_, ok = content.DistrictByName("nowhere")
	assert.False(t, ok)
}

func TestCustomModuleByID(t *testing.T) {
	content := DefaultContent()
	next, created := content.AddCustomModule(CustomModule{})

	found, ok := next.CustomModuleByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)

	_, ok = next.CustomModuleByID("missing")
	assert.False(t, ok)
}

func TestLocalizedText(t *testing.T) {
	text := Localized("am", "or")
	assert.Equal(t, "am", text.Get(LangAmharic))
	assert.Equal(t, "or", text.Get(LangAfaanOromoo))
	assert.Empty(t, text.Get(Language("english")))

	require.NoError(t, text.Set(LangAfaanOromoo, "updated"))
	assert.Equal(t, "updated", text.AfaanOromoo)

	err := text.Set(Language("english"), "x")
	assert.ErrorIs(t, err, ErrUnknownLanguage)

	assert.False(t, text.IsZero())
	assert.True(t, LocalizedText{}.IsZero())
}

func TestLanguageValid(t *testing.T) {
	assert.True(t, LangAmharic.Valid())
	assert.True(t, LangAfaanOromoo.Valid())
	assert.False(t, Language("english").Valid())
	assert.False(t, Language("").Valid())
}
