package eventdraft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackhub/internal/domain"
)

func TestNormalize_DefaultsAndCoercion(t *testing.T) {
	d := validDraft()
	d.Tagline = "   "
	d.About = " Build things. "
	d.MaxParticipants = "abc"
	d.MinTeamSize = "2"
	d.MaxTeamSize = ""
	d.Type = ""
	d.Timeline.Timezone = ""
	d.Timeline.RSVPDeadlineDays = ""
	d.Branding.BrandColor = ""

	in, err := Normalize(d, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "Global Hack Week", in.Name)
	assert.Equal(t, domain.EventTypeHackathon, in.Type)
	assert.Nil(t, in.Tagline)
	require.NotNil(t, in.About)
	assert.Equal(t, "Build things.", *in.About)
	assert.Nil(t, in.MaxParticipants)
	require.NotNil(t, in.MinTeamSize)
	assert.Equal(t, 2, *in.MinTeamSize)
	assert.Nil(t, in.MaxTeamSize)
	assert.Equal(t, "UTC", in.Timeline.Timezone)
	assert.Equal(t, RSVPFallbackDays, in.Timeline.RSVPDeadlineDays)
	assert.Equal(t, DefaultBrandColor, in.Branding.BrandColor)
	assert.Equal(t, "team@hack.dev", in.Links.ContactEmail)
	assert.Nil(t, in.Links.WebsiteURL)
}

func TestNormalize_NewDraftKeepsSevenDayRSVP(t *testing.T) {
	in, err := Normalize(validDraft(), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 7, in.Timeline.RSVPDeadlineDays)
}

func TestNormalize_DatesAreReadInLocationAndStoredAsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	d := validDraft()
	d.Timeline.EventStart = "2025-03-01T09:00"
	d.Timeline.EventEnd = "2025-03-02T18:00:30Z"
	d.Timeline.ApplicationsStart = "2025-01-01 08:30"
	d.Timeline.ApplicationsEnd = "2025-02-15"

	in, err := Normalize(d, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC), in.Timeline.EventStart)
	assert.Equal(t, time.Date(2025, 3, 2, 18, 0, 30, 0, time.UTC), in.Timeline.EventEnd)
	assert.Equal(t, time.Date(2025, 1, 1, 6, 30, 0, 0, time.UTC), in.Timeline.ApplicationsStart)
	assert.Equal(t, time.Date(2025, 2, 14, 22, 0, 0, 0, time.UTC), in.Timeline.ApplicationsEnd)
}

func TestNormalize_UnparsableRequiredDateFails(t *testing.T) {
	d := validDraft()
	d.Timeline.EventStart = "soon"

	_, err := Normalize(d, time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eventTimeline.eventStart")
}

func TestNormalize_DropsEntriesThatAreNotPresent(t *testing.T) {
	d := validDraft()
	d.Tracks[0].Name = "Open Track"
	d.Tracks[0].Prizes[0].Title = "Winner"
	d.Tracks[0].Prizes[0].Value = "1000"
	d.Tracks[0].Prizes = append(d.Tracks[0].Prizes, PrizeDraft{Value: "0"}, PrizeDraft{Value: "x"})
	d.AddTrack()
	d.AddTrack()
	d.Tracks[2].Name = "  Climate  "

	d.Sponsors[0].Name = "Acme"
	d.Sponsors[0].Tier = "silver"
	d.AddSponsor()

	d.AddPerson()
	d.People[1].Name = "Grace"
	d.People[1].Role = ""

	in, err := Normalize(d, time.UTC)
	require.NoError(t, err)

	require.Len(t, in.Tracks, 2)
	assert.Equal(t, "Open Track", in.Tracks[0].Name)
	require.Len(t, in.Tracks[0].Prizes, 1)
	assert.Equal(t, domain.PrizeInput{Title: "Winner", Value: 1000}, in.Tracks[0].Prizes[0])
	assert.Equal(t, "Climate", in.Tracks[1].Name)
	assert.NotNil(t, in.Tracks[1].Prizes)
	assert.Empty(t, in.Tracks[1].Prizes)

	require.Len(t, in.Sponsors, 1)
	assert.Equal(t, domain.SponsorTierSilver, in.Sponsors[0].Tier)

	require.Len(t, in.People, 1)
	assert.Equal(t, "Grace", in.People[0].Name)
	assert.Equal(t, domain.PersonRoleJudge, in.People[0].Role)
}

func TestNormalize_CollectionsAreNeverNil(t *testing.T) {
	d := validDraft()
	d.Tracks, d.Sponsors, d.People = nil, nil, nil

	in, err := Normalize(d, nil)
	require.NoError(t, err)

	assert.NotNil(t, in.Tracks)
	assert.NotNil(t, in.Sponsors)
	assert.NotNil(t, in.People)
}

func TestNormalize_IsIdempotentThroughFromInput(t *testing.T) {
	d := validDraft()
	d.Type = "general_event"
	d.Tagline = " Ship it "
	d.MaxParticipants = "250"
	d.Timeline.RSVPDeadlineDays = "oops"
	d.Links.WebsiteURL = "https://hack.dev"
	d.Tracks[0].Name = "Open Track"
	d.Tracks[0].Description = "Anything goes"
	d.Tracks[0].Prizes[0].Title = "Winner"
	d.Sponsors[0].Name = "Acme"
	d.People[0].Name = "Ada"
	d.People[0].Role = "speaker"

	loc := time.FixedZone("UTC-5", -5*60*60)
	first, err := Normalize(d, loc)
	require.NoError(t, err)

	second, err := Normalize(FromInput(first), loc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFromInput_ZeroTimesBecomeBlank(t *testing.T) {
	d := FromInput(domain.EventInput{Name: "Hack"})

	assert.Empty(t, d.Timeline.EventStart)
	assert.Empty(t, d.Timeline.ApplicationsEnd)
	assert.Empty(t, d.MaxParticipants)
	assert.Equal(t, "0", d.Timeline.RSVPDeadlineDays)
}
