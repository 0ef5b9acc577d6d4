package eventdraft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackhub/internal/domain"
)

func validDraft() *Draft {
	d := New()
	d.Name = "Global Hack Week"
	d.Timeline.EventStart = "2025-03-01T09:00"
	d.Timeline.EventEnd = "2025-03-02T18:00"
	d.Timeline.ApplicationsStart = "2025-01-01T00:00"
	d.Timeline.ApplicationsEnd = "2025-02-15T23:59"
	d.Links.ContactEmail = "team@hack.dev"
	return d
}

func TestValidate_NewDraftWithRequiredFieldsIsValid(t *testing.T) {
	errs := Validate(validDraft())
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestValidate_EmptyDraftReportsRequiredFields(t *testing.T) {
	errs := Validate(&Draft{})

	assert.Equal(t, []string{
		"eventLinks.contactEmail",
		"eventTimeline.applicationsEnd",
		"eventTimeline.applicationsStart",
		"eventTimeline.eventEnd",
		"eventTimeline.eventStart",
		"name",
	}, errs.Paths())
	assert.Equal(t, "Event name is required (minimum 3 characters).", errs["name"])
	assert.Equal(t, "Event start date is required.", errs["eventTimeline.eventStart"])
	assert.Equal(t, "Contact email is required and must be a valid email address.", errs["eventLinks.contactEmail"])
}

func TestValidate_NilDraftDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		errs := Validate(nil)
		assert.Contains(t, errs, "name")
	})
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Draft)
		path   string
		msg    string
	}{
		{
			name:   "name shorter than three characters after trim",
			mutate: func(d *Draft) { d.Name = "  ab  " },
			path:   "name",
			msg:    "Event name is required (minimum 3 characters).",
		},
		{
			name:   "unknown event type",
			mutate: func(d *Draft) { d.Type = "MEETUP" },
			path:   "type",
		},
		{
			name:   "negative max participants",
			mutate: func(d *Draft) { d.MaxParticipants = "-5" },
			path:   "maxParticipants",
		},
		{
			name:   "max team size below min",
			mutate: func(d *Draft) { d.MinTeamSize = "3"; d.MaxTeamSize = "2" },
			path:   "maxTeamSize",
		},
		{
			name:   "unparsable date",
			mutate: func(d *Draft) { d.Timeline.EventEnd = "next friday" },
			path:   "eventTimeline.eventEnd",
			msg:    "Event end date must be a valid date and time.",
		},
		{
			name:   "unknown timezone",
			mutate: func(d *Draft) { d.Timeline.Timezone = "Mars/Olympus_Mons" },
			path:   "eventTimeline.timezone",
		},
		{
			name:   "negative rsvp deadline",
			mutate: func(d *Draft) { d.Timeline.RSVPDeadlineDays = "-1" },
			path:   "eventTimeline.rsvpDeadlineDays",
		},
		{
			name:   "contact email without at sign",
			mutate: func(d *Draft) { d.Links.ContactEmail = "team.hack.dev" },
			path:   "eventLinks.contactEmail",
		},
		{
			name:   "relative website url",
			mutate: func(d *Draft) { d.Links.WebsiteURL = "hack.dev" },
			path:   "eventLinks.websiteUrl",
			msg:    "Must be a valid URL.",
		},
		{
			name:   "brand color not hex",
			mutate: func(d *Draft) { d.Branding.BrandColor = "blue" },
			path:   "eventBranding.brandColor",
		},
		{
			name:   "track description without name",
			mutate: func(d *Draft) { d.Tracks[0].Description = "Build with AI" },
			path:   "tracks[0].name",
			msg:    "Track name is required if a track description is provided.",
		},
		{
			name:   "track name too short",
			mutate: func(d *Draft) { d.Tracks[0].Name = "AI" },
			path:   "tracks[0].name",
			msg:    "Track name must be at least 3 characters if provided.",
		},
		{
			name:   "track with prize but no name",
			mutate: func(d *Draft) { d.Tracks[0].Prizes[0].Title = "First place" },
			path:   "tracks[0].name",
			msg:    "Track name is required if the track has prizes.",
		},
		{
			name: "prize value without title",
			mutate: func(d *Draft) {
				d.Tracks[0].Name = "Open Track"
				d.Tracks[0].Prizes[0].Value = "500"
			},
			path: "tracks[0].prizes[0].title",
			msg:  "Prize title is required if description or value is provided.",
		},
		{
			name: "negative prize value",
			mutate: func(d *Draft) {
				d.Tracks[0].Name = "Open Track"
				d.Tracks[0].Prizes[0].Title = "Winner"
				d.Tracks[0].Prizes[0].Value = "-10"
			},
			path: "tracks[0].prizes[0].value",
		},
		{
			name:   "sponsor logo without name",
			mutate: func(d *Draft) { d.Sponsors[0].LogoURL = "https://cdn.hack.dev/acme.png" },
			path:   "sponsors[0].name",
			msg:    "Sponsor name is required if a sponsor logo or website URL is provided.",
		},
		{
			name:   "sponsor with unknown tier",
			mutate: func(d *Draft) { d.Sponsors[0].Name = "Acme"; d.Sponsors[0].Tier = "DIAMOND" },
			path:   "sponsors[0].tier",
		},
		{
			name:   "person bio without name",
			mutate: func(d *Draft) { d.People[0].Bio = "Judge extraordinaire" },
			path:   "eventPeople[0].name",
			msg:    "Event person name is required if details of an event person are provided.",
		},
		{
			name:   "person with unknown role",
			mutate: func(d *Draft) { d.People[0].Name = "Ada"; d.People[0].Role = "MENTOR" },
			path:   "eventPeople[0].role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			errs := Validate(d)

			require.Contains(t, errs, tt.path)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, errs[tt.path])
			}
		})
	}
}

func TestValidate_NumericFields(t *testing.T) {
	prize := func(value string) func(d *Draft) {
		return func(d *Draft) {
			d.Tracks[0].Name = "Open Track"
			d.Tracks[0].Prizes[0].Title = "Winner"
			d.Tracks[0].Prizes[0].Value = value
		}
	}
	tests := []struct {
		name   string
		mutate func(d *Draft)
		path   string
		msg    string
	}{
		{"prize value with currency", prize("500 USD"), "tracks[0].prizes[0].value", "Prize value must be a whole number."},
		{"fractional prize value", prize("1.5"), "tracks[0].prizes[0].value", "Prize value must be a whole number."},
		{"prize value with thousands separator", prize("1,000"), "tracks[0].prizes[0].value", "Prize value must be a whole number."},
		{"prize value above integer column", prize("2147483648"), "tracks[0].prizes[0].value", "Prize value must be at most 2147483647."},
		{"prize value beyond int64", prize("99999999999999999999"), "tracks[0].prizes[0].value", "Prize value must be at most 2147483647."},
		{"huge negative prize value", prize("-99999999999999999999"), "tracks[0].prizes[0].value", "Prize value must not be negative."},
		{"max participants as words", func(d *Draft) { d.MaxParticipants = "two hundred" }, "maxParticipants", "Maximum participants must be a whole number."},
		{"max participants above integer column", func(d *Draft) { d.MaxParticipants = "3000000000" }, "maxParticipants", "Maximum participants must be at most 2147483647."},
		{"min team size fractional", func(d *Draft) { d.MinTeamSize = "2.5" }, "minTeamSize", "Minimum team size must be a whole number."},
		{"rsvp deadline as words", func(d *Draft) { d.Timeline.RSVPDeadlineDays = "a week" }, "eventTimeline.rsvpDeadlineDays", "RSVP deadline days must be a whole number."},
		{"negative rsvp deadline", func(d *Draft) { d.Timeline.RSVPDeadlineDays = "-1" }, "eventTimeline.rsvpDeadlineDays", "RSVP deadline days must not be negative."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			errs := Validate(d)

			assert.Equal(t, map[string]string{tt.path: tt.msg}, map[string]string(errs))
		})
	}
}

func TestValidate_NumericBoundsAccepted(t *testing.T) {
	d := validDraft()
	d.MaxParticipants = " 2147483647 "
	d.MinTeamSize = "0"
	d.Tracks[0].Name = "Open Track"
	d.Tracks[0].Prizes[0].Title = "Winner"
	d.Tracks[0].Prizes[0].Value = "2147483647"

	errs := Validate(d)
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestValidate_IndexedPathsForLaterEntries(t *testing.T) {
	d := validDraft()
	d.Tracks[0].Name = "Open Track"
	d.AddTrack()
	_, err := d.AddPrize(1)
	require.NoError(t, err)
	d.Tracks[1].Name = "Climate"
	d.Tracks[1].Prizes[1].Description = "Runner up"

	errs := Validate(d)

	assert.Equal(t, []string{"tracks[1].prizes[1].title"}, errs.Paths())
}

func TestValidate_BlankEntriesAreIgnored(t *testing.T) {
	d := validDraft()
	d.AddTrack()
	d.AddSponsor()
	d.AddPerson()
	d.Tracks[1].Prizes[0].Value = "0"
	d.Tracks[1].Prizes[0].Title = "   "

	assert.True(t, Validate(d).Valid())
}

func TestValidate_ZeroValueNestedEntriesDoNotPanic(t *testing.T) {
	d := validDraft()
	d.Tracks = []TrackDraft{{}, {Prizes: []PrizeDraft{{}}}}
	d.Sponsors = []SponsorDraft{{}}
	d.People = []PersonDraft{{}}

	assert.NotPanics(t, func() {
		assert.True(t, Validate(d).Valid())
	})
}

func TestValidate_CaseInsensitiveEnums(t *testing.T) {
	d := validDraft()
	d.Type = "general_event"
	d.Sponsors[0].Name = "Acme"
	d.Sponsors[0].Tier = "platinum"
	d.People[0].Name = "Ada"
	d.People[0].Role = "speaker"

	assert.True(t, Validate(d).Valid())
}

func TestErrors_AsError(t *testing.T) {
	assert.NoError(t, Errors{}.AsError())

	err := Errors{"name": "Event name is required (minimum 3 characters)."}.AsError()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Event name is required (minimum 3 characters).", verr.Fields["name"])
}

func TestValidateInput_RejectsMissingServerSideRequirements(t *testing.T) {
	errs := ValidateInput(domain.EventInput{Name: "Hack"})

	assert.Contains(t, errs, "eventTimeline.eventStart")
	assert.Contains(t, errs, "eventLinks.contactEmail")
	assert.NotContains(t, errs, "name")
}
