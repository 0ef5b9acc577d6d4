package eventdraft

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hackhub/internal/domain"
)

// RSVPFallbackDays is used when rsvpDeadlineDays is blank or not a number.
const RSVPFallbackDays = 0

// Local layouts are interpreted in the caller's location; RFC 3339 input carries its own offset.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDateTime(raw string, loc *time.Location) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date-time %q", v)
}

// Normalize coerces a draft into the creation payload: numbers and dates are parsed, defaults are
// applied, blank optional strings become nil and array entries that are not present are dropped.
// Local date-times are read in loc (UTC when nil). Callers run Validate first; Normalize only
// fails when a required date-time cannot be parsed.
func Normalize(d *Draft, loc *time.Location) (domain.EventInput, error) {
	if loc == nil {
		loc = time.UTC
	}
	if d == nil {
		d = &Draft{}
	}

	in := domain.EventInput{
		Name:            strings.TrimSpace(d.Name),
		Type:            domain.EventType(upperOr(d.Type, DefaultEventType)),
		Tagline:         optionalString(d.Tagline),
		About:           optionalString(d.About),
		MaxParticipants: optionalInt(d.MaxParticipants),
		MinTeamSize:     optionalInt(d.MinTeamSize),
		MaxTeamSize:     optionalInt(d.MaxTeamSize),
		Links: domain.LinksInput{
			WebsiteURL:       optionalString(d.Links.WebsiteURL),
			MicrositeURL:     optionalString(d.Links.MicrositeURL),
			ContactEmail:     strings.TrimSpace(d.Links.ContactEmail),
			CodeOfConductURL: optionalString(d.Links.CodeOfConductURL),
		},
		Branding: domain.BrandingInput{
			BrandColor:    stringOr(d.Branding.BrandColor, DefaultBrandColor),
			LogoURL:       optionalString(d.Branding.LogoURL),
			FaviconURL:    optionalString(d.Branding.FaviconURL),
			CoverImageURL: optionalString(d.Branding.CoverImageURL),
		},
		Tracks:   []domain.TrackInput{},
		Sponsors: []domain.SponsorInput{},
		People:   []domain.PersonInput{},
	}

	timeline, err := normalizeTimeline(d.Timeline, loc)
	if err != nil {
		return domain.EventInput{}, err
	}
	in.Timeline = timeline

	for _, t := range d.Tracks {
		if !trackPresent(t) {
			continue
		}
		track := domain.TrackInput{
			Name:        strings.TrimSpace(t.Name),
			Description: optionalString(t.Description),
			Prizes:      []domain.PrizeInput{},
		}
		for _, p := range t.Prizes {
			if !prizePresent(p) {
				continue
			}
			value, _ := parseInt(p.Value)
			track.Prizes = append(track.Prizes, domain.PrizeInput{
				Title:       strings.TrimSpace(p.Title),
				Description: optionalString(p.Description),
				Value:       value,
			})
		}
		in.Tracks = append(in.Tracks, track)
	}
	for _, s := range d.Sponsors {
		if !sponsorPresent(s) {
			continue
		}
		in.Sponsors = append(in.Sponsors, domain.SponsorInput{
			Name:       strings.TrimSpace(s.Name),
			LogoURL:    optionalString(s.LogoURL),
			WebsiteURL: optionalString(s.WebsiteURL),
			Tier:       domain.SponsorTier(upperOr(s.Tier, DefaultSponsorTier)),
		})
	}
	for _, p := range d.People {
		if !personPresent(p) {
			continue
		}
		in.People = append(in.People, domain.PersonInput{
			Name:        strings.TrimSpace(p.Name),
			Role:        domain.PersonRole(upperOr(p.Role, DefaultPersonRole)),
			Bio:         optionalString(p.Bio),
			ImageURL:    optionalString(p.ImageURL),
			LinkedinURL: optionalString(p.LinkedinURL),
		})
	}
	return in, nil
}

func normalizeTimeline(t TimelineDraft, loc *time.Location) (domain.TimelineInput, error) {
	out := domain.TimelineInput{Timezone: stringOr(t.Timezone, DefaultTimezone)}
	targets := []*time.Time{&out.EventStart, &out.EventEnd, &out.ApplicationsStart, &out.ApplicationsEnd}
	for i, f := range timelineFields {
		parsed, err := parseDateTime(f.value(t), loc)
		if err != nil {
			return domain.TimelineInput{}, fmt.Errorf("%s: %w", f.path, err)
		}
		*targets[i] = parsed
	}
	if n, ok := parseInt(t.RSVPDeadlineDays); ok {
		out.RSVPDeadlineDays = n
	} else {
		out.RSVPDeadlineDays = RSVPFallbackDays
	}
	return out, nil
}

// FromInput turns a decoded payload back into a draft so that it can be checked by Validate.
// Zero times become blank strings.
func FromInput(in domain.EventInput) *Draft {
	d := &Draft{
		Name:            in.Name,
		Type:            string(in.Type),
		Tagline:         deref(in.Tagline),
		About:           deref(in.About),
		MaxParticipants: formatInt(in.MaxParticipants),
		MinTeamSize:     formatInt(in.MinTeamSize),
		MaxTeamSize:     formatInt(in.MaxTeamSize),
		Timeline: TimelineDraft{
			EventStart:        formatTime(in.Timeline.EventStart),
			EventEnd:          formatTime(in.Timeline.EventEnd),
			ApplicationsStart: formatTime(in.Timeline.ApplicationsStart),
			ApplicationsEnd:   formatTime(in.Timeline.ApplicationsEnd),
			Timezone:          in.Timeline.Timezone,
			RSVPDeadlineDays:  strconv.Itoa(in.Timeline.RSVPDeadlineDays),
		},
		Links: LinksDraft{
			WebsiteURL:       deref(in.Links.WebsiteURL),
			MicrositeURL:     deref(in.Links.MicrositeURL),
			ContactEmail:     in.Links.ContactEmail,
			CodeOfConductURL: deref(in.Links.CodeOfConductURL),
		},
		Branding: BrandingDraft{
			BrandColor:    in.Branding.BrandColor,
			LogoURL:       deref(in.Branding.LogoURL),
			FaviconURL:    deref(in.Branding.FaviconURL),
			CoverImageURL: deref(in.Branding.CoverImageURL),
		},
	}
	for _, t := range in.Tracks {
		track := TrackDraft{Name: t.Name, Description: deref(t.Description)}
		for _, p := range t.Prizes {
			track.Prizes = append(track.Prizes, PrizeDraft{
				Title:       p.Title,
				Description: deref(p.Description),
				Value:       strconv.Itoa(p.Value),
			})
		}
		d.Tracks = append(d.Tracks, track)
	}
	for _, s := range in.Sponsors {
		d.Sponsors = append(d.Sponsors, SponsorDraft{
			Name:       s.Name,
			LogoURL:    deref(s.LogoURL),
			WebsiteURL: deref(s.WebsiteURL),
			Tier:       string(s.Tier),
		})
	}
	for _, p := range in.People {
		d.People = append(d.People, PersonDraft{
			Name:        p.Name,
			Role:        string(p.Role),
			Bio:         deref(p.Bio),
			ImageURL:    deref(p.ImageURL),
			LinkedinURL: deref(p.LinkedinURL),
		})
	}
	return d
}

func optionalString(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

func optionalInt(raw string) *int {
	n, ok := parseInt(raw)
	if !ok {
		return nil
	}
	return &n
}

func stringOr(raw, fallback string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return fallback
}

func upperOr(raw, fallback string) string {
	return strings.ToUpper(stringOr(raw, fallback))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
