package eventdraft

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"hackhub/internal/domain"
)

const (
	minNameLength = 3
	// maxCount is the largest value a Postgres INTEGER column holds.
	maxCount = math.MaxInt32
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Errors maps a field path such as "tracks[1].prizes[0].title" to a human-readable message.
// An empty map means the draft is valid.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }

// Paths returns the failing field paths in sorted order.
func (e Errors) Paths() []string {
	paths := make([]string, 0, len(e))
	for p := range e {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// AsError converts the map into a *domain.ValidationError, or nil when valid.
func (e Errors) AsError() error {
	if e.Valid() {
		return nil
	}
	fields := make(map[string]string, len(e))
	for k, v := range e {
		fields[k] = v
	}
	return &domain.ValidationError{Fields: fields}
}

type timelineField struct {
	path  string
	label string
	value func(TimelineDraft) string
}

var timelineFields = []timelineField{
	{"eventTimeline.eventStart", "Event start date", func(t TimelineDraft) string { return t.EventStart }},
	{"eventTimeline.eventEnd", "Event end date", func(t TimelineDraft) string { return t.EventEnd }},
	{"eventTimeline.applicationsStart", "Applications start date", func(t TimelineDraft) string { return t.ApplicationsStart }},
	{"eventTimeline.applicationsEnd", "Applications end date", func(t TimelineDraft) string { return t.ApplicationsEnd }},
}

// Validate checks the whole draft in one pass and returns every failing field.
// It never panics on a zero Draft or nil slices.
func Validate(d *Draft) Errors {
	errs := Errors{}
	if d == nil {
		d = &Draft{}
	}

	if utf8.RuneCountInString(strings.TrimSpace(d.Name)) < minNameLength {
		errs["name"] = "Event name is required (minimum 3 characters)."
	}
	if t := strings.TrimSpace(d.Type); t != "" && validate.Var(strings.ToUpper(t), "oneof=HACKATHON GENERAL_EVENT") != nil {
		errs["type"] = "Event type must be HACKATHON or GENERAL_EVENT."
	}
	checkCount(errs, "maxParticipants", "Maximum participants", d.MaxParticipants)
	checkCount(errs, "minTeamSize", "Minimum team size", d.MinTeamSize)
	checkCount(errs, "maxTeamSize", "Maximum team size", d.MaxTeamSize)
	if lo, ok := parseInt(d.MinTeamSize); ok {
		if hi, ok := parseInt(d.MaxTeamSize); ok && lo >= 0 && hi >= 0 && hi < lo {
			errs["maxTeamSize"] = "Maximum team size must not be less than the minimum team size."
		}
	}

	validateTimeline(errs, d.Timeline)
	validateLinks(errs, d.Links)
	validateBranding(errs, d.Branding)

	for i, t := range d.Tracks {
		validateTrack(errs, fmt.Sprintf("tracks[%d]", i), t)
	}
	for i, s := range d.Sponsors {
		validateSponsor(errs, fmt.Sprintf("sponsors[%d]", i), s)
	}
	for i, p := range d.People {
		validatePerson(errs, fmt.Sprintf("eventPeople[%d]", i), p)
	}
	return errs
}

// ValidateInput runs Validate over an already decoded creation payload.
func ValidateInput(in domain.EventInput) Errors {
	return Validate(FromInput(in))
}

func validateTimeline(errs Errors, t TimelineDraft) {
	for _, f := range timelineFields {
		v := strings.TrimSpace(f.value(t))
		if v == "" {
			errs[f.path] = f.label + " is required."
			continue
		}
		if _, err := parseDateTime(v, time.UTC); err != nil {
			errs[f.path] = f.label + " must be a valid date and time."
		}
	}
	if tz := strings.TrimSpace(t.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			errs["eventTimeline.timezone"] = "Timezone must be a valid IANA time zone name."
		}
	}
	checkCount(errs, "eventTimeline.rsvpDeadlineDays", "RSVP deadline days", t.RSVPDeadlineDays)
}

func validateLinks(errs Errors, l LinksDraft) {
	if !strings.Contains(strings.TrimSpace(l.ContactEmail), "@") {
		errs["eventLinks.contactEmail"] = "Contact email is required and must be a valid email address."
	}
	checkURL(errs, "eventLinks.websiteUrl", l.WebsiteURL)
	checkURL(errs, "eventLinks.micrositeUrl", l.MicrositeURL)
	checkURL(errs, "eventLinks.codeOfConductUrl", l.CodeOfConductURL)
}

func validateBranding(errs Errors, b BrandingDraft) {
	if c := strings.TrimSpace(b.BrandColor); c != "" && validate.Var(c, "hexcolor") != nil {
		errs["eventBranding.brandColor"] = "Brand color must be a hex color such as #1A2B3C."
	}
	checkURL(errs, "eventBranding.logoUrl", b.LogoURL)
	checkURL(errs, "eventBranding.faviconUrl", b.FaviconURL)
	checkURL(errs, "eventBranding.coverImageUrl", b.CoverImageURL)
}

func validateTrack(errs Errors, path string, t TrackDraft) {
	name := strings.TrimSpace(t.Name)
	hasPrize := false
	for j, p := range t.Prizes {
		ppath := fmt.Sprintf("%s.prizes[%d]", path, j)
		checkCount(errs, ppath+".value", "Prize value", p.Value)
		if !prizePresent(p) {
			continue
		}
		hasPrize = true
		if strings.TrimSpace(p.Title) == "" {
			errs[ppath+".title"] = "Prize title is required if description or value is provided."
		}
	}

	switch {
	case name != "" && utf8.RuneCountInString(name) < minNameLength:
		errs[path+".name"] = "Track name must be at least 3 characters if provided."
	case name == "" && strings.TrimSpace(t.Description) != "":
		errs[path+".name"] = "Track name is required if a track description is provided."
	case name == "" && hasPrize:
		errs[path+".name"] = "Track name is required if the track has prizes."
	}
}

func validateSponsor(errs Errors, path string, s SponsorDraft) {
	if !sponsorPresent(s) {
		return
	}
	if strings.TrimSpace(s.Name) == "" {
		errs[path+".name"] = "Sponsor name is required if a sponsor logo or website URL is provided."
	}
	checkURL(errs, path+".logoUrl", s.LogoURL)
	checkURL(errs, path+".websiteUrl", s.WebsiteURL)
	if tier := strings.TrimSpace(s.Tier); tier != "" && validate.Var(strings.ToUpper(tier), "oneof=PLATINUM GOLD SILVER BRONZE COMMUNITY") != nil {
		errs[path+".tier"] = "Sponsor tier must be one of PLATINUM, GOLD, SILVER, BRONZE or COMMUNITY."
	}
}

func validatePerson(errs Errors, path string, p PersonDraft) {
	if !personPresent(p) {
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		errs[path+".name"] = "Event person name is required if details of an event person are provided."
	}
	checkURL(errs, path+".imageUrl", p.ImageURL)
	checkURL(errs, path+".linkedinUrl", p.LinkedinURL)
	if role := strings.TrimSpace(p.Role); role != "" && validate.Var(strings.ToUpper(role), "oneof=JUDGE SPEAKER") != nil {
		errs[path+".role"] = "Role must be JUDGE or SPEAKER."
	}
}

// checkCount accepts a blank value or a whole number from 0 to maxCount.
func checkCount(errs Errors, path, label, raw string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	switch {
	case errors.Is(err, strconv.ErrRange) && strings.HasPrefix(v, "-"):
		errs[path] = label + " must not be negative."
	case errors.Is(err, strconv.ErrRange):
		errs[path] = fmt.Sprintf("%s must be at most %d.", label, maxCount)
	case err != nil:
		errs[path] = label + " must be a whole number."
	case n < 0:
		errs[path] = label + " must not be negative."
	case n > maxCount:
		errs[path] = fmt.Sprintf("%s must be at most %d.", label, maxCount)
	}
}

func checkURL(errs Errors, path, raw string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	if validate.Var(v, "url") != nil {
		errs[path] = "Must be a valid URL."
	}
}

func prizePresent(p PrizeDraft) bool {
	if strings.TrimSpace(p.Title) != "" || strings.TrimSpace(p.Description) != "" {
		return true
	}
	n, ok := parseInt(p.Value)
	return ok && n != 0
}

func trackPresent(t TrackDraft) bool {
	if strings.TrimSpace(t.Name) != "" || strings.TrimSpace(t.Description) != "" {
		return true
	}
	for _, p := range t.Prizes {
		if prizePresent(p) {
			return true
		}
	}
	return false
}

func sponsorPresent(s SponsorDraft) bool {
	return strings.TrimSpace(s.Name) != "" ||
		strings.TrimSpace(s.LogoURL) != "" ||
		strings.TrimSpace(s.WebsiteURL) != ""
}

func personPresent(p PersonDraft) bool {
	return strings.TrimSpace(p.Name) != "" ||
		strings.TrimSpace(p.Bio) != "" ||
		strings.TrimSpace(p.ImageURL) != "" ||
		strings.TrimSpace(p.LinkedinURL) != ""
}

// parseInt reads a base-10 integer; ok is false for blank or unparsable input. Validate has
// already rejected unparsable values, so callers past validation only see blanks as !ok.
func parseInt(raw string) (int, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
