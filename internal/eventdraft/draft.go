// Package eventdraft holds the event draft builder: the in-progress, form-shaped description of
// an event, the canonical validator shared by every entry point (client and server), the
// normalization that turns a draft into a domain.EventInput, and a submitter that sends it.
package eventdraft

import (
	"errors"
	"slices"

	"github.com/google/uuid"
)

// Form defaults for a new draft.
const (
	DefaultEventType        = "HACKATHON"
	DefaultTimezone         = "UTC"
	DefaultRSVPDeadlineDays = "7"
	DefaultBrandColor       = "#000000"
	DefaultMinTeamSize      = "1"
	DefaultMaxTeamSize      = "4"
	DefaultSponsorTier      = "GOLD"
	DefaultPersonRole       = "JUDGE"
	DefaultPrizeValue       = "0"
)

// ErrIndexOutOfRange is returned by array edits that address a missing element.
var ErrIndexOutOfRange = errors.New("index out of range")

// Draft is the event description as typed into the creation form. Every field is kept as the
// raw string the user entered; nothing is coerced until Normalize.
type Draft struct {
	// SessionKey identifies this draft across submit attempts and is sent as the idempotency key.
	SessionKey string `json:"sessionKey"`

	Name            string `json:"name"`
	Type            string `json:"type"`
	Tagline         string `json:"tagline"`
	About           string `json:"about"`
	MaxParticipants string `json:"maxParticipants"`
	MinTeamSize     string `json:"minTeamSize"`
	MaxTeamSize     string `json:"maxTeamSize"`

	Timeline TimelineDraft  `json:"eventTimeline"`
	Links    LinksDraft     `json:"eventLinks"`
	Branding BrandingDraft  `json:"eventBranding"`
	Tracks   []TrackDraft   `json:"tracks"`
	Sponsors []SponsorDraft `json:"sponsors"`
	People   []PersonDraft  `json:"eventPeople"`
}

type TimelineDraft struct {
	EventStart        string `json:"eventStart"`
	EventEnd          string `json:"eventEnd"`
	ApplicationsStart string `json:"applicationsStart"`
	ApplicationsEnd   string `json:"applicationsEnd"`
	Timezone          string `json:"timezone"`
	RSVPDeadlineDays  string `json:"rsvpDeadlineDays"`
}

type LinksDraft struct {
	WebsiteURL       string `json:"websiteUrl"`
	MicrositeURL     string `json:"micrositeUrl"`
	ContactEmail     string `json:"contactEmail"`
	CodeOfConductURL string `json:"codeOfConductUrl"`
}

type BrandingDraft struct {
	BrandColor    string `json:"brandColor"`
	LogoURL       string `json:"logoUrl"`
	FaviconURL    string `json:"faviconUrl"`
	CoverImageURL string `json:"coverImageUrl"`
}

type TrackDraft struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Prizes      []PrizeDraft `json:"prizes"`
}

type PrizeDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

type SponsorDraft struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl"`
	WebsiteURL string `json:"websiteUrl"`
	Tier       string `json:"tier"`
}

type PersonDraft struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	ImageURL    string `json:"imageUrl"`
	LinkedinURL string `json:"linkedinUrl"`
}

// New returns a draft initialized with the form defaults: one blank track holding one blank
// prize, one blank sponsor and one blank person.
func New() *Draft {
	return &Draft{
		SessionKey:  uuid.NewString(),
		Type:        DefaultEventType,
		MinTeamSize: DefaultMinTeamSize,
		MaxTeamSize: DefaultMaxTeamSize,
		Timeline: TimelineDraft{
			Timezone:         DefaultTimezone,
			RSVPDeadlineDays: DefaultRSVPDeadlineDays,
		},
		Branding: BrandingDraft{BrandColor: DefaultBrandColor},
		Tracks:   []TrackDraft{newTrack()},
		Sponsors: []SponsorDraft{newSponsor()},
		People:   []PersonDraft{newPerson()},
	}
}

func newTrack() TrackDraft {
	return TrackDraft{Prizes: []PrizeDraft{newPrize()}}
}

func newPrize() PrizeDraft {
	return PrizeDraft{Value: DefaultPrizeValue}
}

func newSponsor() SponsorDraft {
	return SponsorDraft{Tier: DefaultSponsorTier}
}

func newPerson() PersonDraft {
	return PersonDraft{Role: DefaultPersonRole}
}

// AddTrack appends a blank track with one blank prize and returns its index.
func (d *Draft) AddTrack() int {
	d.Tracks = append(d.Tracks, newTrack())
	return len(d.Tracks) - 1
}

// RemoveTrack removes the track at i, shifting later tracks down.
func (d *Draft) RemoveTrack(i int) error {
	return removeAt(&d.Tracks, i)
}

// UpdateTrack applies fn to the track at i.
func (d *Draft) UpdateTrack(i int, fn func(*TrackDraft)) error {
	return updateAt(d.Tracks, i, fn)
}

// AddPrize appends a blank prize to track t and returns its index.
func (d *Draft) AddPrize(t int) (int, error) {
	if t < 0 || t >= len(d.Tracks) {
		return 0, ErrIndexOutOfRange
	}
	d.Tracks[t].Prizes = append(d.Tracks[t].Prizes, newPrize())
	return len(d.Tracks[t].Prizes) - 1, nil
}

// RemovePrize removes prize p from track t.
func (d *Draft) RemovePrize(t, p int) error {
	if t < 0 || t >= len(d.Tracks) {
		return ErrIndexOutOfRange
	}
	return removeAt(&d.Tracks[t].Prizes, p)
}

// UpdatePrize applies fn to prize p of track t.
func (d *Draft) UpdatePrize(t, p int, fn func(*PrizeDraft)) error {
	if t < 0 || t >= len(d.Tracks) {
		return ErrIndexOutOfRange
	}
	return updateAt(d.Tracks[t].Prizes, p, fn)
}

// AddSponsor appends a blank GOLD sponsor and returns its index.
func (d *Draft) AddSponsor() int {
	d.Sponsors = append(d.Sponsors, newSponsor())
	return len(d.Sponsors) - 1
}

func (d *Draft) RemoveSponsor(i int) error {
	return removeAt(&d.Sponsors, i)
}

func (d *Draft) UpdateSponsor(i int, fn func(*SponsorDraft)) error {
	return updateAt(d.Sponsors, i, fn)
}

// AddPerson appends a blank JUDGE and returns its index.
func (d *Draft) AddPerson() int {
	d.People = append(d.People, newPerson())
	return len(d.People) - 1
}

func (d *Draft) RemovePerson(i int) error {
	return removeAt(&d.People, i)
}

func (d *Draft) UpdatePerson(i int, fn func(*PersonDraft)) error {
	return updateAt(d.People, i, fn)
}

func removeAt[T any](s *[]T, i int) error {
	if i < 0 || i >= len(*s) {
		return ErrIndexOutOfRange
	}
	*s = slices.Delete(*s, i, i+1)
	return nil
}

func updateAt[T any](s []T, i int, fn func(*T)) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	fn(&s[i])
	return nil
}
