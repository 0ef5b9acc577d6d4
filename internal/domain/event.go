package domain

import (
	"context"
	"time"
)

// EventType is the kind of event being organized.
type EventType string

const (
	EventTypeHackathon    EventType = "HACKATHON"
	EventTypeGeneralEvent EventType = "GENERAL_EVENT"
)

// EventStatus is the lifecycle state of an event. New events always start as drafts.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
)

// SponsorTier ranks sponsors on the event page.
type SponsorTier string

const (
	SponsorTierPlatinum  SponsorTier = "PLATINUM"
	SponsorTierGold      SponsorTier = "GOLD"
	SponsorTierSilver    SponsorTier = "SILVER"
	SponsorTierBronze    SponsorTier = "BRONZE"
	SponsorTierCommunity SponsorTier = "COMMUNITY"
)

// PersonRole is the role of a featured person at an event.
type PersonRole string

const (
	PersonRoleJudge   PersonRole = "JUDGE"
	PersonRoleSpeaker PersonRole = "SPEAKER"
)

// Event is the persisted event aggregate: the event row plus its one-to-one timeline, links and
// branding and its one-to-many tracks (with prizes), sponsors and people.
// swagger:model Event
type Event struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Type            EventType   `json:"type"`
	Tagline         *string     `json:"tagline"`
	About           *string     `json:"about"`
	MaxParticipants *int        `json:"maxParticipants"`
	MinTeamSize     *int        `json:"minTeamSize"`
	MaxTeamSize     *int        `json:"maxTeamSize"`
	Status          EventStatus `json:"status"`
	OwnerID         string      `json:"ownerId"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`

	Timeline *Timeline  `json:"eventTimeline"`
	Links    *Links     `json:"eventLinks"`
	Branding *Branding  `json:"eventBranding"`
	Tracks   []*Track   `json:"tracks"`
	Sponsors []*Sponsor `json:"sponsors"`
	People   []*Person  `json:"eventPeople"`
}

// Timeline holds the key dates of an event. All instants are stored in UTC.
type Timeline struct {
	ID                string    `json:"id"`
	EventID           string    `json:"eventId"`
	EventStart        time.Time `json:"eventStart"`
	EventEnd          time.Time `json:"eventEnd"`
	ApplicationsStart time.Time `json:"applicationsStart"`
	ApplicationsEnd   time.Time `json:"applicationsEnd"`
	Timezone          string    `json:"timezone"`
	RSVPDeadlineDays  int       `json:"rsvpDeadlineDays"`
}

// Links holds the external links and contact address of an event.
type Links struct {
	ID               string  `json:"id"`
	EventID          string  `json:"eventId"`
	WebsiteURL       *string `json:"websiteUrl"`
	MicrositeURL     *string `json:"micrositeUrl"`
	ContactEmail     string  `json:"contactEmail"`
	CodeOfConductURL *string `json:"codeOfConductUrl"`
}

// Branding holds the visual identity of an event.
type Branding struct {
	ID            string  `json:"id"`
	EventID       string  `json:"eventId"`
	BrandColor    string  `json:"brandColor"`
	LogoURL       *string `json:"logoUrl"`
	FaviconURL    *string `json:"faviconUrl"`
	CoverImageURL *string `json:"coverImageUrl"`
}

// Track is a competition track; it owns its prizes.
type Track struct {
	ID          string   `json:"id"`
	EventID     string   `json:"eventId"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Position    int      `json:"position"`
	Prizes      []*Prize `json:"prizes"`
}

// Prize belongs to a track and, through it, to an event.
type Prize struct {
	ID          string  `json:"id"`
	TrackID     string  `json:"trackId"`
	EventID     string  `json:"eventId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Value       int     `json:"value"`
	Position    int     `json:"position"`
}

// Sponsor is an event sponsor.
type Sponsor struct {
	ID         string      `json:"id"`
	EventID    string      `json:"eventId"`
	Name       string      `json:"name"`
	LogoURL    *string     `json:"logoUrl"`
	WebsiteURL *string     `json:"websiteUrl"`
	Tier       SponsorTier `json:"tier"`
	Position   int         `json:"position"`
}

// Person is a judge or speaker featured on the event page.
type Person struct {
	ID          string     `json:"id"`
	EventID     string     `json:"eventId"`
	Name        string     `json:"name"`
	Role        PersonRole `json:"role"`
	Bio         *string    `json:"bio"`
	ImageURL    *string    `json:"imageUrl"`
	LinkedinURL *string    `json:"linkedinUrl"`
	Position    int        `json:"position"`
}

// EventInput is the normalized creation payload accepted by POST /api/events.
// It is produced by the event draft builder and re-validated by the server.
// swagger:model EventInput
type EventInput struct {
	Name            string         `json:"name"`
	Type            EventType      `json:"type"`
	Tagline         *string        `json:"tagline"`
	About           *string        `json:"about"`
	MaxParticipants *int           `json:"maxParticipants"`
	MinTeamSize     *int           `json:"minTeamSize"`
	MaxTeamSize     *int           `json:"maxTeamSize"`
	Timeline        TimelineInput  `json:"eventTimeline"`
	Links           LinksInput     `json:"eventLinks"`
	Branding        BrandingInput  `json:"eventBranding"`
	Tracks          []TrackInput   `json:"tracks"`
	Sponsors        []SponsorInput `json:"sponsors"`
	People          []PersonInput  `json:"eventPeople"`
}

// TimelineInput is the timeline section of EventInput.
type TimelineInput struct {
	EventStart        time.Time `json:"eventStart"`
	EventEnd          time.Time `json:"eventEnd"`
	ApplicationsStart time.Time `json:"applicationsStart"`
	ApplicationsEnd   time.Time `json:"applicationsEnd"`
	Timezone          string    `json:"timezone"`
	RSVPDeadlineDays  int       `json:"rsvpDeadlineDays"`
}

// LinksInput is the links section of EventInput.
type LinksInput struct {
	WebsiteURL       *string `json:"websiteUrl"`
	MicrositeURL     *string `json:"micrositeUrl"`
	ContactEmail     string  `json:"contactEmail"`
	CodeOfConductURL *string `json:"codeOfConductUrl"`
}

// BrandingInput is the branding section of EventInput.
type BrandingInput struct {
	BrandColor    string  `json:"brandColor"`
	LogoURL       *string `json:"logoUrl"`
	FaviconURL    *string `json:"faviconUrl"`
	CoverImageURL *string `json:"coverImageUrl"`
}

// TrackInput is a track with its prizes, in submission order.
type TrackInput struct {
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Prizes      []PrizeInput `json:"prizes"`
}

// PrizeInput is a prize inside a TrackInput.
type PrizeInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Value       int     `json:"value"`
}

// SponsorInput is a sponsor in submission order.
type SponsorInput struct {
	Name       string      `json:"name"`
	LogoURL    *string     `json:"logoUrl"`
	WebsiteURL *string     `json:"websiteUrl"`
	Tier       SponsorTier `json:"tier"`
}

// PersonInput is a featured person in submission order.
type PersonInput struct {
	Name        string     `json:"name"`
	Role        PersonRole `json:"role"`
	Bio         *string    `json:"bio"`
	ImageURL    *string    `json:"imageUrl"`
	LinkedinURL *string    `json:"linkedinUrl"`
}

// NewEvent builds an unsaved DRAFT event aggregate owned by ownerID from a normalized input.
// IDs are set by the repository on create.
func NewEvent(ownerID string, in EventInput, createdAt, updatedAt time.Time) *Event {
	e := &Event{
		Name:            in.Name,
		Type:            in.Type,
		Tagline:         in.Tagline,
		About:           in.About,
		MaxParticipants: in.MaxParticipants,
		MinTeamSize:     in.MinTeamSize,
		MaxTeamSize:     in.MaxTeamSize,
		Status:          EventStatusDraft,
		OwnerID:         ownerID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		Timeline: &Timeline{
			EventStart:        in.Timeline.EventStart.UTC(),
			EventEnd:          in.Timeline.EventEnd.UTC(),
			ApplicationsStart: in.Timeline.ApplicationsStart.UTC(),
			ApplicationsEnd:   in.Timeline.ApplicationsEnd.UTC(),
			Timezone:          in.Timeline.Timezone,
			RSVPDeadlineDays:  in.Timeline.RSVPDeadlineDays,
		},
		Links: &Links{
			WebsiteURL:       in.Links.WebsiteURL,
			MicrositeURL:     in.Links.MicrositeURL,
			ContactEmail:     in.Links.ContactEmail,
			CodeOfConductURL: in.Links.CodeOfConductURL,
		},
		Branding: &Branding{
			BrandColor:    in.Branding.BrandColor,
			LogoURL:       in.Branding.LogoURL,
			FaviconURL:    in.Branding.FaviconURL,
			CoverImageURL: in.Branding.CoverImageURL,
		},
		Tracks:   make([]*Track, 0, len(in.Tracks)),
		Sponsors: make([]*Sponsor, 0, len(in.Sponsors)),
		People:   make([]*Person, 0, len(in.People)),
	}
	for i, t := range in.Tracks {
		track := &Track{Name: t.Name, Description: t.Description, Position: i, Prizes: make([]*Prize, 0, len(t.Prizes))}
		for j, p := range t.Prizes {
			track.Prizes = append(track.Prizes, &Prize{Title: p.Title, Description: p.Description, Value: p.Value, Position: j})
		}
		e.Tracks = append(e.Tracks, track)
	}
	for i, s := range in.Sponsors {
		e.Sponsors = append(e.Sponsors, &Sponsor{Name: s.Name, LogoURL: s.LogoURL, WebsiteURL: s.WebsiteURL, Tier: s.Tier, Position: i})
	}
	for i, p := range in.People {
		e.People = append(e.People, &Person{Name: p.Name, Role: p.Role, Bio: p.Bio, ImageURL: p.ImageURL, LinkedinURL: p.LinkedinURL, Position: i})
	}
	return e
}

// EventRepository defines the interface for event aggregate storage.
type EventRepository interface {
	// CreateAggregate persists the event and every dependent row in one transaction and fills in
	// the generated IDs. On error nothing is persisted.
	CreateAggregate(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}

// EventService defines the business logic for creating and reading events.
type EventService interface {
	CreateEvent(ctx context.Context, ownerID string, input EventInput) (*Event, error)
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
}
