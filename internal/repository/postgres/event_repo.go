package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"hackhub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// CreateAggregate inserts the event and all of its dependent rows in one transaction.
// Tracks and their prizes are written one after another on the transaction's connection.
func (r *eventRepository) CreateAggregate(ctx context.Context, e *domain.Event) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertEvent(ctx, tx, e); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if e.Timeline != nil {
		if err = insertTimeline(ctx, tx, e.ID, e.Timeline); err != nil {
			return fmt.Errorf("insert timeline: %w", err)
		}
	}
	if e.Links != nil {
		if err = insertLinks(ctx, tx, e.ID, e.Links); err != nil {
			return fmt.Errorf("insert links: %w", err)
		}
	}
	if e.Branding != nil {
		if err = insertBranding(ctx, tx, e.ID, e.Branding); err != nil {
			return fmt.Errorf("insert branding: %w", err)
		}
	}
	for _, t := range e.Tracks {
		if err = insertTrack(ctx, tx, e.ID, t); err != nil {
			return fmt.Errorf("insert track %q: %w", t.Name, err)
		}
		for _, p := range t.Prizes {
			if err = insertPrize(ctx, tx, e.ID, t.ID, p); err != nil {
				return fmt.Errorf("insert prize %q: %w", p.Title, err)
			}
		}
	}
	if err = insertSponsors(ctx, tx, e.ID, e.Sponsors); err != nil {
		return fmt.Errorf("insert sponsors: %w", err)
	}
	if err = insertPeople(ctx, tx, e.ID, e.People); err != nil {
		return fmt.Errorf("insert people: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertEvent(ctx context.Context, tx *sql.Tx, e *domain.Event) error {
	query := `
		INSERT INTO events (name, type, tagline, about, max_participants, min_team_size, max_team_size, status, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return tx.QueryRowContext(ctx, query,
		e.Name, string(e.Type), e.Tagline, e.About, e.MaxParticipants, e.MinTeamSize, e.MaxTeamSize,
		string(e.Status), e.OwnerID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func insertTimeline(ctx context.Context, tx *sql.Tx, eventID string, t *domain.Timeline) error {
	query := `
		INSERT INTO event_timelines (event_id, event_start, event_end, applications_start, applications_end, timezone, rsvp_deadline_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	t.EventID = eventID
	return tx.QueryRowContext(ctx, query,
		eventID, t.EventStart, t.EventEnd, t.ApplicationsStart, t.ApplicationsEnd, t.Timezone, t.RSVPDeadlineDays,
	).Scan(&t.ID)
}

func insertLinks(ctx context.Context, tx *sql.Tx, eventID string, l *domain.Links) error {
	query := `
		INSERT INTO event_links (event_id, website_url, microsite_url, contact_email, code_of_conduct_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	l.EventID = eventID
	return tx.QueryRowContext(ctx, query,
		eventID, l.WebsiteURL, l.MicrositeURL, l.ContactEmail, l.CodeOfConductURL,
	).Scan(&l.ID)
}

func insertBranding(ctx context.Context, tx *sql.Tx, eventID string, b *domain.Branding) error {
	query := `
		INSERT INTO event_brandings (event_id, brand_color, logo_url, favicon_url, cover_image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	b.EventID = eventID
	return tx.QueryRowContext(ctx, query,
		eventID, b.BrandColor, b.LogoURL, b.FaviconURL, b.CoverImageURL,
	).Scan(&b.ID)
}

func insertTrack(ctx context.Context, tx *sql.Tx, eventID string, t *domain.Track) error {
	query := `
		INSERT INTO tracks (event_id, name, description, position)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	t.EventID = eventID
	return tx.QueryRowContext(ctx, query, eventID, t.Name, t.Description, t.Position).Scan(&t.ID)
}

func insertPrize(ctx context.Context, tx *sql.Tx, eventID, trackID string, p *domain.Prize) error {
	query := `
		INSERT INTO prizes (track_id, event_id, title, description, value, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	p.EventID = eventID
	p.TrackID = trackID
	return tx.QueryRowContext(ctx, query, trackID, eventID, p.Title, p.Description, p.Value, p.Position).Scan(&p.ID)
}

func insertSponsors(ctx context.Context, tx *sql.Tx, eventID string, sponsors []*domain.Sponsor) error {
	if len(sponsors) == 0 {
		return nil
	}
	columns := []string{"event_id", "name", "logo_url", "website_url", "tier", "position"}
	args := make([]any, 0, len(sponsors)*len(columns))
	byPosition := make(map[int]*domain.Sponsor, len(sponsors))
	for _, s := range sponsors {
		s.EventID = eventID
		byPosition[s.Position] = s
		args = append(args, eventID, s.Name, s.LogoURL, s.WebsiteURL, string(s.Tier), s.Position)
	}
	return insertReturningIDs(ctx, tx, "sponsors", columns, args, func(position int, id string) {
		if s, ok := byPosition[position]; ok {
			s.ID = id
		}
	})
}

func insertPeople(ctx context.Context, tx *sql.Tx, eventID string, people []*domain.Person) error {
	if len(people) == 0 {
		return nil
	}
	columns := []string{"event_id", "name", "role", "bio", "image_url", "linkedin_url", "position"}
	args := make([]any, 0, len(people)*len(columns))
	byPosition := make(map[int]*domain.Person, len(people))
	for _, p := range people {
		p.EventID = eventID
		byPosition[p.Position] = p
		args = append(args, eventID, p.Name, string(p.Role), p.Bio, p.ImageURL, p.LinkedinURL, p.Position)
	}
	return insertReturningIDs(ctx, tx, "event_people", columns, args, func(position int, id string) {
		if p, ok := byPosition[position]; ok {
			p.ID = id
		}
	})
}

// insertReturningIDs runs one multi-row INSERT and hands each generated id to assign together
// with the row's position.
func insertReturningIDs(ctx context.Context, tx *sql.Tx, table string, columns []string, args []any, assign func(position int, id string)) error {
	rows, err := tx.QueryContext(ctx, multiRowInsert(table, columns, len(args)/len(columns)), args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var position int
		if err := rows.Scan(&id, &position); err != nil {
			return err
		}
		assign(position, id)
	}
	return rows.Err()
}

func multiRowInsert(table string, columns []string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", table, strings.Join(columns, ", "))
	arg := 1
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for j := range columns {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", arg)
			arg++
		}
		b.WriteString(")")
	}
	b.WriteString(" RETURNING id, position")
	return b.String()
}

const eventColumns = `id, name, type, tagline, about, max_participants, min_team_size, max_team_size, status, owner_id, created_at, updated_at`

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadChildren(ctx, []*domain.Event{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var eventType, status string
	var tagline, about sql.NullString
	var maxParticipants, minTeamSize, maxTeamSize sql.NullInt64
	if err := row.Scan(&e.ID, &e.Name, &eventType, &tagline, &about, &maxParticipants, &minTeamSize, &maxTeamSize,
		&status, &e.OwnerID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Type = domain.EventType(eventType)
	e.Status = domain.EventStatus(status)
	e.Tagline = stringPtr(tagline)
	e.About = stringPtr(about)
	e.MaxParticipants = intPtr(maxParticipants)
	e.MinTeamSize = intPtr(minTeamSize)
	e.MaxTeamSize = intPtr(maxTeamSize)
	e.Tracks = []*domain.Track{}
	e.Sponsors = []*domain.Sponsor{}
	e.People = []*domain.Person{}
	return e, nil
}

// loadChildren fills in the sections, tracks with prizes, sponsors and people of events.
// The four lookups run concurrently, each keyed by = ANY($1).
func (r *eventRepository) loadChildren(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]string, 0, len(events))
	byID := make(map[string]*domain.Event, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
		byID[e.ID] = e
	}

	var (
		sections map[string]*eventSections
		tracks   map[string][]*domain.Track
		sponsors map[string][]*domain.Sponsor
		people   map[string][]*domain.Person
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sections, err = r.loadSections(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		tracks, err = r.loadTracks(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		sponsors, err = r.loadSponsors(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		people, err = r.loadPeople(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for id, e := range byID {
		if s := sections[id]; s != nil {
			e.Timeline, e.Links, e.Branding = s.timeline, s.links, s.branding
		}
		if t := tracks[id]; t != nil {
			e.Tracks = t
		}
		if s := sponsors[id]; s != nil {
			e.Sponsors = s
		}
		if p := people[id]; p != nil {
			e.People = p
		}
	}
	return nil
}

type eventSections struct {
	timeline *domain.Timeline
	links    *domain.Links
	branding *domain.Branding
}

func (r *eventRepository) loadSections(ctx context.Context, ids []string) (map[string]*eventSections, error) {
	query := `
		SELECT e.id,
			t.id, t.event_start, t.event_end, t.applications_start, t.applications_end, t.timezone, t.rsvp_deadline_days,
			l.id, l.website_url, l.microsite_url, l.contact_email, l.code_of_conduct_url,
			b.id, b.brand_color, b.logo_url, b.favicon_url, b.cover_image_url
		FROM events e
		LEFT JOIN event_timelines t ON t.event_id = e.id
		LEFT JOIN event_links l ON l.event_id = e.id
		LEFT JOIN event_brandings b ON b.event_id = e.id
		WHERE e.id = ANY($1)
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*eventSections, len(ids))
	for rows.Next() {
		var eventID string
		var timelineID, timezone sql.NullString
		var eventStart, eventEnd, appsStart, appsEnd sql.NullTime
		var rsvp sql.NullInt64
		var linksID, website, microsite, contact, coc sql.NullString
		var brandingID, color, logo, favicon, cover sql.NullString
		if err := rows.Scan(&eventID,
			&timelineID, &eventStart, &eventEnd, &appsStart, &appsEnd, &timezone, &rsvp,
			&linksID, &website, &microsite, &contact, &coc,
			&brandingID, &color, &logo, &favicon, &cover,
		); err != nil {
			return nil, err
		}
		s := &eventSections{}
		if timelineID.Valid {
			s.timeline = &domain.Timeline{
				ID:                timelineID.String,
				EventID:           eventID,
				EventStart:        eventStart.Time.UTC(),
				EventEnd:          eventEnd.Time.UTC(),
				ApplicationsStart: appsStart.Time.UTC(),
				ApplicationsEnd:   appsEnd.Time.UTC(),
				Timezone:          timezone.String,
				RSVPDeadlineDays:  int(rsvp.Int64),
			}
		}
		if linksID.Valid {
			s.links = &domain.Links{
				ID:               linksID.String,
				EventID:          eventID,
				WebsiteURL:       stringPtr(website),
				MicrositeURL:     stringPtr(microsite),
				ContactEmail:     contact.String,
				CodeOfConductURL: stringPtr(coc),
			}
		}
		if brandingID.Valid {
			s.branding = &domain.Branding{
				ID:            brandingID.String,
				EventID:       eventID,
				BrandColor:    color.String,
				LogoURL:       stringPtr(logo),
				FaviconURL:    stringPtr(favicon),
				CoverImageURL: stringPtr(cover),
			}
		}
		out[eventID] = s
	}
	return out, rows.Err()
}

func (r *eventRepository) loadTracks(ctx context.Context, ids []string) (map[string][]*domain.Track, error) {
	query := `
		SELECT t.id, t.event_id, t.name, t.description, t.position,
			p.id, p.title, p.description, p.value, p.position
		FROM tracks t
		LEFT JOIN prizes p ON p.track_id = t.id
		WHERE t.event_id = ANY($1)
		ORDER BY t.event_id, t.position, p.position
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("load tracks: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]*domain.Track)
	byTrack := make(map[string]*domain.Track)
	for rows.Next() {
		var t domain.Track
		var trackDesc sql.NullString
		var prizeID, prizeTitle, prizeDesc sql.NullString
		var prizeValue, prizePosition sql.NullInt64
		if err := rows.Scan(&t.ID, &t.EventID, &t.Name, &trackDesc, &t.Position,
			&prizeID, &prizeTitle, &prizeDesc, &prizeValue, &prizePosition); err != nil {
			return nil, err
		}
		track, ok := byTrack[t.ID]
		if !ok {
			track = &t
			track.Description = stringPtr(trackDesc)
			track.Prizes = []*domain.Prize{}
			byTrack[t.ID] = track
			out[t.EventID] = append(out[t.EventID], track)
		}
		if prizeID.Valid {
			track.Prizes = append(track.Prizes, &domain.Prize{
				ID:          prizeID.String,
				TrackID:     track.ID,
				EventID:     track.EventID,
				Title:       prizeTitle.String,
				Description: stringPtr(prizeDesc),
				Value:       int(prizeValue.Int64),
				Position:    int(prizePosition.Int64),
			})
		}
	}
	return out, rows.Err()
}

func (r *eventRepository) loadSponsors(ctx context.Context, ids []string) (map[string][]*domain.Sponsor, error) {
	query := `
		SELECT id, event_id, name, logo_url, website_url, tier, position
		FROM sponsors
		WHERE event_id = ANY($1)
		ORDER BY event_id, position
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("load sponsors: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]*domain.Sponsor)
	for rows.Next() {
		s := &domain.Sponsor{}
		var logo, website sql.NullString
		var tier string
		if err := rows.Scan(&s.ID, &s.EventID, &s.Name, &logo, &website, &tier, &s.Position); err != nil {
			return nil, err
		}
		s.LogoURL = stringPtr(logo)
		s.WebsiteURL = stringPtr(website)
		s.Tier = domain.SponsorTier(tier)
		out[s.EventID] = append(out[s.EventID], s)
	}
	return out, rows.Err()
}

func (r *eventRepository) loadPeople(ctx context.Context, ids []string) (map[string][]*domain.Person, error) {
	query := `
		SELECT id, event_id, name, role, bio, image_url, linkedin_url, position
		FROM event_people
		WHERE event_id = ANY($1)
		ORDER BY event_id, position
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("load people: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]*domain.Person)
	for rows.Next() {
		p := &domain.Person{}
		var role string
		var bio, image, linkedin sql.NullString
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &role, &bio, &image, &linkedin, &p.Position); err != nil {
			return nil, err
		}
		p.Role = domain.PersonRole(role)
		p.Bio = stringPtr(bio)
		p.ImageURL = stringPtr(image)
		p.LinkedinURL = stringPtr(linkedin)
		out[p.EventID] = append(out[p.EventID], p)
	}
	return out, rows.Err()
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}
