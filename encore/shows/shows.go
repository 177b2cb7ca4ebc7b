package shows

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrShowNotFound = errors.New("show not found")
	ErrRSVPNotFound = errors.New("rsvp not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, req CreateShowRequest) (*Show, error) {
	var show Show

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		req.Title,
		req.DateTime.UTC(),
		req.Venue,
		req.City,
	).Scan(
		&show.ID,
		&show.Title,
		&show.DateTime,
		&show.Venue,
		&show.City,
		&show.CreatedAt,
		&show.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &show, nil
}

func (r *Repository) Get(ctx context.Context, showID string) (*Show, error) {
	var show Show

	err := r.db.QueryRow(ctx, queryGet, showID).Scan(
		&show.ID,
		&show.Title,
		&show.DateTime,
		&show.Venue,
		&show.City,
		&show.CreatedAt,
		&show.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShowNotFound
	}

	if err != nil {
		return nil, err
	}

	return &show, nil
}

// lists upcoming shows ordered by date
func (r *Repository) ListUpcoming(ctx context.Context, from time.Time, limit, offset int) ([]Show, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountUpcoming, from.UTC()).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, from.UTC(), limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	var result []Show

	for rows.Next() {
		var s Show
		if err := rows.Scan(&s.ID, &s.Title, &s.DateTime, &s.Venue, &s.City, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}

		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

func (r *Repository) Update(ctx context.Context, showID string, req UpdateShowRequest) (*Show, error) {
	var show Show

	var dateTime *time.Time
	if req.DateTime != nil {
		utc := req.DateTime.UTC()
		dateTime = &utc
	}

	err := r.db.QueryRow(
		ctx,
		queryUpdate,
		req.Title,
		dateTime,
		req.Venue,
		req.City,
		showID,
	).Scan(
		&show.ID,
		&show.Title,
		&show.DateTime,
		&show.Venue,
		&show.City,
		&show.CreatedAt,
		&show.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShowNotFound
	}

	if err != nil {
		return nil, err
	}

	return &show, nil
}

func (r *Repository) Delete(ctx context.Context, showID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, showID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrShowNotFound
	}

	return nil
}

// creates or updates an RSVP for a show; one row per (show, name)
func (r *Repository) SetRSVP(ctx context.Context, showID, name, status string) error {
	_, err := r.db.Exec(ctx, queryUpsertRSVP, showID, name, status)
	return err
}

func (r *Repository) DeleteRSVP(ctx context.Context, showID, name string) error {
	tag, err := r.db.Exec(ctx, queryDeleteRSVP, showID, name)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrRSVPNotFound
	}

	return nil
}

// fetches all shows in a calendar year with nested RSVPs and billed artists.
// the year window is computed in loc so recap month bucketing stays
// consistent with the audience's local calendar.
func (r *Repository) ListYearWithRSVPs(ctx context.Context, year int, loc *time.Location) ([]ShowWithRSVPs, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(1, 0, 0)

	rows, err := r.db.Query(ctx, queryListRange, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var result []ShowWithRSVPs
	var ids []string
	index := make(map[string]int)

	for rows.Next() {
		var s ShowWithRSVPs
		if err := rows.Scan(&s.ID, &s.Title, &s.DateTime, &s.Venue, &s.City, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}

		s.RSVPs = []RSVP{}
		s.Artists = []BilledArtist{}
		index[s.ID] = len(result)
		ids = append(ids, s.ID)
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return result, nil
	}

	if err := r.attachRSVPs(ctx, ids, index, result); err != nil {
		return nil, err
	}

	if err := r.attachBilling(ctx, ids, index, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Repository) attachRSVPs(ctx context.Context, ids []string, index map[string]int, result []ShowWithRSVPs) error {
	rows, err := r.db.Query(ctx, queryListRSVPsForShows, ids)
	if err != nil {
		return err
	}

	defer rows.Close()

	for rows.Next() {
		var showID string
		var rsvp RSVP
		if err := rows.Scan(&showID, &rsvp.Name, &rsvp.Status); err != nil {
			return err
		}

		if i, ok := index[showID]; ok {
			result[i].RSVPs = append(result[i].RSVPs, rsvp)
		}
	}

	return rows.Err()
}

func (r *Repository) attachBilling(ctx context.Context, ids []string, index map[string]int, result []ShowWithRSVPs) error {
	rows, err := r.db.Query(ctx, queryListBillingForShows, ids)
	if err != nil {
		return err
	}

	defer rows.Close()

	for rows.Next() {
		var showID string
		var artist BilledArtist
		if err := rows.Scan(&showID, &artist.ArtistID, &artist.Name, &artist.ImageURL, &artist.Position); err != nil {
			return err
		}

		if i, ok := index[showID]; ok {
			result[i].Artists = append(result[i].Artists, artist)
		}
	}

	return rows.Err()
}
