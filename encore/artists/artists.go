package artists

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrArtistNotFound  = errors.New("artist not found")
	ErrBillingNotFound = errors.New("billing not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, req CreateArtistRequest) (*Artist, error) {
	var artist Artist

	err := r.db.QueryRow(ctx, queryCreate, req.Name, req.ImageURL, req.MBID).Scan(
		&artist.ID,
		&artist.Name,
		&artist.ImageURL,
		&artist.MBID,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &artist, nil
}

func (r *Repository) Get(ctx context.Context, artistID string) (*Artist, error) {
	var artist Artist

	err := r.db.QueryRow(ctx, queryGet, artistID).Scan(
		&artist.ID,
		&artist.Name,
		&artist.ImageURL,
		&artist.MBID,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrArtistNotFound
	}

	if err != nil {
		return nil, err
	}

	return &artist, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Artist, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCount).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()
	var result []Artist

	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.ImageURL, &a.MBID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}

		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

func (r *Repository) Update(ctx context.Context, artistID string, req UpdateArtistRequest) (*Artist, error) {
	var artist Artist

	err := r.db.QueryRow(ctx, queryUpdate, req.Name, req.ImageURL, req.MBID, artistID).Scan(
		&artist.ID,
		&artist.Name,
		&artist.ImageURL,
		&artist.MBID,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrArtistNotFound
	}

	if err != nil {
		return nil, err
	}

	return &artist, nil
}

func (r *Repository) Delete(ctx context.Context, artistID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, artistID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrArtistNotFound
	}

	return nil
}

// assigns an artist to a show with a billing position; re-billing
// the same artist updates the position
func (r *Repository) Bill(ctx context.Context, showID, artistID, position string) error {
	_, err := r.db.Exec(ctx, queryBill, showID, artistID, position)
	return err
}

func (r *Repository) Unbill(ctx context.Context, showID, artistID string) error {
	tag, err := r.db.Exec(ctx, queryUnbill, showID, artistID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrBillingNotFound
	}

	return nil
}

func (r *Repository) CreateRelease(ctx context.Context, artistID string, req CreateReleaseRequest) (*Release, error) {
	var release Release

	err := r.db.QueryRow(ctx, queryCreateRelease, artistID, req.Title, req.ReleaseDate, req.Kind).Scan(
		&release.ID,
		&release.ArtistID,
		&release.Title,
		&release.ReleaseDate,
		&release.Kind,
		&release.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &release, nil
}

func (r *Repository) ListReleases(ctx context.Context, artistID string) ([]Release, error) {
	rows, err := r.db.Query(ctx, queryListReleasesByArtist, artistID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []Release

	for rows.Next() {
		var rel Release
		if err := rows.Scan(&rel.ID, &rel.ArtistID, &rel.Title, &rel.ReleaseDate, &rel.Kind, &rel.CreatedAt); err != nil {
			return nil, err
		}

		result = append(result, rel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// lists releases dated today or later across all tracked artists
func (r *Repository) ListUpcomingReleases(ctx context.Context, from time.Time, limit int) ([]Release, error) {
	rows, err := r.db.Query(ctx, queryListUpcomingReleases, from.UTC(), limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []Release

	for rows.Next() {
		var rel Release
		if err := rows.Scan(&rel.ID, &rel.ArtistID, &rel.ArtistName, &rel.Title, &rel.ReleaseDate, &rel.Kind, &rel.CreatedAt); err != nil {
			return nil, err
		}

		result = append(result, rel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
