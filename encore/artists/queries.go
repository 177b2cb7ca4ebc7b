package artists

const (
	queryCreate = `
		INSERT INTO artists (name, image_url, mbid)
		VALUES ($1, $2, $3)
		RETURNING id, name, image_url, mbid, created_at, updated_at
	`

	queryGet = `
		SELECT id, name, image_url, mbid, created_at, updated_at
		FROM artists
		WHERE id = $1
	`

	queryList = `
		SELECT id, name, image_url, mbid, created_at, updated_at
		FROM artists
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	queryCount = `
		SELECT COUNT(*) FROM artists
	`

	queryUpdate = `
		UPDATE artists
		SET name = COALESCE($1, name),
		    image_url = COALESCE($2, image_url),
		    mbid = COALESCE($3, mbid),
		    updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, image_url, mbid, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM artists
		WHERE id = $1
	`

	queryBill = `
		INSERT INTO show_artists (show_id, artist_id, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (show_id, artist_id) DO UPDATE
		SET position = EXCLUDED.position
	`

	queryUnbill = `
		DELETE FROM show_artists
		WHERE show_id = $1 AND artist_id = $2
	`

	queryCreateRelease = `
		INSERT INTO releases (artist_id, title, release_date, kind)
		VALUES ($1, $2, $3, $4)
		RETURNING id, artist_id, title, release_date, kind, created_at
	`

	queryListReleasesByArtist = `
		SELECT id, artist_id, title, release_date, kind, created_at
		FROM releases
		WHERE artist_id = $1
		ORDER BY release_date DESC
	`

	queryListUpcomingReleases = `
		SELECT r.id, r.artist_id, a.name, r.title, r.release_date, r.kind, r.created_at
		FROM releases r
		JOIN artists a ON a.id = r.artist_id
		WHERE r.release_date >= $1
		ORDER BY r.release_date ASC
		LIMIT $2
	`
)
