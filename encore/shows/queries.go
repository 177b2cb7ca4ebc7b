package shows

const (
	queryCreate = `
		INSERT INTO shows (title, date_time, venue, city)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, date_time, venue, city, created_at, updated_at
	`

	queryGet = `
		SELECT id, title, date_time, venue, city, created_at, updated_at
		FROM shows
		WHERE id = $1
	`

	queryList = `
		SELECT id, title, date_time, venue, city, created_at, updated_at
		FROM shows
		WHERE date_time >= $1
		ORDER BY date_time ASC
		LIMIT $2 OFFSET $3
	`

	queryCountUpcoming = `
		SELECT COUNT(*)
		FROM shows
		WHERE date_time >= $1
	`

	queryListRange = `
		SELECT id, title, date_time, venue, city, created_at, updated_at
		FROM shows
		WHERE date_time >= $1 AND date_time < $2
		ORDER BY date_time ASC, id ASC
	`

	queryUpdate = `
		UPDATE shows
		SET title = COALESCE($1, title),
		    date_time = COALESCE($2, date_time),
		    venue = COALESCE($3, venue),
		    city = COALESCE($4, city),
		    updated_at = NOW()
		WHERE id = $5
		RETURNING id, title, date_time, venue, city, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM shows
		WHERE id = $1
	`

	queryUpsertRSVP = `
		INSERT INTO rsvps (show_id, name, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (show_id, name) DO UPDATE
		SET status = EXCLUDED.status, updated_at = NOW()
	`

	queryDeleteRSVP = `
		DELETE FROM rsvps
		WHERE show_id = $1 AND name = $2
	`

	queryListRSVPsForShows = `
		SELECT show_id, name, status
		FROM rsvps
		WHERE show_id = ANY($1)
		ORDER BY show_id, name
	`

	queryListBillingForShows = `
		SELECT sa.show_id, sa.artist_id, a.name, a.image_url, sa.position
		FROM show_artists sa
		JOIN artists a ON a.id = sa.artist_id
		WHERE sa.show_id = ANY($1)
		ORDER BY sa.show_id, sa.position, a.name
	`
)
