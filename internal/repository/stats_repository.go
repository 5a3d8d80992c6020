package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/models"
)

// StatsRepository is the read path over the pledge-manager database. It owns
// no tables; every query is a fixed shape with bound parameters, the only
// client-controlled input being the (already clamped) day window.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// windowClause returns the optional time filter for ebook.download_events.
// The clause text comes from a fixed two-shape allowlist; the day count is
// always bound, never interpolated.
func windowClause(days int) (string, []any) {
	if days <= 0 {
		return "", nil
	}
	return "WHERE e.created_at >= (CURRENT_TIMESTAMP - ($1 * interval '1 day'))", []any{days}
}

// EbookUserStats runs the grouped per-user listing. Join policy: INNER JOIN
// against users everywhere, so events whose user has since been deleted
// never surface, and a user with no in-window events is absent entirely.
func (r *StatsRepository) EbookUserStats(ctx context.Context, days int) ([]models.EbookUserStat, error) {
	where, params := windowClause(days)

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.email,
			COALESCE(u.name, ''),
			COALESCE(u.reward_title, ''),
			BOOL_OR(e.event_type = 'page_visit'),
			BOOL_OR(e.event_type = 'download' AND COALESCE(e.format, '') IN ('pdf_compressed', 'pdf_full')),
			BOOL_OR(e.event_type = 'download' AND COALESCE(e.format, '') = 'pdf_compressed'),
			BOOL_OR(e.event_type = 'download' AND COALESCE(e.format, '') = 'pdf_full'),
			BOOL_OR(e.event_type = 'download' AND COALESCE(e.format, '') = 'epub'),
			BOOL_OR(e.event_type = 'kindle_send')
		FROM ebook.download_events e
		JOIN users u ON u.id = e.user_id
		%s
		GROUP BY u.id, u.email, u.name, u.reward_title
		ORDER BY u.id ASC
	`, where)

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.EbookUserStat
	for rows.Next() {
		var s models.EbookUserStat
		if err := rows.Scan(
			&s.UserID,
			&s.Email,
			&s.Name,
			&s.RewardTitle,
			&s.VisitedPage,
			&s.DownloadedPDF,
			&s.DownloadedPDFCompressed,
			&s.DownloadedPDFFull,
			&s.DownloadedEPUB,
			&s.SentToKindle,
		); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// FormatCounts is event-level (no user join): raw download volume per
// format, busiest first.
func (r *StatsRepository) FormatCounts(ctx context.Context, days int) ([]models.FormatCount, error) {
	where, params := windowClause(days)

	query := fmt.Sprintf(`
		SELECT COALESCE(e.format, ''), COUNT(*)::bigint AS count
		FROM ebook.download_events e
		%s
		GROUP BY 1
		ORDER BY count DESC
	`, where)

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.FormatCount
	for rows.Next() {
		var c models.FormatCount
		if err := rows.Scan(&c.Format, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *StatsRepository) EventTypeCounts(ctx context.Context, days int) ([]models.EventTypeCount, error) {
	where, params := windowClause(days)

	query := fmt.Sprintf(`
		SELECT e.event_type, COUNT(*)::bigint AS count
		FROM ebook.download_events e
		%s
		GROUP BY 1
		ORDER BY count DESC
	`, where)

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.EventTypeCount
	for rows.Next() {
		var c models.EventTypeCount
		if err := rows.Scan(&c.EventType, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

const topCountriesLimit = 12

func (r *StatsRepository) TopCountries(ctx context.Context, days int) ([]models.CountryCount, error) {
	where, params := windowClause(days)

	query := fmt.Sprintf(`
		SELECT COALESCE(NULLIF(e.country, ''), 'unknown') AS country, COUNT(*)::bigint AS count
		FROM ebook.download_events e
		%s
		GROUP BY 1
		ORDER BY count DESC
		LIMIT %d
	`, where, topCountriesLimit)

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.CountryCount
	for rows.Next() {
		var c models.CountryCount
		if err := rows.Scan(&c.Country, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// TotalUsers counts every known user. Window-independent.
func (r *StatsRepository) TotalUsers(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*)::bigint FROM users`).Scan(&total)
	return total, err
}

// UsersWithShippingAddress counts distinct known users having at least one
// order with a non-empty shipping address. Orders referencing deleted users
// are excluded by the join, matching the listing policy.
func (r *StatsRepository) UsersWithShippingAddress(ctx context.Context) (int64, error) {
	const query = `
		SELECT COUNT(DISTINCT o.user_id)::bigint
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE COALESCE(o.shipping_address, '') <> ''
	`
	var total int64
	err := r.pool.QueryRow(ctx, query).Scan(&total)
	return total, err
}
