package models

import "time"

// MaxWindowDays caps the stats window at ten years.
const MaxWindowDays = 3650

// DefaultWindowDays is applied when the client omits the days parameter.
const DefaultWindowDays = 30

// ClampWindow normalizes a requested day window. Non-positive values mean
// "all time" and collapse to zero; anything above MaxWindowDays is silently
// capped.
func ClampWindow(days int) int {
	if days <= 0 {
		return 0
	}
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}

// Event taxonomy for ebook.download_events.
const (
	EventPageVisit  = "page_visit"
	EventDownload   = "download"
	EventKindleSend = "kindle_send"

	FormatPDFCompressed = "pdf_compressed"
	FormatPDFFull       = "pdf_full"
	FormatEPUB          = "epub"
)

// EbookUserStat is one row of the per-user listing: a known user joined to
// their in-window events, flattened into booleans. Users with no qualifying
// events in the window do not appear at all (inner join semantics, by
// policy).
type EbookUserStat struct {
	UserID                  int64  `json:"user_id"`
	Email                   string `json:"email"`
	Name                    string `json:"name"`
	RewardTitle             string `json:"reward_title"`
	VisitedPage             bool   `json:"visited_page"`
	DownloadedPDF           bool   `json:"downloaded_pdf"`
	DownloadedPDFCompressed bool   `json:"downloaded_pdf_compressed"`
	DownloadedPDFFull       bool   `json:"downloaded_pdf_full"`
	DownloadedEPUB          bool   `json:"downloaded_epub"`
	DownloadedBothFormats   bool   `json:"downloaded_both_formats"`
	DownloadedOneFormat     bool   `json:"downloaded_one_format"`
	SentToKindle            bool   `json:"sent_to_kindle"`
}

// EbookUserSummary counts distinct users per flag. Consistent with the
// listing by construction: it is derived from the same rows, so the counts
// read as "among users with at least one qualifying event in-window".
type EbookUserSummary struct {
	Users                   int64 `json:"users"`
	VisitedPage             int64 `json:"visited_page"`
	DownloadedPDF           int64 `json:"downloaded_pdf"`
	DownloadedPDFCompressed int64 `json:"downloaded_pdf_compressed"`
	DownloadedPDFFull       int64 `json:"downloaded_pdf_full"`
	DownloadedEPUB          int64 `json:"downloaded_epub"`
	DownloadedBothFormats   int64 `json:"downloaded_both_formats"`
	DownloadedOneFormat     int64 `json:"downloaded_one_format"`
	SentToKindle            int64 `json:"sent_to_kindle"`
}

// SummarizeEbookUsers derives the per-flag user counts from the listing and
// fills in the combination flags (both formats / exactly one format) on each
// row.
func SummarizeEbookUsers(users []EbookUserStat) (EbookUserSummary, []EbookUserStat) {
	summary := EbookUserSummary{Users: int64(len(users))}

	for i := range users {
		u := &users[i]
		u.DownloadedBothFormats = u.DownloadedPDF && u.DownloadedEPUB
		u.DownloadedOneFormat = u.DownloadedPDF != u.DownloadedEPUB

		if u.VisitedPage {
			summary.VisitedPage++
		}
		if u.DownloadedPDF {
			summary.DownloadedPDF++
		}
		if u.DownloadedPDFCompressed {
			summary.DownloadedPDFCompressed++
		}
		if u.DownloadedPDFFull {
			summary.DownloadedPDFFull++
		}
		if u.DownloadedEPUB {
			summary.DownloadedEPUB++
		}
		if u.DownloadedBothFormats {
			summary.DownloadedBothFormats++
		}
		if u.DownloadedOneFormat {
			summary.DownloadedOneFormat++
		}
		if u.SentToKindle {
			summary.SentToKindle++
		}
	}

	return summary, users
}

type FormatCount struct {
	Format string `json:"format"`
	Count  int64  `json:"count"`
}

type EventTypeCount struct {
	EventType string `json:"event_type"`
	Count     int64  `json:"count"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

type EbookStatsPayload struct {
	OK           bool             `json:"ok"`
	SnapshotID   string           `json:"snapshot_id"`
	GeneratedAt  time.Time        `json:"generated_at"`
	WindowDays   int              `json:"window_days"`
	UserSummary  EbookUserSummary `json:"user_summary"`
	Users        []EbookUserStat  `json:"users"`
	ByFormat     []FormatCount    `json:"by_format"`
	ByEventType  []EventTypeCount `json:"by_event_type"`
	TopCountries []CountryCount   `json:"top_countries"`
}

type PledgeManagerPayload struct {
	OK                       bool      `json:"ok"`
	SnapshotID               string    `json:"snapshot_id"`
	GeneratedAt              time.Time `json:"generated_at"`
	TotalUsers               int64     `json:"total_users"`
	UsersWithShippingAddress int64     `json:"users_with_shipping_address"`
}
