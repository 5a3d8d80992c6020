package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/models"
)

func TestClampWindow(t *testing.T) {
	// Non-positive means all-time; anything over the ceiling is capped.
	assert.Equal(t, 0, models.ClampWindow(0))
	assert.Equal(t, 0, models.ClampWindow(-5))
	assert.Equal(t, 30, models.ClampWindow(30))
	assert.Equal(t, 3650, models.ClampWindow(3650))
	assert.Equal(t, 3650, models.ClampWindow(3651))
	assert.Equal(t, models.ClampWindow(3650), models.ClampWindow(999999))
}

func TestSummarizeEbookUsers(t *testing.T) {
	users := []models.EbookUserStat{
		{
			UserID:                  1,
			VisitedPage:             true,
			DownloadedPDF:           true,
			DownloadedPDFCompressed: true,
			DownloadedEPUB:          true,
		},
		{
			UserID:            2,
			DownloadedPDF:     true,
			DownloadedPDFFull: true,
			SentToKindle:      true,
		},
		{
			UserID:         3,
			DownloadedEPUB: true,
		},
	}

	summary, users := models.SummarizeEbookUsers(users)

	assert.Equal(t, int64(3), summary.Users)
	assert.Equal(t, int64(1), summary.VisitedPage)
	assert.Equal(t, int64(2), summary.DownloadedPDF)
	assert.Equal(t, int64(1), summary.DownloadedPDFCompressed)
	assert.Equal(t, int64(1), summary.DownloadedPDFFull)
	assert.Equal(t, int64(2), summary.DownloadedEPUB)
	assert.Equal(t, int64(1), summary.DownloadedBothFormats)
	assert.Equal(t, int64(2), summary.DownloadedOneFormat)
	assert.Equal(t, int64(1), summary.SentToKindle)

	// Combination flags are filled in per row.
	assert.True(t, users[0].DownloadedBothFormats)
	assert.False(t, users[0].DownloadedOneFormat)
	assert.False(t, users[1].DownloadedBothFormats)
	assert.True(t, users[1].DownloadedOneFormat)
	assert.True(t, users[2].DownloadedOneFormat)
}

func TestSummarizeEbookUsersEmpty(t *testing.T) {
	summary, users := models.SummarizeEbookUsers(nil)
	assert.Zero(t, summary.Users)
	assert.Empty(t, users)
}
