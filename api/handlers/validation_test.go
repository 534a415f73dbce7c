package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/mergington-announcements-api/models"
)

func TestValidateAnnouncement(t *testing.T) {
	today := models.NewDate(2024, time.June, 10)

	tests := []struct {
		name    string
		req     models.AnnouncementRequest
		wantErr string
	}{
		{
			name:    "missing title",
			req:     models.AnnouncementRequest{Message: "m", ExpirationDate: "2099-01-01"},
			wantErr: msgRequiredFields,
		},
		{
			name:    "blank message",
			req:     models.AnnouncementRequest{Title: "t", Message: "   ", ExpirationDate: "2099-01-01"},
			wantErr: msgRequiredFields,
		},
		{
			name:    "missing expiration",
			req:     models.AnnouncementRequest{Title: "t", Message: "m"},
			wantErr: msgRequiredFields,
		},
		{
			name:    "bad expiration format",
			req:     models.AnnouncementRequest{Title: "t", Message: "m", ExpirationDate: "next friday"},
			wantErr: msgInvalidDateFormat,
		},
		{
			name:    "bad start format",
			req:     models.AnnouncementRequest{Title: "t", Message: "m", ExpirationDate: "2099-01-01", StartDate: "01/01/2099"},
			wantErr: msgInvalidDateFormat,
		},
		{
			name:    "start after expiration",
			req:     models.AnnouncementRequest{Title: "t", Message: "m", ExpirationDate: "2099-01-01", StartDate: "2099-01-02"},
			wantErr: msgStartAfterExpiry,
		},
		{
			name:    "start after past expiration reports the range first",
			req:     models.AnnouncementRequest{Title: "t", Message: "m", ExpirationDate: "2000-01-01", StartDate: "2000-02-01"},
			wantErr: msgStartAfterExpiry,
		},
		{
			name:    "expiration in the past",
			req:     models.AnnouncementRequest{Title: "t", Message: "m", ExpirationDate: "2024-06-09"},
			wantErr: msgExpirationInPast,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateAnnouncement(tt.req, today)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.IsType(t, ValidationError{}, err)
		})
	}
}

func TestValidateAnnouncementAccepts(t *testing.T) {
	today := models.NewDate(2024, time.June, 10)

	fields, err := validateAnnouncement(models.AnnouncementRequest{
		Title:          "  Exam Schedule ",
		Message:        "Finals start Monday\n",
		ExpirationDate: "2024-06-10",
		StartDate:      "2024-06-10T08:00:00",
	}, today)

	require.NoError(t, err)
	assert.Equal(t, "Exam Schedule", fields.Title)
	assert.Equal(t, "Finals start Monday", fields.Message)
	assert.Equal(t, "2024-06-10", fields.ExpirationDate.String())
	require.NotNil(t, fields.StartDate)
	assert.Equal(t, "2024-06-10", fields.StartDate.String())

	fields, err = validateAnnouncement(models.AnnouncementRequest{Title: "t", Message: "m", ExpirationDate: "2099-01-01"}, today)
	require.NoError(t, err)
	assert.Nil(t, fields.StartDate)
}

func TestReadAnnouncementRequestFromQuery(t *testing.T) {
	r := httptest.NewRequest("POST", "/announcements/?teacher_username=principal&title=Exam+Schedule&message=Finals&expiration_date=2099-01-01", nil)

	req, err := readAnnouncementRequest(r)

	require.NoError(t, err)
	assert.Equal(t, models.AnnouncementRequest{Title: "Exam Schedule", Message: "Finals", ExpirationDate: "2099-01-01"}, req)
}

func TestReadAnnouncementRequestFromForm(t *testing.T) {
	r := httptest.NewRequest("PUT", "/announcements/x", strings.NewReader("title=Exam&message=Finals&expiration_date=2099-01-01&start_date=2098-12-01"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	req, err := readAnnouncementRequest(r)

	require.NoError(t, err)
	assert.Equal(t, "2098-12-01", req.StartDate)
	assert.Equal(t, "Exam", req.Title)
}

func TestReadAnnouncementRequestFromJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/announcements/?title=from-query", strings.NewReader(`{"title":"from-body","message":"Finals","expiration_date":"2099-01-01"}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	req, err := readAnnouncementRequest(r)

	require.NoError(t, err)
	assert.Equal(t, "from-body", req.Title)
	assert.Equal(t, "Finals", req.Message)
	assert.Equal(t, "", req.StartDate)
}

func TestReadAnnouncementRequestBadJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/announcements/", strings.NewReader(`{"title":`))
	r.Header.Set("Content-Type", "application/json")

	_, err := readAnnouncementRequest(r)

	require.Error(t, err)
	assert.Equal(t, msgInvalidRequestBody, err.Error())
}

func TestReadAnnouncementRequestEmptyJSONBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/announcements/?title=t&message=m&expiration_date=2099-01-01", nil)
	r.Header.Set("Content-Type", "application/json")

	req, err := readAnnouncementRequest(r)

	require.NoError(t, err)
	assert.Equal(t, "t", req.Title)
}
