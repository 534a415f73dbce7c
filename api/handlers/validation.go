package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/linesmerrill/mergington-announcements-api/models"
)

// client facing validation messages
const (
	msgRequiredFields     = "Title, message, and expiration_date are required"
	msgInvalidDateFormat  = "Invalid date format. Use YYYY-MM-DD"
	msgStartAfterExpiry   = "Start date cannot be after expiration date"
	msgExpirationInPast   = "Expiration date cannot be in the past"
	msgInvalidID          = "Invalid announcement ID"
	msgInvalidRequestBody = "Invalid request body"
)

// ValidationError is an input problem reported to the client as a 400
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// announcementFields is a validated create or update request
type announcementFields struct {
	Title          string
	Message        string
	ExpirationDate models.Date
	StartDate      *models.Date
}

// validateAnnouncement checks req against today's UTC date. Checks run in a
// fixed order and the first failure is returned.
func validateAnnouncement(req models.AnnouncementRequest, today models.Date) (announcementFields, error) {
	title := strings.TrimSpace(req.Title)
	message := strings.TrimSpace(req.Message)
	expiration := strings.TrimSpace(req.ExpirationDate)
	start := strings.TrimSpace(req.StartDate)

	if title == "" || message == "" || expiration == "" {
		return announcementFields{}, ValidationError{Message: msgRequiredFields}
	}

	expDate, err := models.ParseDate(expiration)
	if err != nil {
		return announcementFields{}, ValidationError{Message: msgInvalidDateFormat}
	}

	var startDate *models.Date
	if start != "" {
		d, err := models.ParseDate(start)
		if err != nil {
			return announcementFields{}, ValidationError{Message: msgInvalidDateFormat}
		}
		if d.After(expDate) {
			return announcementFields{}, ValidationError{Message: msgStartAfterExpiry}
		}
		startDate = &d
	}

	if expDate.Before(today) {
		return announcementFields{}, ValidationError{Message: msgExpirationInPast}
	}

	return announcementFields{
		Title:          title,
		Message:        message,
		ExpirationDate: expDate,
		StartDate:      startDate,
	}, nil
}

// readAnnouncementRequest collects the announcement fields from the query
// string or form body, then lets a JSON body fill in or override them.
func readAnnouncementRequest(r *http.Request) (models.AnnouncementRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return models.AnnouncementRequest{
			Title:          r.FormValue("title"),
			Message:        r.FormValue("message"),
			ExpirationDate: r.FormValue("expiration_date"),
			StartDate:      r.FormValue("start_date"),
		}, nil
	}

	q := r.URL.Query()
	req := models.AnnouncementRequest{
		Title:          q.Get("title"),
		Message:        q.Get("message"),
		ExpirationDate: q.Get("expiration_date"),
		StartDate:      q.Get("start_date"),
	}
	if r.Body == nil {
		return req, nil
	}

	var body models.AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, ValidationError{Message: msgInvalidRequestBody}
	}
	overlay(&req.Title, body.Title)
	overlay(&req.Message, body.Message)
	overlay(&req.ExpirationDate, body.ExpirationDate)
	overlay(&req.StartDate, body.StartDate)
	return req, nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
