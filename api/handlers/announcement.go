package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/linesmerrill/mergington-announcements-api/api"
	"github.com/linesmerrill/mergington-announcements-api/config"
	"github.com/linesmerrill/mergington-announcements-api/databases"
	"github.com/linesmerrill/mergington-announcements-api/models"
)

// Announcement struct for handling announcement operations
type Announcement struct {
	ADB databases.AnnouncementDatabase
	// Now returns the current time, time.Now when nil
	Now func() time.Time
}

func (a Announcement) now() time.Time {
	if a.Now != nil {
		return a.Now().UTC()
	}
	return time.Now().UTC()
}

// ActiveAnnouncementsHandler returns the announcements currently inside their
// display window, newest first
func (a Announcement) ActiveAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	announcements, err := a.ADB.FindAll(ctx)
	if err != nil {
		config.ErrorStatus("Failed to fetch announcements", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ActiveAnnouncements(announcements, models.Today(a.now())))
}

// ManageAnnouncementsHandler returns every announcement with its active flag
// for the management view
func (a Announcement) ManageAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	announcements, err := a.ADB.FindAll(ctx)
	if err != nil {
		config.ErrorStatus("Failed to fetch announcements", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AnnotateAnnouncements(announcements, models.Today(a.now())))
}

// CreateAnnouncementHandler creates a new announcement
func (a Announcement) CreateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	teacher, ok := api.TeacherFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Authentication required", http.StatusUnauthorized, w, nil)
		return
	}

	req, err := readAnnouncementRequest(r)
	if err != nil {
		config.ErrorStatus(err.Error(), http.StatusBadRequest, w, nil)
		return
	}

	now := a.now()
	fields, err := validateAnnouncement(req, models.Today(now))
	if err != nil {
		config.ErrorStatus(err.Error(), http.StatusBadRequest, w, nil)
		return
	}

	announcement := models.Announcement{
		Title:          fields.Title,
		Message:        fields.Message,
		ExpirationDate: fields.ExpirationDate,
		StartDate:      fields.StartDate,
		CreatedBy:      teacher.UserName(),
		// mongo keeps millisecond precision
		CreatedAt: now.Truncate(time.Millisecond),
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	id, err := a.ADB.InsertOne(ctx, announcement)
	if err != nil {
		config.ErrorStatus("Failed to create announcement", http.StatusInternalServerError, w, err)
		return
	}
	announcement.ID = id

	zap.S().Infow("announcement created", "id", id.Hex(), "created_by", announcement.CreatedBy)
	writeJSON(w, http.StatusOK, models.CreateAnnouncementResponse{
		Message:      "Announcement created successfully",
		Announcement: announcement,
	})
}

// UpdateAnnouncementHandler replaces the content and window of an announcement.
// A request without start_date clears any stored start date.
func (a Announcement) UpdateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	teacher, ok := api.TeacherFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Authentication required", http.StatusUnauthorized, w, nil)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["announcement_id"])
	if err != nil {
		config.ErrorStatus(msgInvalidID, http.StatusBadRequest, w, nil)
		return
	}

	req, err := readAnnouncementRequest(r)
	if err != nil {
		config.ErrorStatus(err.Error(), http.StatusBadRequest, w, nil)
		return
	}

	now := a.now()
	fields, err := validateAnnouncement(req, models.Today(now))
	if err != nil {
		config.ErrorStatus(err.Error(), http.StatusBadRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := a.ADB.FindByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("Announcement not found", http.StatusNotFound, w, nil)
			return
		}
		config.ErrorStatus("Failed to update announcement", http.StatusInternalServerError, w, err)
		return
	}

	matched, err := a.ADB.UpdateByID(ctx, id, models.AnnouncementUpdate{
		Title:          fields.Title,
		Message:        fields.Message,
		ExpirationDate: fields.ExpirationDate,
		StartDate:      fields.StartDate,
		UpdatedBy:      teacher.UserName(),
		UpdatedAt:      now.Truncate(time.Millisecond),
	})
	if err != nil {
		config.ErrorStatus("Failed to update announcement", http.StatusInternalServerError, w, err)
		return
	}
	// deleted between the lookup and the write
	if matched == 0 {
		config.ErrorStatus("Announcement not found", http.StatusNotFound, w, nil)
		return
	}

	zap.S().Infow("announcement updated", "id", id.Hex(), "updated_by", teacher.UserName())
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Announcement updated successfully"})
}

// DeleteAnnouncementHandler permanently removes an announcement
func (a Announcement) DeleteAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	teacher, ok := api.TeacherFromContext(r.Context())
	if !ok {
		config.ErrorStatus("Authentication required", http.StatusUnauthorized, w, nil)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["announcement_id"])
	if err != nil {
		config.ErrorStatus(msgInvalidID, http.StatusBadRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	deleted, err := a.ADB.DeleteByID(ctx, id)
	if err != nil {
		config.ErrorStatus("Failed to delete announcement", http.StatusInternalServerError, w, err)
		return
	}
	if deleted == 0 {
		config.ErrorStatus("Announcement not found", http.StatusNotFound, w, nil)
		return
	}

	zap.S().Infow("announcement deleted", "id", id.Hex(), "deleted_by", teacher.UserName())
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Announcement deleted successfully"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}
