package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement holds the structure for the announcement collection in mongo
type Announcement struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Message        string             `json:"message" bson:"message"`
	ExpirationDate Date               `json:"expiration_date" bson:"expiration_date"`
	StartDate      *Date              `json:"start_date,omitempty" bson:"start_date,omitempty"`
	CreatedBy      string             `json:"created_by" bson:"created_by"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedBy      string             `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
	UpdatedAt      *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// IsActive reports whether the announcement should be shown on the given day.
// It is past its window once today is after the expiration date and not yet
// in it while today is before the start date.
func (a Announcement) IsActive(today Date) bool {
	if !a.ExpirationDate.IsZero() && today.After(a.ExpirationDate) {
		return false
	}
	if a.StartDate != nil && !a.StartDate.IsZero() && today.Before(*a.StartDate) {
		return false
	}
	return true
}

// AnnouncementStatus is an announcement annotated for the management view
type AnnouncementStatus struct {
	Announcement
	IsActive bool `json:"is_active"`
}

// AnnouncementUpdate holds the fields replaced by an update. A nil StartDate
// removes any stored start date.
type AnnouncementUpdate struct {
	Title          string
	Message        string
	ExpirationDate Date
	StartDate      *Date
	UpdatedBy      string
	UpdatedAt      time.Time
}

// AnnouncementRequest holds the client supplied fields for create and update
type AnnouncementRequest struct {
	Title          string `json:"title"`
	Message        string `json:"message"`
	ExpirationDate string `json:"expiration_date"`
	StartDate      string `json:"start_date"`
}

// SortNewestFirst orders announcements by creation time, newest first
func SortNewestFirst(announcements []Announcement) {
	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})
}

// ActiveAnnouncements returns the announcements active on the given day, newest first
func ActiveAnnouncements(announcements []Announcement, today Date) []Announcement {
	active := make([]Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.IsActive(today) {
			active = append(active, a)
		}
	}
	SortNewestFirst(active)
	return active
}

// AnnotateAnnouncements returns every announcement with its active flag, newest first
func AnnotateAnnouncements(announcements []Announcement, today Date) []AnnouncementStatus {
	sorted := make([]Announcement, len(announcements))
	copy(sorted, announcements)
	SortNewestFirst(sorted)

	result := make([]AnnouncementStatus, 0, len(sorted))
	for _, a := range sorted {
		result = append(result, AnnouncementStatus{Announcement: a, IsActive: a.IsActive(today)})
	}
	return result
}
