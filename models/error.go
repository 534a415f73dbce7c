package models

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the body written for successful mutations
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateAnnouncementResponse returns the stored announcement with its new id
type CreateAnnouncementResponse struct {
	Message      string       `json:"message"`
	Announcement Announcement `json:"announcement"`
}
