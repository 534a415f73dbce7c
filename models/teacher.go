package models

// Teacher holds the structure for the teachers collection in mongo. The
// username is the document key.
type Teacher struct {
	Username    string `json:"username" bson:"_id"`
	DisplayName string `json:"display_name" bson:"display_name"`
	Role        string `json:"role" bson:"role"`
	Password    string `json:"-" bson:"password"`
}
