package databases

// go generate: mockery --name AnnouncementDatabase

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/mergington-announcements-api/models"
)

const announcementCollectionName = "announcements"

// AnnouncementDatabase contains the methods to use with the announcement database
type AnnouncementDatabase interface {
	FindAll(ctx context.Context) ([]models.Announcement, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error)
	InsertOne(ctx context.Context, announcement models.Announcement) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update models.AnnouncementUpdate) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type announcementDatabase struct {
	db DatabaseHelper
}

// NewAnnouncementDatabase initializes a new instance of announcement database with the provided db connection
func NewAnnouncementDatabase(db DatabaseHelper) AnnouncementDatabase {
	return &announcementDatabase{
		db: db,
	}
}

func (a *announcementDatabase) FindAll(ctx context.Context) ([]models.Announcement, error) {
	cursor, err := a.db.Collection(announcementCollectionName).Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query announcements")
	}
	var announcements []models.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, errors.Wrap(err, "failed to decode announcements")
	}
	return announcements, nil
}

// FindByID returns mongo.ErrNoDocuments (wrapped) when no announcement has the id
func (a *announcementDatabase) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	announcement := &models.Announcement{}
	err := a.db.Collection(announcementCollectionName).FindOne(ctx, bson.M{"_id": id}).Decode(announcement)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find announcement %s", id.Hex())
	}
	return announcement, nil
}

func (a *announcementDatabase) InsertOne(ctx context.Context, announcement models.Announcement) (primitive.ObjectID, error) {
	res, err := a.db.Collection(announcementCollectionName).InsertOne(ctx, announcement)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "failed to insert announcement")
	}
	id, ok := res.InsertedID().(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id type %T", res.InsertedID())
	}
	return id, nil
}

// UpdateByID replaces the mutable fields in one atomic write and returns the
// number of matched documents.
func (a *announcementDatabase) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.AnnouncementUpdate) (int64, error) {
	res, err := a.db.Collection(announcementCollectionName).UpdateOne(ctx, bson.M{"_id": id}, updateDocument(update))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to update announcement %s", id.Hex())
	}
	return res.MatchedCount, nil
}

func (a *announcementDatabase) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := a.db.Collection(announcementCollectionName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to delete announcement %s", id.Hex())
	}
	return res.DeletedCount, nil
}

func updateDocument(update models.AnnouncementUpdate) bson.M {
	set := bson.M{
		"title":           update.Title,
		"message":         update.Message,
		"expiration_date": update.ExpirationDate,
		"updated_by":      update.UpdatedBy,
		"updated_at":      update.UpdatedAt,
	}
	doc := bson.M{"$set": set}
	if update.StartDate != nil {
		set["start_date"] = *update.StartDate
	} else {
		doc["$unset"] = bson.M{"start_date": ""}
	}
	return doc
}
