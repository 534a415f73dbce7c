package databases

// go generate: mockery --name TeacherDatabase

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/mergington-announcements-api/models"
)

const teacherCollectionName = "teachers"

// TeacherDatabase contains the methods to use with the teacher database
type TeacherDatabase interface {
	FindByUsername(ctx context.Context, username string) (*models.Teacher, error)
	InsertOne(ctx context.Context, teacher models.Teacher) error
	CountDocuments(ctx context.Context) (int64, error)
}

type teacherDatabase struct {
	db DatabaseHelper
}

// NewTeacherDatabase initializes a new instance of teacher database with the provided db connection
func NewTeacherDatabase(db DatabaseHelper) TeacherDatabase {
	return &teacherDatabase{
		db: db,
	}
}

// FindByUsername looks a teacher up by exact username. A missing teacher is
// reported as a wrapped mongo.ErrNoDocuments.
func (t *teacherDatabase) FindByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := t.db.Collection(teacherCollectionName).FindOne(ctx, bson.M{"_id": username}).Decode(teacher)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find teacher %q", username)
	}
	return teacher, nil
}

func (t *teacherDatabase) InsertOne(ctx context.Context, teacher models.Teacher) error {
	_, err := t.db.Collection(teacherCollectionName).InsertOne(ctx, teacher)
	return errors.Wrapf(err, "failed to insert teacher %q", teacher.Username)
}

func (t *teacherDatabase) CountDocuments(ctx context.Context) (int64, error) {
	n, err := t.db.Collection(teacherCollectionName).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count teachers")
	}
	return n, nil
}
