package databases

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/mergington-announcements-api/models"
)

// DefaultTeacher is a staff account created when the directory is empty
type DefaultTeacher struct {
	Username    string
	DisplayName string
	Role        string
	Password    string
}

// DefaultTeachers are the staff accounts seeded into an empty teacher directory
var DefaultTeachers = []DefaultTeacher{
	{Username: "mrodriguez", DisplayName: "Ms. Rodriguez", Role: "teacher", Password: "art123"},
	{Username: "mchen", DisplayName: "Mr. Chen", Role: "teacher", Password: "chess456"},
	{Username: "principal", DisplayName: "Principal Martinez", Role: "admin", Password: "admin789"},
}

// SeedTeachers inserts the given accounts when the teacher directory is empty and
// returns how many were inserted. Passwords are stored as bcrypt hashes.
func SeedTeachers(ctx context.Context, tdb TeacherDatabase, teachers []DefaultTeacher) (int, error) {
	count, err := tdb.CountDocuments(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		zap.S().Debugw("teacher directory already populated, skipping seed", "count", count)
		return 0, nil
	}

	inserted := 0
	for _, t := range teachers {
		hash, err := bcrypt.GenerateFromPassword([]byte(t.Password), bcrypt.DefaultCost)
		if err != nil {
			return inserted, errors.Wrapf(err, "failed to hash password for %q", t.Username)
		}
		err = tdb.InsertOne(ctx, models.Teacher{
			Username:    t.Username,
			DisplayName: t.DisplayName,
			Role:        t.Role,
			Password:    string(hash),
		})
		if err != nil {
			return inserted, err
		}
		inserted++
	}
	zap.S().Infow("seeded teacher directory", "inserted", inserted)
	return inserted, nil
}
