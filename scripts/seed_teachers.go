package main

import (
	"context"
	"fmt"
	"os"

	"github.com/linesmerrill/mergington-announcements-api/config"
	"github.com/linesmerrill/mergington-announcements-api/databases"
)

// Seeds the default staff accounts into an empty teacher directory
// Usage: DB_URI=... DB_NAME=... go run scripts/seed_teachers.go
func main() {
	conf := config.New()
	if conf.URL == "" || conf.DatabaseName == "" {
		fmt.Println("Usage: DB_URI=<mongo uri> DB_NAME=<database> go run scripts/seed_teachers.go")
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := databases.NewClient(ctx, conf)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	db := databases.NewDatabase(conf, client)
	inserted, err := databases.SeedTeachers(ctx, databases.NewTeacherDatabase(db), databases.DefaultTeachers)
	if err != nil {
		fmt.Printf("Error seeding teachers: %v\n", err)
		os.Exit(1)
	}

	if inserted == 0 {
		fmt.Println("Teacher directory already populated, nothing to do")
		return
	}
	fmt.Printf("Seeded %d teachers:\n", inserted)
	for _, t := range databases.DefaultTeachers {
		fmt.Printf("  %s (%s)\n", t.Username, t.Role)
	}
}
