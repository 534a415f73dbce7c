package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/linesmerrill/mergington-announcements-api/api"
	"github.com/linesmerrill/mergington-announcements-api/config"
	"github.com/linesmerrill/mergington-announcements-api/databases"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router *mux.Router
	Config config.Config
	// DB is set by Initialize, tests may set it directly before calling New
	DB     databases.DatabaseHelper
	client databases.ClientHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	m := api.MiddlewareDB{DB: databases.NewTeacherDatabase(a.DB)}
	an := Announcement{ADB: databases.NewAnnouncementDatabase(a.DB)}

	r := mux.NewRouter()
	r.Use(api.RequestMiddleware, api.MetricsMiddleware)

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	announcements := r.PathPrefix("/announcements").Subrouter()
	announcements.HandleFunc("/", an.ActiveAnnouncementsHandler).Methods("GET")
	announcements.Handle("/manage", m.RequireTeacher(http.HandlerFunc(an.ManageAnnouncementsHandler))).Methods("GET")
	announcements.Handle("/", m.RequireTeacher(http.HandlerFunc(an.CreateAnnouncementHandler))).Methods("POST")
	announcements.Handle("/{announcement_id}", m.RequireTeacher(http.HandlerFunc(an.UpdateAnnouncementHandler))).Methods("PUT")
	announcements.Handle("/{announcement_id}", m.RequireTeacher(http.HandlerFunc(an.DeleteAnnouncementHandler))).Methods("DELETE")

	return r
}

// Initialize connects to the database, seeds the teacher directory when asked
// to and builds the router
func (a *App) Initialize(ctx context.Context) error {
	if a.Config.QueryTimeout > 0 {
		api.QueryTimeout = a.Config.QueryTimeout
	}

	client, err := databases.NewClient(ctx, &a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}
	a.client = client

	pingCtx, cancel := api.WithQueryTimeout(ctx)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	a.DB = databases.NewDatabase(&a.Config, client)
	zap.S().Info("mergington-announcements-api has connected to the database")

	if a.Config.SeedTeachers {
		if _, err := databases.SeedTeachers(ctx, databases.NewTeacherDatabase(a.DB), databases.DefaultTeachers); err != nil {
			zap.S().With(err).Error("failed to seed teacher directory")
			return err
		}
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

// Close disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}
