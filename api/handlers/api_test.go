package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/mergington-announcements-api/api"
	"github.com/linesmerrill/mergington-announcements-api/api/handlers"
	mocksdb "github.com/linesmerrill/mergington-announcements-api/databases/mocks"
	"github.com/linesmerrill/mergington-announcements-api/models"
)

type routerFixture struct {
	app           handlers.App
	db            *mocksdb.DatabaseHelper
	teachers      *mocksdb.CollectionHelper
	announcements *mocksdb.CollectionHelper
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		db:            &mocksdb.DatabaseHelper{},
		teachers:      &mocksdb.CollectionHelper{},
		announcements: &mocksdb.CollectionHelper{},
	}
	f.db.On("Collection", "teachers").Return(f.teachers)
	f.db.On("Collection", "announcements").Return(f.announcements)
	f.app = handlers.App{DB: f.db}
	f.app.Router = f.app.New()
	return f
}

func (f *routerFixture) unknownTeacher(username string) {
	res := &mocksdb.SingleResultHelper{}
	res.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	f.teachers.On("FindOne", mock.Anything, bson.M{"_id": username}).Return(res)
}

func (f *routerFixture) knownTeacher(username, role string) {
	res := &mocksdb.SingleResultHelper{}
	res.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		t := args.Get(0).(*models.Teacher)
		t.Username = username
		t.Role = role
	})
	f.teachers.On("FindOne", mock.Anything, bson.M{"_id": username}).Return(res)
}

func (f *routerFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.app.Router.ServeHTTP(rr, req)
	return rr
}

func TestApp_HealthCheck(t *testing.T) {
	f := newRouterFixture()

	rr := f.serve(httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alive": true}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(api.RequestIDHeader))
}

func TestApp_RequestIDIsEchoed(t *testing.T) {
	f := newRouterFixture()

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(api.RequestIDHeader, "req-42")
	rr := f.serve(req)

	assert.Equal(t, "req-42", rr.Header().Get(api.RequestIDHeader))
}

func TestApp_UnknownRoute(t *testing.T) {
	f := newRouterFixture()

	rr := f.serve(httptest.NewRequest("GET", "/activities", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestApp_Metrics(t *testing.T) {
	f := newRouterFixture()

	rr := f.serve(httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestApp_ListActiveAnnouncements(t *testing.T) {
	f := newRouterFixture()
	cursor := &mocksdb.CursorHelper{}
	cursor.On("All", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		out := args.Get(1).(*[]models.Announcement)
		*out = []models.Announcement{
			{ID: primitive.NewObjectID(), Title: "Forever", Message: "m", ExpirationDate: models.NewDate(2999, time.January, 1), CreatedAt: time.Now()},
			{ID: primitive.NewObjectID(), Title: "Gone", Message: "m", ExpirationDate: models.NewDate(2001, time.January, 1), CreatedAt: time.Now()},
		}
	})
	f.announcements.On("Find", mock.Anything, bson.M{}).Return(cursor, nil)

	rr := f.serve(httptest.NewRequest("GET", "/announcements/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []models.Announcement
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Forever", got[0].Title)
	f.teachers.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestApp_ManageRequiresTeacher(t *testing.T) {
	f := newRouterFixture()
	f.unknownTeacher("ghost")

	rr := f.serve(httptest.NewRequest("GET", "/announcements/manage?teacher_username=ghost", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"detail":"Authentication required"}`, rr.Body.String())
	f.announcements.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestApp_ManageWithoutUsername(t *testing.T) {
	f := newRouterFixture()

	rr := f.serve(httptest.NewRequest("GET", "/announcements/manage", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	f.teachers.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}

func TestApp_AuthorizationPrecedesValidation(t *testing.T) {
	f := newRouterFixture()
	f.unknownTeacher("ghost")

	rr := f.serve(httptest.NewRequest("POST", "/announcements/?teacher_username=ghost&title=&expiration_date=nope", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	f.announcements.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestApp_TeacherLookupFailure(t *testing.T) {
	f := newRouterFixture()
	res := &mocksdb.SingleResultHelper{}
	res.On("Decode", mock.Anything).Return(mongo.ErrClientDisconnected)
	f.teachers.On("FindOne", mock.Anything, bson.M{"_id": "principal"}).Return(res)

	rr := f.serve(httptest.NewRequest("DELETE", "/announcements/"+primitive.NewObjectID().Hex()+"?teacher_username=principal", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"detail":"Failed to verify teacher"}`, rr.Body.String())
}

func TestApp_DeleteMalformedID(t *testing.T) {
	f := newRouterFixture()
	f.knownTeacher("principal", "admin")

	rr := f.serve(httptest.NewRequest("DELETE", "/announcements/xyz?teacher_username=principal", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"detail":"Invalid announcement ID"}`, rr.Body.String())
}

func TestApp_CreateThroughRouter(t *testing.T) {
	f := newRouterFixture()
	f.knownTeacher("mchen", "teacher")
	id := primitive.NewObjectID()
	inserted := &mocksdb.InsertOneResultHelper{}
	inserted.On("InsertedID").Return(id)
	f.announcements.On("InsertOne", mock.Anything, mock.MatchedBy(func(a models.Announcement) bool {
		return a.CreatedBy == "mchen" && a.Title == "Chess Club"
	})).Return(inserted, nil)

	rr := f.serve(httptest.NewRequest("POST", "/announcements/?teacher_username=mchen&title=Chess+Club&message=Thursdays&expiration_date=2999-12-31", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body models.CreateAnnouncementResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, id, body.Announcement.ID)
	assert.Equal(t, "2999-12-31", body.Announcement.ExpirationDate.String())
}
