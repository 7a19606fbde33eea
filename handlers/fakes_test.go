package handlers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"collab-api/models"
	"collab-api/security"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compact in-memory stores backing the handler tests.

type fakeUsers struct {
	users map[string]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]models.User{}}
}

func (f *fakeUsers) Insert(_ context.Context, u models.User) (string, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.ID.Hex()] = u
	return u.ID.Hex(), nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (models.User, bool, error) {
	u, ok := f.users[id]
	return u, ok, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (models.User, bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (f *fakeUsers) List(_ context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUsers) UpdateSettings(_ context.Context, id, firstName, surname, telephone string) error {
	u := f.users[id]
	u.FirstName = firstName
	u.Surname = surname
	u.Telephone = telephone
	f.users[id] = u
	return nil
}

func (f *fakeUsers) AddConnection(_ context.Context, userID, otherID string) error {
	u := f.users[userID]
	u.Connections = append(u.Connections, otherID)
	f.users[userID] = u
	return nil
}

func (f *fakeUsers) RemoveConnection(_ context.Context, userID, otherID string) error {
	u := f.users[userID]
	kept := []string{}
	for _, id := range u.Connections {
		if id != otherID {
			kept = append(kept, id)
		}
	}
	u.Connections = kept
	f.users[userID] = u
	return nil
}

type fakeRequests struct {
	requests map[string]models.ConnectionRequest
}

func newFakeRequests() *fakeRequests {
	return &fakeRequests{requests: map[string]models.ConnectionRequest{}}
}

func (f *fakeRequests) Insert(_ context.Context, req models.ConnectionRequest) (string, error) {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	f.requests[req.ID.Hex()] = req
	return req.ID.Hex(), nil
}

func (f *fakeRequests) GetByID(_ context.Context, id string) (models.ConnectionRequest, bool, error) {
	req, ok := f.requests[id]
	return req, ok, nil
}

func (f *fakeRequests) PendingBetween(_ context.Context, a, b string) (models.ConnectionRequest, bool, error) {
	for _, req := range f.requests {
		if req.Status != models.ConnectionPending {
			continue
		}
		if (req.From == a && req.To == b) || (req.From == b && req.To == a) {
			return req, true, nil
		}
	}
	return models.ConnectionRequest{}, false, nil
}

func (f *fakeRequests) ListPendingFor(_ context.Context, userID string) ([]models.ConnectionRequest, error) {
	requests := []models.ConnectionRequest{}
	for _, req := range f.requests {
		if req.To == userID && req.Status == models.ConnectionPending {
			requests = append(requests, req)
		}
	}
	return requests, nil
}

func (f *fakeRequests) Delete(_ context.Context, id string) error {
	delete(f.requests, id)
	return nil
}

type fakeFeed struct {
	notifications []models.Notification
}

func (f *fakeFeed) Insert(n models.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeFeed) ListByUser(userID string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	for _, n := range f.notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (f *fakeFeed) MarkRead(userID string, createdAt time.Time) error {
	for i, n := range f.notifications {
		if n.UserID == userID && n.CreatedAt.Equal(createdAt) {
			f.notifications[i].Read = true
		}
	}
	return nil
}

func testLogger() *log.Logger {
	return log.New(os.Stdout, "[test] ", log.LstdFlags)
}

// asUser stamps the request context the way AuthMiddleware does.
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), security.KeyUserID, userID))
}
