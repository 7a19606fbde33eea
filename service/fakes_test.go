package service

import (
	"context"
	"log"
	"os"
	"time"

	"collab-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store fakes backing the service tests.

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, u models.User) (string, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.ID.Hex()] = u
	return u.ID.Hex(), nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (models.User, bool, error) {
	u, ok := f.users[id]
	return u, ok, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (models.User, bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserStore) UpdateSettings(_ context.Context, id, firstName, surname, telephone string) error {
	u := f.users[id]
	u.FirstName = firstName
	u.Surname = surname
	u.Telephone = telephone
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) AddConnection(_ context.Context, userID, otherID string) error {
	u := f.users[userID]
	for _, id := range u.Connections {
		if id == otherID {
			return nil
		}
	}
	u.Connections = append(u.Connections, otherID)
	f.users[userID] = u
	return nil
}

func (f *fakeUserStore) RemoveConnection(_ context.Context, userID, otherID string) error {
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

type fakeRequestStore struct {
	requests map[string]models.ConnectionRequest
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: map[string]models.ConnectionRequest{}}
}

func (f *fakeRequestStore) Insert(_ context.Context, req models.ConnectionRequest) (string, error) {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	f.requests[req.ID.Hex()] = req
	return req.ID.Hex(), nil
}

func (f *fakeRequestStore) GetByID(_ context.Context, id string) (models.ConnectionRequest, bool, error) {
	req, ok := f.requests[id]
	return req, ok, nil
}

func (f *fakeRequestStore) PendingBetween(_ context.Context, a, b string) (models.ConnectionRequest, bool, error) {
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

func (f *fakeRequestStore) ListPendingFor(_ context.Context, userID string) ([]models.ConnectionRequest, error) {
	requests := []models.ConnectionRequest{}
	for _, req := range f.requests {
		if req.To == userID && req.Status == models.ConnectionPending {
			requests = append(requests, req)
		}
	}
	return requests, nil
}

func (f *fakeRequestStore) Delete(_ context.Context, id string) error {
	delete(f.requests, id)
	return nil
}

type fakeProjectStore struct {
	projects map[string]models.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[string]models.Project{}}
}

func (f *fakeProjectStore) Insert(_ context.Context, p models.Project) (string, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.projects[p.ID.Hex()] = p
	return p.ID.Hex(), nil
}

func (f *fakeProjectStore) GetByID(_ context.Context, id string) (models.Project, bool, error) {
	p, ok := f.projects[id]
	return p, ok, nil
}

func (f *fakeProjectStore) ListForUser(_ context.Context, userID string) ([]models.Project, error) {
	projects := []models.Project{}
	for _, p := range f.projects {
		if p.IsCollaborator(userID) {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (f *fakeProjectStore) UpdateMeta(_ context.Context, p models.Project) error {
	stored := f.projects[p.ID.Hex()]
	stored.Title = p.Title
	stored.Description = p.Description
	stored.Status = p.Status
	stored.Deadline = p.Deadline
	f.projects[p.ID.Hex()] = stored
	return nil
}

func (f *fakeProjectStore) AddCollaborator(_ context.Context, projectID, userID string) error {
	p := f.projects[projectID]
	for _, id := range p.Collaborators {
		if id == userID {
			return nil
		}
	}
	p.Collaborators = append(p.Collaborators, userID)
	f.projects[projectID] = p
	return nil
}

func (f *fakeProjectStore) RemoveCollaborator(_ context.Context, projectID, userID string) error {
	p := f.projects[projectID]
	kept := []string{}
	for _, id := range p.Collaborators {
		if id != userID {
			kept = append(kept, id)
		}
	}
	p.Collaborators = kept
	f.projects[projectID] = p
	return nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id string) error {
	delete(f.projects, id)
	return nil
}

type fakeTaskStore struct {
	tasks map[string]models.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: map[string]models.Task{}}
}

func (f *fakeTaskStore) Insert(_ context.Context, t models.Task) (string, error) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	f.tasks[t.ID.Hex()] = t
	return t.ID.Hex(), nil
}

func (f *fakeTaskStore) GetByID(_ context.Context, id string) (models.Task, bool, error) {
	t, ok := f.tasks[id]
	return t, ok, nil
}

func (f *fakeTaskStore) ListByProject(_ context.Context, projectID string) ([]models.Task, error) {
	tasks := []models.Task{}
	for _, t := range f.tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (f *fakeTaskStore) Update(_ context.Context, t models.Task) error {
	f.tasks[t.ID.Hex()] = t
	return nil
}

func (f *fakeTaskStore) Delete(_ context.Context, id string) error {
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskStore) DeleteByProject(_ context.Context, projectID string) error {
	for id, t := range f.tasks {
		if t.ProjectID == projectID {
			delete(f.tasks, id)
		}
	}
	return nil
}

type fakeCommentStore struct {
	comments map[string]models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[string]models.Comment{}}
}

func (f *fakeCommentStore) Insert(_ context.Context, c models.Comment) (string, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	f.comments[c.ID.Hex()] = c
	return c.ID.Hex(), nil
}

func (f *fakeCommentStore) GetByID(_ context.Context, id string) (models.Comment, bool, error) {
	c, ok := f.comments[id]
	return c, ok, nil
}

func (f *fakeCommentStore) ListByProject(_ context.Context, projectID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, c := range f.comments {
		if c.ProjectID == projectID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id string) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentStore) DeleteByProject(_ context.Context, projectID string) error {
	for id, c := range f.comments {
		if c.ProjectID == projectID {
			delete(f.comments, id)
		}
	}
	return nil
}

type fakeInvitationStore struct {
	invitations map[string]models.ProjectInvitation
}

func newFakeInvitationStore() *fakeInvitationStore {
	return &fakeInvitationStore{invitations: map[string]models.ProjectInvitation{}}
}

func (f *fakeInvitationStore) Insert(_ context.Context, inv models.ProjectInvitation) (string, error) {
	if inv.ID.IsZero() {
		inv.ID = primitive.NewObjectID()
	}
	f.invitations[inv.ID.Hex()] = inv
	return inv.ID.Hex(), nil
}

func (f *fakeInvitationStore) GetByID(_ context.Context, id string) (models.ProjectInvitation, bool, error) {
	inv, ok := f.invitations[id]
	return inv, ok, nil
}

func (f *fakeInvitationStore) PendingFor(_ context.Context, projectID, inviteeID string) (models.ProjectInvitation, bool, error) {
	for _, inv := range f.invitations {
		if inv.ProjectID == projectID && inv.InviteeID == inviteeID && inv.Status == models.InvitationPending {
			return inv, true, nil
		}
	}
	return models.ProjectInvitation{}, false, nil
}

func (f *fakeInvitationStore) ListForUser(_ context.Context, userID string) ([]models.ProjectInvitation, error) {
	invitations := []models.ProjectInvitation{}
	for _, inv := range f.invitations {
		if inv.InviteeID == userID && inv.Status == models.InvitationPending {
			invitations = append(invitations, inv)
		}
	}
	return invitations, nil
}

func (f *fakeInvitationStore) Delete(_ context.Context, id string) error {
	delete(f.invitations, id)
	return nil
}

func (f *fakeInvitationStore) DeleteByProject(_ context.Context, projectID string) error {
	for id, inv := range f.invitations {
		if inv.ProjectID == projectID {
			delete(f.invitations, id)
		}
	}
	return nil
}

type fakeConversationStore struct {
	conversations map[string]models.Conversation
}

func newFakeConversationStore() *fakeConversationStore {
	return &fakeConversationStore{conversations: map[string]models.Conversation{}}
}

func (f *fakeConversationStore) Insert(_ context.Context, c models.Conversation) (string, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	f.conversations[c.ID.Hex()] = c
	return c.ID.Hex(), nil
}

func (f *fakeConversationStore) GetByID(_ context.Context, id string) (models.Conversation, bool, error) {
	c, ok := f.conversations[id]
	return c, ok, nil
}

func (f *fakeConversationStore) ByParticipants(_ context.Context, a, b string) (models.Conversation, bool, error) {
	for _, c := range f.conversations {
		if c.HasParticipant(a) && c.HasParticipant(b) {
			return c, true, nil
		}
	}
	return models.Conversation{}, false, nil
}

func (f *fakeConversationStore) ListForUser(_ context.Context, userID string) ([]models.Conversation, error) {
	conversations := []models.Conversation{}
	for _, c := range f.conversations {
		if c.HasParticipant(userID) {
			conversations = append(conversations, c)
		}
	}
	return conversations, nil
}

func (f *fakeConversationStore) SetLastRead(_ context.Context, conversationID, userID string, at time.Time) error {
	c := f.conversations[conversationID]
	if c.LastRead == nil {
		c.LastRead = map[string]time.Time{}
	}
	c.LastRead[userID] = at
	f.conversations[conversationID] = c
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

type fakeMessageFeed struct {
	messages []models.ChatMessage
}

func (f *fakeMessageFeed) Insert(m models.ChatMessage) error {
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeMessageFeed) ListByConversation(conversationID string) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

type fakeFileStore struct {
	files           map[string]map[string][]byte
	removedProjects []string
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: map[string]map[string][]byte{}}
}

func (f *fakeFileStore) Save(projectID, name string, content []byte) error {
	if f.files[projectID] == nil {
		f.files[projectID] = map[string][]byte{}
	}
	f.files[projectID][name] = content
	return nil
}

func (f *fakeFileStore) Read(projectID, name string) ([]byte, error) {
	content, ok := f.files[projectID][name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}

func (f *fakeFileStore) List(projectID string) ([]string, error) {
	names := []string{}
	for name := range f.files[projectID] {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeFileStore) Remove(projectID, name string) error {
	delete(f.files[projectID], name)
	return nil
}

func (f *fakeFileStore) RemoveProject(projectID string) error {
	delete(f.files, projectID)
	f.removedProjects = append(f.removedProjects, projectID)
	return nil
}

func testNotifier(feed *fakeFeed) *Notifier {
	return NewNotifier(feed, nil, log.New(os.Stdout, "[test] ", log.LstdFlags))
}
