package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"collab-api/models"
)

func seedProject(t *testing.T, projects *fakeProjectStore, ownerID string, collaborators ...string) string {
	t.Helper()
	id, err := projects.Insert(context.Background(), models.Project{
		Title:         "Demo project",
		OwnerID:       ownerID,
		Collaborators: append([]string{ownerID}, collaborators...),
		Status:        "active",
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seeding project: %v", err)
	}
	return id
}

func newInvitationFixture(t *testing.T) (*InvitationService, *fakeUserStore, *fakeProjectStore, *fakeInvitationStore, *fakeFeed) {
	t.Helper()
	users := newFakeUserStore()
	projects := newFakeProjectStore()
	invitations := newFakeInvitationStore()
	feed := &fakeFeed{}
	svc := NewInvitationService(projects, invitations, users, testNotifier(feed))
	return svc, users, projects, invitations, feed
}

func TestInviteOnlyOwner(t *testing.T) {
	svc, users, projects, _, _ := newInvitationFixture(t)

	owner := seedUser(t, users, "Owner")
	member := seedUser(t, users, "Member")
	invitee := seedUser(t, users, "Invitee")
	projectID := seedProject(t, projects, owner, member)

	if _, err := svc.Invite(context.Background(), member, projectID, invitee); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-owner invite: got %v, want %v", err, ErrForbidden)
	}
}

func TestInviteConflicts(t *testing.T) {
	svc, users, projects, _, _ := newInvitationFixture(t)

	owner := seedUser(t, users, "Owner")
	member := seedUser(t, users, "Member")
	invitee := seedUser(t, users, "Invitee")
	projectID := seedProject(t, projects, owner, member)

	if _, err := svc.Invite(context.Background(), owner, projectID, member); !errors.Is(err, ErrConflict) {
		t.Errorf("inviting a collaborator: got %v, want %v", err, ErrConflict)
	}

	if _, err := svc.Invite(context.Background(), owner, projectID, invitee); err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if _, err := svc.Invite(context.Background(), owner, projectID, invitee); !errors.Is(err, ErrConflict) {
		t.Errorf("repeat invite: got %v, want %v", err, ErrConflict)
	}
}

func TestInviteNotifiesInvitee(t *testing.T) {
	svc, users, projects, _, feed := newInvitationFixture(t)

	owner := seedUser(t, users, "Owner")
	invitee := seedUser(t, users, "Invitee")
	projectID := seedProject(t, projects, owner)

	invitation, err := svc.Invite(context.Background(), owner, projectID, invitee)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if invitation.Status != models.InvitationPending {
		t.Errorf("status = %s, want %s", invitation.Status, models.InvitationPending)
	}

	notifications, _ := feed.ListByUser(invitee)
	if len(notifications) != 1 || notifications[0].Type != models.NotificationProjectInvite {
		t.Errorf("invitee notifications = %+v, want one %s", notifications, models.NotificationProjectInvite)
	}
}

func TestRespondAcceptAddsExactlyOneCollaborator(t *testing.T) {
	svc, users, projects, invitations, feed := newInvitationFixture(t)

	owner := seedUser(t, users, "Owner")
	invitee := seedUser(t, users, "Invitee")
	projectID := seedProject(t, projects, owner)

	invitation, err := svc.Invite(context.Background(), owner, projectID, invitee)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}

	if err := svc.Respond(context.Background(), invitee, invitation.ID.Hex(), "accept"); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	project, _, _ := projects.GetByID(context.Background(), projectID)
	count := 0
	for _, id := range project.Collaborators {
		if id == invitee {
			count++
		}
	}
	if count != 1 {
		t.Errorf("invitee appears %d times in collaborators, want 1", count)
	}

	if _, found, _ := invitations.GetByID(context.Background(), invitation.ID.Hex()); found {
		t.Error("accepted invitation still stored, want removed")
	}

	ownerNotifications, _ := feed.ListByUser(owner)
	if len(ownerNotifications) != 1 || ownerNotifications[0].Type != models.NotificationInviteAccepted {
		t.Errorf("owner notifications = %+v, want one %s", ownerNotifications, models.NotificationInviteAccepted)
	}
}

func TestRespondDeclineLeavesProjectUntouched(t *testing.T) {
	svc, users, projects, invitations, feed := newInvitationFixture(t)

	owner := seedUser(t, users, "Owner")
	invitee := seedUser(t, users, "Invitee")
	projectID := seedProject(t, projects, owner)

	invitation, err := svc.Invite(context.Background(), owner, projectID, invitee)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}

	if err := svc.Respond(context.Background(), invitee, invitation.ID.Hex(), "decline"); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	project, _, _ := projects.GetByID(context.Background(), projectID)
	if project.IsCollaborator(invitee) {
		t.Error("declined invitee joined collaborators")
	}
	if _, found, _ := invitations.GetByID(context.Background(), invitation.ID.Hex()); found {
		t.Error("declined invitation still stored, want removed")
	}

	ownerNotifications, _ := feed.ListByUser(owner)
	if len(ownerNotifications) != 1 || ownerNotifications[0].Type != models.NotificationInviteDeclined {
		t.Errorf("owner notifications = %+v, want one %s", ownerNotifications, models.NotificationInviteDeclined)
	}
}

func TestRespondOnlyInvitee(t *testing.T) {
	svc, users, projects, _, _ := newInvitationFixture(t)

	owner := seedUser(t, users, "Owner")
	invitee := seedUser(t, users, "Invitee")
	outsider := seedUser(t, users, "Outsider")
	projectID := seedProject(t, projects, owner)

	invitation, err := svc.Invite(context.Background(), owner, projectID, invitee)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}

	if err := svc.Respond(context.Background(), outsider, invitation.ID.Hex(), "accept"); !errors.Is(err, ErrForbidden) {
		t.Errorf("outsider respond: got %v, want %v", err, ErrForbidden)
	}
	if err := svc.Respond(context.Background(), invitee, invitation.ID.Hex(), "ignore"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad action: got %v, want %v", err, ErrValidation)
	}
	if err := svc.Respond(context.Background(), invitee, "64f000000000000000000000", "accept"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown invitation: got %v, want %v", err, ErrNotFound)
	}
}

func TestListForUserOnlyPending(t *testing.T) {
	svc, users, projects, _, _ := newInvitationFixture(t)

	owner := seedUser(t, users, "Owner")
	invitee := seedUser(t, users, "Invitee")
	other := seedUser(t, users, "Other")
	first := seedProject(t, projects, owner)
	second := seedProject(t, projects, owner)

	if _, err := svc.Invite(context.Background(), owner, first, invitee); err != nil {
		t.Fatalf("Invite: %v", err)
	}
	accepted, err := svc.Invite(context.Background(), owner, second, invitee)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if _, err := svc.Invite(context.Background(), owner, first, other); err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if err := svc.Respond(context.Background(), invitee, accepted.ID.Hex(), "accept"); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	invitations, err := svc.ListForUser(context.Background(), invitee)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(invitations) != 1 || invitations[0].ProjectID != first {
		t.Errorf("pending invitations = %+v, want only the one for the first project", invitations)
	}
}
