package service

import (
	"context"
	"fmt"
	"time"

	"collab-api/models"
)

// InvitationService drives the project invitation state machine:
// none -> pending -> accepted | declined. The invitee joins the
// collaborator set only on acceptance; either outcome discards the
// invitation document and notifies the project owner.
type InvitationService struct {
	projects    ProjectStore
	invitations InvitationStore
	users       UserStore
	notifier    *Notifier
}

func NewInvitationService(projects ProjectStore, invitations InvitationStore, users UserStore, notifier *Notifier) *InvitationService {
	return &InvitationService{projects: projects, invitations: invitations, users: users, notifier: notifier}
}

func (s *InvitationService) Invite(ctx context.Context, actorID, projectID, inviteeID string) (models.ProjectInvitation, error) {
	if inviteeID == "" {
		return models.ProjectInvitation{}, fmt.Errorf("%w: invitee id is required", ErrValidation)
	}

	project, found, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.ProjectInvitation{}, err
	}
	if !found {
		return models.ProjectInvitation{}, fmt.Errorf("%w: project not found", ErrNotFound)
	}
	if project.OwnerID != actorID {
		return models.ProjectInvitation{}, fmt.Errorf("%w: only the owner may invite users", ErrForbidden)
	}

	_, found, err = s.users.GetByID(ctx, inviteeID)
	if err != nil {
		return models.ProjectInvitation{}, err
	}
	if !found {
		return models.ProjectInvitation{}, fmt.Errorf("%w: invitee not found", ErrNotFound)
	}

	if project.IsCollaborator(inviteeID) {
		return models.ProjectInvitation{}, fmt.Errorf("%w: user is already a collaborator", ErrConflict)
	}

	_, pending, err := s.invitations.PendingFor(ctx, projectID, inviteeID)
	if err != nil {
		return models.ProjectInvitation{}, err
	}
	if pending {
		return models.ProjectInvitation{}, fmt.Errorf("%w: user already has a pending invitation for this project", ErrConflict)
	}

	invitation := models.ProjectInvitation{
		ProjectID: projectID,
		InviteeID: inviteeID,
		InvitedBy: actorID,
		Status:    models.InvitationPending,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.invitations.Insert(ctx, invitation)
	if err != nil {
		return models.ProjectInvitation{}, err
	}

	created, _, err := s.invitations.GetByID(ctx, id)
	if err != nil {
		return models.ProjectInvitation{}, err
	}

	message := fmt.Sprintf("You have been invited to project %s", project.Title)
	if err := s.notifier.Notify(inviteeID, models.NotificationProjectInvite, message); err != nil {
		return models.ProjectInvitation{}, err
	}

	return created, nil
}

func (s *InvitationService) Respond(ctx context.Context, actorID, invitationID, action string) error {
	if action != "accept" && action != "decline" {
		return fmt.Errorf("%w: action must be accept or decline", ErrValidation)
	}

	invitation, found, err := s.invitations.GetByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: invitation not found", ErrNotFound)
	}
	if invitation.InviteeID != actorID {
		return fmt.Errorf("%w: only the invitee may respond", ErrForbidden)
	}
	if invitation.Status != models.InvitationPending {
		return fmt.Errorf("%w: invitation is not pending", ErrConflict)
	}

	project, found, err := s.projects.GetByID(ctx, invitation.ProjectID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: project not found", ErrNotFound)
	}

	actor, actorFound, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	if action == "accept" {
		if err := s.projects.AddCollaborator(ctx, invitation.ProjectID, actorID); err != nil {
			return err
		}
		if err := s.invitations.Delete(ctx, invitation.ID.Hex()); err != nil {
			return err
		}
		message := fmt.Sprintf("Your invitation to project %s was accepted", project.Title)
		if actorFound {
			message = fmt.Sprintf("%s %s accepted the invitation to project %s", actor.FirstName, actor.Surname, project.Title)
		}
		return s.notifier.Notify(project.OwnerID, models.NotificationInviteAccepted, message)
	}

	if err := s.invitations.Delete(ctx, invitation.ID.Hex()); err != nil {
		return err
	}
	message := fmt.Sprintf("Your invitation to project %s was declined", project.Title)
	if actorFound {
		message = fmt.Sprintf("%s %s declined the invitation to project %s", actor.FirstName, actor.Surname, project.Title)
	}
	return s.notifier.Notify(project.OwnerID, models.NotificationInviteDeclined, message)
}

func (s *InvitationService) ListForUser(ctx context.Context, userID string) ([]models.ProjectInvitation, error) {
	return s.invitations.ListForUser(ctx, userID)
}
