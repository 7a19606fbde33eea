package service

import (
	"context"
	"fmt"
	"time"

	"collab-api/models"
)

// AttachmentStore is the HDFS-backed file store for project
// attachments. ProjectService only needs it for the delete cascade; a
// nil store means attachments are disabled.
type AttachmentStore interface {
	Save(projectID, name string, content []byte) error
	Read(projectID, name string) ([]byte, error)
	List(projectID string) ([]string, error)
	Remove(projectID, name string) error
	RemoveProject(projectID string) error
}

type ProjectService struct {
	projects    ProjectStore
	tasks       TaskStore
	comments    CommentStore
	invitations InvitationStore
	users       UserStore
	files       AttachmentStore
	notifier    *Notifier
}

func NewProjectService(projects ProjectStore, tasks TaskStore, comments CommentStore, invitations InvitationStore, users UserStore, files AttachmentStore, notifier *Notifier) *ProjectService {
	return &ProjectService{
		projects:    projects,
		tasks:       tasks,
		comments:    comments,
		invitations: invitations,
		users:       users,
		files:       files,
		notifier:    notifier,
	}
}

func (s *ProjectService) Create(ctx context.Context, ownerID, title, description string, deadline time.Time) (models.Project, error) {
	if title == "" {
		return models.Project{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	project := models.Project{
		Title:         title,
		Description:   description,
		OwnerID:       ownerID,
		Collaborators: []string{ownerID},
		Deadline:      deadline,
		Status:        "active",
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.projects.Insert(ctx, project)
	if err != nil {
		return models.Project{}, err
	}

	created, _, err := s.projects.GetByID(ctx, id)
	return created, err
}

func (s *ProjectService) Get(ctx context.Context, actorID, projectID string) (models.Project, error) {
	project, found, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}
	if !found {
		return models.Project{}, fmt.Errorf("%w: project not found", ErrNotFound)
	}
	if !project.IsCollaborator(actorID) {
		return models.Project{}, fmt.Errorf("%w: not a project member", ErrForbidden)
	}
	return project, nil
}

func (s *ProjectService) ListForUser(ctx context.Context, userID string) ([]models.Project, error) {
	return s.projects.ListForUser(ctx, userID)
}

func (s *ProjectService) UpdateMeta(ctx context.Context, actorID, projectID, title, description, status string, deadline time.Time) (models.Project, error) {
	project, found, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}
	if !found {
		return models.Project{}, fmt.Errorf("%w: project not found", ErrNotFound)
	}
	if project.OwnerID != actorID {
		return models.Project{}, fmt.Errorf("%w: only the owner may update the project", ErrForbidden)
	}

	if title != "" {
		project.Title = title
	}
	if description != "" {
		project.Description = description
	}
	if status != "" {
		project.Status = status
	}
	if !deadline.IsZero() {
		project.Deadline = deadline
	}

	if err := s.projects.UpdateMeta(ctx, project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Delete removes the project and cascades to its tasks, comments,
// pending invitations and attachments, then notifies the remaining
// collaborators.
func (s *ProjectService) Delete(ctx context.Context, actorID, projectID string) error {
	project, found, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: project not found", ErrNotFound)
	}
	if project.OwnerID != actorID {
		return fmt.Errorf("%w: only the owner may delete the project", ErrForbidden)
	}

	if err := s.tasks.DeleteByProject(ctx, projectID); err != nil {
		return err
	}
	if err := s.comments.DeleteByProject(ctx, projectID); err != nil {
		return err
	}
	if err := s.invitations.DeleteByProject(ctx, projectID); err != nil {
		return err
	}
	if s.files != nil {
		if err := s.files.RemoveProject(projectID); err != nil {
			return err
		}
	}
	if err := s.projects.Delete(ctx, projectID); err != nil {
		return err
	}

	message := fmt.Sprintf("Project %s was deleted by its owner", project.Title)
	return s.notifier.NotifyAll(othersOf(project, actorID), models.NotificationProjectDeleted, message)
}

func (s *ProjectService) Leave(ctx context.Context, actorID, projectID string) error {
	project, found, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: project not found", ErrNotFound)
	}
	if project.OwnerID == actorID {
		return fmt.Errorf("%w: the owner cannot leave the project, delete it instead", ErrConflict)
	}
	if !project.IsCollaborator(actorID) {
		return fmt.Errorf("%w: not a project member", ErrNotFound)
	}

	if err := s.projects.RemoveCollaborator(ctx, projectID, actorID); err != nil {
		return err
	}

	actor, found, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("A member left project %s", project.Title)
	if found {
		message = fmt.Sprintf("%s %s left project %s", actor.FirstName, actor.Surname, project.Title)
	}
	return s.notifier.NotifyAll(othersOf(project, actorID), models.NotificationMemberLeft, message)
}

func (s *ProjectService) RemoveCollaborator(ctx context.Context, actorID, projectID, userID string) error {
	project, found, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: project not found", ErrNotFound)
	}
	if project.OwnerID != actorID {
		return fmt.Errorf("%w: only the owner may remove collaborators", ErrForbidden)
	}
	if userID == project.OwnerID {
		return fmt.Errorf("%w: the owner cannot be removed from the project", ErrConflict)
	}
	if !project.IsCollaborator(userID) {
		return fmt.Errorf("%w: user is not a collaborator", ErrNotFound)
	}

	if err := s.projects.RemoveCollaborator(ctx, projectID, userID); err != nil {
		return err
	}

	message := fmt.Sprintf("You were removed from project %s", project.Title)
	if err := s.notifier.Notify(userID, models.NotificationMemberRemoved, message); err != nil {
		return err
	}

	remaining := []string{}
	for _, id := range project.Collaborators {
		if id != userID && id != actorID {
			remaining = append(remaining, id)
		}
	}
	message = fmt.Sprintf("A member was removed from project %s", project.Title)
	return s.notifier.NotifyAll(remaining, models.NotificationMemberRemoved, message)
}

// othersOf returns the collaborator set minus the acting user.
func othersOf(project models.Project, actorID string) []string {
	others := []string{}
	for _, id := range project.Collaborators {
		if id != actorID {
			others = append(others, id)
		}
	}
	return others
}
