package service

import (
	"context"
	"fmt"
	"time"

	"collab-api/models"
)

type CommentService struct {
	projects ProjectStore
	comments CommentStore
}

func NewCommentService(projects ProjectStore, comments CommentStore) *CommentService {
	return &CommentService{projects: projects, comments: comments}
}

func (s *CommentService) Add(ctx context.Context, actorID, projectID, body string) (models.Comment, error) {
	if body == "" {
		return models.Comment{}, fmt.Errorf("%w: body is required", ErrValidation)
	}

	project, found, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return models.Comment{}, err
	}
	if !found {
		return models.Comment{}, fmt.Errorf("%w: project not found", ErrNotFound)
	}
	if !project.IsCollaborator(actorID) {
		return models.Comment{}, fmt.Errorf("%w: not a project member", ErrForbidden)
	}

	comment := models.Comment{
		ProjectID: projectID,
		AuthorID:  actorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.comments.Insert(ctx, comment)
	if err != nil {
		return models.Comment{}, err
	}

	created, _, err := s.comments.GetByID(ctx, id)
	return created, err
}

func (s *CommentService) ListByProject(ctx context.Context, actorID, projectID string) ([]models.Comment, error) {
	project, found, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: project not found", ErrNotFound)
	}
	if !project.IsCollaborator(actorID) {
		return nil, fmt.Errorf("%w: not a project member", ErrForbidden)
	}
	return s.comments.ListByProject(ctx, projectID)
}

// Delete allows only the author to remove a comment, project owners
// included.
func (s *CommentService) Delete(ctx context.Context, actorID, commentID string) error {
	comment, found, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: comment not found", ErrNotFound)
	}
	if comment.AuthorID != actorID {
		return fmt.Errorf("%w: only the author may delete a comment", ErrForbidden)
	}
	return s.comments.Delete(ctx, commentID)
}
