package service

import (
	"context"
	"fmt"
)

// AttachmentService guards the HDFS file store with project
// membership checks.
type AttachmentService struct {
	projects ProjectStore
	files    AttachmentStore
}

func NewAttachmentService(projects ProjectStore, files AttachmentStore) *AttachmentService {
	return &AttachmentService{projects: projects, files: files}
}

func (s *AttachmentService) memberProject(ctx context.Context, actorID, projectID string) error {
	project, found, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: project not found", ErrNotFound)
	}
	if !project.IsCollaborator(actorID) {
		return fmt.Errorf("%w: not a project member", ErrForbidden)
	}
	return nil
}

func (s *AttachmentService) Upload(ctx context.Context, actorID, projectID, name string, content []byte) error {
	if name == "" {
		return fmt.Errorf("%w: file name is required", ErrValidation)
	}
	if err := s.memberProject(ctx, actorID, projectID); err != nil {
		return err
	}
	return s.files.Save(projectID, name, content)
}

func (s *AttachmentService) Download(ctx context.Context, actorID, projectID, name string) ([]byte, error) {
	if err := s.memberProject(ctx, actorID, projectID); err != nil {
		return nil, err
	}
	content, err := s.files.Read(projectID, name)
	if err != nil {
		return nil, fmt.Errorf("%w: file not found", ErrNotFound)
	}
	return content, nil
}

func (s *AttachmentService) List(ctx context.Context, actorID, projectID string) ([]string, error) {
	if err := s.memberProject(ctx, actorID, projectID); err != nil {
		return nil, err
	}
	return s.files.List(projectID)
}

func (s *AttachmentService) Remove(ctx context.Context, actorID, projectID, name string) error {
	if err := s.memberProject(ctx, actorID, projectID); err != nil {
		return err
	}
	return s.files.Remove(projectID, name)
}
