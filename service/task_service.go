package service

import (
	"context"
	"fmt"

	"collab-api/models"
)

type TaskService struct {
	projects ProjectStore
	tasks    TaskStore
}

func NewTaskService(projects ProjectStore, tasks TaskStore) *TaskService {
	return &TaskService{projects: projects, tasks: tasks}
}

func (s *TaskService) memberProject(ctx context.Context, actorID, projectID string) (models.Project, error) {
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

func (s *TaskService) Create(ctx context.Context, actorID, projectID, description string, milestones []models.Milestone) (models.Task, error) {
	if description == "" {
		return models.Task{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if _, err := s.memberProject(ctx, actorID, projectID); err != nil {
		return models.Task{}, err
	}

	if milestones == nil {
		milestones = []models.Milestone{}
	}
	task := models.Task{
		ProjectID:   projectID,
		Description: description,
		Milestones:  milestones,
		Completed:   false,
	}
	id, err := s.tasks.Insert(ctx, task)
	if err != nil {
		return models.Task{}, err
	}

	created, _, err := s.tasks.GetByID(ctx, id)
	return created, err
}

func (s *TaskService) ListByProject(ctx context.Context, actorID, projectID string) ([]models.Task, error) {
	if _, err := s.memberProject(ctx, actorID, projectID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *TaskService) Update(ctx context.Context, actorID, taskID, description string, milestones []models.Milestone, completed bool) (models.Task, error) {
	task, found, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return models.Task{}, err
	}
	if !found {
		return models.Task{}, fmt.Errorf("%w: task not found", ErrNotFound)
	}
	if _, err := s.memberProject(ctx, actorID, task.ProjectID); err != nil {
		return models.Task{}, err
	}

	if description != "" {
		task.Description = description
	}
	if milestones != nil {
		task.Milestones = milestones
	}
	task.Completed = completed

	if err := s.tasks.Update(ctx, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, actorID, taskID string) error {
	task, found, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: task not found", ErrNotFound)
	}
	if _, err := s.memberProject(ctx, actorID, task.ProjectID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, taskID)
}
