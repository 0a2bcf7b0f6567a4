package services

import (
	"context"
	"database/sql"

	"github.com/lgmarques/taskhub/internal/common"
	"github.com/lgmarques/taskhub/internal/server/models"
	"github.com/lgmarques/taskhub/internal/server/repositories/repomanager"
)

// TaskData carries the mutable task fields supplied by the caller.
// Status, priority and due date are optional and kept as-is when empty.
type TaskData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// TaskService implements task CRUD scoped to the owning user. Every
// single-entity operation confirms ownership before touching the row:
// a task owned by someone else is ErrForbidden, never ErrorNotFound.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService over the given repositories.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create persists a new task owned by ownerID.
func (s *TaskService) Create(ctx context.Context, ownerID int64, data TaskData) (*models.Task, error) {
	if data.Title == "" {
		return nil, common.ErrInvalidInput
	}

	task := &models.Task{
		Title:       data.Title,
		Description: data.Description,
		Status:      data.Status,
		Priority:    data.Priority,
		DueDate:     data.DueDate,
		UserID:      ownerID,
	}

	return s.repomanager.Tasks(s.db).Create(ctx, task)
}

// List returns every task owned by ownerID and nothing else.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]*models.Task, error) {
	return s.repomanager.Tasks(s.db).ListByUser(ctx, ownerID)
}

// Get fetches a single task after confirming the caller owns it.
func (s *TaskService) Get(ctx context.Context, id, ownerID int64) (*models.Task, error) {
	return s.getOwned(ctx, id, ownerID)
}

// Update overwrites title and description and, when supplied, status,
// priority and due date. Ownership is confirmed first.
func (s *TaskService) Update(ctx context.Context, id, ownerID int64, data TaskData) (*models.Task, error) {
	task, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if data.Title == "" {
		return nil, common.ErrInvalidInput
	}

	task.Title = data.Title
	task.Description = data.Description
	if data.Status != "" {
		task.Status = data.Status
	}
	if data.Priority != "" {
		task.Priority = data.Priority
	}
	if data.DueDate != "" {
		task.DueDate = data.DueDate
	}

	return s.repomanager.Tasks(s.db).Update(ctx, task)
}

// Delete removes a task after confirming the caller owns it.
func (s *TaskService) Delete(ctx context.Context, id, ownerID int64) error {
	if _, err := s.getOwned(ctx, id, ownerID); err != nil {
		return err
	}
	return s.repomanager.Tasks(s.db).Delete(ctx, id)
}

func (s *TaskService) getOwned(ctx context.Context, id, ownerID int64) (*models.Task, error) {
	task, err := s.repomanager.Tasks(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != ownerID {
		return nil, common.ErrForbidden
	}
	return task, nil
}
