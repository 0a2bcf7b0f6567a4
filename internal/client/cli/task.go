package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/lgmarques/taskhub/internal/client/api"
)

func (a *App) promptTaskID() (int64, error) {
	raw, err := getSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		printlnFn("Invalid task id:", raw)
		return 0, err
	}
	return id, nil
}

func formatTask(t *api.Task) string {
	s := fmt.Sprintf("[%d] %s", t.ID, t.Title)
	if t.Status != "" {
		s += " status=" + t.Status
	}
	if t.Priority != "" {
		s += " priority=" + t.Priority
	}
	if t.DueDate != "" {
		s += " due=" + t.DueDate
	}
	return s
}

// Add prompts for the task fields and creates the task.
func (a *App) Add(ctx context.Context) error {
	var data api.TaskData
	var err error

	if data.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}
	if data.Description, err = getSimpleText(a.reader, "Description (optional)", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}
	if data.Priority, err = getSimpleText(a.reader, "Priority (optional)", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}
	if data.DueDate, err = getSimpleText(a.reader, "Due date (optional)", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}

	task, err := a.api.CreateTask(ctx, data)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Created", formatTask(task))
	return nil
}

func (a *App) List(ctx context.Context) error {
	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(tasks) == 0 {
		printlnFn("No tasks yet.")
		return nil
	}
	for i := range tasks {
		printlnFn(formatTask(&tasks[i]))
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := a.promptTaskID()
	if err != nil {
		return err
	}

	task, err := a.api.GetTask(ctx, id)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(formatTask(task))
	if task.Description != "" {
		printlnFn(task.Description)
	}
	return nil
}

// Update prompts for the task id and new field values. Status, priority and
// due date left empty keep their current values; the title is always sent.
func (a *App) Update(ctx context.Context) error {
	id, err := a.promptTaskID()
	if err != nil {
		return err
	}

	var data api.TaskData
	if data.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}
	if data.Description, err = getSimpleText(a.reader, "Description", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}
	if data.Status, err = getSimpleText(a.reader, "Status (empty to keep)", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}
	if data.Priority, err = getSimpleText(a.reader, "Priority (empty to keep)", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}
	if data.DueDate, err = getSimpleText(a.reader, "Due date (empty to keep)", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}

	task, err := a.api.UpdateTask(ctx, id, data)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Updated", formatTask(task))
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptTaskID()
	if err != nil {
		return err
	}

	if err := a.api.DeleteTask(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Deleted.")
	return nil
}
