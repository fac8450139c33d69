package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mvolkova/taskquest/internal/client/models"
	"github.com/mvolkova/taskquest/internal/client/todos"
)

func parseFilter(s string) (todos.Filter, bool) {
	switch s {
	case "", "all":
		return todos.FilterAll, true
	case "active":
		return todos.FilterActive, true
	case "completed":
		return todos.FilterCompleted, true
	}
	return "", false
}

func (a *App) List(ctx context.Context, filter string) error {
	f, ok := parseFilter(filter)
	if !ok {
		fmt.Println("Usage: list [all|active|completed]")
		return nil
	}

	list, err := a.tasks.Filtered(ctx, f)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if len(list) == 0 {
		fmt.Println("No tasks found. Start your quest by adding one!")
		return nil
	}

	for _, t := range list {
		fmt.Println(formatTodo(t))
	}
	return nil
}

func formatTodo(t models.Todo) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	s := fmt.Sprintf("[%s] %-8s %s  %s", mark, t.Priority, t.ID, t.Title)
	if t.DueDate != nil {
		s += fmt.Sprintf("  (due %s)", t.DueDate.Format("2006-01-02"))
	}
	return s
}

// Add prompts for the task fields and creates the record. Only the title is
// required; priority defaults to MEDIUM.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	dueRaw, err := getSimpleText(a.reader, "Enter due date YYYY-MM-DD (optional)", os.Stdout)
	if err != nil {
		return err
	}
	prioRaw, err := getSimpleText(a.reader, "Enter priority LOW|MEDIUM|HIGH (optional)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.CreateTodoRequest{
		Title:       title,
		Description: description,
		Priority:    models.Priority(strings.ToUpper(prioRaw)),
	}
	if dueRaw != "" {
		due, err := time.Parse("2006-01-02", dueRaw)
		if err != nil {
			log.Printf("Invalid due date %q, expected YYYY-MM-DD", dueRaw)
			return err
		}
		req.DueDate = &due
	}

	created, err := a.tasks.Add(ctx, req)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Added %s\n", created.ID)
	return nil
}

// Edit prompts for new field values and sends a partial update. An empty
// answer leaves that field as it is.
func (a *App) Edit(ctx context.Context, id string) error {
	title, err := getSimpleText(a.reader, "New title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "New description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	dueRaw, err := getSimpleText(a.reader, "New due date YYYY-MM-DD (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	prioRaw, err := getSimpleText(a.reader, "New priority LOW|MEDIUM|HIGH (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var req models.UpdateTodoRequest
	if title != "" {
		req.Title = &title
	}
	if description != "" {
		req.Description = &description
	}
	if dueRaw != "" {
		due, err := time.Parse("2006-01-02", dueRaw)
		if err != nil {
			log.Printf("Invalid due date %q, expected YYYY-MM-DD", dueRaw)
			return err
		}
		req.DueDate = &due
	}
	if prioRaw != "" {
		p := models.Priority(strings.ToUpper(prioRaw))
		if !p.Valid() {
			log.Printf("Unknown priority %q", prioRaw)
			return fmt.Errorf("unknown priority %q", prioRaw)
		}
		req.Priority = &p
	}

	updated, err := a.tasks.Update(ctx, id, req)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println(formatTodo(*updated))
	return nil
}

func (a *App) Toggle(ctx context.Context, id string) error {
	t, err := a.tasks.ToggleComplete(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println(formatTodo(*t))
	return nil
}

func (a *App) Remove(ctx context.Context, id string) error {
	if err := a.tasks.Remove(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Printf("Removed %s\n", id)
	return nil
}

// ClearCompleted deletes the completed subset and reports the per-item
// outcome; one failed delete does not stop the rest.
func (a *App) ClearCompleted(ctx context.Context) error {
	results, err := a.tasks.ClearCompleted(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	cleared := 0
	for _, r := range results {
		if r.Err != nil {
			log.Printf("Could not remove %s: %s", r.ID, r.Err.Error())
			continue
		}
		cleared++
	}
	fmt.Printf("Cleared %d of %d completed tasks\n", cleared, len(results))
	return nil
}

func (a *App) Counts(ctx context.Context) error {
	c, err := a.tasks.CountsNow(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Printf("total: %d, pending: %d, completed: %d\n", c.Total, c.Pending, c.Completed)
	return nil
}
