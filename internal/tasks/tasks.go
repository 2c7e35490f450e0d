// Package tasks edits the checklist embedded in a project. Tasks are addressed by their index
// in the list; each operation returns a write-intent replacing the whole list.
package tasks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mmynk/devarc/internal/models"
)

// Add appends a new, not yet done task.
func Add(project models.Project, desc string) (models.Batch, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return nil, models.Invalid("desc", "is required")
	}
	list := append(slices.Clone(project.Tasks), models.Task{Desc: desc})
	return write(project.ID, list), nil
}

// Toggle flips the done flag of the task at index.
func Toggle(project models.Project, index int) (models.Batch, error) {
	if err := check(project, index); err != nil {
		return nil, err
	}
	list := slices.Clone(project.Tasks)
	list[index].Done = !list[index].Done
	return write(project.ID, list), nil
}

// Remove deletes the task at index. Later tasks shift down by one.
func Remove(project models.Project, index int) (models.Batch, error) {
	if err := check(project, index); err != nil {
		return nil, err
	}
	list := slices.Delete(slices.Clone(project.Tasks), index, index+1)
	return write(project.ID, list), nil
}

func check(project models.Project, index int) error {
	if index < 0 || index >= len(project.Tasks) {
		return models.NotFound("task", fmt.Sprintf("%s#%d", project.ID, index))
	}
	return nil
}

func write(projectID string, list []models.Task) models.Batch {
	if list == nil {
		list = []models.Task{}
	}
	return models.Batch{models.UpdateProject(projectID, map[string]any{models.FieldTasks: list})}
}
