package lifecycle

import (
	"github.com/mmynk/devarc/internal/date"
	"github.com/mmynk/devarc/internal/models"
)

// Card is one project as shown on the board.
type Card struct {
	Project      models.Project `json:"project"`
	Overdue      bool           `json:"overdue"`
	PendingTasks int            `json:"pendingTasks"`
}

// BoardColumn is one column of the board. ID is the status a card dropped on it receives.
type BoardColumn struct {
	ID    models.Status `json:"id"`
	Title string        `json:"title"`
	Cards []Card        `json:"cards"`
}

var columns = []struct {
	id    models.Status
	title string
}{
	{models.StatusPending, "Pendente"},
	{models.StatusActive, "Em Andamento"},
	{models.StatusCompleted, "Concluído"},
}

// Board groups projects into the Pending, Active and Completed columns, keeping their input
// order within each column.
func Board(projects []models.Project, today date.Date) []BoardColumn {
	board := make([]BoardColumn, len(columns))
	index := make(map[models.Status]int, len(columns))
	for i, c := range columns {
		board[i] = BoardColumn{ID: c.id, Title: c.title, Cards: []Card{}}
		index[c.id] = i
	}

	for _, p := range projects {
		i, ok := index[Column(p.Status)]
		if !ok {
			continue
		}
		board[i].Cards = append(board[i].Cards, Card{
			Project:      p,
			Overdue:      IsOverdue(p, today),
			PendingTasks: p.PendingTasks(),
		})
	}
	return board
}
