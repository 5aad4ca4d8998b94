package dataset

import "fmt"

// Categorical pools for the task list demo.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	Priorities   = Pool{"Alta", "Media", "Baja"}
	TaskStatuses = Pool{"Pendiente", "En curso", "Completada"}
	Projects     = Pool{"Web", "Mobile", "Infraestructura", "Marketing", "Interno"}
)

const (
	featureCount = 15
	ownerCount   = 8
	progressStep = 7
	progressMod  = 101
)

// TaskRecord is one row of the task list demo.
type TaskRecord struct {
	ID       int    `json:"id"       yaml:"id"`
	Title    string `json:"title"    yaml:"title"`
	Owner    string `json:"owner"    yaml:"owner"`
	Priority string `json:"priority" yaml:"priority"`
	Status   string `json:"status"   yaml:"status"`
	Project  string `json:"project"  yaml:"project"`
	DueDate  string `json:"dueDate"  yaml:"due_date"`
	Progress int    `json:"progress" yaml:"progress"`
}

// Tasks generates n task records. Progress stays within 0..100.
func Tasks(n int) []TaskRecord {
	return Generate(n, func(i int) TaskRecord {
		id := i + 1
		return TaskRecord{
			ID:       id,
			Title:    fmt.Sprintf("Tarea #%d - Funcionalidad %d", id, id%featureCount),
			Owner:    fmt.Sprintf("Responsable %02d", i%ownerCount+1),
			Priority: Priorities.At(i),
			Status:   TaskStatuses.At(i),
			Project:  Projects.At(i),
			DueDate:  fmt.Sprintf("2024-%02d-%02d", i%12+1, i%28+1),
			Progress: (i * progressStep) % progressMod,
		}
	})
}
