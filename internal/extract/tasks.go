package extract

import (
	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/model"
)

// Tasks returns the task configuration. Scheduled program names are kept
// as written, without checking them against the program table.
func (a *Analyzer) Tasks() []model.Task {
	elements := a.doc.FindAll(nil, "Controller/Tasks/Task")
	out := make([]model.Task, 0, len(elements))
	for _, t := range elements {
		task := model.Task{
			Name:        t.AttrOr("Name", ""),
			Type:        t.AttrOr("Type", ""),
			Rate:        t.AttrOr("Rate", ""),
			Priority:    t.AttrOr("Priority", ""),
			Watchdog:    t.AttrOr("Watchdog", ""),
			Description: a.doc.Description(t),
		}
		for _, p := range a.doc.FindAll(t, "ScheduledPrograms/ScheduledProgram") {
			if name := p.AttrOr("Name", ""); name != "" {
				task.ScheduledPrograms = append(task.ScheduledPrograms, name)
			}
		}
		out = append(out, task)
	}
	a.logger.Debug("extracted tasks", zap.Int("count", len(out)))
	return out
}
