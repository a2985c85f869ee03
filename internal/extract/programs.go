package extract

import (
	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/model"
)

// Programs returns every program with its local tags and decoded routines.
func (a *Analyzer) Programs() []model.Program {
	elements := a.doc.FindAll(nil, "Controller/Programs/Program")
	out := make([]model.Program, 0, len(elements))
	for _, p := range elements {
		out = append(out, model.Program{
			Name:             p.AttrOr("Name", ""),
			Description:      a.doc.Description(p),
			MainRoutineName:  p.AttrOr("MainRoutineName", ""),
			FaultRoutineName: p.AttrOr("FaultRoutineName", ""),
			Disabled:         p.BoolAttr("Disabled", false),
			Tags:             a.tags(p, "Tags/Tag"),
			Routines:         a.routines(p),
		})
	}
	a.logger.Debug("extracted programs", zap.Int("count", len(out)))
	return out
}
