package extract

import (
	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/model"
)

// Modules returns the I/O configuration tree as a flat list.
func (a *Analyzer) Modules() []model.Module {
	elements := a.doc.FindAll(nil, "Controller/Modules/Module")
	out := make([]model.Module, 0, len(elements))
	for _, m := range elements {
		ports := a.doc.FindAll(m, "Ports/Port")
		mod := model.Module{
			Name:            m.AttrOr("Name", ""),
			CatalogNumber:   m.AttrOr("CatalogNumber", ""),
			ParentModule:    m.AttrOr("ParentModule", ""),
			ParentModPortID: m.AttrOr("ParentModPortId", ""),
			Description:     a.doc.Description(m),
			Ports:           make([]model.Port, 0, len(ports)),
		}
		for _, p := range ports {
			mod.Ports = append(mod.Ports, model.Port{
				ID:       p.AttrOr("Id", ""),
				Address:  p.AttrOr("Address", ""),
				Type:     p.AttrOr("Type", ""),
				Upstream: p.BoolAttr("Upstream", false),
			})
		}
		out = append(out, mod)
	}
	a.logger.Debug("extracted modules", zap.Int("count", len(out)))
	return out
}
