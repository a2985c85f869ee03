package extract

import (
	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/model"
)

// Instructions returns the Add-On Instruction definitions with their
// parameters, local tags and decoded routines.
func (a *Analyzer) Instructions() []model.Instruction {
	elements := a.doc.FindAll(nil, "Controller/AddOnInstructionDefinitions/AddOnInstructionDefinition")
	out := make([]model.Instruction, 0, len(elements))
	for _, aoi := range elements {
		params := a.doc.FindAll(aoi, "Parameters/Parameter")
		def := model.Instruction{
			Name:        aoi.AttrOr("Name", ""),
			Revision:    aoi.AttrOr("Revision", ""),
			Vendor:      aoi.AttrOr("Vendor", ""),
			Description: a.doc.Description(aoi),
			Parameters:  make([]model.Parameter, 0, len(params)),
			LocalTags:   a.tags(aoi, "LocalTags/LocalTag"),
			Routines:    a.routines(aoi),
		}
		for _, p := range params {
			def.Parameters = append(def.Parameters, model.Parameter{
				Name:        p.AttrOr("Name", ""),
				DataType:    p.AttrOr("DataType", ""),
				Usage:       model.Usage(p.AttrOr("Usage", "")),
				Required:    p.BoolAttr("Required", false),
				Visible:     p.BoolAttr("Visible", true),
				Description: a.doc.Description(p),
			})
		}
		out = append(out, def)
	}
	a.logger.Debug("extracted add-on instructions", zap.Int("count", len(out)))
	return out
}
