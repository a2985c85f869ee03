package extract

import (
	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/model"
)

// DataTypes returns every data type definition, user and predefined.
func (a *Analyzer) DataTypes() []model.DataType {
	elements := a.doc.FindAll(nil, "Controller/DataTypes/DataType")
	out := make([]model.DataType, 0, len(elements))
	for _, dt := range elements {
		members := a.doc.FindAll(dt, "Members/Member")
		def := model.DataType{
			Name:        dt.AttrOr("Name", ""),
			Family:      dt.AttrOr("Family", ""),
			Class:       dt.AttrOr("Class", ""),
			Description: a.doc.Description(dt),
			Members:     make([]model.Member, 0, len(members)),
		}
		for _, m := range members {
			def.Members = append(def.Members, model.Member{
				Name:        m.AttrOr("Name", ""),
				DataType:    m.AttrOr("DataType", ""),
				Dimension:   m.AttrOr("Dimension", ""),
				Radix:       m.AttrOr("Radix", ""),
				Hidden:      m.BoolAttr("Hidden", false),
				Description: a.doc.Description(m),
			})
		}
		out = append(out, def)
	}
	a.logger.Debug("extracted data types", zap.Int("count", len(out)))
	return out
}
