package extract

import (
	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/model"
)

// ControllerInfo returns a copy of the Controller attributes together with
// its description. The zero value is returned when there is no Controller.
func (a *Analyzer) ControllerInfo() model.ControllerInfo {
	controller := a.doc.Find(nil, "Controller")
	if controller == nil {
		a.logger.Debug("no controller element")
		return model.ControllerInfo{}
	}

	attrs := controller.Attributes()
	info := model.ControllerInfo{
		Present:     true,
		Attributes:  make([]model.Attribute, 0, len(attrs)),
		Description: a.doc.Description(controller),
	}
	for _, attr := range attrs {
		info.Attributes = append(info.Attributes, model.Attribute{Name: attr.Name, Value: attr.Value})
	}
	a.logger.Debug("extracted controller info", zap.Int("attributes", len(info.Attributes)))
	return info
}
