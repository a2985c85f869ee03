// Package logic turns routine content of an L5X document into model
// LogicItems. Decoding never fails: missing or unexpected structure
// degrades to empty fields or a placeholder item.
package logic

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/l5x"
	"github.com/damischa1/l5x-tools/internal/model"
)

const (
	FBDNote = "Function Block Diagram - graphical content summary only"
	SFCNote = "Sequential Function Chart - structure summary only"

	defaultRungType = "N"
	unnamedStep     = "unnamed"
)

// Decoder decodes routines of one document.
type Decoder struct {
	doc    *l5x.Document
	logger *zap.Logger
}

func NewDecoder(doc *l5x.Document, logger *zap.Logger) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{doc: doc, logger: logger}
}

// Decode decodes a Routine element according to its Type attribute.
func (d *Decoder) Decode(routine *l5x.Element) []model.LogicItem {
	return d.DecodeAs(routine, model.RoutineType(routine.AttrOr("Type", "")))
}

// DecodeAs decodes routine content as the given routine type.
func (d *Decoder) DecodeAs(routine *l5x.Element, t model.RoutineType) []model.LogicItem {
	switch t {
	case model.RoutineRLL:
		return d.ladder(routine)
	case model.RoutineST:
		return d.structuredText(routine)
	case model.RoutineFBD:
		return []model.LogicItem{d.functionBlock(routine)}
	case model.RoutineSFC:
		return []model.LogicItem{d.sequentialChart(routine)}
	default:
		d.logger.Warn("routine type not decoded",
			zap.String("routine", routine.AttrOr("Name", "")),
			zap.String("type", string(t)),
		)
		return []model.LogicItem{model.UnknownLogic{
			RoutineType: string(t),
			Note:        fmt.Sprintf("Logic parsing for routine type %q not implemented", string(t)),
		}}
	}
}

// ── Ladder ───────────────────────────────────────────────────────────────────

func (d *Decoder) ladder(routine *l5x.Element) []model.LogicItem {
	var out []model.LogicItem
	for _, rung := range d.doc.FindAll(routine, "RLLContent/Rung") {
		main, operands := d.rungComments(rung)
		out = append(out, model.Rung{
			Number:          rung.AttrOr("Number", ""),
			RungType:        rung.AttrOr("Type", defaultRungType),
			Comment:         main,
			OperandComments: operands,
			// Rung text keeps its whitespace.
			Code: d.doc.Find(rung, "Text").Text(),
		})
	}
	return out
}

// rungComments splits the rung comments into the main comment and the
// operand scoped ones. Empty comments are skipped.
func (d *Decoder) rungComments(rung *l5x.Element) (string, map[string]string) {
	main := ""
	operands := make(map[string]string)
	for _, c := range d.doc.FindAll(rung, "Comment") {
		text := strings.TrimSpace(c.Text())
		if text == "" {
			continue
		}
		if op := c.AttrOr("Operand", ""); op != "" {
			operands[op] = text
		} else {
			main = text
		}
	}
	return main, operands
}

// ── Structured text ──────────────────────────────────────────────────────────

func (d *Decoder) structuredText(routine *l5x.Element) []model.LogicItem {
	blocks := d.doc.FindAll(routine, "STContent")
	if len(blocks) == 0 {
		lines := d.doc.FindAll(routine, "Line")
		if len(lines) == 0 {
			return nil
		}
		return []model.LogicItem{model.STBlock{Code: joinLines(lines)}}
	}

	out := make([]model.LogicItem, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, model.STBlock{
			OnlineEditType: block.AttrOr("OnlineEditType", ""),
			Code:           joinLines(d.doc.FindAll(block, "Line")),
		})
	}
	return out
}

func joinLines(lines []*l5x.Element) string {
	code := make([]string, 0, len(lines))
	for _, l := range lines {
		code = append(code, l.Text())
	}
	return strings.Join(code, "\n")
}

// ── Graphical encodings ──────────────────────────────────────────────────────

func (d *Decoder) functionBlock(routine *l5x.Element) model.FBDSummary {
	sheets := d.doc.FindAll(routine, "FBDContent/Sheet")
	summary := model.FBDSummary{SheetCount: len(sheets), Note: FBDNote}
	for _, sheet := range sheets {
		summary.BlockCount += len(d.doc.FindAll(sheet, "Block"))
		summary.WireCount += len(d.doc.FindAll(sheet, "Wire"))
	}
	return summary
}

func (d *Decoder) sequentialChart(routine *l5x.Element) model.SFCSummary {
	steps := d.doc.FindAll(routine, "SFCContent/Step")
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.AttrOr("Name", unnamedStep))
	}
	return model.SFCSummary{
		StepCount:       len(steps),
		StepNames:       names,
		TransitionCount: len(d.doc.FindAll(routine, "SFCContent/Transition")),
		ActionCount:     len(d.doc.FindAll(routine, "SFCContent/ActionStructure")),
		Note:            SFCNote,
	}
}
