// Package report renders extracted entities as column aligned text and
// exports one report file per category.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/damischa1/l5x-tools/internal/model"
)

// Description budgets per table, in display columns.
const (
	tagDescWidth       = 40
	memberDescWidth    = 35
	parameterDescWidth = 30
	moduleDescWidth    = 30

	truncationMarker = ".."
)

// pad left-aligns s in a column of width display cells. Longer values are
// kept whole.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// truncate cuts s to width display cells and marks the cut.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "") + truncationMarker
}

func rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}

// row joins column cells with the table separator.
func row(indent string, cells ...string) string {
	return indent + strings.Join(cells, " | ")
}

// ── Table rows ───────────────────────────────────────────────────────────────

func tagHeader(indent, typeTitle string) []string {
	return []string{
		row(indent, pad("Name", 30), pad("Usage", 10), pad(typeTitle, 30), "Description"),
		row(indent, rule("-", 30), rule("-", 10), rule("-", 30), rule("-", 20)),
	}
}

func tagLine(t model.Tag, indent string) string {
	typeOrAlias := t.DataType
	if t.IsAlias() {
		typeOrAlias = "Alias->" + t.AliasFor
	}
	return row(indent, pad(t.Name, 30), pad(string(t.Usage), 10), pad(typeOrAlias, 30), truncate(t.Description, tagDescWidth))
}

func memberLine(m model.Member, indent string) string {
	dim := ""
	if m.Dimension != "" {
		dim = "[" + m.Dimension + "]"
	}
	return row(indent, pad(m.Name, 25), pad(m.DataType, 20)+pad(dim, 6), truncate(m.Description, memberDescWidth))
}

func parameterLine(p model.Parameter, indent string) string {
	req := " "
	if p.Required {
		req = "*"
	}
	return row(indent+req, pad(p.Name, 24), pad(string(p.Usage), 8), pad(p.DataType, 20), truncate(p.Description, parameterDescWidth))
}

// ── Routines ─────────────────────────────────────────────────────────────────

// routineLines renders a routine and its logic items.
func routineLines(r model.Routine, indent string) []string {
	lines := []string{
		"",
		indent + rule("=", 60),
		indent + "ROUTINE: " + r.Name + " (" + string(r.Type) + ")",
	}
	if r.Description != "" {
		lines = append(lines, indent+"Desc: "+r.Description)
	}
	lines = append(lines, indent+rule("=", 60))

	for _, item := range r.Logic {
		lines = append(lines, logicLines(item, indent)...)
	}
	return lines
}

func logicLines(item model.LogicItem, indent string) []string {
	sep := indent + "  " + rule("-", 40)
	var lines []string

	switch it := item.(type) {
	case model.Rung:
		lines = append(lines, indent+"[Rung "+it.Number+"]")
		if it.RungType != "N" {
			lines = append(lines, indent+"  (Type: "+it.RungType+")")
		}
		if it.Comment != "" {
			lines = append(lines, indent+"  /* "+it.Comment+" */")
		}
		for _, op := range sortedKeys(it.OperandComments) {
			lines = append(lines, indent+"  /* "+op+": "+it.OperandComments[op]+" */")
		}
		if it.Code != "" {
			lines = append(lines, indent+"  "+it.Code)
		}
		lines = append(lines, sep)

	case model.STBlock:
		if it.OnlineEditType != "" {
			lines = append(lines, indent+"[Structured Text - Online Edit: "+it.OnlineEditType+"]")
		} else {
			lines = append(lines, indent+"[Structured Text Code]")
		}
		lines = append(lines, sep)
		for _, l := range strings.Split(it.Code, "\n") {
			lines = append(lines, indent+"  "+l)
		}
		lines = append(lines, sep)

	case model.FBDSummary:
		lines = append(lines,
			indent+"[Function Block Diagram]",
			indent+"  "+fmtCounts("Sheets", it.SheetCount, "Blocks", it.BlockCount, "Wires", it.WireCount),
			indent+"  Note: "+it.Note,
		)

	case model.SFCSummary:
		lines = append(lines,
			indent+"[Sequential Function Chart]",
			indent+"  "+fmtCounts("Steps", it.StepCount, "Transitions", it.TransitionCount, "Actions", it.ActionCount),
		)
		if len(it.StepNames) > 0 {
			lines = append(lines, indent+"  Step Names: "+strings.Join(it.StepNames, ", "))
		}
		lines = append(lines, indent+"  Note: "+it.Note)

	case model.UnknownLogic:
		lines = append(lines, indent+"["+string(it.Kind())+"]", indent+"  "+it.Note)

	default:
		lines = append(lines, indent+"["+string(item.Kind())+"]")
	}
	return lines
}
