package report

import (
	"fmt"
	"strings"

	"github.com/damischa1/l5x-tools/internal/model"
)

var controllerPriority = []string{"Name", "ProcessorType", "Revision", "Description"}

// ControllerInfo lists the priority fields first, then the remaining
// attributes in document order.
func ControllerInfo(info model.ControllerInfo) string {
	fields := info.Fields()
	var lines []string
	for _, name := range controllerPriority {
		if v, ok := info.Get(name); ok {
			lines = append(lines, name+": "+v)
		}
	}
	for _, f := range fields {
		if !isPriority(f.Name) {
			lines = append(lines, f.Name+": "+f.Value)
		}
	}
	return join(lines)
}

func isPriority(name string) bool {
	for _, p := range controllerPriority {
		if p == name {
			return true
		}
	}
	return false
}

// Tags renders the controller scoped tag table.
func Tags(tags []model.Tag) string {
	lines := tagHeader("", "Type/Alias")
	for _, t := range tags {
		lines = append(lines, tagLine(t, ""))
	}
	return join(lines)
}

// DataTypes renders the user-defined types. Predefined types are left out
// and hidden members get no row.
func DataTypes(types []model.DataType) string {
	var udts []model.DataType
	for _, dt := range types {
		if dt.IsUser() {
			udts = append(udts, dt)
		}
	}

	lines := []string{
		fmt.Sprintf("USER DEFINED TYPES (UDTs) - Found %d", len(udts)),
		rule("=", 80),
	}
	for _, dt := range udts {
		lines = append(lines, "", "UDT: "+dt.Name)
		if dt.Description != "" {
			lines = append(lines, "Desc: "+dt.Description)
		}
		lines = append(lines, rule("-", 60))

		if len(dt.Members) > 0 {
			lines = append(lines,
				row("  ", pad("Member", 25), pad("DataType", 26), "Description"),
				row("  ", rule("-", 25), rule("-", 26), rule("-", 20)),
			)
			for _, m := range dt.Members {
				if !m.Hidden {
					lines = append(lines, memberLine(m, "  "))
				}
			}
		} else {
			lines = append(lines, "  (No members)")
		}
		lines = append(lines, "")
	}
	return join(lines)
}

// Instructions renders the Add-On Instruction definitions with their logic.
func Instructions(aois []model.Instruction) string {
	lines := []string{
		fmt.Sprintf("ADD-ON INSTRUCTIONS (AOIs) - Found %d", len(aois)),
		rule("=", 80),
	}
	for _, aoi := range aois {
		lines = append(lines, "", rule("#", 80), "AOI: "+aoi.Name)
		if aoi.Revision != "" {
			lines = append(lines, "Revision: "+aoi.Revision)
		}
		if aoi.Vendor != "" {
			lines = append(lines, "Vendor: "+aoi.Vendor)
		}
		if aoi.Description != "" {
			lines = append(lines, "Desc: "+aoi.Description)
		}
		lines = append(lines, rule("=", 70))

		lines = append(lines, "", fmt.Sprintf("  [PARAMETERS] - Found %d", len(aoi.Parameters)))
		if len(aoi.Parameters) > 0 {
			lines = append(lines,
				row("   ", pad("Name", 24), pad("Usage", 8), pad("DataType", 20), "Description"),
				row("  ", rule("-", 25), rule("-", 8), rule("-", 20), rule("-", 20)),
			)
			for _, p := range aoi.Parameters {
				lines = append(lines, parameterLine(p, "  "))
			}
		}

		lines = append(lines, "", fmt.Sprintf("  [LOCAL TAGS] - Found %d", len(aoi.LocalTags)))
		if len(aoi.LocalTags) > 0 {
			lines = append(lines, tagHeader("  ", "Type")...)
			for _, t := range aoi.LocalTags {
				lines = append(lines, tagLine(t, "  "))
			}
		}

		lines = append(lines, "", fmt.Sprintf("  [ROUTINES] - Found %d", len(aoi.Routines)))
		for _, r := range aoi.Routines {
			lines = append(lines, routineLines(r, "    ")...)
		}
		lines = append(lines, "")
	}
	return join(lines)
}

// Modules renders the I/O module table.
func Modules(mods []model.Module) string {
	lines := []string{
		fmt.Sprintf("I/O MODULES - Found %d", len(mods)),
		rule("=", 80),
		"",
		row("", pad("Name", 25), pad("Catalog Number", 20), pad("Parent", 20), "Description"),
		row("", rule("-", 25), rule("-", 20), rule("-", 20), rule("-", 30)),
	}
	for _, m := range mods {
		parent := "-"
		if m.ParentModule != "" {
			parent = m.ParentModule + ":" + m.ParentModPortID
		}
		lines = append(lines, row("", pad(m.Name, 25), pad(m.CatalogNumber, 20), pad(parent, 20), truncate(m.Description, moduleDescWidth)))
	}
	return join(lines)
}

// Tasks renders the task configuration with the scheduled programs.
func Tasks(tasks []model.Task) string {
	lines := []string{
		fmt.Sprintf("TASKS - Found %d", len(tasks)),
		rule("=", 80),
	}
	for _, t := range tasks {
		lines = append(lines, "", "TASK: "+t.Name, "  Type: "+t.Type)
		if t.Rate != "" {
			lines = append(lines, "  Rate: "+t.Rate+" ms")
		}
		lines = append(lines, "  Priority: "+t.Priority)
		if t.Watchdog != "" {
			lines = append(lines, "  Watchdog: "+t.Watchdog+" ms")
		}
		if t.Description != "" {
			lines = append(lines, "  Desc: "+t.Description)
		}
		if len(t.ScheduledPrograms) > 0 {
			lines = append(lines, "  Scheduled Programs:")
			for _, p := range t.ScheduledPrograms {
				lines = append(lines, "    - "+p)
			}
		}
		lines = append(lines, "")
	}
	return join(lines)
}

// Programs renders every program with its tags and routine logic.
func Programs(progs []model.Program) string {
	var lines []string
	for _, p := range progs {
		lines = append(lines, "PROGRAM: "+p.Name)
		if p.Description != "" {
			lines = append(lines, "Desc: "+p.Description)
		}
		if p.MainRoutineName != "" {
			lines = append(lines, "Main Routine: "+p.MainRoutineName)
		}
		if p.FaultRoutineName != "" {
			lines = append(lines, "Fault Routine: "+p.FaultRoutineName)
		}
		if p.Disabled {
			lines = append(lines, "*** PROGRAM DISABLED ***")
		}
		lines = append(lines, rule("=", 75))

		lines = append(lines, "", fmt.Sprintf("  [LOCAL TAGS] - Found %d", len(p.Tags)))
		if len(p.Tags) > 0 {
			lines = append(lines, tagHeader("  ", "Type/Alias")...)
			for _, t := range p.Tags {
				lines = append(lines, tagLine(t, "  "))
			}
		}

		lines = append(lines, "", fmt.Sprintf("  [ROUTINES & LOGIC] - Found %d", len(p.Routines)))
		for _, r := range p.Routines {
			lines = append(lines, routineLines(r, "    ")...)
		}

		lines = append(lines, "", "", rule("#", 80), "")
	}
	return join(lines)
}

func join(lines []string) string {
	return strings.Join(lines, "\n")
}
