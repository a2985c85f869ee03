// Package model holds the read-only projections extracted from an L5X
// document. Values are built once by the extractors and never mutated.
package model

// Usage is the declared direction of a tag or parameter.
type Usage string

const (
	UsageLocal  Usage = "Local"
	UsageInput  Usage = "Input"
	UsageOutput Usage = "Output"
	UsageInOut  Usage = "InOut"
	UsagePublic Usage = "Public"
)

// RoutineType is the logic encoding declared on a routine.
type RoutineType string

const (
	RoutineRLL RoutineType = "RLL"
	RoutineST  RoutineType = "ST"
	RoutineFBD RoutineType = "FBD"
	RoutineSFC RoutineType = "SFC"
)

// ControllerInfo is a detached copy of the Controller element attributes
// plus its description.
type ControllerInfo struct {
	Present     bool
	Attributes  []Attribute
	Description string
}

// Attribute is one controller attribute in document order.
type Attribute struct {
	Name  string
	Value string
}

// Get returns a controller field. Description resolves to the description
// text whenever the controller is present.
func (c ControllerInfo) Get(name string) (string, bool) {
	for _, f := range c.Fields() {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns the attributes followed by the Description entry.
func (c ControllerInfo) Fields() []Attribute {
	if !c.Present {
		return nil
	}
	out := make([]Attribute, 0, len(c.Attributes)+1)
	hasDesc := false
	for _, a := range c.Attributes {
		if a.Name == "Description" {
			a.Value = c.Description
			hasDesc = true
		}
		out = append(out, a)
	}
	if !hasDesc {
		out = append(out, Attribute{Name: "Description", Value: c.Description})
	}
	return out
}

// Tag is a controller or program scoped variable, or an AOI local tag.
type Tag struct {
	Name        string
	DataType    string
	Usage       Usage
	AliasFor    string
	Radix       string
	Description string
}

// IsAlias reports whether the tag aliases another tag.
func (t Tag) IsAlias() bool { return t.AliasFor != "" }

type DataType struct {
	Name        string
	Family      string
	Class       string
	Description string
	Members     []Member
}

// IsUser reports whether the type is a user-defined type (UDT).
func (d DataType) IsUser() bool { return d.Class == "User" }

type Member struct {
	Name        string
	DataType    string
	Dimension   string
	Radix       string
	Hidden      bool
	Description string
}

// Instruction is an Add-On Instruction definition.
type Instruction struct {
	Name        string
	Revision    string
	Vendor      string
	Description string
	Parameters  []Parameter
	LocalTags   []Tag
	Routines    []Routine
}

type Parameter struct {
	Name        string
	DataType    string
	Usage       Usage
	Required    bool
	Visible     bool
	Description string
}

type Module struct {
	Name            string
	CatalogNumber   string
	ParentModule    string
	ParentModPortID string
	Description     string
	Ports           []Port
}

type Port struct {
	ID       string
	Address  string
	Type     string
	Upstream bool
}

type Task struct {
	Name        string
	Type        string
	Rate        string
	Priority    string
	Watchdog    string
	Description string
	// ScheduledPrograms are program names as written; they are not checked
	// against the program table.
	ScheduledPrograms []string
}

type Program struct {
	Name             string
	Description      string
	MainRoutineName  string
	FaultRoutineName string
	Disabled         bool
	Tags             []Tag
	Routines         []Routine
}

// Routine owns its decoded logic in document order.
type Routine struct {
	Name        string
	Type        RoutineType
	Description string
	Logic       []LogicItem
}
