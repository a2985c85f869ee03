package model

// LogicKind names the variant of a LogicItem.
type LogicKind string

const (
	KindRung    LogicKind = "Rung"
	KindSTBlock LogicKind = "ST_Block"
	KindFBD     LogicKind = "FBD"
	KindSFC     LogicKind = "SFC"
	KindUnknown LogicKind = "Unknown"
)

// LogicItem is one decoded unit of routine logic. The set of variants is
// closed: only the types in this file implement it.
type LogicItem interface {
	Kind() LogicKind
	sealed()
}

// Rung is one ladder rung.
type Rung struct {
	Number   string
	RungType string
	// Comment is the rung comment without an operand.
	Comment string
	// OperandComments maps an operand to its comment text.
	OperandComments map[string]string
	// Code is the rung text exactly as stored.
	Code string
}

// STBlock is one structured text content block. OnlineEditType is empty
// for the current version.
type STBlock struct {
	OnlineEditType string
	Code           string
}

// FBDSummary counts the function block diagram structure.
type FBDSummary struct {
	SheetCount int
	BlockCount int
	WireCount  int
	Note       string
}

// SFCSummary counts the sequential function chart structure.
type SFCSummary struct {
	StepCount       int
	StepNames       []string
	TransitionCount int
	ActionCount     int
	Note            string
}

// UnknownLogic stands in for routine types without a decoder.
type UnknownLogic struct {
	RoutineType string
	Note        string
}

func (Rung) Kind() LogicKind         { return KindRung }
func (STBlock) Kind() LogicKind      { return KindSTBlock }
func (FBDSummary) Kind() LogicKind   { return KindFBD }
func (SFCSummary) Kind() LogicKind   { return KindSFC }
func (UnknownLogic) Kind() LogicKind { return KindUnknown }

func (Rung) sealed()         {}
func (STBlock) sealed()      {}
func (FBDSummary) sealed()   {}
func (SFCSummary) sealed()   {}
func (UnknownLogic) sealed() {}
