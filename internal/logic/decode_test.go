package logic

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/damischa1/l5x-tools/internal/l5x"
	"github.com/damischa1/l5x-tools/internal/model"
)

// decodeRoutine wraps a single Routine element in a minimal document,
// optionally namespaced, and decodes it.
func decodeRoutine(t *testing.T, routineXML string, ns bool) []model.LogicItem {
	t.Helper()
	xmlns := ""
	if ns {
		xmlns = ` xmlns="urn:rockwell:l5x"`
	}
	doc, err := l5x.Parse(strings.NewReader(`<RSLogix5000Content` + xmlns + `>` + routineXML + `</RSLogix5000Content>`))
	require.NoError(t, err)
	routine := doc.Find(nil, "Routine")
	require.NotNil(t, routine)
	return NewDecoder(doc, nil).Decode(routine)
}

func TestDecode_RungCodeVerbatim(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Main" Type="RLL"><RLLContent>
<Rung Number="0" Type="N"><Text><![CDATA[XIC(Start)OTE(Run)]]></Text></Rung>
</RLLContent></Routine>`, false)

	require.Len(t, items, 1)
	rung, ok := items[0].(model.Rung)
	require.True(t, ok)
	assert.Equal(t, "XIC(Start)OTE(Run)", rung.Code)
	assert.Equal(t, "0", rung.Number)
	assert.Equal(t, "N", rung.RungType)
}

func TestDecode_RungWhitespaceKept(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Main" Type="RLL"><RLLContent><Rung Number="3"><Text>
<![CDATA[  XIC(A) OTE(B);]]>
</Text></Rung></RLLContent></Routine>`, false)

	require.Len(t, items, 1)
	assert.Equal(t, "\n  XIC(A) OTE(B);\n", items[0].(model.Rung).Code)
}

func TestDecode_RungComments(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Main" Type="RLL"><RLLContent>
<Rung Number="1" Type="N">
<Comment Operand="O:1"><![CDATA[motor]]></Comment>
<Comment><![CDATA[ main desc ]]></Comment>
<Comment Operand="Valve"><![CDATA[inlet valve]]></Comment>
<Comment Operand="Empty"></Comment>
<Text><![CDATA[XIC(Start)OTE(O:1);]]></Text>
</Rung>
</RLLContent></Routine>`, false)

	want := []model.LogicItem{model.Rung{
		Number:   "1",
		RungType: "N",
		Comment:  "main desc",
		OperandComments: map[string]string{
			"O:1":   "motor",
			"Valve": "inlet valve",
		},
		Code: "XIC(Start)OTE(O:1);",
	}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("decoded rung mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_RungDefaults(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Main" Type="RLL"><RLLContent>
<Rung/>
<Rung Number="1" Type="D"><Text><![CDATA[NOP();]]></Text></Rung>
</RLLContent></Routine>`, false)

	require.Len(t, items, 2)
	first := items[0].(model.Rung)
	assert.Equal(t, "", first.Number)
	assert.Equal(t, "N", first.RungType)
	assert.Equal(t, "", first.Code)
	assert.Equal(t, "", first.Comment)
	assert.Empty(t, first.OperandComments)
	assert.Equal(t, "D", items[1].(model.Rung).RungType)
}

func TestDecode_RungOrderAcrossContentBlocks(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Main" Type="RLL">
<RLLContent><Rung Number="0"/><Rung Number="1"/></RLLContent>
<RLLContent OnlineEditType="Pending"><Rung Number="2"/></RLLContent>
</Routine>`, true)

	var numbers []string
	for _, it := range items {
		numbers = append(numbers, it.(model.Rung).Number)
	}
	assert.Equal(t, []string{"0", "1", "2"}, numbers)
}

func TestDecode_StructuredTextOnlineEdits(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Calc" Type="ST">
<STContent OnlineEditType="Previous">
<Line Number="0"><![CDATA[IF Run THEN]]></Line>
<Line Number="1"><![CDATA[    Count := Count + 1;]]></Line>
<Line Number="2"><![CDATA[END_IF;]]></Line>
</STContent>
<STContent>
<Line Number="0"><![CDATA[IF Run AND NOT Fault THEN]]></Line>
<Line Number="1"><![CDATA[	Count := Count + 2;]]></Line>
<Line Number="2"><![CDATA[END_IF;]]></Line>
</STContent>
</Routine>`, true)

	want := []model.LogicItem{
		model.STBlock{OnlineEditType: "Previous", Code: "IF Run THEN\n    Count := Count + 1;\nEND_IF;"},
		model.STBlock{OnlineEditType: "", Code: "IF Run AND NOT Fault THEN\n\tCount := Count + 2;\nEND_IF;"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("decoded ST mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_StructuredTextBareLines(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Calc" Type="ST">
<Line><![CDATA[  a := 1;]]></Line>
<Line><![CDATA[  b := 2;]]></Line>
</Routine>`, false)

	assert.Equal(t, []model.LogicItem{model.STBlock{Code: "  a := 1;\n  b := 2;"}}, items)
}

func TestDecode_StructuredTextEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, decodeRoutine(t, `<Routine Name="Calc" Type="ST"/>`, false))

	items := decodeRoutine(t, `<Routine Name="Calc" Type="ST"><STContent/></Routine>`, false)
	assert.Equal(t, []model.LogicItem{model.STBlock{}}, items)
}

func TestDecode_FunctionBlockSummary(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Loop" Type="FBD"><FBDContent SheetSize="Letter">
<Sheet Number="1"><IRef ID="0"/><Block Type="PIDE" ID="1"/><Block Type="ADD" ID="2"/><Wire FromID="0" ToID="1"/></Sheet>
<Sheet Number="2"><Block Type="MUL" ID="3"/><Wire FromID="3" ToID="4"/><Wire FromID="4" ToID="5"/></Sheet>
</FBDContent></Routine>`, true)

	assert.Equal(t, []model.LogicItem{model.FBDSummary{
		SheetCount: 2,
		BlockCount: 3,
		WireCount:  3,
		Note:       FBDNote,
	}}, items)
}

func TestDecode_FunctionBlockWithoutContent(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Loop" Type="FBD"/>`, false)
	assert.Equal(t, []model.LogicItem{model.FBDSummary{Note: FBDNote}}, items)
}

func TestDecode_SequentialChartSummary(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="Seq" Type="SFC"><SFCContent>
<Step ID="0" Name="Init"/>
<Step ID="1"/>
<Step ID="2" Name="Fill"/>
<Transition ID="3"/>
<Transition ID="4"/>
<ActionStructure ID="5"/>
</SFCContent></Routine>`, false)

	assert.Equal(t, []model.LogicItem{model.SFCSummary{
		StepCount:       3,
		StepNames:       []string{"Init", "unnamed", "Fill"},
		TransitionCount: 2,
		ActionCount:     1,
		Note:            SFCNote,
	}}, items)
}

func TestDecode_UnknownType(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.WarnLevel)
	doc, err := l5x.Parse(strings.NewReader(`<RSLogix5000Content><Routine Name="Odd" Type="XYZ"><Whatever/></Routine></RSLogix5000Content>`))
	require.NoError(t, err)

	var items []model.LogicItem
	assert.NotPanics(t, func() {
		items = NewDecoder(doc, zap.New(core)).Decode(doc.Find(nil, "Routine"))
	})
	require.Len(t, items, 1)
	unknown, ok := items[0].(model.UnknownLogic)
	require.True(t, ok)
	assert.Equal(t, model.KindUnknown, unknown.Kind())
	assert.Equal(t, "XYZ", unknown.RoutineType)
	assert.Equal(t, `Logic parsing for routine type "XYZ" not implemented`, unknown.Note)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Odd", logs.All()[0].ContextMap()["routine"])
}

func TestDecode_MissingType(t *testing.T) {
	t.Parallel()
	items := decodeRoutine(t, `<Routine Name="NoType"/>`, false)
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].(model.UnknownLogic).RoutineType)
}
