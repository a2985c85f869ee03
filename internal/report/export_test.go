package report

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damischa1/l5x-tools/internal/config"
	"github.com/damischa1/l5x-tools/internal/extract"
	"github.com/damischa1/l5x-tools/internal/model"
	"github.com/damischa1/l5x-tools/internal/safewrite"
)

const projectFixture = "../extract/testdata/project.L5X"

type staticSource struct {
	tags []model.Tag
}

func (s staticSource) ControllerInfo() model.ControllerInfo {
	return model.ControllerInfo{Present: true, Attributes: []model.Attribute{{Name: "Name", Value: "Line1"}}}
}
func (s staticSource) GlobalTags() []model.Tag { return s.tags }
func (s staticSource) DataTypes() []model.DataType { return nil }
func (s staticSource) Instructions() []model.Instruction { return nil }
func (s staticSource) Modules() []model.Module { return nil }
func (s staticSource) Tasks() []model.Task { return nil }
func (s staticSource) Programs() []model.Program { return nil }

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write(string, string) (string, error) {
	w.calls++
	return "", errors.New("disk full")
}

func newWriter(t *testing.T, fs afero.Fs) *safewrite.Writer {
	t.Helper()
	clk := clockwork.NewFakeClockAt(time.Date(2025, 3, 3, 9, 14, 22, 0, time.Local))
	w, err := safewrite.New(fs, safewrite.WithClock(clk))
	require.NoError(t, err)
	return w
}

func TestExport_AllCategories(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	src := staticSource{tags: []model.Tag{{Name: "Start", DataType: "BOOL", Usage: model.UsageLocal}}}

	var seen []string
	results, err := NewExporter(src, newWriter(t, fs), config.Default(), nil).Export("/out", func(r Result) {
		seen = append(seen, r.Category.Title)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Controller Info", "Global Tags", "Data Types (UDTs)", "Add-On Instructions", "I/O Modules", "Tasks", "Programs"}, seen)
	var paths []string
	for _, r := range results {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{
		"/out/extract_controller_info.txt",
		"/out/extract_tags.txt",
		"/out/extract_data_types.txt",
		"/out/extract_aoi_definitions.txt",
		"/out/extract_modules.txt",
		"/out/extract_tasks.txt",
		"/out/extract_programs.txt",
	}, paths)

	info, err := afero.ReadFile(fs, "/out/extract_controller_info.txt")
	require.NoError(t, err)
	assert.Equal(t, "Name: Line1\nDescription: ", string(info))
}

func TestExport_ExistingReportIsKept(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/extract_tags.txt", []byte("previous run"), 0o644))

	results, err := NewExporter(staticSource{}, newWriter(t, fs), config.Default(), nil).Export("/out", nil)
	require.NoError(t, err)

	assert.Equal(t, "/out/extract_tags_20250303_091422.txt", results[1].Path)
	old, err := afero.ReadFile(fs, "/out/extract_tags.txt")
	require.NoError(t, err)
	assert.Equal(t, "previous run", string(old))

	fresh, err := afero.ReadFile(fs, results[1].Path)
	require.NoError(t, err)
	assert.Contains(t, string(fresh), "Type/Alias")
}

func TestExport_SkipAndPrefix(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	cfg := config.Default()
	cfg.Reports.Prefix = "line1_"
	cfg.Reports.Skip = []string{config.Modules, config.Programs}

	results, err := NewExporter(staticSource{}, newWriter(t, fs), cfg, nil).Export("/out", nil)
	require.NoError(t, err)

	require.Len(t, results, 5)
	for _, r := range results {
		assert.NotEqual(t, config.Modules, r.Category.Key)
		assert.NotEqual(t, config.Programs, r.Category.Key)
	}
	assert.Equal(t, "/out/line1_tags.txt", results[1].Path)
	exists, err := afero.Exists(fs, "/out/line1_modules.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExport_StopsOnWriteError(t *testing.T) {
	t.Parallel()
	w := &failingWriter{}
	results, err := NewExporter(staticSource{}, w, config.Default(), nil).Export("/out", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "export Controller Info: disk full")
	assert.Empty(t, results)
	assert.Equal(t, 1, w.calls)
}

func TestExport_Fixture(t *testing.T) {
	t.Parallel()
	a, err := extract.Open(afero.NewReadOnlyFs(afero.NewOsFs()), projectFixture)
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	_, err = NewExporter(a, newWriter(t, fs), config.Default(), nil).Export("/out", nil)
	require.NoError(t, err)

	read := func(name string) string {
		b, err := afero.ReadFile(fs, "/out/"+name)
		require.NoError(t, err)
		return string(b)
	}

	assert.Contains(t, read("extract_controller_info.txt"), "Name: Line1\nProcessorType: 1756-L83E\nDescription: Packaging line 1 main controller\nUse: Target\n")
	assert.Contains(t, read("extract_tags.txt"), "Alias->Conveyor.Run")
	assert.Contains(t, read("extract_data_types.txt"), "USER DEFINED TYPES (UDTs) - Found 1")
	assert.NotContains(t, read("extract_data_types.txt"), "ZZZZZZZZZZMotor_UDT0")
	assert.Contains(t, read("extract_aoi_definitions.txt"), "AOI: Valve_AOI")
	assert.Contains(t, read("extract_modules.txt"), "Local:2")
	assert.Contains(t, read("extract_tasks.txt"), "    - Ghost")

	programs := read("extract_programs.txt")
	assert.Contains(t, programs, "    [Rung 0]\n      /* Start the conveyor */\n      /* Start_PB: Field button */\n")
	assert.Contains(t, programs, "    [Structured Text Code]")
	assert.Contains(t, programs, "      Sheets: 1, Blocks: 1, Wires: 1")
	assert.Contains(t, programs, "      Step Names: Idle, Running")
	assert.Contains(t, programs, "*** PROGRAM DISABLED ***")
}
