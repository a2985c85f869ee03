package report

import (
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/config"
	"github.com/damischa1/l5x-tools/internal/model"
)

// Source provides the extracted entities. *extract.Analyzer implements it.
type Source interface {
	ControllerInfo() model.ControllerInfo
	GlobalTags() []model.Tag
	DataTypes() []model.DataType
	Instructions() []model.Instruction
	Modules() []model.Module
	Tasks() []model.Task
	Programs() []model.Program
}

// FileWriter persists a report and returns the path actually written.
// *safewrite.Writer implements it.
type FileWriter interface {
	Write(path, content string) (string, error)
}

// Category is one exported report.
type Category struct {
	Key    string
	Title  string
	Render func(Source) string
}

// Catalogue lists the report categories in export order.
var Catalogue = []Category{
	{Key: config.ControllerInfo, Title: "Controller Info", Render: func(s Source) string { return ControllerInfo(s.ControllerInfo()) }},
	{Key: config.Tags, Title: "Global Tags", Render: func(s Source) string { return Tags(s.GlobalTags()) }},
	{Key: config.DataTypes, Title: "Data Types (UDTs)", Render: func(s Source) string { return DataTypes(s.DataTypes()) }},
	{Key: config.AOIDefinitions, Title: "Add-On Instructions", Render: func(s Source) string { return Instructions(s.Instructions()) }},
	{Key: config.Modules, Title: "I/O Modules", Render: func(s Source) string { return Modules(s.Modules()) }},
	{Key: config.Tasks, Title: "Tasks", Render: func(s Source) string { return Tasks(s.Tasks()) }},
	{Key: config.Programs, Title: "Programs", Render: func(s Source) string { return Programs(s.Programs()) }},
}

// Result names the file written for a category.
type Result struct {
	Category Category
	Path     string
}

// Exporter renders every enabled category and hands it to the writer.
type Exporter struct {
	src    Source
	writer FileWriter
	cfg    config.Config
	logger *zap.Logger
}

func NewExporter(src Source, writer FileWriter, cfg config.Config, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{src: src, writer: writer, cfg: cfg, logger: logger}
}

// Export writes the reports into outDir in catalogue order. onDone, when
// set, is called after each file. The first failure stops the export.
func (e *Exporter) Export(outDir string, onDone func(Result)) ([]Result, error) {
	var results []Result
	for _, c := range Catalogue {
		if !e.cfg.Enabled(c.Key) {
			e.logger.Debug("report skipped", zap.String("category", c.Key))
			continue
		}

		target := filepath.Join(outDir, e.cfg.FileName(c.Key))
		path, err := e.writer.Write(target, c.Render(e.src))
		if err != nil {
			return results, errors.Wrapf(err, "export %s", c.Title)
		}
		e.logger.Debug("report written", zap.String("category", c.Key), zap.String("path", path))

		r := Result{Category: c, Path: path}
		results = append(results, r)
		if onDone != nil {
			onDone(r)
		}
	}
	return results, nil
}
