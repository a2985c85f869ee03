// Package extract projects an L5X document into the model entities. Every
// extractor is a pure read of the document and returns entities in
// document order.
package extract

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/l5x"
	"github.com/damischa1/l5x-tools/internal/logic"
	"github.com/damischa1/l5x-tools/internal/model"
)

// Analyzer exclusively owns one loaded document for the duration of a run.
type Analyzer struct {
	doc     *l5x.Document
	decoder *logic.Decoder
	logger  *zap.Logger
}

type Option func(*Analyzer)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Open loads the document at path and wraps it in an Analyzer.
func Open(fs afero.Fs, path string, opts ...Option) (*Analyzer, error) {
	doc, err := l5x.Load(fs, path)
	if err != nil {
		return nil, err
	}
	return New(doc, opts...), nil
}

func New(doc *l5x.Document, opts ...Option) *Analyzer {
	a := &Analyzer{doc: doc, logger: zap.NewNop()}
	for _, o := range opts {
		o(a)
	}
	a.decoder = logic.NewDecoder(doc, a.logger)
	return a
}

// Document returns the analysed document.
func (a *Analyzer) Document() *l5x.Document { return a.doc }

// GlobalTags returns the controller scoped tags.
func (a *Analyzer) GlobalTags() []model.Tag {
	tags := a.tags(nil, "Controller/Tags/Tag")
	a.logger.Debug("extracted global tags", zap.Int("count", len(tags)))
	return tags
}

func (a *Analyzer) tags(ctx *l5x.Element, path string) []model.Tag {
	elements := a.doc.FindAll(ctx, path)
	out := make([]model.Tag, 0, len(elements))
	for _, e := range elements {
		out = append(out, a.tag(e))
	}
	return out
}

func (a *Analyzer) tag(e *l5x.Element) model.Tag {
	return model.Tag{
		Name:        e.AttrOr("Name", ""),
		DataType:    e.AttrOr("DataType", ""),
		Usage:       model.Usage(e.AttrOr("Usage", string(model.UsageLocal))),
		AliasFor:    e.AttrOr("AliasFor", ""),
		Radix:       e.AttrOr("Radix", ""),
		Description: a.doc.Description(e),
	}
}

// routines decodes every routine owned by parent (a Program or an AOI).
func (a *Analyzer) routines(parent *l5x.Element) []model.Routine {
	elements := a.doc.FindAll(parent, "Routines/Routine")
	out := make([]model.Routine, 0, len(elements))
	for _, r := range elements {
		out = append(out, model.Routine{
			Name:        r.AttrOr("Name", ""),
			Type:        model.RoutineType(r.AttrOr("Type", "")),
			Description: a.doc.Description(r),
			Logic:       a.decoder.Decode(r),
		})
	}
	return out
}
