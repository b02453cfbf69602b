package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	tterrors "github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

// MaxSize is the largest document Parse accepts.
const MaxSize = 1 << 20

// Document is a decoded tooltip document.
type Document struct {
	Strategy      string
	DisplayFormat tooltip.DisplayFormat

	// Rows holds pre-built rows. When set, Model is ignored.
	Rows []tooltip.Row

	// Model is the strategy input, decoded for the named strategy.
	Model any

	Context any

	// Config sets only the keys present in the document.
	Config tooltip.Partial
}

type rawDocument struct {
	Strategy      string                `yaml:"strategy"`
	DisplayFormat tooltip.DisplayFormat `yaml:"displayFormat"`
	Rows          [][]cell              `yaml:"rows"`
	Model         yaml.Node             `yaml:"model"`
	Context       any                   `yaml:"context"`
	Config        yaml.Node             `yaml:"config"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, tterrors.New("T020").WithDetailf("cannot open %s", path).Wrap(err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a document from r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, tterrors.New("T020").Wrap(err)
	}
	if len(data) > MaxSize {
		return nil, tterrors.New("T020").WithDetailf("document exceeds %d bytes", MaxSize)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON document.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, tterrors.New("T020").Wrap(err)
	}

	doc := &Document{
		Strategy:      raw.Strategy,
		DisplayFormat: raw.DisplayFormat,
		Context:       raw.Context,
	}

	if raw.Rows != nil {
		doc.Rows = rowsFrom(raw.Rows)
	}

	if !isEmpty(&raw.Model) {
		model, err := DecodeModel(doc.Strategy, &raw.Model)
		if err != nil {
			return nil, tterrors.New("T020").
				WithDetailf("model does not fit strategy %q", strategyOrDefault(doc.Strategy)).
				Wrap(err)
		}
		doc.Model = model
	}

	if !isEmpty(&raw.Config) {
		cfg, err := decodeConfig(&raw.Config)
		if err != nil {
			return nil, tterrors.New("T020").WithDetail("invalid config section").Wrap(err)
		}
		doc.Config = cfg
	}

	return doc, nil
}

// Item returns the update described by the document. Pre-built rows are
// delivered through a formatter that returns them as a structured
// descriptor, so the display format is honored.
func (d *Document) Item() tooltip.Item {
	if d.Rows != nil {
		return tooltip.Item{
			Model:     tooltip.Structured{Content: d.Rows, DisplayFormat: d.DisplayFormat},
			Strategy:  d.Strategy,
			Formatter: passThrough,
		}
	}
	return tooltip.Item{Model: d.Model, Strategy: d.Strategy}
}

// Apply loads the document into c: config overrides, context, then the item.
func (d *Document) Apply(c *tooltip.Content) *tooltip.Content {
	c.SetConfig(d.Config)
	if d.Context != nil {
		c.SetContext(d.Context)
	}
	return c.Update(d.Item())
}

func passThrough(model any, _ any) any {
	return model
}

func strategyOrDefault(name string) string {
	if name == "" {
		return tooltip.DefaultStrategy
	}
	return name
}

func isEmpty(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// cell decodes a row entry: mappings become cell descriptors, anything
// else is kept as a scalar.
type cell struct {
	value tooltip.Cell
}

func (c *cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var d tooltip.CellDescriptor
		if err := node.Decode(&d); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		c.value = d
		return nil
	}
	return node.Decode(&c.value)
}

func rowsFrom(cells [][]cell) []tooltip.Row {
	rows := make([]tooltip.Row, len(cells))
	for i, r := range cells {
		row := make(tooltip.Row, len(r))
		for j, c := range r {
			row[j] = c.value
		}
		rows[i] = row
	}
	return rows
}
