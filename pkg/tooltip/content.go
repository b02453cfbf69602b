package tooltip

import (
	"log/slog"

	"github.com/vango-dev/tooltip/pkg/symbol"
	"github.com/vango-dev/tooltip/pkg/vdom"
)

// Mount is the caller-owned container a tooltip renders into. The tooltip
// never creates or destroys it; each render replaces its content.
type Mount interface {
	Replace(node *vdom.VNode)
}

// Item is the argument of Update. An empty Strategy selects the registry
// default.
type Item struct {
	Model     any
	Strategy  string
	Formatter Formatter
}

// RenderInfo describes a completed render.
type RenderInfo struct {
	Format   DisplayFormat
	Deferred bool
	Rows     int
	Cells    int

	// CellErrors lists icons that could not be drawn.
	CellErrors []error

	// Degraded is the malformed-descriptor error that was replaced by an
	// empty container outside strict mode.
	Degraded error
}

// Option configures a Content.
type Option func(*Content)

// WithRegistry sets the strategy registry.
func WithRegistry(r *Registry) Option {
	return func(c *Content) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithSymbols sets the registry used to resolve icon shapes by name.
func WithSymbols(s *symbol.Registry) Option {
	return func(c *Content) {
		c.symbols = s
	}
}

// WithLogger sets the logger for recovered render failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Content) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrict makes Render return malformed-descriptor errors instead of
// degrading to an empty container. Use it in development.
func WithStrict(strict bool) Option {
	return func(c *Content) {
		c.strict = strict
	}
}

// Content is a tooltip body: state, config and the render pipeline.
type Content struct {
	state    State
	config   Config
	registry *Registry
	symbols  *symbol.Registry
	cells    *CellRenderer
	logger   *slog.Logger
	strict   bool
}

// NewContent creates an empty tooltip using the default strategy and the
// default config.
func NewContent(opts ...Option) *Content {
	c := &Content{
		config:   DefaultConfig(),
		registry: DefaultRegistry(),
		logger:   slog.Default().With("component", "tooltip"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state.StrategyName = c.registry.Default()
	c.cells = NewCellRenderer(c.symbols, c.logger)
	return c
}

// Config returns a snapshot of the current config.
func (c *Content) Config() Config {
	return c.config.clone()
}

// SetConfig deep-merges partial onto the current config. Set fields
// replace existing values and Extra is merged key by key.
func (c *Content) SetConfig(partial Partial) *Content {
	merged, err := c.config.Merge(partial)
	if err != nil {
		c.logger.Error("tooltip config merge failed", "error", err)
		return c
	}
	c.config = merged
	return c
}

// Update replaces model, strategy and formatter together.
func (c *Content) Update(item Item) *Content {
	name := item.Strategy
	if name == "" {
		name = c.registry.Default()
	}
	c.state.Model = item.Model
	c.state.StrategyName = name
	c.state.Formatter = item.Formatter
	return c
}

// SetContext stores the value passed to strategies and formatters.
func (c *Content) SetContext(ctx any) *Content {
	c.state.Context = ctx
	return c
}

// Clear removes the model, keeping strategy, formatter, context and config.
func (c *Content) Clear() *Content {
	c.state.Model = nil
	return c
}

// State returns the current state.
func (c *Content) State() State {
	return c.state
}

// Registry returns the strategy registry.
func (c *Content) Registry() *Registry {
	return c.registry
}

// Strict reports whether malformed descriptors are returned as errors.
func (c *Content) Strict() bool {
	return c.strict
}

// Resolve runs the resolver on the current state.
func (c *Content) Resolve() (any, error) {
	return Resolve(c.state, c.config, c.registry)
}

// Normalized resolves and normalizes the current state.
func (c *Content) Normalized() (Normalized, error) {
	descriptor, err := c.Resolve()
	if err != nil {
		return Normalized{}, err
	}
	return Normalize(descriptor)
}

// Render lays the current state out into m.
//
// Resolution errors, and malformed descriptors in strict mode, are returned
// without touching m, so the previous content stays visible. Outside strict
// mode a malformed descriptor is logged and m receives an empty container.
func (c *Content) Render(m Mount) error {
	_, err := c.RenderInfo(m)
	return err
}

// RenderInfo is Render, also reporting what was rendered.
func (c *Content) RenderInfo(m Mount) (RenderInfo, error) {
	descriptor, err := c.Resolve()
	if err != nil {
		return RenderInfo{}, err
	}

	var info RenderInfo
	n, err := Normalize(descriptor)
	if err != nil {
		if c.strict {
			return RenderInfo{}, err
		}
		c.logger.Warn("tooltip content degraded to empty container",
			"strategy", c.state.StrategyName, "error", err)
		info.Degraded = err
		n = Normalized{DisplayFormat: FormatDefault}
	}

	tree, cellErrs := Layout(n, c.config, c.cells)
	m.Replace(tree)

	info.Format = n.DisplayFormat
	info.Deferred = n.IsDeferred()
	info.Rows = len(n.Content)
	for _, row := range n.Content {
		info.Cells += len(row)
	}
	info.CellErrors = cellErrs
	return info, nil
}
