package document

import (
	"gopkg.in/yaml.v3"

	tterrors "github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

var knownConfigKeys = map[string]bool{
	"classPrefix":       true,
	"iconContainerSize": true,
	"rowMargin":         true,
	"spacing":           true,
	"separator":         true,
	"extra":             true,
}

// decodeConfig decodes a config section into a partial that sets exactly
// the keys present. Keys the tooltip does not know are kept in Extra.
func decodeConfig(node *yaml.Node) (tooltip.Partial, error) {
	var cfg tooltip.Partial
	if err := node.Decode(&cfg); err != nil {
		return tooltip.Partial{}, err
	}

	var all map[string]any
	if err := node.Decode(&all); err != nil {
		return tooltip.Partial{}, err
	}
	for k, v := range all {
		if knownConfigKeys[k] {
			continue
		}
		if cfg.Extra == nil {
			cfg.Extra = make(map[string]any)
		}
		cfg.Extra[k] = v
	}
	return cfg, nil
}

// ParseConfig decodes a standalone config partial in YAML or JSON, the
// same way a document's config section is decoded.
func ParseConfig(data []byte) (tooltip.Partial, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return tooltip.Partial{}, tterrors.New("T020").WithDetail("config is not valid YAML or JSON").Wrap(err)
	}
	if root.Kind == 0 || len(root.Content) == 0 || isEmpty(root.Content[0]) {
		return tooltip.Partial{}, nil
	}
	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return tooltip.Partial{}, tterrors.New("T020").WithDetailf("config must be a mapping, line %d", node.Line)
	}
	cfg, err := decodeConfig(node)
	if err != nil {
		return tooltip.Partial{}, tterrors.New("T020").WithDetail("config").Wrap(err)
	}
	return cfg, nil
}
