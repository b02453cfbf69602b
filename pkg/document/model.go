package document

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/tooltip/pkg/tooltip"
)

// ModelDecoder decodes the model section of a document for one strategy.
type ModelDecoder func(node *yaml.Node) (any, error)

var (
	decodersMu sync.RWMutex
	decoders   = map[string]ModelDecoder{
		tooltip.StrategyKeyValue: decodeRecord,
		tooltip.StrategyTable:    decodeInto[tooltip.Table],
		tooltip.StrategySeries:   decodeInto[tooltip.SeriesSet],
		tooltip.StrategyRaw:      decodeInto[string],
	}
)

// RegisterModelDecoder sets the decoder used for models of a custom strategy.
// Models of strategies without a decoder are decoded generically.
func RegisterModelDecoder(strategy string, d ModelDecoder) {
	decodersMu.Lock()
	defer decodersMu.Unlock()
	decoders[strategy] = d
}

// DecodeModel decodes node as a model for strategy. A sequence is always
// decoded as pre-built rows, since such a model bypasses the strategy.
func DecodeModel(strategy string, node *yaml.Node) (any, error) {
	if node.Kind == yaml.SequenceNode {
		var rows [][]cell
		if err := node.Decode(&rows); err != nil {
			return nil, fmt.Errorf("rows model: %w", err)
		}
		return rowsFrom(rows), nil
	}

	decodersMu.RLock()
	d, ok := decoders[strategyOrDefault(strategy)]
	decodersMu.RUnlock()
	if !ok {
		d = decodeInto[any]
	}
	return d(node)
}

func decodeInto[T any](node *yaml.Node) (any, error) {
	var v T
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// decodeRecord keeps the document's key order.
func decodeRecord(node *yaml.Node) (any, error) {
	if node.Kind != yaml.MappingNode {
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}

	rec := tooltip.Record{Fields: make([]tooltip.Field, 0, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("field %q: %w", node.Content[i].Value, err)
		}
		rec.Fields = append(rec.Fields, tooltip.Field{Key: node.Content[i].Value, Value: value})
	}
	return rec, nil
}
