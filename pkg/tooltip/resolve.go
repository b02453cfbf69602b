package tooltip

import "reflect"

// State is the tooltip's mutable state, excluding config.
type State struct {
	Model        any
	StrategyName string
	Formatter    Formatter
	Context      any
}

// HasModel reports whether a model is set.
func (s State) HasModel() bool {
	return s.Model != nil
}

// Resolve produces the content descriptor for state. First match wins:
//
//  1. a slice or array model is returned unchanged;
//  2. a formatter is called with the model and context;
//  3. the strategy named by state.StrategyName is called with the model,
//     cfg and context.
//
// Only step 3 can fail, with ErrUnknownStrategy.
func Resolve(state State, cfg Config, reg *Registry) (any, error) {
	if isSequence(reflect.ValueOf(state.Model)) {
		return state.Model, nil
	}
	if state.Formatter != nil {
		return state.Formatter(state.Model, state.Context), nil
	}
	strategy, err := reg.Lookup(state.StrategyName)
	if err != nil {
		return nil, err
	}
	return strategy(state.Model, cfg.clone(), state.Context), nil
}
