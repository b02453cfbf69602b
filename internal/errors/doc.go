// Package errors provides coded, actionable errors for the tooltip module.
//
// Every error carries a code (e.g., "T001") that maps to a registered
// template with a category, a short message and a longer explanation. The
// CLI prints them with Format; libraries match them with errors.Is against
// the sentinel they wrap or with HasCode.
//
// # Error Categories
//
//   - resolve: choosing the function that produces tooltip content
//   - normalize: interpreting what that function returned
//   - render: building cells (isolated per cell, never fatal)
//   - config: tooltip and project configuration
//   - document: tooltip document files
//   - snapshot: publishing rendered output
//   - cli: command usage
//
// # Usage
//
//	err := errors.New("T001").
//	    WithDetail(`strategy "pie" is not registered`).
//	    WithSuggestion("Register the strategy or use one of: keyValue, table").
//	    Wrap(tooltip.ErrUnknownStrategy)
//
//	fmt.Println(err.Format())
package errors
