package channel

import "fmt"

// Multi is a composite channel that dispatches to a different sub-channel
// depending on the input symbol. The dispatch table is copied and frozen at
// construction, so a Multi is as immutable as its sub-channels; several
// inputs may share one sub-channel instance.
type Multi[In comparable, Out any] struct {
	table map[In]Channel[In, Out]
}

// NewMulti creates a composite channel from a mapping of input symbols to
// sub-channels. The map is copied; later mutation of the argument does not
// affect the constructed channel.
func NewMulti[In comparable, Out any](table map[In]Channel[In, Out]) (*Multi[In, Out], error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}

	frozen := make(map[In]Channel[In, Out], len(table))

	for in, sub := range table {
		if sub == nil {
			return nil, fmt.Errorf("%w: input %v", ErrNilSubChannel, in)
		}

		frozen[in] = sub
	}

	return &Multi[In, Out]{table: frozen}, nil
}

// Sub returns the sub-channel registered for the given input symbol, or an
// error wrapping ErrUnmappedInput when none is registered. The lookup never
// inserts.
func (c *Multi[In, Out]) Sub(input In) (Channel[In, Out], error) {
	sub, ok := c.table[input]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnmappedInput, input)
	}

	return sub, nil
}

// Likelihood delegates to the sub-channel registered for input.
//
// Querying an input with no registered sub-channel is a programming error:
// Likelihood panics with an error wrapping ErrUnmappedInput rather than
// returning a silent default. Callers that cannot guarantee coverage of the
// input alphabet should go through Sub.
func (c *Multi[In, Out]) Likelihood(output Out, input In) float64 {
	sub, err := c.Sub(input)
	if err != nil {
		panic(err)
	}

	return sub.Likelihood(output, input)
}

// Len returns the number of registered input symbols.
func (c *Multi[In, Out]) Len() int {
	return len(c.table)
}
