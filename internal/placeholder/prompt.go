package placeholder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Collect asks for a value for every definition, in order, reading one line
// from r per token. An empty line, or end of input, selects the default
// suggestion. Anything else is taken literally, minus the line terminator.
func Collect(defs []Definition, r io.Reader, w io.Writer) (Mapping, error) {
	reader := bufio.NewReader(r)
	pairs := make([]Pair, 0, len(defs))

	for _, d := range defs {
		def := DefaultSuggestion(d.Token)
		fmt.Fprintf(w, "%s [%s]: ", d.Label(), def)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Mapping{}, fmt.Errorf("reading value for %s: %w", d.Token, err)
		}
		if errors.Is(err, io.EOF) {
			// Keep the transcript readable when input is piped.
			fmt.Fprintln(w)
		}

		value := strings.TrimSuffix(line, "\n")
		value = strings.TrimSuffix(value, "\r")
		if value == "" {
			value = def
		}
		pairs = append(pairs, Pair{Token: d.Token, Value: value})
	}

	return NewMapping(pairs), nil
}
