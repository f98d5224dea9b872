package chat

import (
	"bytes"
	"strings"
)

const (
	// dataPrefix marks payload lines inside a block.
	dataPrefix = "data:"
	// endSentinel is the payload that signals normal stream completion.
	endSentinel = "__END__"
	// blockSeparator delimits blocks on the wire.
	blockSeparator = "\n\n"
)

// scanBlocks is a bufio.SplitFunc that splits the stream into blocks
// separated by a blank line. Incomplete blocks stay buffered until more
// bytes arrive, so read boundaries never have to align with block
// boundaries.
func scanBlocks(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.Index(data, []byte(blockSeparator)); i >= 0 {
		return i + len(blockSeparator), data[:i], nil
	}
	if atEOF {
		// Trailing block with no separator.
		return len(data), data, nil
	}
	return 0, nil, nil
}

// blockPayloads extracts the payloads from one block: every line that
// starts with the literal "data:" prefix contributes everything after
// it. All other lines are ignored.
func blockPayloads(block string) []string {
	var payloads []string
	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(line, dataPrefix) {
			payloads = append(payloads, strings.TrimPrefix(line, dataPrefix))
		}
	}
	return payloads
}
