package chat

import (
	"bufio"
	"strings"
	"testing"
	"testing/iotest"
)

func TestScanBlocks_SplitsOnBlankLine(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("data:A\n\ndata:B\n\ndata:__END__\n\n"))
	scanner.Split(scanBlocks)

	var blocks []string
	for scanner.Scan() {
		blocks = append(blocks, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}
	want := []string{"data:A", "data:B", "data:__END__"}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %v", len(want), len(blocks), blocks)
	}
	for i := range want {
		if blocks[i] != want[i] {
			t.Errorf("block %d: expected %q, got %q", i, want[i], blocks[i])
		}
	}
}

func TestScanBlocks_ArbitraryReadBoundaries(t *testing.T) {
	// One byte at a time is the worst possible chunking: no read
	// boundary ever aligns with a block boundary.
	scanner := bufio.NewScanner(iotest.OneByteReader(strings.NewReader("data:A\n\ndata:B\n\n")))
	scanner.Split(scanBlocks)

	var payloads []string
	for scanner.Scan() {
		payloads = append(payloads, blockPayloads(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}
	if len(payloads) != 2 || payloads[0] != "A" || payloads[1] != "B" {
		t.Errorf("expected [A B], got %v", payloads)
	}
}

func TestScanBlocks_TrailingBlockWithoutSeparator(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("data:A\n\ndata:B"))
	scanner.Split(scanBlocks)

	var blocks []string
	for scanner.Scan() {
		blocks = append(blocks, scanner.Text())
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[1] != "data:B" {
		t.Errorf("expected trailing block 'data:B', got %q", blocks[1])
	}
}

func TestBlockPayloads_MultipleDataLines(t *testing.T) {
	payloads := blockPayloads("data:first\ndata:second")
	if len(payloads) != 2 || payloads[0] != "first" || payloads[1] != "second" {
		t.Errorf("expected [first second], got %v", payloads)
	}
}

func TestBlockPayloads_IgnoresNonDataLines(t *testing.T) {
	payloads := blockPayloads("event:message\ndata:hello\n: comment")
	if len(payloads) != 1 || payloads[0] != "hello" {
		t.Errorf("expected [hello], got %v", payloads)
	}
}

func TestBlockPayloads_PrefixMustBeExact(t *testing.T) {
	// " data:x" does not begin with the prefix, so it carries nothing.
	payloads := blockPayloads(" data:x\ndatax:y")
	if len(payloads) != 0 {
		t.Errorf("expected no payloads, got %v", payloads)
	}
}

func TestBlockPayloads_PayloadIsEverythingAfterPrefix(t *testing.T) {
	payloads := blockPayloads("data: spaced")
	if len(payloads) != 1 || payloads[0] != " spaced" {
		t.Errorf("expected [' spaced'], got %v", payloads)
	}
}

func TestBlockPayloads_EmptyBlock(t *testing.T) {
	if payloads := blockPayloads(""); len(payloads) != 0 {
		t.Errorf("expected no payloads from empty block, got %v", payloads)
	}
}
