package huffman

import (
	"bytes"
	"strings"
	"testing"
)

func makeTestDecoder(t *testing.T) Decoder {
	var d Decoder
	if err := d.Init(mustFrequencies(t, "aaabbc")); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return d
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder(t)
	br := NewBitReader(bytes.NewReader([]byte{0x1f, 0x00}))

	expect := "aaabbc"
	for i := 0; i < len(expect); i++ {
		b, err := d.Decode(br)
		if err != nil {
			t.Fatalf("symbol %d: unexpected error: %v", i, err)
		}
		if b != expect[i] {
			t.Errorf("symbol %d: expected %q, got %q", i, expect[i], b)
		}
	}
	if n := br.BitsRead(); n != 9 {
		t.Errorf("expected 9 bits read, got %d", n)
	}
}

func TestDecoder_Truncated(t *testing.T) {
	d := makeTestDecoder(t)
	br := NewBitReader(bytes.NewReader(nil))
	if _, err := d.Decode(br); err != ErrTruncated {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestDecoder_EmptyAlphabet(t *testing.T) {
	var d Decoder
	if err := d.Init(mustFrequencies(t, "")); err != ErrEmptyAlphabet {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder(t)

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tLeaves() = 3\n",
		"\tDepth() = 2\n",
		"Node{6}\n",
		"\t0: Leaf{97, 3}\n",
		"\t1: Node{3}\n",
		"\t\t0: Leaf{99, 1}\n",
		"\t\t1: Leaf{98, 2}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
