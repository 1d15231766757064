package huffman

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncoder(t *testing.T) {
	var counts [NumSymbols]uint32
	copy(counts[:], []uint32{5, 9, 12, 13, 16, 45})

	var e Encoder
	e.Init(NewFrequencyTable(counts))

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()[:6]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}

	if e.Depth() != 4 {
		t.Errorf("expected depth 4, got %d", e.Depth())
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var counts [NumSymbols]uint32
	counts['A'] = 1000

	var e Encoder
	e.Init(NewFrequencyTable(counts))

	expect := MakeCode(1, 0)
	if actual := e.Encode('A'); actual != expect {
		t.Errorf("expected %s, got %s", expect, actual)
	}
	if actual := e.Encode('B'); actual.Size != 0 {
		t.Errorf("expected no code for 'B', got %s", actual)
	}
	if e.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", e.Depth())
	}
}

func TestEncoder_Empty(t *testing.T) {
	var e Encoder
	e.Init(NewFrequencyTable([NumSymbols]uint32{}))

	if n := e.Table().Len(); n != 0 {
		t.Errorf("expected empty table, got %d codes", n)
	}

	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	if err := e.Write(bw, nil); err != nil {
		t.Errorf("Write of empty input failed: %v", err)
	}
	if err := e.Write(bw, []byte{'x'}); err == nil {
		t.Errorf("expected an error writing a byte with no code")
	}
}
