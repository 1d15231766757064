package huffman

// Stats summarizes what compressing an input produces.
type Stats struct {
	OriginalSize  uint64
	ContainerSize uint64
	Distinct      int
	MinCodeSize   byte
	MaxCodeSize   byte
	TreeDepth     int
	EncodedBits   uint64
}

// Analyze computes the Stats for compressing data without producing the
// container.  The Encoder it returns exposes the code table for inspection.
func (c *Codec) Analyze(data []byte) (Stats, Encoder, error) {
	ft, err := CountFrequencies(data)
	if err != nil {
		return Stats{}, Encoder{}, err
	}
	var e Encoder
	e.Init(ft)
	bits := e.Table().WeightedLength(ft)
	return Stats{
		OriginalSize:  ft.Total(),
		ContainerSize: HeaderSize + (bits+7)/8,
		Distinct:      ft.Distinct(),
		MinCodeSize:   e.Table().MinSize(),
		MaxCodeSize:   e.Table().MaxSize(),
		TreeDepth:     e.Depth(),
		EncodedBits:   bits,
	}, e, nil
}
