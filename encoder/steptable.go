package encoder

// quadratureSequence is the 4-entry Gray sequence walked by the simulator.
// Each entry packs the two line levels as B<<1|A, so consecutive entries
// differ by exactly one bit: (0,0) -> (1,0) -> (1,1) -> (0,1) -> (0,0).
var quadratureSequence = [4]uint8{0, 1, 3, 2}

// StepLevels maps a step index to the (A, B) line levels. The index is
// reduced modulo 4, so any uint8 is a valid input.
func StepLevels(step uint8) (a, b bool) {
	levels := quadratureSequence[step&0x03]
	return levels&0x01 != 0, levels&0x02 != 0
}
