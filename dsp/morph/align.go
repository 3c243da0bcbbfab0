package morph

// AlignedLength returns the output frame count for combining frame
// sequences of lengths lenA and lenB.
//
// With timeAlign, both inputs are stretched onto a common synthetic
// timeline of ceil((lenA+lenB)/2) frames; without it, the longer input is
// truncated to the shorter one.
func AlignedLength(lenA, lenB int, timeAlign bool) int {
	if lenA <= 0 || lenB <= 0 {
		return 0
	}

	if timeAlign {
		return (lenA + lenB + 1) / 2
	}

	return min(lenA, lenB)
}

// SourceIndex maps output frame index i on a timeline of outLen frames to
// the nearest-neighbor source frame in a sequence of srcLen frames. The
// mapping is non-decreasing in i and clamped to the source bounds. No
// interpolation between adjacent frames is performed.
func SourceIndex(i, outLen, srcLen int) int {
	if outLen <= 0 || srcLen <= 0 {
		return 0
	}

	idx := i * srcLen / outLen
	if idx > srcLen-1 {
		idx = srcLen - 1
	}

	return idx
}
