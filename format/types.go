// Package format defines the small, self-contained enumerations shared
// across the frame and block decoders: the compressed-block codec and the
// native-protocol frame method byte.
package format

// CompressionType identifies the codec used to compress one native-protocol
// block frame (see block/frame).
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x02 // CompressionNone: frame carries the raw block bytes.
	CompressionLZ4  CompressionType = 0x82 // CompressionLZ4: frame payload is one LZ4 block.
	CompressionZstd CompressionType = 0x90 // CompressionZstd: frame payload is one Zstd frame.
	CompressionS2   CompressionType = 0x91 // CompressionS2: server-extension codec, Snappy-compatible S2 block.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	default:
		return "Unknown"
	}
}
