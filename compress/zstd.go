package compress

// ZstdCompressor implements the Zstandard codec for block frames compressed
// with format.CompressionZstd. Build-tagged implementations live in
// zstd_cgo.go (github.com/valyala/gozstd) and zstd_pure.go
// (github.com/klauspost/compress/zstd).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
