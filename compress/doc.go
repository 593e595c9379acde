// Package compress provides the decompression codecs used to unwrap one
// native-protocol block frame (see block/frame).
//
// # Overview
//
// A server speaking the native wire protocol over a plain TCP socket (as
// opposed to HTTP, where any compression is already handled by the
// transport) wraps each block in a frame carrying a checksum, a one-byte
// method identifier, and the compressed payload. This package implements
// the decompression side of that envelope for every method the server is
// known to emit, plus the pack-compatible S2 extension:
//
//   - None (format.CompressionNone): frame payload is the raw block bytes.
//   - LZ4 (format.CompressionLZ4): the server's default codec.
//   - Zstd (format.CompressionZstd): opt-in, higher ratio.
//   - S2 (format.CompressionS2): Snappy-compatible extension codec.
//
// # Architecture
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Compress is retained on every codec even though block/frame only ever
// calls Decompress — the decoder never re-emits compressed frames — so
// that the same Codec value can be reused by a hypothetical encoder built
// on top of this package without a second implementation.
//
// # Selecting a codec
//
//	codec, err := compress.GetCodec(format.CompressionLZ4)
//	if err != nil { ... }
//	raw, err := codec.Decompress(framePayload)
//
// GetCodec looks up one of the four built-in codecs; CreateCodec is the
// constructor form used when a codec isn't needed from the shared
// singleton map.
//
// # Memory management
//
// Zstd (pure-Go build) pools its encoder and decoder instances via
// sync.Pool to avoid repeated setup cost across many small block frames;
// LZ4 pools only its block compressor, and its Decompress allocates a
// fresh output buffer per call. The cgo
// Zstd path (build tag cgo) calls into github.com/valyala/gozstd instead,
// trading the pure-Go dependency for libzstd's throughput.
package compress
