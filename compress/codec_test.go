package compress

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/format"
	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		cType    format.CompressionType
		expected Codec
	}{
		{format.CompressionNone, NoOpCompressor{}},
		{format.CompressionZstd, ZstdCompressor{}},
		{format.CompressionS2, S2Compressor{}},
		{format.CompressionLZ4, LZ4Compressor{}},
	}

	for _, tt := range tests {
		t.Run(tt.cType.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.cType)
			require.NoError(t, err)
			require.IsType(t, tt.expected, codec)

			shared, err := GetCodec(tt.cType)
			require.NoError(t, err)
			require.IsType(t, tt.expected, shared)
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		_, err := CreateCodec(format.CompressionType(0x9))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)

		_, err = GetCodec(format.CompressionType(0))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

// TestAllCodecs_EmptyData tests that all codecs handle empty data correctly
func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed, "Compressing nil should return nil")

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed, "Decompressing nil should return nil")

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_byte", []byte{0x42}},
		{"small_text", []byte("GATTACA, the quick brown fox")},
		{"binary", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC}},
		{"repeated", bytes.Repeat([]byte("ACGT"), 1000)},
		{"log_lines", bytes.Repeat([]byte("2026-10-19T10:00:00Z INFO converted file size=1024\n"), 512)},
		{"zeros", make([]byte, 1024*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed, "Decompressed data must match original")
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	testData := bytes.Repeat([]byte("concurrent payload "), 64)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, numGoroutines)

			for range numGoroutines {
				wg.Add(1)
				go func() {
					defer wg.Done()

					compressed, err := codec.Compress(testData)
					if err != nil {
						errCh <- err
						return
					}
					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(testData, decompressed) {
						errCh <- fmt.Errorf("round trip mismatch")
					}
				}()
			}

			wg.Wait()
			close(errCh)
			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}
