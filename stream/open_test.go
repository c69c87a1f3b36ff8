package stream

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/format"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		variant format.Variant
		err     error
	}{
		{"three symbol", "ENC3_AAAAAA", format.VariantThreeSymbol, nil},
		{"four symbol", "ENC4_CAAC", format.VariantFourSymbol, nil},
		{"header only", "ENC4_", format.VariantFourSymbol, nil},
		{"plain data", "PK\x03\x04 zip", 0, errs.ErrUnrecognizedFormat},
		{"short", "ENC", 0, errs.ErrUnrecognizedFormat},
		{"empty", "", 0, errs.ErrUnrecognizedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant, err := Detect(bytes.NewReader([]byte(tt.input)))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.variant, variant)
		})
	}
}

func TestCreateAndOpen(t *testing.T) {
	for _, variant := range format.Variants() {
		t.Run(variant.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.dna")
			data := randomBytes(777, 3)

			s, err := Create(path, variant)
			require.NoError(t, err)
			_, err = s.Write(data)
			require.NoError(t, err)
			require.NoError(t, s.Close())

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, variant.Magic(), string(raw[:5]))

			reopened, err := Open(path)
			require.NoError(t, err)
			defer reopened.Close()

			require.Equal(t, variant, reopened.Variant())

			length, err := reopened.Length()
			require.NoError(t, err)
			require.Equal(t, int64(len(data)), length)

			got, err := io.ReadAll(reopened)
			require.NoError(t, err)
			require.Equal(t, data, got)
		})
	}
}

func TestOpen_Dispatch(t *testing.T) {
	t.Run("Three symbol", func(t *testing.T) {
		s, err := Open(writeFile(t, "a.dna", []byte("ENC3_AAAAAG")))
		require.NoError(t, err)
		defer s.Close()

		require.Equal(t, format.VariantThreeSymbol, s.Variant())
		require.Equal(t, 6, s.WordLength())

		b, err := s.ReadByte()
		require.NoError(t, err)
		require.Equal(t, byte(2), b)
	})

	t.Run("Four symbol", func(t *testing.T) {
		s, err := OpenReadOnly(writeFile(t, "b.dna", []byte("ENC4_CAAC")))
		require.NoError(t, err)
		defer s.Close()

		require.Equal(t, format.VariantFourSymbol, s.Variant())
		b, err := s.ReadByte()
		require.NoError(t, err)
		require.Equal(t, byte(0x41), b)
	})

	t.Run("Unrecognized", func(t *testing.T) {
		_, err := Open(writeFile(t, "c.txt", []byte("just some text")))
		require.ErrorIs(t, err, errs.ErrUnrecognizedFormat)
	})

	t.Run("Empty file", func(t *testing.T) {
		_, err := Open(writeFile(t, "d.txt", nil))
		require.ErrorIs(t, err, errs.ErrUnrecognizedFormat)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "missing.dna"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestCreateFile(t *testing.T) {
	t.Run("Open or create keeps content", func(t *testing.T) {
		path := writeFile(t, "e.dna", []byte("ENC4_CAAC"))

		s, err := CreateFile(path, os.O_RDWR|os.O_CREATE, 0o644, format.VariantFourSymbol)
		require.NoError(t, err)
		defer s.Close()

		length, err := s.Length()
		require.NoError(t, err)
		require.Equal(t, int64(1), length)
	})

	t.Run("Variant mismatch", func(t *testing.T) {
		path := writeFile(t, "f.dna", []byte("ENC4_CAAC"))

		_, err := CreateFile(path, os.O_RDWR|os.O_CREATE, 0o644, format.VariantThreeSymbol)
		require.ErrorIs(t, err, errs.ErrVariantMismatch)
	})

	t.Run("Create truncates", func(t *testing.T) {
		path := writeFile(t, "g.dna", []byte("ENC4_CAACCAAC"))

		s, err := Create(path, format.VariantThreeSymbol)
		require.NoError(t, err)
		require.NoError(t, s.Close())

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "ENC3_", string(raw))
	})

	t.Run("Unknown variant", func(t *testing.T) {
		_, err := Create(filepath.Join(t.TempDir(), "h.dna"), format.Variant(9))
		require.ErrorIs(t, err, errs.ErrUnrecognizedFormat)
	})
}

func TestNewFromStorage(t *testing.T) {
	storage := NewMemStorage([]byte("ENC3_AAAAAC"))
	_, err := storage.Seek(0, io.SeekEnd)
	require.NoError(t, err)

	s, err := NewFromStorage(storage)
	require.NoError(t, err)
	require.Equal(t, format.VariantThreeSymbol, s.Variant())

	b, err := s.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(1), b)
}
