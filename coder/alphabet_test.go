package coder

import (
	"fmt"
	"testing"

	"github.com/arloliu/dnacoder/errs"
	"github.com/stretchr/testify/require"
)

func hexGenerator(b byte) string {
	return fmt.Sprintf("%02x", b)
}

func TestBuild(t *testing.T) {
	t.Run("Valid generator", func(t *testing.T) {
		a, err := Build(hexGenerator)

		require.NoError(t, err)
		require.Equal(t, 2, a.WordLength())
		require.Equal(t, "7f", a.Encode(0x7f))

		b, err := a.Decode("ff")
		require.NoError(t, err)
		require.Equal(t, byte(0xff), b)
	})

	t.Run("Nil generator", func(t *testing.T) {
		a, err := Build(nil)

		require.ErrorIs(t, err, errs.ErrAlphabetConstruction)
		require.Nil(t, a)
	})

	t.Run("Colliding codewords", func(t *testing.T) {
		a, err := Build(func(b byte) string {
			return hexGenerator(b % 128)
		})

		require.ErrorIs(t, err, errs.ErrAlphabetConstruction)
		require.Contains(t, err.Error(), "shared by bytes 0x00 and 0x80")
		require.Nil(t, a)
	})

	t.Run("Length mismatch", func(t *testing.T) {
		_, err := Build(func(b byte) string {
			return fmt.Sprintf("%d", b)
		})

		require.ErrorIs(t, err, errs.ErrAlphabetConstruction)
		require.Contains(t, err.Error(), "has length 2, want 1")
	})

	t.Run("Empty codeword", func(t *testing.T) {
		_, err := Build(func(b byte) string { return "" })

		require.ErrorIs(t, err, errs.ErrAlphabetConstruction)
	})

	t.Run("Non-ASCII codeword", func(t *testing.T) {
		_, err := Build(func(b byte) string {
			if b == 200 {
				return "é"
			}

			return hexGenerator(b)
		})

		require.ErrorIs(t, err, errs.ErrAlphabetConstruction)
		require.Contains(t, err.Error(), "not ASCII")
	})
}

func TestMustBuild(t *testing.T) {
	require.NotPanics(t, func() { MustBuild(hexGenerator) })
	require.Panics(t, func() {
		MustBuild(func(b byte) string { return "AA" })
	})
}

func TestAlphabet_Decode(t *testing.T) {
	a := MustBuild(hexGenerator)

	t.Run("Unknown codeword", func(t *testing.T) {
		_, err := a.Decode("zz")
		require.ErrorIs(t, err, errs.ErrUnknownCodeword)

		_, err = a.DecodeBytes([]byte("0"))
		require.ErrorIs(t, err, errs.ErrUnknownCodeword)
	})

	t.Run("AppendWord", func(t *testing.T) {
		buf := []byte("x")
		buf = a.AppendWord(buf, 0x10)
		buf = a.AppendWord(buf, 0xab)
		require.Equal(t, "x10ab", string(buf))
	})
}
