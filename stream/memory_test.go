package stream

import (
	"io"
	"testing"

	"github.com/arloliu/dnacoder/errs"
	"github.com/stretchr/testify/require"
)

func TestMemStorage(t *testing.T) {
	t.Run("Read write seek", func(t *testing.T) {
		m := &MemStorage{}

		n, err := m.Write([]byte("hello"))
		require.NoError(t, err)
		require.Equal(t, 5, n)

		pos, err := m.Seek(1, io.SeekStart)
		require.NoError(t, err)
		require.Equal(t, int64(1), pos)

		buf := make([]byte, 3)
		n, err = m.Read(buf)
		require.NoError(t, err)
		require.Equal(t, "ell", string(buf[:n]))

		pos, err = m.Seek(-1, io.SeekEnd)
		require.NoError(t, err)
		require.Equal(t, int64(4), pos)

		_, err = m.Write([]byte("O!"))
		require.NoError(t, err)
		require.Equal(t, "hellO!", string(m.Bytes()))
	})

	t.Run("Write past end zero fills", func(t *testing.T) {
		m := NewMemStorage([]byte("ab"))

		_, err := m.Seek(4, io.SeekStart)
		require.NoError(t, err)
		_, err = m.Write([]byte("z"))
		require.NoError(t, err)

		require.Equal(t, []byte{'a', 'b', 0, 0, 'z'}, m.Bytes())
		require.Equal(t, int64(5), m.Size())
	})

	t.Run("EOF", func(t *testing.T) {
		m := NewMemStorage(nil)

		_, err := m.Read(make([]byte, 1))
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Invalid seeks", func(t *testing.T) {
		m := NewMemStorage([]byte("abc"))

		_, err := m.Seek(-1, io.SeekStart)
		require.ErrorIs(t, err, errs.ErrNegativePosition)

		_, err = m.Seek(0, 7)
		require.ErrorIs(t, err, errs.ErrInvalidWhence)
	})

	t.Run("Closed", func(t *testing.T) {
		m := NewMemStorage([]byte("abc"))
		require.NoError(t, m.Close())

		_, err := m.Read(make([]byte, 1))
		require.ErrorIs(t, err, errs.ErrStreamClosed)
		_, err = m.Write([]byte("x"))
		require.ErrorIs(t, err, errs.ErrStreamClosed)
		_, err = m.Seek(0, io.SeekStart)
		require.ErrorIs(t, err, errs.ErrStreamClosed)
		require.Equal(t, "abc", string(m.Bytes()))
	})
}

func TestStorageSize_SeekFallback(t *testing.T) {
	// bare seeker without Size or Stat
	type seekOnly struct{ io.ReadWriteSeeker }

	m := NewMemStorage([]byte("0123456789"))
	_, err := m.Seek(3, io.SeekStart)
	require.NoError(t, err)

	size, err := storageSize(seekOnly{m})
	require.NoError(t, err)
	require.Equal(t, int64(10), size)

	pos, err := m.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	require.Equal(t, int64(3), pos, "cursor restored")
}
