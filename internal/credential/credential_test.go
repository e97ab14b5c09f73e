// Copyright (c) 2025 Akshat Agrawal
// SPDX-License-Identifier: AGPL-3.0-or-later

package credential

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akshatagrawal1470/Password-protected-security-lock-system/internal/storage"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"single digit", "0", false},
		{"default", "1234", false},
		{"max length", "123456", false},
		{"empty", "", true},
		{"too long", "1234567", true},
		{"non digit", "12a4", true},
		{"negative sign", "-123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.in, c.String())
			require.Equal(t, len(tt.in), c.Len())
		})
	}
}

func TestCredentialEqual(t *testing.T) {
	a := MustParse("1234")
	require.True(t, a.Equal(MustParse("1234")))
	require.False(t, a.Equal(MustParse("1235")))
	require.False(t, a.Equal(MustParse("123")))
	require.False(t, a.Equal(MustParse("12345")))
	require.False(t, a.Equal(Credential{}))
}

func TestCredentialMask(t *testing.T) {
	require.Equal(t, "****", MustParse("1234").Mask())
	require.Equal(t, "", Credential{}.Mask())
}

func TestBufferAppendLimit(t *testing.T) {
	var b Buffer
	for i := 0; i < MaxLen; i++ {
		require.True(t, b.Append(byte(i)))
	}
	// Append beyond MaxLen is rejected without altering the buffer.
	require.False(t, b.Append(9))
	require.Equal(t, MaxLen, b.Len())
	require.Equal(t, "012345", b.Credential().String())
}

func TestBufferBackspace(t *testing.T) {
	var b Buffer
	// Backspace on an empty buffer is a no-op.
	require.False(t, b.Backspace())

	b.Append(1)
	b.Append(2)
	require.True(t, b.Backspace())
	require.Equal(t, 1, b.Len())
	require.Equal(t, "1", b.Credential().String())
}

func TestBufferClear(t *testing.T) {
	var b Buffer
	b.Append(7)
	b.Clear()
	require.True(t, b.IsEmpty())
	require.Equal(t, "", b.Mask())
}

func TestStoreRoundTrip(t *testing.T) {
	// save(C) followed by load() returns C exactly, for every legal length.
	pins := []string{"7", "42", "911", "1234", "98765", "123456"}
	for _, pin := range pins {
		t.Run(pin, func(t *testing.T) {
			s := NewStore(storage.NewMemStore(0))
			c := MustParse(pin)
			require.NoError(t, s.Save(c))
			require.True(t, s.Load().Equal(c), "round-trip mismatch for %q", pin)
		})
	}
}

func TestStoreLoadUninitialized(t *testing.T) {
	s := NewStore(storage.NewMemStore(0))
	got := s.Load()
	require.Equal(t, DefaultPIN, got.String())
}

func TestStoreLoadCorruptLength(t *testing.T) {
	for _, length := range []byte{0, MaxLen + 1, 0x80, storage.Erased} {
		bs := storage.NewMemStore(0)
		require.NoError(t, bs.WriteByte(0, length))
		got := NewStore(bs).Load()
		require.Equal(t, DefaultPIN, got.String(), "length byte %#x", length)
	}
}

func TestStoreLoadCorruptDigit(t *testing.T) {
	bs := storage.NewMemStore(0)
	require.NoError(t, bs.WriteByte(0, 2))
	require.NoError(t, bs.WriteByte(1, 3))
	require.NoError(t, bs.WriteByte(2, 0xAB)) // not a digit value
	got := NewStore(bs).Load()
	require.Equal(t, DefaultPIN, got.String())
}

func TestStoreSaveRejectsEmpty(t *testing.T) {
	bs := storage.NewMemStore(0)
	s := NewStore(bs)
	require.NoError(t, s.Save(Credential{})) // silent no-op
	b, err := bs.ReadByte(0)
	require.NoError(t, err)
	require.Equal(t, storage.Erased, b, "empty save must not touch storage")
}

func TestStorePersistedLayout(t *testing.T) {
	bs := storage.NewMemStore(0)
	require.NoError(t, NewStore(bs).Save(MustParse("907")))

	want := []byte{3, 9, 0, 7}
	for addr, w := range want {
		b, err := bs.ReadByte(addr)
		require.NoError(t, err)
		require.Equal(t, w, b, "addr %d", addr)
	}
}

func TestStoreReset(t *testing.T) {
	bs := storage.NewMemStore(0)
	s := NewStore(bs)
	require.NoError(t, s.Save(MustParse("5678")))
	require.NoError(t, s.Reset())
	require.Equal(t, DefaultPIN, s.Load().String())
}
