package packet

import (
	"circuits-lab/domain/signal"
	"circuits-lab/errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBits(t *testing.T) {
	tests := []struct {
		value uint64
		want  []signal.Bit
	}{
		{0, []signal.Bit{0}},
		{1, []signal.Bit{1}},
		{2, []signal.Bit{0, 1}},
		{6, []signal.Bit{0, 1, 1}},
		{8, []signal.Bit{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(strconv.FormatUint(tt.value, 10), func(t *testing.T) {
			require.Equal(t, tt.want, Bits(tt.value))
		})
	}
}

func TestBits_LengthMatchesBinaryDigits(t *testing.T) {
	req := require.New(t)
	for _, v := range []uint64{0, 1, 3, 94, 1023, 1 << 40} {
		bits := Bits(v)
		req.Len(bits, len(strconv.FormatUint(v, 2)))
		req.Equal(strconv.FormatUint(v, 2), String(bits))
		req.Equal(v, Value(bits))
	}
}

func TestBinaryForm(t *testing.T) {
	t.Run("should read decimal digits as bits", func(t *testing.T) {
		req := require.New(t)
		bits, err := BinaryForm(1010100)
		req.NoError(err)
		req.Equal("1010100", String(bits))
		req.Equal(uint64(84), Value(bits))
	})

	t.Run("should reject digits other than 0 and 1", func(t *testing.T) {
		req := require.New(t)
		_, err := BinaryForm(1021)
		req.ErrorIs(err, errors.ErrNotBinary)
	})

	t.Run("should render zero as a single bit", func(t *testing.T) {
		req := require.New(t)
		bits, err := BinaryForm(0)
		req.NoError(err)
		req.Equal([]signal.Bit{signal.Zero}, bits)
	})
}
