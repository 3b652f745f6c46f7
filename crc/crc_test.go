package crc

import (
	"encoding/binary"
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/akalin/gf2poly/gf2"
)

var checkInput = []byte("123456789")

var extraParams = []Params{
	{
		Name: "CRC-3/GSM", Width: 3, Poly: 0x3, XorOut: 0x7,
		Check: 0x4,
	},
	{
		Name: "CRC-5/USB", Width: 5, Poly: 0x05, Init: 0x1f,
		RefIn: true, RefOut: true, XorOut: 0x1f,
		Check: 0x19,
	},
	{
		Name: "CRC-24/OPENPGP", Width: 24, Poly: 0x864cfb, Init: 0xb704ce,
		Check: 0x21cf02,
	},
	{
		Name: "CRC-40/GSM", Width: 40, Poly: 0x0004820009, XorOut: 0xffffffffff,
		Check: 0xd4164fc646,
	},
}

func TestCheckValues(t *testing.T) {
	var all []Params
	for _, p := range Presets {
		all = append(all, p)
	}
	all = append(all, extraParams...)

	for _, p := range all {
		t.Run(p.Name, func(t *testing.T) {
			table, err := NewTable(p)
			require.NoError(t, err)
			require.Equal(t, p.Check, table.Checksum(checkInput))

			h := New(table)
			_, err = h.Write(checkInput[:4])
			require.NoError(t, err)
			_, err = h.Write(checkInput[4:])
			require.NoError(t, err)
			require.Equal(t, p.Check, h.Sum64())
		})
	}
}

func testAgainstCRC32(t *testing.T, p Params, std *crc32.Table) {
	table, err := NewTable(p)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(1))
	for n := 0; n < 300; n++ {
		bs := make([]byte, n)
		rnd.Read(bs)
		require.Equal(t, uint64(crc32.Checksum(bs, std)), table.Checksum(bs), "n=%d", n)
	}
}

func TestCRC32(t *testing.T) {
	t.Run("IEEE", func(t *testing.T) {
		testAgainstCRC32(t, CRC32IEEE, crc32.IEEETable)
	})
	t.Run("Castagnoli", func(t *testing.T) {
		testAgainstCRC32(t, CRC32C, crc32.MakeTable(crc32.Castagnoli))
	})
}

func TestDigest(t *testing.T) {
	table, err := NewTable(CRC32IEEE)
	require.NoError(t, err)
	h := New(table)
	require.Equal(t, 4, h.Size())
	require.Equal(t, 1, h.BlockSize())

	bs := make([]byte, 1000)
	for i := range bs {
		bs[i] = ^byte(i)
	}
	for i := 0; i < len(bs); i += 37 {
		end := i + 37
		if end > len(bs) {
			end = len(bs)
		}
		_, err := h.Write(bs[i:end])
		require.NoError(t, err)
	}
	want := crc32.ChecksumIEEE(bs)
	require.Equal(t, uint64(want), h.Sum64())

	var wantBytes [4]byte
	binary.BigEndian.PutUint32(wantBytes[:], want)
	require.Equal(t, append([]byte{0xaa}, wantBytes[:]...), h.Sum([]byte{0xaa}))

	h.Reset()
	require.Equal(t, uint64(crc32.ChecksumIEEE(nil)), h.Sum64())

	table, err = NewTable(extraParams[0])
	require.NoError(t, err)
	require.Equal(t, 1, New(table).Size())
}

func TestInvalidWidth(t *testing.T) {
	for _, w := range []int{0, -1, MaxWidth + 1, 64} {
		_, err := NewTable(Params{Width: w, Poly: 1})
		require.ErrorIs(t, err, ErrInvalidWidth, "w=%d", w)
	}
	_, err := NewTable(Params{Width: MaxWidth, Poly: 1})
	require.NoError(t, err)
}

func TestGenerator(t *testing.T) {
	g, err := Generator(CRC16CCITTFalse)
	require.NoError(t, err)
	// x^16 + x^12 + x^5 + 1.
	require.Equal(t, "x^16 + x^12 + x^5 + 1", g.String())

	// The reflected IEEE polynomial used by hash/crc32 is the
	// reciprocal of the full generator, less its constant term.
	g, err = Generator(CRC32IEEE)
	require.NoError(t, err)
	require.Equal(t, gf2.Poly64(crc32.IEEE)<<1|1, g.Reciprocal())
}

// For a CRC with no init, reflection or final xor, the checksum of a
// message M is M * x^Width mod g.
func TestRemainderProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	p := Params{Name: "CRC-16/XMODEM", Width: 16, Poly: 0x1021}
	table, err := NewTable(p)
	require.NoError(t, err)
	g, err := Generator(p)
	require.NoError(t, err)

	properties.Property("crc is the remainder of M * x^16", prop.ForAll(
		func(m uint32) bool {
			var bs [4]byte
			binary.BigEndian.PutUint32(bs[:], m)
			shifted, err := gf2.Poly64(m).Shl(16)
			if err != nil {
				return false
			}
			return table.Checksum(bs[:]) == uint64(shifted.Mod(g))
		},
		gen.UInt32(),
	))

	properties.Property("appending the crc leaves remainder zero", prop.ForAll(
		func(m uint32) bool {
			var bs [6]byte
			binary.BigEndian.PutUint32(bs[:4], m)
			binary.BigEndian.PutUint16(bs[4:], uint16(table.Checksum(bs[:4])))
			return table.Checksum(bs[:]) == 0
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}
