// Package crc computes cyclic redundancy checks for arbitrary
// generator polynomials over GF(2), described with the Rocksoft
// parameter model.
package crc

import (
	"hash"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/akalin/gf2poly/gf2"
)

// MaxWidth is the widest CRC supported. A register of Width bits
// multiplied by x^8 has to fit in a gf2.Poly64.
const MaxWidth = 56

// ErrInvalidWidth is returned for a Width outside [1, MaxWidth].
var ErrInvalidWidth = errors.New("invalid CRC width")

// Params describes a CRC in the Rocksoft model. Poly is the generator
// polynomial without its leading x^Width term. Init is the initial
// register value and XorOut is added to the final one. If RefIn is set
// each input byte is consumed least significant bit first, and if
// RefOut is set the final register is reflected before XorOut is
// applied. Check is the CRC of the ASCII string "123456789".
type Params struct {
	Name   string
	Width  int
	Poly   uint64
	Init   uint64
	RefIn  bool
	RefOut bool
	XorOut uint64
	Check  uint64
}

var (
	CRC8 = Params{
		Name: "CRC-8/SMBUS", Width: 8, Poly: 0x07,
		Check: 0xf4,
	}
	CRC16ARC = Params{
		Name: "CRC-16/ARC", Width: 16, Poly: 0x8005,
		RefIn: true, RefOut: true,
		Check: 0xbb3d,
	}
	CRC16CCITTFalse = Params{
		Name: "CRC-16/CCITT-FALSE", Width: 16, Poly: 0x1021, Init: 0xffff,
		Check: 0x29b1,
	}
	CRC32IEEE = Params{
		Name: "CRC-32/ISO-HDLC", Width: 32, Poly: 0x04c11db7, Init: 0xffffffff,
		RefIn: true, RefOut: true, XorOut: 0xffffffff,
		Check: 0xcbf43926,
	}
	CRC32C = Params{
		Name: "CRC-32/ISCSI", Width: 32, Poly: 0x1edc6f41, Init: 0xffffffff,
		RefIn: true, RefOut: true, XorOut: 0xffffffff,
		Check: 0xe3069283,
	}
)

// Presets lists the predefined CRCs by short name.
var Presets = map[string]Params{
	"crc8":              CRC8,
	"crc16-arc":         CRC16ARC,
	"crc16-ccitt-false": CRC16CCITTFalse,
	"crc32":             CRC32IEEE,
	"crc32c":            CRC32C,
}

// Generator returns the full generator polynomial x^Width + Poly.
func Generator(p Params) (gf2.Poly64, error) {
	if p.Width < 1 || p.Width > MaxWidth {
		return 0, errors.Wrapf(ErrInvalidWidth, "%s: width %d", p.Name, p.Width)
	}
	return gf2.Poly64(1)<<uint(p.Width) | gf2.Poly64(p.Poly&mask(p.Width)), nil
}

func mask(width int) uint64 {
	return uint64(1)<<uint(width) - 1
}

// reflect reverses the low width bits of v.
func reflect(v uint64, width int) uint64 {
	return bits.Reverse64(v) >> uint(64-width)
}

// A Table holds the byte-at-a-time reduction table for a CRC.
type Table struct {
	params Params
	g      gf2.Poly64
	mask   uint64
	// entries[v] is v * x^Width mod g.
	entries [256]uint64
}

// NewTable returns the Table for p.
func NewTable(p Params) (*Table, error) {
	g, err := Generator(p)
	if err != nil {
		return nil, err
	}
	t := &Table{params: p, g: g, mask: mask(p.Width)}
	for v := range t.entries {
		s, err := gf2.Poly64(v).Shl(p.Width)
		if err != nil {
			return nil, errors.Wrapf(err, "table entry %d", v)
		}
		t.entries[v] = uint64(s.Mod(g))
	}
	return t, nil
}

// Params returns the parameters t was built from.
func (t *Table) Params() Params {
	return t.params
}

// update feeds data into the unreflected register crc, which is
// (crc * x^8 + b * x^Width) mod g for each byte b.
func (t *Table) update(crc uint64, data []byte) uint64 {
	w := t.params.Width
	for _, b := range data {
		if t.params.RefIn {
			b = bits.Reverse8(b)
		}
		if w >= 8 {
			crc = (crc<<8)&t.mask ^ t.entries[byte(crc>>uint(w-8))^b]
		} else {
			crc = t.entries[byte(crc<<uint(8-w))^b]
		}
	}
	return crc
}

func (t *Table) finish(crc uint64) uint64 {
	if t.params.RefOut {
		crc = reflect(crc, t.params.Width)
	}
	return (crc ^ t.params.XorOut) & t.mask
}

// Checksum returns the CRC of data.
func (t *Table) Checksum(data []byte) uint64 {
	return t.finish(t.update(t.params.Init&t.mask, data))
}

type digest struct {
	t   *Table
	crc uint64
}

// New returns a hash.Hash64 computing the CRC described by t. Sum
// appends the CRC big-endian in (Width+7)/8 bytes.
func New(t *Table) hash.Hash64 {
	d := &digest{t: t}
	d.Reset()
	return d
}

func (d *digest) Size() int { return (d.t.params.Width + 7) / 8 }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = d.t.params.Init & d.t.mask }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = d.t.update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum64() uint64 { return d.t.finish(d.crc) }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum64()
	for i := d.Size() - 1; i >= 0; i-- {
		in = append(in, byte(s>>uint(8*i)))
	}
	return in
}
