package qrsymbol

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"

	"github.com/symbolkit/qrsymbol/bitfield"
)

// Compression selects the optional wrapping of a packed symbol stream.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionDeflate
	CompressionGzip
)

// packMagic identifies an unwrapped packed symbol stream.
const packMagic = "QRR"

// packHeaderSize is magic (3) + reserved (1) + side length (1).
const packHeaderSize = 5

// Pack writes a compact binary dump of the matrix: the magic "QRR", one
// reserved byte, one byte of side length, then the modules packed MSB-first
// in row-major order and zero-padded to a byte boundary. The whole stream
// may be wrapped in a DEFLATE or GZIP layer.
func Pack(w io.Writer, m *Matrix, c Compression) error {
	switch c {
	case CompressionNone:
		return packRaw(w, m)
	case CompressionDeflate:
		fw, err := flate.NewWriter(w, flate.DefaultCompression)
		if err != nil {
			return err
		}
		if err := packRaw(fw, m); err != nil {
			return err
		}
		return fw.Close()
	case CompressionGzip:
		gw := gzip.NewWriter(w)
		if err := packRaw(gw, m); err != nil {
			return err
		}
		return gw.Close()
	}
	return fmt.Errorf("%w: unknown compression %d", ErrPack, c)
}

func packRaw(w io.Writer, m *Matrix) error {
	side := m.Side()
	if side > 0xFF {
		return fmt.Errorf("%w: side length %d does not fit one byte", ErrPack, side)
	}
	bits := bitfield.NewBitArray(0)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			bits.AppendBit(m.Get(x, y))
		}
	}
	buf := make([]byte, 0, packHeaderSize+bits.SizeInBytes())
	buf = append(buf, packMagic...)
	buf = append(buf, 0, byte(side))
	buf = append(buf, bits.Bytes()...)
	_, err := w.Write(buf)
	return err
}

// Unpack reads a packed symbol stream, sniffing whether it is raw, DEFLATE
// wrapped, or GZIP wrapped, and reconstructs the module matrix and the
// version implied by its side length.
func Unpack(r io.Reader) (*Matrix, int, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(3)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPack, err)
	}

	var payload io.Reader
	switch {
	case string(head) == packMagic:
		payload = br
	case head[0] == 0x1f && head[1] == 0x8b:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrPack, err)
		}
		defer gr.Close()
		payload = gr
	default:
		payload = flate.NewReader(br)
	}
	return unpackRaw(payload)
}

func unpackRaw(r io.Reader) (*Matrix, int, error) {
	header := make([]byte, packHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPack, err)
	}
	if string(header[:3]) != packMagic {
		return nil, 0, fmt.Errorf("%w: bad magic %q", ErrPack, header[:3])
	}
	side := int(header[4])
	if side < 21 || side > 177 || side%4 != 1 {
		return nil, 0, fmt.Errorf("%w: invalid side length %d", ErrPack, side)
	}

	body := make([]byte, (side*side+7)/8)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPack, err)
	}

	m := NewMatrix(side)
	src := bitfield.NewBitSource(body)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			bit, err := src.ReadBits(1)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: %v", ErrPack, err)
			}
			m.Set(x, y, bit == 1)
		}
	}
	return m, (side - 17) / 4, nil
}
