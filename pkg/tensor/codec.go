package tensor

import (
	"bytes"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/pierrec/lz4/v4"
	"github.com/quiltlabs/quilt/pkg/tensor/status"
)

// Compression selects the framing applied to an encoded patch body
type Compression uint8

const (
	// CompressionNone stores the CBOR body as-is
	CompressionNone Compression = iota

	// CompressionLZ4 wraps the CBOR body in an LZ4 frame
	CompressionLZ4
)

const codecVersion = 1

// patchMagic prefixes every encoded patch so a foreign blob is rejected
// before the body is parsed.
var patchMagic = [4]byte{'Q', 'L', 'T', '1'}

type patchWire struct {
	Axes []Axis    `cbor:"axes"`
	Data []float64 `cbor:"data"`
}

// EncodePatch writes a patch blob: a fixed header carrying magic,
// version and compression, then the CBOR body, optionally LZ4-framed.
func EncodePatch(w io.Writer, p *Patch, compression Compression) error {
	header := append(append([]byte{}, patchMagic[:]...), codecVersion, byte(compression))
	if _, err := w.Write(header); err != nil {
		return err
	}
	body, err := cbor.Marshal(patchWire{Axes: p.axes, Data: p.data})
	if err != nil {
		return err
	}
	switch compression {
	case CompressionNone:
		_, err = w.Write(body)
		return err
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if _, err = zw.Write(body); err != nil {
			return err
		}
		return zw.Close()
	default:
		return status.ErrBadEncoding.WrapMessage("unknown compression %d", compression)
	}
}

// DecodePatch reads a patch blob written by EncodePatch. The decoded
// axes and shape are re-validated, so a tampered blob cannot produce a
// malformed patch.
func DecodePatch(r io.Reader) (*Patch, error) {
	header := make([]byte, 6)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, status.ErrBadEncoding.Wrap(err)
	}
	if !bytes.Equal(header[:4], patchMagic[:]) {
		return nil, status.ErrBadEncoding.WrapMessage("bad magic %q", header[:4])
	}
	if header[4] != codecVersion {
		return nil, status.ErrBadEncoding.WrapMessage("unsupported version %d", header[4])
	}
	var body []byte
	var err error
	switch Compression(header[5]) {
	case CompressionNone:
		body, err = io.ReadAll(r)
	case CompressionLZ4:
		body, err = io.ReadAll(lz4.NewReader(r))
	default:
		return nil, status.ErrBadEncoding.WrapMessage("unknown compression %d", header[5])
	}
	if err != nil {
		return nil, status.ErrBadEncoding.Wrap(err)
	}
	var wire patchWire
	if err := cbor.Unmarshal(body, &wire); err != nil {
		return nil, status.ErrBadEncoding.Wrap(err)
	}
	p, err := NewPatch(wire.Axes, wire.Data)
	if err != nil {
		return nil, status.ErrBadEncoding.Wrap(err)
	}
	return p, nil
}
