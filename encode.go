package glyphatlas

import (
	"encoding/binary"
	"io"
	"math"
)

// Buffer record sizes in bytes. The renderer maps these files straight
// into GPU storage buffers, so the byte layout here must match the
// shader structs exactly: little-endian f32/u32, 16-byte record
// alignment for curves and infos.
//
// Curve record layout (32 bytes):
//
//	p0    (vec2<f32>) = 8 bytes, offset  0
//	p1    (vec2<f32>) = 8 bytes, offset  8
//	p2    (vec2<f32>) = 8 bytes, offset 16
//	flags (u32)       = 4 bytes, offset 24
//	padding           = 4 bytes, offset 28
//
// Info record layout (16 bytes):
//
//	start (u32) = 4 bytes, offset 0
//	end   (u32) = 4 bytes, offset 4
//	padding     = 8 bytes, offset 8
//
// Metrics record layout (4 bytes):
//
//	advance (f32) = 4 bytes, offset 0
const (
	CurveRecordSize   = 32
	InfoRecordSize    = 16
	MetricsRecordSize = 4
)

// EncodeCurves serializes the glyph curve buffer.
func EncodeCurves(curves []Curve) []byte {
	buf := make([]byte, len(curves)*CurveRecordSize)
	for i, c := range curves {
		putCurve(buf[i*CurveRecordSize:], c)
	}
	return buf
}

// EncodeInfos serializes the per-codepoint info buffer.
func EncodeInfos(infos []Info) []byte {
	buf := make([]byte, len(infos)*InfoRecordSize)
	for i, info := range infos {
		off := i * InfoRecordSize
		binary.LittleEndian.PutUint32(buf[off:], info.Start)
		binary.LittleEndian.PutUint32(buf[off+4:], info.End)
	}
	return buf
}

// EncodeMetrics serializes the per-codepoint metrics buffer.
func EncodeMetrics(metrics []Metrics) []byte {
	buf := make([]byte, len(metrics)*MetricsRecordSize)
	for i, m := range metrics {
		binary.LittleEndian.PutUint32(buf[i*MetricsRecordSize:], math.Float32bits(m.Advance))
	}
	return buf
}

// putCurve packs one curve record at the start of buf.
func putCurve(buf []byte, c Curve) {
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(c.P0.X))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(c.P0.Y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(c.P1.X))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(c.P1.Y))
	binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(c.P2.X))
	binary.LittleEndian.PutUint32(buf[20:], math.Float32bits(c.P2.Y))
	binary.LittleEndian.PutUint32(buf[24:], c.Flags)
}

// WriteCurves writes the encoded curve buffer to w.
func WriteCurves(w io.Writer, curves []Curve) error {
	_, err := w.Write(EncodeCurves(curves))
	return err
}

// WriteInfos writes the encoded info buffer to w.
func WriteInfos(w io.Writer, infos []Info) error {
	_, err := w.Write(EncodeInfos(infos))
	return err
}

// WriteMetrics writes the encoded metrics buffer to w.
func WriteMetrics(w io.Writer, metrics []Metrics) error {
	_, err := w.Write(EncodeMetrics(metrics))
	return err
}
