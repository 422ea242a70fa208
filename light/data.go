package light

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// DataSize is the size of one packed Data block in bytes.
const DataSize = 224

// Data is the per-light block consumed by the lighting shader. The field order,
// sizes and offsets are fixed; matrices are column-major.
type Data struct {
	Position         mgl32.Vec3 // offset   0
	Intensity        float32    // offset  12
	Direction        mgl32.Vec3 // offset  16: normalized
	Range            float32    // offset  28
	Length           mgl32.Vec4 // offset  32: xyz = axis, w = length (capsule and wedge)
	Color            mgl32.Vec4 // offset  48: rgb + luminance
	Attenuation      mgl32.Vec2 // offset  64: linear, quadratic
	Angle            mgl32.Vec2 // offset  72: cos(outer), cos(inner)
	ShadowMatrix     mgl32.Mat4 // offset  80: to shadow map space
	ModulationMatrix mgl32.Mat4 // offset 144: to modulation map space
	ShadowIndex      int32      // offset 208
	ModulationIndex  int32      // offset 212
	Flags            int32      // offset 216: bits 0-3 type, 4 modulation, 5 shadow
	Reserved         int32      // offset 220
}

// Size returns the size of the Data struct in bytes.
func (d *Data) Size() int {
	return int(unsafe.Sizeof(*d))
}

// Axis returns the xyz part of Length.
func (d *Data) Axis() mgl32.Vec3 { return d.Length.Vec3() }

// Type returns the light type stored in the low bits of Flags.
func (d *Data) Type() Type { return Type(d.Flags & typeMask) }

// Width returns the segment length stored in Length.w.
func (d *Data) Width() float32 { return d.Length[3] }

// MarshalTo writes the block into buf, which must hold at least DataSize bytes.
func (d *Data) MarshalTo(buf []byte) {
	_ = buf[DataSize-1]
	w := dataWriter{buf: buf}
	w.floats(d.Position[:]...)
	w.floats(d.Intensity)
	w.floats(d.Direction[:]...)
	w.floats(d.Range)
	w.floats(d.Length[:]...)
	w.floats(d.Color[:]...)
	w.floats(d.Attenuation[:]...)
	w.floats(d.Angle[:]...)
	w.floats(d.ShadowMatrix[:]...)
	w.floats(d.ModulationMatrix[:]...)
	w.ints(d.ShadowIndex, d.ModulationIndex, d.Flags, d.Reserved)
}

// Marshal serializes the block for GPU upload.
func (d *Data) Marshal() []byte {
	buf := make([]byte, DataSize)
	d.MarshalTo(buf)
	return buf
}

// MarshalArray packs blocks contiguously, in order.
func MarshalArray(data []Data) []byte {
	buf := make([]byte, len(data)*DataSize)
	for i := range data {
		data[i].MarshalTo(buf[i*DataSize:])
	}
	return buf
}

// UnmarshalData decodes a block written by MarshalTo.
func UnmarshalData(buf []byte) Data {
	_ = buf[DataSize-1]
	r := dataReader{buf: buf}
	var d Data
	r.floats(d.Position[:])
	d.Intensity = r.float()
	r.floats(d.Direction[:])
	d.Range = r.float()
	r.floats(d.Length[:])
	r.floats(d.Color[:])
	r.floats(d.Attenuation[:])
	r.floats(d.Angle[:])
	r.floats(d.ShadowMatrix[:])
	r.floats(d.ModulationMatrix[:])
	d.ShadowIndex = r.int()
	d.ModulationIndex = r.int()
	d.Flags = r.int()
	d.Reserved = r.int()
	return d
}

type dataWriter struct {
	buf []byte
	off int
}

func (w *dataWriter) floats(v ...float32) {
	for _, f := range v {
		binary.LittleEndian.PutUint32(w.buf[w.off:w.off+4], math.Float32bits(f))
		w.off += 4
	}
}

func (w *dataWriter) ints(v ...int32) {
	for _, i := range v {
		binary.LittleEndian.PutUint32(w.buf[w.off:w.off+4], uint32(i))
		w.off += 4
	}
}

type dataReader struct {
	buf []byte
	off int
}

func (r *dataReader) float() float32 {
	f := math.Float32frombits(binary.LittleEndian.Uint32(r.buf[r.off : r.off+4]))
	r.off += 4
	return f
}

func (r *dataReader) floats(dst []float32) {
	for i := range dst {
		dst[i] = r.float()
	}
}

func (r *dataReader) int() int32 {
	i := int32(binary.LittleEndian.Uint32(r.buf[r.off : r.off+4]))
	r.off += 4
	return i
}
