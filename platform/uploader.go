package platform

import (
	"encoding/binary"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/lumen"
	"github.com/gekko3d/lumen/light"
)

// lightHeaderSize is the std140 header in front of the light array: the light
// count padded to 16 bytes.
const lightHeaderSize = 16

// LightUploader keeps a uniform buffer shaped like
//
//	struct Lights { count: u32, _pad: vec3<u32>, lights: array<Light, capacity> }
//
// in sync with the packed lights. The buffer grows when the capacity does.
type LightUploader struct {
	device  *wgpu.Device
	queue   *wgpu.Queue
	buffer  *wgpu.Buffer
	staging []byte
}

func NewLightUploader(device *wgpu.Device, queue *wgpu.Queue) *LightUploader {
	return &LightUploader{device: device, queue: queue}
}

// Buffer returns the uniform buffer, nil before the first upload.
func (u *LightUploader) Buffer() *wgpu.Buffer { return u.buffer }

// Upload writes count blocks from packed, which holds count*light.DataSize bytes.
// Slots past count keep stale data; shaders stop at the count.
func (u *LightUploader) Upload(count, capacity int, packed []byte) error {
	u.staging = packLights(u.staging, count, packed)
	size := uniformSize(max(capacity, count))

	if u.buffer == nil || u.buffer.GetSize() < size {
		if u.buffer != nil {
			u.buffer.Release()
		}
		buf, err := u.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            "lights",
			Size:             size,
			Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return fmt.Errorf("platform: light buffer: %w", err)
		}
		u.buffer = buf
	}
	if err := u.queue.WriteBuffer(u.buffer, 0, u.staging); err != nil {
		return fmt.Errorf("platform: write lights: %w", err)
	}
	return nil
}

func (u *LightUploader) Release() {
	if u.buffer != nil {
		u.buffer.Release()
		u.buffer = nil
	}
}

func LightUploadSystem(u *LightUploader, lighting *lumen.Lighting, cmd *lumen.Commands) {
	if err := u.Upload(lighting.Count, lighting.Options.Capacity, lighting.Buffer); err != nil {
		cmd.Logger().Errorf("%v", err)
	}
}

func uniformSize(capacity int) uint64 {
	return uint64(lightHeaderSize + capacity*light.DataSize)
}

// packLights prefixes the packed light blocks with the header, reusing dst.
func packLights(dst []byte, count int, packed []byte) []byte {
	n := lightHeaderSize + count*light.DataSize
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	clear(dst[:lightHeaderSize])
	binary.LittleEndian.PutUint32(dst, uint32(count))
	copy(dst[lightHeaderSize:], packed[:count*light.DataSize])
	return dst
}
