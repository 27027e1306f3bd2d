//go:build darwin

package mtl

import (
	"testing"
	"unsafe"
)

// newSaxpyPipeline compiles the saxpy kernel from testShaderSource into a
// compute pipeline.
func newSaxpyPipeline(t *testing.T, dev Device) ComputePipelineState {
	t.Helper()
	lib := compileTestLibrary(t, dev)
	fn, err := lib.NewFunctionWithName("saxpy")
	if err != nil {
		t.Fatalf("NewFunctionWithName(saxpy) failed: %v", err)
	}
	t.Cleanup(fn.Release)

	pipeline, err := dev.NewComputePipelineState(fn)
	if err != nil {
		t.Fatalf("NewComputePipelineState failed: %v", err)
	}
	t.Cleanup(pipeline.Release)
	return pipeline
}

func float32Buffer(t *testing.T, dev Device, data []float32) Buffer {
	t.Helper()
	buf, err := dev.NewBufferWithBytes(unsafe.Pointer(&data[0]), 4*len(data), ResourceStorageModeShared)
	if err != nil {
		t.Fatalf("NewBufferWithBytes failed: %v", err)
	}
	t.Cleanup(buf.Release)
	return buf
}

func readFloat32(buf Buffer, n int) []float32 {
	return unsafe.Slice((*float32)(buf.Contents()), n)
}

func TestComputePipelineProperties(t *testing.T) {
	dev := newTestDevice(t)
	pipeline := newSaxpyPipeline(t, dev)

	if pipeline.MaxTotalThreadsPerThreadgroup() == 0 {
		t.Error("MaxTotalThreadsPerThreadgroup is 0")
	}
	w := pipeline.ThreadExecutionWidth()
	if w == 0 || w&(w-1) != 0 {
		t.Errorf("ThreadExecutionWidth = %d, want a power of two", w)
	}
	if got := pipeline.StaticThreadgroupMemoryLength(); got != 0 {
		t.Errorf("StaticThreadgroupMemoryLength = %d, want 0 for saxpy", got)
	}
	if pipeline.Device().Raw() != dev.Raw() {
		t.Error("pipeline device backpointer does not match creating device")
	}
}

func TestComputeSaxpy(t *testing.T) {
	dev := newTestDevice(t)
	pipeline := newSaxpyPipeline(t, dev)

	queue, err := dev.NewCommandQueue()
	if err != nil {
		t.Fatalf("NewCommandQueue failed: %v", err)
	}
	defer queue.Release()

	const n = 1024
	x := make([]float32, n)
	y := make([]float32, n)
	for i := range x {
		x[i] = float32(i)
		y[i] = 1000 + float32(i)
	}
	a := float32(2)

	xBuf := float32Buffer(t, dev, x)
	yBuf := float32Buffer(t, dev, y)

	cb, err := queue.CommandBuffer()
	if err != nil {
		t.Fatalf("CommandBuffer failed: %v", err)
	}
	defer cb.Release()

	enc, err := cb.ComputeCommandEncoder()
	if err != nil {
		t.Fatalf("ComputeCommandEncoder failed: %v", err)
	}
	enc.SetComputePipelineState(pipeline)
	enc.SetBuffer(yBuf, 0, 0)
	enc.SetBuffer(xBuf, 0, 1)
	enc.SetBytes(unsafe.Pointer(&a), 4, 2)
	// 64 divides n, so no out-of-bounds guard is needed in the kernel.
	enc.DispatchThreadgroups(SizeMake(n/64, 1, 1), SizeMake(64, 1, 1))
	enc.EndEncoding()
	enc.Release()

	cb.Commit()
	cb.WaitUntilCompleted()

	if got := cb.Status(); got != CommandBufferStatusCompleted {
		t.Fatalf("command buffer status = %d, want completed (err: %v)", got, cb.Error())
	}
	if err := cb.Error(); err != nil {
		t.Fatalf("command buffer error = %v", err)
	}

	got := readFloat32(yBuf, n)
	for i := 0; i < n; i++ {
		want := 1000 + float32(i) + a*float32(i)
		if got[i] != want {
			t.Fatalf("y[%d] = %f, want %f", i, got[i], want)
		}
	}

	if cb.GPUEndTime() < cb.GPUStartTime() {
		t.Errorf("GPU end time %f precedes start time %f", cb.GPUEndTime(), cb.GPUStartTime())
	}
}

func TestComputeSerialEncoderWithBarrier(t *testing.T) {
	dev := newTestDevice(t)
	pipeline := newSaxpyPipeline(t, dev)

	queue, err := dev.NewCommandQueue()
	if err != nil {
		t.Fatalf("NewCommandQueue failed: %v", err)
	}
	defer queue.Release()

	const n = 64
	x := make([]float32, n)
	y := make([]float32, n)
	for i := range x {
		x[i] = 1
	}
	a := float32(1)

	xBuf := float32Buffer(t, dev, x)
	yBuf := float32Buffer(t, dev, y)

	cb, err := queue.CommandBuffer()
	if err != nil {
		t.Fatalf("CommandBuffer failed: %v", err)
	}
	defer cb.Release()

	enc, err := cb.ComputeCommandEncoderWithDispatchType(DispatchTypeSerial)
	if err != nil {
		t.Fatalf("ComputeCommandEncoderWithDispatchType failed: %v", err)
	}
	enc.SetComputePipelineState(pipeline)
	enc.SetBuffer(yBuf, 0, 0)
	enc.SetBuffer(xBuf, 0, 1)
	enc.SetBytes(unsafe.Pointer(&a), 4, 2)

	// Two dependent accumulation passes: y += x, then y += x again.
	enc.DispatchThreadgroups(SizeMake(1, 1, 1), SizeMake(n, 1, 1))
	enc.MemoryBarrier(BarrierScopeBuffers)
	enc.DispatchThreadgroups(SizeMake(1, 1, 1), SizeMake(n, 1, 1))
	enc.EndEncoding()
	enc.Release()

	cb.Commit()
	cb.WaitUntilCompleted()
	if err := cb.Error(); err != nil {
		t.Fatalf("command buffer error = %v", err)
	}

	got := readFloat32(yBuf, n)
	for i := 0; i < n; i++ {
		if got[i] != 2 {
			t.Fatalf("y[%d] = %f, want 2", i, got[i])
		}
	}
}
