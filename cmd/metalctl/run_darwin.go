//go:build darwin

package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/lunarbyte/metalbind/pkg/foundation"
	"github.com/lunarbyte/metalbind/pkg/mtl"
	"github.com/lunarbyte/metalbind/pkg/shaders"
)

func runInfo(cmd *cobra.Command, args []string) error {
	devices, err := mtl.CopyAllDevices()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		// Headless configurations sometimes enumerate nothing but still
		// have a default device.
		dev, err := mtl.CreateSystemDefaultDevice()
		if err != nil {
			return err
		}
		devices = []mtl.Device{dev}
	}
	defer func() {
		for _, d := range devices {
			d.Release()
		}
	}()

	for i, dev := range devices {
		if i > 0 {
			fmt.Println()
		}
		printDevice(dev)
	}
	return nil
}

func printDevice(dev mtl.Device) {
	fmt.Printf("%s (registry ID 0x%x)\n", dev.Name(), dev.RegistryID())
	fmt.Printf("  Unified memory:         %v\n", dev.HasUnifiedMemory())
	fmt.Printf("  Low power:              %v\n", dev.IsLowPower())
	fmt.Printf("  Removable:              %v\n", dev.IsRemovable())
	fmt.Printf("  Headless:               %v\n", dev.IsHeadless())
	fmt.Printf("  Raytracing:             %v\n", dev.SupportsRaytracing())
	fmt.Printf("  BC texture compression: %v\n", dev.SupportsBCTextureCompression())

	max := dev.MaxThreadsPerThreadgroup()
	fmt.Printf("  Max threads/threadgroup: %dx%dx%d\n", max.Width, max.Height, max.Depth)
	fmt.Printf("  Max threadgroup memory:  %d bytes\n", dev.MaxThreadgroupMemoryLength())
	fmt.Printf("  Max buffer length:       %s\n", formatBytes(uint64(dev.MaxBufferLength())))
	fmt.Printf("  Working set size:        %s\n", formatBytes(dev.RecommendedMaxWorkingSetSize()))
	fmt.Printf("  Currently allocated:     %s\n", formatBytes(uint64(dev.CurrentAllocatedSize())))

	fmt.Printf("  GPU families:           %s\n", supportedFamilies(dev))
	fmt.Printf("  MSAA sample counts:     %s\n", supportedSampleCounts(dev))
}

func supportedFamilies(dev mtl.Device) string {
	families := []struct {
		name   string
		family mtl.GPUFamily
	}{
		{"Apple1", mtl.GPUFamilyApple1}, {"Apple2", mtl.GPUFamilyApple2},
		{"Apple3", mtl.GPUFamilyApple3}, {"Apple4", mtl.GPUFamilyApple4},
		{"Apple5", mtl.GPUFamilyApple5}, {"Apple6", mtl.GPUFamilyApple6},
		{"Apple7", mtl.GPUFamilyApple7}, {"Apple8", mtl.GPUFamilyApple8},
		{"Apple9", mtl.GPUFamilyApple9},
		{"Mac2", mtl.GPUFamilyMac2},
		{"Common1", mtl.GPUFamilyCommon1}, {"Common2", mtl.GPUFamilyCommon2},
		{"Common3", mtl.GPUFamilyCommon3},
		{"Metal3", mtl.GPUFamilyMetal3},
	}
	var out []string
	for _, f := range families {
		if dev.SupportsFamily(f.family) {
			out = append(out, f.name)
		}
	}
	if len(out) == 0 {
		return "none reported"
	}
	return join(out)
}

func supportedSampleCounts(dev mtl.Device) string {
	var out []string
	for _, n := range []int{1, 2, 4, 8} {
		if dev.SupportsTextureSampleCount(n) {
			out = append(out, fmt.Sprintf("%d", n))
		}
	}
	return join(out)
}

func join(parts []string) string {
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += ", "
		}
		s += p
	}
	return s
}

func formatBytes(n uint64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d bytes", n)
}

// languageVersions maps manifest spellings to the ABI values.
var languageVersions = map[string]mtl.LanguageVersion{
	"1.1": mtl.LanguageVersion1_1,
	"1.2": mtl.LanguageVersion1_2,
	"2.0": mtl.LanguageVersion2_0,
	"2.1": mtl.LanguageVersion2_1,
	"2.2": mtl.LanguageVersion2_2,
	"2.3": mtl.LanguageVersion2_3,
	"2.4": mtl.LanguageVersion2_4,
	"3.0": mtl.LanguageVersion3_0,
	"3.1": mtl.LanguageVersion3_1,
	"3.2": mtl.LanguageVersion3_2,
}

func runCompile(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	langVersion, _ := cmd.Flags().GetString("language-version")
	fastMath, _ := cmd.Flags().GetBool("fast-math")

	var entries []shaders.Shader
	var manifest *shaders.Manifest
	switch {
	case manifestPath != "":
		m, err := shaders.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		manifest = m
		entries = m.Shaders
	case len(args) > 0:
		for _, path := range args {
			entries = append(entries, shaders.Shader{
				Name:            filepath.Base(path),
				Path:            path,
				LanguageVersion: langVersion,
				FastMath:        fastMath,
			})
		}
	default:
		return fmt.Errorf("nothing to compile: pass .metal files or --manifest")
	}

	var cache *shaders.Cache
	if cacheDir != "" {
		c, err := shaders.Open(shaders.CacheOptions{Dir: cacheDir})
		if err != nil {
			return err
		}
		defer c.Close()
		cache = c
	}

	var dev mtl.Device
	var haveDevice bool
	defer func() {
		if haveDevice {
			dev.Release()
		}
	}()

	failed := 0
	for _, entry := range entries {
		path := entry.Path
		if manifest != nil {
			path = manifest.SourcePath(entry)
		}
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("shader %q: %w", entry.Name, err)
		}
		if _, ok := languageVersions[entry.LanguageVersion]; entry.LanguageVersion != "" && !ok {
			return fmt.Errorf("shader %q: unknown language version %q", entry.Name, entry.LanguageVersion)
		}

		key := shaders.Key(source, entry.LanguageVersion, entry.FastMath)
		if cache != nil {
			if res, ok, err := cache.Get(key); err != nil {
				return err
			} else if ok {
				reportCompile(entry.Name, res, true)
				if !res.OK() {
					failed++
				}
				continue
			}
		}

		if !haveDevice {
			dev, err = mtl.CreateSystemDefaultDevice()
			if err != nil {
				return err
			}
			haveDevice = true
		}

		res := compileShader(dev, string(source), entry)
		reportCompile(entry.Name, res, false)
		if !res.OK() {
			failed++
		}
		if cache != nil {
			if err := cache.Put(key, res); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d shaders failed to compile", failed, len(entries))
	}
	return nil
}

func compileShader(dev mtl.Device, source string, entry shaders.Shader) shaders.Result {
	opts := mtl.NewCompileOptions()
	defer opts.Release()
	opts.SetFastMathEnabled(entry.FastMath)
	if v, ok := languageVersions[entry.LanguageVersion]; ok {
		opts.SetLanguageVersion(v)
	}

	lib, err := dev.NewLibraryWithSource(source, opts)
	if err != nil {
		return shaders.Result{Diagnostics: err.Error()}
	}
	defer lib.Release()
	return shaders.Result{Functions: lib.FunctionNames()}
}

func reportCompile(name string, res shaders.Result, cached bool) {
	from := ""
	if cached {
		from = " (cached)"
	}
	if res.OK() {
		fmt.Printf("✓ %s%s: %d entry points: %s\n", name, from, len(res.Functions), join(res.Functions))
		return
	}
	fmt.Printf("✗ %s%s:\n%s\n", name, from, res.Diagnostics)
}

// benchKernelSource holds the kernels the bench and capture commands run.
// Dispatches are sized to whole threadgroups, so no bounds guard is needed.
const benchKernelSource = `
#include <metal_stdlib>
using namespace metal;

kernel void saxpy(device float *y [[buffer(0)]],
                  const device float *x [[buffer(1)]],
                  constant float &a [[buffer(2)]],
                  uint gid [[thread_position_in_grid]]) {
    y[gid] = a * x[gid] + y[gid];
}

kernel void mul(device float *out [[buffer(0)]],
                const device float *x [[buffer(1)]],
                const device float *y [[buffer(2)]],
                uint gid [[thread_position_in_grid]]) {
    out[gid] = x[gid] * y[gid];
}
`

// benchThreadgroupWidth divides every size the bench accepts.
const benchThreadgroupWidth = 64

type benchContext struct {
	dev   mtl.Device
	queue mtl.CommandQueue
	saxpy mtl.ComputePipelineState
	mul   mtl.ComputePipelineState
}

func newBenchContext() (*benchContext, error) {
	dev, err := mtl.CreateSystemDefaultDevice()
	if err != nil {
		return nil, err
	}
	queue, err := dev.NewCommandQueue()
	if err != nil {
		dev.Release()
		return nil, err
	}

	opts := mtl.NewCompileOptions()
	opts.SetFastMathEnabled(true)
	lib, err := dev.NewLibraryWithSource(benchKernelSource, opts)
	opts.Release()
	if err != nil {
		queue.Release()
		dev.Release()
		return nil, fmt.Errorf("compile bench kernels: %w", err)
	}
	defer lib.Release()

	ctx := &benchContext{dev: dev, queue: queue}
	for _, k := range []struct {
		name string
		dst  *mtl.ComputePipelineState
	}{
		{"saxpy", &ctx.saxpy},
		{"mul", &ctx.mul},
	} {
		fn, err := lib.NewFunctionWithName(k.name)
		if err != nil {
			ctx.release()
			return nil, err
		}
		state, err := dev.NewComputePipelineState(fn)
		fn.Release()
		if err != nil {
			ctx.release()
			return nil, err
		}
		*k.dst = state
	}
	return ctx, nil
}

func (c *benchContext) release() {
	if c.saxpy.Raw() != 0 {
		c.saxpy.Release()
	}
	if c.mul.Raw() != 0 {
		c.mul.Release()
	}
	c.queue.Release()
	c.dev.Release()
}

func (c *benchContext) newFloat32Buffer(data []float32) (mtl.Buffer, error) {
	return c.dev.NewBufferWithBytes(unsafe.Pointer(&data[0]), 4*len(data), mtl.ResourceStorageModeShared)
}

// dispatch runs one pipeline over n elements with the given buffers and an
// optional 4-byte constant, then blocks until the GPU finishes.
func (c *benchContext) dispatch(state mtl.ComputePipelineState, n int, constant unsafe.Pointer, bufs ...mtl.Buffer) error {
	cb, err := c.queue.CommandBuffer()
	if err != nil {
		return err
	}
	defer cb.Release()

	enc, err := cb.ComputeCommandEncoder()
	if err != nil {
		return err
	}
	enc.SetComputePipelineState(state)
	for i, b := range bufs {
		enc.SetBuffer(b, 0, i)
	}
	if constant != nil {
		enc.SetBytes(constant, 4, len(bufs))
	}
	enc.DispatchThreadgroups(
		mtl.SizeMake(n/benchThreadgroupWidth, 1, 1),
		mtl.SizeMake(benchThreadgroupWidth, 1, 1))
	enc.EndEncoding()
	enc.Release()

	cb.Commit()
	cb.WaitUntilCompleted()
	return cb.Error()
}

func randomFloats(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}
	return out
}

func maxAbsDiff(a, b []float32) float64 {
	var max float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

func runBench(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("size")
	runs, _ := cmd.Flags().GetInt("runs")
	if n < benchThreadgroupWidth || n%benchThreadgroupWidth != 0 {
		return fmt.Errorf("size must be a positive multiple of %d", benchThreadgroupWidth)
	}
	if runs < 1 {
		return fmt.Errorf("runs must be at least 1")
	}

	ctx, err := newBenchContext()
	if err != nil {
		return err
	}
	defer ctx.release()

	fmt.Printf("Device: %s, %d float32 elements, best of %d runs\n\n", ctx.dev.Name(), n, runs)

	rng := rand.New(rand.NewSource(1))
	x := randomFloats(rng, n)
	y := randomFloats(rng, n)
	a := float32(2.5)

	// saxpy: the GPU overwrites yBuf in place, so it gets a fresh copy of y
	// while the CPU side reads the original slices.
	yWork := make([]float32, n)
	copy(yWork, y)
	xBuf, err := ctx.newFloat32Buffer(x)
	if err != nil {
		return err
	}
	defer xBuf.Release()
	yBuf, err := ctx.newFloat32Buffer(yWork)
	if err != nil {
		return err
	}
	defer yBuf.Release()

	var gpuSaxpy time.Duration
	for i := 0; i < runs; i++ {
		copy(unsafe.Slice((*float32)(yBuf.Contents()), n), y)
		start := time.Now()
		if err := ctx.dispatch(ctx.saxpy, n, unsafe.Pointer(&a), yBuf, xBuf); err != nil {
			return err
		}
		if d := time.Since(start); i == 0 || d < gpuSaxpy {
			gpuSaxpy = d
		}
	}
	gpuOut := make([]float32, n)
	copy(gpuOut, unsafe.Slice((*float32)(yBuf.Contents()), n))

	var cpuSaxpy time.Duration
	var cpuOut []float32
	for i := 0; i < runs; i++ {
		start := time.Now()
		cpuOut = vek32.Add(vek32.MulNumber(x, a), y)
		if d := time.Since(start); i == 0 || d < cpuSaxpy {
			cpuSaxpy = d
		}
	}

	reportBench("saxpy", n, gpuSaxpy, cpuSaxpy, maxAbsDiff(gpuOut, cpuOut))

	// dot: the GPU computes elementwise products, the CPU reduces them.
	outBuf, err := ctx.dev.NewBufferWithLength(4*n, mtl.ResourceStorageModeShared)
	if err != nil {
		return err
	}
	defer outBuf.Release()

	var gpuDot time.Duration
	var gpuDotValue float32
	for i := 0; i < runs; i++ {
		start := time.Now()
		if err := ctx.dispatch(ctx.mul, n, nil, outBuf, xBuf, yBuf); err != nil {
			return err
		}
		gpuDotValue = vek32.Sum(unsafe.Slice((*float32)(outBuf.Contents()), n))
		if d := time.Since(start); i == 0 || d < gpuDot {
			gpuDot = d
		}
	}

	// The GPU side multiplies x against the saxpy result still sitting in
	// yBuf, so the CPU reference uses the same operands.
	var cpuDot time.Duration
	var cpuDotValue float32
	for i := 0; i < runs; i++ {
		start := time.Now()
		cpuDotValue = vek32.Dot(x, gpuOut)
		if d := time.Since(start); i == 0 || d < cpuDot {
			cpuDot = d
		}
	}

	diff := float64(gpuDotValue - cpuDotValue)
	if diff < 0 {
		diff = -diff
	}
	reportBench("dot", n, gpuDot, cpuDot, diff)
	return nil
}

func reportBench(name string, n int, gpu, cpu time.Duration, diff float64) {
	speedup := float64(cpu) / float64(gpu)
	fmt.Printf("%-6s  gpu %10v  cpu %10v  speedup %.2fx  max |Δ| %.3g\n",
		name, gpu, cpu, speedup, diff)
	if diff > 1e-3*float64(n) {
		fmt.Printf("        warning: GPU and CPU results diverge\n")
	}
}

func runCapture(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	n, _ := cmd.Flags().GetInt("size")
	if n < benchThreadgroupWidth || n%benchThreadgroupWidth != 0 {
		return fmt.Errorf("size must be a positive multiple of %d", benchThreadgroupWidth)
	}
	if output == "" {
		output = fmt.Sprintf("metalctl-%s.gputrace", uuid.New().String())
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return err
	}

	ctx, err := newBenchContext()
	if err != nil {
		return err
	}
	defer ctx.release()

	manager := mtl.SharedCaptureManager()
	if !manager.SupportsDestination(mtl.CaptureDestinationGPUTraceDocument) {
		return fmt.Errorf("GPU trace documents are not supported here; set METAL_CAPTURE_ENABLED=1 and retry")
	}

	desc := mtl.NewCaptureDescriptor()
	defer desc.Release()
	desc.SetCaptureDevice(ctx.dev)
	desc.SetDestination(mtl.CaptureDestinationGPUTraceDocument)
	url := foundation.FileURLWithPath(absOutput)
	defer url.Release()
	desc.SetOutputURL(url)

	if err := manager.StartCapture(desc); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(1))
	x := randomFloats(rng, n)
	y := randomFloats(rng, n)
	a := float32(2.5)
	xBuf, err := ctx.newFloat32Buffer(x)
	if err != nil {
		manager.StopCapture()
		return err
	}
	defer xBuf.Release()
	yBuf, err := ctx.newFloat32Buffer(y)
	if err != nil {
		manager.StopCapture()
		return err
	}
	defer yBuf.Release()

	dispatchErr := ctx.dispatch(ctx.saxpy, n, unsafe.Pointer(&a), yBuf, xBuf)
	manager.StopCapture()
	if dispatchErr != nil {
		return dispatchErr
	}

	fmt.Printf("Captured %d-element saxpy to %s\n", n, absOutput)
	return nil
}
