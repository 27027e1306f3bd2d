//go:build darwin

package mtl

// Enumeration values in this file are part of the Metal ABI and must match
// the framework headers exactly; they cross the message-send boundary as
// raw integers.

// PixelFormat describes the organization and size of texture elements.
type PixelFormat uint

const (
	PixelFormatInvalid PixelFormat = 0

	// Ordinary 8-bit formats
	PixelFormatA8Unorm PixelFormat = 1
	PixelFormatR8Unorm PixelFormat = 10
	PixelFormatR8Snorm PixelFormat = 12
	PixelFormatR8Uint  PixelFormat = 13
	PixelFormatR8Sint  PixelFormat = 14

	// Ordinary 16-bit formats
	PixelFormatR16Unorm PixelFormat = 20
	PixelFormatR16Snorm PixelFormat = 22
	PixelFormatR16Uint  PixelFormat = 23
	PixelFormatR16Sint  PixelFormat = 24
	PixelFormatR16Float PixelFormat = 25
	PixelFormatRG8Unorm PixelFormat = 30
	PixelFormatRG8Snorm PixelFormat = 32
	PixelFormatRG8Uint  PixelFormat = 33
	PixelFormatRG8Sint  PixelFormat = 34

	// Ordinary 32-bit formats
	PixelFormatR32Uint        PixelFormat = 53
	PixelFormatR32Sint        PixelFormat = 54
	PixelFormatR32Float       PixelFormat = 55
	PixelFormatRG16Unorm      PixelFormat = 60
	PixelFormatRG16Snorm      PixelFormat = 62
	PixelFormatRG16Uint       PixelFormat = 63
	PixelFormatRG16Sint       PixelFormat = 64
	PixelFormatRG16Float      PixelFormat = 65
	PixelFormatRGBA8Unorm     PixelFormat = 70
	PixelFormatRGBA8UnormSRGB PixelFormat = 71
	PixelFormatRGBA8Snorm     PixelFormat = 72
	PixelFormatRGBA8Uint      PixelFormat = 73
	PixelFormatRGBA8Sint      PixelFormat = 74
	PixelFormatBGRA8Unorm     PixelFormat = 80
	PixelFormatBGRA8UnormSRGB PixelFormat = 81
	PixelFormatRGB10A2Unorm   PixelFormat = 90
	PixelFormatRGB10A2Uint    PixelFormat = 91
	PixelFormatRG11B10Float   PixelFormat = 92
	PixelFormatRGB9E5Float    PixelFormat = 93

	// Ordinary 64-bit formats
	PixelFormatRG32Uint    PixelFormat = 103
	PixelFormatRG32Sint    PixelFormat = 104
	PixelFormatRG32Float   PixelFormat = 105
	PixelFormatRGBA16Unorm PixelFormat = 110
	PixelFormatRGBA16Snorm PixelFormat = 112
	PixelFormatRGBA16Uint  PixelFormat = 113
	PixelFormatRGBA16Sint  PixelFormat = 114
	PixelFormatRGBA16Float PixelFormat = 115

	// Ordinary 128-bit formats
	PixelFormatRGBA32Uint  PixelFormat = 123
	PixelFormatRGBA32Sint  PixelFormat = 124
	PixelFormatRGBA32Float PixelFormat = 125

	// Depth and stencil formats
	PixelFormatDepth16Unorm         PixelFormat = 250
	PixelFormatDepth32Float         PixelFormat = 252
	PixelFormatStencil8             PixelFormat = 253
	PixelFormatDepth24UnormStencil8 PixelFormat = 255
	PixelFormatDepth32FloatStencil8 PixelFormat = 260
	PixelFormatX32Stencil8          PixelFormat = 261
	PixelFormatX24Stencil8          PixelFormat = 262
)

// CPUCacheMode is the CPU cache mode defining the CPU mapping of a resource.
type CPUCacheMode uint

const (
	CPUCacheModeDefaultCache  CPUCacheMode = 0
	CPUCacheModeWriteCombined CPUCacheMode = 1
)

// StorageMode describes the memory location and access permissions of a
// resource.
type StorageMode uint

const (
	// StorageModeShared is system memory accessible to both CPU and GPU.
	StorageModeShared StorageMode = 0
	// StorageModeManaged keeps a synchronized pair of copies for CPU and
	// GPU. Discrete-GPU Macs only.
	StorageModeManaged StorageMode = 1
	// StorageModePrivate is GPU-only memory.
	StorageModePrivate StorageMode = 2
	// StorageModeMemoryless holds transient render targets that never back
	// to system memory.
	StorageModeMemoryless StorageMode = 3
)

// HazardTrackingMode controls whether Metal tracks dependencies on a
// resource automatically.
type HazardTrackingMode uint

const (
	HazardTrackingModeDefault   HazardTrackingMode = 0
	HazardTrackingModeUntracked HazardTrackingMode = 1
	HazardTrackingModeTracked   HazardTrackingMode = 2
)

// ResourceOptions combines cache mode, storage mode and hazard tracking
// into the option bitmask used by resource factories.
type ResourceOptions uint

const (
	resourceCPUCacheModeShift       = 0
	resourceStorageModeShift        = 4
	resourceHazardTrackingModeShift = 8
)

const (
	ResourceCPUCacheModeDefaultCache  ResourceOptions = ResourceOptions(CPUCacheModeDefaultCache) << resourceCPUCacheModeShift
	ResourceCPUCacheModeWriteCombined ResourceOptions = ResourceOptions(CPUCacheModeWriteCombined) << resourceCPUCacheModeShift

	ResourceStorageModeShared     ResourceOptions = ResourceOptions(StorageModeShared) << resourceStorageModeShift
	ResourceStorageModeManaged    ResourceOptions = ResourceOptions(StorageModeManaged) << resourceStorageModeShift
	ResourceStorageModePrivate    ResourceOptions = ResourceOptions(StorageModePrivate) << resourceStorageModeShift
	ResourceStorageModeMemoryless ResourceOptions = ResourceOptions(StorageModeMemoryless) << resourceStorageModeShift

	ResourceHazardTrackingModeDefault   ResourceOptions = ResourceOptions(HazardTrackingModeDefault) << resourceHazardTrackingModeShift
	ResourceHazardTrackingModeUntracked ResourceOptions = ResourceOptions(HazardTrackingModeUntracked) << resourceHazardTrackingModeShift
	ResourceHazardTrackingModeTracked   ResourceOptions = ResourceOptions(HazardTrackingModeTracked) << resourceHazardTrackingModeShift
)

// PurgeableState lets applications volunteer resource memory back to the
// system.
type PurgeableState uint

const (
	PurgeableStateKeepCurrent PurgeableState = 1
	PurgeableStateNonVolatile PurgeableState = 2
	PurgeableStateVolatile    PurgeableState = 3
	PurgeableStateEmpty       PurgeableState = 4
)

// PrimitiveType is the geometric primitive rasterized from vertex data.
type PrimitiveType uint

const (
	PrimitiveTypePoint         PrimitiveType = 0
	PrimitiveTypeLine          PrimitiveType = 1
	PrimitiveTypeLineStrip     PrimitiveType = 2
	PrimitiveTypeTriangle      PrimitiveType = 3
	PrimitiveTypeTriangleStrip PrimitiveType = 4
)

// IndexType is the size of indices in an index buffer.
type IndexType uint

const (
	IndexTypeUInt16 IndexType = 0
	IndexTypeUInt32 IndexType = 1
)

// VisibilityResultMode controls occlusion query counting during a render
// pass.
type VisibilityResultMode uint

const (
	VisibilityResultModeDisabled VisibilityResultMode = 0
	VisibilityResultModeBoolean  VisibilityResultMode = 1
	VisibilityResultModeCounting VisibilityResultMode = 2
)

// CullMode selects which face winding, if any, gets culled.
type CullMode uint

const (
	CullModeNone  CullMode = 0
	CullModeFront CullMode = 1
	CullModeBack  CullMode = 2
)

// Winding is the vertex order that makes a front-facing primitive.
type Winding uint

const (
	WindingClockwise        Winding = 0
	WindingCounterClockwise Winding = 1
)

// DepthClipMode selects clipping or clamping for depth values outside the
// viewport range.
type DepthClipMode uint

const (
	DepthClipModeClip  DepthClipMode = 0
	DepthClipModeClamp DepthClipMode = 1
)

// TriangleFillMode rasterizes triangles filled or as wireframe.
type TriangleFillMode uint

const (
	TriangleFillModeFill  TriangleFillMode = 0
	TriangleFillModeLines TriangleFillMode = 1
)

// LoadAction is performed on an attachment at the start of a render pass.
type LoadAction uint

const (
	LoadActionDontCare LoadAction = 0
	LoadActionLoad     LoadAction = 1
	LoadActionClear    LoadAction = 2
)

// StoreAction is performed on an attachment at the end of a render pass.
type StoreAction uint

const (
	StoreActionDontCare                   StoreAction = 0
	StoreActionStore                      StoreAction = 1
	StoreActionMultisampleResolve         StoreAction = 2
	StoreActionStoreAndMultisampleResolve StoreAction = 3
	StoreActionUnknown                    StoreAction = 4
	StoreActionCustomSampleDepthStore     StoreAction = 5
)

// CompareFunction decides whether a depth or stencil test passes.
type CompareFunction uint

const (
	CompareFunctionNever        CompareFunction = 0
	CompareFunctionLess         CompareFunction = 1
	CompareFunctionEqual        CompareFunction = 2
	CompareFunctionLessEqual    CompareFunction = 3
	CompareFunctionGreater      CompareFunction = 4
	CompareFunctionNotEqual     CompareFunction = 5
	CompareFunctionGreaterEqual CompareFunction = 6
	CompareFunctionAlways       CompareFunction = 7
)

// StencilOperation updates the stencil buffer after a stencil test.
type StencilOperation uint

const (
	StencilOperationKeep           StencilOperation = 0
	StencilOperationZero           StencilOperation = 1
	StencilOperationReplace        StencilOperation = 2
	StencilOperationIncrementClamp StencilOperation = 3
	StencilOperationDecrementClamp StencilOperation = 4
	StencilOperationInvert         StencilOperation = 5
	StencilOperationIncrementWrap  StencilOperation = 6
	StencilOperationDecrementWrap  StencilOperation = 7
)

// BlendFactor is the source or destination multiplier in a blend equation.
type BlendFactor uint

const (
	BlendFactorZero                     BlendFactor = 0
	BlendFactorOne                      BlendFactor = 1
	BlendFactorSourceColor              BlendFactor = 2
	BlendFactorOneMinusSourceColor      BlendFactor = 3
	BlendFactorSourceAlpha              BlendFactor = 4
	BlendFactorOneMinusSourceAlpha      BlendFactor = 5
	BlendFactorDestinationColor         BlendFactor = 6
	BlendFactorOneMinusDestinationColor BlendFactor = 7
	BlendFactorDestinationAlpha         BlendFactor = 8
	BlendFactorOneMinusDestinationAlpha BlendFactor = 9
	BlendFactorSourceAlphaSaturated     BlendFactor = 10
	BlendFactorBlendColor               BlendFactor = 11
	BlendFactorOneMinusBlendColor       BlendFactor = 12
	BlendFactorBlendAlpha               BlendFactor = 13
	BlendFactorOneMinusBlendAlpha       BlendFactor = 14
	BlendFactorSource1Color             BlendFactor = 15
	BlendFactorOneMinusSource1Color     BlendFactor = 16
	BlendFactorSource1Alpha             BlendFactor = 17
	BlendFactorOneMinusSource1Alpha     BlendFactor = 18
)

// BlendOperation combines the weighted source and destination values.
type BlendOperation uint

const (
	BlendOperationAdd             BlendOperation = 0
	BlendOperationSubtract        BlendOperation = 1
	BlendOperationReverseSubtract BlendOperation = 2
	BlendOperationMin             BlendOperation = 3
	BlendOperationMax             BlendOperation = 4
)

// ColorWriteMask limits which color channels a render pipeline writes.
type ColorWriteMask uint

const (
	ColorWriteMaskNone  ColorWriteMask = 0
	ColorWriteMaskAlpha ColorWriteMask = 1 << 0
	ColorWriteMaskBlue  ColorWriteMask = 1 << 1
	ColorWriteMaskGreen ColorWriteMask = 1 << 2
	ColorWriteMaskRed   ColorWriteMask = 1 << 3
	ColorWriteMaskAll   ColorWriteMask = 0xf
)

// TextureType is the dimensionality of a texture.
type TextureType uint

const (
	TextureType1D                 TextureType = 0
	TextureType1DArray            TextureType = 1
	TextureType2D                 TextureType = 2
	TextureType2DArray            TextureType = 3
	TextureType2DMultisample      TextureType = 4
	TextureTypeCube               TextureType = 5
	TextureTypeCubeArray          TextureType = 6
	TextureType3D                 TextureType = 7
	TextureType2DMultisampleArray TextureType = 8
	TextureTypeTextureBuffer      TextureType = 9
)

// TextureUsage declares how a texture will be used; usages outside the
// declared set are invalid.
type TextureUsage uint

const (
	TextureUsageUnknown         TextureUsage = 0
	TextureUsageShaderRead      TextureUsage = 1 << 0
	TextureUsageShaderWrite     TextureUsage = 1 << 1
	TextureUsageRenderTarget    TextureUsage = 1 << 2
	TextureUsagePixelFormatView TextureUsage = 1 << 4
)

// SamplerMinMagFilter selects minification and magnification filtering.
type SamplerMinMagFilter uint

const (
	SamplerMinMagFilterNearest SamplerMinMagFilter = 0
	SamplerMinMagFilterLinear  SamplerMinMagFilter = 1
)

// SamplerMipFilter selects filtering between mipmap levels.
type SamplerMipFilter uint

const (
	SamplerMipFilterNotMipmapped SamplerMipFilter = 0
	SamplerMipFilterNearest      SamplerMipFilter = 1
	SamplerMipFilterLinear       SamplerMipFilter = 2
)

// SamplerAddressMode handles texture coordinates outside [0, 1].
type SamplerAddressMode uint

const (
	SamplerAddressModeClampToEdge        SamplerAddressMode = 0
	SamplerAddressModeMirrorClampToEdge  SamplerAddressMode = 1
	SamplerAddressModeRepeat             SamplerAddressMode = 2
	SamplerAddressModeMirrorRepeat       SamplerAddressMode = 3
	SamplerAddressModeClampToZero        SamplerAddressMode = 4
	SamplerAddressModeClampToBorderColor SamplerAddressMode = 5
)

// SamplerBorderColor fills samples outside a border-addressed texture.
type SamplerBorderColor uint

const (
	SamplerBorderColorTransparentBlack SamplerBorderColor = 0
	SamplerBorderColorOpaqueBlack      SamplerBorderColor = 1
	SamplerBorderColorOpaqueWhite      SamplerBorderColor = 2
)

// VertexFormat describes how vertex attribute data is laid out in memory.
type VertexFormat uint

const (
	VertexFormatInvalid VertexFormat = 0

	VertexFormatUChar2           VertexFormat = 1
	VertexFormatUChar3           VertexFormat = 2
	VertexFormatUChar4           VertexFormat = 3
	VertexFormatChar2            VertexFormat = 4
	VertexFormatChar3            VertexFormat = 5
	VertexFormatChar4            VertexFormat = 6
	VertexFormatUChar2Normalized VertexFormat = 7
	VertexFormatUChar3Normalized VertexFormat = 8
	VertexFormatUChar4Normalized VertexFormat = 9
	VertexFormatChar2Normalized  VertexFormat = 10
	VertexFormatChar3Normalized  VertexFormat = 11
	VertexFormatChar4Normalized  VertexFormat = 12

	VertexFormatUShort2           VertexFormat = 13
	VertexFormatUShort3           VertexFormat = 14
	VertexFormatUShort4           VertexFormat = 15
	VertexFormatShort2            VertexFormat = 16
	VertexFormatShort3            VertexFormat = 17
	VertexFormatShort4            VertexFormat = 18
	VertexFormatUShort2Normalized VertexFormat = 19
	VertexFormatUShort3Normalized VertexFormat = 20
	VertexFormatUShort4Normalized VertexFormat = 21
	VertexFormatShort2Normalized  VertexFormat = 22
	VertexFormatShort3Normalized  VertexFormat = 23
	VertexFormatShort4Normalized  VertexFormat = 24

	VertexFormatHalf2  VertexFormat = 25
	VertexFormatHalf3  VertexFormat = 26
	VertexFormatHalf4  VertexFormat = 27
	VertexFormatFloat  VertexFormat = 28
	VertexFormatFloat2 VertexFormat = 29
	VertexFormatFloat3 VertexFormat = 30
	VertexFormatFloat4 VertexFormat = 31
	VertexFormatInt    VertexFormat = 32
	VertexFormatInt2   VertexFormat = 33
	VertexFormatInt3   VertexFormat = 34
	VertexFormatInt4   VertexFormat = 35
	VertexFormatUInt   VertexFormat = 36
	VertexFormatUInt2  VertexFormat = 37
	VertexFormatUInt3  VertexFormat = 38
	VertexFormatUInt4  VertexFormat = 39

	VertexFormatInt1010102Normalized  VertexFormat = 40
	VertexFormatUInt1010102Normalized VertexFormat = 41
	VertexFormatUChar4NormalizedBGRA  VertexFormat = 42

	VertexFormatUChar            VertexFormat = 45
	VertexFormatChar             VertexFormat = 46
	VertexFormatUCharNormalized  VertexFormat = 47
	VertexFormatCharNormalized   VertexFormat = 48
	VertexFormatUShort           VertexFormat = 49
	VertexFormatShort            VertexFormat = 50
	VertexFormatUShortNormalized VertexFormat = 51
	VertexFormatShortNormalized  VertexFormat = 52
	VertexFormatHalf             VertexFormat = 53
)

// VertexStepFunction controls how the vertex fetcher advances through a
// buffer layout.
type VertexStepFunction uint

const (
	VertexStepFunctionConstant             VertexStepFunction = 0
	VertexStepFunctionPerVertex            VertexStepFunction = 1
	VertexStepFunctionPerInstance          VertexStepFunction = 2
	VertexStepFunctionPerPatch             VertexStepFunction = 3
	VertexStepFunctionPerPatchControlPoint VertexStepFunction = 4
)

// FunctionType classifies an entry point in a shader library.
type FunctionType uint

const (
	FunctionTypeVertex   FunctionType = 1
	FunctionTypeFragment FunctionType = 2
	FunctionTypeKernel   FunctionType = 3
)

// LanguageVersion selects the Metal Shading Language revision used by the
// compiler. The encoding packs the major version into the upper half.
type LanguageVersion uint

const (
	LanguageVersion1_1 LanguageVersion = (1 << 16) + 1
	LanguageVersion1_2 LanguageVersion = (1 << 16) + 2
	LanguageVersion2_0 LanguageVersion = 2 << 16
	LanguageVersion2_1 LanguageVersion = (2 << 16) + 1
	LanguageVersion2_2 LanguageVersion = (2 << 16) + 2
	LanguageVersion2_3 LanguageVersion = (2 << 16) + 3
	LanguageVersion2_4 LanguageVersion = (2 << 16) + 4
	LanguageVersion3_0 LanguageVersion = 3 << 16
	LanguageVersion3_1 LanguageVersion = (3 << 16) + 1
	LanguageVersion3_2 LanguageVersion = (3 << 16) + 2
)

// GPUFamily groups devices by hardware capability.
type GPUFamily uint

const (
	GPUFamilyApple1 GPUFamily = 1001
	GPUFamilyApple2 GPUFamily = 1002
	GPUFamilyApple3 GPUFamily = 1003
	GPUFamilyApple4 GPUFamily = 1004
	GPUFamilyApple5 GPUFamily = 1005
	GPUFamilyApple6 GPUFamily = 1006
	GPUFamilyApple7 GPUFamily = 1007
	GPUFamilyApple8 GPUFamily = 1008
	GPUFamilyApple9 GPUFamily = 1009

	GPUFamilyMac2 GPUFamily = 2002

	GPUFamilyCommon1 GPUFamily = 3001
	GPUFamilyCommon2 GPUFamily = 3002
	GPUFamilyCommon3 GPUFamily = 3003

	GPUFamilyMetal3 GPUFamily = 5001
)

// CommandBufferStatus tracks a command buffer through its lifecycle.
type CommandBufferStatus uint

const (
	CommandBufferStatusNotEnqueued CommandBufferStatus = 0
	CommandBufferStatusEnqueued    CommandBufferStatus = 1
	CommandBufferStatusCommitted   CommandBufferStatus = 2
	CommandBufferStatusScheduled   CommandBufferStatus = 3
	CommandBufferStatusCompleted   CommandBufferStatus = 4
	CommandBufferStatusError       CommandBufferStatus = 5
)

// CommandBufferError is the error code carried by a failed command
// buffer's NSError.
type CommandBufferError uint

const (
	CommandBufferErrorNone            CommandBufferError = 0
	CommandBufferErrorInternal        CommandBufferError = 1
	CommandBufferErrorTimeout         CommandBufferError = 2
	CommandBufferErrorPageFault       CommandBufferError = 3
	CommandBufferErrorAccessRevoked   CommandBufferError = 4
	CommandBufferErrorNotPermitted    CommandBufferError = 7
	CommandBufferErrorOutOfMemory     CommandBufferError = 8
	CommandBufferErrorInvalidResource CommandBufferError = 9
	CommandBufferErrorMemoryless      CommandBufferError = 10
	CommandBufferErrorDeviceRemoved   CommandBufferError = 11
	CommandBufferErrorStackOverflow   CommandBufferError = 12
)

// DispatchType serializes or overlaps the dispatches of a compute pass.
type DispatchType uint

const (
	DispatchTypeSerial     DispatchType = 0
	DispatchTypeConcurrent DispatchType = 1
)

// HeapType selects the sub-allocation strategy of a heap.
type HeapType uint

const (
	HeapTypeAutomatic HeapType = 0
	HeapTypePlacement HeapType = 1
	HeapTypeSparse    HeapType = 2
)

// RenderStages identifies pipeline stages for fine-grained fence waits.
type RenderStages uint

const (
	RenderStageVertex   RenderStages = 1 << 0
	RenderStageFragment RenderStages = 1 << 1
)

// BarrierScope bounds the resource kinds a memory barrier applies to.
type BarrierScope uint

const (
	BarrierScopeBuffers       BarrierScope = 1 << 0
	BarrierScopeTextures      BarrierScope = 1 << 1
	BarrierScopeRenderTargets BarrierScope = 1 << 2
)

// ResourceUsage declares how an argument-buffer resource is used within a
// pass.
type ResourceUsage uint

const (
	ResourceUsageRead  ResourceUsage = 1 << 0
	ResourceUsageWrite ResourceUsage = 1 << 1
)

// CaptureDestination routes a GPU capture to a tool or a trace file.
type CaptureDestination int

const (
	CaptureDestinationDeveloperTools   CaptureDestination = 1
	CaptureDestinationGPUTraceDocument CaptureDestination = 2
)
