package syntax

// BasicType is a built-in GLSL type named by a reserved word.
type BasicType int

const (
	InvalidType BasicType = iota

	Void
	Bool
	Int
	UInt
	Float
	Double

	Vec2
	Vec3
	Vec4
	DVec2
	DVec3
	DVec4
	BVec2
	BVec3
	BVec4
	IVec2
	IVec3
	IVec4
	UVec2
	UVec3
	UVec4

	Mat2
	Mat3
	Mat4
	Mat2x2
	Mat2x3
	Mat2x4
	Mat3x2
	Mat3x3
	Mat3x4
	Mat4x2
	Mat4x3
	Mat4x4
	DMat2
	DMat3
	DMat4
	DMat2x2
	DMat2x3
	DMat2x4
	DMat3x2
	DMat3x3
	DMat3x4
	DMat4x2
	DMat4x3
	DMat4x4

	Sampler1D
	Sampler2D
	Sampler3D
	SamplerCube
	Sampler1DShadow
	Sampler2DShadow
	SamplerCubeShadow
	Sampler1DArray
	Sampler2DArray
	Sampler1DArrayShadow
	Sampler2DArrayShadow
	SamplerCubeArray
	SamplerCubeArrayShadow
	Sampler2DRect
	Sampler2DRectShadow
	SamplerBuffer
	Sampler2DMS
	Sampler2DMSArray
	SamplerExternalOES

	ISampler1D
	ISampler2D
	ISampler3D
	ISamplerCube
	ISampler1DArray
	ISampler2DArray
	ISamplerCubeArray
	ISampler2DRect
	ISamplerBuffer
	ISampler2DMS
	ISampler2DMSArray

	USampler1D
	USampler2D
	USampler3D
	USamplerCube
	USampler1DArray
	USampler2DArray
	USamplerCubeArray
	USampler2DRect
	USamplerBuffer
	USampler2DMS
	USampler2DMSArray

	Image1D
	Image2D
	Image3D
	Image2DRect
	ImageCube
	ImageBuffer
	Image1DArray
	Image2DArray
	ImageCubeArray
	Image2DMS
	Image2DMSArray

	IImage1D
	IImage2D
	IImage3D
	IImage2DRect
	IImageCube
	IImageBuffer
	IImage1DArray
	IImage2DArray
	IImageCubeArray
	IImage2DMS
	IImage2DMSArray

	UImage1D
	UImage2D
	UImage3D
	UImage2DRect
	UImageCube
	UImageBuffer
	UImage1DArray
	UImage2DArray
	UImageCubeArray
	UImage2DMS
	UImage2DMSArray

	AtomicUInt

	numBasicTypes
)

var basicTypeNames = [numBasicTypes]string{
	InvalidType: "",

	Void:   "void",
	Bool:   "bool",
	Int:    "int",
	UInt:   "uint",
	Float:  "float",
	Double: "double",

	Vec2:  "vec2",
	Vec3:  "vec3",
	Vec4:  "vec4",
	DVec2: "dvec2",
	DVec3: "dvec3",
	DVec4: "dvec4",
	BVec2: "bvec2",
	BVec3: "bvec3",
	BVec4: "bvec4",
	IVec2: "ivec2",
	IVec3: "ivec3",
	IVec4: "ivec4",
	UVec2: "uvec2",
	UVec3: "uvec3",
	UVec4: "uvec4",

	Mat2:    "mat2",
	Mat3:    "mat3",
	Mat4:    "mat4",
	Mat2x2:  "mat2x2",
	Mat2x3:  "mat2x3",
	Mat2x4:  "mat2x4",
	Mat3x2:  "mat3x2",
	Mat3x3:  "mat3x3",
	Mat3x4:  "mat3x4",
	Mat4x2:  "mat4x2",
	Mat4x3:  "mat4x3",
	Mat4x4:  "mat4x4",
	DMat2:   "dmat2",
	DMat3:   "dmat3",
	DMat4:   "dmat4",
	DMat2x2: "dmat2x2",
	DMat2x3: "dmat2x3",
	DMat2x4: "dmat2x4",
	DMat3x2: "dmat3x2",
	DMat3x3: "dmat3x3",
	DMat3x4: "dmat3x4",
	DMat4x2: "dmat4x2",
	DMat4x3: "dmat4x3",
	DMat4x4: "dmat4x4",

	Sampler1D:              "sampler1D",
	Sampler2D:              "sampler2D",
	Sampler3D:              "sampler3D",
	SamplerCube:            "samplerCube",
	Sampler1DShadow:        "sampler1DShadow",
	Sampler2DShadow:        "sampler2DShadow",
	SamplerCubeShadow:      "samplerCubeShadow",
	Sampler1DArray:         "sampler1DArray",
	Sampler2DArray:         "sampler2DArray",
	Sampler1DArrayShadow:   "sampler1DArrayShadow",
	Sampler2DArrayShadow:   "sampler2DArrayShadow",
	SamplerCubeArray:       "samplerCubeArray",
	SamplerCubeArrayShadow: "samplerCubeArrayShadow",
	Sampler2DRect:          "sampler2DRect",
	Sampler2DRectShadow:    "sampler2DRectShadow",
	SamplerBuffer:          "samplerBuffer",
	Sampler2DMS:            "sampler2DMS",
	Sampler2DMSArray:       "sampler2DMSArray",
	SamplerExternalOES:     "samplerExternalOES",

	ISampler1D:        "isampler1D",
	ISampler2D:        "isampler2D",
	ISampler3D:        "isampler3D",
	ISamplerCube:      "isamplerCube",
	ISampler1DArray:   "isampler1DArray",
	ISampler2DArray:   "isampler2DArray",
	ISamplerCubeArray: "isamplerCubeArray",
	ISampler2DRect:    "isampler2DRect",
	ISamplerBuffer:    "isamplerBuffer",
	ISampler2DMS:      "isampler2DMS",
	ISampler2DMSArray: "isampler2DMSArray",

	USampler1D:        "usampler1D",
	USampler2D:        "usampler2D",
	USampler3D:        "usampler3D",
	USamplerCube:      "usamplerCube",
	USampler1DArray:   "usampler1DArray",
	USampler2DArray:   "usampler2DArray",
	USamplerCubeArray: "usamplerCubeArray",
	USampler2DRect:    "usampler2DRect",
	USamplerBuffer:    "usamplerBuffer",
	USampler2DMS:      "usampler2DMS",
	USampler2DMSArray: "usampler2DMSArray",

	Image1D:        "image1D",
	Image2D:        "image2D",
	Image3D:        "image3D",
	Image2DRect:    "image2DRect",
	ImageCube:      "imageCube",
	ImageBuffer:    "imageBuffer",
	Image1DArray:   "image1DArray",
	Image2DArray:   "image2DArray",
	ImageCubeArray: "imageCubeArray",
	Image2DMS:      "image2DMS",
	Image2DMSArray: "image2DMSArray",

	IImage1D:        "iimage1D",
	IImage2D:        "iimage2D",
	IImage3D:        "iimage3D",
	IImage2DRect:    "iimage2DRect",
	IImageCube:      "iimageCube",
	IImageBuffer:    "iimageBuffer",
	IImage1DArray:   "iimage1DArray",
	IImage2DArray:   "iimage2DArray",
	IImageCubeArray: "iimageCubeArray",
	IImage2DMS:      "iimage2DMS",
	IImage2DMSArray: "iimage2DMSArray",

	UImage1D:        "uimage1D",
	UImage2D:        "uimage2D",
	UImage3D:        "uimage3D",
	UImage2DRect:    "uimage2DRect",
	UImageCube:      "uimageCube",
	UImageBuffer:    "uimageBuffer",
	UImage1DArray:   "uimage1DArray",
	UImage2DArray:   "uimage2DArray",
	UImageCubeArray: "uimageCubeArray",
	UImage2DMS:      "uimage2DMS",
	UImage2DMSArray: "uimage2DMSArray",

	AtomicUInt: "atomic_uint",
}

var basicTypesByName map[string]BasicType

func init() {
	basicTypesByName = make(map[string]BasicType, numBasicTypes)
	for t := Void; t < numBasicTypes; t++ {
		basicTypesByName[basicTypeNames[t]] = t
	}
}

func (t BasicType) String() string {
	if t <= InvalidType || t >= numBasicTypes {
		return "invalid"
	}
	return basicTypeNames[t]
}

// LookupBasicType returns the built-in type spelled name.
func LookupBasicType(name string) (BasicType, bool) {
	t, ok := basicTypesByName[name]
	return t, ok
}

// BasicTypeNames returns the spelling of every built-in type.
func BasicTypeNames() []string {
	names := make([]string, 0, numBasicTypes-1)
	for t := Void; t < numBasicTypes; t++ {
		names = append(names, basicTypeNames[t])
	}
	return names
}

func (t BasicType) IsSampler() bool {
	return t >= Sampler1D && t <= USampler2DMSArray
}

func (t BasicType) IsImage() bool {
	return t >= Image1D && t <= UImage2DMSArray
}

func (t BasicType) IsMatrix() bool {
	return t >= Mat2 && t <= DMat4x4
}

func (t BasicType) IsVector() bool {
	return t >= Vec2 && t <= UVec4
}
