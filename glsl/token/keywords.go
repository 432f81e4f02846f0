package token

var keywords = map[string]Kind{
	"attribute": Attribute,
	"break":     Break,
	"case":      Case,
	"centroid":  Centroid,
	"const":     Const,
	"continue":  Continue,
	"default":   Default,
	"discard":   Discard,
	"do":        Do,
	"else":      Else,
	"flat":      Flat,
	"for":       For,
	"highp":     Highp,
	"if":        If,
	"in":        In,
	"inout":     Inout,
	"invariant": Invariant,
	"layout":    Layout,
	"lowp":      Lowp,
	"mediump":   Mediump,
	"out":       Out,
	"precision": Precision,
	"return":    Return,
	"smooth":    Smooth,
	"struct":    Struct,
	"switch":    Switch,
	"uniform":   Uniform,
	"varying":   Varying,
	"while":     While,
	"true":      BoolLit,
	"false":     BoolLit,
}

// basicTypes lists the built-in type names of GLSL ES 3.00.
var basicTypes = map[string]struct{}{
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {},

	"vec2": {}, "vec3": {}, "vec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},

	"mat2": {}, "mat3": {}, "mat4": {},
	"mat2x2": {}, "mat2x3": {}, "mat2x4": {},
	"mat3x2": {}, "mat3x3": {}, "mat3x4": {},
	"mat4x2": {}, "mat4x3": {}, "mat4x4": {},

	"sampler2D": {}, "sampler3D": {}, "samplerCube": {},
	"sampler2DShadow": {}, "samplerCubeShadow": {},
	"sampler2DArray": {}, "sampler2DArrayShadow": {},
	"isampler2D": {}, "isampler3D": {}, "isamplerCube": {}, "isampler2DArray": {},
	"usampler2D": {}, "usampler3D": {}, "usamplerCube": {}, "usampler2DArray": {},
}

// reserved holds the words GLSL ES 3.00 sets aside for future use.
var reserved = map[string]struct{}{
	"asm": {}, "cast": {}, "class": {}, "common": {}, "enum": {}, "extern": {},
	"external": {}, "filter": {}, "fixed": {}, "fvec2": {}, "fvec3": {}, "fvec4": {},
	"goto": {}, "half": {}, "hvec2": {}, "hvec3": {}, "hvec4": {}, "inline": {},
	"input": {}, "interface": {}, "long": {}, "namespace": {}, "noinline": {},
	"noperspective": {}, "output": {}, "partition": {}, "patch": {}, "public": {},
	"resource": {}, "sample": {}, "short": {}, "sizeof": {}, "static": {},
	"subroutine": {}, "superp": {}, "template": {}, "this": {}, "typedef": {},
	"union": {}, "unsigned": {}, "using": {}, "volatile": {}, "coherent": {},
	"restrict": {}, "readonly": {}, "writeonly": {}, "active": {}, "double": {},
	"dvec2": {}, "dvec3": {}, "dvec4": {}, "sampler1D": {}, "sampler1DShadow": {},
	"sampler2DRect": {}, "sampler2DRectShadow": {}, "sampler3DRect": {},
	"samplerBuffer": {}, "image1D": {}, "image2D": {}, "image3D": {}, "imageCube": {},
	"iimage1D": {}, "iimage2D": {}, "iimage3D": {}, "iimageCube": {},
	"uimage1D": {}, "uimage2D": {}, "uimage3D": {}, "uimageCube": {},
	"image1DArray": {}, "image2DArray": {}, "imageBuffer": {},
}

// Lookup classifies an identifier-shaped word. The caller must pass the
// whole word: a keyword that is only a prefix of a longer word is an
// identifier.
func Lookup(word string) Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	if _, ok := basicTypes[word]; ok {
		return BasicType
	}
	if _, ok := reserved[word]; ok {
		return Reserved
	}
	return Ident
}

// Keywords returns every word with a dedicated classification, keyed by the
// word. The result is a fresh map.
func Keywords() map[string]Kind {
	all := make(map[string]Kind, len(keywords)+len(basicTypes)+len(reserved))
	for w, k := range keywords {
		all[w] = k
	}
	for w := range basicTypes {
		all[w] = BasicType
	}
	for w := range reserved {
		all[w] = Reserved
	}
	return all
}
