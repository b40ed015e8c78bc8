package render

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gogpu/naga"

	"github.com/gogpu/qrend"
)

// Embedded WGSL shader sources, one per input mode.

//go:embed shaders/quad_corner.wgsl
var cornerShaderSource string

//go:embed shaders/quad_rect.wgsl
var rectShaderSource string

// ShaderSource returns the WGSL source for the given input mode.
func ShaderSource(mode qrend.InputMode) string {
	if mode == qrend.InputModeRects {
		return rectShaderSource
	}
	return cornerShaderSource
}

// compileSPIRV compiles WGSL to SPIR-V words via naga. The backend
// compiles the WGSL itself when creating the shader module; compiling
// here too surfaces shader errors at construction time, with the shader
// named, instead of as a backend failure on the first frame. The words
// are kept on the pipeline for verification.
func compileSPIRV(label, source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", label, err)
	}
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile %s: truncated SPIR-V (%d bytes)", label, len(spirvBytes))
	}

	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if code[0] != spirvMagic {
		return nil, fmt.Errorf("compile %s: invalid SPIR-V magic 0x%08X", label, code[0])
	}
	return code, nil
}

// spirvMagic is the SPIR-V module magic number.
const spirvMagic = 0x07230203

// nagaLimitation reports whether a compile error is a known naga gap
// rather than a broken shader. Those are tolerated: the backend has its
// own compiler and may well handle what naga does not yet.
func nagaLimitation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "not yet implemented") ||
		strings.Contains(msg, "not supported")
}
