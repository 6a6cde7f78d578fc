package gpu

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestBuildWithoutVertexShaderFails(t *testing.T) {
	_, err := NewPipelineBuilder(nil).
		Label("broken").
		DefaultPrimitiveState().
		DefaultMultisampleState().
		Build()

	require.ErrorIs(t, err, ErrNoVertexShader)
}

func TestPassWithoutColorViewFails(t *testing.T) {
	_, err := NewPassBuilder(nil).
		Label("broken").
		Begin()

	require.ErrorIs(t, err, ErrNoColorView)
}

func TestUniformsDataAlignment(t *testing.T) {
	// the shader side struct is 16 byte aligned
	require.Equal(t, uintptr(16), unsafe.Sizeof(UniformsData{}))
}
