//go:build amd64 || arm64

package abi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/nixpig/anoabi/internal/platform"
)

func TestFileOffsetWidth(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(platform.FileOffset(0)))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(uintptr(0)))
}
