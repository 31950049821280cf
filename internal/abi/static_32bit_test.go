//go:build 386 || arm

package abi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/nixpig/anoabi/internal/platform"
)

func TestFileOffsetWidth(t *testing.T) {
	assert.Equal(t, uintptr(4), unsafe.Sizeof(platform.FileOffset(0)))
	assert.Equal(t, uintptr(4), unsafe.Sizeof(uintptr(0)))
}
