package platform

import (
	"syscall"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestIfReqLayout(t *testing.T) {
	assert.GreaterOrEqual(
		t,
		unsafe.Sizeof(IfReq{}),
		uintptr(IfReqMinSize),
	)
	assert.Equal(t, uintptr(IfNameSize), unsafe.Offsetof(IfReq{}.Flags))
}

func TestNewIfReq(t *testing.T) {
	req, err := NewIfReq("lo")
	assert.NoError(t, err)
	assert.Equal(t, byte('l'), req.Name[0])
	assert.Equal(t, byte('o'), req.Name[1])
	assert.Equal(t, byte(0), req.Name[2])
	assert.Equal(t, int16(0), req.Flags)
}

func TestNewIfReqNameLimit(t *testing.T) {
	// 15 bytes leaves room for the trailing NUL; 16 does not.
	req, err := NewIfReq("abcdefghijklmno")
	assert.NoError(t, err)
	assert.Equal(t, byte('o'), req.Name[IfNameSize-2])
	assert.Equal(t, byte(0), req.Name[IfNameSize-1])

	_, err = NewIfReq("abcdefghijklmnop")
	assert.Error(t, err)
}

func TestUnshareAllCoversEveryNamespace(t *testing.T) {
	assert.Equal(
		t,
		unix.CLONE_NEWNS|unix.CLONE_NEWUTS|unix.CLONE_NEWIPC|
			unix.CLONE_NEWUSER|unix.CLONE_NEWPID|unix.CLONE_NEWNET,
		UnshareAll,
	)
}

func TestActErrnoEncoding(t *testing.T) {
	errnos := []syscall.Errno{
		syscall.EPERM,
		syscall.ENOENT,
		syscall.EACCES,
		syscall.ENOSYS,
		syscall.ENOTSUP,
	}

	for _, errno := range errnos {
		assert.Equal(
			t,
			uint32(unix.SECCOMP_RET_ERRNO)|uint32(errno),
			ActErrno(errno),
		)
	}

	assert.Equal(t, ActErrno(syscall.ENOSYS), ActErrnoEnosys)
}
