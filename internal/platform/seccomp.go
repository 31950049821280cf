package platform

import "syscall"

// Seccomp values from linux/seccomp.h and the filter-action encoding shared
// with libseccomp. They end up inside hand-assembled BPF programs, which is
// why they cannot be looked up at runtime.
const (
	// SeccompModeFilter is the prctl argument selecting filter-based secure
	// computing.
	SeccompModeFilter = 2

	// ActAllow lets a system call through unconditionally.
	ActAllow = 0x7FFF0000

	actErrnoBase = 0x00050000
)

// ActErrnoEnosys fails the call with ENOSYS. Filters use it as the default
// deny action so a blocked syscall looks unimplemented rather than forbidden.
const ActErrnoEnosys = actErrnoBase | uint32(syscall.ENOSYS)

// ActErrno returns the filter action that fails a system call with errno.
func ActErrno(errno syscall.Errno) uint32 {
	return actErrnoBase | uint32(errno)
}
