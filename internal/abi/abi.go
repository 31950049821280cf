// Package abi guards the kernel and libc ABI values hard-coded in
// internal/platform. Every tracked value is asserted twice: at compile time
// in static.go, so a build for a platform with different values cannot
// succeed, and at startup through Verify, which walks the same set and
// reports every violation rather than stopping at the first.
package abi

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/syndtr/gocapability/capability"
	"golang.org/x/sys/unix"

	"github.com/nixpig/anoabi/internal/platform"
)

// Kind selects the predicate an Assumption is checked with.
type Kind string

const (
	// Exact requires the platform value to equal the hard-coded one. Flag and
	// constant values are frozen kernel ABI, so any difference is drift.
	Exact Kind = "exact"

	// Min requires the platform value to be at least the hard-coded one, for
	// quantities that legitimately vary with architecture or padding.
	Min Kind = "min"
)

// An Assumption pairs a value read from the platform with the value
// hard-coded in internal/platform. The platform side comes from
// golang.org/x/sys/unix, which is generated from the real kernel headers for
// each architecture and so plays the role the headers play in a C build.
type Assumption struct {
	// Name is the kernel's name for the checked constant or quantity.
	Name string `json:"name"`

	// Source identifies the hard-coded value this assumption protects.
	Source string `json:"source"`

	Actual   uint64 `json:"actual"`
	Expected uint64 `json:"expected"`
	Kind     Kind   `json:"kind"`
}

// Holds reports whether the assumption's predicate is true.
func (a Assumption) Holds() bool {
	if a.Kind == Min {
		return a.Actual >= a.Expected
	}

	return a.Actual == a.Expected
}

func (a Assumption) violation() error {
	if a.Kind == Min {
		return fmt.Errorf(
			"%s: platform value %#x is below the minimum %#x assumed by %s",
			a.Name, a.Actual, a.Expected, a.Source,
		)
	}

	return fmt.Errorf(
		"%s: platform value %#x does not match %#x assumed by %s",
		a.Name, a.Actual, a.Expected, a.Source,
	)
}

// Assumptions returns every tracked assumption. The checks are independent
// of each other and of any ordering; the slice is rebuilt on each call so
// callers cannot perturb later verifications.
func Assumptions() []Assumption {
	return []Assumption{
		// Network-interface control, consumed by the hand-packed ifreq
		// buffers driving the interface-flags ioctls.
		{
			Name:     "SIOCGIFFLAGS",
			Source:   "platform.IoctlGetIfFlags",
			Actual:   unix.SIOCGIFFLAGS,
			Expected: platform.IoctlGetIfFlags,
			Kind:     Exact,
		},
		{
			Name:     "SIOCSIFFLAGS",
			Source:   "platform.IoctlSetIfFlags",
			Actual:   unix.SIOCSIFFLAGS,
			Expected: platform.IoctlSetIfFlags,
			Kind:     Exact,
		},
		{
			Name:     "IFF_UP",
			Source:   "platform.IfFlagUp",
			Actual:   unix.IFF_UP,
			Expected: platform.IfFlagUp,
			Kind:     Exact,
		},
		{
			Name:     "IFNAMSIZ",
			Source:   "platform.IfNameSize",
			Actual:   unix.IFNAMSIZ,
			Expected: platform.IfNameSize,
			Kind:     Exact,
		},
		{
			Name:     "sizeof(struct ifreq)",
			Source:   "platform.IfReq",
			Actual:   uint64(unsafe.Sizeof(platform.IfReq{})),
			Expected: platform.IfReqMinSize,
			Kind:     Min,
		},

		// Offsets are carried in native words; the two widths must agree.
		{
			Name:     "sizeof(off_t)",
			Source:   "platform.FileOffset",
			Actual:   uint64(unsafe.Sizeof(uintptr(0))),
			Expected: uint64(unsafe.Sizeof(platform.FileOffset(0))),
			Kind:     Exact,
		},

		// Namespace flags requested when spawning an isolated child.
		{
			Name:     "CLONE_NEWNS",
			Source:   "platform.CloneNewMount",
			Actual:   unix.CLONE_NEWNS,
			Expected: platform.CloneNewMount,
			Kind:     Exact,
		},
		{
			Name:     "CLONE_NEWUTS",
			Source:   "platform.CloneNewUTS",
			Actual:   unix.CLONE_NEWUTS,
			Expected: platform.CloneNewUTS,
			Kind:     Exact,
		},
		{
			Name:     "CLONE_NEWIPC",
			Source:   "platform.CloneNewIPC",
			Actual:   unix.CLONE_NEWIPC,
			Expected: platform.CloneNewIPC,
			Kind:     Exact,
		},
		{
			Name:     "CLONE_NEWUSER",
			Source:   "platform.CloneNewUser",
			Actual:   unix.CLONE_NEWUSER,
			Expected: platform.CloneNewUser,
			Kind:     Exact,
		},
		{
			Name:     "CLONE_NEWPID",
			Source:   "platform.CloneNewPID",
			Actual:   unix.CLONE_NEWPID,
			Expected: platform.CloneNewPID,
			Kind:     Exact,
		},
		{
			Name:     "CLONE_NEWNET",
			Source:   "platform.CloneNewNet",
			Actual:   unix.CLONE_NEWNET,
			Expected: platform.CloneNewNet,
			Kind:     Exact,
		},

		// Protection and mapping flags for hand-built stack mappings.
		{
			Name:     "PROT_NONE",
			Source:   "platform.ProtNone",
			Actual:   unix.PROT_NONE,
			Expected: platform.ProtNone,
			Kind:     Exact,
		},
		{
			Name:     "MAP_GROWSDOWN",
			Source:   "platform.MapGrowsDown",
			Actual:   unix.MAP_GROWSDOWN,
			Expected: platform.MapGrowsDown,
			Kind:     Exact,
		},
		{
			Name:     "MAP_STACK",
			Source:   "platform.MapStack",
			Actual:   unix.MAP_STACK,
			Expected: platform.MapStack,
			Kind:     Exact,
		},

		// Mount flags.
		{
			Name:     "MS_RDONLY",
			Source:   "platform.MountReadOnly",
			Actual:   unix.MS_RDONLY,
			Expected: platform.MountReadOnly,
			Kind:     Exact,
		},
		{
			Name:     "MS_NOSUID",
			Source:   "platform.MountNoSuid",
			Actual:   unix.MS_NOSUID,
			Expected: platform.MountNoSuid,
			Kind:     Exact,
		},
		{
			Name:     "MS_NODEV",
			Source:   "platform.MountNoDev",
			Actual:   unix.MS_NODEV,
			Expected: platform.MountNoDev,
			Kind:     Exact,
		},
		{
			Name:     "MS_NOEXEC",
			Source:   "platform.MountNoExec",
			Actual:   unix.MS_NOEXEC,
			Expected: platform.MountNoExec,
			Kind:     Exact,
		},
		{
			Name:     "MS_REMOUNT",
			Source:   "platform.MountRemount",
			Actual:   unix.MS_REMOUNT,
			Expected: platform.MountRemount,
			Kind:     Exact,
		},
		{
			Name:     "MS_BIND",
			Source:   "platform.MountBind",
			Actual:   unix.MS_BIND,
			Expected: platform.MountBind,
			Kind:     Exact,
		},
		{
			Name:     "MS_MOVE",
			Source:   "platform.MountMove",
			Actual:   unix.MS_MOVE,
			Expected: platform.MountMove,
			Kind:     Exact,
		},
		{
			Name:     "MS_REC",
			Source:   "platform.MountRecursive",
			Actual:   unix.MS_REC,
			Expected: platform.MountRecursive,
			Kind:     Exact,
		},
		{
			Name:     "MS_PRIVATE",
			Source:   "platform.MountPrivate",
			Actual:   unix.MS_PRIVATE,
			Expected: platform.MountPrivate,
			Kind:     Exact,
		},
		{
			Name:     "MNT_DETACH",
			Source:   "platform.UnmountDetach",
			Actual:   unix.MNT_DETACH,
			Expected: platform.UnmountDetach,
			Kind:     Exact,
		},

		// Capability and prctl values.
		{
			Name:     "LINUX_CAPABILITY_VERSION_3",
			Source:   "platform.CapabilityVersion3",
			Actual:   unix.LINUX_CAPABILITY_VERSION_3,
			Expected: platform.CapabilityVersion3,
			Kind:     Exact,
		},
		{
			Name:     "CAP_SYS_ADMIN",
			Source:   "platform.CapSysAdmin",
			Actual:   unix.CAP_SYS_ADMIN,
			Expected: platform.CapSysAdmin,
			Kind:     Exact,
		},
		{
			Name:     "CAP_SYS_ADMIN (libcap enum)",
			Source:   "platform.CapSysAdmin",
			Actual:   uint64(capability.CAP_SYS_ADMIN),
			Expected: platform.CapSysAdmin,
			Kind:     Exact,
		},
		{
			Name:     "PR_SET_DUMPABLE",
			Source:   "platform.PrSetDumpable",
			Actual:   unix.PR_SET_DUMPABLE,
			Expected: platform.PrSetDumpable,
			Kind:     Exact,
		},
		{
			Name:     "PR_GET_SECCOMP",
			Source:   "platform.PrGetSeccomp",
			Actual:   unix.PR_GET_SECCOMP,
			Expected: platform.PrGetSeccomp,
			Kind:     Exact,
		},
		{
			Name:     "PR_SET_SECCOMP",
			Source:   "platform.PrSetSeccomp",
			Actual:   unix.PR_SET_SECCOMP,
			Expected: platform.PrSetSeccomp,
			Kind:     Exact,
		},

		// Seccomp filter actions and mode.
		{
			Name:     "SCMP_ACT_ALLOW",
			Source:   "platform.ActAllow",
			Actual:   unix.SECCOMP_RET_ALLOW,
			Expected: platform.ActAllow,
			Kind:     Exact,
		},
		{
			Name:     "SCMP_ACT_ERRNO(ENOSYS)",
			Source:   "platform.ActErrnoEnosys",
			Actual:   uint64(unix.SECCOMP_RET_ERRNO | uint32(unix.ENOSYS)),
			Expected: uint64(platform.ActErrnoEnosys),
			Kind:     Exact,
		},
		{
			Name:     "SECCOMP_MODE_FILTER",
			Source:   "platform.SeccompModeFilter",
			Actual:   unix.SECCOMP_MODE_FILTER,
			Expected: platform.SeccompModeFilter,
			Kind:     Exact,
		},
	}
}

// Verify evaluates every tracked assumption and returns the violations
// joined into one error, or nil when the platform matches every hard-coded
// value. It takes no input and performs no I/O; the result depends only on
// the platform the binary was built for.
func Verify() error {
	return verify(Assumptions())
}

func verify(assumptions []Assumption) error {
	var errs []error

	for _, a := range assumptions {
		if !a.Holds() {
			errs = append(errs, a.violation())
		}
	}

	return errors.Join(errs...)
}
