package abi

import (
	"unsafe"

	"github.com/syndtr/gocapability/capability"
	"golang.org/x/sys/unix"

	"github.com/nixpig/anoabi/internal/platform"
)

// Compile-time mirror of the checks in Assumptions. Each equality is written
// as a pair of uint conversions: when the two values differ, one side is a
// negative constant, which cannot be converted to uint, and the build fails
// at the declaration naming both constants. Size bounds need only the one
// direction, since unsafe.Sizeof yields an unsigned constant.
//
// These hold on 32-bit and 64-bit x86 and ARM. On an architecture where a
// value differs (MAP_STACK on mips, for example) the build is supposed to
// fail here, before anything hand-packs a structure with the wrong layout.

// Network-interface control.
const (
	_ = uint(unix.SIOCGIFFLAGS - platform.IoctlGetIfFlags)
	_ = uint(platform.IoctlGetIfFlags - unix.SIOCGIFFLAGS)
	_ = uint(unix.SIOCSIFFLAGS - platform.IoctlSetIfFlags)
	_ = uint(platform.IoctlSetIfFlags - unix.SIOCSIFFLAGS)
	_ = uint(unix.IFF_UP - platform.IfFlagUp)
	_ = uint(platform.IfFlagUp - unix.IFF_UP)
	_ = uint(unix.IFNAMSIZ - platform.IfNameSize)
	_ = uint(platform.IfNameSize - unix.IFNAMSIZ)

	// The kernel reads at least IfReqMinSize bytes through an ifreq pointer.
	_ = unsafe.Sizeof(platform.IfReq{}) - platform.IfReqMinSize
)

// File offsets travel through native syscall words.
const (
	_ = unsafe.Sizeof(platform.FileOffset(0)) - unsafe.Sizeof(uintptr(0))
	_ = unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(platform.FileOffset(0))
)

// Namespace flags.
const (
	_ = uint(unix.CLONE_NEWNS - platform.CloneNewMount)
	_ = uint(platform.CloneNewMount - unix.CLONE_NEWNS)
	_ = uint(unix.CLONE_NEWUTS - platform.CloneNewUTS)
	_ = uint(platform.CloneNewUTS - unix.CLONE_NEWUTS)
	_ = uint(unix.CLONE_NEWIPC - platform.CloneNewIPC)
	_ = uint(platform.CloneNewIPC - unix.CLONE_NEWIPC)
	_ = uint(unix.CLONE_NEWUSER - platform.CloneNewUser)
	_ = uint(platform.CloneNewUser - unix.CLONE_NEWUSER)
	_ = uint(unix.CLONE_NEWPID - platform.CloneNewPID)
	_ = uint(platform.CloneNewPID - unix.CLONE_NEWPID)
	_ = uint(unix.CLONE_NEWNET - platform.CloneNewNet)
	_ = uint(platform.CloneNewNet - unix.CLONE_NEWNET)

	_ = uint(platform.UnshareAll - (unix.CLONE_NEWNS | unix.CLONE_NEWUTS |
		unix.CLONE_NEWIPC | unix.CLONE_NEWUSER | unix.CLONE_NEWPID |
		unix.CLONE_NEWNET))
	_ = uint((unix.CLONE_NEWNS | unix.CLONE_NEWUTS | unix.CLONE_NEWIPC |
		unix.CLONE_NEWUSER | unix.CLONE_NEWPID | unix.CLONE_NEWNET) -
		platform.UnshareAll)
)

// Memory protection and mapping flags.
const (
	_ = uint(unix.PROT_NONE - platform.ProtNone)
	_ = uint(platform.ProtNone - unix.PROT_NONE)
	_ = uint(unix.MAP_GROWSDOWN - platform.MapGrowsDown)
	_ = uint(platform.MapGrowsDown - unix.MAP_GROWSDOWN)
	_ = uint(unix.MAP_STACK - platform.MapStack)
	_ = uint(platform.MapStack - unix.MAP_STACK)
)

// Mount flags.
const (
	_ = uint(unix.MS_RDONLY - platform.MountReadOnly)
	_ = uint(platform.MountReadOnly - unix.MS_RDONLY)
	_ = uint(unix.MS_NOSUID - platform.MountNoSuid)
	_ = uint(platform.MountNoSuid - unix.MS_NOSUID)
	_ = uint(unix.MS_NODEV - platform.MountNoDev)
	_ = uint(platform.MountNoDev - unix.MS_NODEV)
	_ = uint(unix.MS_NOEXEC - platform.MountNoExec)
	_ = uint(platform.MountNoExec - unix.MS_NOEXEC)
	_ = uint(unix.MS_REMOUNT - platform.MountRemount)
	_ = uint(platform.MountRemount - unix.MS_REMOUNT)
	_ = uint(unix.MS_BIND - platform.MountBind)
	_ = uint(platform.MountBind - unix.MS_BIND)
	_ = uint(unix.MS_MOVE - platform.MountMove)
	_ = uint(platform.MountMove - unix.MS_MOVE)
	_ = uint(unix.MS_REC - platform.MountRecursive)
	_ = uint(platform.MountRecursive - unix.MS_REC)
	_ = uint(unix.MS_PRIVATE - platform.MountPrivate)
	_ = uint(platform.MountPrivate - unix.MS_PRIVATE)
	_ = uint(unix.MNT_DETACH - platform.UnmountDetach)
	_ = uint(platform.UnmountDetach - unix.MNT_DETACH)
)

// Capability and prctl values. CAP_SYS_ADMIN is pinned against the libcap
// enum as well, since that is what a privilege-dropping caller passes.
const (
	_ = uint(unix.LINUX_CAPABILITY_VERSION_3 - platform.CapabilityVersion3)
	_ = uint(platform.CapabilityVersion3 - unix.LINUX_CAPABILITY_VERSION_3)
	_ = uint(unix.CAP_SYS_ADMIN - platform.CapSysAdmin)
	_ = uint(platform.CapSysAdmin - unix.CAP_SYS_ADMIN)
	_ = uint(capability.CAP_SYS_ADMIN - platform.CapSysAdmin)
	_ = uint(platform.CapSysAdmin - capability.CAP_SYS_ADMIN)
	_ = uint(unix.PR_SET_DUMPABLE - platform.PrSetDumpable)
	_ = uint(platform.PrSetDumpable - unix.PR_SET_DUMPABLE)
	_ = uint(unix.PR_GET_SECCOMP - platform.PrGetSeccomp)
	_ = uint(platform.PrGetSeccomp - unix.PR_GET_SECCOMP)
	_ = uint(unix.PR_SET_SECCOMP - platform.PrSetSeccomp)
	_ = uint(platform.PrSetSeccomp - unix.PR_SET_SECCOMP)
)

// Seccomp filter actions and mode.
const (
	_ = uint(unix.SECCOMP_RET_ALLOW - platform.ActAllow)
	_ = uint(platform.ActAllow - unix.SECCOMP_RET_ALLOW)
	_ = uint((unix.SECCOMP_RET_ERRNO | uint32(unix.ENOSYS)) -
		platform.ActErrnoEnosys)
	_ = uint(platform.ActErrnoEnosys -
		(unix.SECCOMP_RET_ERRNO | uint32(unix.ENOSYS)))
	_ = uint(unix.SECCOMP_MODE_FILTER - platform.SeccompModeFilter)
	_ = uint(platform.SeccompModeFilter - unix.SECCOMP_MODE_FILTER)
)
