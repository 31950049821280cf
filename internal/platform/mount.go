package platform

// Mount flag values from sys/mount.h.
const (
	MountReadOnly  = 1
	MountNoSuid    = 2
	MountNoDev     = 4
	MountNoExec    = 8
	MountRemount   = 32
	MountBind      = 4096
	MountMove      = 8192
	MountRecursive = 16384
	MountPrivate   = 262144
)

// UnmountDetach lazily detaches a mount point during teardown.
const UnmountDetach = 2
