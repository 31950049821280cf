package platform

// Clone flag values from linux/sched.h, one distinct bit per isolation
// domain. These are passed straight into clone/unshare words when spawning an
// isolated child.
const (
	CloneNewMount = 0x00020000
	CloneNewUTS   = 0x04000000
	CloneNewIPC   = 0x08000000
	CloneNewUser  = 0x10000000
	CloneNewPID   = 0x20000000
	CloneNewNet   = 0x40000000
)

// UnshareAll requests every namespace the sandbox isolates.
const UnshareAll = CloneNewMount | CloneNewUTS | CloneNewIPC |
	CloneNewUser | CloneNewPID | CloneNewNet
