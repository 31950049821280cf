package platform

// mmap values from sys/mman.h, used when mapping a child's stack by hand.
const (
	ProtNone     = 0
	MapGrowsDown = 0x00100
	MapStack     = 0x20000
)

// FileOffset is the type file offsets are carried in when they are passed
// through raw syscall words. It is assumed to be exactly one native word
// wide; internal/abi fails the build on any ABI where that stops being true.
type FileOffset int
