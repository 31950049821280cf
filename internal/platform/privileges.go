package platform

// Capability values from linux/capability.h.
const (
	// CapabilityVersion3 is the versioned ABI tag expected by the capget and
	// capset syscalls.
	CapabilityVersion3 = 0x20080522

	CapSysAdmin = 21
)

// prctl option values from linux/prctl.h.
const (
	// PrSetDumpable toggles whether the process may be core-dumped and
	// ptraced.
	PrSetDumpable = 4

	PrGetSeccomp = 21
	PrSetSeccomp = 22
)
