package platform

import "fmt"

// Network-interface control values from bits/ioctls.h and net/if.h. They are
// hard-coded here because the flags ioctls are driven through a hand-packed
// buffer rather than a generated binding; internal/abi pins every value
// against the real headers.
const (
	// IoctlGetIfFlags and IoctlSetIfFlags are the SIOCGIFFLAGS and
	// SIOCSIFFLAGS request numbers.
	IoctlGetIfFlags = 0x8913
	IoctlSetIfFlags = 0x8914

	// IfFlagUp marks an interface as administratively up.
	IfFlagUp = 0x1

	// IfNameSize is the fixed size of a kernel interface-name buffer,
	// including the trailing NUL.
	IfNameSize = 16

	// IfReqMinSize is the least the kernel reads through an ifreq pointer:
	// the name buffer plus the smallest union arm.
	IfReqMinSize = IfNameSize + 14
)

// IfReq is a hand-laid-out struct ifreq, sized for the interface-flags
// ioctls. Flags overlays the first two bytes of the kernel union and the
// trailing padding keeps the struct at the full union width.
type IfReq struct {
	Name  [IfNameSize]byte
	Flags int16
	_     [14]byte
}

// NewIfReq returns an IfReq with the interface name copied in. The name must
// leave room for the trailing NUL.
func NewIfReq(name string) (*IfReq, error) {
	if len(name) >= IfNameSize {
		return nil, fmt.Errorf(
			"interface name %q exceeds %d bytes", name, IfNameSize-1,
		)
	}

	var req IfReq
	copy(req.Name[:], name)

	return &req, nil
}
