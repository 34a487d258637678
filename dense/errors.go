package dense

import "errors"

var (
	// ErrIndexOutOfRange indicates a vertex index outside [0, Order()).
	ErrIndexOutOfRange = errors.New("dense: vertex index out of range")
	// ErrBadPotential indicates a potential vector whose length differs from Order().
	ErrBadPotential = errors.New("dense: potential length must equal vertex count")
)
