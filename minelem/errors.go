package minelem

import "github.com/joshuapare/minkit/internal/bounds"

// ErrIndexOutOfRange indicates a [first, last) range that does not satisfy
// 0 <= first <= last <= len(s).
var ErrIndexOutOfRange = bounds.ErrOutOfRange
