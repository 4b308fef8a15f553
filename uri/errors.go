package uri

import (
	"github.com/pkg/errors"
)

// ErrNoSchemes is returned by NewAnalyzer when a scheme keyword list cannot
// be read or holds no keywords.
var ErrNoSchemes = errors.New("uri: scheme keyword list is missing or empty")
