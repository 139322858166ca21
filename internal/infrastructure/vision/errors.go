package vision

import "errors"

// ErrNotEnabled сборка без OpenCV
var ErrNotEnabled = errors.New("gocv build tag is not enabled")
