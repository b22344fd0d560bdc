package common

import (
	"fmt"

	"github.com/rtaylor52242/logo-animator-studio/common/logger"
)

// SafeGoroutine runs f on a new goroutine and turns a panic into an
// error log instead of a crashed process.
func SafeGoroutine(f func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.SysError(fmt.Sprintf("panic in goroutine: %v", r))
			}
		}()
		f()
	}()
}

