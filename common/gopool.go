package common

import (
	"context"
	"fmt"
	"math"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
)

// studioGoPool runs background animation jobs so a stalled remote
// operation never ties up a request handler.
var studioGoPool gopool.Pool

func init() {
	studioGoPool = gopool.NewPool("gopool.StudioPool", math.MaxInt32, gopool.NewConfig())
	studioGoPool.SetPanicHandler(func(ctx context.Context, i interface{}) {
		logger.SysError(fmt.Sprintf("panic in gopool.StudioPool: %v", i))
	})
}

func AnimateCtxGo(ctx context.Context, f func()) {
	studioGoPool.CtxGo(ctx, f)
}
