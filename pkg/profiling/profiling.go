// Package profiling writes CPU and heap profiles requested on the command line.
package profiling

import (
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/glassexplorer/glassexplorer/pkg/logging"
	"go.uber.org/zap"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
	runtimeGC             = runtime.GC
)

// DoCPUProfiling starts a CPU profile into filePath and returns the func that stops it.
// Failures are logged and yield a no-op stop func.
func DoCPUProfiling(filePath string) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		logging.L().Error("could not create CPU profile", zap.String("path", filePath), zap.Error(err))
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logging.L().Error("could not start CPU profile", zap.Error(err))
		closeFile(f)
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		closeFile(f)
	}
}

// DoMemProfiling returns a func that writes a heap profile into filePath when called.
// Call it on exit to capture the final heap.
func DoMemProfiling(filePath string) (write func()) {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			logging.L().Error("could not create memory profile", zap.String("path", filePath), zap.Error(err))
			return
		}
		defer closeFile(f)
		runtimeGC()
		if err = pprofWriteHeapProfile(f); err != nil {
			logging.L().Error("could not write memory profile", zap.Error(err))
		}
	}
}

func closeFile(c io.Closer) {
	if err := c.Close(); err != nil {
		logging.L().Warn("failed to close profile", zap.Error(err))
	}
}
