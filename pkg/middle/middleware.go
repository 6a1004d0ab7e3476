package middle

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	zap "go.uber.org/zap"
)

// Stages slower than this are reported at warn level.
var SlowStage = 1 * time.Second

// NewRunID returns a unique ID that tags every log line of one run.
func NewRunID() string {
	return "run-" + uuid.New().String()
}

// Stage runs fn and logs how long it took. A panic in fn comes back as an
// error.
func Stage(logger *zap.Logger, name string, fn func() error) (err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Stage panicked",
				zap.String("stage", name),
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("%s: internal error: %v", name, r)
		}

		duration := time.Since(start)
		logger.Debug("Stage completed",
			zap.String("stage", name),
			zap.Duration("duration", duration),
			zap.Bool("ok", err == nil),
		)

		if duration > SlowStage {
			logger.Warn("Slow stage",
				zap.String("stage", name),
				zap.Duration("duration", duration),
			)
		}
	}()

	return fn()
}
