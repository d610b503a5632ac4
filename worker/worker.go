// Package worker runs CPU bound simulation work on a bounded goroutine pool. Panics in
// submitted tasks are reported to sentry instead of crashing the process.
package worker

import (
	"fmt"
	"runtime"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/scout/oerror"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// Pool is a bounded pool of goroutines.
type Pool struct {
	p   *ants.Pool
	log *logrus.Logger
}

// NewPool creates a pool running at most size tasks at once. A size of zero or less
// uses one goroutine per CPU.
func NewPool(size int, log *logrus.Logger) (*Pool, error) {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	p, err := ants.NewPool(size,
		ants.WithPreAlloc(true),
		ants.WithPanicHandler(func(v any) {
			log.Errorf("worker panic: %v", v)
			report(v, nil)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &Pool{p: p, log: log}, nil
}

// Submit runs f on the pool, blocking while every worker is busy. If the pool cannot
// accept f, it is run on the calling goroutine.
func (p *Pool) Submit(f func()) {
	if err := p.p.Submit(f); err != nil {
		p.log.Debugf("worker pool rejected task, running inline: %v", err)
		f()
	}
}

// Release stops the pool. Tasks already running finish.
func (p *Pool) Release() {
	p.p.Release()
}

// Recover recovers a panic, logs it and reports it to sentry with the tags passed. The
// event is queued, not flushed: whoever initialised sentry flushes it on shutdown. It
// must be deferred directly:
//
//	defer worker.Recover(log, map[string]string{"actor": id})
func Recover(log logrus.FieldLogger, tags map[string]string) {
	if v := recover(); v != nil {
		if log != nil {
			log.Errorf("recovered panic: %v", v)
		}
		report(v, tags)
	}
}

func report(v any, tags map[string]string) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		for k, val := range tags {
			scope.SetTag(k, val)
		}
	})
	hub.Recover(oerror.New("%v", v))
}
