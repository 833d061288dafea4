// Package engine runs inference passes over samples handed over by the intake
// and reports their outcome.
//
// An Orchestrator owns the compiled network, the class table, a cycle counter
// and a reporter. Run performs one pass; Serve is the consumer loop that polls
// an intake.Intake and runs a pass per completed sample.
package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/drnet/internal/cycles"
	"github.com/born-ml/drnet/internal/intake"
	"github.com/born-ml/drnet/internal/qnn"
	"github.com/born-ml/drnet/internal/report"
)

// DefaultPoll is the consumer idle quantum between ready-flag polls.
const DefaultPoll = 100 * time.Millisecond

// FaultMessage is reported once when a pass faults.
const FaultMessage = "HardFault Occurred!"

// State is the orchestrator state.
type State int32

// Orchestrator states.
const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Result is the outcome of one pass.
type Result struct {
	Sample   int
	Index    int
	Label    string
	InBounds bool
	Cycles   uint32
}

// Options configure an Orchestrator. Zero values select defaults.
type Options struct {
	Counter  cycles.Counter
	Reporter report.Reporter
	Logger   *zap.Logger
	Poll     time.Duration
	Banner   report.Banner

	// BeforeRelease runs in Serve after a pass and before the sample is
	// released to the producer. The firmware uses it to discard bytes that
	// queued up in the receive ring during the pass.
	BeforeRelease func()
}

// Orchestrator sequences the layers of a network over one sample at a time.
type Orchestrator struct {
	net     *qnn.Network
	classes []string
	scratch *qnn.Scratch

	counter  cycles.Counter
	reporter report.Reporter
	log      *zap.Logger
	poll     time.Duration
	banner   report.Banner
	release  func()

	state   atomic.Int32
	samples atomic.Int64
}

// New returns an Orchestrator for net whose outputs are labelled by classes.
func New(net *qnn.Network, classes []string, opts Options) *Orchestrator {
	if opts.Counter == nil {
		opts.Counter = cycles.NewClock(0)
	}
	if opts.Reporter == nil {
		opts.Reporter = report.Discard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Poll <= 0 {
		opts.Poll = DefaultPoll
	}
	return &Orchestrator{
		net:      net,
		classes:  classes,
		scratch:  net.NewScratch(),
		counter:  opts.Counter,
		reporter: opts.Reporter,
		log:      opts.Logger,
		poll:     opts.Poll,
		banner:   opts.Banner,
		release:  opts.BeforeRelease,
	}
}

// State returns the current state.
func (o *Orchestrator) State() State {
	return State(o.state.Load())
}

// Samples returns the number of passes started so far.
func (o *Orchestrator) Samples() int {
	return int(o.samples.Load())
}

// Run performs one inference pass over sample and reports it as the given
// sample number. It fails with ErrBusy if another pass is in progress.
//
// The predicted index is checked against the class table; an out-of-range
// index is reported as a diagnostic and yields InBounds == false. Either way
// the orchestrator is Idle again when Run returns.
func (o *Orchestrator) Run(sampleNum int, sample []int8) (Result, error) {
	if !o.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return Result{}, ErrBusy
	}
	defer o.state.Store(int32(Idle))

	return o.pass(sampleNum, sample), nil
}

// pass runs one inference and reports it. The caller holds the Running state.
func (o *Orchestrator) pass(sampleNum int, sample []int8) Result {
	o.reporter.PassStarted(sampleNum)

	start := o.counter.Now()
	index := o.net.Forward(sample, o.scratch)
	end := o.counter.Now()

	res := Result{
		Sample: sampleNum,
		Index:  index,
		Cycles: cycles.Elapsed(start, end),
	}

	if index >= 0 && index < len(o.classes) {
		res.InBounds = true
		res.Label = o.classes[index]
		o.reporter.Prediction(sampleNum, index, res.Label, res.Cycles)
	} else {
		o.reporter.OutOfBounds(sampleNum, index)
	}

	if ce := o.log.Check(zap.DebugLevel, "pass complete"); ce != nil {
		ce.Write(
			zap.Int("sample", sampleNum),
			zap.Int("class", index),
			zap.Bool("in_bounds", res.InBounds),
			zap.Uint32("cycles", res.Cycles),
			zap.Int32s("logits", o.scratch.Logits()),
			zap.Duration("elapsed", o.elapsed(res.Cycles)),
		)
	}
	return res
}

// elapsed converts cycles to wall time when the counter knows its rate.
func (o *Orchestrator) elapsed(n uint32) time.Duration {
	if c, ok := o.counter.(interface{ Hz() uint64 }); ok {
		return cycles.Duration(n, c.Hz())
	}
	return 0
}

// Serve is the consumer loop. It announces the deployment, then polls in
// every poll quantum; each completed sample is classified and only then
// released back to the producer.
//
// A sample that becomes ready while a Run call holds the orchestrator stays
// pending and is picked up on a later poll.
//
// Serve returns nil when ctx is cancelled. If a pass panics the fault is
// reported once, the loop stops consuming and idles until ctx is cancelled,
// then returns ErrHalted.
func (o *Orchestrator) Serve(ctx context.Context, in *intake.Intake) error {
	if in.Capacity() != o.net.InputSize() {
		return fmt.Errorf("intake capacity %d does not match network input %d",
			in.Capacity(), o.net.InputSize())
	}

	o.reporter.Banner(o.banner)
	o.reporter.Ready()

	ticker := time.NewTicker(o.poll)
	defer ticker.Stop()

	for {
		if in.Ready() {
			done, err := o.consume(in)
			if err != nil {
				o.halt(ctx, err)
				return ErrHalted
			}
			if done {
				o.reporter.Ready()
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// consume classifies the pending sample and releases it. It reports false
// without touching the sample when another pass holds the orchestrator.
func (o *Orchestrator) consume(in *intake.Intake) (done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pass panicked: %v", r)
		}
	}()

	if !o.state.CompareAndSwap(int32(Idle), int32(Running)) {
		o.log.Debug("orchestrator busy, sample left pending")
		return false, nil
	}
	defer o.state.Store(int32(Idle))

	n := int(o.samples.Add(1))
	o.pass(n, in.Sample())
	if o.release != nil {
		o.release()
	}
	in.Release()
	return true, nil
}

func (o *Orchestrator) halt(ctx context.Context, cause error) {
	o.reporter.Fault(FaultMessage)
	o.log.Error("halting", zap.Error(cause))
	<-ctx.Done()
}
