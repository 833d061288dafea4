// Package classifier is the public API of the retinopathy classifier.
//
// It wraps the compiled-in fixed-point network and exposes one-shot
// classification of samples and images.
//
// Example usage:
//
//	import "github.com/born-ml/drnet/classifier"
//
//	c := classifier.New()
//	res, err := c.ClassifyImage("fundus.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Prediction: %d (%s)\n", res.Index, res.Label)
package classifier

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/born-ml/drnet/internal/cycles"
	"github.com/born-ml/drnet/internal/engine"
	"github.com/born-ml/drnet/internal/model"
	"github.com/born-ml/drnet/internal/preprocess"
)

// Result is the outcome of one classification.
type Result = engine.Result

// InputSize is the sample length in bytes.
const InputSize = model.InputSize

// ErrBusy is returned by the underlying engine when a pass is in progress.
// Classifier serializes its callers and never returns it.
var ErrBusy = engine.ErrBusy

// Classifier runs the compiled-in network. It is safe for concurrent use;
// passes are serialized.
type Classifier struct {
	mu  sync.Mutex
	eng *engine.Orchestrator
	n   int
}

// Option configures a Classifier.
type Option func(*engine.Options)

// WithLogger sets the logger for pass diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(o *engine.Options) { o.Logger = log }
}

// WithCycleHz sets the cycle counter rate used for Result.Cycles.
func WithCycleHz(hz uint64) Option {
	return func(o *engine.Options) { o.Counter = cycles.NewClock(hz) }
}

// New returns a Classifier over the compiled-in model.
func New(opts ...Option) *Classifier {
	o := engine.Options{Banner: model.Banner()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Classifier{eng: engine.New(model.Network(), model.Classes(), o)}
}

// Classes returns the class labels, index-aligned with Result.Index.
func (c *Classifier) Classes() []string {
	return model.Classes()
}

// Classify runs one pass over a sample of InputSize bytes, each in [0, 127].
func (c *Classifier) Classify(sample []int8) (Result, error) {
	if len(sample) != InputSize {
		return Result{}, fmt.Errorf("sample has %d bytes, expected %d", len(sample), InputSize)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.eng.Run(c.n, sample)
}

// ClassifyImage loads a JPEG or PNG image, converts it to a sample and
// classifies it.
func (c *Classifier) ClassifyImage(path string) (Result, error) {
	sample, err := preprocess.File(path, preprocess.Geometry{
		Width:    model.ImageWidth,
		Height:   model.ImageHeight,
		Channels: model.ImageChannels,
	})
	if err != nil {
		return Result{}, err
	}
	return c.Classify(sample)
}
