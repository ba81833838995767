// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/rs/zerolog"

	"repeatscan-core/engine"
	"repeatscan/internal/cmdutil"
	"repeatscan/internal/pipeline"
	"repeatscan/internal/writers"
)

// Options is the algorithm- and format-agnostic run configuration.
type Options struct {
	SeqFiles []string

	Algorithm string

	Threads int

	Quiet            bool
	NoRepeatExitCode int
}

type VisitorFunc[T any] func(engine.Report) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	NeedSeq() bool
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run wires scanner, pipeline, and writer together and maps every failure
// class to its exit code: 0 ok, 2 bad input, 3 I/O, 130 canceled. A closed
// downstream pipe is success.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	log zerolog.Logger,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	sc := engine.New(engine.Config{
		Algorithm: o.Algorithm,
		NeedSeq:   wf.NeedSeq(),
	})

	log.Debug().
		Str("algorithm", o.Algorithm).
		Int("threads", thr).
		Strs("files", o.SeqFiles).
		Msg("starting scan")

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, found, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr},
		o.SeqFiles,
		sc,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, "error:", perr)
		var ierr *pipeline.InputError
		if errors.As(perr, &ierr) {
			return 2
		}
		return 3
	}

	log.Debug().Int("sequences", total).Int("with_repeats", found).Msg("scan finished")

	if found == 0 {
		return o.NoRepeatExitCode
	}
	return 0
}
