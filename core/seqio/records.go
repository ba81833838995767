// core/seqio/records.go
package seqio

import "context"

// Records is the channel wrapper around StreamPathCtx used by the pipeline
// feed stage. Open errors for non-stdin paths are reported immediately;
// records then arrive on the returned channel until EOF or cancellation.
func Records(ctx context.Context, path string) (<-chan Record, error) {
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	go func() {
		defer close(out)
		_ = StreamPathCtx(ctx, path, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, nil
}
