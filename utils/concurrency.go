package utils

import (
	"context"
	"net/http"
	"sync"

	"github.com/CPU-commits/Intranet_BDirectorio/res"
	"golang.org/x/sync/semaphore"
)

// Concurrency runs count jobs with at most weight of them in flight. The
// first job to report an error cancels the context handed to the rest, and
// that error is returned once every started job has finished.
func Concurrency(
	parent context.Context,
	weight int64,
	count int,
	do func(ctx context.Context, index int, setError func(errRes *res.ErrorRes)),
) *res.ErrorRes {
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr *res.ErrorRes

	sem := semaphore.NewWeighted(weight)
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	setError := func(errRes *res.ErrorRes) {
		once.Do(func() {
			firstErr = errRes
			cancel()
		})
	}

	for i := 0; i < count; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Cancelled by a failed job or by the caller
			break
		}
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer sem.Release(1)

			do(ctx, index, setError)
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	if err := parent.Err(); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return nil
}
