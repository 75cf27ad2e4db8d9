// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs process over items on workerCount goroutines and returns the
// results in input order. Items are independent: process reports per-item
// failures through R, so one item never stops the others. If ctx ends before
// every item has been handed out, Map stops feeding workers and returns
// ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) R,
) ([]R, error) {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) && len(items) > 0 {
		workerCount = len(items)
	}

	results := make([]R, len(items))
	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if ctx.Err() != nil {
					continue
				}
				results[idx] = process(ctx, items[idx])
			}
		}()
	}

feed:
	for idx := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- idx:
		}
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
