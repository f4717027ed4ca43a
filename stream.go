/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kindstore

import (
	"context"
	"time"

	"github.com/suparena/kindstore/storagemodels"
)

// Stream walks every page of kind through List and delivers each entity on
// the returned channel. The channel closes when the kind is exhausted, when
// ctx is done, or after the first error is delivered. Failed pages are not
// retried.
func (s *Store) Stream(ctx context.Context, kind string, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.BufferSize < 0 {
		options.BufferSize = 0
	}

	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)
	go s.streamWorker(ctx, kind, options, resultCh)
	return resultCh
}

func (s *Store) streamWorker(
	ctx context.Context,
	kind string,
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult,
) {
	defer close(resultCh)

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()

	reportProgress := func(cursor string) {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.StreamProgress{
			ItemsProcessed: itemIndex,
			PagesProcessed: pageNumber,
			Cursor:         cursor,
			StartTime:      startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(itemIndex) / elapsed
		}
		options.ProgressHandler(progress)
	}

	cursor := ""
	for {
		if ctx.Err() != nil {
			return
		}

		page, next, err := s.List(ctx, kind, options.PageSize, cursor)
		if err != nil {
			select {
			case <-ctx.Done():
			case resultCh <- storagemodels.StreamResult{
				Error: err,
				Meta: storagemodels.StreamMeta{
					Index:      itemIndex,
					PageNumber: pageNumber + 1,
					Timestamp:  time.Now(),
				},
			}:
			}
			return
		}
		pageNumber++

		for _, e := range page {
			result := storagemodels.StreamResult{
				Item: e,
				Meta: storagemodels.StreamMeta{
					Index:      itemIndex,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
			itemIndex++
		}

		reportProgress(next)
		if next == "" {
			return
		}
		cursor = next
	}
}
