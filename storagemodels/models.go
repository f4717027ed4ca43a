/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// QueryParams defines a bounded query over one kind.
type QueryParams struct {
	// Kind is the namespace being listed.
	Kind string
	// Limit caps the number of records in one page. Zero means no limit.
	Limit int
	// StartCursor resumes after a previous page. Empty starts at the
	// beginning of the kind.
	StartCursor string
}

// NewQuery starts a query over all records of kind.
func NewQuery(kind string) *QueryParams {
	return &QueryParams{Kind: kind}
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit
	return q
}

// WithStart resumes the query at cursor.
func (q *QueryParams) WithStart(cursor string) *QueryParams {
	q.StartCursor = cursor
	return q
}

// QueryInfo describes where a page ended.
type QueryInfo struct {
	// EndCursor resumes the query after the last returned record.
	EndCursor string
	// MoreResults is false once the kind is exhausted.
	MoreResults bool
}

// NextCursor returns EndCursor when more results exist and "" otherwise.
func (qi QueryInfo) NextCursor() string {
	if !qi.MoreResults {
		return ""
	}
	return qi.EndCursor
}
