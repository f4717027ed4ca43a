/*
Package errors provides semantic error types for kindstore.

Every façade operation fails with one of three kinds of error, each matched by a
sentinel through the standard errors.Is() function or the provided helpers:

	var (
	    ErrNotFound     = errors.New("entity not found")
	    ErrBackend      = errors.New("backend error")
	    ErrInvalidInput = errors.New("invalid input")
	)

Usage:

	book, err := store.Read(ctx, "Book", "42")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // errors.Code(err) == 404
	        return nil, fmt.Errorf("book %s does not exist", "42")
	    }
	    return nil, err
	}

BackendError keeps the store client's error unchanged behind Unwrap, so SDK
error types such as *types.ResourceNotFoundException remain reachable with
errors.As.
*/
package errors
