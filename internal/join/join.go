// Package join resolves foreign-key references between independently fetched
// row sequences. Parents are indexed by id once, then primary rows look their
// references up in O(1); the alternative nested scan is quadratic and shows up
// quickly with a few thousand subscriptions.
package join

// Index builds an id lookup over a secondary row sequence. Pointers refer
// into the backing slice, so callers must not append to rows afterwards.
func Index[T any](rows []T, key func(*T) string) map[string]*T {
	idx := make(map[string]*T, len(rows))
	for i := range rows {
		idx[key(&rows[i])] = &rows[i]
	}
	return idx
}

// Lookup resolves an optional foreign key against an index. A nil or empty
// key, or a key with no matching parent, yields nil rather than an error; the
// primary row is kept either way.
func Lookup[T any](idx map[string]*T, fk *string) *T {
	if fk == nil || *fk == "" {
		return nil
	}
	return idx[*fk]
}

// LookupID resolves a required foreign key against an index, nil on miss
func LookupID[T any](idx map[string]*T, id string) *T {
	if id == "" {
		return nil
	}
	return idx[id]
}
