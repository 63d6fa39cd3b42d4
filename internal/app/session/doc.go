// Package session carries per-generation state through the pipeline.
//
// A Session memoizes lookups so every stage of one generation sees the same
// value, and it stages writes so they run together once the image exists:
//
//	s := session.New(ctx)
//	ctx = session.WithContext(ctx, s)
//
//	reading, err := session.FetchCtx(ctx, "weather", weather.Current)
//
//	_ = s.AddAction(session.NewAction("append history", appendFn, nil))
//	if err := s.Commit(ctx); err != nil {
//	    // executed actions were rolled back in reverse order
//	}
//
// Code running without a session (the CLI context command, tests) calls the
// fetch function directly; see Fetch.
package session
