// Package resilience provides fault tolerance for calls into the document store.
//
// The circuitbreaker subpackage wraps github.com/sony/gobreaker and adds a
// StoreGuard that bounds every store call with a timeout. A timeout or an open
// circuit surfaces as circuitbreaker.ErrStoreUnavailable, which the HTTP layer
// maps to 503 with a Retry-After header. Calls are never retried.
//
// Usage Example:
//
//	guard := circuitbreaker.NewStoreGuard(circuitbreaker.StoreConfig(), 5*time.Second)
//	article, err := circuitbreaker.Call(ctx, guard, "article.get", func(ctx context.Context) (*entity.Article, error) {
//	    return repo.Get(ctx, id)
//	})
package resilience
