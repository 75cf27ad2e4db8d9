package verifier

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/scid"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/pkg/workerpool"
)

// Result is the outcome of one lookup in a batch.
type Result struct {
	ChannelID scid.ShortChannelID
	Funding   *Funding
	Err       error
}

// ResolveBatch looks up ids concurrently on up to workers goroutines. Each
// lookup is independent; results are returned in the order of ids.
func ResolveBatch(ctx context.Context, resolver Resolver, workers int, ids []scid.ShortChannelID) ([]Result, error) {
	return workerpool.Map(ctx, workers, ids, func(ctx context.Context, id scid.ShortChannelID) Result {
		funding, err := resolver.Lookup(ctx, id)
		return Result{ChannelID: id, Funding: funding, Err: err}
	})
}
