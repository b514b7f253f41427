package reconciler

import (
	"bytes"
	"slices"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/samber/lo"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/model"
)

// AggregateBlock merges the observations of one block into a single request.
// The first observation fixes the key material and every other one must carry
// the same triple. ok is false when there is nothing to resolve.
func AggregateBlock(observations []model.BlockObservation) (req model.BlockRequest, ok bool, err error) {
	if len(observations) == 0 {
		return model.BlockRequest{}, false, nil
	}

	first := observations[0]
	req = model.BlockRequest{
		BlockHash:         first.BlockHash,
		Keys:              first.Keys,
		RequestedShortIDs: make(model.ShortIDSet, len(first.RequestedShortIDs)),
	}
	for _, obs := range observations {
		if obs.BlockHash != req.BlockHash {
			continue
		}
		if obs.Keys != req.Keys {
			return model.BlockRequest{}, false, &model.KeyConflictError{
				BlockHash: req.BlockHash,
				Want:      req.Keys,
				Got:       obs.Keys,
				Source:    obs.Source,
			}
		}
		req.RequestedShortIDs.Add(obs.RequestedShortIDs)
		req.Sources = append(req.Sources, obs.Source)
	}

	if len(req.RequestedShortIDs) == 0 {
		return model.BlockRequest{}, false, nil
	}
	return req, true, nil
}

// Aggregate groups observations by block hash and merges each group. Groups
// with conflicting key material are reported in errs and do not yield a request.
// Requests are ordered by block hash.
func Aggregate(observations []model.BlockObservation) (requests []model.BlockRequest, errs []error) {
	groups := lo.GroupBy(observations, func(obs model.BlockObservation) chainhash.Hash {
		return obs.BlockHash
	})
	order := lo.Keys(groups)
	slices.SortFunc(order, func(a, b chainhash.Hash) int {
		return bytes.Compare(a[:], b[:])
	})

	for _, hash := range order {
		req, ok, err := AggregateBlock(groups[hash])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			requests = append(requests, req)
		}
	}
	return requests, errs
}
