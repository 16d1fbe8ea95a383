package dedupe

// Package dedupe provides the shared singleflight group used to
// deduplicate concurrent simulation requests. Using a centralized
// singleflight.Group ensures that only one simulation runs for a given
// (deckA, deckB, seed) key while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// SimulationGroup deduplicates match simulations keyed by the canonical
// deck keys and seed (e.g. "doge_pepe|cat_frog|42").
var SimulationGroup singleflight.Group
