// Package matching ranks supply offers against a demand request.
//
// Two scores live here and must not be confused. The compatibility score is
// a bounded 0..100 measure of how well an offer fits a request and drives
// ranking. The performance score is an unbounded measure of raw hardware
// capability and only breaks price ties in SelectSingleMatch.
//
// All functions are pure: they never mutate their inputs and are safe for
// concurrent use.
package matching

import (
	"fmt"
	"math"
	"sort"

	"compute-market/internal/domain/market"
)

const (
	// DefaultLimit applies when FindBestMatches is called with a limit <= 0.
	DefaultLimit = 5

	baseScore             = 100.0
	gpuMismatchPenalty    = 20.0
	gpuExactMatchBonus    = 10.0
	priceWeight           = 30.0
	resourceWeight        = 20.0
	maxOverProvisioning   = 0.5
	minResourceEfficiency = 1 - maxOverProvisioning
)

// Compatibility explains how an offer fits a request. Score is RawScore
// clamped to [0, 100] and is meaningless for ranking when Compatible is false.
type Compatibility struct {
	Compatible bool
	Score      float64
	RawScore   float64
	Reasons    []string
}

// Candidate is an offer together with its compatibility against a request.
type Candidate struct {
	Supply        market.SupplyOffer
	Compatibility Compatibility
}

// Evaluate checks every hard constraint, collecting a reason for each failure,
// and scores the pair.
func Evaluate(demand market.DemandRequest, supply market.SupplyOffer) Compatibility {
	var reasons []string
	compatible := true
	score := baseScore

	if supply.CPUCores < demand.CPUCores {
		compatible = false
		reasons = append(reasons, fmt.Sprintf("Insufficient CPU cores: need %d, available %d", demand.CPUCores, supply.CPUCores))
	}
	if supply.GPUCount < demand.GPUCount {
		compatible = false
		reasons = append(reasons, fmt.Sprintf("Insufficient GPUs: need %d, available %d", demand.GPUCount, supply.GPUCount))
	}
	if supply.RAMGB < demand.RAMGB {
		compatible = false
		reasons = append(reasons, fmt.Sprintf("Insufficient RAM: need %dGB, available %dGB", demand.RAMGB, supply.RAMGB))
	}
	if supply.StorageGB < demand.StorageGB {
		compatible = false
		reasons = append(reasons, fmt.Sprintf("Insufficient storage: need %dGB, available %dGB", demand.StorageGB, supply.StorageGB))
	}
	if supply.PricePerHour.GreaterThan(demand.MaxPricePerHour) {
		compatible = false
		reasons = append(reasons, fmt.Sprintf("Price too high: %s > %s max budget", supply.PricePerHour.String(), demand.MaxPricePerHour.String()))
	}
	if GPUTypeConflict(demand, supply) {
		score -= gpuMismatchPenalty
		reasons = append(reasons, fmt.Sprintf("GPU type mismatch: requested %s, available %s", demand.GPUType, supply.GPUType))
	}
	if !supply.Available {
		compatible = false
		reasons = append(reasons, "Supply offer is not available")
	}
	if demand.Status != market.DemandActive {
		compatible = false
		reasons = append(reasons, "Demand request is not active")
	}

	if compatible {
		score += priceEfficiency(demand, supply) * priceWeight
		score += resourceEfficiency(demand, supply) * resourceWeight

		if demand.GPUType != "" && supply.GPUType == demand.GPUType {
			score += gpuExactMatchBonus
			reasons = append(reasons, fmt.Sprintf("Exact GPU type match: %s", supply.GPUType))
		}
	}

	final := clamp(score, 0, 100)
	if compatible {
		reasons = append(reasons, fmt.Sprintf("Compatibility score: %d/100", int(math.Round(final))))
	}

	return Compatibility{
		Compatible: compatible,
		Score:      final,
		RawScore:   score,
		Reasons:    reasons,
	}
}

// FindBestMatches returns up to limit compatible offers, best score first.
// Offers with equal scores keep their pool order.
func FindBestMatches(demand market.DemandRequest, pool []market.SupplyOffer, limit int) []Candidate {
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates := make([]Candidate, 0, len(pool))
	for _, supply := range pool {
		c := Evaluate(demand, supply)
		if !c.Compatible {
			continue
		}
		candidates = append(candidates, Candidate{Supply: supply, Compatibility: c})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Compatibility.Score > candidates[j].Compatibility.Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// SelectSingleMatch picks the cheapest offer satisfying every hard constraint,
// preferring the higher performance score on equal prices. Further ties go to
// the earliest offer in the pool.
func SelectSingleMatch(demand market.DemandRequest, pool []market.SupplyOffer) (market.SupplyOffer, bool) {
	var (
		best     market.SupplyOffer
		bestPerf float64
		found    bool
	)
	for _, supply := range pool {
		if !MeetsHardConstraints(demand, supply) {
			continue
		}
		perf := PerformanceScore(supply)
		if !found {
			best, bestPerf, found = supply, perf, true
			continue
		}
		switch supply.PricePerHour.Cmp(best.PricePerHour) {
		case -1:
			best, bestPerf = supply, perf
		case 0:
			if perf > bestPerf {
				best, bestPerf = supply, perf
			}
		}
	}
	return best, found
}

// MeetsHardConstraints is the pass/fail form of the checks in Evaluate.
// GPU type is a soft constraint and is not considered.
func MeetsHardConstraints(demand market.DemandRequest, supply market.SupplyOffer) bool {
	return supply.Available &&
		demand.Status == market.DemandActive &&
		supply.CPUCores >= demand.CPUCores &&
		supply.GPUCount >= demand.GPUCount &&
		supply.RAMGB >= demand.RAMGB &&
		supply.StorageGB >= demand.StorageGB &&
		supply.PricePerHour.LessThanOrEqual(demand.MaxPricePerHour)
}

// GPUTypeConflict reports whether both sides name a GPU type and the names differ.
func GPUTypeConflict(demand market.DemandRequest, supply market.SupplyOffer) bool {
	return demand.GPUType != "" && supply.GPUType != "" && demand.GPUType != supply.GPUType
}

func priceEfficiency(demand market.DemandRequest, supply market.SupplyOffer) float64 {
	maxPrice := demand.MaxPricePerHour.InexactFloat64()
	if maxPrice <= 0 {
		return 0
	}
	return (maxPrice - supply.PricePerHour.InexactFloat64()) / maxPrice
}

func resourceEfficiency(demand market.DemandRequest, supply market.SupplyOffer) float64 {
	cpu := efficiency(supply.CPUCores, demand.CPUCores)
	ram := efficiency(supply.RAMGB, demand.RAMGB)
	storage := efficiency(supply.StorageGB, demand.StorageGB)
	return (cpu + ram + storage) / 3
}

// efficiency rewards offers close to the requested amount; over-provisioning
// beyond 50% earns the floor.
func efficiency(have, need int) float64 {
	if need <= 0 {
		return minResourceEfficiency
	}
	excess := float64(have-need) / float64(need)
	return 1 - math.Min(maxOverProvisioning, excess)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
