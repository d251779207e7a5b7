package matching

import (
	"strings"

	"compute-market/internal/domain/market"
)

var highEndGPUs = []string{"RTX 4090", "RTX 4080", "V100", "A100", "H100"}

// PerformanceScore is a raw capability heuristic used only to break price ties.
func PerformanceScore(supply market.SupplyOffer) float64 {
	score := float64(supply.CPUCores)

	score += float64(supply.GPUCount) * 10
	if isHighEndGPU(supply.GPUType) {
		score += float64(supply.GPUCount) * 5
	}

	score += float64(supply.RAMGB) * 0.1
	score += float64(supply.StorageGB) * 0.01
	return score
}

func isHighEndGPU(gpuType string) bool {
	if gpuType == "" {
		return false
	}
	for _, model := range highEndGPUs {
		if strings.Contains(gpuType, model) {
			return true
		}
	}
	return false
}
