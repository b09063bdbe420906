package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edufund/scholarhub/internal/app/models/dto"
)

func intPtr(v int) *int { return &v }

func TestSortFeaturedList(t *testing.T) {
	list := []dto.FeaturedStudentResponse{
		{DisplayID: "APP-2025-00001", Source: dto.FeaturedSourceScholarship, Order: nil},
		{DisplayID: "SPT-2025-00002", Source: dto.FeaturedSourceSpotlight, Order: intPtr(2)},
		{DisplayID: "APP-2025-00003", Source: dto.FeaturedSourceScholarship, Order: intPtr(1)},
		{DisplayID: "SPT-2025-00004", Source: dto.FeaturedSourceSpotlight, Order: nil},
		{DisplayID: "SPT-2025-00005", Source: dto.FeaturedSourceSpotlight, Order: intPtr(1)},
	}

	sortFeaturedList(list)

	got := make([]string, 0, len(list))
	for _, item := range list {
		got = append(got, item.DisplayID)
	}

	// Ordered entries first by ascending order; ties keep insertion order
	// (scholarship rows are appended before spotlight rows); unordered last.
	assert.Equal(t, []string{
		"APP-2025-00003",
		"SPT-2025-00005",
		"SPT-2025-00002",
		"APP-2025-00001",
		"SPT-2025-00004",
	}, got)
}

func TestSortFeaturedListEmpty(t *testing.T) {
	var list []dto.FeaturedStudentResponse
	sortFeaturedList(list)
	assert.Empty(t, list)
}
