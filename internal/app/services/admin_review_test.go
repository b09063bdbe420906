package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufund/scholarhub/internal/app/models"
	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/app/review"
)

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestPlanApplicationReviewNotesOnly(t *testing.T) {
	app := &models.Application{
		ApplicationID: "APP-2025-00042",
		Status:        review.StatusUnderReview,
	}
	req := &dto.AdminReviewApplicationRequest{
		ReviewerNotes: strPtr("missing bank statement"),
	}

	plan := planApplicationReview(app, req, 7, time.Now())

	assert.False(t, plan.statusChanged)
	assert.False(t, plan.featuredChanged)
	assert.Equal(t, review.ActionNotesUpdate, review.Classify(plan.statusChanged, plan.featuredChanged))

	require.Equal(t, req.ReviewerNotes, plan.update.ReviewerNotes)
	assert.Nil(t, plan.update.Status)
	assert.Nil(t, plan.update.ReviewedBy)
	assert.Nil(t, plan.update.ReviewedAt)

	// A notes-only edit must still produce before/after snapshots.
	require.NotNil(t, snapshotOrNil(plan.oldValue))
	require.NotNil(t, snapshotOrNil(plan.newValue))
	assert.Nil(t, plan.oldValue["reviewer_notes"])
	assert.Equal(t, "missing bank statement", plan.newValue["reviewer_notes"])
}

func TestPlanApplicationReviewNotesUnchanged(t *testing.T) {
	app := &models.Application{
		Status:        review.StatusUnderReview,
		ReviewerNotes: strPtr("missing bank statement"),
	}
	req := &dto.AdminReviewApplicationRequest{
		ReviewerNotes: strPtr("missing bank statement"),
	}

	plan := planApplicationReview(app, req, 7, time.Now())

	assert.Nil(t, plan.update.ReviewerNotes)
	assert.Nil(t, snapshotOrNil(plan.oldValue))
	assert.Nil(t, snapshotOrNil(plan.newValue))
}

func TestPlanApplicationReviewStatusChange(t *testing.T) {
	now := time.Now()
	app := &models.Application{Status: review.StatusPending}
	req := &dto.AdminReviewApplicationRequest{Status: strPtr(review.StatusApproved)}

	plan := planApplicationReview(app, req, 7, now)

	assert.True(t, plan.statusChanged)
	assert.Equal(t, review.ActionStatusChange, review.Classify(plan.statusChanged, plan.featuredChanged))
	require.NotNil(t, plan.update.ReviewedBy)
	assert.Equal(t, int64(7), *plan.update.ReviewedBy)
	require.NotNil(t, plan.update.ReviewedAt)
	assert.Equal(t, now, *plan.update.ReviewedAt)
	assert.Equal(t, review.StatusPending, plan.oldValue["status"])
	assert.Equal(t, review.StatusApproved, plan.newValue["status"])
}

func TestPlanApplicationReviewStatusUnchanged(t *testing.T) {
	app := &models.Application{Status: review.StatusApproved}
	req := &dto.AdminReviewApplicationRequest{Status: strPtr(review.StatusApproved)}

	plan := planApplicationReview(app, req, 7, time.Now())

	assert.False(t, plan.statusChanged)
	require.NotNil(t, plan.update.Status)
	assert.Nil(t, plan.update.ReviewedBy)
	assert.Nil(t, snapshotOrNil(plan.oldValue))
}

func TestPlanApplicationReviewStatusAndFeatured(t *testing.T) {
	now := time.Now()
	app := &models.Application{Status: review.StatusUnderReview}
	req := &dto.AdminReviewApplicationRequest{
		Status:           strPtr(review.StatusApproved),
		SpotlightEnabled: boolPtr(true),
		SpotlightOrder:   intPtr(3),
	}

	plan := planApplicationReview(app, req, 7, now)

	assert.True(t, plan.statusChanged)
	assert.True(t, plan.featuredChanged)
	// Status change wins the classification over featuring.
	assert.Equal(t, review.ActionStatusChange, review.Classify(plan.statusChanged, plan.featuredChanged))
	assert.Equal(t, false, plan.oldValue["spotlight_enabled"])
	assert.Equal(t, true, plan.newValue["spotlight_enabled"])
	require.NotNil(t, plan.update.SpotlightFeaturedAt)
	assert.Equal(t, now, *plan.update.SpotlightFeaturedAt)
	require.NotNil(t, plan.update.SpotlightOrder)
	assert.Equal(t, 3, *plan.update.SpotlightOrder)
}

func TestPlanApplicationReviewUnfeature(t *testing.T) {
	app := &models.Application{Status: review.StatusApproved, SpotlightEnabled: true}
	req := &dto.AdminReviewApplicationRequest{SpotlightEnabled: boolPtr(false)}

	plan := planApplicationReview(app, req, 7, time.Now())

	assert.True(t, plan.featuredChanged)
	assert.Equal(t, review.ActionFeaturedChange, review.Classify(plan.statusChanged, plan.featuredChanged))
	assert.True(t, plan.update.ClearFeaturedAt)
	assert.Nil(t, plan.update.SpotlightFeaturedAt)
	assert.Equal(t, true, plan.oldValue["spotlight_enabled"])
	assert.Equal(t, false, plan.newValue["spotlight_enabled"])
}

func TestPlanSpotlightReviewNotesOnly(t *testing.T) {
	spot := &models.SpotlightApplication{
		SpotlightID:   "SPT-2025-00007",
		Status:        review.StatusPending,
		ReviewerNotes: strPtr("draft"),
	}
	req := &dto.AdminReviewSpotlightRequest{ReviewerNotes: strPtr("story needs a photo")}

	plan := planSpotlightReview(spot, req, 7, time.Now())

	assert.False(t, plan.statusChanged)
	assert.False(t, plan.featuredChanged)
	assert.Equal(t, review.ActionNotesUpdate, review.Classify(plan.statusChanged, plan.featuredChanged))
	assert.Equal(t, strPtr("draft"), plan.oldValue["reviewer_notes"])
	assert.Equal(t, "story needs a photo", plan.newValue["reviewer_notes"])
}

func TestPlanSpotlightReviewFeatureStamps(t *testing.T) {
	now := time.Now()
	spot := &models.SpotlightApplication{Status: review.StatusApproved}
	req := &dto.AdminReviewSpotlightRequest{IsFeatured: boolPtr(true)}

	plan := planSpotlightReview(spot, req, 7, now)

	assert.True(t, plan.featuredChanged)
	require.NotNil(t, plan.update.FeaturedAt)
	assert.Equal(t, now, *plan.update.FeaturedAt)
	assert.Equal(t, false, plan.oldValue["is_featured"])
	assert.Equal(t, true, plan.newValue["is_featured"])
}

func TestPlanDonationReviewNotesOnly(t *testing.T) {
	donation := &models.Donation{
		DonationID: "DON-2025-00113",
		Status:     review.DonationPending,
	}
	req := &dto.AdminReviewDonationRequest{Notes: strPtr("donor called to confirm intent")}

	plan := planDonationReview(donation, req, 7, time.Now())

	assert.False(t, plan.statusChanged)
	assert.Equal(t, review.ActionNotesUpdate, review.Classify(plan.statusChanged, false))
	assert.Nil(t, plan.update.Status)
	assert.Nil(t, plan.update.ConfirmedBy)
	require.NotNil(t, snapshotOrNil(plan.newValue))
	assert.Nil(t, plan.oldValue["notes"])
	assert.Equal(t, "donor called to confirm intent", plan.newValue["notes"])
}

func TestPlanDonationReviewTransactionReferenceOnly(t *testing.T) {
	donation := &models.Donation{Status: review.DonationConfirmed}
	req := &dto.AdminReviewDonationRequest{TransactionReference: strPtr("WIRE-8841")}

	plan := planDonationReview(donation, req, 7, time.Now())

	assert.False(t, plan.statusChanged)
	assert.Nil(t, plan.oldValue["transaction_reference"])
	assert.Equal(t, "WIRE-8841", plan.newValue["transaction_reference"])
	require.Equal(t, req.TransactionReference, plan.update.TransactionReference)
}

func TestPlanDonationReviewConfirmStamps(t *testing.T) {
	now := time.Now()
	donation := &models.Donation{Status: review.DonationPending}
	req := &dto.AdminReviewDonationRequest{
		Status: strPtr(review.DonationConfirmed),
		Notes:  strPtr("funds received"),
	}

	plan := planDonationReview(donation, req, 7, now)

	assert.True(t, plan.statusChanged)
	require.NotNil(t, plan.update.ConfirmedBy)
	assert.Equal(t, int64(7), *plan.update.ConfirmedBy)
	require.NotNil(t, plan.update.ConfirmedAt)
	assert.Equal(t, now, *plan.update.ConfirmedAt)
	assert.Equal(t, review.DonationPending, plan.oldValue["status"])
	assert.Equal(t, review.DonationConfirmed, plan.newValue["status"])
	assert.Equal(t, "funds received", plan.newValue["notes"])
}

func TestStringChanged(t *testing.T) {
	assert.False(t, stringChanged(nil, nil))
	assert.False(t, stringChanged(nil, strPtr("kept")))
	assert.True(t, stringChanged(strPtr("new"), nil))
	assert.True(t, stringChanged(strPtr("new"), strPtr("old")))
	assert.False(t, stringChanged(strPtr("same"), strPtr("same")))
}
