package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	tests := []struct {
		name   string
		entity EntityType
		status string
		want   bool
	}{
		{"application pending", EntityApplication, StatusPending, true},
		{"application approved", EntityApplication, StatusApproved, true},
		{"application unknown value", EntityApplication, "archived", false},
		{"spotlight needs_info", EntitySpotlightApplication, StatusNeedsInfo, true},
		{"spotlight donation status rejected", EntitySpotlightApplication, DonationConfirmed, false},
		{"donation refunded", EntityDonation, DonationRefunded, true},
		{"donation application status rejected", EntityDonation, StatusUnderReview, false},
		{"help interest converted", EntityHelpInterest, InterestConverted, true},
		{"help interest empty", EntityHelpInterest, "", false},
		{"unknown entity", EntityFeaturedStudents, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidStatus(tt.entity, tt.status))
		})
	}
}

func TestStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{StatusPending, StatusUnderReview, StatusNeedsInfo, StatusApproved, StatusRejected},
		Statuses(EntityApplication))
	assert.Empty(t, Statuses(EntityFeaturedStudents))
}

func TestStudentEditable(t *testing.T) {
	assert.True(t, StudentEditable(StatusNeedsInfo))

	for _, s := range []string{StatusPending, StatusUnderReview, StatusApproved, StatusRejected} {
		assert.False(t, StudentEditable(s), "status %q must not be student editable", s)
	}
}

func TestActiveSpotlightStatus(t *testing.T) {
	assert.True(t, ActiveSpotlightStatus(StatusPending))
	assert.True(t, ActiveSpotlightStatus(StatusUnderReview))

	// Terminal and needs_info submissions do not block a new one
	assert.False(t, ActiveSpotlightStatus(StatusNeedsInfo))
	assert.False(t, ActiveSpotlightStatus(StatusApproved))
	assert.False(t, ActiveSpotlightStatus(StatusRejected))
}

func TestStampsConfirmer(t *testing.T) {
	assert.True(t, StampsConfirmer(DonationConfirmed))
	assert.True(t, StampsConfirmer(DonationCompleted))
	assert.False(t, StampsConfirmer(DonationPending))
	assert.False(t, StampsConfirmer(DonationFailed))
	assert.False(t, StampsConfirmer(DonationRefunded))
}

func TestStampsFollowUp(t *testing.T) {
	// Only the first transition away from "new" stamps follow-up metadata
	assert.True(t, StampsFollowUp(InterestNew, InterestContacted))
	assert.True(t, StampsFollowUp(InterestNew, InterestClosed))

	assert.False(t, StampsFollowUp(InterestNew, InterestNew))
	assert.False(t, StampsFollowUp(InterestContacted, InterestConverted))
	assert.False(t, StampsFollowUp(InterestContacted, InterestNew))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ActionStatusChange, Classify(true, false))
	assert.Equal(t, ActionFeaturedChange, Classify(false, true))
	assert.Equal(t, ActionNotesUpdate, Classify(false, false))

	// Status wins when both change in one request
	assert.Equal(t, ActionStatusChange, Classify(true, true))
}
