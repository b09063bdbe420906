package review

// Package review holds the status-transition rules and audit classification
// shared by every review-able entity (applications, spotlight applications,
// donations, help interests).

// EntityType identifies a review-able entity kind in the audit log.
type EntityType string

const (
	EntityApplication          EntityType = "application"
	EntitySpotlightApplication EntityType = "spotlight_application"
	EntityDonation             EntityType = "donation"
	EntityHelpInterest         EntityType = "help_interest"
	EntityFeaturedStudents     EntityType = "featured_students"
)

// ActionType classifies an admin mutation for the audit log.
type ActionType string

const (
	ActionStatusChange     ActionType = "status_change"
	ActionNotesUpdate      ActionType = "notes_update"
	ActionFeaturedChange   ActionType = "featured_change"
	ActionSpotlightReorder ActionType = "spotlight_reorder"
)

// Application and spotlight application statuses
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusNeedsInfo   = "needs_info"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

// Donation statuses
const (
	DonationPending   = "pending"
	DonationConfirmed = "confirmed"
	DonationCompleted = "completed"
	DonationFailed    = "failed"
	DonationRefunded  = "refunded"
)

// Help interest statuses
const (
	InterestNew       = "new"
	InterestContacted = "contacted"
	InterestConverted = "converted"
	InterestClosed    = "closed"
)

var statusSets = map[EntityType]map[string]struct{}{
	EntityApplication: {
		StatusPending:     {},
		StatusUnderReview: {},
		StatusNeedsInfo:   {},
		StatusApproved:    {},
		StatusRejected:    {},
	},
	EntitySpotlightApplication: {
		StatusPending:     {},
		StatusUnderReview: {},
		StatusNeedsInfo:   {},
		StatusApproved:    {},
		StatusRejected:    {},
	},
	EntityDonation: {
		DonationPending:   {},
		DonationConfirmed: {},
		DonationCompleted: {},
		DonationFailed:    {},
		DonationRefunded:  {},
	},
	EntityHelpInterest: {
		InterestNew:       {},
		InterestContacted: {},
		InterestConverted: {},
		InterestClosed:    {},
	},
}

// ValidStatus reports whether s is a recognized status for the entity type.
// Admin transitions are deliberately loose: any recognized value may be set
// from any other recognized value. There is no transition graph to consult.
func ValidStatus(entity EntityType, s string) bool {
	set, ok := statusSets[entity]
	if !ok {
		return false
	}
	_, ok = set[s]
	return ok
}

// Statuses returns the recognized status values for the entity type.
func Statuses(entity EntityType) []string {
	set := statusSets[entity]
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}

// StudentEditable reports whether a student may submit a field update for an
// application in the given status. The only student-initiated transition is
// needs_info -> under_review, forced atomically on edit.
func StudentEditable(status string) bool {
	return status == StatusNeedsInfo
}

// ActiveSpotlightStatus reports whether a spotlight application in this status
// counts against the one-active-per-student invariant.
func ActiveSpotlightStatus(status string) bool {
	return status == StatusPending || status == StatusUnderReview
}

// StampsConfirmer reports whether a donation status transition sets the
// confirmer identity and timestamp.
func StampsConfirmer(newStatus string) bool {
	return newStatus == DonationConfirmed || newStatus == DonationCompleted
}

// StampsFollowUp reports whether a help interest transition stamps follow-up
// metadata: only the first transition away from "new" does.
func StampsFollowUp(oldStatus, newStatus string) bool {
	return oldStatus == InterestNew && newStatus != InterestNew
}

// Classify maps a review update to its audit action type. Status changes take
// precedence over featured-flag changes; everything else is a notes update.
// A request changing both status and a featured flag is logged only as
// status_change, though both fields land in the value snapshots.
func Classify(statusChanged, featuredChanged bool) ActionType {
	switch {
	case statusChanged:
		return ActionStatusChange
	case featuredChanged:
		return ActionFeaturedChange
	default:
		return ActionNotesUpdate
	}
}
