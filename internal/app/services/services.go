package services

import (
	appauth "github.com/edufund/scholarhub/internal/app/auth"
	"github.com/edufund/scholarhub/internal/app/repositories"
	"github.com/edufund/scholarhub/internal/pkg/auth"
	"github.com/edufund/scholarhub/internal/pkg/filestorage"
)

// stringChanged reports whether a requested pointer field differs from the
// stored value. A nil request pointer means "leave unchanged".
func stringChanged(requested, current *string) bool {
	if requested == nil {
		return false
	}
	return current == nil || *current != *requested
}

// snapshotOrNil collapses an empty snapshot map to nil so the audit row
// stores SQL NULL instead of an empty object.
func snapshotOrNil(snapshot map[string]interface{}) interface{} {
	if len(snapshot) == 0 {
		return nil
	}
	return snapshot
}

// Services holds all the service instances
type Services struct {
	AuthService         AuthService
	StudentService      StudentService
	ApplicationService  ApplicationService
	SpotlightService    SpotlightService
	DonationService     DonationService
	HelpInterestService HelpInterestService
	FeaturedService     FeaturedService
	DocumentService     DocumentService
	ActivityLogService  ActivityLogService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage *filestorage.LocalStorage,
	downloadTTL int64,
) *Services {
	authzService := appauth.NewAuthorizationService()
	activityLog := NewActivityLogService(repos.ActivityLogRepository)

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, repos.StudentRepository, repos.TokenRepository, jwtService),
		StudentService:      NewStudentService(repos.StudentRepository),
		ApplicationService:  NewApplicationService(repos.ApplicationRepository, authzService, activityLog),
		SpotlightService:    NewSpotlightService(repos.SpotlightRepository, authzService, activityLog),
		DonationService:     NewDonationService(repos.DonationRepository, activityLog),
		HelpInterestService: NewHelpInterestService(repos.HelpInterestRepository, activityLog),
		FeaturedService:     NewFeaturedService(repos.ApplicationRepository, repos.SpotlightRepository, activityLog),
		DocumentService: NewDocumentService(
			repos.ApplicationRepository,
			repos.SpotlightRepository,
			repos.ApplicationDocuments,
			repos.SpotlightDocuments,
			storage,
			authzService,
			downloadTTL,
		),
		ActivityLogService: activityLog,
	}
}
