package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	StudentRepository      *StudentRepository
	ApplicationRepository  *ApplicationRepository
	SpotlightRepository    *SpotlightRepository
	DonationRepository     *DonationRepository
	HelpInterestRepository *HelpInterestRepository
	ActivityLogRepository  *ActivityLogRepository
	ApplicationDocuments   *DocumentRepository
	SpotlightDocuments     *DocumentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		StudentRepository:      NewStudentRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		SpotlightRepository:    NewSpotlightRepository(db),
		DonationRepository:     NewDonationRepository(db),
		HelpInterestRepository: NewHelpInterestRepository(db),
		ActivityLogRepository:  NewActivityLogRepository(db),
		ApplicationDocuments:   NewApplicationDocumentRepository(db),
		SpotlightDocuments:     NewSpotlightDocumentRepository(db),
	}
}
