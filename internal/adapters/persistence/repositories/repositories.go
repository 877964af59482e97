package repositories

import "gorm.io/gorm"

// NewRepositories builds every repository on the same connection
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:      NewUserRepository(db),
		States:     NewStateRepository(db),
		Cities:     NewCityRepository(db),
		Parties:    NewPoliticalPartyRepository(db),
		Elections:  NewElectionRepository(db),
		Offices:    NewOfficeRepository(db),
		Candidates: NewCandidateRepository(db),
		Promises:   NewPromiseRepository(db),
	}
}
