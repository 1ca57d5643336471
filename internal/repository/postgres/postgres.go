package postgres

import (
	"database/sql"

	"volunteerhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.OrganizationRepository
	repository.MembershipRepository
	repository.ComplianceRepository
	repository.HoursRepository
	repository.OpportunityRepository
	repository.SnapshotRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		OrganizationRepository: NewOrganizationRepository(db),
		MembershipRepository:   NewMembershipRepository(db),
		ComplianceRepository:   NewComplianceRepository(db),
		HoursRepository:        NewHoursRepository(db),
		OpportunityRepository:  NewOpportunityRepository(db),
		SnapshotRepository:     NewSnapshotRepository(db),
	}
}
