//go:generate go run go.uber.org/mock/mockgen -source=opportunity.go -destination=../mocks/mock_opportunity_repository.go -package=mocks
package repositories

import (
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"

	"github.com/dgraph-io/badger/v4"
)

type IOpportunityRepository interface {
	SaveOpportunity(opportunity domain.Opportunity) error
	GetOpportunity(opportunityID string) (domain.Opportunity, error)
}

type OpportunityRepository struct {
	db *badger.DB
}

func NewOpportunityRepository(db *badger.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func opportunityKey(id string) string {
	return "opportunity:" + id
}

func (r OpportunityRepository) SaveOpportunity(opportunity domain.Opportunity) error {
	return update(r.db, func(txn *badger.Txn) error {
		return setJSON(txn, opportunityKey(opportunity.ID), opportunity)
	})
}

func (r OpportunityRepository) GetOpportunity(opportunityID string) (domain.Opportunity, error) {
	var opportunity domain.Opportunity
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		opportunity, err = getJSON[domain.Opportunity](txn, opportunityKey(opportunityID), apperrors.ErrOpportunityNotFound)
		return err
	})
	return opportunity, err
}
