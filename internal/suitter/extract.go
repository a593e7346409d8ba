package suitter

import (
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
	"github.com/suitter-labs/suitter-indexer/internal/query"
)

// ExtractCreatedIDs returns the ids of objects of contract struct structName
// that a transaction created, in object-change order and without duplicates
func ExtractCreatedIDs(resp *sui.TransactionBlockResponse, contract query.Contract, structName string) []domain.ObjectID {
	if resp == nil {
		return nil
	}

	var ids []domain.ObjectID
	seen := make(map[domain.ObjectID]struct{})
	for _, change := range resp.ObjectChanges {
		if change.Type != sui.OBJECT_CHANGE_CREATED && change.Type != sui.OBJECT_CHANGE_PUBLISHED {
			continue
		}
		if change.ObjectID == "" || !contract.Owns(change.ObjectType, structName) {
			continue
		}

		id := domain.ObjectID(change.ObjectID)
		if _, ok := seen[id.Normalized()]; ok {
			continue
		}
		seen[id.Normalized()] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}
