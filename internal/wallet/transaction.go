package wallet

import (
	"fmt"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
)

// MoveCall is a single entry-function call of a programmable transaction
type MoveCall struct {
	Target        string        `json:"target"`
	TypeArguments []string      `json:"type_arguments,omitempty"`
	Arguments     []interface{} `json:"arguments"`
}

// Transaction is the unsigned transaction handed to the wallet
type Transaction struct {
	Sender    domain.ObjectID `json:"sender,omitempty"`
	Calls     []MoveCall      `json:"calls"`
	GasBudget uint64          `json:"gas_budget,omitempty"`
}

// Target formats a Move call target as package::module::function
func Target(packageID, module, function string) string {
	return fmt.Sprintf("%s::%s::%s", packageID, module, function)
}

// NewMoveCallTransaction wraps a single call into a transaction
func NewMoveCallTransaction(target string, arguments ...interface{}) Transaction {
	return Transaction{
		Calls: []MoveCall{
			{
				Target:    target,
				Arguments: arguments,
			},
		},
	}
}
