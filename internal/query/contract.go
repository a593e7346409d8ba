package query

import (
	"strings"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
)

// Contract identifies the deployed Move package and module whose structs are indexed
type Contract struct {
	PackageID string
	Module    string
}

// StructType returns the fully qualified Move type of a contract struct
func StructType(packageID, module, name string) string {
	return packageID + "::" + module + "::" + name
}

// StructType returns the fully qualified Move type of struct name
func (c Contract) StructType(name string) string {
	return StructType(c.PackageID, c.Module, name)
}

// Owns reports whether moveType is struct name declared by this contract.
// Type arguments are ignored; package ids compare by normalized address.
// "0x2::suitter::Suit" and "0x0...02::suitter::Suit" are the same type.
func (c Contract) Owns(moveType, name string) bool {
	if i := strings.Index(moveType, "<"); i >= 0 {
		moveType = moveType[:i]
	}

	parts := strings.Split(moveType, "::")
	if len(parts) != 3 {
		return false
	}
	return parts[2] == name &&
		parts[1] == c.Module &&
		domain.ObjectID(parts[0]).Equal(domain.ObjectID(c.PackageID))
}
