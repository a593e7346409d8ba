package sui

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/block-vision/sui-go-sdk/models"
)

// Object change and object error codes reported by the fullnode
const (
	OBJECT_CHANGE_CREATED   = "created"
	OBJECT_CHANGE_PUBLISHED = "published"

	OBJECT_ERROR_NOT_EXISTS = "notExists"
	OBJECT_ERROR_DELETED    = "deleted"

	EXECUTION_STATUS_SUCCESS = "success"
	EXECUTION_STATUS_FAILURE = "failure"
)

// ObjectDataOptions selects which parts of an object the fullnode returns
type ObjectDataOptions struct {
	ShowType    bool `json:"showType,omitempty"`
	ShowOwner   bool `json:"showOwner,omitempty"`
	ShowContent bool `json:"showContent,omitempty"`
}

func (o ObjectDataOptions) model() models.SuiObjectDataOptions {
	return models.SuiObjectDataOptions{
		ShowType:    o.ShowType,
		ShowOwner:   o.ShowOwner,
		ShowContent: o.ShowContent,
	}
}

// ContentOptions is the option set used by every decode path
var ContentOptions = ObjectDataOptions{
	ShowType:    true,
	ShowContent: true,
}

// ObjectResponse is the envelope returned for each requested object
type ObjectResponse struct {
	Data  *ObjectData          `json:"data,omitempty"`
	Error *ObjectResponseError `json:"error,omitempty"`
}

// ObjectResponseError describes why an object could not be returned
type ObjectResponseError struct {
	Code     string `json:"code"`
	ObjectID string `json:"object_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Gone reports whether the object no longer exists on chain
func (e *ObjectResponseError) Gone() bool {
	return e != nil && (e.Code == OBJECT_ERROR_NOT_EXISTS || e.Code == OBJECT_ERROR_DELETED)
}

// ObjectData is the object payload
type ObjectData struct {
	ObjectID string          `json:"objectId"`
	Version  string          `json:"version"`
	Digest   string          `json:"digest"`
	Type     string          `json:"type,omitempty"`
	Owner    json.RawMessage `json:"owner,omitempty"`
	Content  *MoveContent    `json:"content,omitempty"`
}

// MoveContent is the parsed Move value of an object
type MoveContent struct {
	DataType          string                     `json:"dataType"`
	Type              string                     `json:"type,omitempty"`
	HasPublicTransfer bool                       `json:"hasPublicTransfer,omitempty"`
	Fields            map[string]json.RawMessage `json:"fields,omitempty"`
}

// ObjectFilter restricts owned-object queries
type ObjectFilter struct {
	StructType string `json:"StructType,omitempty"`
}

// OwnedObjectsQuery is the query argument of suix_getOwnedObjects
type OwnedObjectsQuery struct {
	Filter  *ObjectFilter      `json:"filter,omitempty"`
	Options *ObjectDataOptions `json:"options,omitempty"`
}

func (q OwnedObjectsQuery) model() models.SuiObjectResponseQuery {
	var query models.SuiObjectResponseQuery
	if q.Filter != nil && q.Filter.StructType != "" {
		query.Filter = map[string]interface{}{"StructType": q.Filter.StructType}
	}
	if q.Options != nil {
		query.Options = q.Options.model()
	}
	return query
}

// OwnedObjectsPage is one page of owned objects
type OwnedObjectsPage struct {
	Data        []ObjectResponse `json:"data"`
	NextCursor  *string          `json:"nextCursor,omitempty"`
	HasNextPage bool             `json:"hasNextPage"`
}

// TransactionBlockOptions selects which parts of a transaction block are returned
type TransactionBlockOptions struct {
	ShowInput          bool `json:"showInput,omitempty"`
	ShowEffects        bool `json:"showEffects,omitempty"`
	ShowEvents         bool `json:"showEvents,omitempty"`
	ShowObjectChanges  bool `json:"showObjectChanges,omitempty"`
	ShowBalanceChanges bool `json:"showBalanceChanges,omitempty"`
}

func (o TransactionBlockOptions) model() models.SuiTransactionBlockOptions {
	return models.SuiTransactionBlockOptions{
		ShowInput:          o.ShowInput,
		ShowEffects:        o.ShowEffects,
		ShowEvents:         o.ShowEvents,
		ShowObjectChanges:  o.ShowObjectChanges,
		ShowBalanceChanges: o.ShowBalanceChanges,
	}
}

// TransactionBlockResponse is the result of executing or fetching a transaction block
type TransactionBlockResponse struct {
	Digest        string              `json:"digest"`
	Effects       *TransactionEffects `json:"effects,omitempty"`
	ObjectChanges []ObjectChange      `json:"objectChanges,omitempty"`
	Errors        []string            `json:"errors,omitempty"`
}

// Failed reports whether execution effects signal an on-chain failure
func (r *TransactionBlockResponse) Failed() (bool, string) {
	if r == nil || r.Effects == nil {
		return false, ""
	}
	if r.Effects.Status.Status == EXECUTION_STATUS_FAILURE {
		return true, r.Effects.Status.Error
	}
	return false, ""
}

// TransactionEffects is the effects summary of a transaction
type TransactionEffects struct {
	Status  ExecutionStatus  `json:"status"`
	GasUsed GasCostSummary   `json:"gasUsed"`
	Created []OwnedObjectRef `json:"created,omitempty"`
}

// ExecutionStatus is success or failure plus the abort message
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// GasCostSummary carries u64 amounts encoded as decimal strings
type GasCostSummary struct {
	ComputationCost         string `json:"computationCost"`
	StorageCost             string `json:"storageCost"`
	StorageRebate           string `json:"storageRebate"`
	NonRefundableStorageFee string `json:"nonRefundableStorageFee"`
}

// Total returns computation + storage - rebate in MIST, floored at zero
func (g GasCostSummary) Total() (uint64, error) {
	computation, err := parseAmount(g.ComputationCost)
	if err != nil {
		return 0, fmt.Errorf("invalid computation cost: %w", err)
	}
	storage, err := parseAmount(g.StorageCost)
	if err != nil {
		return 0, fmt.Errorf("invalid storage cost: %w", err)
	}
	rebate, err := parseAmount(g.StorageRebate)
	if err != nil {
		return 0, fmt.Errorf("invalid storage rebate: %w", err)
	}

	if computation+storage < rebate {
		return 0, nil
	}
	return computation + storage - rebate, nil
}

func parseAmount(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}

// OwnedObjectRef is an object reference together with its owner
type OwnedObjectRef struct {
	Owner     json.RawMessage `json:"owner,omitempty"`
	Reference ObjectRef       `json:"reference"`
}

// ObjectRef identifies a specific object version
type ObjectRef struct {
	ObjectID string `json:"objectId"`
	Version  string `json:"version,omitempty"`
	Digest   string `json:"digest,omitempty"`
}

// ObjectChange is one entry of a transaction's object change list
type ObjectChange struct {
	Type       string `json:"type"`
	Sender     string `json:"sender,omitempty"`
	ObjectType string `json:"objectType,omitempty"`
	ObjectID   string `json:"objectId,omitempty"`
	PackageID  string `json:"packageId,omitempty"`
	Version    string `json:"version,omitempty"`
	Digest     string `json:"digest,omitempty"`
}

// DryRunResponse is the result of sui_dryRunTransactionBlock
type DryRunResponse struct {
	Effects       TransactionEffects `json:"effects"`
	ObjectChanges []ObjectChange     `json:"objectChanges,omitempty"`
}
