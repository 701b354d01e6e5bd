package stock

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ItemKind distinguishes finished products from raw materials in the ledger.
type ItemKind int

const (
	ItemKindUnknown ItemKind = iota
	ItemKindProduct
	ItemKindMaterial
)

// getItemKindStrings returns a map of ItemKind values to their string representations.
func getItemKindStrings() map[ItemKind]string {
	return map[ItemKind]string{
		ItemKindUnknown:  "Unknown",
		ItemKindProduct:  "product",
		ItemKindMaterial: "material",
	}
}

// ItemKindFromString parses an item kind name.
func ItemKindFromString(s string) (ItemKind, error) {
	for k, name := range getItemKindStrings() {
		if name == s && k != ItemKindUnknown {
			return k, nil
		}
	}
	return ItemKindUnknown, errs.NewValueIsInvalidError("itemKind: " + s)
}

// String returns the wire name of the item kind.
func (k ItemKind) String() string {
	if s, ok := getItemKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects the zero and out-of-range values.
func (k ItemKind) Validate() error {
	if k != ItemKindProduct && k != ItemKindMaterial {
		return errs.NewValueIsInvalidError("itemKind")
	}
	return nil
}

// ActionKind classifies the direction of a stock movement.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionIn
	ActionOut
	ActionAdjust
)

// getActionKindStrings returns a map of ActionKind values to their string representations.
func getActionKindStrings() map[ActionKind]string {
	return map[ActionKind]string{
		ActionUnknown: "Unknown",
		ActionIn:      "in",
		ActionOut:     "out",
		ActionAdjust:  "adjust",
	}
}

// ActionKindFromString parses an action kind name.
func ActionKindFromString(s string) (ActionKind, error) {
	for k, name := range getActionKindStrings() {
		if name == s && k != ActionUnknown {
			return k, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidError("actionKind: " + s)
}

// String returns the wire name of the action kind.
func (k ActionKind) String() string {
	if s, ok := getActionKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Source records what triggered a stock movement: an order-coupled
// reservation/restore or a manual correction by an operator.
type Source int

const (
	SourceUnknown Source = iota
	SourceManual
	SourceOrder
)

// getSourceStrings returns a map of Source values to their string representations.
func getSourceStrings() map[Source]string {
	return map[Source]string{
		SourceUnknown: "Unknown",
		SourceManual:  "manual",
		SourceOrder:   "order",
	}
}

// SourceFromString parses a movement source name.
func SourceFromString(s string) (Source, error) {
	for k, name := range getSourceStrings() {
		if name == s && k != SourceUnknown {
			return k, nil
		}
	}
	return SourceUnknown, errs.NewValueIsInvalidError("source: " + s)
}

// String returns the wire name of the movement source.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Movement is one append-only entry in the stock ledger. Every balance
// mutation produces exactly one Movement recording the balance before and
// after, so the full history reconciles: currentQuantity equals the initial
// quantity plus the sum of all deltas.
//
// Movements are created only by Balance methods and persisted only by the
// stock repository; no other component writes them.
type Movement struct {
	ID             kernel.UUID
	ItemKind       ItemKind
	ItemCode       string
	Delta          int
	BeforeBalance  int
	AfterBalance   int
	ActionKind     ActionKind
	Source         Source
	RelatedOrderID *kernel.UUID
	ActorID        string
	Reason         string
	CreatedAt      time.Time
}
