package models

// Plan is a fixed bundle of credits offered for purchase. Amount is in
// major currency units; gateways receive amount * 100 minor units.
type Plan struct {
	ID      string `json:"id"`
	Credits int    `json:"credits"`
	Amount  int    `json:"amount"`
}

// Plan identifiers
const (
	PlanBasic    = "Basic"
	PlanAdvanced = "Advanced"
	PlanBusiness = "Business"
)

var plans = map[string]Plan{
	PlanBasic:    {ID: PlanBasic, Credits: 100, Amount: 10},
	PlanAdvanced: {ID: PlanAdvanced, Credits: 500, Amount: 50},
	PlanBusiness: {ID: PlanBusiness, Credits: 5000, Amount: 250},
}

// PlanByID resolves a plan id against the static plan table
func PlanByID(id string) (Plan, bool) {
	plan, ok := plans[id]
	return plan, ok
}

// PlanList returns all purchasable plans in ascending price order
func PlanList() []Plan {
	return []Plan{plans[PlanBasic], plans[PlanAdvanced], plans[PlanBusiness]}
}
