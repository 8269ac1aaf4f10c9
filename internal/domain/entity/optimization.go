package entity

import "github.com/shopspring/decimal"

// OpportunityType classifica uma oportunidade de otimização.
type OpportunityType string

const (
	OpportunityRightsizing      OpportunityType = "rightsizing"
	OpportunityUnused           OpportunityType = "unused"
	OpportunityReservedInstance OpportunityType = "reserved_instance"
	OpportunityStorageClass     OpportunityType = "storage_class"
)

// EffortLevel indica o esforço de implementação de uma recomendação.
type EffortLevel string

const (
	EffortLow    EffortLevel = "low"
	EffortMedium EffortLevel = "medium"
	EffortHigh   EffortLevel = "high"
)

// OptimizationOpportunity is a recommended cost-saving action on a resource.
type OptimizationOpportunity struct {
	ServiceName      string          `json:"service_name"`
	ResourceID       string          `json:"resource_id,omitempty"`
	OpportunityType  OpportunityType `json:"opportunity_type"`
	CurrentCost      decimal.Decimal `json:"current_cost"`
	PotentialSavings decimal.Decimal `json:"potential_savings"`
	Recommendation   string          `json:"recommendation"`
	EffortLevel      EffortLevel     `json:"effort_level"`
}
