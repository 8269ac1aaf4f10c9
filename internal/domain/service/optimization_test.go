package service

import (
	"testing"

	"github.com/diillson/aws-bill-analyzer-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func sampleOpportunities() []entity.OptimizationOpportunity {
	return []entity.OptimizationOpportunity{
		{ServiceName: "Amazon EC2", ResourceID: "i-0123456789abcdef0", OpportunityType: entity.OpportunityRightsizing, CurrentCost: dec("450.00"), PotentialSavings: dec("180.00"), EffortLevel: entity.EffortLow},
		{ServiceName: "Amazon RDS", ResourceID: "mydb-instance-1", OpportunityType: entity.OpportunityUnused, CurrentCost: dec("320.00"), PotentialSavings: dec("320.00"), EffortLevel: entity.EffortMedium},
		{ServiceName: "Amazon EC2", ResourceID: "i-0987654321fedcba0", OpportunityType: entity.OpportunityReservedInstance, CurrentCost: dec("800.00"), PotentialSavings: dec("240.00"), EffortLevel: entity.EffortLow},
		{ServiceName: "Amazon S3", ResourceID: "my-bucket-logs", OpportunityType: entity.OpportunityStorageClass, CurrentCost: dec("150.00"), PotentialSavings: dec("90.00"), EffortLevel: entity.EffortLow},
	}
}

func opportunityTypes(opps []entity.OptimizationOpportunity) []entity.OpportunityType {
	out := make([]entity.OpportunityType, len(opps))
	for i, o := range opps {
		out[i] = o.OpportunityType
	}
	return out
}

func TestRankOpportunities_NoFilter(t *testing.T) {
	ranked := RankOpportunities(sampleOpportunities(), entity.CostAnalysisRequest{})

	assert.Equal(t, []entity.OpportunityType{
		entity.OpportunityUnused,
		entity.OpportunityReservedInstance,
		entity.OpportunityRightsizing,
		entity.OpportunityStorageClass,
	}, opportunityTypes(ranked))
}

func TestRankOpportunities_SubstringFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter []string
		want   []entity.OpportunityType
	}{
		{name: "RDS substring", filter: []string{"RDS"}, want: []entity.OpportunityType{entity.OpportunityUnused}},
		{name: "full name", filter: []string{"Amazon EC2"}, want: []entity.OpportunityType{entity.OpportunityReservedInstance, entity.OpportunityRightsizing}},
		{name: "any term matches", filter: []string{"S3", "RDS"}, want: []entity.OpportunityType{entity.OpportunityUnused, entity.OpportunityStorageClass}},
		{name: "case sensitive", filter: []string{"rds"}, want: []entity.OpportunityType{}},
		{name: "no match", filter: []string{"Lambda"}, want: []entity.OpportunityType{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := RankOpportunities(sampleOpportunities(), entity.CostAnalysisRequest{ServicesFilter: tt.filter})
			assert.Equal(t, tt.want, opportunityTypes(ranked))
		})
	}
}

func TestRankOpportunities_StableOnTies(t *testing.T) {
	catalog := []entity.OptimizationOpportunity{
		{ResourceID: "first", PotentialSavings: dec("50")},
		{ResourceID: "second", PotentialSavings: dec("50.00")},
		{ResourceID: "third", PotentialSavings: dec("75")},
	}

	ranked := RankOpportunities(catalog, entity.CostAnalysisRequest{})

	ids := []string{ranked[0].ResourceID, ranked[1].ResourceID, ranked[2].ResourceID}
	assert.Equal(t, []string{"third", "first", "second"}, ids)
}

func TestTotalPotentialSavings(t *testing.T) {
	assert.Equal(t, "830.00", TotalPotentialSavings(sampleOpportunities()).StringFixed(2))
	assert.True(t, TotalPotentialSavings(nil).IsZero())
}
