package validation_test

import (
	"testing"

	"github.com/form3115-prep/backend/internal/forms"
	"github.com/form3115-prep/backend/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestScheduleAMethodsMustDiffer(t *testing.T) {
	r := validation.ScheduleA(forms.ScheduleA{
		CurrentOverallMethod:  "cash",
		ProposedOverallMethod: "cash",
		GrossReceiptsTest:     "yes",
	})

	assert.False(t, r.Valid())
	assert.Equal(t, "Proposed method must be different from current method", r.Errors["proposedOverallMethod"])
}

func TestScheduleAValid(t *testing.T) {
	r := validation.ScheduleA(forms.ScheduleA{
		CurrentOverallMethod:  "accrual",
		ProposedOverallMethod: "cash",
		GrossReceiptsTest:     "yes",
	})

	assert.True(t, r.Valid())
	assert.Empty(t, r.Warnings)
}

func TestScheduleAGrossReceiptsWarning(t *testing.T) {
	r := validation.ScheduleA(forms.ScheduleA{
		CurrentOverallMethod:  "accrual",
		ProposedOverallMethod: "cash",
		GrossReceiptsTest:     "no",
		AverageGrossReceipts:  "35000000",
	})

	assert.True(t, r.Valid())
	assert.Contains(t, r.Warnings, "averageGrossReceipts")
}

func TestScheduleAGrossReceiptsBelowThreshold(t *testing.T) {
	r := validation.ScheduleA(forms.ScheduleA{
		CurrentOverallMethod:  "accrual",
		ProposedOverallMethod: "cash",
		GrossReceiptsTest:     "no",
		AverageGrossReceipts:  "25000000",
	})

	assert.Empty(t, r.Warnings)
}

func TestScheduleBLifoConditionals(t *testing.T) {
	r := validation.ScheduleB(forms.ScheduleB{
		CurrentInventoryMethod:  "fifo",
		ProposedInventoryMethod: "lifo",
		LifoElection:            "initial",
	})

	assert.Contains(t, r.Errors, "lifoMethod")
	assert.Contains(t, r.Warnings, "lifoPoolingMethod")
}

func TestScheduleBLifoNotApplicable(t *testing.T) {
	r := validation.ScheduleB(forms.ScheduleB{
		CurrentInventoryMethod:  "fifo",
		ProposedInventoryMethod: "average_cost",
		LifoElection:            "not_applicable",
	})

	assert.True(t, r.Valid())
}

func TestScheduleBSection263A(t *testing.T) {
	r := validation.ScheduleB(forms.ScheduleB{
		CurrentInventoryMethod:  "fifo",
		ProposedInventoryMethod: "average_cost",
		Section263A:             "yes",
	})

	assert.Equal(t, "UNICAP method selection is required when Section 263A applies", r.Errors["section263aMethod"])
}

func TestScheduleCRequiredAndRecommended(t *testing.T) {
	r := validation.ScheduleC(forms.ScheduleC{})

	for _, field := range []string{"assetDescription", "currentMethod", "proposedMethod", "changeReason"} {
		assert.Contains(t, r.Errors, field)
	}
	for _, field := range []string{"dateAcquired", "currentLife", "proposedLife"} {
		assert.Contains(t, r.Warnings, field)
	}
}

func TestScheduleDSection460(t *testing.T) {
	r := validation.ScheduleD(forms.ScheduleD{
		ContractType:        "construction",
		ContractDescription: "Multi-year commercial construction contracts",
		CurrentMethod:       "completed_contract",
		ProposedMethod:      "percentage_of_completion",
		Section460Applies:   "yes",
	})

	assert.True(t, r.Valid())
	assert.Contains(t, r.Warnings, "lookBackMethod")
}

func TestScheduleEElectionYear(t *testing.T) {
	r := validation.ScheduleE(forms.ScheduleE{
		TraderStatus:       "no",
		SecurityTypes:      "equities",
		Section475Election: "making",
	})

	assert.Equal(t, "Election year is required when making a Section 475 election", r.Errors["electionYear"])
}

func TestScheduleETraderStatusWarnings(t *testing.T) {
	r := validation.ScheduleE(forms.ScheduleE{
		TraderStatus:       "yes",
		SecurityTypes:      "equities and options",
		Section475Election: "already_made",
	})

	assert.True(t, r.Valid())
	assert.Contains(t, r.Warnings, "tradingFrequency")
	assert.Contains(t, r.Warnings, "averageHoldingPeriod")
}
