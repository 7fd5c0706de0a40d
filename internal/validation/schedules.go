package validation

import (
	"github.com/form3115-prep/backend/internal/forms"
	"github.com/shopspring/decimal"
)

// Average gross receipts above this figure rule out the small business
// taxpayer exemption for the cash method.
var grossReceiptsThreshold = decimal.NewFromInt(30_000_000)

// ScheduleA validates a change in overall method of accounting.
func ScheduleA(data forms.ScheduleA) Result {
	r := newResult()

	if data.CurrentOverallMethod == "" {
		r.error("currentOverallMethod", "Current overall method is required")
	}

	if data.ProposedOverallMethod == "" {
		r.error("proposedOverallMethod", "Proposed overall method is required")
	} else if data.ProposedOverallMethod == data.CurrentOverallMethod {
		r.error("proposedOverallMethod", "Proposed method must be different from current method")
	}

	if data.GrossReceiptsTest == "" {
		r.error("grossReceiptsTest", "Gross receipts test answer is required")
	}

	if data.ProposedOverallMethod == "cash" && data.GrossReceiptsTest == "no" {
		receipts, err := decimal.NewFromString(data.AverageGrossReceipts)
		if err == nil && receipts.GreaterThan(grossReceiptsThreshold) {
			r.warn("averageGrossReceipts", "Cash method may not be available - average gross receipts exceed the small business threshold")
		}
	}

	return r
}

// ScheduleB validates a change in inventory method.
func ScheduleB(data forms.ScheduleB) Result {
	r := newResult()

	if data.CurrentInventoryMethod == "" {
		r.error("currentInventoryMethod", "Current inventory method is required")
	}

	if data.ProposedInventoryMethod == "" {
		r.error("proposedInventoryMethod", "Proposed inventory method is required")
	} else if data.ProposedInventoryMethod == data.CurrentInventoryMethod {
		r.error("proposedInventoryMethod", "Proposed method must be different from current method")
	}

	if data.LifoElection != "" && data.LifoElection != "not_applicable" {
		if data.LifoMethod == "" {
			r.error("lifoMethod", "LIFO method is required when a LIFO election is indicated")
		}

		if data.LifoPoolingMethod == "" {
			r.warn("lifoPoolingMethod", "LIFO pooling method is recommended")
		}
	}

	if data.Section263A == "yes" && data.Section263AMethod == "" {
		r.error("section263aMethod", "UNICAP method selection is required when Section 263A applies")
	}

	return r
}

// ScheduleC validates a change in depreciation or amortization method.
func ScheduleC(data forms.ScheduleC) Result {
	r := newResult()

	if data.AssetDescription == "" {
		r.error("assetDescription", "Asset description is required")
	}

	if data.CurrentMethod == "" {
		r.error("currentMethod", "Current depreciation method is required")
	}

	if data.ProposedMethod == "" {
		r.error("proposedMethod", "Proposed depreciation method is required")
	}

	if data.ChangeReason == "" {
		r.error("changeReason", "Reason for the change is required")
	}

	if data.DateAcquired == "" {
		r.warn("dateAcquired", "Date acquired is recommended")
	}

	if data.CurrentLife == "" {
		r.warn("currentLife", "Current recovery period is recommended")
	}

	if data.ProposedLife == "" {
		r.warn("proposedLife", "Proposed recovery period is recommended")
	}

	return r
}

// ScheduleD validates a change in long-term contract method.
func ScheduleD(data forms.ScheduleD) Result {
	r := newResult()

	if data.ContractType == "" {
		r.error("contractType", "Contract type is required")
	}

	if data.ContractDescription == "" {
		r.error("contractDescription", "Contract description is required")
	}

	if data.CurrentMethod == "" {
		r.error("currentMethod", "Current contract method is required")
	}

	if data.ProposedMethod == "" {
		r.error("proposedMethod", "Proposed contract method is required")
	}

	if data.Section460Applies == "yes" && data.LookBackMethod == "" {
		r.warn("lookBackMethod", "Look-back method answer is recommended when Section 460 applies")
	}

	return r
}

// ScheduleE validates a mark-to-market election for traders and dealers.
func ScheduleE(data forms.ScheduleE) Result {
	r := newResult()

	if data.TraderStatus == "" {
		r.error("traderStatus", "Trader or dealer status is required")
	}

	if data.SecurityTypes == "" {
		r.error("securityTypes", "Types of securities are required")
	}

	if data.Section475Election == "" {
		r.error("section475Election", "Section 475 election status is required")
	} else if data.Section475Election == "making" && data.ElectionYear == "" {
		r.error("electionYear", "Election year is required when making a Section 475 election")
	}

	if data.TraderStatus == "yes" {
		if data.TradingFrequency == "" {
			r.warn("tradingFrequency", "Trading frequency documentation is recommended for trader status")
		}

		if data.AverageHoldingPeriod == "" {
			r.warn("averageHoldingPeriod", "Average holding period documentation is recommended for trader status")
		}
	}

	return r
}
