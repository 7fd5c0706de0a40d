// Package forms defines the typed payloads for each part and schedule of
// the application form.
//
// Payloads are persisted on the filing as JSON text blobs. Every block has
// an explicit schema here so that validation and PDF mapping work over
// known shapes; yes/no questions stay strings because the form itself is a
// set of checkboxes, and an empty string means the question was never
// answered.
package forms

import (
	"github.com/shopspring/decimal"
)

// PartI identifies the filer.
type PartI struct {
	FilerName                 string `json:"filerName,omitempty"`
	FilerEin                  string `json:"filerEin,omitempty"`
	FilerAddress              string `json:"filerAddress,omitempty"`
	FilerCity                 string `json:"filerCity,omitempty"`
	FilerState                string `json:"filerState,omitempty"`
	FilerZip                  string `json:"filerZip,omitempty"`
	ContactName               string `json:"contactName,omitempty"`
	ContactPhone              string `json:"contactPhone,omitempty"`
	TaxYearBegin              string `json:"taxYearBegin,omitempty"`
	TaxYearEnd                string `json:"taxYearEnd,omitempty"`
	PrincipalBusinessActivity string `json:"principalBusinessActivity,omitempty"`
	PrincipalBusinessCode     string `json:"principalBusinessCode,omitempty"`

	// Paid preparer signature block. Only filled when the application is
	// prepared by someone other than the filer.
	PreparerName string `json:"preparerName,omitempty"`
	PreparerPtin string `json:"preparerPtin,omitempty"`
}

// PartII describes the requested method change.
type PartII struct {
	Dcn                string `json:"dcn,omitempty"`
	ChangeType         string `json:"changeType,omitempty"`
	ChangeDescription  string `json:"changeDescription,omitempty"`
	PresentMethod      string `json:"presentMethod,omitempty"`
	ProposedMethod     string `json:"proposedMethod,omitempty"`
	IsAutomaticChange  bool   `json:"isAutomaticChange,omitempty"`
	YearOfChangeReason string `json:"yearOfChangeReason,omitempty"`
	IrsConsentDate     string `json:"irsConsentDate,omitempty"`
}

// PartIII answers the eligibility questions. All questions are yes/no
// with dependent detail fields.
type PartIII struct {
	PriorMethodChange            string `json:"priorMethodChange,omitempty"`
	PriorMethodChangeYear        string `json:"priorMethodChangeYear,omitempty"`
	PriorMethodChangeDcn         string `json:"priorMethodChangeDcn,omitempty"`
	TransactionAdjustment        string `json:"transactionAdjustment,omitempty"`
	TransactionAdjustmentDetails string `json:"transactionAdjustmentDetails,omitempty"`
	ConsolidatedGroup            string `json:"consolidatedGroup,omitempty"`
	ParentName                   string `json:"parentName,omitempty"`
	ParentEin                    string `json:"parentEin,omitempty"`
	RelatedEntities              string `json:"relatedEntities,omitempty"`
	RelatedEntitiesDetails       string `json:"relatedEntitiesDetails,omitempty"`
	BooksAndRecords              string `json:"booksAndRecords,omitempty"`
	BooksAndRecordsExplanation   string `json:"booksAndRecordsExplanation,omitempty"`
	PriorRequest                 string `json:"priorRequest,omitempty"`
	PriorRequestDetails          string `json:"priorRequestDetails,omitempty"`
	UnderExamination             string `json:"underExamination,omitempty"`
	ExaminingOffice              string `json:"examiningOffice,omitempty"`
	ConferenceRequest            string `json:"conferenceRequest,omitempty"`
	AdditionalInfo               string `json:"additionalInfo,omitempty"`
}

// PartIV holds the Section 481(a) adjustment.
//
// The income figures are pointers because zero is a valid amount: a field
// that was never touched must be distinguishable from one set to zero.
type PartIV struct {
	Requires481a         string           `json:"requires481a,omitempty"`
	YearOfChange         string           `json:"yearOfChange,omitempty"`
	PresentMethodIncome  *decimal.Decimal `json:"presentMethodIncome,omitempty"`
	ProposedMethodIncome *decimal.Decimal `json:"proposedMethodIncome,omitempty"`
	AdjustmentAmount     *decimal.Decimal `json:"adjustmentAmount,omitempty"`
	AdjustmentDirection  string           `json:"adjustmentDirection,omitempty"`
	SpreadPeriod         string           `json:"spreadPeriod,omitempty"`
	YearOneAmount        *decimal.Decimal `json:"yearOneAmount,omitempty"`
	YearTwoAmount        *decimal.Decimal `json:"yearTwoAmount,omitempty"`
	YearThreeAmount      *decimal.Decimal `json:"yearThreeAmount,omitempty"`
	YearFourAmount       *decimal.Decimal `json:"yearFourAmount,omitempty"`
	CalculationMethod    string           `json:"calculationMethod,omitempty"`
	SupportingDocuments  string           `json:"supportingDocuments,omitempty"`
	HasNol               string           `json:"hasNol,omitempty"`
	NolAmount            *decimal.Decimal `json:"nolAmount,omitempty"`
	NolYears             string           `json:"nolYears,omitempty"`
}

// ScheduleA covers a change in overall method of accounting.
type ScheduleA struct {
	CurrentOverallMethod     string `json:"currentOverallMethod,omitempty"`
	ProposedOverallMethod    string `json:"proposedOverallMethod,omitempty"`
	GrossReceiptsTest        string `json:"grossReceiptsTest,omitempty"`
	AverageGrossReceipts     string `json:"averageGrossReceipts,omitempty"`
	QualifiesAsSmallBusiness string `json:"qualifiesAsSmallBusiness,omitempty"`
	HasInventory             string `json:"hasInventory,omitempty"`
	InventoryMethod          string `json:"inventoryMethod,omitempty"`
	Section448Applies        string `json:"section448Applies,omitempty"`
	Section448Exception      string `json:"section448Exception,omitempty"`
	IncomeAccrued            string `json:"incomeAccrued,omitempty"`
	AdditionalInfo           string `json:"additionalInfo,omitempty"`
}

// ScheduleB covers a change in inventory method.
type ScheduleB struct {
	CurrentInventoryMethod  string `json:"currentInventoryMethod,omitempty"`
	ProposedInventoryMethod string `json:"proposedInventoryMethod,omitempty"`
	CurrentValuationMethod  string `json:"currentValuationMethod,omitempty"`
	ProposedValuationMethod string `json:"proposedValuationMethod,omitempty"`
	InventoryTypes          string `json:"inventoryTypes,omitempty"`
	LifoElection            string `json:"lifoElection,omitempty"`
	LifoMethod              string `json:"lifoMethod,omitempty"`
	LifoPoolingMethod       string `json:"lifoPoolingMethod,omitempty"`
	Section263A             string `json:"section263A,omitempty"`
	Section263AMethod       string `json:"section263AMethod,omitempty"`
	UnicapMethod            string `json:"unicapMethod,omitempty"`
	AdditionalInfo          string `json:"additionalInfo,omitempty"`
}

// ScheduleC covers a change in depreciation or amortization.
type ScheduleC struct {
	AssetDescription     string `json:"assetDescription,omitempty"`
	DateAcquired         string `json:"dateAcquired,omitempty"`
	CurrentMethod        string `json:"currentMethod,omitempty"`
	CurrentLife          string `json:"currentLife,omitempty"`
	CurrentConvention    string `json:"currentConvention,omitempty"`
	ProposedMethod       string `json:"proposedMethod,omitempty"`
	ProposedLife         string `json:"proposedLife,omitempty"`
	ProposedConvention   string `json:"proposedConvention,omitempty"`
	Section168Property   string `json:"section168Property,omitempty"`
	Section197Intangible string `json:"section197Intangible,omitempty"`
	BonusDepreciation    string `json:"bonusDepreciation,omitempty"`
	Section179Election   string `json:"section179Election,omitempty"`
	AdsRequired          string `json:"adsRequired,omitempty"`
	ChangeReason         string `json:"changeReason,omitempty"`
	AdditionalInfo       string `json:"additionalInfo,omitempty"`
}

// ScheduleD covers long-term contracts.
type ScheduleD struct {
	ContractType             string `json:"contractType,omitempty"`
	ContractDescription      string `json:"contractDescription,omitempty"`
	CurrentMethod            string `json:"currentMethod,omitempty"`
	ProposedMethod           string `json:"proposedMethod,omitempty"`
	EstimatedDuration        string `json:"estimatedDuration,omitempty"`
	TotalContractPrice       string `json:"totalContractPrice,omitempty"`
	CompletionPercentage     string `json:"completionPercentage,omitempty"`
	Section460Applies        string `json:"section460Applies,omitempty"`
	HomeConstructionContract string `json:"homeConstructionContract,omitempty"`
	ExemptSmallConstruction  string `json:"exemptSmallConstruction,omitempty"`
	LookBackMethod           string `json:"lookBackMethod,omitempty"`
	SimplifiedMethod         string `json:"simplifiedMethod,omitempty"`
	AdditionalInfo           string `json:"additionalInfo,omitempty"`
}

// ScheduleE covers mark-to-market changes for traders and dealers in
// securities.
type ScheduleE struct {
	TraderStatus         string `json:"traderStatus,omitempty"`
	ElectionType         string `json:"electionType,omitempty"`
	SecurityTypes        string `json:"securityTypes,omitempty"`
	CurrentMethod        string `json:"currentMethod,omitempty"`
	ProposedMethod       string `json:"proposedMethod,omitempty"`
	Section475Election   string `json:"section475Election,omitempty"`
	ElectionYear         string `json:"electionYear,omitempty"`
	PriorElection        string `json:"priorElection,omitempty"`
	BusinessDescription  string `json:"businessDescription,omitempty"`
	TradingFrequency     string `json:"tradingFrequency,omitempty"`
	AverageHoldingPeriod string `json:"averageHoldingPeriod,omitempty"`
	SubstantialActivity  string `json:"substantialActivity,omitempty"`
	SeparateAccounts     string `json:"separateAccounts,omitempty"`
	HedgingTransactions  string `json:"hedgingTransactions,omitempty"`
	AdditionalInfo       string `json:"additionalInfo,omitempty"`
}
