// Package dcn holds the designated change number reference list and the
// requirements resolver that decides which form sections a change needs.
package dcn

import (
	"errors"

	"github.com/form3115-prep/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Revision is the revenue procedure revision the reference list below is
// transcribed from. The list changes only with a new revision.
const Revision = "Rev. Proc. 2025-23"

func spread(years int) *int {
	return &years
}

// references returns the full reference list for Revision.
func references() []models.DcnReference {
	return []models.DcnReference{
		// Overall method changes (Section 15)
		{
			DcnNumber:         "122",
			Description:       "Change to overall cash method for small business taxpayer",
			Category:          "overall_method",
			IsAutomatic:       true,
			Requires481a:      true,
			SpreadPeriod:      spread(4),
			RequiresScheduleA: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 15.01",
		},
		{
			DcnNumber:         "123",
			Description:       "Change from overall cash method to overall accrual method",
			Category:          "overall_method",
			IsAutomatic:       true,
			Requires481a:      true,
			SpreadPeriod:      spread(4),
			RequiresScheduleA: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 15.02",
		},
		{
			DcnNumber:         "124",
			Description:       "Change from cash to accrual method for specific item (excludes foreign income taxes)",
			Category:          "overall_method",
			IsAutomatic:       true,
			Requires481a:      true,
			SpreadPeriod:      spread(4),
			RequiresScheduleA: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 15.08",
		},

		// Timing of income recognition (Section 17)
		{
			DcnNumber:        "32",
			Description:      "Change to advance payment deferral method under Treas. Reg. §1.451-8",
			Category:         "revenue",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 17.04",
		},
		{
			DcnNumber:        "233",
			Description:      "Change to comply with final revenue recognition regulations (ASC 606)",
			Category:         "revenue",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 17.12",
		},

		// Inventories, LIFO (Section 23)
		{
			DcnNumber:         "21",
			Description:       "Change from LIFO inventory method",
			Category:          "inventory",
			IsAutomatic:       true,
			Requires481a:      true,
			SpreadPeriod:      spread(4),
			RequiresScheduleB: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 23.01",
		},
		{
			DcnNumber:         "22",
			Description:       "Change to LIFO inventory method",
			Category:          "inventory",
			IsAutomatic:       false,
			Requires481a:      false,
			RequiresScheduleB: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 23.02",
		},

		// Inventories, UNICAP (Section 22)
		{
			DcnNumber:         "24",
			Description:       "Change to UNICAP method",
			Category:          "inventory",
			IsAutomatic:       true,
			Requires481a:      true,
			SpreadPeriod:      spread(4),
			RequiresScheduleB: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 22.01",
		},

		// Depreciation (Section 6)
		{
			DcnNumber:         "7",
			Description:       "Impermissible to permissible method of accounting for depreciation",
			Category:          "depreciation",
			IsAutomatic:       true,
			Requires481a:      true,
			RequiresScheduleC: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 6.01",
		},
		{
			DcnNumber:         "8",
			Description:       "Permissible to permissible method of accounting for depreciation",
			Category:          "depreciation",
			IsAutomatic:       true,
			Requires481a:      false,
			RequiresScheduleC: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 6.02",
		},
		{
			DcnNumber:         "205",
			Description:       "Depreciation - late partial disposition election",
			Category:          "depreciation",
			IsAutomatic:       true,
			Requires481a:      true,
			RequiresScheduleC: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 6.10",
		},
		{
			DcnNumber:         "206",
			Description:       "Depreciation - revoke partial disposition election",
			Category:          "depreciation",
			IsAutomatic:       true,
			Requires481a:      true,
			RequiresScheduleC: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 6.11",
		},
		{
			DcnNumber:         "244",
			Description:       "Disposition of tangible depreciable assets (other than buildings)",
			Category:          "depreciation",
			IsAutomatic:       true,
			Requires481a:      true,
			RequiresScheduleC: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 6.14",
		},

		// Tangible property regulations (Section 11)
		{
			DcnNumber:        "184",
			Description:      "Change to deducting amounts paid for materials and supplies",
			Category:         "tangible_property",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 11.08",
		},
		{
			DcnNumber:        "186",
			Description:      "Change to capitalizing repair and maintenance costs",
			Category:         "tangible_property",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 11.10",
		},
		{
			DcnNumber:        "187",
			Description:      "Change to deducting repair and maintenance costs",
			Category:         "tangible_property",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 11.11",
		},

		// Interest capitalization (Section 12)
		{
			DcnNumber:        "224",
			Description:      "Change to interest capitalization method (excludes certain improvement property)",
			Category:         "tangible_property",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 12.14",
		},

		// Research and experimental expenditures (Section 7)
		{
			DcnNumber:        "265",
			Description:      "Change for domestic R&E expenditures under TCJA Section 174 (tax years beginning before 1/1/2025)",
			Category:         "research",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 7.01",
		},
		{
			DcnNumber:        "236",
			Description:      "Change to Section 174A method for domestic R&E expenditures (tax years beginning after 12/31/2024)",
			Category:         "research",
			IsAutomatic:      true,
			Requires481a:     false,
			RevProcReference: "Rev. Proc. 2025-23, Section 7.02",
		},
		{
			DcnNumber:        "237",
			Description:      "Change in method for foreign R&E expenditures under Section 174",
			Category:         "research",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 7.03",
		},

		// Long-term contracts (Section 19)
		{
			DcnNumber:         "30",
			Description:       "Change to percentage-of-completion method for long-term contracts",
			Category:          "long_term_contracts",
			IsAutomatic:       true,
			Requires481a:      true,
			SpreadPeriod:      spread(4),
			RequiresScheduleD: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 19.01",
		},
		{
			DcnNumber:         "31",
			Description:       "Change from percentage-of-completion method for exempt contracts",
			Category:          "long_term_contracts",
			IsAutomatic:       true,
			Requires481a:      true,
			SpreadPeriod:      spread(4),
			RequiresScheduleD: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 19.02",
		},

		// Recurring item exception (Section 20)
		{
			DcnNumber:        "135",
			Description:      "Change to recurring item exception (excludes reward program liabilities)",
			Category:         "expenses",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 20.07",
		},

		// Bad debts (Section 24)
		{
			DcnNumber:        "166",
			Description:      "Change to specific charge-off method for bad debts",
			Category:         "bad_debts",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 24.01",
		},
		{
			DcnNumber:        "167",
			Description:      "Change from reserve method to specific charge-off method for bad debts",
			Category:         "bad_debts",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 24.02",
		},
		{
			DcnNumber:        "266",
			Description:      "Change to allowance charge-off method for regulated financial companies",
			Category:         "bad_debts",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 24.03",
		},

		// Leasing (Section 14)
		{
			DcnNumber:        "228",
			Description:      "Change for leases to comply with ASC 842",
			Category:         "leasing",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 14.17",
		},

		// Mark-to-market (Section 25)
		{
			DcnNumber:         "64",
			Description:       "Change to mark-to-market method for dealers in securities",
			Category:          "mark_to_market",
			IsAutomatic:       false,
			Requires481a:      true,
			RequiresScheduleE: true,
			RevProcReference:  "Rev. Proc. 2025-23, Section 25.01",
		},

		// Utilities (Section 10)
		{
			DcnNumber:        "91",
			Description:      "Up-front payments for network upgrades received by utilities",
			Category:         "revenue",
			IsAutomatic:      true,
			Requires481a:     true,
			SpreadPeriod:     spread(4),
			RevProcReference: "Rev. Proc. 2025-23, Section 10.01",
		},
	}
}

// Seed upserts the reference list into the database. It is idempotent:
// seeding the same number twice updates the row in place.
func Seed(db *gorm.DB) error {
	refs := references()

	for _, ref := range refs {
		var existing models.DcnReference
		err := db.Where(&models.DcnReference{DcnNumber: ref.DcnNumber}).First(&existing).Error

		if err == nil {
			// Keep identity and timestamps of the existing row
			ref.DefaultModel = existing.DefaultModel
			err = db.Save(&ref).Error
		} else if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
			err = db.Create(&ref).Error
		}

		if err != nil {
			return err
		}
	}

	log.Info().Int("count", len(refs)).Str("revision", Revision).Msg("seeded change number references")
	return nil
}
