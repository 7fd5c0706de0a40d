package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FilingStatus is the workflow status of a filing.
type FilingStatus string

const (
	FilingStatusDraft      FilingStatus = "draft"
	FilingStatusInProgress FilingStatus = "in_progress"
	FilingStatusReady      FilingStatus = "ready"
	FilingStatusCompleted  FilingStatus = "completed"
)

// FormPart identifies one of the nine payload blocks of a filing.
type FormPart string

const (
	FormPartI     FormPart = "part-i"
	FormPartII    FormPart = "part-ii"
	FormPartIII   FormPart = "part-iii"
	FormPartIV    FormPart = "part-iv"
	FormScheduleA FormPart = "schedule-a"
	FormScheduleB FormPart = "schedule-b"
	FormScheduleC FormPart = "schedule-c"
	FormScheduleD FormPart = "schedule-d"
	FormScheduleE FormPart = "schedule-e"
)

// FormParts lists all form parts in the order they appear on the form.
var FormParts = []FormPart{
	FormPartI, FormPartII, FormPartIII, FormPartIV,
	FormScheduleA, FormScheduleB, FormScheduleC, FormScheduleD, FormScheduleE,
}

// completionLadder is the fixed completion percentage per saved part.
//
// This is a presentation convenience carried over from the original
// workflow, not a measure of actual field completeness. Schedule saves
// do not move the percentage.
var completionLadder = map[FormPart]int{
	FormPartI:   25,
	FormPartII:  50,
	FormPartIII: 75,
	FormPartIV:  100,
}

// Filing is one Form 3115 application for a change in accounting method.
//
// The nine part/schedule payloads are stored as JSON text blobs. They are
// written through the validation gate and decoded into typed structs by the
// forms package when read.
type Filing struct {
	DefaultModel
	Client               Client    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ClientID             uuid.UUID `gorm:"index"`
	TaxYearOfChange      int
	Dcn                  string // Selected change number, may not match a seeded reference row
	ChangeType           string // "automatic" or "advance_consent"
	Status               FilingStatus
	LastSavedStep        string
	CompletionPercentage int
	PartI                string
	PartII               string
	PartIII              string
	PartIV               string
	ScheduleA            string
	ScheduleB            string
	ScheduleC            string
	ScheduleD            string
	ScheduleE            string
}

// BeforeSave defaults the status for new filings and rejects status
// values outside the workflow.
func (f *Filing) BeforeSave(_ *gorm.DB) error {
	if f.Status == "" {
		f.Status = FilingStatusDraft
	}

	switch f.Status {
	case FilingStatusDraft, FilingStatusInProgress, FilingStatusReady, FilingStatusCompleted:
	default:
		return ErrFilingInvalidStatus
	}

	return nil
}

// BeforeCreate verifies that the referenced client exists.
func (f *Filing) BeforeCreate(tx *gorm.DB) error {
	_ = f.DefaultModel.BeforeCreate(tx)

	return tx.First(&Client{}, f.ClientID).Error
}

// Payload returns the stored blob for the form part.
func (f Filing) Payload(part FormPart) string {
	switch part {
	case FormPartI:
		return f.PartI
	case FormPartII:
		return f.PartII
	case FormPartIII:
		return f.PartIII
	case FormPartIV:
		return f.PartIV
	case FormScheduleA:
		return f.ScheduleA
	case FormScheduleB:
		return f.ScheduleB
	case FormScheduleC:
		return f.ScheduleC
	case FormScheduleD:
		return f.ScheduleD
	case FormScheduleE:
		return f.ScheduleE
	}

	return ""
}

// SetPayload stores the blob for the form part and updates the derived
// workflow fields. The completion percentage only moves forward so that
// saving parts out of order does not lower it.
func (f *Filing) SetPayload(part FormPart, blob string) error {
	switch part {
	case FormPartI:
		f.PartI = blob
	case FormPartII:
		f.PartII = blob
	case FormPartIII:
		f.PartIII = blob
	case FormPartIV:
		f.PartIV = blob
	case FormScheduleA:
		f.ScheduleA = blob
	case FormScheduleB:
		f.ScheduleB = blob
	case FormScheduleC:
		f.ScheduleC = blob
	case FormScheduleD:
		f.ScheduleD = blob
	case FormScheduleE:
		f.ScheduleE = blob
	default:
		return ErrFilingInvalidPart
	}

	f.LastSavedStep = string(part)
	if f.Status == FilingStatusDraft {
		f.Status = FilingStatusInProgress
	}

	if pct, ok := completionLadder[part]; ok && pct > f.CompletionPercentage {
		f.CompletionPercentage = pct
	}

	return nil
}

// GetFiling returns the filing with the ID if its client belongs to the user.
// The client is preloaded since every consumer needs it.
func GetFiling(db *gorm.DB, userID, id uuid.UUID) (Filing, error) {
	var filing Filing
	err := db.
		Preload("Client").
		Joins("JOIN clients ON clients.id = filings.client_id AND clients.deleted_at IS NULL").
		Where("clients.user_id = ?", userID).
		First(&filing, "filings.id = ?", id).Error
	return filing, err
}

// UserFilings scopes a filing query to the filings of the user's clients.
// The raw join bypasses the soft-delete scope on clients, so the join
// condition repeats it: filings of a deleted client are gone from the API.
func UserFilings(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.
		Model(&Filing{}).
		Joins("JOIN clients ON clients.id = filings.client_id AND clients.deleted_at IS NULL").
		Where("clients.user_id = ?", userID)
}
