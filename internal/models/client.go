package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a taxpayer entity that filings are prepared for.
type Client struct {
	DefaultModel
	UserID       uuid.UUID `gorm:"index"` // Preparer the client belongs to
	Name         string
	Ein          string
	EntityType   string
	Address      string
	City         string
	State        string
	ZipCode      string
	ContactName  string
	ContactPhone string
	ContactEmail string
	TaxYearEnd   string
}

// BeforeSave trims whitespace from all strings and normalizes the state code.
func (c *Client) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Ein = strings.TrimSpace(c.Ein)
	c.EntityType = strings.TrimSpace(c.EntityType)
	c.Address = strings.TrimSpace(c.Address)
	c.City = strings.TrimSpace(c.City)
	c.State = strings.ToUpper(strings.TrimSpace(c.State))
	c.ZipCode = strings.TrimSpace(c.ZipCode)
	c.ContactName = strings.TrimSpace(c.ContactName)
	c.ContactPhone = strings.TrimSpace(c.ContactPhone)
	c.ContactEmail = strings.TrimSpace(c.ContactEmail)
	c.TaxYearEnd = strings.TrimSpace(c.TaxYearEnd)

	if c.Name == "" {
		return ErrClientNameRequired
	}

	return nil
}

// GetClient returns the client with the ID if it belongs to the user.
func GetClient(db *gorm.DB, userID, id uuid.UUID) (Client, error) {
	var client Client
	err := db.Where(&Client{UserID: userID}).First(&client, "id = ?", id).Error
	return client, err
}

// Filings returns all filings for this client.
func (c Client) Filings(db *gorm.DB) ([]Filing, error) {
	var filings []Filing
	err := db.Where(&Filing{ClientID: c.ID}).Order("updated_at DESC").Find(&filings).Error
	return filings, err
}
