package models

// Address is an embedded value without identity of its own. It is copied
// by value wherever a Location or Member carries one.
type Address struct {
	Street       string `gorm:"size:255" json:"street"`
	StreetNumber string `gorm:"size:20" json:"street_number"`
	PostalCode   string `gorm:"size:20" json:"postal_code"`
	City         string `gorm:"size:100" json:"city"`
	Country      string `gorm:"size:100" json:"country"`
}
