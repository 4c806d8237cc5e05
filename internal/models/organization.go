package models

// Organization is a publisher: a station, studio or collective that owns
// recordings and employs people.
type Organization struct {
	Base
	ShortName        string `gorm:"type:text;not null" json:"short_name"`
	LongName         string `gorm:"type:text;not null" json:"long_name"`
	ShortDescription string `gorm:"type:text;not null" json:"short_description"`
	LongDescription  string `gorm:"type:text;not null" json:"long_description"`

	Address0 string `gorm:"column:address_0;type:text;not null" json:"address_0"`
	Address1 string `gorm:"column:address_1;type:text;not null" json:"address_1"`
	City     string `gorm:"type:text;not null" json:"city"`
	State    string `gorm:"type:text;not null" json:"state"`
	Zipcode  string `gorm:"type:text;not null" json:"zipcode"`

	Phone            string `gorm:"type:text;not null" json:"phone"`
	Fax              string `gorm:"type:text;not null" json:"fax"`
	PrimaryWebsite   string `gorm:"type:text;not null" json:"primary_website"`
	SecondaryWebsite string `gorm:"type:text;not null" json:"secondary_website"`
}
