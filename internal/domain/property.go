package domain

import "time"

// Property 房源。landlord 删除时级联删除其全部房源
type Property struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	PricePerNight int `gorm:"not null" json:"price_per_night"`
	Bedrooms      int `gorm:"not null" json:"bedrooms"`
	Bathrooms     int `gorm:"not null" json:"bathrooms"`
	Guests        int `gorm:"not null" json:"guests"`

	Country     string `gorm:"size:255" json:"country"`
	CountryCode string `gorm:"size:10" json:"country_code"`
	Category    string `gorm:"size:255" json:"category"`

	Image string `gorm:"size:255;not null" json:"-"`

	LandlordID string `gorm:"size:36;not null;index" json:"landlord_id"`
	Landlord   *User  `gorm:"foreignKey:LandlordID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Property) TableName() string { return "properties" }
