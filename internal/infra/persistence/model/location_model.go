package model

import "time"

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Shop      string  `gorm:"type:varchar(255);not null;index:idx_locations_on_shop"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Address   string  `gorm:"type:text;not null"`
	City      string  `gorm:"type:varchar(255);not null"`
	Country   string  `gorm:"type:varchar(255);not null"`
	ZipCode   *string `gorm:"type:varchar(32)"`
	Phone     *string `gorm:"type:varchar(32)"`
	Latitude  float64 `gorm:"type:decimal(10,8);not null"`
	Longitude float64 `gorm:"type:decimal(11,8);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
