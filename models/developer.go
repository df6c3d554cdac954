package models

// Developer represents a registered developer account
type Developer struct {
	ID              int            `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name            string         `json:"name" db:"name" gorm:"type:text;not null"`
	Email           string         `json:"email" db:"email" gorm:"type:text;not null;unique"`
	DeveloperInfoID *int           `json:"developerInfoId" db:"developer_info_id"`
	Info            *DeveloperInfo `json:"-" gorm:"foreignKey:DeveloperInfoID;references:ID"`
}
