package model

type User struct {
	Base
	Username            string  `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password            string  `gorm:"type:text;not null" json:"-"`
	Email               string  `gorm:"type:text;uniqueIndex;not null" json:"email"`
	FirstName           *string `gorm:"type:text" json:"firstName"`
	LastName            *string `gorm:"type:text" json:"lastName"`
	Avatar              *string `gorm:"type:text" json:"avatar"`
	OnboardingCompleted bool    `gorm:"default:false" json:"onboardingCompleted"`
}

func (u *User) TableName() string {
	return "users"
}
