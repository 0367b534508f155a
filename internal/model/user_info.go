// Package model defines the database entities.
package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserInfo is a Siraj account with its language-learning profile.
type UserInfo struct {
	gorm.Model

	// Uuid is the business key, format "U" + date-prefixed random string.
	Uuid             string `gorm:"column:uuid;uniqueIndex;type:char(20);not null"`
	FullName         string `gorm:"column:full_name;type:varchar(50);not null"`
	Email            string `gorm:"column:email;uniqueIndex;type:varchar(100);not null"`
	Password         string `gorm:"column:password;type:varchar(100);not null"` // bcrypt hash
	Bio              string `gorm:"column:bio;type:varchar(500)"`
	ProfilePic       string `gorm:"column:profile_pic;type:varchar(255)"`
	NativeLanguage   string `gorm:"column:native_language;type:varchar(50);index"`
	LearningLanguage string `gorm:"column:learning_language;type:varchar(50);index"`
	EducationalPath  string `gorm:"column:educational_path;type:varchar(50)"`
	Location         string `gorm:"column:location;type:varchar(100)"`
	Gender           string `gorm:"column:gender;type:varchar(10)"` // "", male, female, other
	IsOnboarded      bool   `gorm:"column:is_onboarded;default:false"`

	// RawPassword receives the plaintext from the API layer and is
	// hashed into Password by BeforeSave. Never persisted.
	RawPassword string `gorm:"-" json:"-"`
}

func (UserInfo) TableName() string {
	return "user_info"
}

// BeforeSave hashes RawPassword into Password so callers only ever set
// the plaintext field.
func (u *UserInfo) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *UserInfo) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
