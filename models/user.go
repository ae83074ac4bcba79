package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FullName       string
	Age            int
	Gender         string  // "Male" | "Female"
	Height         float64 // cm
	Weight         float64 // kg
	ActivityLevel  string  // "Sedentary" | "Lightly Active" | "Moderately Active" | "Very Active"
	Goal           string  // "Weight Loss" | "Maintenance" | "Weight Gain"
	ProfilePicture string
}
