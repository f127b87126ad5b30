// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validAnimalTypes lists the animal types the marketplace accepts.
var validAnimalTypes = map[string]bool{
	"Cow":     true,
	"Pig":     true,
	"Goat":    true,
	"Sheep":   true,
	"Chicken": true,
	"Horse":   true,
	"Alpaca":  true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_status", validateAssetStatus)
		_ = v.RegisterValidation("animal_type", validateAnimalType)
		_ = v.RegisterValidation("user_role", validateUserRole)
	}
}

func validateAssetStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "open", "funded", "sold", "deceased":
		return true
	}
	return false
}

func validateAnimalType(fl validator.FieldLevel) bool {
	return validAnimalTypes[fl.Field().String()]
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "investor", "farmer":
		return true
	}
	return false
}
