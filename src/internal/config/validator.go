package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}

	validationErrors = append(validationErrors, c.validateMenuItems()...)

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateMenuItems() ValidationErrors {
	var validationErrors ValidationErrors
	seenIDs := make(map[int]bool)

	for i, seed := range c.MenuItems {
		itemName := fmt.Sprintf("menu_item[%d]", i)
		if seed.ID > 0 {
			itemName = fmt.Sprintf("menu_item[id=%d]", seed.ID)
		}

		// Validate struct fields
		if err := validate.Struct(seed); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "", itemName)...)
		}

		// Check duplicate id
		if seed.ID > 0 && seenIDs[seed.ID] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "id",
				Message:   fmt.Sprintf("duplicate menu item id: %d", seed.ID),
			})
		}
		seenIDs[seed.ID] = true

		// Same rules as items created through the API
		for _, violation := range menu.ValidateItem(seed.ToMenuItem()) {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: violation.Field,
				Message:   violation.Message,
			})
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
