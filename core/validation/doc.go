// Package validation wraps go-playground/validator with a shared instance and
// readable error messages.
//
// Configuration sections and request bodies carry `validate` tags:
//
//	type SelectionRequest struct {
//	    Leagues []string `json:"leagues" validate:"min=1,max=10,dive,required"`
//	}
//
//	if err := validation.Struct(&req); err != nil {
//	    return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
//	}
package validation
