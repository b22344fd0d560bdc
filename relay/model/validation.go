package model

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("aspect_ratio", func(fl validator.FieldLevel) bool {
			return IsValidAspectRatio(fl.Field().String())
		})
	}
}
