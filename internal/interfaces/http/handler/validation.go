package handler

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// IMEIs are opaque identifiers: uniqueness is enforced by the device
// ledger, so binding only rejects values that cannot be an identifier
// at all.
func validIMEI(fl validator.FieldLevel) bool {
	imei := strings.TrimSpace(fl.Field().String())
	if imei == "" || len(imei) > 32 {
		return false
	}
	return !strings.ContainsAny(imei, " \t\n")
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("imei", validIMEI)
	}
}
