package utils

import (
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("oracle_host", func(fl validator.FieldLevel) bool {
		return IsValidOracleHost(fl.Field().String())
	})
	_ = validate.RegisterValidation("port", func(fl validator.FieldLevel) bool {
		return IsValidPort(fl.Field().String())
	})
}

// ValidateStruct validates obj against its `validate` tags. Failures wrap
// ErrValidation.
func ValidateStruct(obj interface{}) error {
	return Invalid(validate.Struct(obj))
}

// IsValidOracleHost accepts localhost, an IP literal or a DNS name whose
// labels are 1..63 characters of letters, digits, '-' or '_'.
func IsValidOracleHost(host string) bool {
	if host == "" || len(host) > 253 {
		return false
	}
	if strings.EqualFold(host, "localhost") || net.ParseIP(host) != nil {
		return true
	}
	for _, label := range strings.Split(host, ".") {
		if !validLabel(label) {
			return false
		}
	}
	return true
}

func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// IsValidPort accepts a decimal TCP port in 1..65535.
func IsValidPort(port string) bool {
	n, err := strconv.Atoi(port)
	return err == nil && n > 0 && n <= 65535
}
