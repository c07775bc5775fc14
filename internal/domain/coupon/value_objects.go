package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCouponCode = errors.New("invalid coupon code format")

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is stored and compared upper-cased; lookups are case-insensitive.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}
