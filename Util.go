package gocoinex

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Params keeps query parameters in insertion order. The canonical string
// covers the request path including the query, so the encoded order must be
// byte identical between signing and dispatch.
type Params struct {
	pairs [][2]string
}

func NewParams() *Params {
	return &Params{}
}

func (p *Params) Set(key, value string) *Params {
	p.pairs = append(p.pairs, [2]string{key, value})
	return p
}

func (p *Params) SetInt(key string, value int64) *Params {
	return p.Set(key, strconv.FormatInt(value, 10))
}

func (p *Params) IsEmpty() bool {
	return len(p.pairs) == 0
}

func (p *Params) Encode() string {
	var parts = make([]string, 0, len(p.pairs))
	for _, pair := range p.pairs {
		parts = append(parts, url.QueryEscape(pair[0])+"="+url.QueryEscape(pair[1]))
	}
	return strings.Join(parts, "&")
}

func UUID() string {
	return strings.Replace(uuid.New().String(), "-", "", 32)
}

// CheckPositiveDecimal verifies that value is a well formed decimal string
// greater than zero. Values are forwarded as the original strings and never
// pass through float64.
func CheckPositiveDecimal(field, value string) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return NewConfigurationError("%s must be a decimal string, got %q", field, value)
	}
	if d.Sign() <= 0 {
		return NewConfigurationError("%s must be positive, got %q", field, value)
	}
	return nil
}

// CheckDecimal is CheckPositiveDecimal for optional fields: empty passes.
func CheckDecimal(field, value string) error {
	if value == "" {
		return nil
	}
	return CheckPositiveDecimal(field, value)
}
