package pricing

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed coupons.yaml
var defaultCatalogYAML []byte

var validate = validator.New()

// Catalog is an ordered, read-only set of coupons keyed by normalized code.
type Catalog struct {
	coupons []domain.Coupon
	byCode  map[string]int
}

func NewCatalog(coupons ...domain.Coupon) (Catalog, error) {
	c := Catalog{
		coupons: make([]domain.Coupon, 0, len(coupons)),
		byCode:  make(map[string]int, len(coupons)),
	}

	for i, coupon := range coupons {
		coupon.Code = NormalizeCode(coupon.Code)
		if err := checkCoupon(coupon); err != nil {
			return Catalog{}, fmt.Errorf("coupon[%d]: %w", i, err)
		}
		if _, ok := c.byCode[coupon.Code]; ok {
			return Catalog{}, fmt.Errorf("coupon[%d]: duplicate code %s", i, coupon.Code)
		}
		c.byCode[coupon.Code] = len(c.coupons)
		c.coupons = append(c.coupons, coupon)
	}

	return c, nil
}

func checkCoupon(c domain.Coupon) error {
	if c.Code == "" {
		return fmt.Errorf("code is empty")
	}
	if c.Amount.IsNegative() {
		return fmt.Errorf("amount[%s] is negative", c.Amount)
	}
	switch c.Kind {
	case domain.CouponKindPercentage:
		if c.Amount.GreaterThan(hundred) {
			return fmt.Errorf("percentage[%s] is above 100", c.Amount)
		}
	case domain.CouponKindFixed:
	default:
		return fmt.Errorf("kind[%s] is not valid", c.Kind)
	}
	if c.MinOrder.Valid && c.MinOrder.Decimal.IsNegative() {
		return fmt.Errorf("minOrder[%s] is negative", c.MinOrder.Decimal)
	}
	return nil
}

// Lookup matches code case-insensitively.
func (c Catalog) Lookup(code string) (domain.Coupon, bool) {
	i, ok := c.byCode[NormalizeCode(code)]
	if !ok {
		return domain.Coupon{}, false
	}
	return c.coupons[i], true
}

func (c Catalog) Coupons() []domain.Coupon {
	return slices.Clone(c.coupons)
}

func (c Catalog) Len() int {
	return len(c.coupons)
}

type catalogFile struct {
	Coupons []couponRecord `yaml:"coupons" validate:"dive"`
}

type couponRecord struct {
	Code     string   `yaml:"code" validate:"required"`
	Kind     string   `yaml:"kind" validate:"required,oneof=percentage fixed"`
	Amount   float64  `yaml:"amount" validate:"gte=0"`
	MinOrder *float64 `yaml:"minOrder" validate:"omitempty,gte=0"`
}

// LoadCatalog parses a YAML coupon catalog.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("yaml.Decode: %w", err)
	}

	if err := validate.Struct(file); err != nil {
		return Catalog{}, fmt.Errorf("validate.Struct: %w", err)
	}

	coupons := make([]domain.Coupon, 0, len(file.Coupons))
	for _, rec := range file.Coupons {
		coupon := domain.Coupon{
			Code:   rec.Code,
			Kind:   domain.CouponKind(rec.Kind),
			Amount: decimal.NewFromFloat(rec.Amount),
		}
		if rec.MinOrder != nil {
			coupon.MinOrder = decimal.NewNullDecimal(decimal.NewFromFloat(*rec.MinOrder))
		}
		coupons = append(coupons, coupon)
	}

	return NewCatalog(coupons...)
}

// DefaultCatalog returns the storefront's built-in coupons.
func DefaultCatalog() Catalog {
	catalog, err := LoadCatalog(bytes.NewReader(defaultCatalogYAML))
	if err != nil {
		panic(fmt.Sprintf("built-in coupon catalog: %v", err))
	}
	return catalog
}
