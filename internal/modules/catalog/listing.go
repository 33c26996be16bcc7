package catalog

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidListing marks a seller listing that fails validation.
var ErrInvalidListing = errors.New("invalid listing")

// ListingRequest is the seller's new/edit product form.
type ListingRequest struct {
	Name         string    `json:"name" validate:"required"`
	PartNumber   string    `json:"partNumber" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Manufacturer string    `json:"manufacturer" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	Condition    Condition `json:"condition" validate:"oneof=New Overhauled Used"`
	// Compatibility is a comma separated list of aircraft models.
	Compatibility string   `json:"compatibility"`
	Price         float64  `json:"price" validate:"gte=0"`
	Currency      string   `json:"currency"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Images        []string `json:"images"`
	Featured      bool     `json:"featured"`
}

var validate = newValidator()

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateListing checks the required fields of a listing form. Blank
// text counts as missing.
func ValidateListing(req ListingRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.PartNumber = strings.TrimSpace(req.PartNumber)
	req.Description = strings.TrimSpace(req.Description)
	req.Manufacturer = strings.TrimSpace(req.Manufacturer)
	req.Category = strings.TrimSpace(req.Category)

	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return errors.Wrap(ErrInvalidListing, err.Error())
	}
	vErr := vErrs[0]
	switch vErr.Tag() {
	case "required":
		return errors.Wrapf(ErrInvalidListing, "%s is required", vErr.Field())
	case "oneof":
		return errors.Wrapf(ErrInvalidListing, "unknown condition %q", req.Condition)
	case "gte":
		return errors.Wrapf(ErrInvalidListing, "%s must not be negative", vErr.Field())
	default:
		return errors.Wrapf(ErrInvalidListing, "%s failed %s", vErr.Field(), vErr.Tag())
	}
}

// SplitCompatibility turns "Cessna 172, Piper PA-28" into its trimmed,
// non-empty entries.
func SplitCompatibility(csv string) []string {
	out := make([]string, 0)
	for _, m := range strings.Split(csv, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// applyListing copies the form onto p, keeping identity fields.
func applyListing(p Part, req ListingRequest) Part {
	p.Name = strings.TrimSpace(req.Name)
	p.PartNumber = strings.TrimSpace(req.PartNumber)
	p.Description = req.Description
	p.Manufacturer = req.Manufacturer
	p.Category = req.Category
	p.Condition = req.Condition
	p.Compatibility = SplitCompatibility(req.Compatibility)
	p.Price = req.Price
	if req.Currency != "" {
		p.Currency = req.Currency
	}
	p.Stock = req.Stock
	if req.Images != nil {
		p.Images = req.Images
	}
	p.Featured = req.Featured
	return p
}
