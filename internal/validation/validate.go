package validation

import (
	"regexp"
	"strings"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/workflow"
)

// Indian mobile numbers: 10 digits starting 6-9, optionally prefixed +91
// or 91, with spaces or dashes tolerated.
var phonePattern = regexp.MustCompile(`^(\+91|91)?[6-9][0-9]{9}$`)

func normalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phone
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(normalizePhone(phone))
}

func IsValidInquiryType(t string) bool {
	switch models.InquiryType(t) {
	case models.InquiryInstagram, models.InquiryFacebook, models.InquiryWhatsApp:
		return true
	}
	return false
}

func IsValidProductType(t string) bool {
	switch models.ProductType(t) {
	case models.ProductBag, models.ProductShoe, models.ProductWallet,
		models.ProductBelt, models.ProductFurniture:
		return true
	}
	return false
}

// ValidateEnquiry checks the customer-entered fields of a new or edited
// enquiry. All violations are aggregated into a single ValidationError so
// the create and edit paths report identically.
func ValidateEnquiry(e *models.Enquiry) error {
	verr := &workflow.ValidationError{}

	if strings.TrimSpace(e.CustomerName) == "" {
		verr.Add("customer_name", "customer name is required")
	}
	if !IsValidPhone(e.Phone) {
		verr.Add("phone", "phone must be a valid Indian mobile number")
	}
	if !IsValidInquiryType(e.InquiryType) {
		verr.Add("inquiry_type", "inquiry type must be instagram, facebook or whatsapp")
	}
	if len(e.Products) == 0 {
		verr.Add("products", "at least one product is required")
	}
	for _, p := range e.Products {
		if !IsValidProductType(p.ProductType) {
			verr.Add("products", "unknown product type: "+p.ProductType)
		}
		if p.Quantity < 1 {
			verr.Add("products", "product quantity must be at least 1")
		}
	}
	return verr.OrNil()
}
