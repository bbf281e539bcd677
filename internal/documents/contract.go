// Package documents builds the block lists for the two fixed document kinds,
// lease contracts and inspection checklists, and converts resolved template
// text into blocks.
package documents

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gompdf/leasedoc/internal/layout"
)

var (
	// ErrMissingField is returned when a required contract field is empty.
	ErrMissingField = errors.New("documents: missing required field")
	// ErrInvalidField is returned when a contract field has an unusable value.
	ErrInvalidField = errors.New("documents: invalid field")
)

// DateLayout is how dates appear in generated documents.
const DateLayout = "January 2, 2006"

// ContractData holds everything printed on a lease contract.
type ContractData struct {
	DocumentID      string          `json:"documentId,omitempty"`
	PropertyAddress string          `json:"propertyAddress"`
	PropertyType    string          `json:"propertyType,omitempty"`
	LandlordName    string          `json:"landlordName"`
	LandlordEmail   string          `json:"landlordEmail,omitempty"`
	LandlordPhone   string          `json:"landlordPhone,omitempty"`
	TenantName      string          `json:"tenantName"`
	TenantEmail     string          `json:"tenantEmail,omitempty"`
	TenantPhone     string          `json:"tenantPhone,omitempty"`
	LeaseStart      time.Time       `json:"leaseStart"`
	LeaseEnd        time.Time       `json:"leaseEnd"`
	MonthlyRent     decimal.Decimal `json:"monthlyRent"`
	SecurityDeposit decimal.Decimal `json:"securityDeposit"`
	PaymentDueDay   int             `json:"paymentDueDay,omitempty"`
	LateFee         decimal.Decimal `json:"lateFee"`
	PetsAllowed     bool            `json:"petsAllowed"`
	PetDeposit      decimal.Decimal `json:"petDeposit"`
	Utilities       []string        `json:"utilities,omitempty"`
	AdditionalTerms string          `json:"additionalTerms,omitempty"`
	State           string          `json:"state,omitempty"`
}

// Validate checks the fields a contract cannot be printed without.
func (d *ContractData) Validate() error {
	var missing []string
	if strings.TrimSpace(d.LandlordName) == "" {
		missing = append(missing, "landlord name")
	}
	if strings.TrimSpace(d.TenantName) == "" {
		missing = append(missing, "tenant name")
	}
	if strings.TrimSpace(d.PropertyAddress) == "" {
		missing = append(missing, "property address")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	if d.PaymentDueDay < 0 || d.PaymentDueDay > 31 {
		return fmt.Errorf("%w: payment due day %d", ErrInvalidField, d.PaymentDueDay)
	}
	if d.MonthlyRent.IsNegative() || d.SecurityDeposit.IsNegative() || d.LateFee.IsNegative() || d.PetDeposit.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalidField)
	}
	if !d.LeaseStart.IsZero() && !d.LeaseEnd.IsZero() && d.LeaseEnd.Before(d.LeaseStart) {
		return fmt.Errorf("%w: lease ends before it starts", ErrInvalidField)
	}
	return nil
}

// tenantRights is printed in the legal compliance section of every contract.
var tenantRights = []string{
	"The right to a habitable dwelling that meets health and safety codes.",
	"The right to privacy and reasonable notice before the Landlord enters the premises.",
	"The right to the return of the security deposit, less lawful deductions, within the period set by law.",
	"Protection from retaliation for exercising legal rights or reporting code violations.",
	"Protection from discrimination under the Fair Housing Act.",
}

// Contract returns the blocks of a residential lease contract.
func Contract(data ContractData) ([]layout.Block, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	b := &builder{}
	b.add(layout.Block{Kind: layout.KindHeader, Text: "RESIDENTIAL LEASE AGREEMENT"})
	b.paragraph(fmt.Sprintf(
		"This Residential Lease Agreement is entered into on %s between %s (\"Landlord\") and %s (\"Tenant\").",
		formatDate(data.LeaseStart), data.LandlordName, data.TenantName))
	b.add(layout.Block{Kind: layout.KindRule})

	b.section("1. PARTIES")
	b.field("Landlord", data.LandlordName)
	b.optionalField("Landlord Email", data.LandlordEmail)
	b.optionalField("Landlord Phone", data.LandlordPhone)
	b.field("Tenant", data.TenantName)
	b.optionalField("Tenant Email", data.TenantEmail)
	b.optionalField("Tenant Phone", data.TenantPhone)

	b.section("2. PROPERTY")
	b.field("Address", data.PropertyAddress)
	b.optionalField("Property Type", data.PropertyType)

	b.section("3. RENTAL TERMS")
	b.field("Lease Term", fmt.Sprintf("%s to %s", formatDate(data.LeaseStart), formatDate(data.LeaseEnd)))
	b.field("Monthly Rent", FormatMoney(data.MonthlyRent))
	b.field("Security Deposit", FormatMoney(data.SecurityDeposit))
	b.field("Payment Due", fmt.Sprintf("Day %d of each month", dueDay(data.PaymentDueDay)))
	b.field("Late Fee", FormatMoney(data.LateFee))
	if data.PetsAllowed {
		b.field("Pets", fmt.Sprintf("Allowed with a %s pet deposit", FormatMoney(data.PetDeposit)))
	} else {
		b.field("Pets", "Not allowed")
	}

	b.section("4. LEGAL COMPLIANCE")
	b.paragraph(fmt.Sprintf(
		"This agreement is governed by the landlord-tenant laws of %s. Nothing in this agreement waives the Tenant's rights under applicable law, including:",
		jurisdiction(data.State)))
	for _, right := range tenantRights {
		b.add(layout.Block{Kind: layout.KindBullet, Text: right})
	}

	b.section("5. UTILITIES")
	utilities := nonBlank(data.Utilities)
	if len(utilities) == 0 {
		b.paragraph("No utilities are included in the rent. The Tenant is responsible for all utilities and services.")
	} else {
		b.paragraph("The following utilities are included in the rent:")
		for _, u := range utilities {
			b.add(layout.Block{Kind: layout.KindBullet, Text: u})
		}
	}

	b.section("6. ADDITIONAL TERMS")
	if terms := strings.TrimSpace(data.AdditionalTerms); terms != "" {
		for _, para := range splitParagraphs(terms) {
			b.paragraph(para)
		}
	} else {
		b.paragraph("None.")
	}

	b.section("7. SIGNATURES")
	b.paragraph("By signing below, the parties agree to the terms of this agreement.")
	b.signature("Landlord Signature", data.LandlordName)
	b.signature("Tenant Signature", data.TenantName)

	return b.blocks, nil
}

// FormatMoney prints an amount as US dollars with thousands separators.
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	return sign + "$" + grouped.String() + "." + frac
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "________________"
	}
	return t.Format(DateLayout)
}

func dueDay(day int) int {
	if day == 0 {
		return 1
	}
	return day
}

func jurisdiction(state string) string {
	if s := strings.TrimSpace(state); s != "" {
		return "the State of " + s
	}
	return "the state in which the property is located"
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func splitParagraphs(s string) []string {
	var paras []string
	var current []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paras = append(paras, strings.Join(current, "\n"))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paras = append(paras, strings.Join(current, "\n"))
	}
	return paras
}

type builder struct {
	blocks []layout.Block
}

func (b *builder) add(block layout.Block) {
	b.blocks = append(b.blocks, block)
}

func (b *builder) section(title string) {
	b.add(layout.Block{Kind: layout.KindSection, Text: title})
}

func (b *builder) paragraph(text string) {
	b.add(layout.Block{Kind: layout.KindParagraph, Text: text})
}

func (b *builder) field(label, value string) {
	b.add(layout.Block{Kind: layout.KindField, Label: label, Text: value})
}

func (b *builder) optionalField(label, value string) {
	if strings.TrimSpace(value) != "" {
		b.field(label, value)
	}
}

func (b *builder) signature(label, name string) {
	b.add(layout.Block{Kind: layout.KindSignature, Label: label, Text: name, KeepTogether: true})
}
