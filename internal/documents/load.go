package documents

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// contractFile is the YAML shape of ContractData. Dates are YYYY-MM-DD.
type contractFile struct {
	DocumentID      string          `yaml:"documentId"`
	PropertyAddress string          `yaml:"propertyAddress"`
	PropertyType    string          `yaml:"propertyType"`
	LandlordName    string          `yaml:"landlordName"`
	LandlordEmail   string          `yaml:"landlordEmail"`
	LandlordPhone   string          `yaml:"landlordPhone"`
	TenantName      string          `yaml:"tenantName"`
	TenantEmail     string          `yaml:"tenantEmail"`
	TenantPhone     string          `yaml:"tenantPhone"`
	LeaseStart      string          `yaml:"leaseStart"`
	LeaseEnd        string          `yaml:"leaseEnd"`
	MonthlyRent     decimal.Decimal `yaml:"monthlyRent"`
	SecurityDeposit decimal.Decimal `yaml:"securityDeposit"`
	PaymentDueDay   int             `yaml:"paymentDueDay"`
	LateFee         decimal.Decimal `yaml:"lateFee"`
	PetsAllowed     bool            `yaml:"petsAllowed"`
	PetDeposit      decimal.Decimal `yaml:"petDeposit"`
	Utilities       []string        `yaml:"utilities"`
	AdditionalTerms string          `yaml:"additionalTerms"`
	State           string          `yaml:"state"`
}

// LoadContract decodes contract data from YAML (or JSON).
func LoadContract(r io.Reader) (ContractData, error) {
	var f contractFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return ContractData{}, fmt.Errorf("documents: decode contract: %w", err)
	}

	start, err := parseDate("leaseStart", f.LeaseStart)
	if err != nil {
		return ContractData{}, err
	}
	end, err := parseDate("leaseEnd", f.LeaseEnd)
	if err != nil {
		return ContractData{}, err
	}

	return ContractData{
		DocumentID:      f.DocumentID,
		PropertyAddress: f.PropertyAddress,
		PropertyType:    f.PropertyType,
		LandlordName:    f.LandlordName,
		LandlordEmail:   f.LandlordEmail,
		LandlordPhone:   f.LandlordPhone,
		TenantName:      f.TenantName,
		TenantEmail:     f.TenantEmail,
		TenantPhone:     f.TenantPhone,
		LeaseStart:      start,
		LeaseEnd:        end,
		MonthlyRent:     f.MonthlyRent,
		SecurityDeposit: f.SecurityDeposit,
		PaymentDueDay:   f.PaymentDueDay,
		LateFee:         f.LateFee,
		PetsAllowed:     f.PetsAllowed,
		PetDeposit:      f.PetDeposit,
		Utilities:       f.Utilities,
		AdditionalTerms: f.AdditionalTerms,
		State:           f.State,
	}, nil
}

func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: expected YYYY-MM-DD, got %q", ErrInvalidField, field, s)
	}
	return t, nil
}
