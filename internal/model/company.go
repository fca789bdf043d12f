package model

import "strings"

// Company is a monitored brand.
type Company struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// NormalizeCompanyID turns a display name into the id used in backend paths.
func NormalizeCompanyID(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// DefaultBrands are the brands known without a backend.
var DefaultBrands = []string{"Acme Corporation", "TechStart Inc", "Global Ventures", "Innovation Labs"}

// DefaultCompanies returns DefaultBrands as companies.
func DefaultCompanies() []Company {
	companies := make([]Company, len(DefaultBrands))
	for i, name := range DefaultBrands {
		companies[i] = Company{ID: NormalizeCompanyID(name), DisplayName: name}
	}
	return companies
}
