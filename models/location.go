package models

import "github.com/uptrace/bun"

// Country is global reference data (not tenant-scoped), seeded from a YAML
// fixture via `conectone seed`.
type Country struct {
	bun.BaseModel `bun:"table:countries,alias:co" json:"-"`

	// Code is the ISO-3166 alpha-2 country code
	Code string `bun:"code,pk" json:"code" yaml:"code" validate:"required,len=2"`

	Name string `bun:"name,notnull" json:"name" yaml:"name" validate:"required"`

	// DialCode is the international dialling prefix (e.g. "+27")
	DialCode string `bun:"dial_code" json:"dial_code" yaml:"dial_code"`

	// CurrencyCode is the ISO-4217 currency code
	CurrencyCode string `bun:"currency_code" json:"currency_code" yaml:"currency_code" validate:"omitempty,len=3"`

	Cities []*City `bun:"rel:has-many,join:code=country_code" json:"cities,omitempty" yaml:"cities,omitempty"`
}

// City is global reference data belonging to a country.
type City struct {
	bun.BaseModel `bun:"table:cities,alias:ci" json:"-"`

	ID          int64    `bun:"id,pk,autoincrement" json:"id" yaml:"-"`
	CountryCode string   `bun:"country_code,notnull" json:"country_code" yaml:"-"`
	Country     *Country `bun:"rel:belongs-to,join:country_code=code" json:"country,omitempty" yaml:"-"`

	Name      string  `bun:"name,notnull" json:"name" yaml:"name" validate:"required"`
	Region    string  `bun:"region" json:"region" yaml:"region"`
	Latitude  float64 `bun:"latitude" json:"latitude" yaml:"latitude"`
	Longitude float64 `bun:"longitude" json:"longitude" yaml:"longitude"`
}
