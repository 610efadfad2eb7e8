package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/naturalsort"
	"github.com/conectone/platform/pkg/result"
)

// Countries returns the country repository. Location data is global
// reference data, not tenant-scoped.
func (s *Storage) Countries() *Repository[models.Country] {
	return NewRepository[models.Country](s.db)
}

// Cities returns the city repository.
func (s *Storage) Cities() *Repository[models.City] {
	return NewRepository[models.City](s.db)
}

// ListCountries returns all countries in natural name order.
func (s *Storage) ListCountries(ctx context.Context) ([]*models.Country, error) {
	countries, err := s.Countries().List(ctx, nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(countries, func(i, j int) bool {
		return naturalsort.Less(countries[i].Name, countries[j].Name)
	})
	return countries, nil
}

// GetCountry retrieves a country by ISO code, case-insensitive.
func (s *Storage) GetCountry(ctx context.Context, code string) (*models.Country, error) {
	return s.Countries().GetOne(ctx, NewSpec("code = ?", strings.ToUpper(code)))
}

// ListCitiesByCountry returns a country's cities in natural name order.
func (s *Storage) ListCitiesByCountry(ctx context.Context, code string) ([]*models.City, error) {
	cities, err := s.Cities().List(ctx, NewSpec("country_code = ?", strings.ToUpper(code)))
	if err != nil {
		return nil, err
	}
	sort.Slice(cities, func(i, j int) bool {
		return naturalsort.Less(cities[i].Name, cities[j].Name)
	})
	return cities, nil
}

// PageCities returns a searched page of cities, name order.
func (s *Storage) PageCities(ctx context.Context, params result.RequestParameters) (result.PaginatedResult[*models.City], error) {
	spec := NewSpec("").Order("name ASC")
	if params.SearchTerm != "" {
		term := "%" + params.SearchTerm + "%"
		spec.Where("(ci.name LIKE ? OR region LIKE ?)", term, term)
	}
	return s.Cities().Page(ctx, spec, params)
}

// seedFile is the YAML shape consumed by SeedLocations.
type seedFile struct {
	Countries []*models.Country `yaml:"countries"`
}

// SeedLocations loads countries and cities from a YAML fixture, upserting
// countries by code so reseeding is idempotent. Cities are replaced per
// seeded country.
func (s *Storage) SeedLocations(ctx context.Context, r io.Reader) (countries, cities int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read seed data: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, 0, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if len(seed.Countries) == 0 {
		return 0, 0, fmt.Errorf("seed data contains no countries")
	}

	for _, country := range seed.Countries {
		country.Code = strings.ToUpper(country.Code)
		countryCities := country.Cities
		country.Cities = nil

		if err := s.Countries().Upsert(ctx,
			[]string{"name", "dial_code", "currency_code"},
			[]string{"code"},
			country,
		); err != nil {
			return countries, cities, fmt.Errorf("failed to seed country %s: %w", country.Code, err)
		}
		countries++

		if _, err := s.Cities().Delete(ctx, NewSpec("country_code = ?", country.Code)); err != nil {
			return countries, cities, err
		}
		for _, city := range countryCities {
			city.CountryCode = country.Code
		}
		if len(countryCities) > 0 {
			if err := s.Cities().Create(ctx, countryCities...); err != nil {
				return countries, cities, fmt.Errorf("failed to seed cities for %s: %w", country.Code, err)
			}
			cities += len(countryCities)
		}
	}
	return countries, cities, nil
}
