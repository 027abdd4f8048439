package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/firmdex/firmdex/core"
)

// companyDTO maps the JSON dataset format onto the domain model.
type companyDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Location string      `json:"location"`
	Offices  []officeDTO `json:"offices"`
	Industry string      `json:"industry"`
	Services []string    `json:"services"`
	ABN      string      `json:"abn"`
	TeamSize string      `json:"team_size"`
	Rating   float64     `json:"rating"`
}

type officeDTO struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// loadCompanies reads a JSON dataset file. Entries that fail validation are
// skipped with a warning rather than aborting the load.
func loadCompanies(path string) ([]core.Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dtos []companyDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, err
	}

	companies := make([]core.Company, 0, len(dtos))
	for _, dto := range dtos {
		company := core.Company{
			ID:       dto.ID,
			Name:     dto.Name,
			Location: dto.Location,
			Industry: dto.Industry,
			Services: dto.Services,
			ABN:      dto.ABN,
			TeamSize: dto.TeamSize,
			Rating:   dto.Rating,
		}
		for _, o := range dto.Offices {
			company.Offices = append(company.Offices, core.Office{City: o.City, State: o.State})
		}
		if err := core.ValidateCompany(&company); err != nil {
			slog.Warn("skipping invalid company", "id", dto.ID, "err", err)
			continue
		}
		companies = append(companies, company)
	}
	return companies, nil
}
