// Copyright 2026 Firmdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateCompany validates a Company according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Name must not be empty
//   - ABN, when present, must be an 11-digit string
//   - Rating must be in [0, 5]
//
// Not validated (optional fields):
//   - Location, Offices, Industry, Services, TeamSize (absent fields
//     contribute nothing to indexing or filtering)
func ValidateCompany(company *Company) error {
	if company == nil {
		return fmt.Errorf("%w: company is nil", ErrInvalidCompany)
	}

	if company.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCompany, ErrEmptyCompanyID)
	}

	if company.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCompany, ErrEmptyCompanyName)
	}

	if company.ABN != "" && !IsValidABN(company.ABN) {
		return fmt.Errorf("%w: %w", ErrInvalidCompany, ErrMalformedABN)
	}

	if company.Rating < 0 || company.Rating > 5 {
		return fmt.Errorf("%w: %w", ErrInvalidCompany, ErrRatingOutOfRange)
	}

	return nil
}

// IsValidABN checks that a string is a well-formed 11-digit business number.
// Note: search filters never call this; a malformed ABN in a query simply
// fails to match rather than raising an error.
func IsValidABN(abn string) bool {
	if len(abn) != 11 {
		return false
	}
	for _, r := range abn {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
