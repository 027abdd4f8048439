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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCompany indicates a Company failed validation.
	ErrInvalidCompany = errors.New("invalid company")

	// ErrEmptyCompanyID indicates the ID field is empty.
	ErrEmptyCompanyID = errors.New("company id cannot be empty")

	// ErrEmptyCompanyName indicates the Name field is empty.
	ErrEmptyCompanyName = errors.New("company name cannot be empty")

	// ErrMalformedABN indicates an ABN that is not an 11-digit string.
	ErrMalformedABN = errors.New("abn must be 11 digits")

	// ErrRatingOutOfRange indicates a rating outside [0, 5].
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
)
