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


// Package search executes directory queries over a prebuilt index.
//
// The Searcher type implements a staged, conjunctive pipeline:
//   - Result-cache lookup on normalized params
//   - Free-text token union over name, service and exact-ABN maps
//   - Location, service, size, industry and ABN filters, each narrowing
//     the working set
//   - Sorting by name, rating, or accumulated relevance score
//
// Absent filter fields impose no constraint, and malformed filter values
// match nothing rather than raising errors. Results for repeated identical
// params are served from a bounded cache and are bit-identical.
package search
