// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package holidays fetches French public holidays from the government
// calendar API (calendrier.api.gouv.fr), one GET per requested year, and
// validates the requested zone and year window before any network call.
package holidays
