// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package holidays

// DefaultZone is used when no zone is configured anywhere.
const DefaultZone = "metropole"

// Zones lists the region codes the calendar API recognizes. Any other value
// is a usage error.
var Zones = []string{
	"alsace-moselle",
	"guadeloupe",
	"guyane",
	"la-reunion",
	"martinique",
	"mayotte",
	"metropole",
	"nouvelle-caledonie",
	"polynesie-francaise",
	"saint-barthelemy",
	"saint-martin",
	"saint-pierre-et-miquelon",
	"wallis-et-futuna",
}

// ValidZone reports whether zone is one of the API's region codes.
func ValidZone(zone string) bool {
	for _, z := range Zones {
		if z == zone {
			return true
		}
	}
	return false
}
