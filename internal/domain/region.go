package domain

import (
	"encoding/json"
	"fmt"
)

// Region is a UN M49 continent or subcontinent code.
type Region int

const (
	RegionNorthernAfrica        Region = 15
	RegionSubSaharanAfrica      Region = 202
	RegionNorthAmerica          Region = 3
	RegionLatinAmericaCaribbean Region = 419
	RegionEasternAsia           Region = 30
	RegionSouthernAsia          Region = 34
	RegionSouthEasternAsia      Region = 35
	RegionCentralAsia           Region = 143
	RegionWesternAsia           Region = 145
	RegionSouthernEurope        Region = 39
	RegionEasternEurope         Region = 151
	RegionNorthernEurope        Region = 154
	RegionWesternEurope         Region = 155
	RegionAustraliaNewZealand   Region = 53
	RegionMelanesia             Region = 54
	RegionMicronesia            Region = 57
	RegionPolynesia             Region = 61
	RegionAfrica                Region = 2
	RegionAmericas              Region = 19
	RegionAsia                  Region = 142
	RegionEurope                Region = 150
	RegionOceania               Region = 9
)

var regionNames = map[Region]string{
	RegionNorthernAfrica:        "North Africa",
	RegionSubSaharanAfrica:      "Sub-Saharan Africa",
	RegionNorthAmerica:          "North America",
	RegionLatinAmericaCaribbean: "Latin America & the Caribbean",
	RegionEasternAsia:           "East Asia",
	RegionSouthernAsia:          "South Asia",
	RegionSouthEasternAsia:      "South East Asia",
	RegionCentralAsia:           "Central Asia",
	RegionWesternAsia:           "Western Asia",
	RegionSouthernEurope:        "Southern Europe",
	RegionEasternEurope:         "Eastern Europe",
	RegionNorthernEurope:        "Northern Europe",
	RegionWesternEurope:         "Western Europe",
	RegionAustraliaNewZealand:   "Australia & New Zealand",
	RegionMelanesia:             "Melanesia",
	RegionMicronesia:            "Micronesia",
	RegionPolynesia:             "Polynesia",
	RegionAfrica:                "Africa",
	RegionAmericas:              "Americas",
	RegionAsia:                  "Asia",
	RegionEurope:                "Europe",
	RegionOceania:               "Oceania",
}

// Code returns the three-digit, zero-padded M49 code sent on the wire.
func (r Region) Code() string {
	return fmt.Sprintf("%03d", int(r))
}

// String returns the region's English name.
func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return "Region(" + r.Code() + ")"
}

func (r Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Code())
}
