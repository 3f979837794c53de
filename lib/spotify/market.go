// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package spotify

import (
	"fmt"

	"golang.org/x/text/language"
)

// Market restricts catalog responses to content available in a
// particular country. The wire value is an uppercase ISO 3166-1 alpha-2
// code, or the special "from_token" which resolves to the country of
// the user the access token belongs to.
type Market string

// MarketFromToken selects the market from the access token's user.
// Only meaningful with user-authorized tokens.
const MarketFromToken Market = "from_token"

// ParseMarket validates and canonicalizes a market value. Region input
// is case-insensitive ("de", "De", "DE" all yield "DE").
func ParseMarket(value string) (Market, error) {
	if value == string(MarketFromToken) {
		return MarketFromToken, nil
	}

	region, err := language.ParseRegion(value)
	if err != nil {
		return "", fmt.Errorf("spotify: invalid market %q: %w", value, err)
	}
	if !region.IsCountry() {
		return "", fmt.Errorf("spotify: invalid market %q: not a country code", value)
	}

	return Market(region.String()), nil
}

func (market Market) String() string {
	return string(market)
}
