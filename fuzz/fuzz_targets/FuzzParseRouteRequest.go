//go:build gofuzz
// +build gofuzz

package fuzz

import "github.com/zalando/routequery/apiquery"

func FuzzParseRouteRequest(data []byte) int {
	r := apiquery.NewRouteRequest(apiquery.DefaultOutputFormat)
	if err := apiquery.ParseInto(string(data), r); err != nil {
		return 0
	}

	if err := r.Validate(); err != nil {
		return 0
	}

	return 1
}
