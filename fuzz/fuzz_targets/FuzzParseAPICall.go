//go:build gofuzz
// +build gofuzz

package fuzz

import "github.com/zalando/routequery/apiquery"

func FuzzParseAPICall(data []byte) int {
	if _, err := apiquery.Parse(string(data)); err != nil {
		return 0
	}

	return 1
}
