// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha1" //nolint:gosec // required by the image host signing scheme
	"encoding/hex"
	"sort"
	"strings"
)

// SignParams computes the request signature used by the image host's
// authenticated upload API: parameters are sorted by name, joined as
// "k1=v1&k2=v2", the API secret is appended and the result is SHA-1 hashed.
// Empty values are skipped.
//
// Example usage:
//
//	sig := utils.SignParams(map[string]string{"folder": "plant_photos", "timestamp": "1700000000"}, secret)
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
