/*
 * Copyright (c) 2025-2026, ClinicDir, Inc. (https://clinicdir.com).
 *
 * ClinicDir, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package normalize canonicalizes free-text listing fields into comparable
// forms prior to similarity scoring. Every function is pure and total:
// malformed input normalizes to an empty string, never an error.
package normalize

import (
	"strings"
	"unicode"
)

// FieldKind selects the normalization applied by Normalize.
type FieldKind string

const (
	FieldName    FieldKind = "name"
	FieldAddress FieldKind = "address"
	FieldPhone   FieldKind = "phone"
	FieldURL     FieldKind = "url"
)

// honorifics are stripped from the front of a name.
var honorifics = map[string]bool{
	"dr": true, "mr": true, "mrs": true, "ms": true,
}

// degreeTokens are stripped from the end of a name.
var degreeTokens = map[string]bool{
	"md": true, "do": true, "facs": true, "phd": true, "dds": true,
	"np": true, "jr": true, "sr": true, "ii": true, "iii": true, "iv": true,
}

// descriptorTokens are generic business descriptors stripped from the end of
// a name so brand tokens dominate the comparison ("Blooming Beauty Med Spa"
// and "Blooming Beauty" must compare as the same brand).
var descriptorTokens = map[string]bool{
	"spa": true, "medspa": true, "med": true, "medical": true,
	"clinic": true, "aesthetics": true, "wellness": true,
	"center": true, "centre": true, "salon": true,
	"llc": true, "inc": true, "pllc": true, "pc": true,
}

// Normalize canonicalizes raw according to the field kind.
func Normalize(kind FieldKind, raw string) string {
	switch kind {
	case FieldName:
		return Name(raw)
	case FieldAddress:
		return Address(raw)
	case FieldPhone:
		return Phone(raw)
	case FieldURL:
		return Domain(raw)
	default:
		return clean(raw)
	}
}

// Name canonicalizes a business or practitioner name: lowercase, punctuation
// stripped except hyphens, whitespace collapsed, honorific/degree/descriptor
// tokens removed.
func Name(raw string) string {
	cleaned := clean(raw)
	if cleaned == "" {
		return ""
	}

	tokens := strings.Fields(cleaned)
	for len(tokens) > 1 && honorifics[tokens[0]] {
		tokens = tokens[1:]
	}
	for len(tokens) > 1 && degreeTokens[tokens[len(tokens)-1]] {
		tokens = tokens[:len(tokens)-1]
	}
	for len(tokens) > 1 && descriptorTokens[tokens[len(tokens)-1]] {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}

// Address canonicalizes a street address: lowercase, punctuation stripped
// except hyphens, whitespace collapsed.
func Address(raw string) string {
	return clean(raw)
}

// Phone strips every non-digit character; comparison happens on the digit
// sequence only.
func Phone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Domain reduces a URL to its registrable-domain string: scheme and leading
// "www." stripped, path/query/fragment/port cut off.
func Domain(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")

	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}

	// A host with embedded whitespace is not a domain.
	if s == "" || strings.ContainsAny(s, " \t") {
		return ""
	}
	return s
}

// clean lowercases, replaces punctuation (except hyphens) with spaces, and
// collapses internal whitespace.
func clean(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
