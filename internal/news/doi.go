// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"regexp"
	"strings"
)

// doiPattern matches DOI-like substrings embedded anywhere in a URL:
// "10.<registrant>/<suffix>" where the suffix runs until whitespace, a
// comma, or a semicolon.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s,;]+`)

// versionSuffix matches trailing preprint version markers ("v1", "v2", ...)
// that bioRxiv and medRxiv append to DOIs.
var versionSuffix = regexp.MustCompile(`v\d+$`)

// naturePattern matches Nature article URLs whose slug doubles as the DOI
// suffix under the 10.1038 registrant.
var naturePattern = regexp.MustCompile(`nature\.com/articles/(s[\w.-]+)`)

// arxivAbsPattern matches arXiv abstract URLs; arXiv papers also carry the
// DataCite DOI 10.48550/arXiv.<id>.
var arxivAbsPattern = regexp.MustCompile(`arxiv\.org/abs/([\d.]+)`)

// NormalizeDOI returns the canonical form of a DOI: lowercased, trailing
// slashes stripped, and any trailing preprint version suffix removed. It is
// total and idempotent.
func NormalizeDOI(doi string) string {
	doi = strings.TrimRight(strings.ToLower(doi), "/")
	return versionSuffix.ReplaceAllString(doi, "")
}

// ExtractDOIs returns the set of normalized DOI candidates derivable from a
// URL. The same paper surfaces under different URLs (publisher DOI link,
// preprint DOI, API-native record URL), so besides every literal DOI match
// the set also contains:
//
//   - each "/"-segment prefix of a match with at least two segments, since
//     publisher URLs can embed extra path segments after the true DOI
//     (e.g. .../10.1093/pnasnexus/pgae323/7731083);
//   - the DOI synthesized from a Nature article slug or an arXiv abstract ID.
//
// An empty or DOI-free URL yields an empty set. ExtractDOIs never fails.
func ExtractDOIs(rawURL string) map[string]struct{} {
	dois := make(map[string]struct{})
	if rawURL == "" {
		return dois
	}

	for _, raw := range doiPattern.FindAllString(rawURL, -1) {
		normalized := NormalizeDOI(raw)
		dois[normalized] = struct{}{}

		parts := strings.Split(normalized, "/")
		for i := 2; i < len(parts); i++ {
			dois[strings.Join(parts[:i], "/")] = struct{}{}
		}
	}

	if m := naturePattern.FindStringSubmatch(rawURL); m != nil {
		dois[NormalizeDOI("10.1038/"+m[1])] = struct{}{}
	}

	if m := arxivAbsPattern.FindStringSubmatch(rawURL); m != nil {
		dois["10.48550/arxiv."+m[1]] = struct{}{}
	}

	return dois
}

// doiOverlap reports whether two DOI sets share any member.
func doiOverlap(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for doi := range a {
		if _, ok := b[doi]; ok {
			return true
		}
	}
	return false
}
