// Package merge holds the per-field combination rules used when new
// listing/detail data is folded into a stored media document. Each rule is a
// pure value transform so the policy can be audited and tested without I/O:
//
//	Strings  — append then deduplicate, first occurrence wins (genre,
//	           service, updateDays)
//	String   — overwrite only when the incoming value is present
//	           (summary, backdrop_img)
//	PutURL   — key the url mapping by service name; writing the same
//	           service twice overwrites, never duplicates
package merge

// Strings concatenates extra onto base and removes duplicate values,
// preserving first-occurrence order.
func Strings(base, extra []string) []string {
	return Dedup(append(append([]string(nil), base...), extra...))
}

// Dedup removes duplicate values from a sequence, preserving
// first-occurrence order. A nil input stays nil.
func Dedup(values []string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// String overwrites base with the incoming value when it is present and
// keeps base otherwise.
func String(base string, incoming *string) string {
	if incoming == nil {
		return base
	}
	return *incoming
}

// PutURL writes the service→url entry into the mapping, allocating it if
// needed. The returned map must be used by the caller.
func PutURL(urls map[string]string, service, url string) map[string]string {
	if urls == nil {
		urls = make(map[string]string, 1)
	}
	urls[service] = url
	return urls
}
