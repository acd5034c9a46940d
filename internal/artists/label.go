package artists

import (
	"regexp"
	"strings"

	"github.com/llehouerou/coho/internal/meta"
)

// SelfReleased is the literal label value used for self-released records.
// Downstream upload code relies on this exact string and must not re-run
// the detection.
const SelfReleased = "Self-Released"

var notOnLabelRe = regexp.MustCompile(`(?i)(not on label|no label|self[- ]?released)`)

// ResolveLabel returns SelfReleased when the label matches a no-label
// pattern or is the name of a main artist (exactly or as a prefix);
// otherwise the label is returned unchanged.
func ResolveLabel(label string, list []meta.Artist) string {
	if label == "" {
		return label
	}
	if notOnLabelRe.MatchString(label) {
		return SelfReleased
	}
	lower := strings.ToLower(label)
	for _, a := range list {
		if a.Role != meta.RoleMain {
			continue
		}
		name := strings.ToLower(a.Name)
		if lower == name || strings.HasPrefix(lower, name) {
			return SelfReleased
		}
	}
	return label
}
