package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolutionSpec is one configured output rendition. Label names the variant
// (e.g. "720p") and doubles as the namespace segment for staging directories
// and published object keys. TargetHeight is the vertical pixel dimension
// handed to the transcoder; the width is derived to preserve aspect ratio.
type ResolutionSpec struct {
	Label        string
	TargetHeight int
}

// ParseResolutions parses a "label:height" list such as "360p:360,720p:720".
// Order is preserved: it is the processing order for every job. Labels must be
// unique and heights positive; an empty set is rejected because a job is only
// complete once every configured resolution has been published.
func ParseResolutions(raw string) ([]ResolutionSpec, error) {
	var specs []ResolutionSpec
	seen := make(map[string]bool)

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		label, heightStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("resolution %q: want label:height", part)
		}
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("resolution %q: empty label", part)
		}
		if seen[label] {
			return nil, fmt.Errorf("resolution %q: duplicate label", label)
		}

		height, err := strconv.Atoi(strings.TrimSpace(heightStr))
		if err != nil {
			return nil, fmt.Errorf("resolution %q: bad height: %w", part, err)
		}
		if height <= 0 {
			return nil, fmt.Errorf("resolution %q: height must be positive", part)
		}

		seen[label] = true
		specs = append(specs, ResolutionSpec{Label: label, TargetHeight: height})
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("resolution set is empty")
	}
	return specs, nil
}
