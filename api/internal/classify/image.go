package classify

import (
	"errors"
	"strings"

	"sampahkupilah/api/internal/util"
)

// Entries shorter than this cannot hold a real image payload.
const minImageChars = 16

// ErrNoImage is returned when no usable image survives filtering.
var ErrNoImage = errors.New("no usable image in request")

// NormalizeImages merges the single-image field and the image list into a
// uniform set of data URLs. Bare base64 entries get a JPEG data:URI wrapper;
// entries that already are data URLs pass through untouched.
func NormalizeImages(single string, many []string) ([]string, error) {
	candidates := many
	if len(candidates) == 0 && strings.TrimSpace(single) != "" {
		candidates = []string{single}
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if len(c) < minImageChars {
			continue
		}
		if strings.HasPrefix(strings.ToLower(c), "data:") {
			out = append(out, c)
			continue
		}
		out = append(out, util.MakeDataURL("image/jpeg", c))
	}
	if len(out) == 0 {
		return nil, ErrNoImage
	}
	return out, nil
}
