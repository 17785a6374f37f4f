package domain

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// SanitizeItems drops items that cannot be drawn or rendered and returns the
// rest. The returned error, if any, lists every dropped item; it is a warning
// and the kept items are always usable.
func SanitizeItems(items []Item) ([]Item, error) {
	var result *multierror.Error
	kept := make([]Item, 0, len(items))
	seen := make(map[string]int, len(items))

	for i, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			it.ID = it.Name
		}
		if it.Name == "" {
			it.Name = it.ID
		}
		if it.ID == "" {
			result = multierror.Append(result, fmt.Errorf("item %d: missing name", i))
			continue
		}
		if first, dup := seen[it.ID]; dup {
			result = multierror.Append(result, fmt.Errorf("item %d (%s): duplicate of item %d", i, it.ID, first))
			continue
		}

		images := make([]string, 0, len(it.Images))
		for _, img := range it.Images {
			if img = strings.TrimSpace(img); img != "" {
				images = append(images, img)
			}
		}
		if len(images) == 0 {
			result = multierror.Append(result, fmt.Errorf("item %d (%s): no images", i, it.ID))
			continue
		}
		it.Images = images

		seen[it.ID] = i
		kept = append(kept, it)
	}

	return kept, result.ErrorOrNil()
}
