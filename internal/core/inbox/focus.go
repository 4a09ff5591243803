package inbox

import "github.com/example/dayboard/internal/models"

// FocusTags are the tags surfaced on the dashboard, in bucket order.
var FocusTags = []models.Tag{models.TagWork, models.TagSideHustle, models.TagPersonal}

// FocusBuckets holds the dashboard's three focus lists.
type FocusBuckets[T any] struct {
	Work       []T
	SideHustle []T
	Personal   []T
}

// Categorize sorts unprocessed items into the three focus buckets by tag.
// Processed items and items tagged outside FocusTags appear in no bucket.
// Input order is preserved within each bucket.
func Categorize[T any](items []T, describe func(T) (tag models.Tag, processed bool)) FocusBuckets[T] {
	buckets := FocusBuckets[T]{
		Work:       []T{},
		SideHustle: []T{},
		Personal:   []T{},
	}

	for _, item := range items {
		tag, processed := describe(item)
		if processed {
			continue
		}
		switch tag {
		case models.TagWork:
			buckets.Work = append(buckets.Work, item)
		case models.TagSideHustle:
			buckets.SideHustle = append(buckets.SideHustle, item)
		case models.TagPersonal:
			buckets.Personal = append(buckets.Personal, item)
		}
	}
	return buckets
}
