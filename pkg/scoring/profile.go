package scoring

// BuildProfile folds a user's interactions into weighted preference
// buckets per attribute tag and per note name.
//
// Only rated interactions contribute (explicit signal only). An
// interaction whose item is no longer in the catalog is skipped
// silently: catalogs and user history evolve independently, and one
// stale reference must not fail the whole computation. Multiple
// interactions on the same item each count.
func BuildProfile(catalog []CatalogItem, interactions []Interaction) Profile {
	profile := Profile{
		Tags:  make(map[string]Bucket),
		Notes: make(map[string]Bucket),
	}

	index := indexByID(catalog)

	for _, in := range interactions {
		if in.Rating == nil {
			continue
		}
		item, ok := index[in.ItemID]
		if !ok {
			continue
		}
		rating := *in.Rating

		for _, tag := range item.Tags {
			b := profile.Tags[tag]
			b.Total += rating
			b.Count++
			profile.Tags[tag] = b
		}

		// Note groups are flattened; a faint note contributes
		// proportionally less than a dominant one.
		for _, group := range item.Notes {
			for _, note := range group.Notes {
				b := profile.Notes[note.Name]
				b.Total += rating * (note.Weight / 100)
				b.Count++
				profile.Notes[note.Name] = b
			}
		}
	}

	return profile
}

func indexByID(catalog []CatalogItem) map[string]CatalogItem {
	index := make(map[string]CatalogItem, len(catalog))
	for _, item := range catalog {
		index[item.ID] = item
	}
	return index
}
