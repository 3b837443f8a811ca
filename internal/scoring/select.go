package scoring

import "strings"

// SelectCategories derives the report's category subset from the recruiter's
// free-text ranking prompt by case-insensitive substring matching of each
// category's canonical label. When nothing matches (including an empty prompt)
// the full set of four categories is returned, so the selection is never empty.
func SelectCategories(prompt string) []Category {
	promptLower := strings.ToLower(prompt)

	selected := make([]Category, 0, 4)
	for _, cat := range AllCategories() {
		if strings.Contains(promptLower, strings.ToLower(cat.Name)) {
			selected = append(selected, cat)
		}
	}

	if len(selected) == 0 {
		return AllCategories()
	}
	return selected
}
