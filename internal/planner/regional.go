package planner

import "strings"

// Curated keyword lists used to prefer foods matching a regional cuisine.
// Matching is a pure transformation over candidate names; the catalog itself
// is never annotated.
var regionalKeywords = map[string][]string{
	"Indian": {
		"Paratha", "Roti", "Chapati", "Dal", "Paneer", "Curry", "Bhaji",
		"Samosa", "Idli", "Dosa", "Chutney", "Raita", "Lassi", "Pulao",
		"Khichdi", "Upma", "Poha", "Uttapam", "Vada", "Sambar", "Rasam",
		"Bhindi", "Baingan", "Bharta", "Aloo", "Gobi", "Methi", "Palak",
	},
}

// keywordsForRegion looks up the keyword list for a region name,
// case-insensitively. Unknown regions have no keywords and therefore no
// ranking bias.
func keywordsForRegion(region string) []string {
	for name, keywords := range regionalKeywords {
		if strings.EqualFold(name, region) {
			return keywords
		}
	}
	return nil
}

// matchesRegion reports whether a food name contains any regional keyword
func matchesRegion(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
