package model

// Category is a named board bucket. Restricted categories (the GOLD room) accept
// records only from GOLD or ADMIN authors.
type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Restricted bool   `json:"restricted"`
}

// CategoryScamReport is the fixed bucket the scam-report wizard publishes into.
const CategoryScamReport = "강팔이피해사례"

var BoardCategories = []Category{
	{ID: "ai-side-job", Name: "Ai부업경험담"},
	{ID: "route-analysis", Name: "부업루트분석"},
	{ID: "scam-report", Name: CategoryScamReport},
	{ID: "free-talk", Name: "자유수다"},
}

var VIPCategories = []Category{
	{ID: "profit-proof", Name: "실전수익인증", Restricted: true},
	{ID: "private-knowhow", Name: "비공개노하우", Restricted: true},
}

// AllCategories returns the writable board and GOLD-room categories.
func AllCategories() []Category {
	out := make([]Category, 0, len(BoardCategories)+len(VIPCategories))
	out = append(out, BoardCategories...)
	out = append(out, VIPCategories...)
	return out
}

func IsKnownCategory(name string) bool {
	for _, c := range AllCategories() {
		if c.Name == name {
			return true
		}
	}
	return false
}

func IsRestrictedCategory(name string) bool {
	for _, c := range VIPCategories {
		if c.Name == name {
			return true
		}
	}
	return false
}
