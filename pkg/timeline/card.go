package timeline

import "github.com/Zachkp/portfolio/pkg/content"

// Card is one rendered role or degree.
type Card struct {
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Time        string   `json:"time"`
	Description []Clause `json:"description"`
}

// Cards returns one card for a leaf entry and one per role for a composite
// entry. Role cards reuse the entry's category and title.
func Cards(e content.Entry) []Card {
	if !e.IsComposite() {
		return []Card{{
			Category:    e.Category,
			Title:       e.Title,
			Time:        e.Time,
			Description: ParseDescription(e.Description),
		}}
	}
	cards := make([]Card, 0, len(e.Roles))
	for _, r := range e.Roles {
		cards = append(cards, Card{
			Category:    e.Category,
			Title:       e.Title,
			Time:        r.Time,
			Description: ParseDescription(r.Description),
		})
	}
	return cards
}
