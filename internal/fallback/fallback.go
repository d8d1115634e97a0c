// Package fallback produces canned gardening answers when the live provider
// cannot be used. Prompts are sorted into a category by substring match and
// an answer is drawn from that category's fixed table.
package fallback

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Category identifies which answer table a prompt maps to.
type Category string

// Fallback categories, in classification precedence order.
const (
	CategoryTips     Category = "tips"
	CategoryAnalysis Category = "analysis"
	CategoryChat     Category = "chat"
	CategoryGeneric  Category = "generic"
)

// GenericResponse is returned for prompts that match no other category.
const GenericResponse = "I'm currently offline, but here's some general gardening advice: " +
	"Water your plants regularly, ensure good drainage, and give them plenty of sunlight! 🌱"

var (
	tipsTable = []string{
		"🌱 Water your plants early morning for best absorption!",
		"☀️ Most herbs need 6+ hours of sunlight daily.",
		"🌿 Check soil moisture by inserting your finger 1-2 inches deep.",
		"🍃 Rotate your plants weekly for even growth.",
		"💧 Use room temperature water to avoid shocking plant roots.",
		"🌸 Deadhead flowers to encourage more blooms.",
		"🌱 Group plants with similar water needs together.",
	}

	analysisTable = []string{
		"Your garden looks healthy! Keep up the regular watering schedule.",
		"Consider adding more organic matter to improve soil quality.",
		"Plants are showing good growth - harvest time approaching!",
		"Monitor for pests during warm weather periods.",
		"Great job maintaining consistent care routines!",
	}

	chatTable = []string{
		"I'm here to help with your gardening questions! 🌱",
		"What would you like to know about plant care?",
		"I can help with watering, lighting, and plant health tips!",
		"Feel free to ask about any gardening challenges you're facing.",
		"I'm your gardening companion - ask me anything! 🌿",
	}
)

// rule maps any of its markers to a category. Rules are checked in order.
type rule struct {
	markers  []string
	category Category
}

var rules = []rule{
	{markers: []string{"daily tips", "gardening tips"}, category: CategoryTips},
	{markers: []string{"garden analysis", "health"}, category: CategoryAnalysis},
	{markers: []string{"chat", "question"}, category: CategoryChat},
}

// Classify returns the category for prompt. Matching is case-sensitive.
func Classify(prompt string) Category {
	for _, r := range rules {
		for _, m := range r.markers {
			if strings.Contains(prompt, m) {
				return r.category
			}
		}
	}
	return CategoryGeneric
}

// Table returns a copy of the answers for category. The generic category
// yields its single fixed answer; unknown categories yield nil.
func Table(category Category) []string {
	var src []string
	switch category {
	case CategoryTips:
		src = tipsTable
	case CategoryAnalysis:
		src = analysisTable
	case CategoryChat:
		src = chatTable
	case CategoryGeneric:
		return []string{GenericResponse}
	default:
		return nil
	}

	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Oracle draws fallback answers. It is safe for concurrent use.
type Oracle struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewOracle creates an Oracle drawing from src. A nil src is seeded from the
// current time.
func NewOracle(src rand.Source) *Oracle {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Oracle{rng: rand.New(src)}
}

// Respond returns a fallback answer for prompt.
func (o *Oracle) Respond(prompt string) string {
	text, _ := o.Answer(prompt)
	return text
}

// Answer returns a fallback answer for prompt together with the category it
// was drawn from.
func (o *Oracle) Answer(prompt string) (string, Category) {
	category := Classify(prompt)

	var table []string
	switch category {
	case CategoryTips:
		table = tipsTable
	case CategoryAnalysis:
		table = analysisTable
	case CategoryChat:
		table = chatTable
	default:
		return GenericResponse, CategoryGeneric
	}

	o.mu.Lock()
	i := o.rng.Intn(len(table))
	o.mu.Unlock()

	return table[i], category
}
