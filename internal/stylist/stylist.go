// Package stylist implements the rule-based styling assistant. Replies are
// template strings routed by keyword and filled from the user's own closet;
// there is no model behind it and responses are deliberately canned.
package stylist

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/ainsleyw/drobe/internal/model"
	"github.com/ainsleyw/drobe/internal/storage"
)

// Welcome is the greeting shown when a chat session starts.
const Welcome = "Hi! I'm your stylist. I can help you create outfits, suggest combinations, and give fashion advice. What would you like help with today?"

// Engine answers styling questions from closet contents.
type Engine struct {
	store storage.Store
	rng   *rand.Rand
}

// New creates a stylist engine over the given store. The random source is
// injectable so tests get deterministic picks.
func New(store storage.Store, rng *rand.Rand) *Engine {
	return &Engine{store: store, rng: rng}
}

// Reply routes the user's question to a suggestion category by keyword and
// returns the rendered answer.
func (e *Engine) Reply(ctx context.Context, input string) (string, error) {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "outfit") || strings.Contains(lower, "suggest"):
		return e.closetSuggestions(ctx)
	case strings.Contains(lower, "weather") || strings.Contains(lower, "season"):
		return e.pick(weatherSuggestions), nil
	case strings.Contains(lower, "occasion") || strings.Contains(lower, "event"):
		return e.pick(occasionSuggestions), nil
	default:
		return e.pick(generalAdvice), nil
	}
}

// closetSuggestions builds outfit ideas from the stored items.
func (e *Engine) closetSuggestions(ctx context.Context) (string, error) {
	items, err := e.store.LoadItems(ctx)
	if err != nil {
		return "", err
	}

	if len(items) == 0 {
		return "I don't see any clothing items in your closet yet. Try uploading some outfits first!", nil
	}

	var tops, bottoms, dresses []model.ClothingItem
	for _, item := range items {
		switch item.Type {
		case string(model.TypeTop):
			tops = append(tops, item)
		case string(model.TypeBottom):
			bottoms = append(bottoms, item)
		case string(model.TypeDress):
			dresses = append(dresses, item)
		}
	}

	var b strings.Builder
	b.WriteString("Based on your closet, here are some outfit suggestions:\n\n")

	if len(tops) > 0 && len(bottoms) > 0 {
		top := tops[e.rng.Intn(len(tops))]
		bottom := bottoms[e.rng.Intn(len(bottoms))]
		fmt.Fprintf(&b, "💡 Casual Look: %s top with %s bottom\n",
			strings.Join(top.Tags, ", "), strings.Join(bottom.Tags, ", "))
	}

	if len(dresses) > 0 {
		dress := dresses[e.rng.Intn(len(dresses))]
		fmt.Fprintf(&b, "💡 Dress Up: %s dress - perfect for any occasion!\n",
			strings.Join(dress.Tags, ", "))
	}

	fmt.Fprintf(&b, "\nYou have %d items in your closet. Want me to suggest more combinations?", len(items))
	return b.String(), nil
}

func (e *Engine) pick(pool []string) string {
	return pool[e.rng.Intn(len(pool))]
}

var weatherSuggestions = []string{
	"☀️ Summer Style: Light fabrics, breathable materials, and bright colors work great in warm weather. Consider cotton tops and flowy skirts!",
	"❄️ Winter Warmth: Layer up with cozy sweaters, warm jackets, and comfortable bottoms. Don't forget accessories like scarves and gloves!",
	"🌧️ Rainy Days: Water-resistant materials, comfortable shoes, and layers that can handle temperature changes are your best friends.",
	"🍂 Fall Fashion: Rich colors, medium-weight fabrics, and versatile pieces that can transition from day to evening.",
}

var occasionSuggestions = []string{
	"💼 Work/Office: Professional pieces like blazers, tailored pants, and classic tops. Stick to neutral colors and clean lines.",
	"🎉 Party/Evening: Dress to impress! Consider your best dresses, statement pieces, and accessories that make you feel confident.",
	"🏠 Casual/Weekend: Comfort is key! Think soft fabrics, relaxed fits, and pieces that reflect your personal style.",
	"💒 Special Events: Choose pieces that make you feel beautiful and confident. Consider the dress code and venue when selecting your outfit.",
}

var generalAdvice = []string{
	"✨ Style Tip: The best outfit is one that makes you feel confident and comfortable. Trust your instincts!",
	"🎨 Color Theory: Consider your skin tone and hair color when choosing colors. Some shades will naturally complement you better.",
	"📏 Fit Matters: Well-fitted clothes look more polished than oversized or too-tight pieces. Tailoring can make a huge difference!",
	"🔄 Mix & Match: Build a versatile wardrobe with pieces that can be mixed and matched to create multiple outfits.",
	"💎 Accessorize: Don't underestimate the power of accessories! Jewelry, scarves, and bags can transform a simple outfit.",
}
