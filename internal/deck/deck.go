package deck

import "fmt"

// Kind tags the payload shape of a card. The presentation engine never
// sees kinds; they exist only for render-time dispatch.
type Kind string

const (
	KindText        Kind = "text"
	KindImage       Kind = "image"
	KindTranslation Kind = "translation"
	KindFinance     Kind = "finance"
)

// Card is one presentable item: a front face and a back face whose
// meaning depends on the kind.
type Card struct {
	Kind Kind `json:"type"`

	// text cards
	Front string `json:"front,omitempty"`
	Back  string `json:"back,omitempty"`

	// image cards: a path or URL shown as the front reference
	Image   string `json:"image,omitempty"`
	Caption string `json:"caption,omitempty"`

	// translation cards
	Term        string `json:"term,omitempty"`
	Translation string `json:"translation,omitempty"`
	Example     string `json:"example,omitempty"`

	// finance cards
	Label      string  `json:"label,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Occurrence string  `json:"occurrence,omitempty"` // e.g. "monthly", "yearly"
}

// Title returns the card's front-face headline.
func (c Card) Title() string {
	switch c.Kind {
	case KindImage:
		return c.Image
	case KindTranslation:
		return c.Term
	case KindFinance:
		return c.Label
	default:
		return c.Front
	}
}

func (c Card) validate() error {
	switch c.Kind {
	case KindText:
		if c.Front == "" {
			return fmt.Errorf("text card missing front")
		}
	case KindImage:
		if c.Image == "" {
			return fmt.Errorf("image card missing image")
		}
	case KindTranslation:
		if c.Term == "" || c.Translation == "" {
			return fmt.Errorf("translation card missing term or translation")
		}
	case KindFinance:
		if c.Label == "" {
			return fmt.Errorf("finance card missing label")
		}
	default:
		return fmt.Errorf("unknown card type %q", c.Kind)
	}
	return nil
}

// Deck is an ordered, immutable-by-convention sequence of cards.
type Deck struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Len returns the number of cards.
func (d Deck) Len() int { return len(d.Cards) }

// Card returns the card at index i. The caller (the UI) only indexes
// with values published by the engine, which are always in range for a
// non-empty deck.
func (d Deck) Card(i int) Card { return d.Cards[i] }
