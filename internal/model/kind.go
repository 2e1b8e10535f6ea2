package model

import "fmt"

// Kind names a record kind accepted on the command line.
type Kind string

const (
	KindCreature Kind = "creature"
	KindTrait    Kind = "trait"
	KindAncestry Kind = "ancestry"
	KindSpell    Kind = "spell"
	KindWeapon   Kind = "weapon"
)

var kindNames = map[Kind]string{
	KindCreature: "creature",
	KindTrait:    "trait",
	KindAncestry: "ancestry",
	KindSpell:    "spell",
	KindWeapon:   "weapon",
}

// ParseKind returns the kind named by s.
// Spell and weapon parse successfully even though no extractor exists for
// them; callers check Supported before scraping.
func ParseKind(s string) (Kind, error) {
	return parseVariant("kind", s, kindNames)
}

// Kinds returns every known kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindCreature, KindTrait, KindAncestry, KindSpell, KindWeapon}
}

// Supported reports whether records of this kind can be extracted.
func (k Kind) Supported() bool {
	switch k {
	case KindCreature, KindTrait, KindAncestry:
		return true
	default:
		return false
	}
}

// Collection returns the collection name records of this kind are stored in.
func (k Kind) Collection() string {
	switch k {
	case KindCreature:
		return "creatures"
	case KindTrait:
		return "traits"
	case KindAncestry:
		return "ancestries"
	default:
		return fmt.Sprintf("%ss", string(k))
	}
}

// IndexField is the document field each collection is indexed by.
const IndexField = "name"
