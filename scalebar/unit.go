package scalebar

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type Unit int

const (
	Meters Unit = iota
	Kilometers
)

func (u Unit) String() string {
	switch u {
	case Kilometers:
		return "km"
	default:
		return "m"
	}
}

// Symbol returns the short unit symbol for the language. Unknown languages get the international symbol.
func (u Unit) Symbol(tag language.Tag) string {
	p := message.NewPrinter(tag, message.Catalog(unitsCatalog))
	return p.Sprintf(u.String())
}

//----------

// Keys are the international symbols.
var unitsCatalog = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, m, km string) {
		_ = b.SetString(tag, Meters.String(), m)
		_ = b.SetString(tag, Kilometers.String(), km)
	}
	set(language.English, "m", "km")
	set(language.Russian, "м", "км")
	set(language.Ukrainian, "м", "км")
	set(language.Bulgarian, "м", "км")
	set(language.Serbian, "м", "км")
	set(language.Greek, "μ", "χλμ")
	return b
}()
