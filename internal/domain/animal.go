package domain

// Animal is one catalog record. Everything except Name is optional;
// absent CSV cells stay nil so the presentation layer can omit them.
type Animal struct {
	Name           string
	ScientificName *string
	Diet           *string
	Habitat        *string
	Range          *string
	Physical       *string
	FunFact        *string
	Conservation   *string
	ImageURL       *string
	URL            *string
	Size           *string
}

// SearchFields returns the fields the free-text filter matches against,
// in a fixed order. Size, ImageURL and URL are deliberately excluded.
func (a Animal) SearchFields() []*string {
	return []*string{
		&a.Name,
		a.ScientificName,
		a.Diet,
		a.Habitat,
		a.Range,
		a.Physical,
		a.FunFact,
		a.Conservation,
	}
}
