package questionnaire

// Catalog is the ordered, read-only question set for one age band.
// Catalogs returned by ForAgeBand are shared between sessions.
type Catalog struct {
	band     AgeBand
	sections []Section
	byID     map[string]Category
}

func newCatalog(band AgeBand, sections []Section) Catalog {
	byID := make(map[string]Category)
	for _, s := range sections {
		for _, q := range s.Questions {
			byID[q.ID] = s.Category
		}
	}
	return Catalog{band: band, sections: sections, byID: byID}
}

// NewCatalog builds a catalog from caller-provided sections.
func NewCatalog(band AgeBand, sections []Section) Catalog {
	cp := make([]Section, len(sections))
	copy(cp, sections)
	return newCatalog(band, cp)
}

var (
	generalCatalog = newCatalog(AgeBandGeneral, generalSections)
	toddlerCatalog = newCatalog(AgeBandToddler, toddlerSections)
)

// ForAgeBand returns the catalog for band. Unknown bands get the general catalog;
// use ParseAgeBand to reject free text before calling.
func ForAgeBand(band AgeBand) Catalog {
	if band == AgeBandToddler {
		return toddlerCatalog
	}
	return generalCatalog
}

func (c Catalog) AgeBand() AgeBand { return c.band }

// Sections returns a copy of the sections in display order.
func (c Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		s.Questions = append([]Question(nil), s.Questions...)
		out[i] = s
	}
	return out
}

// Categories returns the categories in display order.
func (c Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.sections))
	for _, s := range c.sections {
		out = append(out, s.Category)
	}
	return out
}

// Section returns the section for cat.
func (c Catalog) Section(cat Category) (Section, bool) {
	for _, s := range c.sections {
		if s.Category == cat {
			s.Questions = append([]Question(nil), s.Questions...)
			return s, true
		}
	}
	return Section{}, false
}

// CategoryOf returns the category that owns question id.
func (c Catalog) CategoryOf(id string) (Category, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

func (c Catalog) HasQuestion(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c Catalog) QuestionCount() int { return len(c.byID) }

// Question looks up a question by id.
func (c Catalog) Question(id string) (Question, bool) {
	cat, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	s, _ := c.Section(cat)
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
