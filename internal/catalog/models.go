package catalog

// KeywordSet holds the SEO keyword lists attached to both catalog record types.
// The generator concatenates these into artifact metadata as-is.
type KeywordSet struct {
	Primary   []string `yaml:"primary" json:"primary"`
	Secondary []string `yaml:"secondary" json:"secondary"`
	LongTail  []string `yaml:"long_tail" json:"long_tail"`
}

// Flatten returns all keyword lists joined into one slice, in declaration order.
func (k KeywordSet) Flatten() []string {
	out := make([]string, 0, len(k.Primary)+len(k.Secondary)+len(k.LongTail))
	out = append(out, k.Primary...)
	out = append(out, k.Secondary...)
	out = append(out, k.LongTail...)
	return out
}

// Location is one geographic market. State and county are required because the
// canonical page path is derived from them; Load rejects records missing either.
type Location struct {
	Slug        string     `yaml:"slug" json:"slug" validate:"required"`
	Name        string     `yaml:"name" json:"name" validate:"required"`
	State       string     `yaml:"state" json:"state" validate:"required"`
	County      string     `yaml:"county" json:"county" validate:"required"`
	ZipCodes    []string   `yaml:"zip_codes" json:"zip_codes"`
	Lat         float64    `yaml:"lat" json:"lat"`
	Lng         float64    `yaml:"lng" json:"lng"`
	Population  int        `yaml:"population" json:"population"`
	Messaging   string     `yaml:"messaging" json:"messaging"`
	Demographic string     `yaml:"demographic,omitempty" json:"demographic,omitempty"`
	Landmarks   []string   `yaml:"landmarks,omitempty" json:"landmarks,omitempty"`
	Keywords    KeywordSet `yaml:"keywords" json:"keywords"`
}

// Service is one offering category.
type Service struct {
	Slug             string     `yaml:"slug" json:"slug" validate:"required"`
	Name             string     `yaml:"name" json:"name" validate:"required"`
	Category         string     `yaml:"category" json:"category"`
	Description      string     `yaml:"description" json:"description"`
	ShortDescription string     `yaml:"short_description" json:"short_description"`
	TechnicalDetails []string   `yaml:"technical_details" json:"technical_details"`
	Benefits         []string   `yaml:"benefits" json:"benefits"`
	Industries       []string   `yaml:"industries" json:"industries"`
	Keywords         KeywordSet `yaml:"keywords" json:"keywords"`
}
