package vectorstore

import "fmt"

// NewTextProperty is a convenience constructor for a text property.
func NewTextProperty(name, description string) PropertyDefinition {
	return PropertyDefinition{Name: name, Kind: KindText, Description: description}
}

// NewNumberProperty is a convenience constructor for a number property.
func NewNumberProperty(name, description string) PropertyDefinition {
	return PropertyDefinition{Name: name, Kind: KindNumber, Description: description}
}

// NewTextListProperty is a convenience constructor for a list-of-text property.
func NewTextListProperty(name, description string) PropertyDefinition {
	return PropertyDefinition{Name: name, Kind: KindTextList, Description: description}
}

// Validate performs the local checks a remote store is known to enforce, so
// obviously broken schemas fail before a network round trip:
//
//   - the collection name must not be empty
//   - at least one property must be declared
//   - property names must be unique
//   - when a vectorizer other than "none" is configured, at least one text
//     property must exist for the vectorizer to index
//
// Remote-side rejections beyond these rules still surface as ErrSchema with
// the store's verbatim diagnostic.
func (s CollectionSchema) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: collection name is empty", ErrSchema)
	}
	if len(s.Properties) == 0 {
		return fmt.Errorf("%w: collection %q declares no properties", ErrSchema, s.Name)
	}

	seen := make(map[string]struct{}, len(s.Properties))
	hasText := false
	for _, p := range s.Properties {
		if p.Name == "" {
			return fmt.Errorf("%w: collection %q has a property without a name", ErrSchema, s.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: collection %q declares property %q twice", ErrSchema, s.Name, p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.Kind == KindText || p.Kind == KindTextList {
			hasText = true
		}
	}

	if s.Vectorizer != "" && s.Vectorizer != VectorizerNone && !hasText {
		return fmt.Errorf("%w: collection %q configures vectorizer %q but has no text property to index",
			ErrSchema, s.Name, s.Vectorizer)
	}

	return nil
}

// Well-known vectorization and generative integration tags.
const (
	VectorizerNone   = "none"
	VectorizerOpenAI = "text2vec-openai"
	VectorizerCohere = "text2vec-cohere"
	GenerativeOpenAI = "generative-openai"
	GenerativeCohere = "generative-cohere"
)
