package config

// Vocabulary is a closed set of values a string option may name, such as the
// sound or material names a game server knows about.
type Vocabulary[T any] struct {
	// Name is used in the diagnostic message "<Name> Not Found".
	Name string
	// URL points users at the list of valid values. Optional.
	URL string
	// Match resolves text to a member.
	Match func(text string) (T, bool)
}

// VocabularyOf builds a Vocabulary matching values by their exact text.
func VocabularyOf[T ~string](name, url string, values ...T) Vocabulary[T] {
	members := make(map[string]T, len(values))
	for _, value := range values {
		members[string(value)] = value
	}

	return Vocabulary[T]{
		Name: name,
		URL:  url,
		Match: func(text string) (T, bool) {
			value, ok := members[text]

			return value, ok
		},
	}
}

// GetEnum resolves the string at path in vocabulary. A missing or malformed
// string is silent; text that names no member is reported to the sink with
// the vocabulary URL.
func GetEnum[T any](e *Entry, path string, vocabulary Vocabulary[T]) (T, bool) {
	var zero T

	text, ok := e.GetStringSilent(path)
	if !ok {
		return zero, false
	}

	value, ok := vocabulary.Match(text)
	if !ok {
		e.report(&PathError{
			Kind:    ErrParseFailure,
			Path:    path,
			Message: vocabulary.Name + " Not Found",
			URL:     vocabulary.URL,
		})

		return zero, false
	}

	return value, true
}

// GetEnumSilent is GetEnum without diagnostics.
func GetEnumSilent[T any](e *Entry, path string, vocabulary Vocabulary[T]) (T, bool) {
	var zero T

	text, ok := e.GetStringSilent(path)
	if !ok {
		return zero, false
	}

	value, ok := vocabulary.Match(text)
	if !ok {
		return zero, false
	}

	return value, true
}

// MatchEnum resolves the string at path in vocabulary. An unset path and an
// unknown name are silent; a node that is not a string is reported the way
// GetString reports it.
func MatchEnum[T any](e *Entry, path string, vocabulary Vocabulary[T]) (T, bool) {
	var zero T

	if !e.IsSet(path) {
		return zero, false
	}

	text, ok := e.GetString(path)
	if !ok {
		return zero, false
	}

	value, ok := vocabulary.Match(text)
	if !ok {
		return zero, false
	}

	return value, true
}
