package logger

// Field is a key/value pair attached to every line a logger prints.
type Field interface {
	Key() string
	String() string
}

type Fields []Field

// StringField builds a Field holding a plain string value.
func StringField(key, value string) Field {
	return stringField{key: key, value: value}
}

type stringField struct {
	key   string
	value string
}

func (f stringField) Key() string    { return f.key }
func (f stringField) String() string { return f.value }
