package notes

import (
	"reflect"
	"testing"
)

func TestNoteJSONTags(t *testing.T) {
	noteType := reflect.TypeOf(Note{})
	fields := map[string]string{
		"ID":       "id",
		"Title":    "title",
		"Content":  "content",
		"Author":   "author",
		"Category": "category",
		"Date":     "date",
		"Tags":     "tags",
	}
	for name, tag := range fields {
		f, ok := noteType.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := f.Tag.Get("json"); got != tag {
			t.Fatalf("field %s expected tag %s, got %s", name, tag, got)
		}
	}
}
